package model

import (
	"context"
	"errors"
	"fmt"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/luukhd2/Glados-text-to-speech/internal/core/domain"
	"github.com/luukhd2/Glados-text-to-speech/internal/ports"
)

// Graph tensor names in the exported acoustic checkpoint.
var (
	acousticInputs  = []string{"tokens", "speaker", "pace"}
	acousticOutputs = []string{"mel_post"}
)

// Acoustic wraps the exported acoustic checkpoint. It maps phoneme token
// sequences to mel spectrograms, conditioned on the voice's fixed speaker
// embedding. It implements ports.AcousticModel.
type Acoustic struct {
	session *ort.DynamicAdvancedSession
	speaker *ort.Tensor[float32]
	logger  ports.Logger
}

// NewAcoustic loads the acoustic model and the speaker embedding it is
// conditioned on. InitRuntime must have succeeded first.
func NewAcoustic(modelPath, embeddingPath string, logger ports.Logger, options *ort.SessionOptions) (*Acoustic, error) {
	speaker, err := loadSpeakerTensor(embeddingPath)
	if err != nil {
		return nil, err
	}

	session, err := ort.NewDynamicAdvancedSession(modelPath, acousticInputs, acousticOutputs, options)
	if err != nil {
		speaker.Destroy()
		return nil, fmt.Errorf("failed to load acoustic model %s: %w", modelPath, err)
	}

	logger.Info("Acoustic model loaded", "path", modelPath, "speaker_dims", speaker.GetShape())
	return &Acoustic{session: session, speaker: speaker, logger: logger}, nil
}

// Generate runs the model over one token sequence.
func (a *Acoustic) Generate(ctx context.Context, tokens []int64, pace float32) (domain.Mel, error) {
	if len(tokens) == 0 {
		return domain.Mel{}, fmt.Errorf("no tokens to synthesize")
	}
	select {
	case <-ctx.Done():
		return domain.Mel{}, ctx.Err()
	default:
	}

	tokenTensor, err := ort.NewTensor([]int64{1, int64(len(tokens))}, tokens)
	if err != nil {
		return domain.Mel{}, fmt.Errorf("failed to create token tensor: %w", err)
	}
	defer tokenTensor.Destroy()

	paceTensor, err := ort.NewTensor([]int64{1}, []float32{pace})
	if err != nil {
		return domain.Mel{}, fmt.Errorf("failed to create pace tensor: %w", err)
	}
	defer paceTensor.Destroy()

	outputs := []ort.Value{nil}
	if err := a.session.Run([]ort.Value{tokenTensor, a.speaker, paceTensor}, outputs); err != nil {
		return domain.Mel{}, fmt.Errorf("acoustic inference failed: %w", err)
	}
	melTensor, ok := outputs[0].(*ort.Tensor[float32])
	if !ok {
		return domain.Mel{}, fmt.Errorf("acoustic model returned unexpected output type %T", outputs[0])
	}
	defer melTensor.Destroy()

	return melFromTensor(melTensor)
}

// Close destroys the session and the speaker tensor.
func (a *Acoustic) Close() error {
	var errs []error
	if a.session != nil {
		errs = append(errs, a.session.Destroy())
		a.session = nil
	}
	if a.speaker != nil {
		errs = append(errs, a.speaker.Destroy())
		a.speaker = nil
	}
	return errors.Join(errs...)
}
