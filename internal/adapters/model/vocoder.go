package model

import (
	"context"
	"fmt"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/luukhd2/Glados-text-to-speech/internal/core/domain"
	"github.com/luukhd2/Glados-text-to-speech/internal/ports"
)

// Graph tensor names in the exported vocoder checkpoint.
var (
	vocoderInputs  = []string{"mel"}
	vocoderOutputs = []string{"audio"}
)

// Vocoder wraps the exported vocoder checkpoint, which turns mel
// spectrograms into waveform samples in [-1, 1]. It implements
// ports.Vocoder.
type Vocoder struct {
	session *ort.DynamicAdvancedSession
	logger  ports.Logger
}

// NewVocoder loads the vocoder model. InitRuntime must have succeeded
// first.
func NewVocoder(modelPath string, logger ports.Logger, options *ort.SessionOptions) (*Vocoder, error) {
	session, err := ort.NewDynamicAdvancedSession(modelPath, vocoderInputs, vocoderOutputs, options)
	if err != nil {
		return nil, fmt.Errorf("failed to load vocoder model %s: %w", modelPath, err)
	}

	logger.Info("Vocoder model loaded", "path", modelPath)
	return &Vocoder{session: session, logger: logger}, nil
}

// Synthesize runs the vocoder over one mel spectrogram.
func (v *Vocoder) Synthesize(ctx context.Context, mel domain.Mel) ([]float32, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	melTensor, err := melToTensor(mel)
	if err != nil {
		return nil, err
	}
	defer melTensor.Destroy()

	outputs := []ort.Value{nil}
	if err := v.session.Run([]ort.Value{melTensor}, outputs); err != nil {
		return nil, fmt.Errorf("vocoder inference failed: %w", err)
	}
	waveTensor, ok := outputs[0].(*ort.Tensor[float32])
	if !ok {
		return nil, fmt.Errorf("vocoder returned unexpected output type %T", outputs[0])
	}
	defer waveTensor.Destroy()

	return samplesFromTensor(waveTensor), nil
}

// Close destroys the session.
func (v *Vocoder) Close() error {
	if v.session == nil {
		return nil
	}
	err := v.session.Destroy()
	v.session = nil
	return err
}
