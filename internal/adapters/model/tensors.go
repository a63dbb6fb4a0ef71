package model

import (
	"fmt"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/luukhd2/Glados-text-to-speech/internal/core/domain"
)

// melFromTensor copies a [1, channels, frames] tensor into a domain.Mel.
// The copy matters: GetData returns a view into runtime-owned memory that
// dies with the tensor.
func melFromTensor(t *ort.Tensor[float32]) (domain.Mel, error) {
	shape := t.GetShape()
	if len(shape) != 3 || shape[0] != 1 {
		return domain.Mel{}, fmt.Errorf("unexpected mel shape %v, want [1 channels frames]", shape)
	}
	channels, frames := int(shape[1]), int(shape[2])

	data := make([]float32, channels*frames)
	copy(data, t.GetData())
	return domain.Mel{Data: data, Channels: channels, Frames: frames}, nil
}

// melToTensor builds the [1, channels, frames] tensor the vocoder expects.
// The tensor borrows the mel's backing slice; destroy it before the mel
// goes out of scope.
func melToTensor(mel domain.Mel) (*ort.Tensor[float32], error) {
	if mel.Channels <= 0 || mel.Frames <= 0 {
		return nil, fmt.Errorf("mel has invalid dimensions %dx%d", mel.Channels, mel.Frames)
	}
	if mel.Channels*mel.Frames != len(mel.Data) {
		return nil, fmt.Errorf("mel data has %d values, want %d", len(mel.Data), mel.Channels*mel.Frames)
	}
	return ort.NewTensor([]int64{1, int64(mel.Channels), int64(mel.Frames)}, mel.Data)
}

// samplesFromTensor copies a waveform tensor into a flat sample slice,
// whatever its exact output shape.
func samplesFromTensor(t *ort.Tensor[float32]) []float32 {
	data := t.GetData()
	out := make([]float32, len(data))
	copy(out, data)
	return out
}
