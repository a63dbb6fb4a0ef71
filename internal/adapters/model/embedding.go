package model

import (
	"encoding/json"
	"fmt"
	"os"

	ort "github.com/yalue/onnxruntime_go"
)

// speakerFile mirrors the speaker embedding JSON exported from the voice
// checkpoint. Dims may be omitted for a flat [1, len(data)] vector.
type speakerFile struct {
	Data []float32 `json:"data"`
	Dims []int64   `json:"dims"`
}

// loadSpeakerTensor reads a speaker embedding and wraps it in a tensor.
// The caller owns the tensor and must destroy it.
func loadSpeakerTensor(path string) (*ort.Tensor[float32], error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read speaker embedding: %w", err)
	}

	var sf speakerFile
	if err := json.Unmarshal(raw, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse speaker embedding %s: %w", path, err)
	}
	if len(sf.Data) == 0 {
		return nil, fmt.Errorf("speaker embedding %s holds no data", path)
	}

	dims := sf.Dims
	if len(dims) == 0 {
		dims = []int64{1, int64(len(sf.Data))}
	}
	size := int64(1)
	for _, d := range dims {
		size *= d
	}
	if size != int64(len(sf.Data)) {
		return nil, fmt.Errorf("speaker embedding dims %v do not fit %d values", dims, len(sf.Data))
	}

	tensor, err := ort.NewTensor(dims, sf.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to create speaker tensor: %w", err)
	}
	return tensor, nil
}
