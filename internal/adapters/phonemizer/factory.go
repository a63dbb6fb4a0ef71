// Package phonemizer provides the grapheme-to-phoneme backends: the
// pretrained forward model exported to ONNX, and an embedded lexicon with
// spelling-rule fallback for use without model files.
package phonemizer

import (
	"fmt"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/luukhd2/Glados-text-to-speech/internal/ports"
)

// BackendType identifies a grapheme-to-phoneme backend implementation.
type BackendType int

const (
	// ONNXBackend runs the pretrained forward G2P model. Best quality,
	// requires model files and an initialized ONNX runtime.
	ONNXBackend BackendType = iota
	// LexiconBackend uses the embedded lexicon with spelling-rule
	// fallback. Self-contained, rougher pronunciations.
	LexiconBackend
)

// Factory creates phonemizer backends.
type Factory struct{}

// NewFactory creates a backend factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Create builds the requested backend. The config and session options are
// only consulted for ONNXBackend.
func (f *Factory) Create(t BackendType, config ONNXConfig, logger ports.Logger, options *ort.SessionOptions) (ports.Phonemizer, error) {
	switch t {
	case ONNXBackend:
		return NewONNX(config, logger, options)
	case LexiconBackend:
		return NewLexicon(), nil
	default:
		return nil, fmt.Errorf("unknown phonemizer backend type: %d", t)
	}
}
