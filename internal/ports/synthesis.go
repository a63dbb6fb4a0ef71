package ports

import (
	"context"

	"github.com/luukhd2/Glados-text-to-speech/internal/core/domain"
)

// AcousticModel defines the interface for the pretrained generation model.
// It maps a phoneme token sequence to a mel spectrogram. The pace parameter
// stretches predicted phoneme durations; 1.0 is the model's trained rate and
// larger values slow the speech down.
type AcousticModel interface {
	Generate(ctx context.Context, tokens []int64, pace float32) (domain.Mel, error)
	// Close releases the model's native resources.
	Close() error
}

// Vocoder defines the interface for the pretrained vocoder model, which
// maps a mel spectrogram to raw waveform samples in [-1, 1].
type Vocoder interface {
	Synthesize(ctx context.Context, mel domain.Mel) ([]float32, error)
	// Close releases the model's native resources.
	Close() error
}

// Synthesizer defines the interface for end-to-end text to speech.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (domain.Synthesis, error)
}
