package ports

import "context"

// Phonemizer defines the interface for grapheme-to-phoneme conversion.
// Input is cleaned English text; output is an IPA phoneme string in which
// punctuation and spaces survive unchanged.
type Phonemizer interface {
	Phonemize(ctx context.Context, text string) (string, error)
	// Close releases any model resources held by the backend.
	Close() error
}
