package ports

import "github.com/luukhd2/Glados-text-to-speech/internal/core/domain"

// AudioEncoder defines the interface for persisting synthesized audio.
type AudioEncoder interface {
	// Encode writes the audio to the given path, creating or truncating it.
	Encode(path string, audio domain.Audio) error
}
