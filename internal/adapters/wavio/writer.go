// Package wavio writes synthesized audio to mono 16-bit PCM WAV files.
package wavio

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/luukhd2/Glados-text-to-speech/internal/core/domain"
	"github.com/luukhd2/Glados-text-to-speech/internal/ports"
)

// Encoder writes domain.Audio to disk. It implements ports.AudioEncoder.
type Encoder struct {
	logger ports.Logger
}

// NewEncoder creates a WAV encoder.
func NewEncoder(logger ports.Logger) ports.AudioEncoder {
	return &Encoder{logger: logger}
}

// Encode writes audio to path, creating or truncating the file. Samples
// are scaled by 32768 and clamped into the 16-bit range, so a full-scale
// 1.0 sample lands on 32767 rather than wrapping.
func (e *Encoder) Encode(path string, a domain.Audio) error {
	if len(a.Samples) == 0 {
		return fmt.Errorf("no samples to encode")
	}
	if a.SampleRate <= 0 {
		return fmt.Errorf("invalid sample rate %d", a.SampleRate)
	}

	intData := make([]int, len(a.Samples))
	for i, s := range a.Samples {
		v := int(s * 32768)
		if v > 32767 {
			v = 32767
		} else if v < -32768 {
			v = -32768
		}
		intData[i] = v
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	enc := wav.NewEncoder(f, a.SampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Data:           intData,
		Format:         &audio.Format{SampleRate: a.SampleRate, NumChannels: 1},
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		enc.Close()
		f.Close()
		return fmt.Errorf("failed to write samples to %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("failed to finalize %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	e.logger.Debug("Wrote WAV file",
		"path", path,
		"samples", len(intData),
		"sample_rate", a.SampleRate,
		"duration", a.Duration().String())
	return nil
}
