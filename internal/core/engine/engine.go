// Package engine orchestrates speech synthesis: input text is chunked,
// each chunk is prepared and run through the acoustic model and vocoder,
// and the resulting waveforms are joined with short silences.
package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/luukhd2/Glados-text-to-speech/internal/core/chunker"
	"github.com/luukhd2/Glados-text-to-speech/internal/core/domain"
	"github.com/luukhd2/Glados-text-to-speech/internal/ports"
)

// Config holds configuration for an Engine.
type Config struct {
	// Alpha stretches predicted phoneme durations. 1.0 is the voice's
	// trained rate, larger is slower.
	Alpha float32
	// MaxChunkChars bounds the rune length of a synthesis chunk. Zero
	// selects chunker.DefaultMaxChars.
	MaxChunkChars int
	// ChunkSilence is the pause inserted between chunk waveforms.
	ChunkSilence time.Duration
	// SampleRate is the output rate in Hz. It must match the rate the
	// vocoder was trained at.
	SampleRate int
}

// DefaultConfig returns the configuration the pretrained voice expects.
func DefaultConfig() Config {
	return Config{
		Alpha:         1.0,
		MaxChunkChars: chunker.DefaultMaxChars,
		ChunkSilence:  150 * time.Millisecond,
		SampleRate:    22050,
	}
}

// Validate checks the configuration parameters.
func (c Config) Validate() error {
	if c.Alpha <= 0 {
		return fmt.Errorf("alpha must be positive, got %v", c.Alpha)
	}
	if c.MaxChunkChars < 0 {
		return fmt.Errorf("max chunk chars must not be negative, got %d", c.MaxChunkChars)
	}
	if c.ChunkSilence < 0 {
		return fmt.Errorf("chunk silence must not be negative, got %v", c.ChunkSilence)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", c.SampleRate)
	}
	return nil
}

// Engine drives the synthesis pipeline. It implements ports.Synthesizer.
type Engine struct {
	config   Config
	logger   ports.Logger
	preparer ports.TextPreparer
	acoustic ports.AcousticModel
	vocoder  ports.Vocoder
}

// New creates an Engine from its three stages.
func New(config Config, logger ports.Logger, preparer ports.TextPreparer, acoustic ports.AcousticModel, vocoder ports.Vocoder) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if preparer == nil || acoustic == nil || vocoder == nil {
		return nil, fmt.Errorf("preparer, acoustic model and vocoder must not be nil")
	}
	return &Engine{
		config:   config,
		logger:   logger,
		preparer: preparer,
		acoustic: acoustic,
		vocoder:  vocoder,
	}, nil
}

// Synthesize turns text into a waveform. Chunks are processed strictly in
// order, one at a time; a failure on any chunk abandons the whole call.
func (e *Engine) Synthesize(ctx context.Context, text string) (domain.Synthesis, error) {
	start := time.Now()

	chunks := chunker.Split(text, e.config.MaxChunkChars)
	if len(chunks) == 0 {
		return domain.Synthesis{}, fmt.Errorf("input text is empty")
	}
	e.logger.Debug("Synthesizing", "chunks", len(chunks), "alpha", e.config.Alpha)

	var (
		samples    []float32
		phonemes   []string
		tokenCount int
		melFrames  int
	)
	for i, chunk := range chunks {
		select {
		case <-ctx.Done():
			e.logger.Warn("Synthesis canceled", "error", ctx.Err(), "chunk", i)
			return domain.Synthesis{}, ctx.Err()
		default:
		}

		prepared, err := e.preparer.Prepare(ctx, chunk)
		if err != nil {
			return domain.Synthesis{}, fmt.Errorf("chunk %d: %w", i, err)
		}

		mel, err := e.acoustic.Generate(ctx, prepared.Tokens, e.config.Alpha)
		if err != nil {
			return domain.Synthesis{}, fmt.Errorf("chunk %d: acoustic model: %w", i, err)
		}

		wave, err := e.vocoder.Synthesize(ctx, mel)
		if err != nil {
			return domain.Synthesis{}, fmt.Errorf("chunk %d: vocoder: %w", i, err)
		}

		if i > 0 {
			samples = append(samples, make([]float32, e.silenceSamples())...)
		}
		samples = append(samples, wave...)
		phonemes = append(phonemes, prepared.Phonemes)
		tokenCount += len(prepared.Tokens)
		melFrames += mel.Frames

		e.logger.Debug("Chunk synthesized",
			"chunk", i,
			"tokens", len(prepared.Tokens),
			"mel_frames", mel.Frames,
			"samples", len(wave))
	}

	audio := domain.Audio{Samples: samples, SampleRate: e.config.SampleRate}
	result := domain.Synthesis{
		Text:       text,
		Phonemes:   strings.Join(phonemes, " "),
		TokenCount: tokenCount,
		Chunks:     len(chunks),
		Audio:      audio,
		Elapsed:    time.Since(start),
		Details: map[string]interface{}{
			"alpha":      e.config.Alpha,
			"mel_frames": melFrames,
			"samples":    len(samples),
		},
	}

	e.logger.Info("Synthesis complete",
		"chunks", result.Chunks,
		"tokens", result.TokenCount,
		"duration", audio.Duration().String(),
		"elapsed", result.Elapsed.String())
	return result, nil
}

func (e *Engine) silenceSamples() int {
	return int(float64(e.config.SampleRate) * e.config.ChunkSilence.Seconds())
}
