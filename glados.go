// glados.go
// Package gladostts synthesizes GLaDOS speech from English text.
// Text is cleaned (numbers, currency and abbreviations expanded into
// words), converted to IPA phonemes, and run through the pretrained
// acoustic model and vocoder exported as ONNX checkpoints. The output
// is 22050 Hz mono audio.
//
// The package needs the onnxruntime shared library at runtime (the
// ONNXRUNTIME_LIB_PATH environment variable overrides the search path)
// and a model directory holding the checkpoints (GLADOS_TTS_MODEL_DIR,
// falling back to ./models). For text preparation without any model
// files, use pkg/text directly.
package gladostts

import (
	"context"

	"github.com/baditaflorin/l"
	"github.com/luukhd2/Glados-text-to-speech/internal/core/domain"
	"github.com/luukhd2/Glados-text-to-speech/internal/device"
	"github.com/luukhd2/Glados-text-to-speech/internal/warmup"
	"github.com/luukhd2/Glados-text-to-speech/pkg/speech"
)

// TTS provides methods to synthesize speech. It serves one caller at a
// time.
type TTS struct {
	synth *speech.Synthesizer
}

// Option configures the synthesizer. All pkg/speech options apply here
// unchanged.
type Option = speech.SynthesizerOption

// WithModelDir sets the directory holding the model checkpoints.
func WithModelDir(dir string) Option {
	return speech.WithModelDir(dir)
}

// WithDevice selects the inference device, "cpu" or "cuda".
func WithDevice(name string) Option {
	return speech.WithDevice(device.Device(name))
}

// WithAlpha sets the speech pace multiplier. 1.0 is the voice's trained
// rate, larger values slow it down.
func WithAlpha(alpha float32) Option {
	return speech.WithAlpha(alpha)
}

// WithWarmUp enables or disables warmup synthesis on initialization.
func WithWarmUp(enable bool) Option {
	return speech.WithWarmUp(enable)
}

// WithLogger sets a custom logger.
func WithLogger(logger l.Logger) Option {
	return speech.WithLogger(logger)
}

// New creates a new TTS instance with the provided functional options.
func New(opts ...Option) (*TTS, error) {
	synth, err := speech.New(opts...)
	if err != nil {
		return nil, err
	}
	return &TTS{synth: synth}, nil
}

// Synthesize turns text into a waveform.
func (t *TTS) Synthesize(ctx context.Context, text string) (domain.Synthesis, error) {
	return t.synth.Synthesize(ctx, text)
}

// SynthesizeToFile synthesizes text and writes the waveform to a WAV file.
func (t *TTS) SynthesizeToFile(ctx context.Context, text, path string) (domain.Synthesis, error) {
	return t.synth.SynthesizeToFile(ctx, text, path)
}

// WarmUp performs warmup synthesis to optimize first-call latency.
func (t *TTS) WarmUp(ctx context.Context, config warmup.Config) {
	t.synth.WarmUp(ctx, config)
}

// Close releases the model resources held by the synthesizer.
func (t *TTS) Close() error {
	return t.synth.Close()
}

// Shutdown tears down the shared onnxruntime environment. Call it once
// at process exit, after every TTS instance has been closed.
func Shutdown() error {
	return speech.ShutdownRuntime()
}
