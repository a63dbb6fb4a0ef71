package domain

import "time"

// Prepared holds the outcome of the text preparation pipeline.
type Prepared struct {
	// Raw is the input text as received.
	Raw string
	// Cleaned is the text after cleaning passes (transliteration, number
	// and abbreviation expansion).
	Cleaned string
	// Phonemes is the IPA phoneme string fed to the tokenizer. When the
	// pipeline runs without phonemization it equals Cleaned.
	Phonemes string
	// Tokens is the phoneme ID sequence consumed by the acoustic model.
	Tokens []int64
}

// Mel is a mel spectrogram produced by the acoustic model, stored row-major
// as Channels rows of Frames values each.
type Mel struct {
	Data     []float32
	Channels int
	Frames   int
}

// Audio holds synthesized waveform samples.
type Audio struct {
	// Samples are mono float32 samples in [-1, 1].
	Samples []float32
	// SampleRate in Hz.
	SampleRate int
}

// Duration returns the playback length of the audio.
func (a Audio) Duration() time.Duration {
	if a.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(len(a.Samples)) / float64(a.SampleRate) * float64(time.Second))
}

// Synthesis holds the outcome of a synthesis run.
type Synthesis struct {
	// Text is the input as received.
	Text string
	// Phonemes is the prepared phoneme string (joined across chunks).
	Phonemes string
	// TokenCount is the total number of phoneme tokens synthesized.
	TokenCount int
	// Chunks is the number of text chunks the input was split into.
	Chunks int
	// Audio is the synthesized waveform.
	Audio Audio
	// Elapsed is the wall time spent in model inference.
	Elapsed time.Duration
	// Details holds additional diagnostic information.
	Details map[string]interface{}
}
