// Package config loads the model directory configuration that tunes the
// synthesis pipeline.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/luukhd2/Glados-text-to-speech/internal/core/cleaner"
)

// File names inside the model directory.
const (
	ConfigFile           = "config.json"
	AcousticModelFile    = "glados.onnx"
	VocoderModelFile     = "vocoder.onnx"
	PhonemizerModelFile  = "en_us_cmudict_ipa_forward.onnx"
	PhonemizerVocabFile  = "en_us_cmudict_ipa_forward.onnx.json"
	SpeakerEmbeddingFile = "glados_p2.json"
)

// EnvModelDir names the environment variable that overrides the default
// model directory.
const EnvModelDir = "GLADOS_TTS_MODEL_DIR"

// DefaultModelDir is used when neither the caller nor the environment
// names a directory.
const DefaultModelDir = "models"

// Preprocessing tunes the text pipeline.
type Preprocessing struct {
	CleanerName string `json:"cleaner_name"`
	UsePhonemes bool   `json:"use_phonemes"`
	Language    string `json:"language"`
}

// Audio describes the output format.
type Audio struct {
	SampleRate int `json:"sample_rate"`
}

// Synthesis tunes the synthesis loop.
type Synthesis struct {
	// Alpha stretches phoneme durations; 1.0 is the trained rate.
	Alpha float64 `json:"alpha"`
	// MaxChunkChars bounds chunk length in runes.
	MaxChunkChars int `json:"max_chunk_chars"`
	// ChunkSilenceMs is the pause between chunk waveforms in milliseconds.
	ChunkSilenceMs int `json:"chunk_silence_ms"`
}

// Config collects the tunables stored in the model directory's
// config.json. Fields missing from the file keep their defaults.
type Config struct {
	Preprocessing Preprocessing `json:"preprocessing"`
	Audio         Audio         `json:"audio"`
	Synthesis     Synthesis     `json:"synthesis"`
}

// Default returns the configuration the pretrained voice was exported with.
func Default() Config {
	return Config{
		Preprocessing: Preprocessing{
			CleanerName: cleaner.CleanerEnglish,
			UsePhonemes: true,
			Language:    "en_us",
		},
		Audio: Audio{SampleRate: 22050},
		Synthesis: Synthesis{
			Alpha:          1.0,
			MaxChunkChars:  300,
			ChunkSilenceMs: 150,
		},
	}
}

// Validate checks the configuration parameters.
func (c Config) Validate() error {
	if err := (cleaner.Config{Name: c.Preprocessing.CleanerName}).Validate(); err != nil {
		return err
	}
	if c.Preprocessing.Language == "" {
		return fmt.Errorf("preprocessing.language must not be empty")
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	}
	if c.Synthesis.Alpha <= 0 {
		return fmt.Errorf("synthesis.alpha must be positive, got %v", c.Synthesis.Alpha)
	}
	if c.Synthesis.MaxChunkChars < 0 {
		return fmt.Errorf("synthesis.max_chunk_chars must not be negative, got %d", c.Synthesis.MaxChunkChars)
	}
	if c.Synthesis.ChunkSilenceMs < 0 {
		return fmt.Errorf("synthesis.chunk_silence_ms must not be negative, got %d", c.Synthesis.ChunkSilenceMs)
	}
	return nil
}

// Load reads config.json from modelDir and layers it over Default. A
// missing file just means defaults; a malformed or invalid one is an
// error.
func Load(modelDir string) (Config, error) {
	cfg := Default()

	path := filepath.Join(modelDir, ConfigFile)
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ResolveModelDir picks the model directory: the explicit argument wins,
// then EnvModelDir, then DefaultModelDir.
func ResolveModelDir(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvModelDir); env != "" {
		return env
	}
	return DefaultModelDir
}

// ModelPaths lists the checkpoint files inside a model directory.
type ModelPaths struct {
	Acoustic         string
	Vocoder          string
	Phonemizer       string
	PhonemizerVocab  string
	SpeakerEmbedding string
}

// PathsIn resolves the checkpoint file paths for modelDir.
func PathsIn(modelDir string) ModelPaths {
	return ModelPaths{
		Acoustic:         filepath.Join(modelDir, AcousticModelFile),
		Vocoder:          filepath.Join(modelDir, VocoderModelFile),
		Phonemizer:       filepath.Join(modelDir, PhonemizerModelFile),
		PhonemizerVocab:  filepath.Join(modelDir, PhonemizerVocabFile),
		SpeakerEmbedding: filepath.Join(modelDir, SpeakerEmbeddingFile),
	}
}
