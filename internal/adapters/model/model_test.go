package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/luukhd2/Glados-text-to-speech/internal/core/domain"
)

func writeEmbedding(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "speaker.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing embedding: %v", err)
	}
	return path
}

func TestLoadSpeakerTensorMissingFile(t *testing.T) {
	if _, err := loadSpeakerTensor(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing embedding file")
	}
}

func TestLoadSpeakerTensorMalformed(t *testing.T) {
	path := writeEmbedding(t, "[1, 2")
	if _, err := loadSpeakerTensor(path); err == nil {
		t.Error("expected error for malformed embedding")
	}
}

func TestLoadSpeakerTensorEmpty(t *testing.T) {
	path := writeEmbedding(t, `{"data":[],"dims":[1,0]}`)
	if _, err := loadSpeakerTensor(path); err == nil {
		t.Error("expected error for empty embedding")
	}
}

func TestLoadSpeakerTensorDimsMismatch(t *testing.T) {
	path := writeEmbedding(t, `{"data":[0.1,0.2,0.3],"dims":[1,2]}`)
	if _, err := loadSpeakerTensor(path); err == nil {
		t.Error("expected error for dims that do not fit the data")
	}
}

func TestMelToTensorValidation(t *testing.T) {
	if _, err := melToTensor(domain.Mel{Data: make([]float32, 10), Channels: 0, Frames: 10}); err == nil {
		t.Error("expected error for zero channels")
	}
	if _, err := melToTensor(domain.Mel{Data: make([]float32, 10), Channels: 3, Frames: 4}); err == nil {
		t.Error("expected error for size mismatch")
	}
}
