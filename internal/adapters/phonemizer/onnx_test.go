package phonemizer

import (
	"os"
	"path/filepath"
	"testing"
)

type noopLogger struct{}

func (noopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Close() error                                   { return nil }

func writeSidecar(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "g2p.onnx.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing sidecar: %v", err)
	}
	return path
}

func TestNewONNXMissingVocabulary(t *testing.T) {
	_, err := NewONNX(ONNXConfig{ModelPath: filepath.Join(t.TempDir(), "missing.onnx")}, noopLogger{}, nil)
	if err == nil {
		t.Fatal("expected error for missing vocabulary sidecar")
	}
}

func TestNewONNXMalformedVocabulary(t *testing.T) {
	path := writeSidecar(t, "{not json")
	_, err := NewONNX(ONNXConfig{ModelPath: "irrelevant.onnx", VocabPath: path}, noopLogger{}, nil)
	if err == nil {
		t.Fatal("expected error for malformed sidecar")
	}
}

func TestNewONNXEmptyVocabulary(t *testing.T) {
	path := writeSidecar(t, `{"language":"en_us","graphemes":[],"phonemes":[]}`)
	_, err := NewONNX(ONNXConfig{ModelPath: "irrelevant.onnx", VocabPath: path}, noopLogger{}, nil)
	if err == nil {
		t.Fatal("expected error for empty vocabulary")
	}
}

func TestNewONNXLanguageMismatch(t *testing.T) {
	path := writeSidecar(t, `{"language":"de","graphemes":["<pad>","a","b"],"phonemes":["<pad>","ə"]}`)
	_, err := NewONNX(ONNXConfig{
		ModelPath: "irrelevant.onnx",
		VocabPath: path,
		Language:  "en_us",
	}, noopLogger{}, nil)
	if err == nil {
		t.Fatal("expected error for language mismatch")
	}
}

func TestFactoryLexicon(t *testing.T) {
	ph, err := NewFactory().Create(LexiconBackend, ONNXConfig{}, noopLogger{}, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if ph == nil {
		t.Fatal("Create returned nil backend")
	}
	if err := ph.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

func TestFactoryUnknownBackend(t *testing.T) {
	if _, err := NewFactory().Create(BackendType(99), ONNXConfig{}, noopLogger{}, nil); err == nil {
		t.Error("expected error for unknown backend type")
	}
}
