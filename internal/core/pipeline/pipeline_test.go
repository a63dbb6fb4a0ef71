package pipeline

import (
	"context"
	"fmt"
	"testing"

	"github.com/luukhd2/Glados-text-to-speech/internal/core/cleaner"
	"github.com/luukhd2/Glados-text-to-speech/internal/core/tokenizer"
)

type noopLogger struct{}

func (noopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Close() error                                   { return nil }

type identityTranslit struct{}

func (identityTranslit) Normalize(text string) string { return text }

// fakePhonemizer returns a fixed phoneme string and records what it was
// asked to phonemize.
type fakePhonemizer struct {
	output string
	err    error
	gotIn  string
}

func (f *fakePhonemizer) Phonemize(ctx context.Context, text string) (string, error) {
	f.gotIn = text
	return f.output, f.err
}

func (f *fakePhonemizer) Close() error { return nil }

func newEnglishCleaner(t *testing.T) *cleaner.Cleaner {
	t.Helper()
	c, err := cleaner.New(cleaner.DefaultConfig(), noopLogger{}, identityTranslit{})
	if err != nil {
		t.Fatalf("cleaner.New failed: %v", err)
	}
	return c
}

func TestPrepare(t *testing.T) {
	ph := &fakePhonemizer{output: "həˈloʊ ˈwɝld."}
	p, err := New(DefaultConfig(), noopLogger{}, newEnglishCleaner(t), ph, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	got, err := p.Prepare(context.Background(), "Hello world")
	if err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}

	if got.Raw != "Hello world" {
		t.Errorf("Raw = %q", got.Raw)
	}
	if got.Cleaned != "Hello world." {
		t.Errorf("Cleaned = %q, want terminator appended", got.Cleaned)
	}
	if ph.gotIn != "Hello world." {
		t.Errorf("phonemizer received %q, want cleaned text", ph.gotIn)
	}
	if got.Phonemes != "həˈloʊ ˈwɝld." {
		t.Errorf("Phonemes = %q", got.Phonemes)
	}
	if len(got.Tokens) != len([]rune(got.Phonemes)) {
		t.Errorf("got %d tokens for %d phoneme runes", len(got.Tokens), len([]rune(got.Phonemes)))
	}
	if p.Decode(got.Tokens) != got.Phonemes {
		t.Errorf("Decode(Tokens) = %q, want %q", p.Decode(got.Tokens), got.Phonemes)
	}
}

func TestPrepareFiltersUnknownPhonemes(t *testing.T) {
	// The X is not in the model alphabet and must not reach the tokens.
	ph := &fakePhonemizer{output: "ə X  b."}
	p, err := New(DefaultConfig(), noopLogger{}, newEnglishCleaner(t), ph, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	got, err := p.Prepare(context.Background(), "whatever")
	if err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}
	if got.Phonemes != "ə b." {
		t.Errorf("Phonemes = %q, want filtered and collapsed %q", got.Phonemes, "ə b.")
	}
}

func TestPrepareEmptyInput(t *testing.T) {
	p, err := New(DefaultConfig(), noopLogger{}, newEnglishCleaner(t), &fakePhonemizer{output: "ə"}, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := p.Prepare(context.Background(), "   "); err == nil {
		t.Error("expected error for blank input")
	}
}

func TestPrepareNoUsableSymbols(t *testing.T) {
	ph := &fakePhonemizer{output: ""}
	p, err := New(DefaultConfig(), noopLogger{}, newEnglishCleaner(t), ph, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := p.Prepare(context.Background(), "zzz"); err == nil {
		t.Error("expected error when phonemization yields nothing")
	}
}

func TestPreparePhonemizeError(t *testing.T) {
	ph := &fakePhonemizer{err: fmt.Errorf("model not loaded")}
	p, err := New(DefaultConfig(), noopLogger{}, newEnglishCleaner(t), ph, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := p.Prepare(context.Background(), "hello"); err == nil {
		t.Error("expected phonemizer error to propagate")
	}
}

func TestPrepareWithoutPhonemes(t *testing.T) {
	cl, err := cleaner.New(cleaner.Config{Name: cleaner.CleanerNone}, noopLogger{}, nil)
	if err != nil {
		t.Fatalf("cleaner.New failed: %v", err)
	}
	p, err := New(Config{UsePhonemes: false, Language: "en_us"}, noopLogger{}, cl, nil, tokenizer.New())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	got, err := p.Prepare(context.Background(), "ˈoʊkeɪ.")
	if err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}
	if got.Phonemes != "ˈoʊkeɪ." {
		t.Errorf("Phonemes = %q, want input passed through", got.Phonemes)
	}
	if len(got.Tokens) != 7 {
		t.Errorf("got %d tokens, want 7", len(got.Tokens))
	}
}

func TestPrepareCanceledContext(t *testing.T) {
	p, err := New(DefaultConfig(), noopLogger{}, newEnglishCleaner(t), &fakePhonemizer{output: "ə"}, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.Prepare(ctx, "hello"); err == nil {
		t.Error("expected error from canceled context")
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(Config{UsePhonemes: true, Language: ""}, noopLogger{}, newEnglishCleaner(t), &fakePhonemizer{}, nil); err == nil {
		t.Error("expected error for empty language")
	}
	if _, err := New(DefaultConfig(), noopLogger{}, nil, &fakePhonemizer{}, nil); err == nil {
		t.Error("expected error for nil cleaner")
	}
	if _, err := New(DefaultConfig(), noopLogger{}, newEnglishCleaner(t), nil, nil); err == nil {
		t.Error("expected error for nil phonemizer with phonemes enabled")
	}
}

func TestEnsureTerminator(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hello", "hello."},
		{"hello.", "hello."},
		{"hello!", "hello!"},
		{"hello?", "hello?"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := EnsureTerminator(tt.input); got != tt.expected {
			t.Errorf("EnsureTerminator(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
