// glados_test.go
package gladostts

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/luukhd2/Glados-text-to-speech/internal/core/domain"
	"github.com/luukhd2/Glados-text-to-speech/pkg/speech"
)

type fakePreparer struct{}

func (fakePreparer) Prepare(ctx context.Context, text string) (domain.Prepared, error) {
	tokens := make([]int64, 0, len(text))
	for i := range text {
		tokens = append(tokens, int64(i))
	}
	return domain.Prepared{Raw: text, Cleaned: text, Phonemes: text, Tokens: tokens}, nil
}

type fakeAcoustic struct{}

func (fakeAcoustic) Generate(ctx context.Context, tokens []int64, pace float32) (domain.Mel, error) {
	frames := 2 * len(tokens)
	return domain.Mel{Data: make([]float32, 80*frames), Channels: 80, Frames: frames}, nil
}

func (fakeAcoustic) Close() error { return nil }

type fakeVocoder struct{}

func (fakeVocoder) Synthesize(ctx context.Context, mel domain.Mel) ([]float32, error) {
	return make([]float32, 220), nil
}

func (fakeVocoder) Close() error { return nil }

type fakeEncoder struct {
	path string
}

func (f *fakeEncoder) Encode(path string, audio domain.Audio) error {
	f.path = path
	return nil
}

func newTestTTS(t *testing.T, extra ...Option) *TTS {
	t.Helper()

	opts := []Option{
		WithModelDir(t.TempDir()),
		WithWarmUp(false),
		speech.WithTextPreparer(fakePreparer{}),
		speech.WithAcousticModel(fakeAcoustic{}),
		speech.WithVocoder(fakeVocoder{}),
	}
	opts = append(opts, extra...)

	tts, err := New(opts...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = tts.Close() })
	return tts
}

func TestSynthesize(t *testing.T) {
	tts := newTestTTS(t)

	result, err := tts.Synthesize(context.Background(), "The cake is a lie.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Chunks != 1 {
		t.Errorf("expected one chunk, got %d", result.Chunks)
	}
	if len(result.Audio.Samples) == 0 {
		t.Error("expected audio samples")
	}
	if result.Audio.SampleRate != 22050 {
		t.Errorf("expected 22050 Hz, got %d", result.Audio.SampleRate)
	}
}

func TestSynthesizeToFile(t *testing.T) {
	enc := &fakeEncoder{}
	tts := newTestTTS(t, speech.WithEncoder(enc))

	path := filepath.Join(t.TempDir(), "line.wav")
	if _, err := tts.SynthesizeToFile(context.Background(), "Hello.", path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if enc.path != path {
		t.Errorf("expected encoder to receive %q, got %q", path, enc.path)
	}
}

func TestEmptyInput(t *testing.T) {
	tts := newTestTTS(t)

	if _, err := tts.Synthesize(context.Background(), "   "); err == nil {
		t.Fatal("expected error for blank input")
	}
}
