package warmup

import (
	"context"
	"errors"
	"testing"

	"github.com/luukhd2/Glados-text-to-speech/internal/core/domain"
)

type noopLogger struct{}

func (noopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Close() error                                   { return nil }

type countingNormalizer struct {
	calls int
}

func (c *countingNormalizer) Normalize(text string) string {
	c.calls++
	return text
}

type countingPreparer struct {
	calls int
	err   error
}

func (c *countingPreparer) Prepare(ctx context.Context, text string) (domain.Prepared, error) {
	c.calls++
	if c.err != nil {
		return domain.Prepared{}, c.err
	}
	return domain.Prepared{Raw: text, Cleaned: text}, nil
}

type countingSynthesizer struct {
	calls int
	err   error
}

func (c *countingSynthesizer) Synthesize(ctx context.Context, text string) (domain.Synthesis, error) {
	c.calls++
	if c.err != nil {
		return domain.Synthesis{}, c.err
	}
	return domain.Synthesis{Text: text}, nil
}

func TestWarmUpRunsAllComponents(t *testing.T) {
	norm := &countingNormalizer{}
	prep := &countingPreparer{}
	synth := &countingSynthesizer{}

	m := NewManager(noopLogger{}, Config{Texts: []string{"0", "1"}, Iterations: 2})
	m.RegisterNormalizer(norm)
	m.RegisterPreparer(prep)
	m.RegisterSynthesizer(synth)

	m.WarmUp(context.Background())

	want := 2 * 2 // texts * iterations
	if norm.calls != want {
		t.Errorf("expected %d normalizer calls, got %d", want, norm.calls)
	}
	if prep.calls != want {
		t.Errorf("expected %d preparer calls, got %d", want, prep.calls)
	}
	if synth.calls != want {
		t.Errorf("expected %d synthesizer calls, got %d", want, synth.calls)
	}
}

func TestWarmUpContinuesAfterComponentError(t *testing.T) {
	prep := &countingPreparer{err: errors.New("bad text")}
	synth := &countingSynthesizer{}

	m := NewManager(noopLogger{}, Config{Texts: []string{"0"}, Iterations: 1})
	m.RegisterPreparer(prep)
	m.RegisterSynthesizer(synth)

	m.WarmUp(context.Background())

	if prep.calls != 1 {
		t.Errorf("expected failing preparer to be called once, got %d", prep.calls)
	}
	if synth.calls != 1 {
		t.Errorf("expected synthesizer to run despite preparer error, got %d calls", synth.calls)
	}
}

func TestWarmUpCanceledContext(t *testing.T) {
	synth := &countingSynthesizer{}

	m := NewManager(noopLogger{}, DefaultConfig())
	m.RegisterSynthesizer(synth)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m.WarmUp(ctx)

	if synth.calls != 0 {
		t.Errorf("expected no synthesis on canceled context, got %d calls", synth.calls)
	}
}

func TestNewManagerDefaults(t *testing.T) {
	m := NewManager(noopLogger{}, Config{})

	if len(m.config.Texts) != len(DefaultTexts) {
		t.Errorf("expected default texts, got %v", m.config.Texts)
	}
	if m.config.Iterations != 1 {
		t.Errorf("expected one iteration, got %d", m.config.Iterations)
	}
}
