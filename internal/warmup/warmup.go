package warmup

import (
	"context"
	"runtime"
	"time"

	"github.com/luukhd2/Glados-text-to-speech/internal/ports"
)

// DefaultTexts are the utterances spoken during warmup. Short digit
// prompts exercise the number expansion path and keep the first real
// synthesis from paying the kernel setup cost.
var DefaultTexts = []string{"0", "1"}

// Config defines configuration for warming up the system
type Config struct {
	// Texts to run through each registered component
	Texts []string
	// Number of iterations per component
	Iterations int
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultConfig returns the default warmup configuration
func DefaultConfig() Config {
	return Config{
		Texts:      DefaultTexts,
		Iterations: 1,
		ForceGC:    true,
	}
}

// Manager handles system warmup operations
type Manager struct {
	logger       ports.Logger
	normalizers  []ports.Normalizer
	preparers    []ports.TextPreparer
	synthesizers []ports.Synthesizer
	config       Config
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config Config) *Manager {
	if len(config.Texts) == 0 {
		config.Texts = DefaultTexts
	}
	if config.Iterations <= 0 {
		config.Iterations = 1
	}
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterNormalizer adds a normalizer to be warmed up
func (wm *Manager) RegisterNormalizer(norm ports.Normalizer) {
	wm.normalizers = append(wm.normalizers, norm)
}

// RegisterPreparer adds a text preparer to be warmed up
func (wm *Manager) RegisterPreparer(prep ports.TextPreparer) {
	wm.preparers = append(wm.preparers, prep)
}

// RegisterSynthesizer adds a synthesizer to be warmed up
func (wm *Manager) RegisterSynthesizer(synth ports.Synthesizer) {
	wm.synthesizers = append(wm.synthesizers, synth)
}

// WarmUp runs the warmup process for all registered components.
// Components run one at a time; the inference sessions behind a
// synthesizer serve a single caller, so there is nothing to gain from
// concurrent warmup. Component errors are logged and skipped.
func (wm *Manager) WarmUp(ctx context.Context) {
	startTime := time.Now()
	wm.logger.Info("Starting system warmup",
		"components", len(wm.normalizers)+len(wm.preparers)+len(wm.synthesizers),
		"texts", len(wm.config.Texts),
		"iterations", wm.config.Iterations,
	)

	wm.warmUpNormalizers(ctx)
	wm.warmUpPreparers(ctx)
	wm.warmUpSynthesizers(ctx)

	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	wm.logger.Info("System warmup completed",
		"duration", time.Since(startTime),
	)
}

// warmUpNormalizers runs warmup for all registered normalizers
func (wm *Manager) warmUpNormalizers(ctx context.Context) {
	if len(wm.normalizers) == 0 {
		return
	}

	wm.logger.Debug("Warming up normalizers", "count", len(wm.normalizers))

	for i := 0; i < wm.config.Iterations; i++ {
		if ctx.Err() != nil {
			return
		}
		for _, normalizer := range wm.normalizers {
			for _, text := range wm.config.Texts {
				_ = normalizer.Normalize(text)
			}
		}
	}
}

// warmUpPreparers runs warmup for all registered text preparers
func (wm *Manager) warmUpPreparers(ctx context.Context) {
	if len(wm.preparers) == 0 {
		return
	}

	wm.logger.Debug("Warming up text preparers", "count", len(wm.preparers))

	for i := 0; i < wm.config.Iterations; i++ {
		if ctx.Err() != nil {
			return
		}
		for _, preparer := range wm.preparers {
			for _, text := range wm.config.Texts {
				if _, err := preparer.Prepare(ctx, text); err != nil {
					wm.logger.Warn("Warmup preparation failed",
						"text", text,
						"error", err,
					)
				}
			}
		}
	}
}

// warmUpSynthesizers runs warmup for all registered synthesizers
func (wm *Manager) warmUpSynthesizers(ctx context.Context) {
	if len(wm.synthesizers) == 0 {
		return
	}

	wm.logger.Debug("Warming up synthesizers", "count", len(wm.synthesizers))

	for i := 0; i < wm.config.Iterations; i++ {
		if ctx.Err() != nil {
			return
		}
		for _, synthesizer := range wm.synthesizers {
			for _, text := range wm.config.Texts {
				if _, err := synthesizer.Synthesize(ctx, text); err != nil {
					wm.logger.Warn("Warmup synthesis failed",
						"text", text,
						"error", err,
					)
				}
			}
		}
	}
}
