package text

import (
	"context"

	"github.com/baditaflorin/l"
	"github.com/luukhd2/Glados-text-to-speech/internal/adapters/logger"
	"github.com/luukhd2/Glados-text-to-speech/internal/adapters/phonemizer"
	"github.com/luukhd2/Glados-text-to-speech/internal/adapters/translit"
	"github.com/luukhd2/Glados-text-to-speech/internal/core/cleaner"
	"github.com/luukhd2/Glados-text-to-speech/internal/core/domain"
	"github.com/luukhd2/Glados-text-to-speech/internal/core/pipeline"
	"github.com/luukhd2/Glados-text-to-speech/internal/core/tokenizer"
	"github.com/luukhd2/Glados-text-to-speech/internal/ports"
	"github.com/luukhd2/Glados-text-to-speech/internal/warmup"
)

// Pipeline provides methods to turn raw English text into the phoneme
// token sequence the acoustic model consumes. The zero-dependency
// rule-based phonemizer is used unless a model-backed one is injected,
// so the pipeline works without any checkpoint files on disk.
type Pipeline struct {
	processor  *pipeline.Processor
	cleaner    ports.TextCleaner
	phonemizer ports.Phonemizer
	translit   ports.Normalizer
	logger     ports.Logger
	warmed     bool
}

// PipelineOption defines a functional option for configuring Pipeline.
type PipelineOption func(*pipelineConfig)

type pipelineConfig struct {
	CleanerName    string
	UsePhonemes    bool
	Language       string
	Logger         ports.Logger
	Phonemizer     ports.Phonemizer
	Transliterator ports.Normalizer
}

// WithLogger sets a custom logger for the pipeline.
func WithLogger(l l.Logger) PipelineOption {
	return func(cfg *pipelineConfig) {
		cfg.Logger = logger.FromExisting(l)
	}
}

// WithCleaner selects the text cleaner by name.
func WithCleaner(name string) PipelineOption {
	return func(cfg *pipelineConfig) {
		cfg.CleanerName = name
	}
}

// WithoutPhonemes skips phonemization and tokenizes the cleaned text
// directly. Only useful with models trained on raw characters.
func WithoutPhonemes() PipelineOption {
	return func(cfg *pipelineConfig) {
		cfg.UsePhonemes = false
	}
}

// WithLanguage sets the language tag passed to the phonemizer.
func WithLanguage(lang string) PipelineOption {
	return func(cfg *pipelineConfig) {
		cfg.Language = lang
	}
}

// WithPhonemizer sets a custom phonemizer backend.
func WithPhonemizer(ph ports.Phonemizer) PipelineOption {
	return func(cfg *pipelineConfig) {
		cfg.Phonemizer = ph
	}
}

// WithTransliterator sets a custom ASCII transliterator.
func WithTransliterator(n ports.Normalizer) PipelineOption {
	return func(cfg *pipelineConfig) {
		cfg.Transliterator = n
	}
}

// New creates a new Pipeline instance.
func New(opts ...PipelineOption) (*Pipeline, error) {
	defaultConfig := pipeline.DefaultConfig()

	config := &pipelineConfig{
		CleanerName: cleaner.DefaultConfig().Name,
		UsePhonemes: defaultConfig.UsePhonemes,
		Language:    defaultConfig.Language,
	}

	// Apply options
	for _, opt := range opts {
		opt(config)
	}

	// Set up logger if not provided
	if config.Logger == nil {
		var err error
		config.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	// Set up transliterator if not provided
	if config.Transliterator == nil {
		config.Transliterator = translit.New()
	}

	cl, err := cleaner.New(cleaner.Config{Name: config.CleanerName}, config.Logger, config.Transliterator)
	if err != nil {
		return nil, err
	}

	// Set up phonemizer if not provided
	if config.Phonemizer == nil && config.UsePhonemes {
		config.Phonemizer, err = phonemizer.NewFactory().Create(
			phonemizer.LexiconBackend, phonemizer.ONNXConfig{Language: config.Language}, config.Logger, nil)
		if err != nil {
			return nil, err
		}
	}

	coreConfig := pipeline.Config{
		UsePhonemes: config.UsePhonemes,
		Language:    config.Language,
	}
	processor, err := pipeline.New(coreConfig, config.Logger, cl, config.Phonemizer, tokenizer.New())
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		processor:  processor,
		cleaner:    cl,
		phonemizer: config.Phonemizer,
		translit:   config.Transliterator,
		logger:     config.Logger,
	}, nil
}

// Clean rewrites raw text into its plain spoken form: ASCII
// transliteration, number expansion and abbreviation expansion.
func (p *Pipeline) Clean(ctx context.Context, text string) (string, error) {
	return p.cleaner.Clean(ctx, text)
}

// Phonemize converts cleaned text to an IPA phoneme string.
func (p *Pipeline) Phonemize(ctx context.Context, text string) (string, error) {
	if p.phonemizer == nil {
		return text, nil
	}
	return p.phonemizer.Phonemize(ctx, text)
}

// Prepare runs the full preparation pipeline on raw text.
func (p *Pipeline) Prepare(ctx context.Context, text string) (domain.Prepared, error) {
	return p.processor.Prepare(ctx, text)
}

// Decode maps a token sequence back to its symbol string.
func (p *Pipeline) Decode(ids []int64) string {
	return p.processor.Decode(ids)
}

// WarmUp primes the pipeline's caches and pools.
func (p *Pipeline) WarmUp(ctx context.Context, config warmup.Config) {
	if p.warmed {
		p.logger.Debug("Pipeline already warmed up, skipping")
		return
	}

	warmupMgr := warmup.NewManager(p.logger, config)
	warmupMgr.RegisterNormalizer(p.translit)
	warmupMgr.RegisterPreparer(p.processor)

	warmupMgr.WarmUp(ctx)
	p.warmed = true
}

// Close releases the phonemizer backend.
func (p *Pipeline) Close() error {
	if p.phonemizer == nil {
		return nil
	}
	return p.phonemizer.Close()
}
