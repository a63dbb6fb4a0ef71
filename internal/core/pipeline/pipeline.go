// Package pipeline chains the text preparation stages that turn raw English
// into the token IDs the acoustic model consumes: terminal punctuation
// guard, cleaning, phonemization, phoneme filtering and tokenization.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/luukhd2/Glados-text-to-speech/internal/core/cleaner"
	"github.com/luukhd2/Glados-text-to-speech/internal/core/domain"
	"github.com/luukhd2/Glados-text-to-speech/internal/core/tokenizer"
	"github.com/luukhd2/Glados-text-to-speech/internal/ports"
)

// Config holds configuration for a Processor.
type Config struct {
	// UsePhonemes runs the phonemizer over cleaned text. When false the
	// cleaned text is tokenized directly, which only makes sense for input
	// that is already phonemic.
	UsePhonemes bool
	// Language tags the phonemizer invocation, for example "en_us".
	Language string
}

// DefaultConfig returns the configuration the pretrained voice expects.
func DefaultConfig() Config {
	return Config{UsePhonemes: true, Language: "en_us"}
}

// Validate checks the configuration parameters.
func (c Config) Validate() error {
	if c.Language == "" {
		return fmt.Errorf("language must not be empty")
	}
	return nil
}

// Processor prepares raw text for synthesis. It implements
// ports.TextPreparer.
type Processor struct {
	config     Config
	logger     ports.Logger
	cleaner    ports.TextCleaner
	phonemizer ports.Phonemizer
	tokenizer  *tokenizer.Tokenizer
}

// New creates a Processor. The phonemizer may be nil only when
// Config.UsePhonemes is false.
func New(config Config, logger ports.Logger, cl ports.TextCleaner, ph ports.Phonemizer, tok *tokenizer.Tokenizer) (*Processor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if cl == nil {
		return nil, fmt.Errorf("cleaner must not be nil")
	}
	if config.UsePhonemes && ph == nil {
		return nil, fmt.Errorf("phonemizer must not be nil when phonemes are enabled")
	}
	if tok == nil {
		tok = tokenizer.New()
	}
	return &Processor{config: config, logger: logger, cleaner: cl, phonemizer: ph, tokenizer: tok}, nil
}

// Prepare runs the full preparation pipeline over text.
func (p *Processor) Prepare(ctx context.Context, text string) (domain.Prepared, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Prepared{}, fmt.Errorf("input text is empty")
	}

	raw := EnsureTerminator(text)

	select {
	case <-ctx.Done():
		p.logger.Warn("Text preparation canceled", "error", ctx.Err())
		return domain.Prepared{}, ctx.Err()
	default:
	}

	cleaned, err := p.cleaner.Clean(ctx, raw)
	if err != nil {
		return domain.Prepared{}, fmt.Errorf("cleaning failed: %w", err)
	}
	p.logger.Debug("Cleaned text", "text", cleaned)

	phonemes := cleaned
	if p.config.UsePhonemes {
		select {
		case <-ctx.Done():
			p.logger.Warn("Text preparation canceled", "error", ctx.Err())
			return domain.Prepared{}, ctx.Err()
		default:
		}

		phonemes, err = p.phonemizer.Phonemize(ctx, cleaned)
		if err != nil {
			return domain.Prepared{}, fmt.Errorf("phonemization failed: %w", err)
		}
		// Drop anything the model was not trained on, stray stress marks
		// from unusual words included.
		phonemes = p.tokenizer.Filter(phonemes)
	}
	phonemes = cleaner.CollapseWhitespace(phonemes)
	p.logger.Debug("Phonemized text", "phonemes", phonemes)

	tokens := p.tokenizer.Encode(phonemes)
	if len(tokens) == 0 {
		return domain.Prepared{}, fmt.Errorf("no usable symbols in input %q", text)
	}

	return domain.Prepared{
		Raw:      text,
		Cleaned:  cleaned,
		Phonemes: phonemes,
		Tokens:   tokens,
	}, nil
}

// Decode maps token IDs back to their phoneme symbols. Useful for
// inspecting what the acoustic model will actually be fed.
func (p *Processor) Decode(ids []int64) string {
	return p.tokenizer.Decode(ids)
}

// EnsureTerminator appends a period when text does not already end in
// terminal punctuation. Without one the model trails off mid-breath at the
// end of the utterance.
func EnsureTerminator(text string) string {
	if text == "" {
		return text
	}
	switch text[len(text)-1] {
	case '.', '?', '!':
		return text
	}
	return text + "."
}
