package ports

import (
	"context"

	"github.com/luukhd2/Glados-text-to-speech/internal/core/domain"
)

// TextPreparer defines the interface for turning raw text into a phoneme
// token sequence ready for the acoustic model.
type TextPreparer interface {
	Prepare(ctx context.Context, text string) (domain.Prepared, error)
}
