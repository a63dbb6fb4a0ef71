package ports

import "context"

// TextCleaner rewrites raw text into the plain spoken form expected by the
// phonemization stage.
type TextCleaner interface {
	Clean(ctx context.Context, text string) (string, error)
}
