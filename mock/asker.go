package mock

import (
	"context"

	"github.com/pdfchat/pdfchat"
)

var _ pdfchat.Asker = (*Asker)(nil)

// Asker is a mock implementation of pdfchat.Asker.
type Asker struct {
	AskFn func(ctx context.Context, libraryID, question string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, libraryID, question string) (string, error) {
	return a.AskFn(ctx, libraryID, question)
}
