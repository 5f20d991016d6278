package mock

import (
	"context"

	"github.com/pdfchat/pdfchat"
)

var _ pdfchat.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of pdfchat.TextExtractor.
type TextExtractor struct {
	ExtractFn func(ctx context.Context, path string) (*pdfchat.ExtractResult, error)
}

func (e *TextExtractor) Extract(ctx context.Context, path string) (*pdfchat.ExtractResult, error) {
	return e.ExtractFn(ctx, path)
}
