package mock

import (
	"context"

	"github.com/pdfchat/pdfchat"
)

var _ pdfchat.Retriever = (*Retriever)(nil)

// Retriever is a mock implementation of pdfchat.Retriever.
type Retriever struct {
	SearchFn func(ctx context.Context, query string, opts pdfchat.SearchOptions) ([]pdfchat.SearchResult, error)
}

func (r *Retriever) Search(ctx context.Context, query string, opts pdfchat.SearchOptions) ([]pdfchat.SearchResult, error) {
	return r.SearchFn(ctx, query, opts)
}
