// Package slog provides logging decorators for pdfchat services using the
// standard library's structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pdfchat/pdfchat"
)

// Ensure LoggingRetriever implements pdfchat.Retriever.
var _ pdfchat.Retriever = (*LoggingRetriever)(nil)

// LoggingRetriever wraps a Retriever with debug logging.
type LoggingRetriever struct {
	next   pdfchat.Retriever
	logger *slog.Logger
}

// NewLoggingRetriever creates a new LoggingRetriever.
func NewLoggingRetriever(next pdfchat.Retriever, logger *slog.Logger) *LoggingRetriever {
	return &LoggingRetriever{next: next, logger: logger}
}

// Search delegates to the wrapped retriever and logs the operation.
func (r *LoggingRetriever) Search(ctx context.Context, query string, opts pdfchat.SearchOptions) (results []pdfchat.SearchResult, err error) {
	defer func(begin time.Time) {
		r.logger.Info("chunk retrieval",
			"query", query,
			"library", opts.LibraryID,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Search(ctx, query, opts)
}
