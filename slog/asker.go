package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pdfchat/pdfchat"
)

// Ensure LoggingAsker implements pdfchat.Asker.
var _ pdfchat.Asker = (*LoggingAsker)(nil)

// LoggingAsker wraps an Asker with debug logging.
type LoggingAsker struct {
	next   pdfchat.Asker
	logger *slog.Logger
}

// NewLoggingAsker creates a new LoggingAsker.
func NewLoggingAsker(next pdfchat.Asker, logger *slog.Logger) *LoggingAsker {
	return &LoggingAsker{next: next, logger: logger}
}

// Ask delegates to the wrapped asker and logs the operation.
func (a *LoggingAsker) Ask(ctx context.Context, libraryID, question string) (answer string, err error) {
	defer func(begin time.Time) {
		a.logger.Info("question answered",
			"library", libraryID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Ask(ctx, libraryID, question)
}
