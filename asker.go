package pdfchat

import "context"

// Asker answers natural language questions about a library's documents.
type Asker interface {
	// Ask answers a question using the library's indexed chunks as context.
	// Generation failures are recovered internally by returning the raw
	// retrieved chunks; Ask only fails on retrieval or validation errors.
	// Returns ENOTFOUND if the library does not exist.
	Ask(ctx context.Context, libraryID string, question string) (string, error)
}
