package pdfchat

import "context"

// Generator produces an answer to a question from supplied context chunks
// by calling a language model.
type Generator interface {
	// Generate sends the question and context to the model and returns its
	// answer. Connection failures, timeouts, and non-200 responses are
	// returned as errors with code EUNAVAILABLE.
	Generate(ctx context.Context, question string, chunks []*Chunk) (string, error)
}
