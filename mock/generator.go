package mock

import (
	"context"

	"github.com/pdfchat/pdfchat"
)

var _ pdfchat.Generator = (*Generator)(nil)

// Generator is a mock implementation of pdfchat.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, question string, chunks []*pdfchat.Chunk) (string, error)
}

func (g *Generator) Generate(ctx context.Context, question string, chunks []*pdfchat.Chunk) (string, error) {
	return g.GenerateFn(ctx, question, chunks)
}
