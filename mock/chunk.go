package mock

import (
	"context"

	"github.com/pdfchat/pdfchat"
)

var _ pdfchat.ChunkService = (*ChunkService)(nil)

// ChunkService is a mock implementation of pdfchat.ChunkService.
type ChunkService struct {
	CreateChunksFn           func(ctx context.Context, chunks []*pdfchat.Chunk) error
	FindChunkByIDFn          func(ctx context.Context, id string) (*pdfchat.Chunk, error)
	FindChunksFn             func(ctx context.Context, filter pdfchat.ChunkFilter) ([]*pdfchat.Chunk, error)
	DeleteChunksByDocumentFn func(ctx context.Context, documentID string) error
	DeleteChunksByLibraryFn  func(ctx context.Context, libraryID string) error
}

func (s *ChunkService) CreateChunks(ctx context.Context, chunks []*pdfchat.Chunk) error {
	return s.CreateChunksFn(ctx, chunks)
}

func (s *ChunkService) FindChunkByID(ctx context.Context, id string) (*pdfchat.Chunk, error) {
	return s.FindChunkByIDFn(ctx, id)
}

func (s *ChunkService) FindChunks(ctx context.Context, filter pdfchat.ChunkFilter) ([]*pdfchat.Chunk, error) {
	return s.FindChunksFn(ctx, filter)
}

func (s *ChunkService) DeleteChunksByDocument(ctx context.Context, documentID string) error {
	return s.DeleteChunksByDocumentFn(ctx, documentID)
}

func (s *ChunkService) DeleteChunksByLibrary(ctx context.Context, libraryID string) error {
	return s.DeleteChunksByLibraryFn(ctx, libraryID)
}
