package mock

import (
	"context"

	"github.com/pdfchat/pdfchat"
)

var _ pdfchat.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of pdfchat.DocumentService.
type DocumentService struct {
	CreateDocumentFn           func(ctx context.Context, doc *pdfchat.Document) error
	FindDocumentByIDFn         func(ctx context.Context, id string) (*pdfchat.Document, error)
	FindDocumentsFn            func(ctx context.Context, filter pdfchat.DocumentFilter) ([]*pdfchat.Document, error)
	UpdateDocumentFn           func(ctx context.Context, id string, upd pdfchat.DocumentUpdate) (*pdfchat.Document, error)
	DeleteDocumentFn           func(ctx context.Context, id string) error
	DeleteDocumentsByLibraryFn func(ctx context.Context, libraryID string) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *pdfchat.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*pdfchat.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter pdfchat.DocumentFilter) ([]*pdfchat.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) UpdateDocument(ctx context.Context, id string, upd pdfchat.DocumentUpdate) (*pdfchat.Document, error) {
	return s.UpdateDocumentFn(ctx, id, upd)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	return s.DeleteDocumentFn(ctx, id)
}

func (s *DocumentService) DeleteDocumentsByLibrary(ctx context.Context, libraryID string) error {
	return s.DeleteDocumentsByLibraryFn(ctx, libraryID)
}
