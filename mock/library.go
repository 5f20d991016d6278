package mock

import (
	"context"

	"github.com/pdfchat/pdfchat"
)

var _ pdfchat.LibraryService = (*LibraryService)(nil)

// LibraryService is a mock implementation of pdfchat.LibraryService.
type LibraryService struct {
	CreateLibraryFn   func(ctx context.Context, library *pdfchat.Library) error
	FindLibraryByIDFn func(ctx context.Context, id string) (*pdfchat.Library, error)
	FindLibrariesFn   func(ctx context.Context, filter pdfchat.LibraryFilter) ([]*pdfchat.Library, error)
	UpdateLibraryFn   func(ctx context.Context, id string, upd pdfchat.LibraryUpdate) (*pdfchat.Library, error)
	DeleteLibraryFn   func(ctx context.Context, id string) error
}

func (s *LibraryService) CreateLibrary(ctx context.Context, library *pdfchat.Library) error {
	return s.CreateLibraryFn(ctx, library)
}

func (s *LibraryService) FindLibraryByID(ctx context.Context, id string) (*pdfchat.Library, error) {
	return s.FindLibraryByIDFn(ctx, id)
}

func (s *LibraryService) FindLibraries(ctx context.Context, filter pdfchat.LibraryFilter) ([]*pdfchat.Library, error) {
	return s.FindLibrariesFn(ctx, filter)
}

func (s *LibraryService) UpdateLibrary(ctx context.Context, id string, upd pdfchat.LibraryUpdate) (*pdfchat.Library, error) {
	return s.UpdateLibraryFn(ctx, id, upd)
}

func (s *LibraryService) DeleteLibrary(ctx context.Context, id string) error {
	return s.DeleteLibraryFn(ctx, id)
}
