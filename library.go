package pdfchat

import (
	"context"
	"time"
)

// Library represents a registered directory of PDF files to be indexed
// and queried.
type Library struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the library contains invalid fields.
func (l *Library) Validate() error {
	if l.Name == "" {
		return Errorf(EINVALID, "library name required")
	}
	if l.Path == "" {
		return Errorf(EINVALID, "library path required")
	}
	return nil
}

// LibraryService represents a service for managing libraries.
type LibraryService interface {
	// CreateLibrary creates a new library.
	CreateLibrary(ctx context.Context, library *Library) error

	// FindLibraryByID retrieves a library by ID.
	// Returns ENOTFOUND if library does not exist.
	FindLibraryByID(ctx context.Context, id string) (*Library, error)

	// FindLibraries retrieves libraries matching the filter.
	FindLibraries(ctx context.Context, filter LibraryFilter) ([]*Library, error)

	// UpdateLibrary updates an existing library.
	// Returns ENOTFOUND if library does not exist.
	UpdateLibrary(ctx context.Context, id string, upd LibraryUpdate) (*Library, error)

	// DeleteLibrary permanently removes a library and all associated
	// documents and chunks.
	// Returns ENOTFOUND if library does not exist.
	DeleteLibrary(ctx context.Context, id string) error
}

// LibraryFilter represents a filter for FindLibraries.
type LibraryFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// LibraryUpdate represents fields that can be updated on a library.
type LibraryUpdate struct {
	Name *string `json:"name"`
	Path *string `json:"path"`
}
