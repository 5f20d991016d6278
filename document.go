package pdfchat

import (
	"context"
	"time"
)

// Document represents one source PDF that has been extracted and indexed.
type Document struct {
	ID          string    `json:"id"`
	LibraryID   string    `json:"libraryId"`
	FileName    string    `json:"fileName"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	Pages       int       `json:"pages"`
	Position    int       `json:"position"`
	IndexedAt   time.Time `json:"indexedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.LibraryID == "" {
		return Errorf(EINVALID, "document library ID required")
	}
	if d.FileName == "" {
		return Errorf(EINVALID, "document file name required")
	}
	return nil
}

// SortOrder represents the sort order for document queries.
type SortOrder string

// SortOrder constants for DocumentFilter.
const (
	SortByIndexedAt SortOrder = "indexed_at"
	SortByPosition  SortOrder = "position"
)

// DocumentService represents a service for managing documents.
type DocumentService interface {
	// CreateDocument creates a new document.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// UpdateDocument updates an existing document.
	// Returns ENOTFOUND if document does not exist.
	UpdateDocument(ctx context.Context, id string, upd DocumentUpdate) (*Document, error)

	// DeleteDocument permanently removes a document and all associated chunks.
	// Returns ENOTFOUND if document does not exist.
	DeleteDocument(ctx context.Context, id string) error

	// DeleteDocumentsByLibrary removes all documents for a library.
	DeleteDocumentsByLibrary(ctx context.Context, libraryID string) error
}

// DocumentUpdate represents fields that can be updated on a document.
type DocumentUpdate struct {
	Position *int `json:"position"`
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID        *string `json:"id"`
	LibraryID *string `json:"libraryId"`
	FileName  *string `json:"fileName"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy SortOrder `json:"sortBy"`
}
