package pdfchat

import (
	"context"
)

// DefaultChunkSize is the number of characters per chunk of extracted text.
const DefaultChunkSize = 900

// DefaultTopK is the number of chunks retrieved as context for a question.
const DefaultTopK = 4

// Chunk represents a fixed-size span of extracted PDF text used as a
// retrieval unit. Chunks are ordered within their document and immutable
// after creation; re-indexing a document replaces its chunks wholesale.
type Chunk struct {
	ID         string `json:"id"`
	DocumentID string `json:"documentId"`
	LibraryID  string `json:"libraryId"` // Denormalized for efficient filtering
	FileName   string `json:"fileName"`  // Source file for citation
	Content    string `json:"content"`
	Position   int    `json:"position"`
}

// Validate returns an error if the chunk contains invalid fields.
func (c *Chunk) Validate() error {
	if c.DocumentID == "" {
		return Errorf(EINVALID, "chunk document ID required")
	}
	if c.LibraryID == "" {
		return Errorf(EINVALID, "chunk library ID required")
	}
	if c.Content == "" {
		return Errorf(EINVALID, "chunk content required")
	}
	return nil
}

// ChunkService represents a service for managing chunks.
type ChunkService interface {
	// CreateChunks creates multiple chunks in a batch.
	CreateChunks(ctx context.Context, chunks []*Chunk) error

	// FindChunkByID retrieves a chunk by ID.
	// Returns ENOTFOUND if chunk does not exist.
	FindChunkByID(ctx context.Context, id string) (*Chunk, error)

	// FindChunks retrieves chunks matching the filter, ordered by document
	// position then chunk position.
	FindChunks(ctx context.Context, filter ChunkFilter) ([]*Chunk, error)

	// DeleteChunksByDocument removes all chunks for a document.
	DeleteChunksByDocument(ctx context.Context, documentID string) error

	// DeleteChunksByLibrary removes all chunks for a library.
	DeleteChunksByLibrary(ctx context.Context, libraryID string) error
}

// ChunkFilter represents a filter for FindChunks.
type ChunkFilter struct {
	ID         *string `json:"id"`
	DocumentID *string `json:"documentId"`
	LibraryID  *string `json:"libraryId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Retriever selects the chunks most relevant to a query.
type Retriever interface {
	// Search returns up to opts.Limit chunks ordered by descending relevance
	// to the query. A query with no matching chunks returns an empty slice.
	Search(ctx context.Context, query string, opts SearchOptions) ([]SearchResult, error)
}

// SearchOptions configures retrieval behavior.
type SearchOptions struct {
	// Filter results to a specific library.
	LibraryID string `json:"libraryId,omitempty"`

	// Maximum number of results to return. Defaults to DefaultTopK.
	Limit int `json:"limit,omitempty"`
}

// SearchResult represents a retrieval match.
type SearchResult struct {
	Chunk *Chunk `json:"chunk"`
	Score int    `json:"score"`
}
