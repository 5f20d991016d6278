package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/pdfchat/pdfchat"
)

// Compile-time interface verification.
var _ pdfchat.ChunkService = (*ChunkService)(nil)

// ChunkService implements pdfchat.ChunkService using SQLite.
type ChunkService struct {
	db *DB
}

// NewChunkService creates a new ChunkService.
func NewChunkService(db *DB) *ChunkService {
	return &ChunkService{db: db}
}

// CreateChunks creates multiple chunks in a batch.
func (s *ChunkService) CreateChunks(ctx context.Context, chunks []*pdfchat.Chunk) error {
	for _, chunk := range chunks {
		if err := chunk.Validate(); err != nil {
			return err
		}
	}

	for _, chunk := range chunks {
		chunk.ID = uuid.New().String()

		_, err := s.db.ExecContext(ctx, `
			INSERT INTO chunks (id, document_id, library_id, file_name, content, position)
			VALUES (?, ?, ?, ?, ?, ?)
		`, chunk.ID, chunk.DocumentID, chunk.LibraryID, chunk.FileName, chunk.Content, chunk.Position)

		if err != nil {
			return err
		}
	}

	return nil
}

// FindChunkByID retrieves a chunk by ID.
func (s *ChunkService) FindChunkByID(ctx context.Context, id string) (*pdfchat.Chunk, error) {
	var chunk pdfchat.Chunk

	err := s.db.QueryRowContext(ctx, `
		SELECT id, document_id, library_id, file_name, content, position
		FROM chunks
		WHERE id = ?
	`, id).Scan(&chunk.ID, &chunk.DocumentID, &chunk.LibraryID, &chunk.FileName,
		&chunk.Content, &chunk.Position)

	if err == sql.ErrNoRows {
		return nil, pdfchat.Errorf(pdfchat.ENOTFOUND, "chunk not found")
	}
	if err != nil {
		return nil, err
	}

	return &chunk, nil
}

// FindChunks retrieves chunks matching the filter, ordered by document
// position then chunk position so retrieval ties break in original order.
func (s *ChunkService) FindChunks(ctx context.Context, filter pdfchat.ChunkFilter) ([]*pdfchat.Chunk, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`
		SELECT c.id, c.document_id, c.library_id, c.file_name, c.content, c.position
		FROM chunks c
		JOIN documents d ON d.id = c.document_id
		WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND c.id = ?")
		args = append(args, *filter.ID)
	}
	if filter.DocumentID != nil {
		query.WriteString(" AND c.document_id = ?")
		args = append(args, *filter.DocumentID)
	}
	if filter.LibraryID != nil {
		query.WriteString(" AND c.library_id = ?")
		args = append(args, *filter.LibraryID)
	}

	query.WriteString(" ORDER BY d.position ASC, c.position ASC")
	addPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chunks []*pdfchat.Chunk
	for rows.Next() {
		var chunk pdfchat.Chunk

		if err := rows.Scan(&chunk.ID, &chunk.DocumentID, &chunk.LibraryID,
			&chunk.FileName, &chunk.Content, &chunk.Position); err != nil {
			return nil, err
		}

		chunks = append(chunks, &chunk)
	}

	return chunks, rows.Err()
}

// DeleteChunksByDocument removes all chunks for a document.
func (s *ChunkService) DeleteChunksByDocument(ctx context.Context, documentID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM chunks WHERE document_id = ?", documentID)
	return err
}

// DeleteChunksByLibrary removes all chunks for a library.
func (s *ChunkService) DeleteChunksByLibrary(ctx context.Context, libraryID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM chunks WHERE library_id = ?", libraryID)
	return err
}
