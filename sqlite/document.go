package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/pdfchat/pdfchat"
)

// Compile-time interface verification.
var _ pdfchat.DocumentService = (*DocumentService)(nil)

// DocumentService implements pdfchat.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// HashContent computes the xxHash of content and returns it as a hex string.
// The hash is stored alongside the document so external tooling can detect
// content changes without reading the full text; change detection during
// re-indexing compares the extracted text directly.
func HashContent(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}

// CreateDocument creates a new document.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *pdfchat.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	doc.IndexedAt = time.Now().UTC()
	doc.ContentHash = HashContent(doc.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, library_id, file_name, content, content_hash, pages, position, indexed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.LibraryID, doc.FileName, doc.Content, doc.ContentHash,
		doc.Pages, doc.Position, doc.IndexedAt.Format(time.RFC3339))

	return err
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*pdfchat.Document, error) {
	var doc pdfchat.Document
	var indexedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, library_id, file_name, content, content_hash, pages, position, indexed_at
		FROM documents
		WHERE id = ?
	`, id).Scan(&doc.ID, &doc.LibraryID, &doc.FileName, &doc.Content,
		&doc.ContentHash, &doc.Pages, &doc.Position, &indexedAt)

	if err == sql.ErrNoRows {
		return nil, pdfchat.Errorf(pdfchat.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}

	if doc.IndexedAt, err = scanTime(indexedAt, "indexed_at"); err != nil {
		return nil, err
	}

	return &doc, nil
}

// FindDocuments retrieves documents matching the filter.
func (s *DocumentService) FindDocuments(ctx context.Context, filter pdfchat.DocumentFilter) ([]*pdfchat.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, library_id, file_name, content, content_hash, pages, position, indexed_at FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.LibraryID != nil {
		query.WriteString(" AND library_id = ?")
		args = append(args, *filter.LibraryID)
	}
	if filter.FileName != nil {
		query.WriteString(" AND file_name = ?")
		args = append(args, *filter.FileName)
	}

	switch filter.SortBy {
	case pdfchat.SortByPosition:
		query.WriteString(" ORDER BY position ASC")
	default:
		query.WriteString(" ORDER BY indexed_at DESC")
	}

	addPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*pdfchat.Document
	for rows.Next() {
		var doc pdfchat.Document
		var indexedAt string

		if err := rows.Scan(&doc.ID, &doc.LibraryID, &doc.FileName, &doc.Content,
			&doc.ContentHash, &doc.Pages, &doc.Position, &indexedAt); err != nil {
			return nil, err
		}

		if doc.IndexedAt, err = scanTime(indexedAt, "indexed_at"); err != nil {
			return nil, err
		}

		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}

// UpdateDocument updates an existing document.
func (s *DocumentService) UpdateDocument(ctx context.Context, id string, upd pdfchat.DocumentUpdate) (*pdfchat.Document, error) {
	doc, err := s.FindDocumentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Position != nil {
		doc.Position = *upd.Position
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE documents SET position = ? WHERE id = ?
	`, doc.Position, doc.ID)
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// DeleteDocument permanently removes a document. Associated chunks cascade
// via foreign keys.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return pdfchat.Errorf(pdfchat.ENOTFOUND, "document not found")
	}

	return nil
}

// DeleteDocumentsByLibrary removes all documents for a library.
func (s *DocumentService) DeleteDocumentsByLibrary(ctx context.Context, libraryID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE library_id = ?", libraryID)
	return err
}
