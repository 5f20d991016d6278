package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pdfchat/pdfchat"
)

// Compile-time interface verification.
var _ pdfchat.LibraryService = (*LibraryService)(nil)

// LibraryService implements pdfchat.LibraryService using SQLite.
type LibraryService struct {
	db *DB
}

// NewLibraryService creates a new LibraryService.
func NewLibraryService(db *DB) *LibraryService {
	return &LibraryService{db: db}
}

// CreateLibrary creates a new library.
func (s *LibraryService) CreateLibrary(ctx context.Context, library *pdfchat.Library) error {
	if err := library.Validate(); err != nil {
		return err
	}

	library.ID = uuid.New().String()
	now := time.Now().UTC()
	library.CreatedAt = now
	library.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO libraries (id, name, path, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, library.ID, library.Name, library.Path,
		library.CreatedAt.Format(time.RFC3339), library.UpdatedAt.Format(time.RFC3339))

	if err != nil && strings.Contains(err.Error(), "UNIQUE") {
		return pdfchat.Errorf(pdfchat.ECONFLICT, "library %q already exists", library.Name)
	}
	return err
}

// FindLibraryByID retrieves a library by ID.
func (s *LibraryService) FindLibraryByID(ctx context.Context, id string) (*pdfchat.Library, error) {
	var library pdfchat.Library
	var createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, path, created_at, updated_at
		FROM libraries
		WHERE id = ?
	`, id).Scan(&library.ID, &library.Name, &library.Path, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, pdfchat.Errorf(pdfchat.ENOTFOUND, "library not found")
	}
	if err != nil {
		return nil, err
	}

	if library.CreatedAt, err = scanTime(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if library.UpdatedAt, err = scanTime(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &library, nil
}

// FindLibraries retrieves libraries matching the filter.
func (s *LibraryService) FindLibraries(ctx context.Context, filter pdfchat.LibraryFilter) ([]*pdfchat.Library, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, path, created_at, updated_at FROM libraries WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY created_at DESC")
	addPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var libraries []*pdfchat.Library
	for rows.Next() {
		var library pdfchat.Library
		var createdAt, updatedAt string

		if err := rows.Scan(&library.ID, &library.Name, &library.Path, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		if library.CreatedAt, err = scanTime(createdAt, "created_at"); err != nil {
			return nil, err
		}
		if library.UpdatedAt, err = scanTime(updatedAt, "updated_at"); err != nil {
			return nil, err
		}

		libraries = append(libraries, &library)
	}

	return libraries, rows.Err()
}

// UpdateLibrary updates an existing library.
func (s *LibraryService) UpdateLibrary(ctx context.Context, id string, upd pdfchat.LibraryUpdate) (*pdfchat.Library, error) {
	library, err := s.FindLibraryByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		library.Name = *upd.Name
	}
	if upd.Path != nil {
		library.Path = *upd.Path
	}
	library.UpdatedAt = time.Now().UTC()

	if err := library.Validate(); err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE libraries
		SET name = ?, path = ?, updated_at = ?
		WHERE id = ?
	`, library.Name, library.Path, library.UpdatedAt.Format(time.RFC3339), id)

	if err != nil {
		return nil, err
	}

	return library, nil
}

// DeleteLibrary permanently removes a library. Associated documents and
// chunks cascade via foreign keys.
func (s *LibraryService) DeleteLibrary(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM libraries WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return pdfchat.Errorf(pdfchat.ENOTFOUND, "library not found")
	}

	return nil
}
