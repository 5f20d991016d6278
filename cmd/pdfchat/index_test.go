package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfchat/pdfchat"
	main "github.com/pdfchat/pdfchat/cmd/pdfchat"
	"github.com/pdfchat/pdfchat/index"
	"github.com/pdfchat/pdfchat/mock"
	"github.com/pdfchat/pdfchat/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("indexes library folder", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.pdf"), []byte("alpha beta gamma"), 0644))

		db := sqlite.NewDB(":memory:")
		require.NoError(t, db.Open())
		t.Cleanup(func() { _ = db.Close() })

		libsvc := sqlite.NewLibraryService(db)
		docsvc := sqlite.NewDocumentService(db)
		chunksvc := sqlite.NewChunkService(db)

		library := &pdfchat.Library{Name: "handbook", Path: dir}
		require.NoError(t, libsvc.CreateLibrary(context.Background(), library))

		extractor := &mock.TextExtractor{
			ExtractFn: func(_ context.Context, path string) (*pdfchat.ExtractResult, error) {
				data, err := os.ReadFile(path)
				if err != nil {
					return nil, err
				}
				return &pdfchat.ExtractResult{Text: string(data), Pages: 1}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Libraries: libsvc,
			Documents: docsvc,
			Chunks:    chunksvc,
			Indexer: &index.Indexer{
				Extractor: extractor,
				Documents: docsvc,
				Chunks:    chunksvc,
			},
		}

		cmd := &main.IndexCmd{Name: "handbook", ChunkSize: 900, Concurrency: 2}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Found 1 PDF files")
		assert.Contains(t, stdout.String(), "Indexed 1 files")

		docs, err := docsvc.FindDocuments(context.Background(), pdfchat.DocumentFilter{LibraryID: &library.ID})
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "a.pdf", docs[0].FileName)
	})

	t.Run("returns error for unknown library", func(t *testing.T) {
		t.Parallel()

		libraries := &mock.LibraryService{
			FindLibrariesFn: func(_ context.Context, _ pdfchat.LibraryFilter) ([]*pdfchat.Library, error) {
				return []*pdfchat.Library{}, nil
			},
		}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    &bytes.Buffer{},
			Libraries: libraries,
		}

		cmd := &main.IndexCmd{Name: "missing"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, pdfchat.ENOTFOUND, pdfchat.ErrorCode(err))
	})
}
