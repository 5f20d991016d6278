package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/pdfchat/pdfchat"
	main "github.com/pdfchat/pdfchat/cmd/pdfchat"
	"github.com/pdfchat/pdfchat/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	libraries := func() *mock.LibraryService {
		return &mock.LibraryService{
			FindLibrariesFn: func(_ context.Context, filter pdfchat.LibraryFilter) ([]*pdfchat.Library, error) {
				if filter.Name != nil && *filter.Name == "handbook" {
					return []*pdfchat.Library{{ID: "lib-1", Name: "handbook"}}, nil
				}
				return []*pdfchat.Library{}, nil
			},
		}
	}

	t.Run("prints scored chunks", func(t *testing.T) {
		t.Parallel()

		var gotOpts pdfchat.SearchOptions
		retriever := &mock.Retriever{
			SearchFn: func(_ context.Context, query string, opts pdfchat.SearchOptions) ([]pdfchat.SearchResult, error) {
				gotOpts = opts
				return []pdfchat.SearchResult{
					{Chunk: &pdfchat.Chunk{FileName: "policy.pdf", Content: "Refunds within 30 days."}, Score: 3},
					{Chunk: &pdfchat.Chunk{FileName: "faq.pdf", Content: "See the policy document."}, Score: 1},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Libraries: libraries(),
			Retriever: retriever,
		}

		cmd := &main.SearchCmd{Name: "handbook", Query: "refund policy", TopK: 2}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "lib-1", gotOpts.LibraryID)
		assert.Equal(t, 2, gotOpts.Limit)
		assert.Contains(t, stdout.String(), "[score 3] policy.pdf")
		assert.Contains(t, stdout.String(), "Refunds within 30 days.")
		assert.Contains(t, stdout.String(), "[score 1] faq.pdf")
	})

	t.Run("reports no matches", func(t *testing.T) {
		t.Parallel()

		retriever := &mock.Retriever{
			SearchFn: func(_ context.Context, _ string, _ pdfchat.SearchOptions) ([]pdfchat.SearchResult, error) {
				return []pdfchat.SearchResult{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Libraries: libraries(),
			Retriever: retriever,
		}

		cmd := &main.SearchCmd{Name: "handbook", Query: "zzz"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No matching chunks found.")
	})
}
