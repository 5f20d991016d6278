package answer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/pdfchat/pdfchat"
	"github.com/pdfchat/pdfchat/answer"
	"github.com/pdfchat/pdfchat/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func existingLibrary() *mock.LibraryService {
	return &mock.LibraryService{
		FindLibraryByIDFn: func(_ context.Context, id string) (*pdfchat.Library, error) {
			return &pdfchat.Library{ID: id, Name: "handbooks", Path: "/data/pdf"}, nil
		},
	}
}

func retrieverWith(results []pdfchat.SearchResult) *mock.Retriever {
	return &mock.Retriever{
		SearchFn: func(_ context.Context, _ string, _ pdfchat.SearchOptions) ([]pdfchat.SearchResult, error) {
			return results, nil
		},
	}
}

func TestService_Ask(t *testing.T) {
	t.Parallel()

	t.Run("returns generated answer when the model succeeds", func(t *testing.T) {
		t.Parallel()

		svc := &answer.Service{
			Libraries: existingLibrary(),
			Retriever: retrieverWith([]pdfchat.SearchResult{
				{Chunk: &pdfchat.Chunk{FileName: "handbook.pdf", Content: "Tuition is due in September."}, Score: 2},
			}),
			Generator: &mock.Generator{
				GenerateFn: func(_ context.Context, question string, chunks []*pdfchat.Chunk) (string, error) {
					assert.Equal(t, "When is tuition due?", question)
					require.Len(t, chunks, 1)
					return "Tuition is due in September.", nil
				},
			},
		}

		got, err := svc.Ask(context.Background(), "lib-1", "When is tuition due?")
		require.NoError(t, err)
		assert.Equal(t, "Tuition is due in September.", got)
	})

	t.Run("falls back to verbatim chunks when generation fails", func(t *testing.T) {
		t.Parallel()

		svc := &answer.Service{
			Libraries: existingLibrary(),
			Retriever: retrieverWith([]pdfchat.SearchResult{
				{Chunk: &pdfchat.Chunk{FileName: "handbook.pdf", Content: "Tuition is due in September."}, Score: 2},
				{Chunk: &pdfchat.Chunk{FileName: "policies.pdf", Content: "Late fees apply after 30 days."}, Score: 1},
			}),
			Generator: &mock.Generator{
				GenerateFn: func(_ context.Context, _ string, _ []*pdfchat.Chunk) (string, error) {
					return "", pdfchat.Errorf(pdfchat.EUNAVAILABLE, "model server unreachable")
				},
			},
		}

		got, err := svc.Ask(context.Background(), "lib-1", "When is tuition due?")
		require.NoError(t, err, "generation failure must not surface as an error")

		assert.Contains(t, got, answer.FallbackNotice)
		assert.Contains(t, got, "Tuition is due in September.")
		assert.Contains(t, got, "Late fees apply after 30 days.")
		assert.Contains(t, got, "From handbook.pdf:")
	})

	t.Run("falls back on any generator error, not just EUNAVAILABLE", func(t *testing.T) {
		t.Parallel()

		svc := &answer.Service{
			Libraries: existingLibrary(),
			Retriever: retrieverWith([]pdfchat.SearchResult{
				{Chunk: &pdfchat.Chunk{FileName: "a.pdf", Content: "some text"}, Score: 1},
			}),
			Generator: &mock.Generator{
				GenerateFn: func(_ context.Context, _ string, _ []*pdfchat.Chunk) (string, error) {
					return "", errors.New("unexpected failure")
				},
			},
		}

		got, err := svc.Ask(context.Background(), "lib-1", "question words")
		require.NoError(t, err)
		assert.Contains(t, got, "some text")
	})

	t.Run("returns no-match message without calling the model", func(t *testing.T) {
		t.Parallel()

		called := false
		svc := &answer.Service{
			Libraries: existingLibrary(),
			Retriever: retrieverWith(nil),
			Generator: &mock.Generator{
				GenerateFn: func(_ context.Context, _ string, _ []*pdfchat.Chunk) (string, error) {
					called = true
					return "", nil
				},
			},
		}

		got, err := svc.Ask(context.Background(), "lib-1", "nothing matches this")
		require.NoError(t, err)

		assert.Equal(t, answer.NoMatchMessage, got)
		assert.False(t, called, "model should not be called without context")
	})

	t.Run("limits context to TopK chunks", func(t *testing.T) {
		t.Parallel()

		var gotOpts pdfchat.SearchOptions
		svc := &answer.Service{
			Libraries: existingLibrary(),
			Retriever: &mock.Retriever{
				SearchFn: func(_ context.Context, _ string, opts pdfchat.SearchOptions) ([]pdfchat.SearchResult, error) {
					gotOpts = opts
					return nil, nil
				},
			},
			Generator: &mock.Generator{},
		}

		_, err := svc.Ask(context.Background(), "lib-1", "question")
		require.NoError(t, err)

		assert.Equal(t, pdfchat.DefaultTopK, gotOpts.Limit)
		assert.Equal(t, "lib-1", gotOpts.LibraryID)
	})

	t.Run("returns ENOTFOUND for unknown library", func(t *testing.T) {
		t.Parallel()

		svc := &answer.Service{
			Libraries: &mock.LibraryService{
				FindLibraryByIDFn: func(_ context.Context, id string) (*pdfchat.Library, error) {
					return nil, pdfchat.Errorf(pdfchat.ENOTFOUND, "library not found")
				},
			},
			Retriever: retrieverWith(nil),
			Generator: &mock.Generator{},
		}

		_, err := svc.Ask(context.Background(), "missing", "question")
		require.Error(t, err)
		assert.Equal(t, pdfchat.ENOTFOUND, pdfchat.ErrorCode(err))
	})

	t.Run("rejects empty question", func(t *testing.T) {
		t.Parallel()

		svc := &answer.Service{
			Libraries: existingLibrary(),
			Retriever: retrieverWith(nil),
			Generator: &mock.Generator{},
		}

		_, err := svc.Ask(context.Background(), "lib-1", "")
		require.Error(t, err)
		assert.Equal(t, pdfchat.EINVALID, pdfchat.ErrorCode(err))
	})
}
