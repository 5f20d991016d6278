// Package answer provides question-answering orchestration. It coordinates
// chunk retrieval, model generation, and the fallback to raw document text
// when the model is unavailable.
package answer

import (
	"context"
	"log/slog"

	"github.com/pdfchat/pdfchat"
)

// NoMatchMessage is returned when retrieval finds nothing relevant.
// The model is not called in that case; there is no context to ground it.
const NoMatchMessage = "I could not find a matching answer to your question in the PDFs. " +
	"Try using different words that might appear in the documents."

// FallbackNotice prefixes the raw chunks returned when generation fails.
const FallbackNotice = "The language model is unavailable, so here are the most relevant passages instead:"

// Ensure Service implements pdfchat.Asker at compile time.
var _ pdfchat.Asker = (*Service)(nil)

// Service answers questions about a library using retrieved chunks as model
// context.
type Service struct {
	Libraries pdfchat.LibraryService
	Retriever pdfchat.Retriever
	Generator pdfchat.Generator

	// TopK limits how many chunks are sent as context.
	// Defaults to pdfchat.DefaultTopK.
	TopK int

	// Logger, if set, records generation fallbacks.
	Logger *slog.Logger
}

// Ask answers a question using the library's indexed chunks as context.
// Generation failures of any kind (connection refused, timeout, non-200)
// are recovered by returning the retrieved chunks verbatim; they are never
// surfaced to the caller as errors.
func (s *Service) Ask(ctx context.Context, libraryID, question string) (string, error) {
	if libraryID == "" {
		return "", pdfchat.Errorf(pdfchat.EINVALID, "library ID required")
	}
	if question == "" {
		return "", pdfchat.Errorf(pdfchat.EINVALID, "question required")
	}

	if _, err := s.Libraries.FindLibraryByID(ctx, libraryID); err != nil {
		return "", err
	}

	topK := s.TopK
	if topK <= 0 {
		topK = pdfchat.DefaultTopK
	}

	results, err := s.Retriever.Search(ctx, question, pdfchat.SearchOptions{
		LibraryID: libraryID,
		Limit:     topK,
	})
	if err != nil {
		return "", err
	}

	if len(results) == 0 {
		return NoMatchMessage, nil
	}

	chunks := make([]*pdfchat.Chunk, 0, len(results))
	for _, r := range results {
		chunks = append(chunks, r.Chunk)
	}

	text, err := s.Generator.Generate(ctx, question, chunks)
	if err != nil {
		if s.Logger != nil {
			s.Logger.Warn("generation failed, falling back to raw chunks",
				"library", libraryID,
				"err", err,
			)
		}
		return FallbackNotice + "\n\n" + pdfchat.FormatChunks(results), nil
	}

	return text, nil
}
