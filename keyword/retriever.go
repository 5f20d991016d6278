// Package keyword provides a keyword-overlap implementation of
// pdfchat.Retriever. Chunks are scored by how many query words they contain;
// there is no semantic similarity or stemming beyond lowercasing.
package keyword

import (
	"context"
	"sort"
	"strings"

	"github.com/pdfchat/pdfchat"
)

// minWordLength filters out short function words ("a", "is", "of") that
// would match almost every chunk.
const minWordLength = 3

// Ensure Retriever implements pdfchat.Retriever at compile time.
var _ pdfchat.Retriever = (*Retriever)(nil)

// Retriever scores stored chunks against a query by keyword overlap.
type Retriever struct {
	chunks pdfchat.ChunkService
}

// NewRetriever creates a new Retriever reading chunks from the given service.
func NewRetriever(chunks pdfchat.ChunkService) *Retriever {
	return &Retriever{chunks: chunks}
}

// Search returns up to opts.Limit chunks ordered by descending keyword
// overlap with the query. Ties keep their original document order. A query
// with no usable words or no matching chunks returns an empty slice.
func (r *Retriever) Search(ctx context.Context, query string, opts pdfchat.SearchOptions) ([]pdfchat.SearchResult, error) {
	words := QueryWords(query)
	if len(words) == 0 {
		return []pdfchat.SearchResult{}, nil
	}

	filter := pdfchat.ChunkFilter{}
	if opts.LibraryID != "" {
		filter.LibraryID = &opts.LibraryID
	}

	chunks, err := r.chunks.FindChunks(ctx, filter)
	if err != nil {
		return nil, err
	}

	results := make([]pdfchat.SearchResult, 0, len(chunks))
	for _, chunk := range chunks {
		score := Score(chunk.Content, words)
		if score > 0 {
			results = append(results, pdfchat.SearchResult{Chunk: chunk, Score: score})
		}
	}

	// Stable sort preserves the chunks' original order within equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	limit := opts.Limit
	if limit <= 0 {
		limit = pdfchat.DefaultTopK
	}
	if len(results) > limit {
		results = results[:limit]
	}

	return results, nil
}

// QueryWords normalizes a query into scoring words: lowercased,
// whitespace-split, and longer than two characters.
func QueryWords(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	words := fields[:0]
	for _, w := range fields {
		if len(w) >= minWordLength {
			words = append(words, w)
		}
	}
	return words
}

// Score counts how many of the words appear in the content as
// case-insensitive substrings.
func Score(content string, words []string) int {
	lower := strings.ToLower(content)
	score := 0
	for _, w := range words {
		if strings.Contains(lower, w) {
			score++
		}
	}
	return score
}
