package pdfchat

import "strings"

// FormatChunks formats retrieved chunks for direct display, labelled by
// source file. Used as the answer when generation is unavailable so the
// user still sees the relevant document text verbatim.
func FormatChunks(results []SearchResult) string {
	if len(results) == 0 {
		return ""
	}

	blocks := make([]string, 0, len(results))
	for _, r := range results {
		blocks = append(blocks, "From "+r.Chunk.FileName+":\n\n"+r.Chunk.Content)
	}

	return strings.Join(blocks, "\n\n---\n\n")
}
