package pdfchat

import "strings"

// SplitText splits text into consecutive fixed-width chunks of at most size
// characters with no overlap. Each chunk is trimmed of surrounding
// whitespace; chunks that trim to nothing are dropped. Splitting is by
// character count with no awareness of word or sentence boundaries.
func SplitText(text string, size int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}

	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	chunks := make([]string, 0, (len(runes)+size-1)/size)
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunk := strings.TrimSpace(string(runes[start:end]))
		if chunk == "" {
			continue
		}
		chunks = append(chunks, chunk)
	}

	return chunks
}
