// Package pdf provides a pdfchat.TextExtractor backed by the ledongthuc/pdf
// reader. Extraction is text-layer only; scanned (image-only) PDFs yield
// empty text and no OCR is attempted.
package pdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfchat/pdfchat"
)

// Ensure Extractor implements pdfchat.TextExtractor at compile time.
var _ pdfchat.TextExtractor = (*Extractor)(nil)

// Extractor extracts plain text from PDF files.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract reads the PDF at path and returns its text content, with pages
// joined by newlines. Pages that fail to decode are skipped so one bad page
// does not lose the rest of the document.
func (e *Extractor) Extract(ctx context.Context, path string) (result *pdfchat.ExtractResult, err error) {
	// The pdf library panics on some malformed files; surface that as an
	// error so the indexer can skip the file.
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = pdfchat.Errorf(pdfchat.EINTERNAL, "failed to parse %s: %v", path, r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	total := reader.NumPage()
	pages := make([]string, 0, total)

	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pages = append(pages, text)
	}

	return &pdfchat.ExtractResult{
		Text:  strings.TrimSpace(strings.Join(pages, "\n")),
		Pages: total,
	}, nil
}
