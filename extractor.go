package pdfchat

import "context"

// ExtractResult holds the text extracted from a PDF file.
type ExtractResult struct {
	// Text is the full document text with pages joined by newlines.
	// Empty for image-only (scanned) PDFs; no OCR is attempted.
	Text string

	// Pages is the number of pages in the document.
	Pages int
}

// TextExtractor extracts plain text from PDF files.
type TextExtractor interface {
	// Extract reads the PDF at path and returns its text content.
	// Unreadable files return an error; callers decide whether to skip.
	Extract(ctx context.Context, path string) (*ExtractResult, error)
}
