// Package index provides PDF indexing orchestration. It coordinates text
// extraction, chunking, and storage for all PDF files in a library's
// directory.
package index

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfchat/pdfchat"
	"golang.org/x/sync/errgroup"
)

// Indexer orchestrates the indexing of PDF libraries.
type Indexer struct {
	Extractor pdfchat.TextExtractor
	Documents pdfchat.DocumentService
	Chunks    pdfchat.ChunkService

	// ChunkSize is the number of characters per chunk.
	// Defaults to pdfchat.DefaultChunkSize.
	ChunkSize int

	// Concurrency bounds parallel extraction. Defaults to 4.
	Concurrency int
}

// Result holds the outcome of an indexing run.
type Result struct {
	Indexed   int // files extracted and stored
	Unchanged int // files skipped because their text did not change
	Skipped   int // unreadable or image-only files
	Removed   int // documents pruned because their PDF no longer exists
	Chunks    int // chunks created
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types emitted during indexing.
const (
	ProgressStarted ProgressType = iota
	ProgressIndexed
	ProgressUnchanged
	ProgressSkipped
	ProgressFinished
)

// ProgressEvent reports progress during an indexing run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	File      string
	Error     error
}

// ProgressFunc is a callback for reporting indexing progress.
type ProgressFunc func(event ProgressEvent)

// extractResult holds the outcome of extracting a single file.
type extractResult struct {
	position int
	file     string
	text     string
	pages    int
	err      error
}

// IndexLibrary extracts, chunks, and stores every PDF in the library's
// directory. Files that cannot be read or contain no extractable text are
// skipped without failing the run. Files whose text is unchanged since the
// last run keep their existing documents and chunks.
func (ix *Indexer) IndexLibrary(ctx context.Context, library *pdfchat.Library, progress ProgressFunc) (*Result, error) {
	files, err := listPDFs(library.Path)
	if err != nil {
		return nil, err
	}

	// Existing documents by file name, for change detection.
	existing := make(map[string]*pdfchat.Document)
	docs, err := ix.Documents.FindDocuments(ctx, pdfchat.DocumentFilter{LibraryID: &library.ID})
	if err != nil {
		return nil, err
	}
	for _, doc := range docs {
		existing[doc.FileName] = doc
	}

	result := &Result{}

	// Prune documents whose source PDF no longer exists; their chunks must
	// not stay retrievable after the file is gone.
	current := make(map[string]bool, len(files))
	for _, file := range files {
		current[file] = true
	}
	for name, doc := range existing {
		if current[name] {
			continue
		}
		if err := ix.Documents.DeleteDocument(ctx, doc.ID); err != nil {
			return nil, err
		}
		delete(existing, name)
		result.Removed++
	}

	concurrency := ix.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}
	chunkSize := ix.ChunkSize
	if chunkSize <= 0 {
		chunkSize = pdfchat.DefaultChunkSize
	}

	total := len(files)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	// Extract concurrently, collect results by position.
	resultCh := make(chan extractResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, file := range files {
			g.Go(func() error {
				res := extractResult{position: i, file: file}
				extracted, err := ix.Extractor.Extract(gctx, filepath.Join(library.Path, file))
				if err != nil {
					res.err = err
				} else {
					res.text = extracted.Text
					res.pages = extracted.Pages
				}
				resultCh <- res
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]extractResult, total)
	for res := range resultCh {
		results[res.position] = res
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Store serially; SQLite allows one writer at a time.
	for _, res := range results {
		switch {
		case res.err != nil:
			result.Skipped++
			notify(progress, ProgressEvent{Type: ProgressSkipped, Completed: res.position + 1, Total: total, File: res.file, Error: res.err})
			continue

		case res.text == "":
			// Image-only PDF with no text layer; nothing to index.
			result.Skipped++
			notify(progress, ProgressEvent{Type: ProgressSkipped, Completed: res.position + 1, Total: total, File: res.file,
				Error: pdfchat.Errorf(pdfchat.EINVALID, "no extractable text (scanned PDF?)")})
			continue
		}

		if old, ok := existing[res.file]; ok {
			if old.Content == res.text {
				if old.Position != res.position {
					pos := res.position
					if _, err := ix.Documents.UpdateDocument(ctx, old.ID, pdfchat.DocumentUpdate{Position: &pos}); err != nil {
						return nil, err
					}
				}
				result.Unchanged++
				notify(progress, ProgressEvent{Type: ProgressUnchanged, Completed: res.position + 1, Total: total, File: res.file})
				continue
			}
			// Changed content: replace document and chunks wholesale.
			if err := ix.Documents.DeleteDocument(ctx, old.ID); err != nil {
				return nil, err
			}
		}

		doc := &pdfchat.Document{
			LibraryID: library.ID,
			FileName:  res.file,
			Content:   res.text,
			Pages:     res.pages,
			Position:  res.position,
		}
		if err := ix.Documents.CreateDocument(ctx, doc); err != nil {
			return nil, err
		}

		pieces := pdfchat.SplitText(res.text, chunkSize)
		chunks := make([]*pdfchat.Chunk, 0, len(pieces))
		for i, piece := range pieces {
			chunks = append(chunks, &pdfchat.Chunk{
				DocumentID: doc.ID,
				LibraryID:  library.ID,
				FileName:   res.file,
				Content:    piece,
				Position:   i,
			})
		}
		if err := ix.Chunks.CreateChunks(ctx, chunks); err != nil {
			// A stored document without chunks would pass the unchanged
			// check on the next run and never be repaired.
			_ = ix.Documents.DeleteDocument(ctx, doc.ID)
			return nil, err
		}

		result.Indexed++
		result.Chunks += len(chunks)
		notify(progress, ProgressEvent{Type: ProgressIndexed, Completed: res.position + 1, Total: total, File: res.file})
	}

	notify(progress, ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	return result, nil
}

func notify(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}

// listPDFs returns the names of PDF files directly inside dir, sorted by
// name. The extension check is case-insensitive.
func listPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, pdfchat.Errorf(pdfchat.EINVALID, "cannot read library directory %s: %v", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			files = append(files, entry.Name())
		}
	}

	return files, nil
}
