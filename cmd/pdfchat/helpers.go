package main

import (
	"fmt"
	"io"

	"github.com/pdfchat/pdfchat"
	"github.com/pdfchat/pdfchat/index"
)

// findLibraryByName resolves a library name to the stored library.
// It prints a user-facing hint to stderr when the library does not exist.
func findLibraryByName(deps *Dependencies, name string) (*pdfchat.Library, error) {
	libraries, err := deps.Libraries.FindLibraries(deps.Ctx, pdfchat.LibraryFilter{Name: &name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pdfchat.ErrorMessage(err))
		return nil, err
	}
	if len(libraries) == 0 {
		fmt.Fprintf(deps.Stderr, "error: library %q not found. Use 'pdfchat list' to see available libraries.\n", name)
		return nil, pdfchat.Errorf(pdfchat.ENOTFOUND, "library %q not found", name)
	}
	return libraries[0], nil
}

// runIndex indexes a library's folder and prints per-file progress.
func runIndex(deps *Dependencies, library *pdfchat.Library, chunkSize, concurrency int, stdout, stderr io.Writer) error {
	deps.Indexer.ChunkSize = chunkSize
	deps.Indexer.Concurrency = concurrency

	progress := func(event index.ProgressEvent) {
		switch event.Type {
		case index.ProgressStarted:
			fmt.Fprintf(stdout, "  Found %d PDF files\n", event.Total)
		case index.ProgressSkipped:
			if event.Error != nil {
				fmt.Fprintf(stderr, "  skip %s: %v\n", event.File, event.Error)
			} else {
				fmt.Fprintf(stderr, "  skip %s: no extractable text\n", event.File)
			}
		case index.ProgressFinished:
			// Summary printed after indexing completes
		}
	}

	result, err := deps.Indexer.IndexLibrary(deps.Ctx, library, progress)
	if err != nil {
		fmt.Fprintf(stderr, "error indexing: %v\n", err)
		return err
	}

	fmt.Fprintf(stdout, "  Indexed %d files (%d chunks), %d unchanged, %d skipped, %d removed\n",
		result.Indexed, result.Chunks, result.Unchanged, result.Skipped, result.Removed)
	return nil
}
