package main

import (
	"fmt"

	"github.com/pdfchat/pdfchat"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	library, err := findLibraryByName(deps, c.Name)
	if err != nil {
		return err
	}

	if deps.Indexer == nil {
		return pdfchat.Errorf(pdfchat.EINTERNAL, "indexer not configured")
	}

	fmt.Fprintf(deps.Stdout, "Indexing %q (%s)\n", library.Name, library.Path)
	return runIndex(deps, library, c.ChunkSize, c.Concurrency, deps.Stdout, deps.Stderr)
}
