package main

import (
	"fmt"

	"github.com/pdfchat/pdfchat"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	library, err := findLibraryByName(deps, c.Name)
	if err != nil {
		return err
	}

	results, err := deps.Retriever.Search(deps.Ctx, c.Query, pdfchat.SearchOptions{
		LibraryID: library.ID,
		Limit:     c.TopK,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pdfchat.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No matching chunks found.")
		return nil
	}

	for i, r := range results {
		fmt.Fprintf(deps.Stdout, "%d. [score %d] %s\n%s\n\n", i+1, r.Score, r.Chunk.FileName, r.Chunk.Content)
	}

	return nil
}
