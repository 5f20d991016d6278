package main

import (
	"fmt"

	"github.com/pdfchat/pdfchat"
)

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	library, err := findLibraryByName(deps, c.Name)
	if err != nil {
		return err
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, pdfchat.DocumentFilter{
		LibraryID: &library.ID,
		SortBy:    pdfchat.SortByPosition,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pdfchat.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintf(deps.Stderr, "error: library %q has no indexed documents. Run 'pdfchat index %s' first.\n", c.Name, c.Name)
		return pdfchat.Errorf(pdfchat.ENOTFOUND, "library %q has no indexed documents", c.Name)
	}

	fmt.Fprintf(deps.Stdout, "Documents for %s (%d total):\n\n", c.Name, len(docs))
	for i, doc := range docs {
		fmt.Fprintf(deps.Stdout, "  %d. %s (%d pages, indexed %s)\n",
			i+1, doc.FileName, doc.Pages, doc.IndexedAt.Format("2006-01-02 15:04"))
	}

	return nil
}
