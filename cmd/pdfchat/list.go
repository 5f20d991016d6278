package main

import (
	"fmt"

	"github.com/pdfchat/pdfchat"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	libraries, err := deps.Libraries.FindLibraries(deps.Ctx, pdfchat.LibraryFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pdfchat.ErrorMessage(err))
		return err
	}

	if len(libraries) == 0 {
		fmt.Fprintln(deps.Stdout, "No libraries found. Use 'pdfchat add' to create one.")
		return nil
	}

	for _, l := range libraries {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", l.ID, l.Name, l.Path)
	}

	return nil
}
