package main

import (
	"fmt"

	"github.com/pdfchat/pdfchat"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	library, err := findLibraryByName(deps, c.Name)
	if err != nil {
		return err
	}

	answer, err := deps.Asker.Ask(deps.Ctx, library.ID, c.Question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pdfchat.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
