package main

import (
	"fmt"

	"github.com/pdfchat/pdfchat"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return pdfchat.Errorf(pdfchat.EINVALID, "use --force to confirm deletion")
	}

	library, err := findLibraryByName(deps, c.Name)
	if err != nil {
		return err
	}

	if err := deps.Libraries.DeleteLibrary(deps.Ctx, library.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pdfchat.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted library %q\n", library.Name)
	return nil
}
