package main

import (
	"fmt"
	"os"

	"github.com/pdfchat/pdfchat"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	info, err := os.Stat(c.Path)
	if err != nil || !info.IsDir() {
		fmt.Fprintf(deps.Stderr, "error: %q is not a readable folder\n", c.Path)
		return pdfchat.Errorf(pdfchat.EINVALID, "path %q is not a readable folder", c.Path)
	}

	// Force mode: delete existing library first
	if c.Force {
		existing, err := deps.Libraries.FindLibraries(deps.Ctx, pdfchat.LibraryFilter{Name: &c.Name})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pdfchat.ErrorMessage(err))
			return err
		}
		if len(existing) > 0 {
			if err := deps.Libraries.DeleteLibrary(deps.Ctx, existing[0].ID); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", pdfchat.ErrorMessage(err))
				return err
			}
		}
	}

	library := &pdfchat.Library{
		Name: c.Name,
		Path: c.Path,
	}

	if err := deps.Libraries.CreateLibrary(deps.Ctx, library); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pdfchat.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added library %q (%s)\n", c.Name, library.ID)

	// Index PDFs if Indexer is provided
	if deps.Indexer != nil {
		return runIndex(deps, library, c.ChunkSize, c.Concurrency, deps.Stdout, deps.Stderr)
	}

	return nil
}
