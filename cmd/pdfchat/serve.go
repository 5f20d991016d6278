package main

import (
	"fmt"

	pchttp "github.com/pdfchat/pdfchat/http"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := pchttp.NewServer(deps.Asker, deps.Libraries, deps.Logger, pchttp.WithAddr(c.Addr))

	fmt.Fprintf(deps.Stdout, "Chat server running at http://%s\n", c.Addr)
	return server.Open()
}
