package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/pdfchat/pdfchat"
	"github.com/pdfchat/pdfchat/index"
	"github.com/pdfchat/pdfchat/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	DB        *sqlite.DB
	Libraries pdfchat.LibraryService
	Documents pdfchat.DocumentService
	Chunks    pdfchat.ChunkService
	Indexer   *index.Indexer
	Retriever pdfchat.Retriever
	Asker     pdfchat.Asker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Add    AddCmd    `cmd:"" help:"Register a folder of PDFs as a library and index it"`
	Index  IndexCmd  `cmd:"" help:"Re-index a library, picking up new and changed files"`
	List   ListCmd   `cmd:"" help:"List all registered libraries"`
	Docs   DocsCmd   `cmd:"" help:"List indexed documents for a library"`
	Search SearchCmd `cmd:"" help:"Show the chunks retrieved for a query"`
	Ask    AskCmd    `cmd:"" help:"Ask a question about a library"`
	Delete DeleteCmd `cmd:"" help:"Delete a library and its documents"`
	Serve  ServeCmd  `cmd:"" help:"Start the local web chat server"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Name        string `arg:"" help:"Library name"`
	Path        string `arg:"" type:"path" help:"Folder containing PDF files"`
	Force       bool   `short:"f" help:"Delete existing library first"`
	ChunkSize   int    `default:"900" help:"Chunk size in characters"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent extraction limit"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Name        string `arg:"" help:"Library name"`
	ChunkSize   int    `default:"900" help:"Chunk size in characters"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent extraction limit"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	Name string `arg:"" help:"Library name"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Name  string `arg:"" help:"Library name"`
	Query string `arg:"" help:"Search query"`
	TopK  int    `short:"k" default:"4" help:"Number of chunks to show"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Name     string `arg:"" help:"Library name"`
	Question string `arg:"" help:"Question to ask about the documents"`
	TopK     int    `short:"k" default:"4" help:"Number of context chunks"`

	Provider string `default:"ollama" enum:"ollama,openai" help:"LLM provider"`
	Model    string `help:"Model name (provider default if empty)"`
	LLMURL   string `name:"llm-url" help:"LLM endpoint base URL (provider default if empty)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Library name"`
	Force bool   `help:"Confirm deletion"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:"localhost:8080" help:"Listen address"`
	TopK int    `short:"k" default:"4" help:"Number of context chunks"`

	Provider string `default:"ollama" enum:"ollama,openai" help:"LLM provider"`
	Model    string `help:"Model name (provider default if empty)"`
	LLMURL   string `name:"llm-url" help:"LLM endpoint base URL (provider default if empty)"`
}
