package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/pdfchat/pdfchat"
	"github.com/pdfchat/pdfchat/answer"
	"github.com/pdfchat/pdfchat/index"
	"github.com/pdfchat/pdfchat/keyword"
	"github.com/pdfchat/pdfchat/ollama"
	"github.com/pdfchat/pdfchat/openai"
	"github.com/pdfchat/pdfchat/pdf"
	pcslog "github.com/pdfchat/pdfchat/slog"
	"github.com/pdfchat/pdfchat/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	LibraryService  pdfchat.LibraryService
	DocumentService pdfchat.DocumentService
	ChunkService    pdfchat.ChunkService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	_ = godotenv.Load()
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pdfchat"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pdfchat --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PDFCHAT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.LibraryService = sqlite.NewLibraryService(m.DB)
	m.DocumentService = sqlite.NewDocumentService(m.DB)
	m.ChunkService = sqlite.NewChunkService(m.DB)
	deps.DB = m.DB
	deps.Libraries = m.LibraryService
	deps.Documents = m.DocumentService
	deps.Chunks = m.ChunkService
	deps.Retriever = pcslog.NewLoggingRetriever(keyword.NewRetriever(m.ChunkService), deps.Logger)

	// Wire command-specific dependencies based on command
	if cmd == "add" || cmd == "index" {
		deps.Indexer = &index.Indexer{
			Extractor: pdf.NewExtractor(),
			Documents: m.DocumentService,
			Chunks:    m.ChunkService,
		}
	}

	if cmd == "ask" {
		generator, err := newGenerator(cli.Ask.Provider, cli.Ask.Model, cli.Ask.LLMURL, stderr)
		if err != nil {
			return err
		}
		deps.Asker = &answer.Service{
			Libraries: m.LibraryService,
			Retriever: deps.Retriever,
			Generator: generator,
			TopK:      cli.Ask.TopK,
			Logger:    deps.Logger,
		}
	}

	if cmd == "serve" {
		// Surface request logging when running as a server.
		deps.Logger = slog.New(slog.NewTextHandler(stderr, nil))

		generator, err := newGenerator(cli.Serve.Provider, cli.Serve.Model, cli.Serve.LLMURL, stderr)
		if err != nil {
			return err
		}
		deps.Asker = pcslog.NewLoggingAsker(&answer.Service{
			Libraries: m.LibraryService,
			Retriever: deps.Retriever,
			Generator: generator,
			TopK:      cli.Serve.TopK,
			Logger:    deps.Logger,
		}, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// newGenerator builds the LLM client for the selected provider.
func newGenerator(provider, model, llmURL string, stderr io.Writer) (pdfchat.Generator, error) {
	switch provider {
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "Hint: Set OPENAI_API_KEY, or omit --provider to use a local Ollama server")
			return nil, fmt.Errorf("OPENAI_API_KEY not set")
		}
		return openai.NewGenerator(llmURL, apiKey, model), nil
	default:
		var opts []ollama.Option
		if llmURL != "" {
			opts = append(opts, ollama.WithBaseURL(llmURL))
		}
		if model != "" {
			opts = append(opts, ollama.WithModel(model))
		}
		return ollama.NewGenerator(opts...), nil
	}
}

func defaultDBPath() string {
	if path := os.Getenv("PDFCHAT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pdfchat.db"
	}
	dir := filepath.Join(home, ".pdfchat")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pdfchat.db")
}
