// Package ollama provides a pdfchat.Generator that calls a locally hosted
// model through the Ollama chat API.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/pdfchat/pdfchat"
)

// DefaultBaseURL is the default address of a local Ollama server.
const DefaultBaseURL = "http://localhost:11434"

// DefaultModel is the default chat model.
const DefaultModel = "llama3:latest"

// DefaultTimeout bounds a single generation call. Local models can be slow
// on first load, so this is generous.
const DefaultTimeout = 120 * time.Second

// Ensure Generator implements pdfchat.Generator at compile time.
var _ pdfchat.Generator = (*Generator)(nil)

// Generator calls the Ollama chat endpoint to answer questions from
// retrieved chunks.
type Generator struct {
	client  *http.Client
	baseURL string
	model   string
	timeout time.Duration
}

// Option configures a Generator.
type Option func(*Generator)

// WithBaseURL sets the Ollama server address.
// Defaults to DefaultBaseURL if not specified.
func WithBaseURL(url string) Option {
	return func(g *Generator) {
		g.baseURL = strings.TrimSuffix(url, "/")
	}
}

// WithModel sets the chat model. Defaults to DefaultModel if not specified.
func WithModel(model string) Option {
	return func(g *Generator) {
		g.model = model
	}
}

// WithTimeout sets the timeout for generation calls.
// Defaults to DefaultTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(g *Generator) {
		g.timeout = d
	}
}

// NewGenerator creates a new Generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		baseURL: DefaultBaseURL,
		model:   DefaultModel,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.client = &http.Client{
		Timeout: g.timeout,
	}

	return g
}

// chatRequest is the Ollama /api/chat request body.
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the non-streaming Ollama /api/chat response body.
type chatResponse struct {
	Message chatMessage `json:"message"`
}

// Generate sends the question and context chunks to the model and returns
// its answer. Connection failures, timeouts, and non-200 responses return
// an EUNAVAILABLE error so callers can fall back to the raw chunks.
func (g *Generator) Generate(ctx context.Context, question string, chunks []*pdfchat.Chunk) (string, error) {
	if question == "" {
		return "", pdfchat.Errorf(pdfchat.EINVALID, "question required")
	}

	body, err := json.Marshal(chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: pdfchat.SystemPrompt},
			{Role: "user", Content: pdfchat.BuildUserPrompt(question, chunks)},
		},
		Stream: false,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", pdfchat.Errorf(pdfchat.EUNAVAILABLE, "model server unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", pdfchat.Errorf(pdfchat.EUNAVAILABLE, "model server returned HTTP %d", resp.StatusCode)
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", pdfchat.Errorf(pdfchat.EUNAVAILABLE, "failed to decode model response: %v", err)
	}

	return cr.Message.Content, nil
}
