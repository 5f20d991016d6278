// Package openai provides a pdfchat.Generator for OpenAI-compatible chat
// endpoints. With a custom base URL it works against local servers that
// speak the OpenAI API (llama.cpp, LM Studio, vLLM, Ollama's /v1).
package openai

import (
	"context"

	"github.com/pdfchat/pdfchat"
	openai "github.com/sashabaranov/go-openai"
)

// DefaultModel is used when no model is configured. Local OpenAI-compatible
// servers generally accept whatever model name they were started with.
const DefaultModel = "llama3:latest"

// defaultTemperature keeps answers close to the supplied context.
const defaultTemperature = 0.4

// Ensure Generator implements pdfchat.Generator at compile time.
var _ pdfchat.Generator = (*Generator)(nil)

// Generator calls an OpenAI-compatible chat completion endpoint.
type Generator struct {
	client *openai.Client
	model  string
}

// NewGenerator creates a new Generator targeting baseURL (e.g.
// "http://localhost:8000/v1"). The API key may be empty for local servers
// that do not check authentication.
func NewGenerator(baseURL, apiKey, model string) *Generator {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &Generator{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Generate sends the question and context chunks to the model and returns
// its answer. Any transport or API failure is returned as EUNAVAILABLE so
// callers can fall back to the raw chunks.
func (g *Generator) Generate(ctx context.Context, question string, chunks []*pdfchat.Chunk) (string, error) {
	if question == "" {
		return "", pdfchat.Errorf(pdfchat.EINVALID, "question required")
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: pdfchat.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: pdfchat.BuildUserPrompt(question, chunks)},
		},
		Temperature: defaultTemperature,
	})
	if err != nil {
		return "", pdfchat.Errorf(pdfchat.EUNAVAILABLE, "model server unreachable: %v", err)
	}

	if len(resp.Choices) == 0 {
		return "", pdfchat.Errorf(pdfchat.EUNAVAILABLE, "model returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
