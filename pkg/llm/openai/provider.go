package openai

import (
	"context"
	"fmt"

	"portfolio-chat-be/pkg/llm"

	goopenai "github.com/sashabaranov/go-openai"
)

// Provider implements llm.Provider on top of the OpenAI chat completions API.
type Provider struct {
	client    *goopenai.Client
	modelName string
}

// Ensure Provider implements llm.Provider
var _ llm.Provider = &Provider{}

func NewProvider(apiKey, modelName string) *Provider {
	return &Provider{
		client:    goopenai.NewClient(apiKey),
		modelName: modelName,
	}
}

// NewProviderWithBaseURL targets an OpenAI-compatible endpoint. Used by tests
// to point the client at a local stub server.
func NewProviderWithBaseURL(apiKey, modelName, baseURL string) *Provider {
	cfg := goopenai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &Provider{
		client:    goopenai.NewClientWithConfig(cfg),
		modelName: modelName,
	}
}

func (p *Provider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := &llm.Options{
		Temperature: 0.7, // Default
	}
	for _, opt := range opts {
		opt(options)
	}

	messages := make([]goopenai.ChatCompletionMessage, len(history))
	for i, msg := range history {
		role := msg.Role
		if role == "model" {
			role = goopenai.ChatMessageRoleAssistant
		}
		messages[i] = goopenai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Content,
		}
	}

	model := p.modelName
	if options.Model != "" {
		model = options.Model
	}

	req := goopenai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: float32(options.Temperature),
	}
	if options.MaxTokens > 0 {
		req.MaxTokens = options.MaxTokens
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
