package ai

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// DefaultClaudeModel is used when no model name is configured.
const DefaultClaudeModel = "claude-sonnet-4-5-20250929"

// ClaudeProvider generates text through the Anthropic API.
type ClaudeProvider struct {
	apiKey string
	model  string
}

// NewClaudeProvider creates a Claude-backed provider.
func NewClaudeProvider(apiKey, model string) *ClaudeProvider {
	if model == "" {
		model = DefaultClaudeModel
	}
	return &ClaudeProvider{apiKey: apiKey, model: model}
}

// Name implements Provider.
func (p *ClaudeProvider) Name() string {
	return "claude/" + p.model
}

// Generate implements Provider.
func (p *ClaudeProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if p.apiKey == "" {
		return "", fmt.Errorf("claude: API key not configured")
	}

	client := anthropic.NewClient(option.WithAPIKey(p.apiKey))

	message, err := client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("claude: API call failed: %w", err)
	}

	if len(message.Content) == 0 {
		return "", fmt.Errorf("claude: empty response")
	}

	var text string
	for _, block := range message.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("claude: no text blocks in response")
	}
	return text, nil
}
