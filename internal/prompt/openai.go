// Package prompt implements the language-model backed prompt generator.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	systemMessage = "You are a helpful assistant that generates thoughtful journaling prompts. The prompts should encourage self-reflection and personal growth."
	userMessage   = "Generate a journaling prompt for today that encourages deep introspection and flow state."
)

// OpenAIGenerator produces journaling prompts through a chat-completion
// call. It satisfies app.Generator.
type OpenAIGenerator struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAIGenerator returns nil when no API key is configured; the
// prompt service treats a nil generator as a disabled feature.
func NewOpenAIGenerator(apiKey, model string, timeout time.Duration) *OpenAIGenerator {
	if apiKey == "" {
		return nil
	}
	if model == "" {
		model = openai.GPT4
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &OpenAIGenerator{
		client:  openai.NewClient(apiKey),
		model:   model,
		timeout: timeout,
	}
}

func (g *OpenAIGenerator) GeneratePrompt(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemMessage},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
		MaxTokens:   50,
		Temperature: 0.7,
		N:           1,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
