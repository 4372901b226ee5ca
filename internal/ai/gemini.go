package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/blushy/internal/services"
	"google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiCompleter answers companion prompts through the Gemini API.
type GeminiCompleter struct {
	client *genai.Client
	model  string
}

func NewGeminiCompleter(ctx context.Context, apiKey string, model string) (*GeminiCompleter, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini api key is required")
	}
	return newGeminiCompleter(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}, model)
}

func newGeminiCompleter(ctx context.Context, config *genai.ClientConfig, model string) (*GeminiCompleter, error) {
	if strings.TrimSpace(model) == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiCompleter{
		client: client,
		model:  model,
	}, nil
}

func (completer *GeminiCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	result, err := completer.client.Models.GenerateContent(ctx, completer.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", services.ErrCompletionFailed, err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", services.ErrEmptyCompletion
	}
	return text, nil
}

func (completer *GeminiCompleter) Model() string {
	return completer.model
}
