package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"insight-mailer/internal/observability"
	"insight-mailer/internal/store"
)

var (
	ErrUnsupportedProvider = errors.New("unsupported llm provider")
	ErrEmptyCompletion     = errors.New("llm returned an empty completion")
	ErrMissingAPIKey       = errors.New("llm api key is required")
)

// CompletionRequest is a single prompt sent to a language model.
type CompletionRequest struct {
	SystemPrompt string
	Prompt       string
	MaxTokens    int
	Temperature  float64
	// JSON asks the backend for a JSON object when it supports a native JSON mode.
	JSON bool
}

// Completer is a language model backend.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	// Check verifies the credentials by listing the backend's models.
	Check(ctx context.Context) error
	Name() string
	// Close releases connections held by the backend.
	Close() error
}

const (
	defaultOpenAIModel = "gpt-4o-mini"
	defaultGeminiModel = "gemini-1.5-flash"
)

// New builds the completer described by an llm provider config.
func New(ctx context.Context, cfg store.ProviderConfig, logger *observability.Logger) (Completer, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	model := ""
	if cfg.ModelName != nil {
		model = *cfg.ModelName
	}
	baseURL := ""
	if cfg.APIURL != nil {
		baseURL = *cfg.APIURL
	}

	switch strings.ToLower(cfg.ProviderName) {
	case "openai", "deepseek", "openrouter":
		if model == "" {
			model = defaultOpenAIModel
		}
		return NewOpenAIClient(cfg.APIKey, baseURL, model, logger), nil
	case "gemini", "google":
		if model == "" {
			model = defaultGeminiModel
		}
		return NewGeminiClient(ctx, cfg.APIKey, baseURL, model, logger)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, cfg.ProviderName)
	}
}
