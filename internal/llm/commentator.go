package llm

import (
	"context"
	"fmt"

	"github.com/Tejass17x/fake-news-detector/internal/model"
)

// Commentator wraps a provider behind the enabled/disabled decision so the
// pipeline does not care whether commentary is configured.
type Commentator struct {
	provider Provider
	config   Config
}

// NewCommentator creates a commentator for the configured provider. An
// empty provider name returns a disabled commentator and no error.
func NewCommentator(config Config) (*Commentator, error) {
	switch config.Provider {
	case "":
		return &Commentator{config: config}, nil
	case "openai":
		provider, err := NewOpenAIProvider(config)
		if err != nil {
			return nil, fmt.Errorf("create openai provider: %w", err)
		}
		return &Commentator{provider: provider, config: config}, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", config.Provider)
	}
}

// IsEnabled reports whether a provider is configured.
func (c *Commentator) IsEnabled() bool {
	return c != nil && c.provider != nil
}

// Comment generates advisory commentary for a finished analysis.
func (c *Commentator) Comment(ctx context.Context, result model.AnalysisResult) (*model.Commentary, error) {
	if !c.IsEnabled() {
		return nil, nil
	}

	resp, err := c.provider.Commentary(ctx, CommentaryRequest{
		Result:    result,
		Model:     c.config.Model,
		MaxTokens: c.config.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &model.Commentary{
		Provider: c.provider.Name(),
		Model:    resp.Model,
		Text:     resp.Text,
	}, nil
}
