package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tejass17x/fake-news-detector/internal/model"
)

// Provider generates advisory commentary about a finished analysis. The
// commentary is produced after scoring and never feeds back into the score.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Commentary explains a finished analysis in plain language.
	Commentary(ctx context.Context, req CommentaryRequest) (*CommentaryResponse, error)

	// IsAvailable checks if the provider is configured and reachable.
	IsAvailable(ctx context.Context) bool
}

// CommentaryRequest is the input for commentary generation.
type CommentaryRequest struct {
	// Result is the finished analysis to comment on.
	Result model.AnalysisResult

	// Prompt overrides the default prompt when set.
	Prompt string

	// Model is the specific model to use (provider-specific).
	Model string

	// MaxTokens limits the response length.
	MaxTokens int
}

// CommentaryResponse is the provider's output.
type CommentaryResponse struct {
	Text       string
	Model      string
	TokensUsed int
}

// Config holds provider configuration.
type Config struct {
	// Provider name: "openai" or "" for disabled.
	Provider string

	// Model name (provider-specific).
	Model string

	// APIKey authenticates against the provider.
	APIKey string

	// BaseURL points at a custom endpoint when set.
	BaseURL string

	// Timeout for API requests, in seconds.
	Timeout int

	// MaxTokens for response generation.
	MaxTokens int
}

// DefaultConfig returns sensible defaults with the provider disabled.
func DefaultConfig() Config {
	return Config{
		Timeout:   30,
		MaxTokens: 400,
	}
}

// ConfigFromModel converts the application LLM configuration.
func ConfigFromModel(cfg model.LLMConfig) Config {
	c := DefaultConfig()
	c.Provider = cfg.Provider
	c.Model = cfg.Model
	c.APIKey = cfg.APIKey
	c.BaseURL = cfg.BaseURL
	if cfg.MaxTokens > 0 {
		c.MaxTokens = cfg.MaxTokens
	}
	return c
}

// BuildPrompt constructs the default commentary prompt. The model is given
// only what the engine already concluded and is told not to re-score.
func BuildPrompt(result model.AnalysisResult) string {
	var b strings.Builder

	b.WriteString(`You are explaining the output of an automated news credibility analysis to a general reader.

RULES:
1. Do NOT assert that the article is true or false. Describe what the signals indicate.
2. Do NOT introduce facts, sources, or URLs that are not in the analysis below.
3. Do NOT second-guess or restate the numeric score; interpret it.
4. Keep it to 3-4 plain sentences.

Analysis:
`)

	fmt.Fprintf(&b, "- Credibility: %s (score %.2f, confidence %.2f)\n",
		result.Level, result.OverallScore, result.Confidence)

	for _, s := range result.Breakdown {
		if !s.Present() {
			fmt.Fprintf(&b, "- Signal %s: not available\n", s.Name)
			continue
		}
		fmt.Fprintf(&b, "- Signal %s: %.2f\n", s.Name, *s.Value)
	}

	if len(result.Flags) == 0 {
		b.WriteString("- No flags raised\n")
	}
	for _, f := range result.Flags {
		fmt.Fprintf(&b, "- Flag [%s]: %s\n", f.Code, f.Message)
	}

	return b.String()
}
