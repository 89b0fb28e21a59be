// Package summarize calls a hosted language model to summarize text chunks.
package summarize

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Summarizer turns one chunk of source text into a summary.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Options configures a Client.
type Options struct {
	Provider          string
	APIKey            string
	BaseURL           string // Empty selects the provider's public endpoint.
	Model             string
	Temperature       float64
	MaxTokens         int
	Timeout           time.Duration
	RequestsPerMinute int // 0 disables pacing.
}

// Client talks to a chat-completion style API. Failed calls are returned
// to the caller as-is; the client never retries.
type Client struct {
	opts       Options
	httpClient *http.Client
	limiter    *rate.Limiter
	complete   func(ctx context.Context, system, user string) (string, error)

	Stats *LLMStats
}

func New(opts Options) (*Client, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = 120 * time.Second
	}
	c := &Client{
		opts:       opts,
		httpClient: &http.Client{Timeout: opts.Timeout},
		Stats:      NewLLMStats(time.Hour),
	}
	if opts.RequestsPerMinute > 0 {
		c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(opts.RequestsPerMinute)), 1)
	}

	switch strings.ToLower(opts.Provider) {
	case ProviderOpenAI, "":
		if c.opts.BaseURL == "" {
			c.opts.BaseURL = "https://api.openai.com/v1"
		}
		c.complete = c.openAIComplete
	case ProviderAnthropic:
		if c.opts.BaseURL == "" {
			c.opts.BaseURL = "https://api.anthropic.com/v1"
		}
		c.complete = c.anthropicComplete
	default:
		return nil, fmt.Errorf("unknown provider %q", opts.Provider)
	}
	c.opts.BaseURL = strings.TrimRight(c.opts.BaseURL, "/")
	return c, nil
}

// Summarize sends one chunk with the book-summary prompts.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	return c.Complete(ctx, SystemPrompt, SummaryPrompt(text))
}

// Complete sends a single system+user exchange and returns the reply text.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("wait for rate limit: %w", err)
		}
	}
	start := time.Now()
	out, err := c.complete(ctx, system, user)
	c.Stats.Record(time.Since(start), err != nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (c *Client) Model() string {
	return c.opts.Model
}

// Close releases idle connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// APIError is a non-2xx response from the provider.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api status %d: %s", e.StatusCode, truncate(e.Message, 200))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
