// Package textgen wraps the Anthropic API behind the small text-generation
// interface the discovery engine consumes. Every caller must tolerate empty,
// malformed, or non-JSON output without raising.
package textgen

import (
	"context"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rotisserie/eris"
)

// Client defines the text-generation operations used by the pipeline.
type Client interface {
	// Complete sends a single-turn prompt and returns the raw text reply.
	Complete(ctx context.Context, req Request) (string, error)
}

// Request is a single-turn completion request.
type Request struct {
	System    string
	Prompt    string
	Model     string
	MaxTokens int64
}

// sdkClient implements Client using the official anthropic-sdk-go.
type sdkClient struct {
	client  sdk.Client
	model   string
	timeout time.Duration
}

// Option configures the client.
type Option func(*sdkClient)

// WithTimeout sets the soft per-call budget. Default: 15s.
func WithTimeout(d time.Duration) Option {
	return func(c *sdkClient) {
		c.timeout = d
	}
}

// NewClient creates a new Anthropic-backed client. The model is used when a
// request does not name one.
func NewClient(apiKey, model string, opts ...Option) Client {
	c := &sdkClient{
		client:  sdk.NewClient(option.WithAPIKey(apiKey)),
		model:   model,
		timeout: 15 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *sdkClient) Complete(ctx context.Context, req Request) (string, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1024
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := sdk.MessageNewParams{
		Model:     sdk.Model(model),
		MaxTokens: maxTokens,
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(req.Prompt)),
		},
	}
	if req.System != "" {
		params.System = []sdk.TextBlockParam{{Text: req.System}}
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", eris.Wrap(err, "textgen: create message")
	}

	for _, block := range msg.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text, nil
		}
	}
	return "", eris.New("textgen: empty response")
}
