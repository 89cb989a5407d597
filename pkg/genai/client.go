// Package genai provides the injected "generate text from structured
// prompt" capability the advisor pipeline delegates narrative work to.
// The decision core never imports this package; only the orchestration
// layer does, which keeps the core unit-testable without network access.
package genai

import (
	"context"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client generates text from a structured prompt.
type Client interface {
	Generate(ctx context.Context, req Request) (*Response, error)
}

// Request carries one generation call.
type Request struct {
	System string
	Prompt string
}

// Response carries the generated text and token accounting.
type Response struct {
	Text         string
	InputTokens  int64
	OutputTokens int64
}

// Config holds the settings for the Anthropic-backed client.
type Config struct {
	APIKey         string
	Model          string
	MaxTokens      int64
	RequestsPerSec float64
}

// sdkClient implements Client using the official anthropic-sdk-go,
// rate-limited to protect the external API.
type sdkClient struct {
	client    sdk.Client
	model     string
	maxTokens int64
	limiter   *rate.Limiter
}

// NewClient creates an Anthropic-backed Client.
func NewClient(cfg Config) Client {
	rps := cfg.RequestsPerSec
	if rps <= 0 {
		rps = 2
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 2048
	}
	return &sdkClient{
		client: sdk.NewClient(
			option.WithAPIKey(cfg.APIKey),
		),
		model:     cfg.Model,
		maxTokens: maxTokens,
		limiter:   rate.NewLimiter(rate.Limit(rps), 1),
	}
}

func (c *sdkClient) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "genai: rate limit wait")
	}

	params := sdk.MessageNewParams{
		Model:     sdk.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(req.Prompt)),
		},
	}
	if req.System != "" {
		params.System = []sdk.TextBlockParam{{Text: req.System}}
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, eris.Wrap(err, "genai: create message")
	}

	var text string
	for _, block := range msg.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}

	resp := &Response{
		Text:         text,
		InputTokens:  msg.Usage.InputTokens,
		OutputTokens: msg.Usage.OutputTokens,
	}

	zap.L().Debug("genai: generation complete",
		zap.String("model", c.model),
		zap.Int64("input_tokens", resp.InputTokens),
		zap.Int64("output_tokens", resp.OutputTokens),
	)

	return resp, nil
}
