package anthropic

import (
	"context"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/startright-uk/startright/internal/generation"
)

const providerName = "anthropic"

// Config holds the settings for the Anthropic Messages API.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

type client struct {
	api   sdk.Client
	model string
}

// NewGenerator returns a generation.Generator backed by the Anthropic Messages API.
// SDK retries are disabled so each Generate is exactly one request.
func NewGenerator(cfg *Config) generation.Generator {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	model := cfg.Model
	if model == "" {
		model = generation.DefaultModel
	}

	return &client{
		api:   sdk.NewClient(opts...),
		model: model,
	}
}

// Generate sends one user message, with an optional system prompt, and returns the text blocks of the reply.
func (c *client) Generate(ctx context.Context, req *generation.Request) (string, error) {
	params := sdk.MessageNewParams{
		Model:     sdk.Model(c.model),
		MaxTokens: int64(req.MaxTokens),
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(req.Prompt)),
		},
	}
	if req.System != "" {
		params.System = []sdk.TextBlockParam{{Text: req.System}}
	}

	msg, err := c.api.Messages.New(ctx, params)
	if err != nil {
		return "", &generation.Error{Provider: providerName, Err: err}
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	if strings.TrimSpace(sb.String()) == "" {
		return "", &generation.Error{Provider: providerName, Err: generation.ErrNoContent}
	}

	return sb.String(), nil
}
