package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/startright-uk/startright/internal/generation"
)

const (
	providerName = "gemini"
	DefaultModel = "gemini-2.5-flash"
)

// Config holds the settings for the Gemini API.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

type client struct {
	api   *genai.Client
	model string
}

// NewGenerator returns a generation.Generator backed by the Gemini API.
func NewGenerator(ctx context.Context, cfg *Config) (generation.Generator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	api, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &client{api: api, model: model}, nil
}

// Generate sends the prompt as a single user turn with the system prompt as the system instruction.
func (c *client) Generate(ctx context.Context, req *generation.Request) (string, error) {
	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if req.System != "" {
		config.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	resp, err := c.api.Models.GenerateContent(ctx, c.model, genai.Text(req.Prompt), config)
	if err != nil {
		return "", &generation.Error{Provider: providerName, Err: err}
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", &generation.Error{Provider: providerName, Err: generation.ErrNoContent}
	}

	return text, nil
}
