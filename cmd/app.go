package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/startright-uk/startright/internal/api/rest"
	"github.com/startright-uk/startright/internal/api/rest/handlers"
	"github.com/startright-uk/startright/internal/catalogue"
	"github.com/startright-uk/startright/internal/chat"
	"github.com/startright-uk/startright/internal/config"
	"github.com/startright-uk/startright/internal/document"
	"github.com/startright-uk/startright/internal/entitlement"
	"github.com/startright-uk/startright/internal/generation"
	"github.com/startright-uk/startright/internal/generation/anthropic"
	"github.com/startright-uk/startright/internal/generation/gemini"
	"github.com/startright-uk/startright/internal/notification"
	"github.com/startright-uk/startright/internal/notification/resend"
	"github.com/startright-uk/startright/internal/orchestrator"
	"github.com/startright-uk/startright/internal/order"
	"github.com/startright-uk/startright/internal/prompt"
	"github.com/startright-uk/startright/internal/secret"
	"github.com/startright-uk/startright/internal/version"
)

const (
	AnthropicAPIKeyEnv = "ANTHROPIC_API_KEY"
	GeminiAPIKeyEnv    = "GEMINI_API_KEY"
	ResendAPIKeyEnv    = "RESEND_API_KEY"
)

func newLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return nil, err
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})).With(
		slog.String("version", version.Version),
	), nil
}

func newGenerator(ctx context.Context, cfg *config.GenerationConfig) (generation.Generator, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		key, err := secret.Lookup(GeminiAPIKeyEnv)
		if err != nil {
			return nil, err
		}

		return gemini.NewGenerator(ctx, &gemini.Config{APIKey: key, Model: cfg.Model, BaseURL: cfg.BaseURL})
	default:
		key, err := secret.Lookup(AnthropicAPIKeyEnv)
		if err != nil {
			return nil, err
		}

		return anthropic.NewGenerator(&anthropic.Config{APIKey: key, Model: cfg.Model, BaseURL: cfg.BaseURL}), nil
	}
}

func budgets(cfg *config.GenerationConfig) prompt.Budgets {
	b := prompt.DefaultBudgets()
	for kind, tokens := range cfg.Budgets {
		if tokens > 0 {
			b[order.ArtifactKind(kind)] = tokens
		}
	}

	return b
}

// newAPIHandler wires the order pipeline, the chat relay and the catalogue behind the REST router.
func newAPIHandler(ctx context.Context, cfg *config.Config, logger *slog.Logger) (http.Handler, error) {
	generator, err := newGenerator(ctx, &cfg.Generation)
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}

	resolver, err := entitlement.NewResolverFromFile(ctx, cfg.Entitlement.PolicyFile)
	if err != nil {
		return nil, err
	}

	mailKey, err := secret.Lookup(ResendAPIKeyEnv)
	if err != nil {
		return nil, err
	}

	mailer, err := resend.NewMailer(mailKey, cfg.Mail.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create mailer: %w", err)
	}

	services, err := catalogue.Load()
	if err != nil {
		return nil, err
	}

	pipeline := orchestrator.NewOrchestrator(&orchestrator.Config{
		Resolver:  resolver,
		Prompts:   prompt.NewBuilder(cfg.Business.Reviewer),
		Budgets:   budgets(&cfg.Generation),
		Generator: generator,
		Assembler: document.NewAssembler(cfg.Business.Issuer),
		Notifier:  notification.NewNotifier(mailer, &notification.Config{From: cfg.Mail.From, To: cfg.Mail.To}),
		Logger:    logger,
	})

	return rest.NewMuxWithHandlers(&rest.RouterConfig{
		OrderHandler:    handlers.NewOrderHandler(pipeline, logger),
		ChatHandler:     handlers.NewChatHandler(chat.NewRelay(generator, cfg.Generation.Chat), logger),
		ServicesHandler: handlers.NewServicesHandler(services),
		Logger:          logger,
	}), nil
}
