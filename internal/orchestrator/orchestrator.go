package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/startright-uk/startright/internal/entitlement"
	"github.com/startright-uk/startright/internal/generation"
	"github.com/startright-uk/startright/internal/notification"
	"github.com/startright-uk/startright/internal/order"
	"github.com/startright-uk/startright/internal/prompt"
)

// ErrMissingDocuments is returned when the entitlements leave out the study or the plan.
var ErrMissingDocuments = errors.New("entitlements omit the study or plan")

// PromptBuilder renders the prompt for one artifact of an order.
type PromptBuilder interface {
	Build(o *order.Order, kind order.ArtifactKind) string
}

// DocumentAssembler turns generated text into document bytes.
type DocumentAssembler interface {
	Assemble(text, title string, o *order.Order) ([]byte, error)
}

// Notifier hands the finished order to the business owner.
type Notifier interface {
	Notify(ctx context.Context, o *order.Order, bundle *notification.Bundle) error
}

// Orchestrator runs the order pipeline: entitlements, generation fan-out, document assembly and notification.
type Orchestrator interface {
	Process(ctx context.Context, o *order.Order) error
}

type orderOrchestrator struct {
	resolver  entitlement.Resolver
	prompts   PromptBuilder
	budgets   prompt.Budgets
	generator generation.Generator
	assembler DocumentAssembler
	notifier  Notifier
	logger    *slog.Logger
}

// Config wires the collaborators of the order pipeline.
type Config struct {
	Resolver  entitlement.Resolver
	Prompts   PromptBuilder
	Budgets   prompt.Budgets
	Generator generation.Generator
	Assembler DocumentAssembler
	Notifier  Notifier
	Logger    *slog.Logger
}

// NewOrchestrator creates the order pipeline from cfg.
func NewOrchestrator(cfg *Config) Orchestrator {
	return &orderOrchestrator{
		resolver:  cfg.Resolver,
		prompts:   cfg.Prompts,
		budgets:   cfg.Budgets,
		generator: cfg.Generator,
		assembler: cfg.Assembler,
		notifier:  cfg.Notifier,
		logger:    cfg.Logger,
	}
}

// Process generates every artifact the order pays for, assembles the study and plan documents
// and sends the notification. Any failure aborts the whole order and nothing is sent.
func (p *orderOrchestrator) Process(ctx context.Context, o *order.Order) error {
	ref := uuid.New()
	logger := p.logger.With("order_ref", ref.String(), "product", string(o.Product))

	ent, err := p.resolver.Resolve(ctx, o)
	if err != nil {
		return fmt.Errorf("failed to resolve entitlements: %w", err)
	}

	// Both documents are always attached, so a policy without them would send empty files.
	if !ent.Includes(order.ArtifactStudy) || !ent.Includes(order.ArtifactPlan) {
		return fmt.Errorf("failed to resolve entitlements for %s: %w", o.Product, ErrMissingDocuments)
	}

	logger.InfoContext(ctx, "order accepted", "artifacts", ent.Artifacts)

	artifacts, err := p.generateArtifacts(ctx, o, ent.Artifacts)
	if err != nil {
		return fmt.Errorf("failed to generate artifacts: %w", err)
	}

	study, plan, err := p.assembleDocuments(o, artifacts)
	if err != nil {
		return fmt.Errorf("failed to assemble documents: %w", err)
	}

	err = p.notifier.Notify(ctx, o, &notification.Bundle{
		StudyDocument: study,
		PlanDocument:  plan,
		Artifacts:     artifacts,
		Entitlements:  ent,
	})
	if err != nil {
		return fmt.Errorf("failed to notify: %w", err)
	}

	logger.InfoContext(ctx, "order processed")
	return nil
}

// generateArtifacts issues one generation call per kind in parallel and waits for all of them.
// The first failure cancels the calls still in flight.
func (p *orderOrchestrator) generateArtifacts(
	ctx context.Context,
	o *order.Order,
	kinds []order.ArtifactKind,
) (map[order.ArtifactKind]string, error) {
	result := make(map[order.ArtifactKind]string, len(kinds))
	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)

	for _, kind := range kinds {
		g.Go(func() error {
			text, err := p.generator.Generate(ctx, &generation.Request{
				Prompt:    p.prompts.Build(o, kind),
				MaxTokens: p.budgets.For(kind),
			})
			if err != nil {
				return fmt.Errorf("failed to generate %s: %w", kind, err)
			}

			mu.Lock()
			result[kind] = text
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

// assembleDocuments renders the study and plan in parallel.
func (p *orderOrchestrator) assembleDocuments(
	o *order.Order,
	artifacts map[order.ArtifactKind]string,
) ([]byte, []byte, error) {
	var study, plan []byte
	var g errgroup.Group

	g.Go(func() error {
		var err error
		study, err = p.assembler.Assemble(artifacts[order.ArtifactStudy], prompt.Title(order.ArtifactStudy), o)
		return err
	})

	g.Go(func() error {
		var err error
		plan, err = p.assembler.Assemble(artifacts[order.ArtifactPlan], prompt.Title(order.ArtifactPlan), o)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return study, plan, nil
}
