package entitlement

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/open-policy-agent/opa/v1/rego"

	"github.com/startright-uk/startright/internal/order"
)

const (
	moduleName = "entitlements.rego"
	query      = "data.startright.entitlements.result"
)

//go:embed policies/entitlements.rego
var policy string

// Entitlements describes what a package tier pays for.
type Entitlements struct {
	IsPro                bool                 `json:"is_pro"`
	IsProDomain          bool                 `json:"is_pro_domain"`
	NeedsNameSuggestions bool                 `json:"needs_name_suggestions"`
	Artifacts            []order.ArtifactKind `json:"artifacts"`
	Label                string               `json:"label"`
}

// Includes reports whether kind is part of the package.
func (e *Entitlements) Includes(kind order.ArtifactKind) bool {
	return slices.Contains(e.Artifacts, kind)
}

// Resolver decides entitlements for an order.
type Resolver interface {
	Resolve(ctx context.Context, o *order.Order) (*Entitlements, error)
}

type regoResolver struct {
	query rego.PreparedEvalQuery
}

// NewResolver compiles the embedded package policy once and returns a Resolver backed by OPA.
func NewResolver(ctx context.Context) (Resolver, error) {
	return NewResolverFromPolicy(ctx, policy)
}

// NewResolverFromPolicy compiles the given Rego module instead of the embedded one.
func NewResolverFromPolicy(ctx context.Context, module string) (Resolver, error) {
	prepared, err := rego.New(
		rego.Query(query),
		rego.Module(moduleName, module),
	).PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare entitlement policy: %w", err)
	}

	return &regoResolver{query: prepared}, nil
}

// Resolve evaluates the policy with the order's product and has_name fields as input.
func (r *regoResolver) Resolve(ctx context.Context, o *order.Order) (*Entitlements, error) {
	resultSet, err := r.query.Eval(ctx, rego.EvalInput(map[string]any{
		"product":  string(o.Product),
		"has_name": o.HasName,
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate entitlement policy: %w", err)
	}

	if len(resultSet) == 0 || len(resultSet[0].Expressions) == 0 {
		return nil, errors.New("no evaluation results returned from entitlement policy")
	}

	return convertResult(resultSet[0].Expressions[0].Value)
}

// convertResult transforms OPA evaluation output to Entitlements
func convertResult(value any) (*Entitlements, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entitlement result: %w", err)
	}

	var result Entitlements
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal entitlement result: %w", err)
	}

	return &result, nil
}
