package entitlement

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/startright-uk/startright/internal/order"
)

func TestResolver_Resolve(t *testing.T) {
	testCases := map[string]struct {
		order             *order.Order
		expectedPro       bool
		expectedDomain    bool
		expectedNames     bool
		expectedArtifacts []order.ArtifactKind
		expectedLabel     string
	}{
		"premium without name request": {
			order: &order.Order{Product: order.ProductPremium, HasName: "Yes"},
			expectedArtifacts: []order.ArtifactKind{
				order.ArtifactStudy, order.ArtifactPlan, order.ArtifactAdvice,
			},
			expectedLabel: "Premium (£29)",
		},
		"premium with name request": {
			order:         &order.Order{Product: order.ProductPremium, HasName: order.NameSuggestionsRequested},
			expectedNames: true,
			expectedArtifacts: []order.ArtifactKind{
				order.ArtifactStudy, order.ArtifactPlan, order.ArtifactAdvice, order.ArtifactNameSuggestions,
			},
			expectedLabel: "Premium (£29)",
		},
		"pro": {
			order:       &order.Order{Product: order.ProductPro},
			expectedPro: true,
			expectedArtifacts: []order.ArtifactKind{
				order.ArtifactStudy, order.ArtifactPlan, order.ArtifactAdvice, order.ArtifactFormationChecklist,
			},
			expectedLabel: "Pro (£99)",
		},
		"pro domain with name request": {
			order:          &order.Order{Product: order.ProductProDomain, HasName: order.NameSuggestionsRequested},
			expectedPro:    true,
			expectedDomain: true,
			expectedNames:  true,
			expectedArtifacts: []order.ArtifactKind{
				order.ArtifactStudy,
				order.ArtifactPlan,
				order.ArtifactAdvice,
				order.ArtifactNameSuggestions,
				order.ArtifactFormationChecklist,
			},
			expectedLabel: "Pro + Domain (£109)",
		},
		"business plan": {
			order: &order.Order{Product: order.ProductBusinessPlan},
			expectedArtifacts: []order.ArtifactKind{
				order.ArtifactStudy, order.ArtifactPlan, order.ArtifactAdvice,
			},
			expectedLabel: "Business Plan (£29)",
		},
		"market study": {
			order: &order.Order{Product: order.ProductMarketStudy},
			expectedArtifacts: []order.ArtifactKind{
				order.ArtifactStudy, order.ArtifactPlan, order.ArtifactAdvice,
			},
			expectedLabel: "Market Study (£29)",
		},
		"unknown product gets baseline and no label": {
			order: &order.Order{Product: "gold"},
			expectedArtifacts: []order.ArtifactKind{
				order.ArtifactStudy, order.ArtifactPlan, order.ArtifactAdvice,
			},
		},
		"sentinel match is exact": {
			order: &order.Order{Product: order.ProductPremium, HasName: "i need suggestions"},
			expectedArtifacts: []order.ArtifactKind{
				order.ArtifactStudy, order.ArtifactPlan, order.ArtifactAdvice,
			},
			expectedLabel: "Premium (£29)",
		},
	}

	resolver, err := NewResolver(context.Background())
	require.NoError(t, err)

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			ent, err := resolver.Resolve(context.Background(), tc.order)
			require.NoError(t, err)

			assert.Equal(t, tc.expectedPro, ent.IsPro)
			assert.Equal(t, tc.expectedDomain, ent.IsProDomain)
			assert.Equal(t, tc.expectedNames, ent.NeedsNameSuggestions)
			assert.ElementsMatch(t, tc.expectedArtifacts, ent.Artifacts)
			assert.Equal(t, tc.expectedLabel, ent.Label)
		})
	}
}

func TestNewResolverFromPolicy_InvalidModule(t *testing.T) {
	_, err := NewResolverFromPolicy(context.Background(), "package broken\n\nallow if {")
	assert.ErrorContains(t, err, "failed to prepare entitlement policy")
}

func TestEntitlements_Includes(t *testing.T) {
	ent := &Entitlements{Artifacts: []order.ArtifactKind{order.ArtifactStudy}}

	assert.True(t, ent.Includes(order.ArtifactStudy))
	assert.False(t, ent.Includes(order.ArtifactFormationChecklist))
}
