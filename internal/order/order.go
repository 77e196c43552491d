package order

import "strings"

// Product identifies the package tier a customer paid for.
type Product string

const (
	ProductPremium      Product = "premium"
	ProductPro          Product = "pro"
	ProductProDomain    Product = "pro-domain"
	ProductBusinessPlan Product = "business-plan"
	ProductMarketStudy  Product = "market-study"
)

// NameSuggestionsRequested is the has_name value the order form sends when the
// customer has no business name yet.
const NameSuggestionsRequested = "I need suggestions"

// ArtifactKind tags a generated text blob.
type ArtifactKind string

const (
	ArtifactStudy              ArtifactKind = "study"
	ArtifactPlan               ArtifactKind = "plan"
	ArtifactNameSuggestions    ArtifactKind = "name-suggestions"
	ArtifactAdvice             ArtifactKind = "advice"
	ArtifactFormationChecklist ArtifactKind = "formation-checklist"
)

// Order represents the fields submitted by the checkout form
type Order struct {
	Product             Product `json:"product"`
	CustomerName        string  `json:"customer_name"`
	CustomerEmail       string  `json:"customer_email"`
	BusinessName        string  `json:"business_name,omitempty"`
	BusinessDescription string  `json:"business_description"`
	TargetCustomers     string  `json:"target_customers"`
	Location            string  `json:"location"`
	YearOneGoals        string  `json:"year_one_goals,omitempty"`
	Competitors         string  `json:"competitors,omitempty"`
	AdditionalInfo      string  `json:"additional_info,omitempty"`
	HasName             string  `json:"has_name,omitempty"`
	NamePreferences     string  `json:"name_preferences,omitempty"`
}

// Or returns value, or fallback when value is blank.
func Or(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}
