package prompt

import (
	"fmt"

	"github.com/startright-uk/startright/internal/order"
)

// Default token ceilings per artifact kind.
const (
	StudyMaxTokens              = 3000
	PlanMaxTokens               = 4000
	NameSuggestionsMaxTokens    = 1500
	AdviceMaxTokens             = 2000
	FormationChecklistMaxTokens = 1500
	ChatMaxTokens               = 1024
)

const studyTemplate = `Create a professional Business Study for:

Business: %s
Description: %s
Target Customers: %s
Location: %s
Competitors: %s

Sections needed:

1. EXECUTIVE SUMMARY
2. MARKET OVERVIEW - size, trends in %s
3. TARGET AUDIENCE - demographics, needs, pain points
4. COMPETITOR ANALYSIS - strengths, weaknesses
5. SWOT ANALYSIS
6. PRICING STRATEGY
7. KEY OPPORTUNITIES (top 5)
8. RECOMMENDATIONS

British English. Specific and actionable.`

const planTemplate = `Create a professional Business Plan for banks/investors:

Business: %s
Description: %s
Target Customers: %s
Location: %s
Year 1 Goals: %s
Competitors: %s

Sections:

1. EXECUTIVE SUMMARY
2. BUSINESS DESCRIPTION
3. PRODUCTS/SERVICES
4. MARKET ANALYSIS
5. COMPETITIVE ANALYSIS
6. MARKETING & SALES STRATEGY
7. OPERATIONS PLAN
8. FINANCIAL PROJECTIONS (startup costs, monthly revenue, break-even)
9. MILESTONES (months 1, 3, 6, 12)

British English. Realistic for new UK business.`

const nameSuggestionsTemplate = `Suggest 10 business names with .co.uk domains (domains should be simple, likely available, registrable for around £10):

Business: %s
Customers: %s
Location: %s
Preferences: %s

For each:

1. Business name
2. Domain (e.g. smithplumbing.co.uk)
3. Why it works (one line)

Names should be memorable, easy to spell, professional but friendly.`

const adviceTemplate = `Give friendly, practical startup advice for:

Business: %s
Description: %s
Customers: %s
Location: %s
Goals: %s
Additional info: %s

Cover:

1. FIRST STEPS - what to do in week 1
2. QUICK WINS - easy things to get momentum
3. COMMON MISTAKES TO AVOID
4. MONEY TIPS - keeping costs low, pricing right
5. MARKETING IDEAS - free/cheap ways to get customers
6. USEFUL RESOURCES - websites, tools, organisations

Friendly tone, practical British advice. Like a helpful mate who's been there.`

const formationChecklistTemplate = `Create a company formation checklist/paperwork summary for:

Business Name: %s
Description: %s
Location: %s

Include:

1. COMPANY DETAILS NEEDED
- Proposed company name(s)
- SIC codes (suggest appropriate ones)
- Registered office address
2. DIRECTOR DETAILS NEEDED
- Full name, DOB, nationality
- Residential address
- Service address
3. SHAREHOLDER DETAILS
- Share structure recommendation
4. DOCUMENTS TO PREPARE
- Memorandum
- Articles of Association
5. POST-FORMATION TASKS
- Corporation tax registration
- Business bank account
- Any licenses needed for this business type

Format as a clear checklist %s can use.`

// Builder maps an order onto the prompt for each artifact kind.
type Builder struct {
	// reviewer is the person who works through the formation checklist.
	reviewer string
}

// NewBuilder returns a Builder whose formation checklist is addressed to reviewer.
func NewBuilder(reviewer string) *Builder {
	return &Builder{reviewer: order.Or(reviewer, "the business owner")}
}

// Build returns the prompt for kind. Unknown kinds yield an empty prompt.
func (b *Builder) Build(o *order.Order, kind order.ArtifactKind) string {
	switch kind {
	case order.ArtifactStudy:
		return fmt.Sprintf(
			studyTemplate,
			order.Or(o.BusinessName, "TBC"),
			o.BusinessDescription,
			o.TargetCustomers,
			o.Location,
			order.Or(o.Competitors, "To research"),
			o.Location,
		)
	case order.ArtifactPlan:
		return fmt.Sprintf(
			planTemplate,
			order.Or(o.BusinessName, "TBC"),
			o.BusinessDescription,
			o.TargetCustomers,
			o.Location,
			order.Or(o.YearOneGoals, "Establish and grow"),
			order.Or(o.Competitors, "Various"),
		)
	case order.ArtifactNameSuggestions:
		return fmt.Sprintf(
			nameSuggestionsTemplate,
			o.BusinessDescription,
			o.TargetCustomers,
			o.Location,
			order.Or(o.NamePreferences, "No specific preference"),
		)
	case order.ArtifactAdvice:
		return fmt.Sprintf(
			adviceTemplate,
			order.Or(o.BusinessName, "TBC"),
			o.BusinessDescription,
			o.TargetCustomers,
			o.Location,
			order.Or(o.YearOneGoals, "Get started"),
			order.Or(o.AdditionalInfo, "None"),
		)
	case order.ArtifactFormationChecklist:
		return fmt.Sprintf(
			formationChecklistTemplate,
			order.Or(o.BusinessName, "TBC"),
			o.BusinessDescription,
			o.Location,
			b.reviewer,
		)
	default:
		return ""
	}
}

// Title returns the display title of an artifact kind.
func Title(kind order.ArtifactKind) string {
	switch kind {
	case order.ArtifactStudy:
		return "Business Study"
	case order.ArtifactPlan:
		return "Business Plan"
	case order.ArtifactNameSuggestions:
		return "Name Suggestions"
	case order.ArtifactAdvice:
		return "Personalised Advice"
	case order.ArtifactFormationChecklist:
		return "Formation Checklist"
	default:
		return string(kind)
	}
}

// Budgets holds the token ceiling for each artifact kind.
type Budgets map[order.ArtifactKind]int

// DefaultBudgets returns the standard token ceilings.
func DefaultBudgets() Budgets {
	return Budgets{
		order.ArtifactStudy:              StudyMaxTokens,
		order.ArtifactPlan:               PlanMaxTokens,
		order.ArtifactNameSuggestions:    NameSuggestionsMaxTokens,
		order.ArtifactAdvice:             AdviceMaxTokens,
		order.ArtifactFormationChecklist: FormationChecklistMaxTokens,
	}
}

// For returns the ceiling for kind, falling back to the default table.
func (b Budgets) For(kind order.ArtifactKind) int {
	if n, ok := b[kind]; ok && n > 0 {
		return n
	}

	return DefaultBudgets()[kind]
}
