package expert

import "github.com/studiominds/expertpanel/internal/analysis"

// TechnicalProfile defines the implementation feasibility advisor.
func TechnicalProfile() Profile {
	return Profile{
		Name: "Jordan Rivera",
		Role: "Technical Implementation Advisor",
		Triggers: Triggers{
			Keywords:     []string{"technical", "development", "cms", "api", "integration", "platform"},
			ProjectTypes: []string{"website", "app"},
			ContentTypes: []string{"migration", "replatform"},
		},
		Assessment: "The technical approach should be chosen for maintainability by the team that will own it",
		Headline:   "Pick the stack the owning team can operate, then design within its constraints",
		DomainKeywords: []string{
			"technical", "development", "cms", "api", "integration", "platform", "website", "app", "database",
		},
		DomainTypes: []string{"website", "app"},
		ComplexityIndicators: []string{
			"integration", "api", "database", "migration", "multiple platforms", "real-time",
		},
		Baseline: []analysis.Recommendation{
			{
				Priority:       analysis.PriorityMedium,
				Category:       "Technical Architecture",
				Description:    "Document the integration points and data ownership before build starts",
				Reasoning:      "Undocumented integrations are where timelines slip and budgets break",
				Implementation: "List every external system, its interface, and which side owns each record",
				Impact:         "Fewer mid-build surprises and a defensible estimate",
			},
		},
		Rules: []ContentRule{
			{
				Topic:    "performance constraints",
				Keywords: []string{"performance", "fast", "scale", "load"},
				Insight:  "Performance expectations shape architecture; retrofitting speed is far costlier than designing for it",
				Recommendation: &analysis.Recommendation{
					Priority:       analysis.PriorityMedium,
					Category:       "Performance",
					Description:    "Set concrete performance budgets per page or endpoint before implementation",
					Reasoning:      "Without numeric targets, performance degrades one acceptable-looking commit at a time",
					Implementation: "Define load-time and payload budgets and enforce them in the build pipeline",
					Impact:         "Performance stays a constraint instead of becoming a rescue project",
				},
			},
			{
				Topic:    "migration risk",
				Keywords: []string{"migration", "replatform", "legacy"},
				Insight:  "Content and URL migration carries its own project-sized risk; plan it as a first-class workstream",
			},
		},
		Uncertainty: []UncertaintyRule{
			{MissingField: "requirements", Note: "Feasibility calls need stated functional requirements to be reliable"},
			{Keywords: []string{"budget", "cheap", "low cost"}, Note: "Cost constraints are mentioned but unquantified; stack advice may not fit the budget"},
		},
	}
}
