package expert

import "github.com/studiominds/expertpanel/internal/analysis"

// UXUsabilityProfile defines the user experience and usability specialist.
func UXUsabilityProfile() Profile {
	return Profile{
		Name: "David Chen",
		Role: "UX/Usability Specialist",
		Triggers: Triggers{
			Keywords:     []string{"ux", "usability", "user experience", "navigation", "conversion"},
			ProjectTypes: []string{"website", "app"},
			ContentTypes: []string{"onboarding", "checkout", "signup"},
		},
		Assessment: "The experience will be judged on task completion; structure the work around the critical user journeys",
		Headline:   "Identify the two or three journeys that matter commercially and optimize those end to end",
		DomainKeywords: []string{
			"ux", "usability", "user", "website", "app", "conversion", "navigation", "mobile",
		},
		DomainTypes: []string{"website", "app"},
		ComplexityIndicators: []string{
			"personalization", "multiple platforms", "onboarding", "checkout", "integration",
		},
		AudienceSensitive: true,
		Baseline: []analysis.Recommendation{
			{
				Priority:       analysis.PriorityMedium,
				Category:       "User Experience",
				Description:    "Define and instrument the primary user journeys before redesigning screens",
				Reasoning:      "Screen-level polish cannot fix a journey-level breakdown",
				Implementation: "Map each journey, mark the drop-off points, and prioritize fixes by traffic",
				Impact:         "Redesign effort lands where it changes user behavior",
			},
		},
		Rules: []ContentRule{
			{
				Topic:    "mobile experience",
				Keywords: []string{"mobile", "mobile-first", "responsive"},
				Insight:  "Mobile usage patterns differ from desktop; thumb reach and interruption tolerance drive the layout",
				Recommendation: &analysis.Recommendation{
					Priority:       analysis.PriorityHigh,
					Category:       "Mobile Experience",
					Description:    "Design primary actions within thumb reach and make every flow interruption-safe",
					Reasoning:      "Mobile sessions are short and frequently abandoned mid-task",
					Implementation: "Place key actions in the bottom third of the viewport and persist form state",
					Impact:         "Lower abandonment on the growing share of mobile traffic",
				},
			},
			{
				Topic:    "conversion friction",
				Keywords: []string{"conversion", "drop-off", "abandonment", "funnel"},
				Insight:  "Stated conversion problems usually trace to a small number of high-friction steps",
			},
		},
		Uncertainty: []UncertaintyRule{
			{MissingField: "targetAudience", Note: "Usability heuristics need a defined user population to be meaningful"},
			{Keywords: []string{"accessibility", "assistive"}, Note: "Assistive-technology flows need a dedicated accessibility review"},
		},
	}
}
