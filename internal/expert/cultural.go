package expert

import "github.com/studiominds/expertpanel/internal/analysis"

// CulturalContextProfile defines the cross-cultural appropriateness expert.
func CulturalContextProfile() Profile {
	return Profile{
		Name: "Dr. Amara Osei",
		Role: "Cultural Context Expert",
		Triggers: Triggers{
			Keywords:     []string{"cultural", "international", "global", "localization", "multicultural"},
			ProjectTypes: []string{"brand", "marketing"},
			ContentTypes: []string{"localization", "translation"},
		},
		Assessment: "Cross-cultural reach in this brief means every symbol, color, and phrase needs regional validation",
		Headline:   "What reads as neutral at home can read as careless or offensive abroad; validate per region",
		DomainKeywords: []string{
			"cultural", "international", "global", "localization", "region", "multicultural", "language",
		},
		DomainTypes: []string{"brand", "marketing", "website"},
		ComplexityIndicators: []string{
			"multiple languages", "international", "religious", "localization", "multiple regions",
		},
		AudienceSensitive: true,
		Baseline: []analysis.Recommendation{
			{
				Priority:       analysis.PriorityMedium,
				Category:       "Cultural Adaptation",
				Description:    "Review imagery, color, and naming choices against each target region's conventions",
				Reasoning:      "Cultural missteps are cheap to prevent and expensive to retract",
				Implementation: "Run a per-region review of visual and verbal assets with native reviewers",
				Impact:         "Launch assets that land as intended in every target market",
			},
		},
		Rules: []ContentRule{
			{
				Topic:    "sensitive traditions",
				Keywords: []string{"religious", "sacred", "indigenous", "traditional"},
				Insight:  "References to living traditions require consultation, not just review",
				Recommendation: &analysis.Recommendation{
					Priority:       analysis.PriorityHigh,
					Category:       "Cultural Adaptation",
					Description:    "Bring in reviewers from the referenced communities before creative development",
					Reasoning:      "Internal review cannot catch what only community members recognize",
					Implementation: "Engage community consultants at concept stage, not at sign-off",
					Impact:         "Respectful execution and protection from avoidable backlash",
				},
			},
			{
				Topic:    "localization scope",
				Keywords: []string{"translation", "translate", "localization", "multiple languages"},
				Insight:  "Translation alone is not localization; layouts, examples, and imagery need adapting too",
			},
		},
		Uncertainty: []UncertaintyRule{
			{MissingField: "targetAudience", Note: "Target regions are unstated; cultural guidance is generic until they are named"},
		},
	}
}
