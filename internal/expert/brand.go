package expert

import "github.com/studiominds/expertpanel/internal/analysis"

// BrandStrategyProfile defines the competitive positioning specialist.
func BrandStrategyProfile() Profile {
	return Profile{
		Name: "Sarah Kim",
		Role: "Brand Strategy Analyst",
		Triggers: Triggers{
			Keywords:     []string{"brand", "positioning", "identity", "competitor", "differentiation"},
			ProjectTypes: []string{"brand", "marketing"},
			ContentTypes: []string{"rebrand", "brand guidelines"},
		},
		Assessment: "Positioning clarity must precede identity work or the visuals will have nothing to express",
		Headline:   "Decide what the brand should own in the buyer's mind before touching logo, palette, or copy",
		DomainKeywords: []string{
			"brand", "positioning", "identity", "market", "competitor", "startup",
		},
		DomainTypes: []string{"brand", "marketing", "website"},
		ComplexityIndicators: []string{
			"rebrand", "merger", "sub-brand", "international", "multiple platforms",
		},
		AudienceSensitive: true,
		Baseline: []analysis.Recommendation{
			{
				Priority:       analysis.PriorityMedium,
				Category:       "Brand Positioning",
				Description:    "Map the three nearest competitors' positioning before committing to a direction",
				Reasoning:      "Differentiation claims are meaningless without knowing what the field already claims",
				Implementation: "Build a positioning matrix across price, tone, and promise axes",
				Impact:         "A defensible position instead of a crowded one",
			},
		},
		Rules: []ContentRule{
			{
				Topic:    "enterprise trust",
				Keywords: []string{"enterprise", "b2b", "trust", "credibility"},
				Insight:  "Enterprise positioning is won on evidence of stability; feature claims come second",
				Recommendation: &analysis.Recommendation{
					Priority:       analysis.PriorityHigh,
					Category:       "Brand Positioning",
					Description:    "Lead brand messaging with proof of reliability: customers, uptime, tenure, certifications",
					Reasoning:      "Enterprise buyers filter vendors on risk before they compare capabilities",
					Implementation: "Collect and foreground trust assets across the primary brand surfaces",
					Impact:         "Shorter sales cycles from reduced perceived risk",
				},
			},
			{
				Topic:    "startup differentiation",
				Keywords: []string{"startup", "disrupt", "new entrant"},
				Insight:  "A young brand should pick one sharp claim; breadth is the incumbent's game",
			},
		},
		Uncertainty: []UncertaintyRule{
			{MissingField: "context", Note: "Competitive set is undefined; positioning advice is directional only"},
		},
	}
}
