package expert

import "github.com/studiominds/expertpanel/internal/analysis"

// MarketResearchProfile defines the audience and competitive research analyst.
func MarketResearchProfile() Profile {
	return Profile{
		Name: "Lisa Park",
		Role: "Market Research Analyst",
		Triggers: Triggers{
			Keywords:     []string{"audience", "market", "research", "demographics", "segment"},
			ProjectTypes: []string{"marketing", "brand"},
			ContentTypes: []string{"survey", "persona"},
		},
		Assessment: "Decisions in this brief rest on audience assumptions that have not been verified",
		Headline:   "Validate who the audience actually is before designing for who it is assumed to be",
		DomainKeywords: []string{
			"audience", "market", "research", "customer", "demographics", "segment", "competitor",
		},
		DomainTypes: []string{"marketing", "brand", "website"},
		ComplexityIndicators: []string{
			"multiple segments", "international", "b2b and b2c", "rebrand", "new market",
		},
		AudienceSensitive: true,
		Baseline: []analysis.Recommendation{
			{
				Priority:       analysis.PriorityMedium,
				Category:       "Audience Research",
				Description:    "Ground the stated audience in evidence: analytics, interviews, or existing research",
				Reasoning:      "Projects aimed at assumed audiences routinely miss the real one",
				Implementation: "Pull behavioral data where it exists and run a short interview round where it does not",
				Impact:         "Creative and messaging decisions anchored to real behavior",
			},
		},
		Rules: []ContentRule{
			{
				Topic:    "segment breadth",
				Keywords: []string{"everyone", "all ages", "broad audience", "general public"},
				Insight:  "A brief aimed at everyone is aimed at no one; the segments need ranking",
				Recommendation: &analysis.Recommendation{
					Priority:       analysis.PriorityHigh,
					Category:       "Audience Research",
					Description:    "Identify and rank the two highest-value segments and design for them first",
					Reasoning:      "Undifferentiated targeting dilutes every downstream design and copy decision",
					Implementation: "Score segments by value and reachability, then pick the top two as primary",
					Impact:         "Sharper creative decisions and measurable segment-level results",
				},
			},
			{
				Topic:    "competitive landscape",
				Keywords: []string{"competitor", "competitive", "market share"},
				Insight:  "Competitive claims in the brief should be checked against how those competitors actually present",
			},
		},
		Uncertainty: []UncertaintyRule{
			{MissingField: "targetAudience", Note: "No audience was stated; research must begin from zero"},
		},
	}
}
