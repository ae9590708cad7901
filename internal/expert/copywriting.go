package expert

import "github.com/studiominds/expertpanel/internal/analysis"

// CopywritingProfile defines the messaging and conversion copy specialist.
func CopywritingProfile() Profile {
	return Profile{
		Name: "Marcus Thompson",
		Role: "Copywriting Strategist",
		Triggers: Triggers{
			Keywords:     []string{"copy", "content", "messaging", "tone", "voice"},
			ProjectTypes: []string{"copy", "marketing", "website"},
			ContentTypes: []string{"landing page", "campaign", "tagline"},
		},
		Assessment: "Message clarity, not volume, is what this brief needs from its copy",
		Headline:   "Every page needs one job; write the headline for that job before anything else",
		DomainKeywords: []string{
			"copy", "content", "messaging", "conversion", "brand", "marketing", "website",
		},
		DomainTypes: []string{"copy", "marketing", "website", "brand"},
		ComplexityIndicators: []string{
			"multiple languages", "campaign", "seo", "rebrand", "multiple platforms",
		},
		AudienceSensitive: true,
		Baseline: []analysis.Recommendation{
			{
				Priority:       analysis.PriorityMedium,
				Category:       "Messaging",
				Description:    "Write a one-sentence value proposition and test every page headline against it",
				Reasoning:      "Copy drifts without a single reference sentence to anchor it",
				Implementation: "Draft, pressure-test with stakeholders, then publish internally as the copy north star",
				Impact:         "Consistent messaging across every surface the audience touches",
			},
		},
		Rules: []ContentRule{
			{
				Topic:    "conversion",
				Keywords: []string{"conversion", "convert", "leads", "signups"},
				Insight:  "Conversion goals make the call-to-action hierarchy the most important copy decision",
				Recommendation: &analysis.Recommendation{
					Priority:       analysis.PriorityHigh,
					Category:       "Messaging",
					Description:    "Limit each page to one primary call to action with supporting proof points",
					Reasoning:      "Competing calls to action split intent and depress conversion",
					Implementation: "Map the single desired next step per page and subordinate all other links",
					Impact:         "Measurable lift in the conversion paths the brief cares about",
				},
			},
			{
				Topic:    "enterprise voice",
				Keywords: []string{"enterprise", "b2b", "decision makers"},
				Insight:  "Enterprise buyers read for risk reduction; lead with outcomes and proof, not adjectives",
			},
		},
		Uncertainty: []UncertaintyRule{
			{MissingField: "targetAudience", Note: "Voice and register cannot be fixed without a defined reader"},
			{Keywords: []string{"legal", "regulated", "medical", "financial"}, Note: "Regulated-industry claims need compliance review before publication"},
		},
	}
}
