package expert

import "github.com/studiominds/expertpanel/internal/analysis"

// DesignTheoryProfile defines the visual design, typography, and layout
// specialist.
func DesignTheoryProfile() Profile {
	return Profile{
		Name: "Dr. Maya Rodriguez",
		Role: "Design Theory Specialist",
		Triggers: Triggers{
			Keywords:     []string{"design", "layout", "typography", "visual", "composition"},
			ProjectTypes: []string{"website", "app", "design"},
			ContentTypes: []string{"redesign", "mockup", "wireframe"},
		},
		Assessment: "Visual structure and hierarchy will determine how quickly users grasp the core message",
		Headline:   "Layout and typographic hierarchy are the highest-leverage visual decisions in this brief",
		DomainKeywords: []string{
			"design", "layout", "typography", "visual", "brand", "interface", "website", "app",
		},
		DomainTypes: []string{"website", "app", "design", "brand"},
		ComplexityIndicators: []string{
			"responsive", "design system", "multiple platforms", "animation", "rebrand",
		},
		AudienceSensitive: true,
		Baseline: []analysis.Recommendation{
			{
				Priority:       analysis.PriorityMedium,
				Category:       "Visual Hierarchy",
				Description:    "Establish a typographic scale and spacing system before detailed design work",
				Reasoning:      "A consistent scale prevents ad hoc sizing decisions from diluting the hierarchy",
				Implementation: "Define 4-6 type sizes and an 8px spacing grid in a shared style document",
				Impact:         "Faster design iteration and a more coherent finished product",
			},
		},
		Rules: []ContentRule{
			{
				Topic:    "modernization",
				Keywords: []string{"modern", "outdated", "refresh", "redesign"},
				Insight:  "The brief signals a modernization effort; audit the current visual language before discarding it",
				Recommendation: &analysis.Recommendation{
					Priority:       analysis.PriorityHigh,
					Category:       "Visual Hierarchy",
					Description:    "Run a visual audit of the existing property to separate dated styling from structural problems",
					Reasoning:      "Modernization briefs often conflate surface styling with information architecture issues",
					Implementation: "Catalogue current components, score each against the new direction, and keep what works",
					Impact:         "Prevents an expensive full rebuild where a targeted restyle would suffice",
				},
			},
			{
				Topic:    "responsive layout",
				Keywords: []string{"mobile", "responsive", "mobile-first"},
				Insight:  "Mobile-first constraints should drive the grid; desktop becomes the progressive enhancement",
				Recommendation: &analysis.Recommendation{
					Priority:       analysis.PriorityHigh,
					Category:       "Responsive Design",
					Description:    "Design the narrowest breakpoint first and widen from there",
					Reasoning:      "Retrofitting desktop layouts to small screens produces cramped compromises",
					Implementation: "Start wireframes at 360px width and define breakpoints only where the layout breaks",
					Impact:         "A layout that holds together on the devices most of the audience actually uses",
				},
			},
		},
		Uncertainty: []UncertaintyRule{
			{MissingField: "targetAudience", Note: "Visual direction is hard to pin down without knowing who the design must persuade"},
			{Keywords: []string{"print", "packaging"}, Note: "Print and packaging production constraints need a specialist review"},
		},
	}
}
