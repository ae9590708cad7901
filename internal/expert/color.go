package expert

import "github.com/studiominds/expertpanel/internal/analysis"

// ColorTheoryProfile defines the color psychology and palette specialist.
func ColorTheoryProfile() Profile {
	return Profile{
		Name: "Dr. Zara Okafor",
		Role: "Color Theorist",
		Triggers: Triggers{
			Keywords:     []string{"color", "colour", "palette", "contrast"},
			ProjectTypes: []string{"brand", "design"},
			ContentTypes: []string{"rebrand", "visual identity"},
		},
		Assessment: "Color choices here carry both emotional and functional weight and deserve deliberate selection",
		Headline:   "Palette decisions should be driven by audience psychology first and aesthetics second",
		DomainKeywords: []string{
			"color", "colour", "palette", "brand", "visual", "design", "contrast",
		},
		DomainTypes: []string{"brand", "design", "website", "app"},
		ComplexityIndicators: []string{
			"rebrand", "dark mode", "multiple platforms", "print", "accessibility",
		},
		AudienceSensitive: true,
		Baseline: []analysis.Recommendation{
			{
				Priority:       analysis.PriorityMedium,
				Category:       "Color Strategy",
				Description:    "Define a primary palette of no more than three hues plus neutrals",
				Reasoning:      "Restricted palettes read as intentional; sprawling ones read as unmanaged",
				Implementation: "Select primary, secondary, and accent hues with defined usage ratios",
				Impact:         "A recognizable, reproducible color identity across touchpoints",
			},
		},
		Rules: []ContentRule{
			{
				Topic:    "contrast accessibility",
				Keywords: []string{"accessible", "accessibility", "contrast", "wcag"},
				Insight:  "Accessibility requirements constrain the palette; verify every foreground/background pair",
				Recommendation: &analysis.Recommendation{
					Priority:       analysis.PriorityMedium,
					Category:       "Color Contrast",
					Description:    "Select palette values that clear WCAG AA contrast ratios in their intended pairings",
					Reasoning:      "Choosing compliant values up front avoids late-stage palette rework",
					Implementation: "Check each text/background pairing against the 4.5:1 ratio during palette selection",
					Impact:         "Palette survives accessibility review without redesign",
				},
			},
			{
				Topic:    "enterprise positioning",
				Keywords: []string{"enterprise", "professional", "corporate"},
				Insight:  "Enterprise audiences reward restraint; saturated consumer palettes undercut credibility",
			},
		},
		Uncertainty: []UncertaintyRule{
			{MissingField: "context", Note: "Competitor palettes are unknown; differentiation claims need market context"},
			{Keywords: []string{"international", "global"}, Note: "Cross-cultural color associations require region-specific validation"},
		},
	}
}
