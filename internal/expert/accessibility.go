package expert

import "github.com/studiominds/expertpanel/internal/analysis"

// AccessibilityProfile defines the inclusive design and compliance expert.
func AccessibilityProfile() Profile {
	return Profile{
		Name: "Dr. Alex Johnson",
		Role: "Accessibility Expert",
		Triggers: Triggers{
			Keywords:     []string{"accessible", "accessibility", "wcag", "inclusive", "screen reader", "a11y"},
			ProjectTypes: []string{"website", "app"},
			ContentTypes: []string{"audit", "remediation"},
		},
		Assessment: "Accessibility named in the brief is a hard requirement, not a polish item; treat it as acceptance criteria",
		Headline:   "Build accessibility in from the first wireframe; retrofitting it costs multiples and misses cases",
		DomainKeywords: []string{
			"accessible", "accessibility", "wcag", "inclusive", "screen reader", "keyboard", "aria",
		},
		DomainTypes: []string{"website", "app", "design"},
		ComplexityIndicators: []string{
			"forms", "video", "real-time", "data visualization", "legacy", "third-party widgets",
		},
		Baseline: []analysis.Recommendation{
			{
				Priority:       analysis.PriorityCritical,
				Category:       "Accessibility Compliance",
				Description:    "Adopt WCAG 2.1 AA as the acceptance bar and audit against it before launch",
				Reasoning:      "Accessibility gaps exclude users and expose the organization to legal risk",
				Implementation: "Add automated checks to the pipeline and a manual audit of keyboard and screen-reader flows",
				Impact:         "A product usable by the full audience and defensible under accessibility law",
			},
		},
		Rules: []ContentRule{
			{
				Topic:    "contrast requirements",
				Keywords: []string{"color", "colour", "contrast", "palette"},
				Insight:  "Color decisions elsewhere in this project must clear contrast requirements; treat them as blocking",
				Recommendation: &analysis.Recommendation{
					Priority:       analysis.PriorityHigh,
					Category:       "Color Contrast",
					Description:    "Require a verified 4.5:1 contrast ratio for body text before any palette is approved",
					Reasoning:      "Contrast failures are the most common audit finding and force palette rework late",
					Implementation: "Gate palette sign-off on a documented contrast check of every text pairing",
					Impact:         "No contrast findings at audit and no late palette changes",
				},
			},
			{
				Topic:    "assistive flows",
				Keywords: []string{"screen reader", "keyboard", "assistive"},
				Insight:  "Assistive-technology users follow different paths; test the real flows, not just the markup",
			},
		},
		Uncertainty: []UncertaintyRule{
			{MissingField: "requirements", Note: "No compliance target was stated; WCAG 2.1 AA assumed as the default bar"},
		},
	}
}
