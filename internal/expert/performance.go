package expert

import "github.com/studiominds/expertpanel/internal/analysis"

// PerformanceProfile defines the speed and efficiency analyst.
func PerformanceProfile() Profile {
	return Profile{
		Name: "Maria Santos",
		Role: "Performance Analyst",
		Triggers: Triggers{
			Keywords:     []string{"performance", "speed", "fast", "slow", "optimization", "load time"},
			ProjectTypes: []string{"website", "app"},
			ContentTypes: []string{"audit", "optimization"},
		},
		Assessment: "Speed expectations in this brief translate directly into architecture and asset constraints",
		Headline:   "Treat load time as a feature with an owner and a number, not as an aspiration",
		DomainKeywords: []string{
			"performance", "speed", "fast", "slow", "optimization", "load", "website", "app",
		},
		DomainTypes: []string{"website", "app"},
		ComplexityIndicators: []string{
			"video", "animation", "real-time", "large catalog", "multiple platforms", "third-party scripts",
		},
		Baseline: []analysis.Recommendation{
			{
				Priority:       analysis.PriorityHigh,
				Category:       "Performance",
				Description:    "Establish Core Web Vitals targets and measure them from day one of development",
				Reasoning:      "Performance regressions accumulate invisibly unless measured continuously",
				Implementation: "Wire field and lab measurement into the pipeline with budgets that fail the build",
				Impact:         "Launch performance that holds instead of degrading release by release",
			},
		},
		Rules: []ContentRule{
			{
				Topic:    "media weight",
				Keywords: []string{"video", "animation", "imagery", "photo"},
				Insight:  "Heavy media is the stated direction; it needs an explicit loading strategy to coexist with speed goals",
				Recommendation: &analysis.Recommendation{
					Priority:       analysis.PriorityHigh,
					Category:       "Performance",
					Description:    "Define per-page media budgets with lazy loading and modern formats from the start",
					Reasoning:      "Media weight is the dominant driver of load time on visually rich sites",
					Implementation: "Set byte budgets per template and serve responsive, lazily loaded assets",
					Impact:         "Rich visuals without sacrificing the speed targets",
				},
			},
			{
				Topic:    "mobile networks",
				Keywords: []string{"mobile", "3g", "emerging markets"},
				Insight:  "Mobile reach means designing for constrained networks, not just small screens",
			},
		},
		Uncertainty: []UncertaintyRule{
			{Keywords: []string{"legacy", "existing site"}, Note: "Current performance baseline is unknown; targets need a measurement pass first"},
		},
	}
}
