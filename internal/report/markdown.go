// Package report renders orchestration results for humans and for files.
package report

import (
	"fmt"
	"strings"

	"github.com/studiominds/expertpanel/internal/analysis"
)

// Summary renders a Markdown digest of one orchestration result: active
// experts, key findings, the critical/high recommendations, and any expert
// conflicts awaiting a decision. Formatting only; every fact comes from the
// result itself.
func Summary(result *analysis.OrchestrationResult) string {
	var b strings.Builder

	b.WriteString("## Project Analysis Summary\n\n")
	fmt.Fprintf(&b, "**Active Experts:** %s\n\n", strings.Join(result.ActiveExperts, ", "))

	if len(result.Synthesis.KeyFindings) > 0 {
		b.WriteString("### Key Findings:\n")
		for _, finding := range result.Synthesis.KeyFindings {
			fmt.Fprintf(&b, "- %s\n", finding)
		}
		b.WriteString("\n")
	}

	if len(result.Synthesis.PrioritizedRecommendations) > 0 {
		b.WriteString("### Priority Recommendations:\n")
		for _, rec := range result.Synthesis.PrioritizedRecommendations {
			if rec.Priority != analysis.PriorityCritical && rec.Priority != analysis.PriorityHigh {
				continue
			}
			fmt.Fprintf(&b, "- **%s:** %s\n", rec.Category, rec.Description)
		}
		b.WriteString("\n")
	}

	if len(result.Conflicts) > 0 {
		b.WriteString("### Expert Perspectives Requiring Decision:\n")
		for _, conflict := range result.Conflicts {
			fmt.Fprintf(&b, "**%s:**\n", conflict.Topic)
			for _, p := range conflict.Perspectives {
				fmt.Fprintf(&b, "- %s: %s\n", p.ExpertName, p.Position)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// Consultation renders a Markdown digest of a single expert analysis.
func Consultation(a analysis.ExpertAnalysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## %s (%s)\n\n", a.ExpertName, a.ExpertRole)
	fmt.Fprintf(&b, "%s\n\n", a.Assessment)

	if len(a.Insights) > 0 {
		b.WriteString("### Insights:\n")
		for _, insight := range a.Insights {
			fmt.Fprintf(&b, "- %s\n", insight)
		}
		b.WriteString("\n")
	}

	if len(a.Recommendations) > 0 {
		b.WriteString("### Recommendations:\n")
		for _, rec := range a.Recommendations {
			fmt.Fprintf(&b, "- **%s** (%s): %s\n", rec.Category, rec.Priority, rec.Description)
		}
		b.WriteString("\n")
	}

	if len(a.UncertaintyAreas) > 0 {
		b.WriteString("### Uncertainty:\n")
		for _, area := range a.UncertaintyAreas {
			fmt.Fprintf(&b, "- %s\n", area)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "**Confidence:** %s\n", a.ConfidenceLevel)

	return b.String()
}
