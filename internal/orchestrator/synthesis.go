package orchestrator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/studiominds/expertpanel/internal/analysis"
)

// taggedRecommendation carries a recommendation together with the expert that
// produced it, for category-level grouping.
type taggedRecommendation struct {
	analysis.Recommendation
	ExpertName string
}

// Synthesize merges the completed analysis set into a single cross-expert
// view: key findings, a stable priority-sorted recommendation list, consensus
// observations, and flagged decision points.
func Synthesize(analyses []analysis.ExpertAnalysis) analysis.ProjectSynthesis {
	keyFindings := extractKeyFindings(analyses)
	prioritized := prioritizeRecommendations(analyses)
	consensus := identifyConsensusAreas(analyses)
	decisions := identifyUserDecisionPoints(analyses)

	return analysis.ProjectSynthesis{
		Summary:                    generateSummary(analyses, keyFindings),
		KeyFindings:                keyFindings,
		PrioritizedRecommendations: prioritized,
		ConsensusAreas:             consensus,
		RequiresUserDecision:       decisions,
	}
}

// IdentifyConflicts groups recommendations by category and emits a conflict
// for every category where more than one recommendation contributed and the
// contributors disagree on priority or description. Identical priority and
// description across all contributors is agreement, not a conflict.
func IdentifyConflicts(analyses []analysis.ExpertAnalysis) []analysis.ExpertConflict {
	categories, grouped := groupByCategory(analyses)

	var conflicts []analysis.ExpertConflict
	for _, category := range categories {
		recs := grouped[category]
		if len(recs) < 2 {
			continue
		}
		if c := analyzeConflict(category, recs); c != nil {
			conflicts = append(conflicts, *c)
		}
	}
	return conflicts
}

func extractKeyFindings(analyses []analysis.ExpertAnalysis) []string {
	var findings []string
	for _, a := range analyses {
		if len(a.Insights) > 0 {
			findings = append(findings, a.ExpertName+": "+a.Insights[0])
		}
		for _, rec := range a.Recommendations {
			if rec.Priority == analysis.PriorityCritical {
				findings = append(findings, "Critical from "+a.ExpertName+": "+rec.Description)
				break
			}
		}
	}
	return findings
}

func prioritizeRecommendations(analyses []analysis.ExpertAnalysis) []analysis.Recommendation {
	var all []analysis.Recommendation
	for _, a := range analyses {
		all = append(all, a.Recommendations...)
	}
	// Stable sort keeps the expert-run order within each priority level.
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Priority.Rank() < all[j].Priority.Rank()
	})
	return all
}

func identifyConsensusAreas(analyses []analysis.ExpertAnalysis) []string {
	var consensus []string

	categories, grouped := groupByCategory(analyses)
	for _, category := range categories {
		recs := grouped[category]
		if len(recs) < 2 {
			continue
		}
		agreed := true
		for _, rec := range recs[1:] {
			if rec.Priority != recs[0].Priority {
				agreed = false
				break
			}
		}
		if agreed {
			consensus = append(consensus, fmt.Sprintf("All experts agree on %s priority level", category))
		}
	}

	highConfidence := 0
	for _, a := range analyses {
		if a.ConfidenceLevel == analysis.ConfidenceHigh {
			highConfidence++
		}
	}
	if len(analyses) > 0 && float64(highConfidence) >= float64(len(analyses))*0.7 {
		consensus = append(consensus, "High confidence across most expert analyses")
	}

	return consensus
}

func identifyUserDecisionPoints(analyses []analysis.ExpertAnalysis) []string {
	var decisions []string

	var lowConfidence []string
	uncertainty := false
	for _, a := range analyses {
		if a.ConfidenceLevel == analysis.ConfidenceLow {
			lowConfidence = append(lowConfidence, a.ExpertName)
		}
		if len(a.UncertaintyAreas) > 0 {
			uncertainty = true
		}
	}

	if len(lowConfidence) > 0 {
		decisions = append(decisions, "Low confidence areas requiring additional research: "+strings.Join(lowConfidence, ", "))
	}
	if uncertainty {
		decisions = append(decisions, "Expert uncertainty areas require stakeholder input or additional research")
	}

	return decisions
}

func generateSummary(analyses []analysis.ExpertAnalysis, keyFindings []string) string {
	expertCount := len(analyses)
	highConfidence := 0
	criticalRecs := 0
	for _, a := range analyses {
		if a.ConfidenceLevel == analysis.ConfidenceHigh {
			highConfidence++
		}
		for _, rec := range a.Recommendations {
			if rec.Priority == analysis.PriorityCritical {
				criticalRecs++
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Analysis complete with %d expert%s. ", expertCount, plural(expertCount))

	if highConfidence == expertCount && expertCount > 0 {
		b.WriteString("All experts expressed high confidence in their assessments. ")
	} else if highConfidence > 0 {
		fmt.Fprintf(&b, "%d expert%s expressed high confidence. ", highConfidence, plural(highConfidence))
	}

	if criticalRecs > 0 {
		fmt.Fprintf(&b, "%d critical recommendation%s identified. ", criticalRecs, plural(criticalRecs))
	}

	if len(keyFindings) > 0 {
		top := keyFindings
		if len(top) > 2 {
			top = top[:2]
		}
		fmt.Fprintf(&b, "Primary focus areas: %s.", strings.Join(top, "; "))
	}

	return b.String()
}

// groupByCategory returns categories in first-seen order alongside the
// grouped recommendations, so downstream output is deterministic.
func groupByCategory(analyses []analysis.ExpertAnalysis) ([]string, map[string][]taggedRecommendation) {
	var categories []string
	grouped := make(map[string][]taggedRecommendation)
	for _, a := range analyses {
		for _, rec := range a.Recommendations {
			if _, seen := grouped[rec.Category]; !seen {
				categories = append(categories, rec.Category)
			}
			grouped[rec.Category] = append(grouped[rec.Category], taggedRecommendation{
				Recommendation: rec,
				ExpertName:     a.ExpertName,
			})
		}
	}
	return categories, grouped
}

func analyzeConflict(category string, recs []taggedRecommendation) *analysis.ExpertConflict {
	samePriority := true
	sameDescription := true
	resolutionRequired := false
	for _, rec := range recs {
		if rec.Priority != recs[0].Priority {
			samePriority = false
		}
		if rec.Description != recs[0].Description {
			sameDescription = false
		}
		if rec.Priority == analysis.PriorityCritical || rec.Priority == analysis.PriorityHigh {
			resolutionRequired = true
		}
	}
	if samePriority && sameDescription {
		return nil
	}

	// Experts contributing more than one recommendation to a category show up
	// once per recommendation; callers rely on this literal behavior.
	names := make([]string, 0, len(recs))
	perspectives := make([]analysis.Perspective, 0, len(recs))
	for _, rec := range recs {
		names = append(names, rec.ExpertName)
		perspectives = append(perspectives, analysis.Perspective{
			ExpertName: rec.ExpertName,
			Position:   rec.Description,
			Reasoning:  rec.Reasoning,
		})
	}

	return &analysis.ExpertConflict{
		Topic:              category,
		ConflictingExperts: names,
		Perspectives:       perspectives,
		ResolutionRequired: resolutionRequired,
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
