package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiominds/expertpanel/internal/analysis"
)

func analysisWith(name string, confidence analysis.Confidence, recs ...analysis.Recommendation) analysis.ExpertAnalysis {
	return analysis.ExpertAnalysis{
		ExpertName:      name,
		Insights:        []string{name + " headline"},
		Recommendations: recs,
		ConfidenceLevel: confidence,
	}
}

func rec(priority analysis.Priority, category, description string) analysis.Recommendation {
	return analysis.Recommendation{
		Priority:    priority,
		Category:    category,
		Description: description,
		Reasoning:   description + " reasoning",
	}
}

func TestSynthesize_PrioritizedRecommendationsStableSort(t *testing.T) {
	analyses := []analysis.ExpertAnalysis{
		analysisWith("A", analysis.ConfidenceHigh,
			rec(analysis.PriorityMedium, "M1", "first medium"),
			rec(analysis.PriorityLow, "L1", "a low")),
		analysisWith("B", analysis.ConfidenceHigh,
			rec(analysis.PriorityCritical, "C1", "a critical"),
			rec(analysis.PriorityMedium, "M2", "second medium")),
		analysisWith("C", analysis.ConfidenceHigh,
			rec(analysis.PriorityHigh, "H1", "a high")),
	}

	s := Synthesize(analyses)
	recs := s.PrioritizedRecommendations
	require.Len(t, recs, 5)

	for i := 0; i < len(recs)-1; i++ {
		assert.LessOrEqual(t, recs[i].Priority.Rank(), recs[i+1].Priority.Rank())
	}

	// Equal priorities keep their original relative order.
	assert.Equal(t, "first medium", recs[2].Description)
	assert.Equal(t, "second medium", recs[3].Description)
}

func TestSynthesize_KeyFindings(t *testing.T) {
	analyses := []analysis.ExpertAnalysis{
		analysisWith("A", analysis.ConfidenceHigh,
			rec(analysis.PriorityCritical, "X", "stop everything")),
		analysisWith("B", analysis.ConfidenceHigh),
	}

	s := Synthesize(analyses)
	assert.Contains(t, s.KeyFindings, "A: A headline")
	assert.Contains(t, s.KeyFindings, "Critical from A: stop everything")
	assert.Contains(t, s.KeyFindings, "B: B headline")
}

func TestSynthesize_ConsensusOnSharedPriority(t *testing.T) {
	analyses := []analysis.ExpertAnalysis{
		analysisWith("A", analysis.ConfidenceMedium, rec(analysis.PriorityHigh, "Messaging", "one")),
		analysisWith("B", analysis.ConfidenceMedium, rec(analysis.PriorityHigh, "Messaging", "two")),
	}

	s := Synthesize(analyses)
	assert.Contains(t, s.ConsensusAreas, "All experts agree on Messaging priority level")
	assert.NotContains(t, s.ConsensusAreas, "High confidence across most expert analyses")
}

func TestSynthesize_HighConfidenceNote(t *testing.T) {
	analyses := []analysis.ExpertAnalysis{
		analysisWith("A", analysis.ConfidenceHigh),
		analysisWith("B", analysis.ConfidenceHigh),
		analysisWith("C", analysis.ConfidenceLow),
	}

	// 2 of 3 is below the 70% bar.
	s := Synthesize(analyses)
	assert.NotContains(t, s.ConsensusAreas, "High confidence across most expert analyses")

	analyses = append(analyses, analysisWith("D", analysis.ConfidenceHigh), analysisWith("E", analysis.ConfidenceHigh))
	s = Synthesize(analyses)
	assert.Contains(t, s.ConsensusAreas, "High confidence across most expert analyses")
}

func TestSynthesize_UserDecisionPoints(t *testing.T) {
	analyses := []analysis.ExpertAnalysis{
		analysisWith("A", analysis.ConfidenceLow),
		analysisWith("B", analysis.ConfidenceHigh),
	}
	analyses[1].UncertaintyAreas = []string{"unknown budget"}

	s := Synthesize(analyses)
	assert.Contains(t, s.RequiresUserDecision, "Low confidence areas requiring additional research: A")
	assert.Contains(t, s.RequiresUserDecision, "Expert uncertainty areas require stakeholder input or additional research")
}

func TestSynthesize_Summary(t *testing.T) {
	analyses := []analysis.ExpertAnalysis{
		analysisWith("A", analysis.ConfidenceHigh, rec(analysis.PriorityCritical, "X", "stop")),
		analysisWith("B", analysis.ConfidenceHigh),
	}

	s := Synthesize(analyses)
	assert.Contains(t, s.Summary, "Analysis complete with 2 experts.")
	assert.Contains(t, s.Summary, "All experts expressed high confidence in their assessments.")
	assert.Contains(t, s.Summary, "1 critical recommendation identified.")
	assert.Contains(t, s.Summary, "Primary focus areas:")
}

func TestIdentifyConflicts_AgreementIsNotConflict(t *testing.T) {
	analyses := []analysis.ExpertAnalysis{
		analysisWith("A", analysis.ConfidenceHigh, rec(analysis.PriorityHigh, "X", "same text")),
		analysisWith("B", analysis.ConfidenceHigh, rec(analysis.PriorityHigh, "X", "same text")),
	}

	assert.Empty(t, IdentifyConflicts(analyses))
}

func TestIdentifyConflicts_PriorityDisagreement(t *testing.T) {
	analyses := []analysis.ExpertAnalysis{
		analysisWith("A", analysis.ConfidenceHigh, rec(analysis.PriorityCritical, "Performance", "set budgets")),
		analysisWith("B", analysis.ConfidenceHigh, rec(analysis.PriorityMedium, "Performance", "set budgets")),
	}

	conflicts := IdentifyConflicts(analyses)
	require.Len(t, conflicts, 1)

	c := conflicts[0]
	assert.Equal(t, "Performance", c.Topic)
	assert.Equal(t, []string{"A", "B"}, c.ConflictingExperts)
	require.Len(t, c.Perspectives, 2)
	assert.True(t, c.ResolutionRequired)
}

func TestIdentifyConflicts_DescriptionDisagreement(t *testing.T) {
	analyses := []analysis.ExpertAnalysis{
		analysisWith("A", analysis.ConfidenceHigh, rec(analysis.PriorityLow, "X", "do this")),
		analysisWith("B", analysis.ConfidenceHigh, rec(analysis.PriorityLow, "X", "do that")),
	}

	conflicts := IdentifyConflicts(analyses)
	require.Len(t, conflicts, 1)
	assert.False(t, conflicts[0].ResolutionRequired, "no critical or high contributor")
}

func TestIdentifyConflicts_SingleContributorIgnored(t *testing.T) {
	analyses := []analysis.ExpertAnalysis{
		analysisWith("A", analysis.ConfidenceHigh, rec(analysis.PriorityCritical, "X", "alone")),
	}
	assert.Empty(t, IdentifyConflicts(analyses))
}

func TestIdentifyConflicts_DuplicateExpertNames(t *testing.T) {
	// One expert contributing twice to a category appears once per
	// recommendation in the conflicting experts list. Documented quirk.
	analyses := []analysis.ExpertAnalysis{
		analysisWith("A", analysis.ConfidenceHigh,
			rec(analysis.PriorityHigh, "X", "do this"),
			rec(analysis.PriorityMedium, "X", "do that")),
	}

	conflicts := IdentifyConflicts(analyses)
	require.Len(t, conflicts, 1)
	assert.Equal(t, []string{"A", "A"}, conflicts[0].ConflictingExperts)
}

func TestIdentifyConflicts_FirstSeenCategoryOrder(t *testing.T) {
	analyses := []analysis.ExpertAnalysis{
		analysisWith("A", analysis.ConfidenceHigh,
			rec(analysis.PriorityHigh, "Zulu", "one"),
			rec(analysis.PriorityHigh, "Alpha", "one")),
		analysisWith("B", analysis.ConfidenceHigh,
			rec(analysis.PriorityMedium, "Zulu", "two"),
			rec(analysis.PriorityMedium, "Alpha", "two")),
	}

	conflicts := IdentifyConflicts(analyses)
	require.Len(t, conflicts, 2)
	assert.Equal(t, "Zulu", conflicts[0].Topic)
	assert.Equal(t, "Alpha", conflicts[1].Topic)
}
