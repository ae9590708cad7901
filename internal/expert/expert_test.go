package expert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiominds/expertpanel/internal/analysis"
)

func TestTriggers_Match(t *testing.T) {
	triggers := Triggers{
		Keywords:     []string{"color", "palette"},
		ProjectTypes: []string{"brand", "design"},
		ContentTypes: []string{"rebrand"},
	}

	tests := []struct {
		name string
		sub  analysis.ProjectSubmission
		want bool
	}{
		{
			name: "keyword in content",
			sub:  analysis.ProjectSubmission{Type: analysis.ProjectWebsite, Content: "refresh the COLOR scheme"},
			want: true,
		},
		{
			name: "project type match",
			sub:  analysis.ProjectSubmission{Type: analysis.ProjectBrand, Content: "something unrelated"},
			want: true,
		},
		{
			name: "content type match",
			sub:  analysis.ProjectSubmission{Type: analysis.ProjectWebsite, Content: "full rebrand of the site"},
			want: true,
		},
		{
			name: "no match",
			sub:  analysis.ProjectSubmission{Type: analysis.ProjectCopy, Content: "write a press release"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, triggers.Match(tt.sub))
		})
	}
}

func TestTriggers_Match_AlwaysActive(t *testing.T) {
	triggers := Triggers{AlwaysActive: true}
	assert.True(t, triggers.Match(analysis.ProjectSubmission{}))
}

func TestTriggers_Match_EmptyContentTypesAutoPass(t *testing.T) {
	// With no declared content types, the content-type leg of the predicate
	// passes for any submission.
	triggers := Triggers{Keywords: []string{"color"}, ProjectTypes: []string{"brand"}}
	assert.True(t, triggers.Match(analysis.ProjectSubmission{Type: analysis.ProjectCopy, Content: "unrelated"}))
}

func TestComplexityFor_Thresholds(t *testing.T) {
	assert.Equal(t, analysis.ConfidenceLow, complexityFor(0))
	assert.Equal(t, analysis.ConfidenceLow, complexityFor(1))
	assert.Equal(t, analysis.ConfidenceMedium, complexityFor(2))
	assert.Equal(t, analysis.ConfidenceMedium, complexityFor(3))
	assert.Equal(t, analysis.ConfidenceHigh, complexityFor(4))
	assert.Equal(t, analysis.ConfidenceHigh, complexityFor(7))
}

func TestDeriveConfidence_LowOnMissingInfo(t *testing.T) {
	// Confidence floors at low whenever context or requirements are absent,
	// regardless of complexity or domain fit.
	sub := analysis.ProjectSubmission{Type: analysis.ProjectWebsite, Content: "redesign"}

	assert.Equal(t, analysis.ConfidenceLow, deriveConfidence(sub, analysis.ConfidenceLow, false))
	assert.Equal(t, analysis.ConfidenceLow, deriveConfidence(sub, analysis.ConfidenceHigh, false))

	sub.Context = "startup"
	assert.Equal(t, analysis.ConfidenceLow, deriveConfidence(sub, analysis.ConfidenceLow, false),
		"requirements still missing")
}

func TestDeriveConfidence_LowWhenOutsideDomain(t *testing.T) {
	sub := analysis.ProjectSubmission{
		Type:         analysis.ProjectWebsite,
		Content:      "redesign",
		Context:      "startup",
		Requirements: "modern look",
	}
	assert.Equal(t, analysis.ConfidenceLow, deriveConfidence(sub, analysis.ConfidenceLow, true))
}

func TestDeriveConfidence_MediumOnHighComplexity(t *testing.T) {
	sub := analysis.ProjectSubmission{
		Type:         analysis.ProjectWebsite,
		Content:      "redesign",
		Context:      "startup",
		Requirements: "modern look",
	}
	assert.Equal(t, analysis.ConfidenceMedium, deriveConfidence(sub, analysis.ConfidenceHigh, false))
	assert.Equal(t, analysis.ConfidenceHigh, deriveConfidence(sub, analysis.ConfidenceMedium, false))
	assert.Equal(t, analysis.ConfidenceHigh, deriveConfidence(sub, analysis.ConfidenceLow, false))
}

func TestCollaborativeNotes(t *testing.T) {
	prior := []analysis.ExpertAnalysis{
		{ExpertName: "Alex Chen", Assessment: "needs medium coordination"},
		{ExpertName: "Dr. Maya Rodriguez", Assessment: "hierarchy first"},
	}

	notes := collaborativeNotes("Dr. Zara Okafor", prior)
	require.Len(t, notes, 2)
	assert.Equal(t, "Building on Alex Chen's insights regarding needs medium coordination", notes[0])
	assert.Equal(t, "Building on Dr. Maya Rodriguez's insights regarding hierarchy first", notes[1])
}

func TestCollaborativeNotes_SkipsSelf(t *testing.T) {
	prior := []analysis.ExpertAnalysis{
		{ExpertName: "Dr. Zara Okafor", Assessment: "own earlier run"},
		{ExpertName: "Alex Chen", Assessment: "scope set"},
	}

	notes := collaborativeNotes("Dr. Zara Okafor", prior)
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0], "Alex Chen")
}
