// Package expert defines the expert capability contract, the declarative
// specialist profiles that implement it, and the registry that resolves
// experts by display name or role name.
package expert

import (
	"context"
	"strings"

	"github.com/studiominds/expertpanel/internal/analysis"
)

// Triggers is the declarative activation predicate for an expert. An expert
// with AlwaysActive set activates unconditionally; exactly one expert in the
// panel (the context specialist) declares it.
type Triggers struct {
	Keywords     []string
	ProjectTypes []string
	ContentTypes []string
	AlwaysActive bool
}

// Match applies the shared activation rule: keyword match, project-type
// match, or content-type match (content types auto-pass when none are
// declared). Expert-specific custom conditions are applied by the expert
// itself on top of this.
func (t Triggers) Match(sub analysis.ProjectSubmission) bool {
	if t.AlwaysActive {
		return true
	}

	content := strings.ToLower(sub.Content)
	projType := strings.ToLower(string(sub.Type))

	keyword := containsAny(content, t.Keywords)

	projectType := false
	for _, pt := range t.ProjectTypes {
		if strings.Contains(projType, strings.ToLower(pt)) {
			projectType = true
			break
		}
	}

	contentType := len(t.ContentTypes) == 0 || containsAny(content, t.ContentTypes)

	return keyword || projectType || contentType
}

// Identity is an expert's static self-description.
type Identity struct {
	Name     string
	Role     string
	Triggers Triggers
}

// Expert is the capability contract every panel member implements.
// Analyze must treat both the submission and the prior analyses as
// read-only; prior analyses are there to build collaborative notes.
type Expert interface {
	Identity() Identity
	ShouldActivate(sub analysis.ProjectSubmission) bool
	Analyze(ctx context.Context, sub analysis.ProjectSubmission, prior []analysis.ExpertAnalysis) (analysis.ExpertAnalysis, error)
}

// TeamSelector is the auxiliary role of the mandatory context expert:
// deriving the default roster of expert role names for a submission.
type TeamSelector interface {
	DetermineTeam(sub analysis.ProjectSubmission) []string
}

// Complexity thresholds shared by every expert: an analysis counting at
// least four matched indicators is high complexity, at least two is medium.
const (
	complexityHighThreshold   = 4
	complexityMediumThreshold = 2
)

// complexityFor maps a matched-indicator count onto the closed ordinal scale.
func complexityFor(matched int) analysis.Confidence {
	switch {
	case matched >= complexityHighThreshold:
		return analysis.ConfidenceHigh
	case matched >= complexityMediumThreshold:
		return analysis.ConfidenceMedium
	default:
		return analysis.ConfidenceLow
	}
}

// deriveConfidence is the shared confidence algorithm. Confidence is low when
// the submission lacks context or requirements, or when the expert judges the
// submission outside its core domain; medium when the self-assessed analysis
// complexity is high; high otherwise.
func deriveConfidence(sub analysis.ProjectSubmission, complexity analysis.Confidence, outsideDomain bool) analysis.Confidence {
	insufficient := sub.Context == "" || sub.Requirements == ""
	if insufficient || outsideDomain {
		return analysis.ConfidenceLow
	}
	if complexity == analysis.ConfidenceHigh {
		return analysis.ConfidenceMedium
	}
	return analysis.ConfidenceHigh
}

// collaborativeNotes builds one note per prior analysis from a different
// expert, referencing that expert's assessment.
func collaborativeNotes(self string, prior []analysis.ExpertAnalysis) []string {
	notes := make([]string, 0, len(prior))
	for _, a := range prior {
		if a.ExpertName == self {
			continue
		}
		notes = append(notes, "Building on "+a.ExpertName+"'s insights regarding "+a.Assessment)
	}
	return notes
}

// containsAny reports whether content (already lowercased) contains any of
// the given terms, compared case-insensitively.
func containsAny(content string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(content, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

// countMatches returns how many of the given terms appear in content
// (already lowercased).
func countMatches(content string, terms []string) int {
	n := 0
	for _, term := range terms {
		if strings.Contains(content, strings.ToLower(term)) {
			n++
		}
	}
	return n
}
