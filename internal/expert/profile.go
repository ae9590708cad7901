package expert

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/studiominds/expertpanel/internal/analysis"
)

// ContentRule maps a matched topic in the submission content to the canned
// insight and optional recommendation the expert contributes for it.
type ContentRule struct {
	// Topic labels the rule for the expert's focus-area summary.
	Topic string

	// Keywords activate the rule when any appears in the content.
	Keywords []string

	Insight        string
	Recommendation *analysis.Recommendation
}

// UncertaintyRule flags missing information or out-of-domain concerns.
// Exactly one of MissingField or Keywords should be set.
type UncertaintyRule struct {
	// MissingField names a submission field ("requirements", "context",
	// "targetAudience") whose absence triggers the note.
	MissingField string

	// Keywords trigger the note when any appears in the content.
	Keywords []string

	Note string
}

// Profile is the declarative definition of a specialist expert: its identity,
// activation triggers, domain boundaries, complexity indicators, and content
// rules. Profiles are data; the shared engine in specialist interprets them.
type Profile struct {
	Name string
	Role string

	Triggers Triggers

	// Condition is an optional expert-specific activation predicate applied
	// on top of the trigger match. Nil means always true.
	Condition func(sub analysis.ProjectSubmission) bool

	// Assessment is the expert's one-sentence summary of its analysis.
	Assessment string

	// Headline is the first (most important) insight of every analysis.
	Headline string

	// DomainKeywords and DomainTypes bound the expert's core domain: a
	// submission mentioning none of the keywords and typed outside the
	// listed types is judged out-of-domain, capping confidence at low.
	// An empty keyword list means the expert never declares out-of-domain.
	DomainKeywords []string
	DomainTypes    []string

	// ComplexityIndicators are counted against the content to self-assess
	// analysis complexity on the shared 2/4 thresholds.
	ComplexityIndicators []string

	// AudienceSensitive adds one complexity indicator when the submission
	// does not specify a target audience.
	AudienceSensitive bool

	// Baseline recommendations are contributed on every activation.
	Baseline []analysis.Recommendation

	Rules       []ContentRule
	Uncertainty []UncertaintyRule
}

// specialist executes a Profile. All specialist experts except the context
// specialist are instances of this one engine.
type specialist struct {
	profile Profile
}

// New creates an Expert from a declarative profile.
func New(p Profile) Expert {
	return &specialist{profile: p}
}

func (s *specialist) Identity() Identity {
	return Identity{
		Name:     s.profile.Name,
		Role:     s.profile.Role,
		Triggers: s.profile.Triggers,
	}
}

func (s *specialist) ShouldActivate(sub analysis.ProjectSubmission) bool {
	if !s.profile.Triggers.Match(sub) {
		return false
	}
	if s.profile.Condition != nil && !s.profile.Condition(sub) {
		return false
	}
	return true
}

func (s *specialist) Analyze(ctx context.Context, sub analysis.ProjectSubmission, prior []analysis.ExpertAnalysis) (analysis.ExpertAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return analysis.ExpertAnalysis{}, err
	}
	if strings.TrimSpace(sub.Content) == "" {
		return analysis.ExpertAnalysis{}, fmt.Errorf("%s: submission content is empty", s.profile.Name)
	}

	content := strings.ToLower(sub.Content)

	insights := []string{s.profile.Headline}
	recs := append([]analysis.Recommendation(nil), s.profile.Baseline...)

	for _, rule := range s.profile.Rules {
		if !containsAny(content, rule.Keywords) {
			continue
		}
		if rule.Insight != "" {
			insights = append(insights, rule.Insight)
		}
		if rule.Recommendation != nil {
			recs = append(recs, *rule.Recommendation)
		}
	}

	var uncertainty []string
	for _, u := range s.profile.Uncertainty {
		if u.MissingField != "" && !fieldMissing(sub, u.MissingField) {
			continue
		}
		if len(u.Keywords) > 0 && !containsAny(content, u.Keywords) {
			continue
		}
		uncertainty = append(uncertainty, u.Note)
	}

	matched := countMatches(content, s.profile.ComplexityIndicators)
	if s.profile.AudienceSensitive && sub.TargetAudience == "" {
		matched++
	}
	complexity := complexityFor(matched)
	confidence := deriveConfidence(sub, complexity, s.outsideDomain(sub))

	return analysis.ExpertAnalysis{
		ExpertName:         s.profile.Name,
		ExpertRole:         s.profile.Role,
		Assessment:         s.profile.Assessment,
		Insights:           insights,
		Recommendations:    recs,
		CollaborativeNotes: collaborativeNotes(s.profile.Name, prior),
		ConfidenceLevel:    confidence,
		UncertaintyAreas:   uncertainty,
		Timestamp:          time.Now(),
	}, nil
}

// outsideDomain judges whether the submission falls outside the expert's
// core domain: none of the domain keywords appear and the project type is
// not one the expert claims.
func (s *specialist) outsideDomain(sub analysis.ProjectSubmission) bool {
	if len(s.profile.DomainKeywords) == 0 {
		return false
	}
	content := strings.ToLower(sub.Content)
	if containsAny(content, s.profile.DomainKeywords) {
		return false
	}
	for _, t := range s.profile.DomainTypes {
		if strings.EqualFold(string(sub.Type), t) {
			return false
		}
	}
	return true
}

func fieldMissing(sub analysis.ProjectSubmission, field string) bool {
	switch field {
	case "requirements":
		return sub.Requirements == ""
	case "context":
		return sub.Context == ""
	case "targetAudience":
		return sub.TargetAudience == ""
	}
	return false
}
