package expert

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/studiominds/expertpanel/internal/analysis"
)

// Compile-time interface checks.
var (
	_ Expert       = (*ContextSpecialist)(nil)
	_ TeamSelector = (*ContextSpecialist)(nil)
)

// shortBriefThreshold is the content length below which a brief is flagged
// as lacking detail.
const shortBriefThreshold = 100

// scopeComplexityIndicators are the content signals counted when scoring a
// project's coordination complexity.
var scopeComplexityIndicators = []string{
	"integration",
	"multiple platforms",
	"database",
	"api",
	"responsive",
	"accessibility",
}

// teamRule adds expert roles to the default roster when its predicate holds.
type teamRule struct {
	roles    []string
	keywords []string // any-match against content; empty means types-only
	types    []string // any-match against project type
}

// teamRules is the fixed, ordered sequence of roster predicates. Order is
// meaningful: the roster keeps first occurrences.
var teamRules = []teamRule{
	{roles: []string{"Design Theory Specialist"}, types: []string{"website", "app", "design"}},
	{roles: []string{"Color Theorist"}, keywords: []string{"color"}, types: []string{"brand", "design"}},
	{roles: []string{"Copywriting Strategist"}, keywords: []string{"copy", "content", "messaging"}},
	{roles: []string{"UX/Usability Specialist", "Technical Implementation Advisor"}, types: []string{"website", "app"}},
	{roles: []string{"Brand Strategy Analyst"}, keywords: []string{"brand"}, types: []string{"brand"}},
	{roles: []string{"Accessibility Expert"}, keywords: []string{"accessibility", "accessible", "inclusive"}},
	{roles: []string{"Performance Analyst"}, keywords: []string{"performance", "speed", "fast"}},
	{roles: []string{"Cultural Context Expert"}, keywords: []string{"cultural", "international"}},
	{roles: []string{"Market Research Analyst"}, keywords: []string{"audience", "market"}},
	{roles: []string{"Art History Analyst"}, keywords: []string{"historical", "heritage"}},
}

// ContextSpecialist is the mandatory always-active expert. It runs first in
// every orchestration, assesses project scope and risk, and doubles as the
// TeamSelector that derives the default roster.
type ContextSpecialist struct {
	identity Identity
}

// NewContextSpecialist creates the panel's context specialist.
func NewContextSpecialist() *ContextSpecialist {
	return &ContextSpecialist{
		identity: Identity{
			Name:     "Alex Chen",
			Role:     "Project Context Specialist",
			Triggers: Triggers{AlwaysActive: true},
		},
	}
}

func (c *ContextSpecialist) Identity() Identity {
	return c.identity
}

// ShouldActivate always returns true; the context specialist is declared
// always-active.
func (c *ContextSpecialist) ShouldActivate(analysis.ProjectSubmission) bool {
	return true
}

func (c *ContextSpecialist) Analyze(ctx context.Context, sub analysis.ProjectSubmission, prior []analysis.ExpertAnalysis) (analysis.ExpertAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return analysis.ExpertAnalysis{}, err
	}
	if strings.TrimSpace(sub.Content) == "" {
		return analysis.ExpertAnalysis{}, fmt.Errorf("%s: submission content is empty", c.identity.Name)
	}

	complexity := c.assessComplexity(sub)
	team := c.DetermineTeam(sub)
	timeline := assessTimeline(sub)
	risks := identifyRisks(sub)

	insights := []string{
		fmt.Sprintf("Project Type: %s with %s complexity", sub.Type, complexity),
		"Recommended Expert Team: " + strings.Join(team, ", "),
		"Timeline Assessment: " + timeline,
	}
	for _, risk := range risks {
		insights = append(insights, "Risk Factor: "+risk)
	}

	recs := []analysis.Recommendation{
		{
			Priority:       analysis.PriorityHigh,
			Category:       "Expert Team Activation",
			Description:    "Activate the following experts for optimal analysis: " + strings.Join(team, ", "),
			Reasoning:      "Based on project type, scope, and requirements analysis",
			Implementation: "Use slash commands to manually activate specific experts or allow auto-activation",
			Impact:         "Ensures comprehensive analysis from all relevant domain experts",
		},
		{
			Priority:       analysis.PriorityMedium,
			Category:       "Scope Clarification",
			Description:    "Define clear success metrics and deliverable specifications",
			Reasoning:      "Current brief contains ambiguous elements that could lead to scope creep",
			Implementation: "Schedule stakeholder alignment session to clarify expectations",
			Impact:         "Reduces project risk and improves delivery quality",
		},
	}

	if sub.Context == "" || sub.Requirements == "" || sub.TargetAudience == "" {
		recs = append(recs, analysis.Recommendation{
			Priority:       analysis.PriorityHigh,
			Category:       "Information Gathering",
			Description:    "Collect additional project context and constraints",
			Reasoning:      "Insufficient information to provide confident timeline and resource estimates",
			Implementation: "Conduct detailed requirements gathering session",
			Impact:         "Enables accurate project planning and expert analysis",
		})
	}

	return analysis.ExpertAnalysis{
		ExpertName:         c.identity.Name,
		ExpertRole:         c.identity.Role,
		Assessment:         fmt.Sprintf("Project requires %s coordination with %d specialist experts", complexity, len(team)),
		Insights:           insights,
		Recommendations:    recs,
		CollaborativeNotes: collaborativeNotes(c.identity.Name, prior),
		ConfidenceLevel:    deriveConfidence(sub, analysis.ConfidenceMedium, false),
		UncertaintyAreas:   identifyUncertainty(sub),
		Timestamp:          time.Now(),
	}, nil
}

// DetermineTeam derives the default expert roster for a submission by
// applying the fixed team rules in order. The result is de-duplicated with
// first occurrences winning; it is deterministic and pure.
func (c *ContextSpecialist) DetermineTeam(sub analysis.ProjectSubmission) []string {
	content := strings.ToLower(sub.Content)
	projType := strings.ToLower(string(sub.Type))

	var team []string
	seen := make(map[string]bool)

	for _, rule := range teamRules {
		if !teamRuleMatches(rule, content, projType) {
			continue
		}
		for _, role := range rule.roles {
			if seen[role] {
				continue
			}
			seen[role] = true
			team = append(team, role)
		}
	}

	return team
}

func teamRuleMatches(rule teamRule, content, projType string) bool {
	if containsAny(content, rule.keywords) {
		return true
	}
	for _, t := range rule.types {
		if strings.Contains(projType, t) {
			return true
		}
	}
	return false
}

// assessComplexity scores the submission against the scope indicators, with
// sparse requirements counting as an additional indicator.
func (c *ContextSpecialist) assessComplexity(sub analysis.ProjectSubmission) analysis.Confidence {
	matched := countMatches(strings.ToLower(sub.Content), scopeComplexityIndicators)
	if len(sub.Requirements) < 50 {
		matched++
	}
	return complexityFor(matched)
}

func assessTimeline(sub analysis.ProjectSubmission) string {
	if !strings.Contains(strings.ToLower(sub.Requirements), "timeline") {
		return "Timeline not specified - recommend defining realistic milestones"
	}
	return "Timeline assessment requires detailed scope clarification"
}

// identifyRisks flags structural gaps in the submission. These are
// informational only and do not gate expert activation.
func identifyRisks(sub analysis.ProjectSubmission) []string {
	var risks []string
	if sub.Context == "" {
		risks = append(risks, "Insufficient project context provided")
	}
	if sub.Requirements == "" {
		risks = append(risks, "Requirements not clearly defined")
	}
	if sub.TargetAudience == "" {
		risks = append(risks, "Target audience not specified")
	}
	if len(sub.Content) < shortBriefThreshold {
		risks = append(risks, "Brief lacks sufficient detail for accurate assessment")
	}
	return risks
}

func identifyUncertainty(sub analysis.ProjectSubmission) []string {
	var areas []string
	if sub.Requirements == "" {
		areas = append(areas, "Technical complexity assessment requires detailed requirements")
	}
	if sub.Context == "" {
		areas = append(areas, "Resource allocation uncertain without business context")
	}
	content := strings.ToLower(sub.Content)
	if strings.Contains(content, "integration") || strings.Contains(content, "api") {
		areas = append(areas, "Technical implementation complexity needs specialist review")
	}
	return areas
}
