package expert

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiominds/expertpanel/internal/analysis"
)

func TestContextSpecialist_DetermineTeam_WebsiteWithAccessibility(t *testing.T) {
	c := NewContextSpecialist()
	sub := analysis.ProjectSubmission{
		Type:         analysis.ProjectWebsite,
		Content:      "We need a modern, accessible, fast website for enterprise customers",
		Context:      "Tech startup",
		Requirements: "Mobile-first, WCAG compliant",
	}

	team := c.DetermineTeam(sub)

	assert.Contains(t, team, "Design Theory Specialist")
	assert.Contains(t, team, "UX/Usability Specialist")
	assert.Contains(t, team, "Technical Implementation Advisor")
	assert.Contains(t, team, "Accessibility Expert")
	assert.Contains(t, team, "Performance Analyst")
}

func TestContextSpecialist_DetermineTeam_NoDuplicates(t *testing.T) {
	c := NewContextSpecialist()
	// "brand" matches both the keyword and the project type of the brand
	// rule; the roster must still list the analyst once.
	sub := analysis.ProjectSubmission{
		Type:    analysis.ProjectBrand,
		Content: "brand refresh with new brand guidelines",
	}

	team := c.DetermineTeam(sub)

	seen := make(map[string]int)
	for _, role := range team {
		seen[role]++
	}
	for role, n := range seen {
		assert.Equal(t, 1, n, "role %s appears %d times", role, n)
	}
}

func TestContextSpecialist_DetermineTeam_Deterministic(t *testing.T) {
	c := NewContextSpecialist()
	sub := analysis.ProjectSubmission{
		Type:    analysis.ProjectApp,
		Content: "mobile app with color customization, performance matters, international audience",
	}

	first := c.DetermineTeam(sub)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, c.DetermineTeam(sub))
	}
}

func TestContextSpecialist_Analyze(t *testing.T) {
	c := NewContextSpecialist()
	sub := analysis.ProjectSubmission{
		Type:    analysis.ProjectWebsite,
		Content: "We need to redesign our company website with api integration and a database backend",
	}

	a, err := c.Analyze(context.Background(), sub, nil)
	require.NoError(t, err)

	assert.Equal(t, "Alex Chen", a.ExpertName)
	assert.Equal(t, "Project Context Specialist", a.ExpertRole)
	require.NotEmpty(t, a.Insights)
	assert.True(t, strings.HasPrefix(a.Insights[0], "Project Type: website"))

	categories := make([]string, 0, len(a.Recommendations))
	for _, rec := range a.Recommendations {
		categories = append(categories, rec.Category)
	}
	assert.Contains(t, categories, "Expert Team Activation")
	assert.Contains(t, categories, "Scope Clarification")
	// Context, requirements, and audience are all missing.
	assert.Contains(t, categories, "Information Gathering")

	// Risk factors for every missing field.
	joined := strings.Join(a.Insights, "\n")
	assert.Contains(t, joined, "Insufficient project context provided")
	assert.Contains(t, joined, "Requirements not clearly defined")
	assert.Contains(t, joined, "Target audience not specified")

	// Missing context and requirements floor the confidence.
	assert.Equal(t, analysis.ConfidenceLow, a.ConfidenceLevel)

	// Integration and api wording flags implementation uncertainty.
	assert.Contains(t, a.UncertaintyAreas, "Technical implementation complexity needs specialist review")
}

func TestContextSpecialist_Analyze_CompleteSubmission(t *testing.T) {
	c := NewContextSpecialist()
	sub := analysis.ProjectSubmission{
		Type:           analysis.ProjectWebsite,
		Content:        "Straightforward marketing site refresh with clear goals and a single template to update",
		Context:        "Established retail brand",
		Requirements:   "Refresh the visual style, keep the existing information architecture unchanged",
		TargetAudience: "Existing customers",
	}

	a, err := c.Analyze(context.Background(), sub, nil)
	require.NoError(t, err)

	for _, rec := range a.Recommendations {
		assert.NotEqual(t, "Information Gathering", rec.Category)
	}
	assert.Equal(t, analysis.ConfidenceHigh, a.ConfidenceLevel)
}

func TestContextSpecialist_Analyze_EmptyContent(t *testing.T) {
	c := NewContextSpecialist()
	_, err := c.Analyze(context.Background(), analysis.ProjectSubmission{Type: analysis.ProjectWebsite}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content is empty")
}

func TestContextSpecialist_Analyze_CancelledContext(t *testing.T) {
	c := NewContextSpecialist()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Analyze(ctx, analysis.ProjectSubmission{Type: analysis.ProjectWebsite, Content: "redesign"}, nil)
	require.ErrorIs(t, err, context.Canceled)
}
