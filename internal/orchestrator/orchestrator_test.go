package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiominds/expertpanel/internal/analysis"
	"github.com/studiominds/expertpanel/internal/expert"
)

// stubExpert is a minimal Expert for orchestration tests.
type stubExpert struct {
	identity expert.Identity
	fail     bool
	inactive bool
}

func (s *stubExpert) Identity() expert.Identity { return s.identity }

func (s *stubExpert) ShouldActivate(analysis.ProjectSubmission) bool { return !s.inactive }

func (s *stubExpert) Analyze(ctx context.Context, sub analysis.ProjectSubmission, prior []analysis.ExpertAnalysis) (analysis.ExpertAnalysis, error) {
	if s.fail {
		return analysis.ExpertAnalysis{}, errors.New("boom")
	}
	return analysis.ExpertAnalysis{
		ExpertName:      s.identity.Name,
		ExpertRole:      s.identity.Role,
		Assessment:      s.identity.Name + " assessment",
		Insights:        []string{s.identity.Name + " headline"},
		ConfidenceLevel: analysis.ConfidenceHigh,
		Timestamp:       time.Now(),
	}, nil
}

// stubSelector is a stub context expert that also selects the team.
type stubSelector struct {
	stubExpert
	team []string
}

func (s *stubSelector) DetermineTeam(analysis.ProjectSubmission) []string {
	return append([]string(nil), s.team...)
}

func newStubSelector(team ...string) *stubSelector {
	return &stubSelector{
		stubExpert: stubExpert{
			identity: expert.Identity{
				Name:     "Context Stub",
				Role:     "Context Role",
				Triggers: expert.Triggers{AlwaysActive: true},
			},
		},
		team: team,
	}
}

func newStub(name string) *stubExpert {
	return &stubExpert{identity: expert.Identity{Name: name, Role: name + " Role"}}
}

func validSubmission() analysis.ProjectSubmission {
	return analysis.ProjectSubmission{
		Type:    analysis.ProjectWebsite,
		Content: "We need to redesign our company website to look more modern and professional",
	}
}

func TestNew_RequiresAlwaysActiveSelector(t *testing.T) {
	_, err := New(expert.NewRegistry(newStub("Loner")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "always-active")

	alwaysButNoTeam := &stubExpert{identity: expert.Identity{
		Name:     "NoTeam",
		Role:     "NoTeam Role",
		Triggers: expert.Triggers{AlwaysActive: true},
	}}
	_, err = New(expert.NewRegistry(alwaysButNoTeam))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot select teams")
}

func TestProcessProject_ContextAnalysisFirst(t *testing.T) {
	orch, err := New(expert.Default())
	require.NoError(t, err)

	result, err := orch.ProcessProject(context.Background(), validSubmission(), nil)
	require.NoError(t, err)

	require.NotEmpty(t, result.Analyses)
	assert.Equal(t, "Alex Chen", result.Analyses[0].ExpertName)
	assert.LessOrEqual(t, len(result.Analyses), len(result.ActiveExperts)+1)
	assert.True(t, strings.HasPrefix(result.ProjectID, "proj_"))
}

func TestProcessProject_GracefulDegradation(t *testing.T) {
	bad := newStub("Bad")
	bad.fail = true
	registry := expert.NewRegistry(newStubSelector("Good", "Bad", "Also"), newStub("Good"), bad, newStub("Also"))

	orch, err := New(registry)
	require.NoError(t, err)

	result, err := orch.ProcessProject(context.Background(), validSubmission(), nil)
	require.NoError(t, err)

	names := make([]string, 0, len(result.Analyses))
	for _, a := range result.Analyses {
		names = append(names, a.ExpertName)
	}
	assert.Equal(t, []string{"Context Stub", "Good", "Also"}, names)
}

func TestProcessProject_SkipsUnresolvedAndInactive(t *testing.T) {
	sleeper := newStub("Sleeper")
	sleeper.inactive = true
	registry := expert.NewRegistry(newStubSelector("Ghost", "Sleeper", "Good"), sleeper, newStub("Good"))

	orch, err := New(registry)
	require.NoError(t, err)

	result, err := orch.ProcessProject(context.Background(), validSubmission(), nil)
	require.NoError(t, err)

	names := make([]string, 0, len(result.Analyses))
	for _, a := range result.Analyses {
		names = append(names, a.ExpertName)
	}
	assert.Equal(t, []string{"Context Stub", "Good"}, names)
	// The roster itself still lists what was scheduled.
	assert.Equal(t, []string{"Ghost", "Sleeper", "Good"}, result.ActiveExperts)
}

func TestProcessProject_ContextExpertFailureIsFatal(t *testing.T) {
	orch, err := New(expert.Default())
	require.NoError(t, err)

	_, err = orch.ProcessProject(context.Background(), analysis.ProjectSubmission{Type: analysis.ProjectWebsite}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "context analysis")
}

func TestProcessProject_ManualCommands(t *testing.T) {
	orch, err := New(expert.Default())
	require.NoError(t, err)

	result, err := orch.ProcessProject(context.Background(), validSubmission(),
		[]string{"@colorTheorist", "@bogusExpert"})
	require.NoError(t, err)

	assert.Contains(t, result.ActiveExperts, "Dr. Zara Okafor")
	for _, name := range result.ActiveExperts {
		assert.NotContains(t, strings.ToLower(name), "bogus")
	}
}

func TestProcessProject_ManualCommandRunsActivatedExpert(t *testing.T) {
	orch, err := New(expert.Default())
	require.NoError(t, err)

	sub := analysis.ProjectSubmission{
		Type:    analysis.ProjectCopy,
		Content: "Rework the color palette wording in our style guide",
	}

	result, err := orch.ProcessProject(context.Background(), sub, []string{"@colorTheorist"})
	require.NoError(t, err)

	found := false
	for _, a := range result.Analyses {
		if a.ExpertName == "Dr. Zara Okafor" {
			found = true
		}
	}
	assert.True(t, found, "manually selected expert should run when it activates")
}

func TestProcessProject_NoDoubleRunViaAliasing(t *testing.T) {
	orch, err := New(expert.Default())
	require.NoError(t, err)

	// Website submissions put the role name on the default roster; the
	// manual command adds the display name. The expert must run once.
	result, err := orch.ProcessProject(context.Background(), validSubmission(),
		[]string{"@designTheorySpecialist"})
	require.NoError(t, err)

	count := 0
	for _, a := range result.Analyses {
		if a.ExpertName == "Dr. Maya Rodriguez" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestProcessProject_ProgressEvents(t *testing.T) {
	registry := expert.NewRegistry(newStubSelector("First", "Second"), newStub("First"), newStub("Second"))

	progress := NewProgressReporter()
	orch, err := New(registry, WithProgress(progress))
	require.NoError(t, err)

	result, err := orch.ProcessProject(context.Background(), validSubmission(), nil)
	require.NoError(t, err)
	require.Len(t, result.Analyses, 3)

	progress.Close()
	var events []ProgressEvent
	for event := range progress.Subscribe() {
		events = append(events, event)
	}
	require.Len(t, events, 4)
	assert.Equal(t, ProgressWorking, events[0].Status)
	assert.Equal(t, "First", events[0].Expert)
	assert.Equal(t, ProgressComplete, events[1].Status)
	assert.Equal(t, ProgressWorking, events[2].Status)
	assert.Equal(t, "Second", events[2].Expert)
	assert.Equal(t, ProgressComplete, events[3].Status)
}

func TestProcessProject_CancelledContext(t *testing.T) {
	orch, err := New(expert.Default())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = orch.ProcessProject(ctx, validSubmission(), nil)
	require.Error(t, err)
}

func TestProcessSlashCommand_RunsSingleExpert(t *testing.T) {
	orch, err := New(expert.Default())
	require.NoError(t, err)

	a, err := orch.ProcessSlashCommand(context.Background(), "@colorTheorist", validSubmission(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Zara Okafor", a.ExpertName)
}

func TestProcessSlashCommand_PriorAnalysesBecomeNotes(t *testing.T) {
	orch, err := New(expert.Default())
	require.NoError(t, err)

	prior := []analysis.ExpertAnalysis{{ExpertName: "Alex Chen", Assessment: "medium coordination"}}
	a, err := orch.ProcessSlashCommand(context.Background(), "@colorTheorist", validSubmission(), prior)
	require.NoError(t, err)
	require.Len(t, a.CollaborativeNotes, 1)
	assert.Contains(t, a.CollaborativeNotes[0], "Alex Chen")
}

func TestProcessSlashCommand_InvalidCommand(t *testing.T) {
	orch, err := New(expert.Default())
	require.NoError(t, err)

	_, err = orch.ProcessSlashCommand(context.Background(), "@bogusExpert", validSubmission(), nil)
	require.Error(t, err)

	var invalid *InvalidCommandError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Message, "Did you mean @")
	assert.NotEmpty(t, invalid.Suggestion)
}

func TestProcessSlashCommand_NoSigil(t *testing.T) {
	orch, err := New(expert.Default())
	require.NoError(t, err)

	_, err = orch.ProcessSlashCommand(context.Background(), "colorTheorist", validSubmission(), nil)
	var invalid *InvalidCommandError
	require.ErrorAs(t, err, &invalid)
}

func TestProcessSlashCommand_ExpertNotRegistered(t *testing.T) {
	// A registry holding only the context specialist: the selector is valid
	// but the expert behind it is not implemented.
	orch, err := New(expert.NewRegistry(expert.NewContextSpecialist()))
	require.NoError(t, err)

	_, err = orch.ProcessSlashCommand(context.Background(), "@colorTheorist", validSubmission(), nil)
	var notFound *ExpertNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Dr. Zara Okafor", notFound.Name)
}

func TestProcessSlashCommand_AnalyzeFailureWrapped(t *testing.T) {
	orch, err := New(expert.Default())
	require.NoError(t, err)

	_, err = orch.ProcessSlashCommand(context.Background(), "@colorTheorist",
		analysis.ProjectSubmission{Type: analysis.ProjectBrand}, nil)
	require.Error(t, err)

	var analysisErr *AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, "Dr. Zara Okafor", analysisErr.Expert)
}

func TestNextSteps(t *testing.T) {
	empty := nextSteps(analysis.ProjectSynthesis{}, nil)
	assert.Equal(t, []string{"Implement high-priority recommendations"}, empty)

	full := nextSteps(
		analysis.ProjectSynthesis{
			PrioritizedRecommendations: []analysis.Recommendation{{Priority: analysis.PriorityCritical}},
			RequiresUserDecision:       []string{"pick a palette"},
		},
		[]analysis.ExpertConflict{{Topic: "X"}},
	)
	assert.Equal(t, []string{
		"Review expert perspective conflicts and make strategic decisions",
		"Address critical recommendations before proceeding",
		"Implement high-priority recommendations",
		"Make decisions on flagged items requiring user input",
	}, full)
}

func TestAvailableExperts_FullPanel(t *testing.T) {
	orch, err := New(expert.Default())
	require.NoError(t, err)

	infos := orch.AvailableExperts()
	require.Len(t, infos, 12)
	for _, info := range infos {
		assert.True(t, info.Implemented, info.Name)
		assert.NotEmpty(t, info.Role)
	}
}
