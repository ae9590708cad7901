// Package orchestrator runs the expert panel over a submission: it selects
// the roster, executes the experts sequentially with accumulated
// collaborative context, and synthesizes the completed analyses into one
// result envelope. It also parses the manual @-selector commands.
package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/studiominds/expertpanel/internal/analysis"
	"github.com/studiominds/expertpanel/internal/expert"
)

// ExpertInfo is one row of the discovery listing.
type ExpertInfo struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Implemented bool   `json:"implemented"`
}

// Orchestrator coordinates one panel over any number of independent runs.
// It holds no per-run state; the registry is read-only after construction,
// so a single Orchestrator serves concurrent callers.
type Orchestrator struct {
	registry *expert.Registry
	context  expert.Expert
	selector expert.TeamSelector
	logger   *zap.Logger
	progress *ProgressReporter
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) { o.logger = logger }
}

// WithProgress attaches a progress reporter for per-expert run events.
func WithProgress(pr *ProgressReporter) Option {
	return func(o *Orchestrator) { o.progress = pr }
}

// New builds an Orchestrator over the given registry. The registry must
// contain an always-active expert that can select the default team.
func New(registry *expert.Registry, opts ...Option) (*Orchestrator, error) {
	ctxExpert := registry.AlwaysActive()
	if ctxExpert == nil {
		return nil, fmt.Errorf("new orchestrator: registry has no always-active context expert")
	}
	selector, ok := ctxExpert.(expert.TeamSelector)
	if !ok {
		return nil, fmt.Errorf("new orchestrator: context expert %s cannot select teams", ctxExpert.Identity().Name)
	}

	o := &Orchestrator{
		registry: registry,
		context:  ctxExpert,
		selector: selector,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return o, nil
}

// ProcessProject runs the full pipeline for one submission: mandatory context
// analysis, team selection plus manual selector additions, the sequential
// expert loop, and synthesis. A single expert failure never fails the run;
// the result simply carries fewer analyses. Only a context-expert failure or
// a cancelled ctx aborts.
func (o *Orchestrator) ProcessProject(ctx context.Context, sub analysis.ProjectSubmission, manualCommands []string) (*analysis.OrchestrationResult, error) {
	projectID := "proj_" + uuid.NewString()
	log := o.logger.With(zap.String("projectId", projectID))

	contextAnalysis, err := o.context.Analyze(ctx, sub, nil)
	if err != nil {
		return nil, fmt.Errorf("context analysis: %w", err)
	}

	roster := o.selector.DetermineTeam(sub)
	if len(manualCommands) > 0 {
		roster = mergeRoster(roster, o.parseManualCommands(manualCommands, log))
	}
	log.Info("team selected",
		zap.Int("rosterSize", len(roster)),
		zap.Strings("roster", roster))

	analyses := []analysis.ExpertAnalysis{contextAnalysis}
	ran := map[string]bool{contextAnalysis.ExpertName: true}

	for _, name := range roster {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		e := o.registry.Resolve(name)
		if e == nil {
			log.Warn("roster entry has no registered expert", zap.String("expert", name))
			continue
		}
		display := e.Identity().Name
		if ran[display] || !e.ShouldActivate(sub) {
			continue
		}
		ran[display] = true

		o.emit(ProgressEvent{Expert: display, Status: ProgressWorking})
		a, err := e.Analyze(ctx, sub, analyses)
		if err != nil {
			log.Error("expert analysis failed", zap.String("expert", display), zap.Error(err))
			o.emit(ProgressEvent{Expert: display, Status: ProgressFailed, Message: err.Error()})
			continue
		}
		analyses = append(analyses, a)
		o.emit(ProgressEvent{Expert: display, Status: ProgressComplete})
	}

	synthesis := Synthesize(analyses)
	conflicts := IdentifyConflicts(analyses)

	return &analysis.OrchestrationResult{
		ProjectID:     projectID,
		ActiveExperts: roster,
		Analyses:      analyses,
		Synthesis:     synthesis,
		Conflicts:     conflicts,
		NextSteps:     nextSteps(synthesis, conflicts),
	}, nil
}

// ProcessSlashCommand runs exactly one expert for the given selector token.
// Unlike ProcessProject there is no fallback roster: a malformed command
// fails with InvalidCommandError and an unregistered expert with
// ExpertNotFoundError.
func (o *Orchestrator) ProcessSlashCommand(ctx context.Context, command string, sub analysis.ProjectSubmission, prior []analysis.ExpertAnalysis) (analysis.ExpertAnalysis, error) {
	parsed := ParseCommand(command)
	if parsed == nil {
		return analysis.ExpertAnalysis{}, &InvalidCommandError{
			Command: command,
			Message: fmt.Sprintf("Invalid command: %s", command),
		}
	}
	if !parsed.IsValid {
		return analysis.ExpertAnalysis{}, &InvalidCommandError{
			Command:    command,
			Suggestion: closestCommand(strings.ToLower(strings.TrimSpace(command))),
			Message:    parsed.Message,
		}
	}

	e := o.registry.Resolve(parsed.ExpertName)
	if e == nil {
		return analysis.ExpertAnalysis{}, &ExpertNotFoundError{Name: parsed.ExpertName}
	}

	a, err := e.Analyze(ctx, sub, prior)
	if err != nil {
		return analysis.ExpertAnalysis{}, &AnalysisError{Expert: parsed.ExpertName, Err: err}
	}
	return a, nil
}

// AvailableExperts lists the catalogue with an implemented flag per entry.
func (o *Orchestrator) AvailableExperts() []ExpertInfo {
	entries := AvailableCommands()
	infos := make([]ExpertInfo, 0, len(entries))
	for _, entry := range entries {
		infos = append(infos, ExpertInfo{
			Name:        entry.ExpertName,
			Role:        entry.Description,
			Implemented: o.registry.Has(entry.ExpertName),
		})
	}
	return infos
}

// parseManualCommands keeps the expert names of valid selector tokens,
// silently dropping invalid ones.
func (o *Orchestrator) parseManualCommands(commands []string, log *zap.Logger) []string {
	var experts []string
	for _, command := range commands {
		parsed := ParseCommand(command)
		if parsed == nil || !parsed.IsValid {
			log.Debug("dropping invalid manual command", zap.String("command", command))
			continue
		}
		experts = append(experts, parsed.ExpertName)
	}
	return experts
}

// mergeRoster unions extra names onto the roster, keeping first occurrences.
func mergeRoster(roster, extra []string) []string {
	seen := make(map[string]bool, len(roster)+len(extra))
	merged := make([]string, 0, len(roster)+len(extra))
	for _, name := range append(roster, extra...) {
		if seen[name] {
			continue
		}
		seen[name] = true
		merged = append(merged, name)
	}
	return merged
}

func nextSteps(synthesis analysis.ProjectSynthesis, conflicts []analysis.ExpertConflict) []string {
	var steps []string

	if len(conflicts) > 0 {
		steps = append(steps, "Review expert perspective conflicts and make strategic decisions")
	}

	for _, rec := range synthesis.PrioritizedRecommendations {
		if rec.Priority == analysis.PriorityCritical {
			steps = append(steps, "Address critical recommendations before proceeding")
			break
		}
	}

	steps = append(steps, "Implement high-priority recommendations")

	if len(synthesis.RequiresUserDecision) > 0 {
		steps = append(steps, "Make decisions on flagged items requiring user input")
	}

	return steps
}

func (o *Orchestrator) emit(event ProgressEvent) {
	if o.progress != nil {
		o.progress.Emit(event)
	}
}
