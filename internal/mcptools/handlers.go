// Package mcptools exposes the expert panel as MCP tools over stdio, so MCP
// clients can run full analyses or consult a single expert.
package mcptools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/studiominds/expertpanel/internal/analysis"
	"github.com/studiominds/expertpanel/internal/orchestrator"
	"github.com/studiominds/expertpanel/internal/report"
)

// PanelService holds the orchestrator used by the MCP tool handlers.
type PanelService struct {
	orch *orchestrator.Orchestrator
}

// NewPanelService creates a PanelService over the given orchestrator.
func NewPanelService(orch *orchestrator.Orchestrator) *PanelService {
	return &PanelService{orch: orch}
}

// AnalyzeProject runs the full panel over a submission and returns the
// orchestration result with a Markdown summary.
func (s *PanelService) AnalyzeProject(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeProjectInput,
) (*mcp.CallToolResult, AnalyzeProjectOutput, error) {
	sub, err := submissionFrom(input.Type, input.Content, input.Requirements, input.Context, input.TargetAudience, input.Files)
	if err != nil {
		return nil, AnalyzeProjectOutput{}, err
	}

	result, err := s.orch.ProcessProject(ctx, sub, input.ManualCommands)
	if err != nil {
		return nil, AnalyzeProjectOutput{}, fmt.Errorf("analyze project: %w", err)
	}

	return nil, AnalyzeProjectOutput{
		Result:  result,
		Summary: report.Summary(result),
	}, nil
}

// ConsultExpert runs exactly one expert for the given selector token.
func (s *PanelService) ConsultExpert(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ConsultExpertInput,
) (*mcp.CallToolResult, ConsultExpertOutput, error) {
	if input.Command == "" {
		return nil, ConsultExpertOutput{}, fmt.Errorf("command is required")
	}
	sub, err := submissionFrom(input.Type, input.Content, input.Requirements, input.Context, input.TargetAudience, input.Files)
	if err != nil {
		return nil, ConsultExpertOutput{}, err
	}

	a, err := s.orch.ProcessSlashCommand(ctx, input.Command, sub, nil)
	if err != nil {
		return nil, ConsultExpertOutput{}, err
	}

	return nil, ConsultExpertOutput{Analysis: a}, nil
}

// ListExperts returns the expert catalogue and the selector commands.
func (s *PanelService) ListExperts(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListExpertsInput,
) (*mcp.CallToolResult, ListExpertsOutput, error) {
	return nil, ListExpertsOutput{
		Experts:  s.orch.AvailableExperts(),
		Commands: orchestrator.AvailableCommands(),
	}, nil
}

func submissionFrom(projType, content, requirements, projContext, audience string, files []string) (analysis.ProjectSubmission, error) {
	t := analysis.ProjectType(projType)
	if !t.IsValid() {
		return analysis.ProjectSubmission{}, fmt.Errorf("invalid project type: %s", projType)
	}
	if content == "" {
		return analysis.ProjectSubmission{}, fmt.Errorf("content is required")
	}
	return analysis.ProjectSubmission{
		Type:           t,
		Content:        content,
		Requirements:   requirements,
		Context:        projContext,
		TargetAudience: audience,
		Files:          files,
	}, nil
}
