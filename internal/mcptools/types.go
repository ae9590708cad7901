package mcptools

import (
	"github.com/studiominds/expertpanel/internal/analysis"
	"github.com/studiominds/expertpanel/internal/orchestrator"
)

// --- MCP Tool Input Types ---
// These structs define the JSON schema for each MCP tool's input.
// The MCP Go SDK auto-generates JSON schemas from struct tags.

// AnalyzeProjectInput is the input for the analyze_project MCP tool.
type AnalyzeProjectInput struct {
	Type           string   `json:"type" jsonschema:"project type: website, brand, marketing, app, design, copy, or other"`
	Content        string   `json:"content" jsonschema:"free-text project description"`
	Requirements   string   `json:"requirements,omitempty" jsonschema:"stated requirements, if any"`
	Context        string   `json:"context,omitempty" jsonschema:"business or situational context, if any"`
	TargetAudience string   `json:"targetAudience,omitempty" jsonschema:"who the project is for, if known"`
	Files          []string `json:"files,omitempty" jsonschema:"names of attached reference files"`
	ManualCommands []string `json:"manualCommands,omitempty" jsonschema:"selector tokens (e.g. @colorTheorist) forcing extra experts onto the roster"`
}

// AnalyzeProjectOutput is the result of the analyze_project MCP tool.
type AnalyzeProjectOutput struct {
	Result  *analysis.OrchestrationResult `json:"result"`
	Summary string                        `json:"summary"`
}

// ConsultExpertInput is the input for the consult_expert MCP tool.
type ConsultExpertInput struct {
	Command        string   `json:"command" jsonschema:"expert selector token, e.g. @colorTheorist"`
	Type           string   `json:"type" jsonschema:"project type: website, brand, marketing, app, design, copy, or other"`
	Content        string   `json:"content" jsonschema:"free-text project description"`
	Requirements   string   `json:"requirements,omitempty" jsonschema:"stated requirements, if any"`
	Context        string   `json:"context,omitempty" jsonschema:"business or situational context, if any"`
	TargetAudience string   `json:"targetAudience,omitempty" jsonschema:"who the project is for, if known"`
	Files          []string `json:"files,omitempty" jsonschema:"names of attached reference files"`
}

// ConsultExpertOutput is the result of the consult_expert MCP tool.
type ConsultExpertOutput struct {
	Analysis analysis.ExpertAnalysis `json:"analysis"`
}

// ListExpertsInput is the input for the list_experts MCP tool.
type ListExpertsInput struct{}

// ListExpertsOutput is the result of the list_experts MCP tool.
type ListExpertsOutput struct {
	Experts  []orchestrator.ExpertInfo   `json:"experts"`
	Commands []orchestrator.CommandEntry `json:"commands"`
}
