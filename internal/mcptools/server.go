package mcptools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// version is overridable with -ldflags "-X .../internal/mcptools.version=...".
var version = "dev"

// NewPanelMCPServer creates an MCP server with the 3 expert panel tools
// registered: analyze_project, consult_expert, and list_experts.
func NewPanelMCPServer(svc *PanelService) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "expertpanel",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_project",
		Description: "Analyze a project description with the full expert panel. Selects the relevant experts automatically, runs them in sequence, and returns the merged analyses with conflicts and next steps.",
	}, svc.AnalyzeProject)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "consult_expert",
		Description: "Consult a single expert by selector token (e.g. @colorTheorist). Returns that expert's analysis only, with no roster or synthesis.",
	}, svc.ConsultExpert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_experts",
		Description: "List all experts with their roles, availability, and selector commands.",
	}, svc.ListExperts)

	return server
}

// RunStdio runs the MCP server on stdio transport, blocking until stdin is
// closed or the context is cancelled.
func RunStdio(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}
