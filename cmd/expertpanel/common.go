package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/studiominds/expertpanel/internal/analysis"
	"github.com/studiominds/expertpanel/internal/expert"
	"github.com/studiominds/expertpanel/internal/orchestrator"
)

// submissionFlags are the shared submission inputs for analyze and consult.
type submissionFlags struct {
	Type         string
	Content      string
	Requirements string
	Context      string
	Audience     string
	JSON         bool
	Output       string
	Verbose      bool
}

func (f *submissionFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.Type, "type", "other", "project type: website, brand, marketing, app, design, copy, other")
	fs.StringVar(&f.Content, "content", "", "project description ('-' to read from stdin)")
	fs.StringVar(&f.Requirements, "requirements", "", "stated requirements")
	fs.StringVar(&f.Context, "context", "", "business context")
	fs.StringVar(&f.Audience, "audience", "", "target audience")
	fs.BoolVar(&f.JSON, "json", false, "print the full result as JSON")
	fs.StringVar(&f.Output, "output", "", "also write the JSON result to this file")
	fs.BoolVar(&f.Verbose, "verbose", false, "enable debug logging")
}

// submission builds the ProjectSubmission, reading stdin when content is "-".
func (f *submissionFlags) submission() (analysis.ProjectSubmission, error) {
	content := f.Content
	if content == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return analysis.ProjectSubmission{}, fmt.Errorf("read stdin: %w", err)
		}
		content = strings.TrimSpace(string(data))
	}
	if content == "" {
		return analysis.ProjectSubmission{}, fmt.Errorf("-content is required")
	}

	t := analysis.ProjectType(f.Type)
	if !t.IsValid() {
		return analysis.ProjectSubmission{}, fmt.Errorf("invalid project type %q", f.Type)
	}

	return analysis.ProjectSubmission{
		Type:           t,
		Content:        content,
		Requirements:   f.Requirements,
		Context:        f.Context,
		TargetAudience: f.Audience,
	}, nil
}

// newLogger builds the process logger. Debug level when verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}
	return logger, nil
}

// newOrchestrator wires the default panel.
func newOrchestrator(logger *zap.Logger, opts ...orchestrator.Option) (*orchestrator.Orchestrator, error) {
	opts = append([]orchestrator.Option{orchestrator.WithLogger(logger)}, opts...)
	return orchestrator.New(expert.Default(), opts...)
}

// renderMarkdown renders md for the terminal, falling back to the raw text
// when the renderer is unavailable (e.g. no TTY).
func renderMarkdown(md string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}
