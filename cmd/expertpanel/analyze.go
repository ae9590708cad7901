package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/studiominds/expertpanel/internal/orchestrator"
	"github.com/studiominds/expertpanel/internal/report"
)

// commandList is a repeatable -command flag.
type commandList []string

func (c *commandList) String() string { return fmt.Sprint([]string(*c)) }

func (c *commandList) Set(v string) error {
	*c = append(*c, v)
	return nil
}

func runAnalyze(args []string) error {
	var flags submissionFlags
	var manual commandList

	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	flags.register(fs)
	fs.Var(&manual, "command", "selector token forcing an extra expert (repeatable, e.g. @colorTheorist)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sub, err := flags.submission()
	if err != nil {
		return err
	}

	logger, err := newLogger(flags.Verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	progress := orchestrator.NewProgressReporter()
	orch, err := newOrchestrator(logger, orchestrator.WithProgress(progress))
	if err != nil {
		return err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for event := range progress.Subscribe() {
			fmt.Fprintln(os.Stderr, orchestrator.FormatProgress(event))
		}
	}()

	result, err := orch.ProcessProject(context.Background(), sub, manual)
	progress.Close()
	<-done
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	if flags.Output != "" {
		if err := report.WriteJSONFile(flags.Output, result); err != nil {
			return err
		}
	}
	if flags.JSON {
		return report.WriteJSON(os.Stdout, result)
	}

	fmt.Print(renderMarkdown(report.Summary(result)))
	return nil
}
