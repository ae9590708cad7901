package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/studiominds/expertpanel/internal/report"
)

func runConsult(args []string) error {
	if len(args) < 1 || strings.HasPrefix(args[0], "-") {
		return fmt.Errorf("usage: expertpanel consult <@selector> [flags]")
	}
	command := args[0]

	var flags submissionFlags
	fs := flag.NewFlagSet("consult", flag.ContinueOnError)
	flags.register(fs)
	if err := fs.Parse(args[1:]); err != nil {
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

	orch, err := newOrchestrator(logger)
	if err != nil {
		return err
	}

	a, err := orch.ProcessSlashCommand(context.Background(), command, sub, nil)
	if err != nil {
		return fmt.Errorf("consult: %w", err)
	}

	if flags.Output != "" {
		if err := report.WriteJSONFile(flags.Output, a); err != nil {
			return err
		}
	}
	if flags.JSON {
		return report.WriteJSON(os.Stdout, a)
	}

	fmt.Print(renderMarkdown(report.Consultation(a)))
	return nil
}
