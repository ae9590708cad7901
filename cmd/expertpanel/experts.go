package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/studiominds/expertpanel/internal/expert"
	"github.com/studiominds/expertpanel/internal/orchestrator"
	"github.com/studiominds/expertpanel/internal/report"
	"go.uber.org/zap"
)

func runExperts(args []string) error {
	var jsonOut bool
	fs := flag.NewFlagSet("experts", flag.ContinueOnError)
	fs.BoolVar(&jsonOut, "json", false, "print the catalogue as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	orch, err := orchestrator.New(expert.Default(), orchestrator.WithLogger(zap.NewNop()))
	if err != nil {
		return err
	}

	if jsonOut {
		return report.WriteJSON(os.Stdout, orch.AvailableExperts())
	}

	for _, entry := range orchestrator.AvailableCommands() {
		fmt.Printf("  %-32s %-20s %s\n", entry.Command, entry.ExpertName, entry.Description)
	}
	return nil
}
