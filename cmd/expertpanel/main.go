// Command expertpanel analyzes creative project briefs with a panel of
// twelve rule-based experts. It runs one-shot analyses and consultations
// from the terminal, serves the REST API, or speaks MCP over stdio.
package main

import (
	"fmt"
	"os"
)

// version is overridable at build time with
// -ldflags "-X main.version=...".
var version = "dev"

const usage = `usage: expertpanel <command> [flags]

commands:
  analyze   analyze a project brief with the full expert panel
  consult   consult a single expert by selector (e.g. @colorTheorist)
  experts   list the experts and their selector commands
  serve     run the HTTP API server
  mcp       run the MCP server on stdio
  version   print version and exit

Run 'expertpanel <command> -h' for command flags.`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Println(usage)
		return nil
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "analyze":
		return runAnalyze(rest)
	case "consult":
		return runConsult(rest)
	case "experts":
		return runExperts(rest)
	case "serve":
		return runServe(rest)
	case "mcp":
		return runMCP(rest)
	case "version":
		fmt.Println(version)
		return nil
	case "-h", "--help", "help":
		fmt.Println(usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usage)
	}
}
