package main

import (
	"fmt"
	"os"

	"github.com/agext/levenshtein"

	"github.com/erraggy/casekit"
	"github.com/erraggy/casekit/cmd/casekit/commands"
)

// validCommands lists every top-level command, including the help and version
// aliases, for typo suggestions.
var validCommands = []string{"run", "convert", "list", "mcp", "version", "help"}

// maxSuggestDistance is the largest edit distance still offered as a suggestion.
const maxSuggestDistance = 2

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("casekit %s\n\n%s\n", casekit.Version(), casekit.BuildInfo())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "run":
		err = commands.HandleRun(os.Args[2:])
	case "convert":
		err = commands.HandleConvert(os.Args[2:])
	case "list":
		err = commands.HandleList(os.Args[2:])
	case "mcp":
		err = commands.HandleMCP(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the known command closest to input, or "" when none
// is within maxSuggestDistance edits.
func suggestCommand(input string) string {
	best := ""
	bestDist := maxSuggestDistance + 1
	for _, cmd := range validCommands {
		if d := levenshtein.Distance(input, cmd, nil); d < bestDist {
			best, bestDist = cmd, d
		}
	}
	return best
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `casekit - case conversion and transformation chains for launchers

Usage:
  casekit <command> [flags] [arguments]

Commands:
  run        Run a launcher query and print the result items as JSON
  convert    Apply a command chain and print only the resulting value
  list       List the command keys
  mcp        Serve the casekit tools over MCP on stdio
  version    Show version and build information
  help       Show this help message

Query syntax:
  <subject> /<commands>   e.g. 'Hello World /cS' (camelCase, then slugify)

Run 'casekit <command> --help' for more information on a command.
`)
}
