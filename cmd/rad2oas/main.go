package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/erraggy/rad2oas"
	"github.com/erraggy/rad2oas/cmd/rad2oas/commands"
	"github.com/erraggy/rad2oas/internal/cliutil"
)

// knownCommands lists the commands offered as suggestions for typos.
var knownCommands = []string{"convert", "validate", "mcp", "version", "help"}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run dispatches to a command. No arguments, or a leading flag, means convert.
func run(args []string) error {
	if len(args) == 0 || (strings.HasPrefix(args[0], "-") && !isGlobalFlag(args[0])) {
		return commands.HandleConvert(args)
	}

	switch command := args[0]; command {
	case "version", "-v", "--version":
		fmt.Printf("rad2oas v%s\n", rad2oas.Version())
		return nil
	case "help", "-h", "--help":
		printUsage()
		return nil
	case "convert":
		return commands.HandleConvert(args[1:])
	case "validate":
		return commands.HandleValidate(args[1:])
	case "mcp":
		return commands.HandleMCP(args[1:])
	default:
		if suggestion := suggestCommand(command); suggestion != "" {
			return fmt.Errorf("unknown command %q, did you mean %q?", command, suggestion)
		}
		printUsage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func isGlobalFlag(arg string) bool {
	switch arg {
	case "-v", "--version", "-h", "--help":
		return true
	}
	return false
}

// suggestCommand returns the closest known command within edit distance 2.
func suggestCommand(input string) string {
	return cliutil.ClosestMatch(input, knownCommands, 2)
}

func printUsage() {
	fmt.Println(`rad2oas - Cytomine RAD to OpenAPI converter

Usage:
  rad2oas [command] [options]

Commands:
  convert     Convert a RAD document to OpenAPI 3.0.1 (default command)
  validate    Validate an OpenAPI document
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  rad2oas
  rad2oas convert -o openapi.yaml restapidoc.json
  rad2oas --pretty --title "Cytomine Core"
  rad2oas validate openapi.json

Run 'rad2oas <command> --help' for more information on a command.`)
}
