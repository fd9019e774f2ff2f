// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes casekit transforms as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/casekit"
	"github.com/erraggy/casekit/caseerrors"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `casekit MCP server: converts strings between case styles (camelCase, snake_case, slugs, URI encoding and more) and runs casekit command chains.

Chain syntax: "<subject> /<commands>", e.g. "Hello World /cS" runs camelCase and then slugify. Only the last " /" separates the subject from the commands. Argument-taking commands accept quoted literals: "a.b.c /R '.' '-'". Use list_commands to see every command key.

Configuration: defaults are configurable via CASEKIT_* environment variables set in your MCP client config.

Key settings:
- CASEKIT_ICON_DIR (default: ./icons): directory used for result item icon paths
- CASEKIT_MULTILINE_TITLE (default: Multiline output): title shown for values containing line breaks
- CASEKIT_MAX_INPUT_SIZE (default: 1048576): maximum query or subject size in bytes`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "casekit", Version: casekit.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "transform",
		Description: "Run a launcher query and return the result items. A query with a command suffix (e.g. \"Hello World /cS\") returns one chained item; a query without one returns an item for every registered transform. Each item carries uid, title, subtitle, arg (the full value) and icon path. Failed transforms appear as items titled Error.",
	}, handleTransform)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Apply a command chain to a subject and return only the resulting value and the names of the applied transforms. commands uses the chain syntax without the leading \" /\", e.g. cS or R '.' '-'. Unrecognized characters are skipped; a chain with no recognized command is an error.",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_commands",
		Description: "List every registered command in registry order with its key, display name, number of quoted literals and usage hint. Use arguments_only=true to list only the commands that take quoted literals.",
	}, handleListCommands)
}

// checkInputSize rejects inputs larger than cfg.MaxInputSize.
func checkInputSize(field, value string) error {
	if int64(len(value)) <= cfg.MaxInputSize {
		return nil
	}
	return &caseerrors.ResourceLimitError{
		ResourceType: "input_size",
		Limit:        cfg.MaxInputSize,
		Actual:       int64(len(value)),
		Message:      fmt.Sprintf("%s too large; set CASEKIT_MAX_INPUT_SIZE to increase", field),
	}
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
