package mcpserver

import (
	"context"

	"github.com/erraggy/casekit/transform"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type listCommandsInput struct {
	ArgumentsOnly bool `json:"arguments_only,omitempty" jsonschema:"Only list commands that take quoted literals"`
}

type commandInfo struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Arity    int    `json:"arity"`
	Required int    `json:"required"`
	Hint     string `json:"hint,omitempty"`
}

type listCommandsOutput struct {
	Count    int           `json:"count"`
	Commands []commandInfo `json:"commands"`
}

func handleListCommands(_ context.Context, _ *mcp.CallToolRequest, input listCommandsInput) (*mcp.CallToolResult, listCommandsOutput, error) {
	specs := transform.All()
	commands := make([]commandInfo, 0, len(specs))
	for _, s := range specs {
		if input.ArgumentsOnly && !s.TakesArguments() {
			continue
		}
		commands = append(commands, commandInfo{
			Key:      string(s.Key),
			Name:     s.Name,
			Arity:    s.Arity,
			Required: s.Required,
			Hint:     s.Hint,
		})
	}

	return nil, listCommandsOutput{
		Count:    len(commands),
		Commands: commands,
	}, nil
}
