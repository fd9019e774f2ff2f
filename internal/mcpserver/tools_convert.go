package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/casekit/chain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type convertInput struct {
	Subject  string `json:"subject"  jsonschema:"The string to transform"`
	Commands string `json:"commands" jsonschema:"Command keys and quoted literals without the leading ' /' (e.g. cS)"`
}

type convertOutput struct {
	Value string   `json:"value"`
	Path  []string `json:"path"`
}

func handleConvert(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	if err := checkInputSize("subject", input.Subject); err != nil {
		return errResult(err), convertOutput{}, nil
	}
	if err := checkInputSize("commands", input.Commands); err != nil {
		return errResult(err), convertOutput{}, nil
	}

	cmds := chain.Parse(input.Commands)
	if len(cmds) == 0 {
		return errResult(fmt.Errorf("no recognized commands in %q; use list_commands to see the available keys", input.Commands)), convertOutput{}, nil
	}

	res, err := chain.Run(input.Subject, cmds)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	return nil, convertOutput{
		Value: res.Value,
		Path:  res.Path,
	}, nil
}
