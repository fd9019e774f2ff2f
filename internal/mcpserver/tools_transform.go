package mcpserver

import (
	"context"

	"github.com/erraggy/casekit/chain"
	"github.com/erraggy/casekit/launcher"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type transformInput struct {
	Query string `json:"query" jsonschema:"Launcher query: a subject optionally followed by ' /' and command keys"`
}

type transformOutput struct {
	Mode      string          `json:"mode"`
	ItemCount int             `json:"item_count"`
	Items     []launcher.Item `json:"items"`
}

const (
	modeChained = "chained"
	modeDefault = "default"
)

func handleTransform(_ context.Context, _ *mcp.CallToolRequest, input transformInput) (*mcp.CallToolResult, transformOutput, error) {
	if err := checkInputSize("query", input.Query); err != nil {
		return errResult(err), transformOutput{}, nil
	}

	resp, err := launcher.ProcessWithOptions(
		launcher.WithQuery(input.Query),
		launcher.WithIconDir(cfg.IconDir),
		launcher.WithMultilineTitle(cfg.MultilineTitle),
	)
	if err != nil {
		return errResult(err), transformOutput{}, nil
	}

	mode := modeDefault
	if _, cmds := chain.ParseQuery(input.Query); len(cmds) > 0 {
		mode = modeChained
	}

	return nil, transformOutput{
		Mode:      mode,
		ItemCount: len(resp.Items),
		Items:     resp.Items,
	}, nil
}
