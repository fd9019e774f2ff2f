package commands

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/casekit"
	"github.com/erraggy/casekit/internal/cliutil"
	"github.com/erraggy/casekit/internal/mcpserver"
)

// MCPFlags contains flags for the mcp command
type MCPFlags struct {
	Debug bool
}

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
// Returns the FlagSet and an MCPFlags struct with bound flag variables.
func SetupMCPFlags() (*flag.FlagSet, *MCPFlags) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	flags := &MCPFlags{}

	fs.BoolVar(&flags.Debug, "debug", false, "log debug messages to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: casekit mcp [flags]\n\n")
		cliutil.Writef(fs.Output(), "Serve the casekit tools over MCP (Model Context Protocol) on stdio.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nTools:\n")
		cliutil.Writef(fs.Output(), "  transform       run a launcher query and return the result items\n")
		cliutil.Writef(fs.Output(), "  convert         apply a command chain and return the value\n")
		cliutil.Writef(fs.Output(), "  list_commands   list the registered command keys\n")
		cliutil.Writef(fs.Output(), "\nEnvironment:\n")
		cliutil.Writef(fs.Output(), "  CASEKIT_ICON_DIR          icon directory (default: ./icons)\n")
		cliutil.Writef(fs.Output(), "  CASEKIT_MULTILINE_TITLE   title for multi-line values (default: Multiline output)\n")
		cliutil.Writef(fs.Output(), "  CASEKIT_MAX_INPUT_SIZE    maximum input size in bytes (default: 1048576)\n")
	}

	return fs, flags
}

// newLogger returns a text logger on stderr; stdout carries the MCP stream.
func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs, flags := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	slog.SetDefault(newLogger(flags.Debug))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("starting casekit MCP server", "version", casekit.Version(), "transport", "stdio")
	if err := mcpserver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("MCP server failed", "error", err)
		return err
	}
	slog.Debug("MCP server stopped")
	return nil
}
