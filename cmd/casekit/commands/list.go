package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/casekit/internal/cliutil"
	"github.com/erraggy/casekit/transform"
)

// ListFlags contains flags for the list command
type ListFlags struct {
	Format        string
	ArgumentsOnly bool
	Quiet         bool
}

// commandEntry describes one registered command in structured output.
type commandEntry struct {
	Key      string `json:"key"            yaml:"key"`
	Name     string `json:"name"           yaml:"name"`
	Arity    int    `json:"arity"          yaml:"arity"`
	Required int    `json:"required"       yaml:"required"`
	Hint     string `json:"hint,omitempty" yaml:"hint,omitempty"`
}

// SetupListFlags creates and configures a FlagSet for the list command.
// Returns the FlagSet and a ListFlags struct with bound flag variables.
func SetupListFlags() (*flag.FlagSet, *ListFlags) {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	flags := &ListFlags{}

	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.ArgumentsOnly, "args-only", false, "only list commands that take quoted literals")
	fs.BoolVar(&flags.Quiet, "q", false, "omit headers and separate columns with tabs")
	fs.BoolVar(&flags.Quiet, "quiet", false, "omit headers and separate columns with tabs")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: casekit list [flags]\n\n")
		cliutil.Writef(fs.Output(), "List every command key in registry order.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  casekit list\n")
		cliutil.Writef(fs.Output(), "  casekit list --args-only -f json\n")
		cliutil.Writef(fs.Output(), "  casekit list -q | cut -f1\n")
	}

	return fs, flags
}

// HandleList executes the list command
func HandleList(args []string) error {
	fs, flags := SetupListFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("list command takes no arguments, got %d", fs.NArg())
	}

	var entries []commandEntry
	for _, s := range transform.All() {
		if flags.ArgumentsOnly && !s.TakesArguments() {
			continue
		}
		entries = append(entries, commandEntry{
			Key:      string(s.Key),
			Name:     s.Name,
			Arity:    s.Arity,
			Required: s.Required,
			Hint:     s.Hint,
		})
	}

	if flags.Format != FormatText {
		return OutputStructured(entries, flags.Format)
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		usage := "/" + e.Key
		if e.Hint != "" {
			usage = e.Hint
		}
		rows = append(rows, []string{e.Key, e.Name, usage})
	}
	RenderTable(os.Stdout, []string{"KEY", "NAME", "USAGE"}, rows, flags.Quiet)
	return nil
}
