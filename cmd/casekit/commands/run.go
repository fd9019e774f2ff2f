package commands

import (
	"errors"
	"flag"
	"os"

	"github.com/erraggy/casekit/internal/cliutil"
	"github.com/erraggy/casekit/launcher"
)

// RunFlags contains flags for the run command
type RunFlags struct {
	Format         string
	IconDir        string
	MultilineTitle string
}

// SetupRunFlags creates and configures a FlagSet for the run command.
// Returns the FlagSet and a RunFlags struct with bound flag variables.
func SetupRunFlags() (*flag.FlagSet, *RunFlags) {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	flags := &RunFlags{}

	fs.StringVar(&flags.Format, "f", FormatJSON, "output format: json, yaml, or text")
	fs.StringVar(&flags.Format, "format", FormatJSON, "output format: json, yaml, or text")
	fs.StringVar(&flags.IconDir, "icon-dir", launcher.DefaultIconDir, "directory icon paths are built from")
	fs.StringVar(&flags.MultilineTitle, "multiline-title", launcher.DefaultMultilineTitle, "title shown for values containing line breaks")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: casekit run [flags] <query|->\n\n")
		cliutil.Writef(fs.Output(), "Run a launcher query and print the result items.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nQuery Syntax:\n")
		cliutil.Writef(fs.Output(), "  <subject>                  apply every transform to the subject\n")
		cliutil.Writef(fs.Output(), "  <subject> /<commands>      chain the commands (see 'casekit list')\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  casekit run 'user profile'\n")
		cliutil.Writef(fs.Output(), "  casekit run 'Hello World /cS'\n")
		cliutil.Writef(fs.Output(), "  casekit run \"a.b.c /R '.' '-'\"\n")
		cliutil.Writef(fs.Output(), "  echo 'My Report /F txt' | casekit run -\n")
		cliutil.Writef(fs.Output(), "\nOutput:\n")
		cliutil.Writef(fs.Output(), "  json (default) writes the launcher document {\"items\": [...]} on one line\n")
	}

	return fs, flags
}

// HandleRun executes the run command
func HandleRun(args []string) error {
	fs, flags := SetupRunFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("run command requires a query or '-' for stdin")
	}

	query, err := cliutil.ReadArgs(fs.Args(), os.Stdin)
	if err != nil {
		return err
	}

	resp, err := launcher.ProcessWithOptions(
		launcher.WithQuery(query),
		launcher.WithIconDir(flags.IconDir),
		launcher.WithMultilineTitle(flags.MultilineTitle),
	)
	if err != nil {
		return err
	}

	switch flags.Format {
	case FormatJSON:
		return resp.WriteJSON(os.Stdout)
	case FormatYAML:
		return OutputStructured(resp, FormatYAML)
	default:
		for _, item := range resp.Items {
			cliutil.Writef(os.Stdout, "%-48s %s\n", item.Subtitle, item.Title)
		}
		return nil
	}
}
