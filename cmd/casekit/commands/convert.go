package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/casekit/chain"
	"github.com/erraggy/casekit/internal/cliutil"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	Commands string
	Format   string
}

// convertResult is the structured output of the convert command.
type convertResult struct {
	Subject string   `json:"subject" yaml:"subject"`
	Value   string   `json:"value"   yaml:"value"`
	Path    []string `json:"path"    yaml:"path"`
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.Commands, "c", "", "command keys to apply (default: taken from the ' /' suffix of the input)")
	fs.StringVar(&flags.Commands, "commands", "", "command keys to apply (default: taken from the ' /' suffix of the input)")
	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: casekit convert [flags] <input|->\n\n")
		cliutil.Writef(fs.Output(), "Apply a command chain and print only the resulting value.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  casekit convert -c k fooBarBAZ\n")
		cliutil.Writef(fs.Output(), "  casekit convert 'Hello World /cS'\n")
		cliutil.Writef(fs.Output(), "  casekit convert -c \"F 'txt'\" 'My Report'\n")
		cliutil.Writef(fs.Output(), "  cat names.txt | casekit convert -c s -\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Conversion successful\n")
		cliutil.Writef(fs.Output(), "  1    No recognized command, or a transform failed\n")
	}

	return fs, flags
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	fs, flags := SetupConvertFlags()

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
		return errors.New("convert command requires an input string or '-' for stdin")
	}

	input, err := cliutil.ReadArgs(fs.Args(), os.Stdin)
	if err != nil {
		return err
	}

	subject, cmds := input, chain.Parse(flags.Commands)
	if flags.Commands == "" {
		subject, cmds = chain.ParseQuery(input)
	}
	if len(cmds) == 0 {
		return errors.New("no recognized commands; run 'casekit list' to see the available keys")
	}

	res, err := chain.Run(subject, cmds)
	if err != nil {
		return fmt.Errorf("converting %q: %w", subject, err)
	}

	if flags.Format == FormatText {
		cliutil.Writef(os.Stdout, "%s\n", res.Value)
		return nil
	}
	return OutputStructured(convertResult{
		Subject: subject,
		Value:   res.Value,
		Path:    res.Path,
	}, flags.Format)
}
