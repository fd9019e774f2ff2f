package cliutil

import (
	"fmt"
	"io"
	"strings"
)

// StdinArg is the argument that selects stdin as the input source.
const StdinArg = "-"

// MaxStdinSize bounds how much ReadArgs reads from stdin.
const MaxStdinSize = 1 << 20

// ReadArgs returns the input named by the positional arguments. A single "-"
// reads stdin and drops one trailing line break; otherwise the arguments are
// joined with single spaces, so an unquoted query still reaches the command
// as typed.
func ReadArgs(args []string, stdin io.Reader) (string, error) {
	if len(args) == 1 && args[0] == StdinArg {
		return readStdin(stdin)
	}
	return strings.Join(args, " "), nil
}

func readStdin(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxStdinSize+1))
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	if len(data) > MaxStdinSize {
		return "", fmt.Errorf("stdin input exceeds %d bytes", MaxStdinSize)
	}
	s := string(data)
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r"), nil
}
