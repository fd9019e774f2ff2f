package chain

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/erraggy/casekit/transform"
)

// Command is one recognized command in a suffix.
type Command struct {
	// Key is the registry key of the command.
	Key rune
	// Args holds the quoted literals given to the command, without quotes.
	Args []string
	// Raw is the matched suffix text, key and literals included.
	Raw string
}

var (
	commandPattern = regexp.MustCompile(compositePattern(transform.All()))
	literalPattern = regexp.MustCompile(`'([^'"]*)'|"([^'"]*)"`)
)

// compositePattern builds the alternation matching any command: a character
// class of the zero-argument keys first, then every argument-taking key with
// its literal slots, in registry order.
func compositePattern(specs []transform.Spec) string {
	var class strings.Builder
	var alts []string
	for _, s := range specs {
		if s.TakesArguments() {
			alts = append(alts, s.Pattern())
			continue
		}
		class.WriteString(regexp.QuoteMeta(string(s.Key)))
	}
	if class.Len() > 0 {
		alts = append([]string{"[" + class.String() + "]"}, alts...)
	}
	return strings.Join(alts, "|")
}

// Parse returns the commands found in suffix, left to right. Text that does
// not form a command is skipped. The result is empty when suffix holds no
// command at all.
func Parse(suffix string) []Command {
	matches := commandPattern.FindAllString(suffix, -1)
	if len(matches) == 0 {
		return nil
	}

	cmds := make([]Command, 0, len(matches))
	for _, raw := range matches {
		key, size := utf8.DecodeRuneInString(raw)
		cmds = append(cmds, Command{
			Key:  key,
			Args: literals(raw[size:]),
			Raw:  raw,
		})
	}
	return cmds
}

// literals extracts the quoted literals from the text following a key. The
// quote characters must match on both ends and the interior may contain
// neither quote character.
func literals(s string) []string {
	if s == "" {
		return nil
	}
	var args []string
	for _, m := range literalPattern.FindAllStringSubmatch(s, -1) {
		if strings.HasPrefix(m[0], "'") {
			args = append(args, m[1])
		} else {
			args = append(args, m[2])
		}
	}
	return args
}

// ParseQuery splits query and parses its suffix. cmds is empty when query
// has no Separator or its suffix holds no command; subject is always the text
// before the last Separator when there is one.
func ParseQuery(query string) (subject string, cmds []Command) {
	subject, suffix, ok := Split(query)
	if !ok {
		return subject, nil
	}
	return subject, Parse(suffix)
}
