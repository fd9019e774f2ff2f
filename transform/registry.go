package transform

import (
	"fmt"
	"regexp"
	"strings"
)

// ApplyFunc runs a transform on subject. args holds the quoted literals given
// to the command, in order; missing literals take the transform's defaults.
type ApplyFunc func(subject string, args []string) (string, error)

// Spec describes one registered transform.
type Spec struct {
	// Key is the single-character command key (e.g. 'c' for camelCase).
	Key rune
	// Name is the display name, also used for icons and result identifiers.
	Name string
	// Hint is a usage hint shown for argument-taking transforms.
	Hint string
	// Arity is the number of quoted literal slots the command accepts.
	Arity int
	// Required is how many of the Arity slots must be present.
	Required int
	// Apply runs the transform.
	Apply ApplyFunc
}

// Literal slot fragments. A required slot must be present; an optional slot
// may be omitted. The lazy interior deliberately accepts any character: the
// literal itself is extracted later with a stricter pattern.
const (
	requiredSlot = ` (?:'.*?'|".*?")`
	optionalSlot = `(?: '.*?'| ".*?")?`
)

// TakesArguments reports whether the transform accepts quoted literals.
func (s Spec) TakesArguments() bool {
	return s.Arity > 0
}

// Pattern returns the regular-expression fragment that matches this command
// in a command suffix: the key followed by its literal slots.
func (s Spec) Pattern() string {
	var b strings.Builder
	b.WriteString(regexp.QuoteMeta(string(s.Key)))
	for i := 0; i < s.Arity; i++ {
		if i < s.Required {
			b.WriteString(requiredSlot)
		} else {
			b.WriteString(optionalSlot)
		}
	}
	return b.String()
}

// arg returns args[i], or fallback when the literal was not given.
func arg(args []string, i int, fallback string) string {
	if i < len(args) {
		return args[i]
	}
	return fallback
}

func unary(fn func(string) string) ApplyFunc {
	return func(subject string, _ []string) (string, error) {
		return fn(subject), nil
	}
}

func fallible(fn func(string) (string, error)) ApplyFunc {
	return func(subject string, _ []string) (string, error) {
		return fn(subject)
	}
}

func applySlug(subject string, args []string) (string, error) {
	return ToSlug(subject, arg(args, 0, DefaultSlugSeparator)), nil
}

func applyReplace(subject string, args []string) (string, error) {
	if len(args) == 0 {
		return subject, nil
	}
	return ToReplaced(subject, args[0], arg(args, 1, "")), nil
}

// applyFilename uses the subject as the filename when one literal is given
// (the extension), and the first literal when two are given.
func applyFilename(subject string, args []string) (string, error) {
	if len(args) >= 2 {
		return ToFilename(args[0], args[1]), nil
	}
	return ToFilename(subject, arg(args, 0, "")), nil
}

// table is the fixed transform registry, in default result order.
type table struct {
	specs []Spec
	index map[rune]int
}

func newTable(specs ...Spec) *table {
	t := &table{
		specs: specs,
		index: make(map[rune]int, len(specs)),
	}
	for i, s := range specs {
		if _, dup := t.index[s.Key]; dup {
			panic(fmt.Sprintf("transform: duplicate key %q", s.Key))
		}
		if s.Required > s.Arity {
			panic(fmt.Sprintf("transform: %q requires %d of %d literals", s.Key, s.Required, s.Arity))
		}
		t.index[s.Key] = i
	}
	return t
}

var registry = newTable(
	Spec{Key: 'l', Name: "lowercase", Apply: unary(ToLowerCase)},
	Spec{Key: 'u', Name: "UPPERCASE", Apply: unary(ToUpperCase)},
	Spec{Key: 'c', Name: "camelCase", Apply: unary(ToCamelCase)},
	Spec{Key: 'p', Name: "PascalCase", Apply: unary(ToPascalCase)},
	Spec{Key: 's', Name: "snake_case", Apply: unary(ToSnakeCase)},
	Spec{Key: 'k', Name: "kebab-case", Apply: unary(ToKebabCase)},
	Spec{Key: 't', Name: "Trim", Apply: unary(ToTrimmed)},
	Spec{Key: 'a', Name: "Capitalize", Apply: unary(ToCapitalized)},
	Spec{Key: 'b', Name: "CapitalCase", Apply: unary(ToCapitalCase)},
	Spec{Key: 'd', Name: "decode-uri", Apply: fallible(DecodeURI)},
	Spec{Key: 'e', Name: "encode-uri", Apply: fallible(EncodeURI)},
	Spec{
		Key:   'S',
		Name:  "slugify",
		Hint:  "Takes one argument: /S '<separator>'",
		Arity: 1,
		Apply: applySlug,
	},
	Spec{
		Key:      'R',
		Name:     "replace",
		Hint:     "Takes two arguments: /R '<substring>' '<replacement>'",
		Arity:    2,
		Required: 1,
		Apply:    applyReplace,
	},
	Spec{
		Key:      'F',
		Name:     "file-name",
		Hint:     "Takes two arguments: /F '<filename>' '<extension?>'",
		Arity:    2,
		Required: 1,
		Apply:    applyFilename,
	},
)

// All returns every registered transform in registry order.
// The returned slice is a copy and may be modified by the caller.
func All() []Spec {
	out := make([]Spec, len(registry.specs))
	copy(out, registry.specs)
	return out
}

// Lookup returns the transform registered under key.
func Lookup(key rune) (Spec, bool) {
	i, ok := registry.index[key]
	if !ok {
		return Spec{}, false
	}
	return registry.specs[i], true
}

// Len returns the number of registered transforms.
func Len() int {
	return len(registry.specs)
}
