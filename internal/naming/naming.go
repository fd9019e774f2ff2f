package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lower converts s to lowercase using full Unicode case mapping.
// Unlike strings.ToLower this handles context-sensitive mappings such as the
// Greek final sigma.
func Lower(s string) string {
	if s == "" {
		return ""
	}
	// Casers are stateful, so one is created per call.
	return cases.Lower(language.Und).String(s)
}

// Upper converts s to uppercase using full Unicode case mapping.
// Example: "straße" -> "STRASSE"
func Upper(s string) string {
	if s == "" {
		return ""
	}
	return cases.Upper(language.Und).String(s)
}

// CapitalizeWord uppercases the first character of w and lowercases the rest.
// Example: "hELLO" -> "Hello"
func CapitalizeWord(w string) string {
	if w == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(w)
	return Upper(w[:size]) + Lower(w[size:])
}

// IsSpace reports whether r is whitespace in the sense of a JavaScript \s
// class: Unicode White_Space plus the byte order mark, without NEL (U+0085).
func IsSpace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

// TrimSpace removes leading and trailing whitespace as defined by IsSpace.
func TrimSpace(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

func isLowerASCII(r rune) bool { return r >= 'a' && r <= 'z' }

func isUpperASCII(r rune) bool { return r >= 'A' && r <= 'Z' }

func isLetterASCII(r rune) bool { return isLowerASCII(r) || isUpperASCII(r) }

func isDigitASCII(r rune) bool { return r >= '0' && r <= '9' }

// SplitWords splits s into words for camelCase and PascalCase conversion.
// Runs of '-' and '_' become word breaks, a break is inserted between an ASCII
// lowercase letter and a following ASCII uppercase letter, and the result is
// split on whitespace.
// Example: "fooBar_baz-qux" -> ["foo", "Bar", "baz", "qux"]
func SplitWords(s string) []string {
	var b strings.Builder
	b.Grow(len(s) + 8)

	prev := rune(-1)
	inSeparator := false
	for _, r := range s {
		if r == '-' || r == '_' {
			if !inSeparator {
				b.WriteByte(' ')
				inSeparator = true
			}
			prev = r
			continue
		}
		inSeparator = false
		if isLowerASCII(prev) && isUpperASCII(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		prev = r
	}

	return strings.FieldsFunc(b.String(), IsSpace)
}

// SplitCapital splits s for CapitalCase conversion. A new piece starts before
// every ASCII uppercase letter and before an ASCII letter that follows a
// non-letter. No split happens at the very start or end of s, and the
// characters between pieces are kept (a piece may end with spaces).
// Example: "helloWorld 2go" -> ["hello", "World ", "2", "go"]
func SplitCapital(s string) []string {
	runes := []rune(s)
	if len(runes) == 0 {
		return []string{""}
	}

	var pieces []string
	start := 0
	for i := 1; i < len(runes); i++ {
		cur, prev := runes[i], runes[i-1]
		if isUpperASCII(cur) || (!isLetterASCII(prev) && isLetterASCII(cur)) {
			pieces = append(pieces, string(runes[start:i]))
			start = i
		}
	}
	return append(pieces, string(runes[start:]))
}

// Delimit joins the words of s with sep. It is the shared pipeline behind
// snake_case, kebab-case and slugs:
//
//  1. sep is inserted between an ASCII lowercase and a following ASCII uppercase letter
//  2. every run of characters matching isBreak becomes a single sep
//  3. the result is lowercased
//  4. characters other than [a-z0-9] and the characters of sep are removed
//  5. repeated seps collapse into one
//  6. one leading and one trailing sep are trimmed
//
// Example: Delimit("Hello World-Test", "_", ...) -> "hello_world_test"
func Delimit(s, sep string, isBreak func(rune) bool) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s) + 8)

	prev := rune(-1)
	inBreak := false
	for _, r := range s {
		if isBreak(r) {
			if !inBreak {
				b.WriteString(sep)
				inBreak = true
			}
			prev = r
			continue
		}
		inBreak = false
		if isLowerASCII(prev) && isUpperASCII(r) {
			b.WriteString(sep)
		}
		b.WriteRune(r)
		prev = r
	}

	lowered := Lower(b.String())

	b.Reset()
	for _, r := range lowered {
		if isLowerASCII(r) || isDigitASCII(r) || strings.ContainsRune(sep, r) {
			b.WriteRune(r)
		}
	}
	result := b.String()

	if sep == "" {
		return result
	}
	double := sep + sep
	for strings.Contains(result, double) {
		result = strings.ReplaceAll(result, double, sep)
	}
	result = strings.TrimPrefix(result, sep)
	return strings.TrimSuffix(result, sep)
}
