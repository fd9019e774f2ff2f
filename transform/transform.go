package transform

import (
	"strings"

	"github.com/erraggy/casekit/internal/naming"
)

// DefaultSlugSeparator is the separator ToSlug uses when none is given.
const DefaultSlugSeparator = "-"

// ToLowerCase converts s to lowercase.
func ToLowerCase(s string) string {
	return naming.Lower(s)
}

// ToUpperCase converts s to uppercase.
func ToUpperCase(s string) string {
	return naming.Upper(s)
}

// ToCamelCase converts s to camelCase.
// Example: "foo_bar-baz" -> "fooBarBaz"
// Example: "Hello World" -> "helloWorld"
func ToCamelCase(s string) string {
	words := naming.SplitWords(s)

	var b strings.Builder
	for i, w := range words {
		if i == 0 {
			b.WriteString(naming.Lower(w))
			continue
		}
		b.WriteString(naming.CapitalizeWord(w))
	}
	return b.String()
}

// ToPascalCase converts s to PascalCase.
// Example: "user_profile" -> "UserProfile"
func ToPascalCase(s string) string {
	var b strings.Builder
	for _, w := range naming.SplitWords(s) {
		b.WriteString(naming.CapitalizeWord(w))
	}
	return b.String()
}

func isDashOrSpace(r rune) bool { return r == '-' || naming.IsSpace(r) }

func isSpaceOrUnderscore(r rune) bool { return r == '_' || naming.IsSpace(r) }

// ToSnakeCase converts s to snake_case.
// Example: "Hello World-Test" -> "hello_world_test"
func ToSnakeCase(s string) string {
	return naming.Delimit(s, "_", isDashOrSpace)
}

// ToKebabCase converts s to kebab-case.
// Example: "fooBarBAZ" -> "foo-bar-baz"
func ToKebabCase(s string) string {
	return naming.Delimit(s, "-", isSpaceOrUnderscore)
}

// ToTrimmed strips leading and trailing whitespace.
func ToTrimmed(s string) string {
	return naming.TrimSpace(s)
}

func isWordChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

// ToCapitalized uppercases every word character ([a-zA-Z_]) that starts the
// string or follows a non-word character. All other characters are left as
// they are, so this is not title case: "hELLO wORLD" -> "HELLO WORLD".
func ToCapitalized(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevWord := false
	for _, r := range s {
		word := isWordChar(r)
		if word && !prevWord && r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		b.WriteRune(r)
		prevWord = word
	}
	return b.String()
}

// ToCapitalCase splits s before uppercase letters and at non-letter to letter
// boundaries, capitalizes every piece and joins the pieces with a space.
// Example: "helloWorld" -> "Hello World"
func ToCapitalCase(s string) string {
	pieces := naming.SplitCapital(s)
	for i, p := range pieces {
		pieces[i] = naming.CapitalizeWord(p)
	}
	return strings.Join(pieces, " ")
}

// ToSlug converts s into a slug joined by sep.
// Example: ToSlug("Hello World!!", "_") -> "hello_world"
func ToSlug(s, sep string) string {
	return naming.Delimit(s, sep, isSpaceOrUnderscore)
}

// ToReplaced replaces every literal occurrence of substring with replacement.
// No pattern syntax is interpreted in either argument.
func ToReplaced(s, substring, replacement string) string {
	return strings.ReplaceAll(s, substring, replacement)
}

// ToFilename kebab-cases name and appends extension, adding the leading dot
// when it is missing. An empty extension leaves a trailing dot.
// Example: ToFilename("My Report", "txt") -> "my-report.txt"
// Example: ToFilename("My Report", "") -> "my-report."
func ToFilename(name, extension string) string {
	base := ToKebabCase(name)
	if !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}
	return base + extension
}
