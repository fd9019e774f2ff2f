package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLowerUpper(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLower string
		wantUpper string
	}{
		{name: "empty string", input: "", wantLower: "", wantUpper: ""},
		{name: "ascii", input: "Hello World", wantLower: "hello world", wantUpper: "HELLO WORLD"},
		{name: "digits and symbols untouched", input: "a1-B2_c3!", wantLower: "a1-b2_c3!", wantUpper: "A1-B2_C3!"},
		{name: "sharp s expands", input: "straße", wantLower: "straße", wantUpper: "STRASSE"},
		{name: "accented", input: "Über", wantLower: "über", wantUpper: "ÜBER"},
		{name: "japanese unchanged", input: "日本語", wantLower: "日本語", wantUpper: "日本語"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantLower, Lower(tt.input), "Lower(%q)", tt.input)
			assert.Equal(t, tt.wantUpper, Upper(tt.input), "Upper(%q)", tt.input)
		})
	}
}

func TestCapitalizeWord(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "single letter", input: "a", want: "A"},
		{name: "mixed case", input: "hELLO", want: "Hello"},
		{name: "all caps", input: "API", want: "Api"},
		{name: "leading digit", input: "2nd", want: "2nd"},
		{name: "unicode first letter", input: "über", want: "Über"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CapitalizeWord(tt.input), "CapitalizeWord(%q)", tt.input)
		})
	}
}

func TestIsSpace(t *testing.T) {
	assert.True(t, IsSpace(' '))
	assert.True(t, IsSpace('\t'))
	assert.True(t, IsSpace('\n'))
	assert.True(t, IsSpace('\u00A0'), "no-break space")
	assert.True(t, IsSpace('\u3000'), "ideographic space")
	assert.True(t, IsSpace('\uFEFF'), "byte order mark")
	assert.False(t, IsSpace('\u0085'), "next line is not whitespace")
	assert.False(t, IsSpace('a'))
	assert.False(t, IsSpace('_'))
}

func TestTrimSpace(t *testing.T) {
	assert.Equal(t, "", TrimSpace(""))
	assert.Equal(t, "", TrimSpace(" \t\n "))
	assert.Equal(t, "a b", TrimSpace("  a b\n"))
	assert.Equal(t, "x", TrimSpace("\uFEFFx "))
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty string", input: "", want: nil},
		{name: "whitespace only", input: "   ", want: nil},
		{name: "separators only", input: "-_-", want: nil},
		{name: "single word", input: "hello", want: []string{"hello"}},
		{name: "spaces", input: "hello   world", want: []string{"hello", "world"}},
		{name: "snake_case", input: "foo_bar", want: []string{"foo", "bar"}},
		{name: "kebab-case", input: "foo-bar", want: []string{"foo", "bar"}},
		{name: "mixed separators", input: "foo_bar-baz", want: []string{"foo", "bar", "baz"}},
		{name: "camelCase", input: "fooBarBaz", want: []string{"foo", "Bar", "Baz"}},
		{name: "PascalCase", input: "FooBar", want: []string{"Foo", "Bar"}},
		{name: "acronym stays together", input: "parseHTTPRequest", want: []string{"parse", "HTTPRequest"}},
		{name: "digit before upper is not a hump", input: "v2Api", want: []string{"v2Api"}},
		{name: "leading and trailing noise", input: "  _foo-Bar_ ", want: []string{"foo", "Bar"}},
		{name: "punctuation kept", input: "hello, world!", want: []string{"hello,", "world!"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitWords(tt.input), "SplitWords(%q)", tt.input)
		})
	}
}

func TestSplitCapital(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty string", input: "", want: []string{""}},
		{name: "single word", input: "hello", want: []string{"hello"}},
		{name: "camelCase", input: "helloWorld", want: []string{"hello", "World"}},
		{name: "no split at start", input: "Hello", want: []string{"Hello"}},
		{name: "every uppercase letter splits", input: "ABC", want: []string{"A", "B", "C"}},
		{name: "space keeps trailing separator", input: "hello world", want: []string{"hello ", "world"}},
		{name: "digit to letter", input: "2go", want: []string{"2", "go"}},
		{name: "letter to digit does not split", input: "go2", want: []string{"go2"}},
		{name: "underscore", input: "foo_bar", want: []string{"foo_", "bar"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitCapital(tt.input), "SplitCapital(%q)", tt.input)
		})
	}
}

func TestDelimit(t *testing.T) {
	dashOrSpace := func(r rune) bool { return r == '-' || IsSpace(r) }
	spaceOrUnderscore := func(r rune) bool { return r == '_' || IsSpace(r) }

	tests := []struct {
		name    string
		input   string
		sep     string
		isBreak func(rune) bool
		want    string
	}{
		{name: "empty string", input: "", sep: "_", isBreak: dashOrSpace, want: ""},
		{name: "snake from words", input: "Hello World-Test", sep: "_", isBreak: dashOrSpace, want: "hello_world_test"},
		{name: "snake from camel", input: "fooBarBaz", sep: "_", isBreak: dashOrSpace, want: "foo_bar_baz"},
		{name: "snake collapses", input: "a__b  c--d", sep: "_", isBreak: dashOrSpace, want: "a_b_c_d"},
		{name: "snake trims", input: " _a_ ", sep: "_", isBreak: dashOrSpace, want: "a"},
		{name: "kebab from camel", input: "fooBarBAZ", sep: "-", isBreak: spaceOrUnderscore, want: "foo-bar-baz"},
		{name: "kebab strips symbols", input: "Hello, World!", sep: "-", isBreak: spaceOrUnderscore, want: "hello-world"},
		{name: "kebab collapses mixed", input: "a - b", sep: "-", isBreak: spaceOrUnderscore, want: "a-b"},
		{name: "custom separator kept", input: "Hello World!!", sep: "_", isBreak: spaceOrUnderscore, want: "hello_world"},
		{name: "multi-rune separator", input: "a b  c", sep: "::", isBreak: spaceOrUnderscore, want: "a::b::c"},
		{name: "empty separator", input: "Hello World", sep: "", isBreak: spaceOrUnderscore, want: "helloworld"},
		{name: "only separators", input: "---", sep: "-", isBreak: spaceOrUnderscore, want: ""},
		{name: "non-ascii removed", input: "café au lait", sep: "-", isBreak: spaceOrUnderscore, want: "caf-au-lait"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Delimit(tt.input, tt.sep, tt.isBreak)
			assert.Equal(t, tt.want, got, "Delimit(%q, %q)", tt.input, tt.sep)
		})
	}
}
