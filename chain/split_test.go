package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantSubject string
		wantSuffix  string
		wantOK      bool
	}{
		{name: "empty query", query: "", wantSubject: "", wantOK: false},
		{name: "no separator", query: "hello world", wantSubject: "hello world", wantOK: false},
		{name: "slash without space", query: "a/b", wantSubject: "a/b", wantOK: false},
		{name: "one separator", query: "Hello World /cS", wantSubject: "Hello World", wantSuffix: "cS", wantOK: true},
		{name: "last separator wins", query: "a /b /c", wantSubject: "a /b", wantSuffix: "c", wantOK: true},
		{name: "empty subject", query: " /c", wantSubject: "", wantSuffix: "c", wantOK: true},
		{name: "empty suffix", query: "a /", wantSubject: "a", wantSuffix: "", wantOK: true},
		{name: "suffix keeps spaces", query: "x /R 'a' 'b'", wantSubject: "x", wantSuffix: "R 'a' 'b'", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, suffix, ok := Split(tt.query)
			assert.Equal(t, tt.wantSubject, subject)
			assert.Equal(t, tt.wantSuffix, suffix)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
