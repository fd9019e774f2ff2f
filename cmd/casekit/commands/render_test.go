package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTable(t *testing.T) {
	headers := []string{"KEY", "NAME", "USAGE"}
	rows := [][]string{
		{"l", "lowercase", "/l"},
		{"S", "slugify", "/S '<separator>'"},
	}

	tests := []struct {
		name  string
		rows  [][]string
		quiet bool
		want  string
	}{
		{
			name: "padded with headers",
			rows: rows,
			want: "KEY  NAME       USAGE\n" +
				"l    lowercase  /l\n" +
				"S    slugify    /S '<separator>'\n",
		},
		{
			name:  "quiet is tab separated",
			rows:  rows,
			quiet: true,
			want:  "l\tlowercase\t/l\nS\tslugify\t/S '<separator>'\n",
		},
		{
			name: "no rows renders nothing",
			rows: nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			RenderTable(&buf, headers, tt.rows, tt.quiet)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
