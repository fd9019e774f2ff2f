package main

import "testing"

func TestSuggestCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Typos within edit distance 2
		{"rn", "run"},
		{"runn", "run"},
		{"conver", "convert"},
		{"covnert", "convert"},
		{"lst", "list"},
		{"lits", "list"},
		{"mpc", "mcp"},
		{"versio", "version"},
		{"verison", "version"},
		{"hep", "help"},

		// Too far - no suggestion (distance > 2)
		{"xyzzy", ""},
		{"transform", ""},
		{"conversion", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := suggestCommand(tt.input)
			if got != tt.expected {
				t.Errorf("suggestCommand(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestValidCommandsDistinct(t *testing.T) {
	for _, cmd := range validCommands {
		if got := suggestCommand(cmd); got != cmd {
			t.Errorf("suggestCommand(%q) = %q, want exact match", cmd, got)
		}
	}
}
