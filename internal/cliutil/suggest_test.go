package cliutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosestMatch(t *testing.T) {
	commands := []string{"convert", "validate", "mcp", "version", "help"}

	tests := []struct {
		input string
		want  string
	}{
		{"valiate", "validate"},
		{"validat", "validate"},
		{"conert", "convert"},
		{"convrt", "convert"},
		{"mpc", "mcp"},
		{"versio", "version"},
		{"hep", "help"},
		{"xyz", ""},
		{"foobar", ""},
		{"validatation", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ClosestMatch(tt.input, commands, 2))
		})
	}
}

func TestLevenshtein(t *testing.T) {
	assert.Equal(t, 0, levenshtein("", ""))
	assert.Equal(t, 3, levenshtein("", "abc"))
	assert.Equal(t, 1, levenshtein("convert", "convrt"))
	assert.Equal(t, 2, levenshtein("mcp", "mpc"))
	assert.Equal(t, 1, levenshtein("é", "e"))
}
