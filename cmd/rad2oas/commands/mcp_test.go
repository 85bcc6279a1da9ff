package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleMCP_Help(t *testing.T) {
	assert.NoError(t, HandleMCP([]string{"--help"}))
}

func TestHandleMCP_RejectsArguments(t *testing.T) {
	err := HandleMCP([]string{"restapidoc.json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "takes no arguments")
}

func TestHandleMCP_UnknownFlag(t *testing.T) {
	err := HandleMCP([]string{"--port", "8080"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flag provided but not defined")
}
