package mcpserver

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/erraggy/rad2oas/internal/testutil"
	"github.com/erraggy/rad2oas/openapi"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// duplicateVerbRAD declares GET /user.json twice so conversion records a warning.
const duplicateVerbRAD = `{
  "objects": [],
  "apis": [
    {
      "name": "user services",
      "description": "Manage users",
      "methods": [
        {"path": "/user.json", "verb": "GET", "description": "List users", "pathparameters": [], "queryparameters": [], "apierrors": [], "response": {"object": null}},
        {"path": "/user.json", "verb": "get", "description": "List users again", "pathparameters": [], "queryparameters": [], "apierrors": [], "response": {"object": null}}
      ]
    }
  ]
}`

func TestConvertTool_InlineDocument(t *testing.T) {
	radCache.reset()
	input := convertInput{RAD: sourceInput{Content: testutil.SampleRADJSON}}

	result, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, result)

	assert.True(t, output.Success)
	assert.Empty(t, output.WrittenTo)
	assert.Equal(t, openapi.DocumentStats{PathCount: 2, OperationCount: 4, SchemaCount: 1, TagCount: 1}, output.Stats)
	require.Equal(t, 1, output.IssueCount)
	assert.Equal(t, "info", output.Issues[0].Severity)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(output.Document), &doc))
	assert.Equal(t, "3.0.1", doc["openapi"])
	info := doc["info"].(map[string]any)
	assert.Equal(t, openapi.DefaultTitle, info["title"])
	assert.Equal(t, openapi.DefaultAPIVersion, info["version"])
	assert.NotContains(t, output.Document, "\n", "JSON is compact unless pretty is set")
}

func TestConvertTool_TitleVersionAndPretty(t *testing.T) {
	radCache.reset()
	input := convertInput{
		RAD:        sourceInput{Content: testutil.SampleRADJSON},
		Title:      "Cytomine Core",
		APIVersion: "2.0.0",
		Pretty:     true,
	}

	_, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Contains(t, output.Document, "\n  \"info\": {")
	assert.Contains(t, output.Document, `"title": "Cytomine Core"`)
	assert.Contains(t, output.Document, `"version": "2.0.0"`)
}

func TestConvertTool_YAMLFormat(t *testing.T) {
	radCache.reset()
	input := convertInput{RAD: sourceInput{Content: testutil.SampleRADJSON}, Format: "yaml"}

	_, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(output.Document, "openapi: 3.0.1\n"), output.Document)
}

func TestConvertTool_ServerDefaultFormat(t *testing.T) {
	radCache.reset()
	withConfig(t, func(c *serverConfig) { c.Format = openapi.FormatYAML })

	_, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, convertInput{RAD: sourceInput{Content: testutil.SampleRADJSON}})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(output.Document, "openapi: "))
}

func TestConvertTool_OutputFile(t *testing.T) {
	radCache.reset()
	outPath := filepath.Join(t.TempDir(), "openapi.yaml")
	input := convertInput{
		RAD:    sourceInput{File: testutil.WriteTempFile(t, "restapidoc.json", testutil.SampleRADJSON)},
		Output: outPath,
	}

	_, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.True(t, output.Success)
	assert.Equal(t, outPath, output.WrittenTo)
	assert.Empty(t, output.Document, "document should not be inline when written to file")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "title: Cytomine API", "extension selects YAML")
}

func TestConvertTool_InvalidFormat(t *testing.T) {
	result, _, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, convertInput{
		RAD:    sourceInput{Content: testutil.SampleRADJSON},
		Format: "xml",
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestConvertTool_MissingInput(t *testing.T) {
	result, _, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, convertInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.Contains(t, result.Content[0].(*mcp.TextContent).Text, "exactly one of file or content")
}

func TestConvertTool_MalformedRAD(t *testing.T) {
	radCache.reset()
	result, _, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, convertInput{
		RAD: sourceInput{Content: `{"objects": []}`},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestConvertTool_StrictMode(t *testing.T) {
	radCache.reset()

	_, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, convertInput{
		RAD: sourceInput{Content: duplicateVerbRAD},
	})
	require.NoError(t, err)
	assert.True(t, output.Success, "warnings do not fail a lenient conversion")
	require.Equal(t, 1, output.IssueCount)
	assert.Equal(t, "warning", output.Issues[0].Severity)
	assert.Equal(t, "paths./user.json.get", output.Issues[0].Path)

	strict := true
	result, _, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, convertInput{
		RAD:    sourceInput{Content: duplicateVerbRAD},
		Strict: &strict,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.Contains(t, result.Content[0].(*mcp.TextContent).Text, "strict mode")
}

func TestConvertTool_StrictFromConfig(t *testing.T) {
	radCache.reset()
	withConfig(t, func(c *serverConfig) { c.Strict = true })

	result, _, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, convertInput{
		RAD: sourceInput{Content: duplicateVerbRAD},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestConvertInput_OutputFormat(t *testing.T) {
	tests := []struct {
		name  string
		input convertInput
		want  openapi.Format
	}{
		{name: "explicit format wins", input: convertInput{Format: "json", Output: "out.yaml"}, want: openapi.FormatJSON},
		{name: "output extension", input: convertInput{Output: "out.yml"}, want: openapi.FormatYAML},
		{name: "server default", input: convertInput{}, want: cfg.Format},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.outputFormat()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
