// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes rad2oas conversion and validation as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/rad2oas"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `rad2oas MCP server: converts Cytomine RAD (restapidoc.json) documents to OpenAPI 3.0.1 and validates OpenAPI documents.

Configuration: defaults are read from RAD2OAS_* environment variables set in your MCP client config.

Key settings:
- RAD2OAS_STRICT (default: false): fail conversions that produce warnings
- RAD2OAS_TITLE (default: Cytomine API): info.title of converted documents
- RAD2OAS_API_VERSION (default: 1.0.0): info.version of converted documents
- RAD2OAS_FORMAT (default: json): output format, json or yaml
- RAD2OAS_CACHE_ENABLED (default: true): cache parsed RAD inputs
- RAD2OAS_CACHE_TTL (default: 15m): lifetime of cached RAD inputs`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "rad2oas", Version: rad2oas.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert a Cytomine RAD document (restapidoc.json) to an OpenAPI 3.0.1 document. Provide the RAD input as a file path or inline content. Returns conversion issues, document statistics, and either the converted document inline or the path it was written to. Strict mode, title, API version, and format defaults are configurable via RAD2OAS_* env vars.",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Validate an OpenAPI 3.x document (JSON or YAML) such as one produced by convert. Returns errors with locations and best practice warnings.",
	}, handleValidate)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
