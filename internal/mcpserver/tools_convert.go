package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/rad2oas/converter"
	"github.com/erraggy/rad2oas/openapi"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type convertInput struct {
	RAD        sourceInput `json:"rad"                   jsonschema:"The RAD document to convert"`
	Output     string      `json:"output,omitempty"      jsonschema:"File path to write the OpenAPI document. If omitted the document is returned inline."`
	Format     string      `json:"format,omitempty"      jsonschema:"Output format: json or yaml. Defaults to the output file extension and then RAD2OAS_FORMAT."`
	Title      string      `json:"title,omitempty"       jsonschema:"info.title of the generated document"`
	APIVersion string      `json:"api_version,omitempty" jsonschema:"info.version of the generated document"`
	Pretty     bool        `json:"pretty,omitempty"      jsonschema:"Indent JSON output"`
	Strict     *bool       `json:"strict,omitempty"      jsonschema:"Fail when the conversion produces warnings"`
}

type convertIssue struct {
	Severity string `json:"severity"`
	Path     string `json:"path"`
	Message  string `json:"message"`
	Context  string `json:"context,omitempty"`
}

type convertOutput struct {
	Success    bool                  `json:"success"`
	IssueCount int                   `json:"issue_count"`
	Issues     []convertIssue        `json:"issues,omitempty"`
	Stats      openapi.DocumentStats `json:"stats"`
	WrittenTo  string                `json:"written_to,omitempty"`
	Document   string                `json:"document,omitempty"`
}

func handleConvert(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	format, err := input.outputFormat()
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	parsed, err := input.RAD.resolveRAD()
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	strict := cfg.Strict
	if input.Strict != nil {
		strict = *input.Strict
	}

	result, err := converter.ConvertWithOptions(
		converter.WithParsed(*parsed),
		converter.WithTitle(orDefault(input.Title, cfg.Title)),
		converter.WithAPIVersion(orDefault(input.APIVersion, cfg.APIVersion)),
		converter.WithStrictMode(strict),
	)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	output := convertOutput{
		Success:    result.Success,
		IssueCount: len(result.Issues),
		Stats:      result.Stats,
	}

	output.Issues = makeSlice[convertIssue](len(result.Issues))
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, convertIssue{
			Severity: issue.Severity.String(),
			Path:     issue.Path,
			Message:  issue.Message,
			Context:  issue.Context,
		})
	}

	if input.Output != "" {
		if err := converter.WriteResult(result, input.Output, format, input.Pretty); err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), convertOutput{}, nil
		}
		output.WrittenTo = input.Output
		return nil, output, nil
	}

	data, err := converter.MarshalResult(result, format, input.Pretty)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}
	output.Document = string(data)
	return nil, output, nil
}

// outputFormat resolves the format from the explicit field, then the output
// file extension, then the server default.
func (in convertInput) outputFormat() (openapi.Format, error) {
	switch {
	case in.Format != "":
		return openapi.ParseFormat(in.Format)
	case in.Output != "":
		return openapi.FormatFromPath(in.Output), nil
	default:
		return cfg.Format, nil
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
