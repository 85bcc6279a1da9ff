package mcpserver

import (
	"context"

	"github.com/erraggy/rad2oas/validator"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type validateInput struct {
	Spec       sourceInput `json:"spec"                  jsonschema:"The OpenAPI document to validate"`
	NoWarnings bool        `json:"no_warnings,omitempty" jsonschema:"Suppress best practice warnings"`
}

type validateIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
	Context string `json:"context,omitempty"`
}

type validateOutput struct {
	Valid        bool            `json:"valid"`
	ErrorCount   int             `json:"error_count"`
	WarningCount int             `json:"warning_count"`
	Errors       []validateIssue `json:"errors,omitempty"`
	Warnings     []validateIssue `json:"warnings,omitempty"`
}

func handleValidate(ctx context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	if err := input.Spec.check(); err != nil {
		return errResult(err), validateOutput{}, nil
	}

	v := validator.New()
	v.IncludeWarnings = !input.NoWarnings

	var result *validator.ValidationResult
	var err error
	if input.Spec.File != "" {
		result, err = v.ValidateFile(ctx, input.Spec.File)
	} else {
		result, err = v.ValidateBytes(ctx, []byte(input.Spec.Content))
	}
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	output := validateOutput{
		Valid:        result.Valid,
		ErrorCount:   result.ErrorCount,
		WarningCount: result.WarningCount,
	}

	output.Errors = makeSlice[validateIssue](len(result.Errors))
	for _, e := range result.Errors {
		output.Errors = append(output.Errors, validateIssue{Path: e.Path, Message: e.Message, Context: e.Context})
	}
	output.Warnings = makeSlice[validateIssue](len(result.Warnings))
	for _, w := range result.Warnings {
		output.Warnings = append(output.Warnings, validateIssue{Path: w.Path, Message: w.Message, Context: w.Context})
	}

	return nil, output, nil
}
