package validator

import (
	"context"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/erraggy/rad2oas/internal/issues"
	"github.com/erraggy/rad2oas/internal/severity"
	"github.com/erraggy/rad2oas/oaserrors"
	"github.com/erraggy/rad2oas/openapi"
	"github.com/getkin/kin-openapi/openapi3"
)

// Severity indicates the severity level of a validation issue
type Severity = severity.Severity

const (
	// SeverityError indicates a violation that makes the document invalid
	SeverityError = severity.SeverityError
	// SeverityWarning indicates a best practice violation or recommendation
	SeverityWarning = severity.SeverityWarning
)

// ValidationIssue represents a single validation issue
type ValidationIssue = issues.Issue

// ValidationResult contains the results of validating an OpenAPI document
type ValidationResult struct {
	// Valid is true if no errors were found (warnings are allowed)
	Valid bool
	// Errors contains all validation errors
	Errors []ValidationIssue
	// Warnings contains best practice warnings, when enabled
	Warnings []ValidationIssue
	// ErrorCount is the total number of errors
	ErrorCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// SourcePath is the validated file, or "<bytes>"
	SourcePath string
	// SourceSize is the size of the validated data in bytes
	SourceSize int64
	// LoadTime is the time taken to load the document
	LoadTime time.Duration
}

// Validator validates OpenAPI documents
type Validator struct {
	// IncludeWarnings determines whether to include best practice warnings
	IncludeWarnings bool
}

// New creates a new Validator instance with default settings
func New() *Validator {
	return &Validator{IncludeWarnings: true}
}

// ValidateFile validates the OpenAPI document (JSON or YAML) at path
func (v *Validator) ValidateFile(ctx context.Context, path string) (*ValidationResult, error) {
	data, err := os.ReadFile(path) //nolint:gosec // validating the user-selected file is the point
	if err != nil {
		return nil, &oaserrors.ValidationError{Path: path, Message: "reading file", Cause: err}
	}
	return v.validate(ctx, data, path)
}

// ValidateBytes validates an OpenAPI document (JSON or YAML) held in memory
func (v *Validator) ValidateBytes(ctx context.Context, data []byte) (*ValidationResult, error) {
	return v.validate(ctx, data, "<bytes>")
}

// ValidateDocument serializes doc to JSON and validates it
func (v *Validator) ValidateDocument(ctx context.Context, doc *openapi.Document) (*ValidationResult, error) {
	if doc == nil {
		return nil, &oaserrors.ValidationError{Message: "document is nil"}
	}
	data, err := openapi.Marshal(doc, openapi.FormatJSON, false)
	if err != nil {
		return nil, &oaserrors.ValidationError{Message: "serializing document", Cause: err}
	}
	return v.validate(ctx, data, "<document>")
}

func (v *Validator) validate(ctx context.Context, data []byte, sourcePath string) (*ValidationResult, error) {
	start := time.Now()
	loader := openapi3.NewLoader()
	loader.Context = ctx
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, &oaserrors.ValidationError{Path: sourcePath, Message: "loading document", Cause: err}
	}

	result := &ValidationResult{
		Errors:     make([]ValidationIssue, 0),
		Warnings:   make([]ValidationIssue, 0),
		SourcePath: sourcePath,
		SourceSize: int64(len(data)),
		LoadTime:   time.Since(start),
	}

	if err := doc.Validate(ctx); err != nil {
		result.Errors = append(result.Errors, ValidationIssue{
			Path:     "document",
			Message:  err.Error(),
			Severity: SeverityError,
		})
	}

	if v.IncludeWarnings {
		result.Warnings = append(result.Warnings, bestPracticeWarnings(doc)...)
	}

	result.ErrorCount = len(result.Errors)
	result.WarningCount = len(result.Warnings)
	result.Valid = result.ErrorCount == 0
	return result, nil
}

// bestPracticeWarnings reports issues kin-openapi accepts but readers of the
// document would trip over. Paths are visited in sorted order.
func bestPracticeWarnings(doc *openapi3.T) []ValidationIssue {
	var warnings []ValidationIssue

	firstTag := make(map[string]int, len(doc.Tags))
	for i, tag := range doc.Tags {
		if tag == nil {
			continue
		}
		if first, seen := firstTag[tag.Name]; seen {
			warnings = append(warnings, ValidationIssue{
				Path:     fmt.Sprintf("tags[%d]", i),
				Message:  fmt.Sprintf("duplicate tag %q", tag.Name),
				Severity: SeverityWarning,
				Context:  fmt.Sprintf("first declared at tags[%d]", first),
			})
			continue
		}
		firstTag[tag.Name] = i
	}

	if doc.Paths == nil {
		return warnings
	}
	pathItems := doc.Paths.Map()
	for _, path := range slices.Sorted(maps.Keys(pathItems)) {
		ops := pathItems[path].Operations()
		for _, method := range slices.Sorted(maps.Keys(ops)) {
			op := ops[method]
			if op.Summary == "" && op.Description == "" {
				warnings = append(warnings, ValidationIssue{
					Path:     fmt.Sprintf("paths.%s.%s", path, strings.ToLower(method)),
					Message:  "operation has neither a summary nor a description",
					Severity: SeverityWarning,
				})
			}
		}
	}
	return warnings
}
