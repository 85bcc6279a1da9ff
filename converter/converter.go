package converter

import (
	"fmt"
	"time"

	"github.com/erraggy/rad2oas/internal/issues"
	"github.com/erraggy/rad2oas/internal/severity"
	"github.com/erraggy/rad2oas/oaserrors"
	"github.com/erraggy/rad2oas/openapi"
	"github.com/erraggy/rad2oas/rad"
)

// Severity indicates the severity level of a conversion issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about conversion choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates input the converter had to guess about or drop
	SeverityWarning = severity.SeverityWarning
	// SeverityCritical indicates input that could not be converted at all
	SeverityCritical = severity.SeverityCritical
)

// ConversionIssue represents a single conversion issue
type ConversionIssue = issues.Issue

// ConversionResult contains the results of converting a RAD document
type ConversionResult struct {
	// Document is the produced OpenAPI document
	Document *openapi.Document
	// SourcePath is the RAD source path, or a label such as "<stdin>"
	SourcePath string
	// SourceSize is the size of the RAD source in bytes (0 when converting a document)
	SourceSize int64
	// LoadTime is the time taken to read the RAD source
	LoadTime time.Duration
	// Stats counts the paths, operations, schemas and tags of Document
	Stats openapi.DocumentStats
	// Issues contains all conversion issues in the order they were found
	Issues []ConversionIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// CriticalCount is the total number of critical issues
	CriticalCount int
	// Success is true if conversion completed without critical issues
	Success bool
}

// HasCriticalIssues returns true if there are any critical issues
func (r *ConversionResult) HasCriticalIssues() bool {
	return r.CriticalCount > 0
}

// HasWarnings returns true if there are any warnings
func (r *ConversionResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// Converter converts RAD documents to OpenAPI 3.0.1
type Converter struct {
	// StrictMode causes conversion to fail on any warning. The result is still returned.
	StrictMode bool
	// IncludeInfo determines whether to include informational messages
	IncludeInfo bool
	// ValidateStructure checks RAD sources against the RAD structure before converting.
	// It applies to Convert only; parsed documents are taken as they are.
	ValidateStructure bool
	// Title is the info.title of produced documents. Defaults to "Cytomine API".
	Title string
	// APIVersion is the info.version of produced documents. Defaults to "1.0.0".
	APIVersion string
	// Logger receives diagnostics. Nil means no logging.
	Logger rad.Logger
}

// New creates a new Converter instance with default settings
func New() *Converter {
	return &Converter{
		StrictMode:        false,
		IncludeInfo:       true,
		ValidateStructure: true,
		Title:             openapi.DefaultTitle,
		APIVersion:        openapi.DefaultAPIVersion,
	}
}

// Convert is a convenience function that converts a RAD file with default
// settings. It's equivalent to creating a Converter with New() and calling
// Convert().
//
// Example:
//
//	result, err := converter.Convert("restapidoc.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, issue := range result.Issues {
//	    fmt.Println(issue)
//	}
func Convert(path string) (*ConversionResult, error) {
	return New().Convert(path)
}

// ConvertParsed is a convenience function that converts an already-parsed
// RAD document with default settings.
//
// Example:
//
//	parseResult, _ := rad.ParseWithOptions(rad.WithFilePath("restapidoc.json"))
//	result, err := converter.ConvertParsed(*parseResult)
func ConvertParsed(parseResult rad.ParseResult) (*ConversionResult, error) {
	return New().ConvertParsed(parseResult)
}

// Convert reads the RAD document at path and converts it
func (c *Converter) Convert(path string) (*ConversionResult, error) {
	p := &rad.Parser{ValidateStructure: c.ValidateStructure, Logger: c.Logger}
	parseResult, err := p.Parse(path)
	if err != nil {
		return nil, err
	}
	return c.ConvertParsed(*parseResult)
}

// ConvertParsed converts an already-parsed RAD document, carrying over its
// source information
func (c *Converter) ConvertParsed(parseResult rad.ParseResult) (*ConversionResult, error) {
	result, err := c.ConvertDocument(parseResult.Document)
	if result != nil {
		result.SourcePath = parseResult.SourcePath
		result.SourceSize = parseResult.SourceSize
		result.LoadTime = parseResult.LoadTime
	}
	return result, err
}

// ConvertDocument converts an in-memory RAD document
func (c *Converter) ConvertDocument(doc *rad.Document) (*ConversionResult, error) {
	if doc == nil {
		return nil, &oaserrors.ConversionError{Message: "document is nil"}
	}

	cv := newConversion(c.Logger)

	schemas, names := cv.buildSchemas(doc.Objects)
	tags, paths := cv.buildPaths(doc.APIs, names)

	out := openapi.NewDocument(orDefault(c.Title, openapi.DefaultTitle), orDefault(c.APIVersion, openapi.DefaultAPIVersion))
	out.Tags = tags
	out.Paths = paths
	out.Components.Schemas = schemas

	result := &ConversionResult{
		Document: out,
		Stats:    out.Stats(),
		Issues:   cv.issues,
	}
	c.updateCounts(result)
	result.Success = result.CriticalCount == 0

	// Filter info messages if not included
	if !c.IncludeInfo {
		result.Issues = issues.Filter(result.Issues, SeverityWarning)
		result.InfoCount = 0
	}

	cv.logger.Debug("converted RAD document",
		"schemas", result.Stats.SchemaCount,
		"paths", result.Stats.PathCount,
		"operations", result.Stats.OperationCount,
		"warnings", result.WarningCount)

	// In strict mode, fail on any warning
	if c.StrictMode && (result.CriticalCount > 0 || result.WarningCount > 0) {
		return result, &oaserrors.ConversionError{
			Message: fmt.Sprintf("conversion failed in strict mode: %d critical issue(s), %d warning(s)",
				result.CriticalCount, result.WarningCount),
		}
	}

	return result, nil
}

// updateCounts updates the issue counts in the result
func (c *Converter) updateCounts(result *ConversionResult) {
	counts := issues.Count(result.Issues)
	result.InfoCount = counts.Info
	result.WarningCount = counts.Warning
	result.CriticalCount = counts.Critical
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
