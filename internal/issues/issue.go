// Package issues provides the issue type shared by the converter and validator.
package issues

import (
	"fmt"

	"github.com/erraggy/rad2oas/internal/severity"
)

// Issue represents a single diagnostic produced while converting or validating.
type Issue struct {
	// Path is the location in the produced document, for example
	// "components.schemas.Project.properties.owner" or "paths./project.json.get".
	Path string `json:"path"`
	// Message is a human-readable description of the issue
	Message string `json:"message"`
	// Severity indicates the severity level of the issue
	Severity severity.Severity `json:"severity"`
	// Value is the offending input value, when there is one (e.g. an unknown type token)
	Value any `json:"value,omitempty"`
	// Context provides additional information about the issue (optional)
	Context string `json:"context,omitempty"`
}

// String returns a formatted string representation of the issue.
// The leading symbol depends on severity:
// "✗" for Error or Critical, "⚠" for Warning, "ℹ" for Info.
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError, severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	result := fmt.Sprintf("%s %s: %s", symbol, i.Path, i.Message)
	if i.Context != "" {
		result += fmt.Sprintf("\n    Context: %s", i.Context)
	}
	return result
}

// Counts tallies issues per severity.
type Counts struct {
	Info     int
	Warning  int
	Error    int
	Critical int
}

// Count returns per-severity totals for the given issues.
func Count(list []Issue) Counts {
	var c Counts
	for _, issue := range list {
		switch issue.Severity {
		case severity.SeverityInfo:
			c.Info++
		case severity.SeverityWarning:
			c.Warning++
		case severity.SeverityError:
			c.Error++
		case severity.SeverityCritical:
			c.Critical++
		}
	}
	return c
}

// Filter returns the issues at or above min, preserving order.
func Filter(list []Issue, min severity.Severity) []Issue {
	filtered := make([]Issue, 0, len(list))
	for _, issue := range list {
		if issue.Severity.AtLeast(min) {
			filtered = append(filtered, issue)
		}
	}
	return filtered
}
