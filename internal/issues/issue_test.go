package issues

import (
	"testing"

	"github.com/erraggy/rad2oas/internal/severity"
	"github.com/stretchr/testify/assert"
)

func TestIssueString(t *testing.T) {
	tests := []struct {
		name        string
		issue       Issue
		contains    []string
		notContains []string
	}{
		{
			name: "warning severity",
			issue: Issue{
				Path:     "components.schemas.Project.properties.owner",
				Message:  `unrecognized type "User", using object`,
				Severity: severity.SeverityWarning,
			},
			contains:    []string{"⚠", "components.schemas.Project.properties.owner", "unrecognized type"},
			notContains: []string{"Context:"},
		},
		{
			name: "info severity with context",
			issue: Issue{
				Path:     "paths./project.json.get.responses.200",
				Message:  "response object is not a known schema",
				Severity: severity.SeverityInfo,
				Context:  "Project list",
			},
			contains: []string{"ℹ", "paths./project.json.get.responses.200", "Context: Project list"},
		},
		{
			name: "error severity",
			issue: Issue{
				Path:     "paths./user/{id}.json",
				Message:  "path parameter must be required",
				Severity: severity.SeverityError,
			},
			contains: []string{"✗", "path parameter must be required"},
		},
		{
			name: "critical severity",
			issue: Issue{
				Path:     "document",
				Message:  "unreadable",
				Severity: severity.SeverityCritical,
			},
			contains: []string{"✗", "document: unreadable"},
		},
		{
			name:     "unknown severity",
			issue:    Issue{Path: "x", Message: "y", Severity: severity.Severity(42)},
			contains: []string{"? x: y"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.issue.String()
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, got, s)
			}
		})
	}
}

func TestCountAndFilter(t *testing.T) {
	list := []Issue{
		{Path: "a", Severity: severity.SeverityInfo},
		{Path: "b", Severity: severity.SeverityWarning},
		{Path: "c", Severity: severity.SeverityWarning},
		{Path: "d", Severity: severity.SeverityError},
		{Path: "e", Severity: severity.SeverityCritical},
	}

	assert.Equal(t, Counts{Info: 1, Warning: 2, Error: 1, Critical: 1}, Count(list))
	assert.Equal(t, Counts{}, Count(nil))

	filtered := Filter(list, severity.SeverityWarning)
	assert.Len(t, filtered, 4)
	assert.Equal(t, "b", filtered[0].Path)
	assert.Empty(t, Filter(nil, severity.SeverityInfo))
}
