package converter

import (
	"fmt"

	"github.com/erraggy/rad2oas/openapi"
	"github.com/erraggy/rad2oas/rad"
)

// conversion is the per-run diagnostics sink shared by the passes.
type conversion struct {
	logger rad.Logger
	issues []ConversionIssue
}

func newConversion(logger rad.Logger) *conversion {
	return &conversion{
		logger: rad.OrNop(logger),
		issues: make([]ConversionIssue, 0),
	}
}

func (cv *conversion) addIssue(severity Severity, path, message string, value any) {
	cv.issues = append(cv.issues, ConversionIssue{
		Path:     path,
		Message:  message,
		Severity: severity,
		Value:    value,
	})
}

func (cv *conversion) addIssueWithContext(severity Severity, path, message, context string) {
	cv.issues = append(cv.issues, ConversionIssue{
		Path:     path,
		Message:  message,
		Severity: severity,
		Context:  context,
	})
}

// mapType is MapType that reports unrecognized tokens.
func (cv *conversion) mapType(token, path string) (typ, format string) {
	typ, format, known := lookupType(token)
	if !known {
		cv.addIssue(SeverityWarning, path,
			fmt.Sprintf("unrecognized type token %q, using %s", token, openapi.TypeObject), token)
		cv.logger.Warn("unrecognized type token", "token", token, "path", path)
	}
	return typ, format
}

// typeSchema builds the type, format and, for arrays, items of a schema.
func (cv *conversion) typeSchema(token, path string) *openapi.Schema {
	typ, format := cv.mapType(token, path)
	schema := &openapi.Schema{Type: typ, Format: format}
	if typ == openapi.TypeArray {
		schema.Items = cv.itemsSchema(token, path+".items")
	}
	return schema
}

// itemsSchema resolves the element type of an array token. "List<Integer>"
// yields integer items; a token without both angle brackets yields string items.
func (cv *conversion) itemsSchema(token, path string) *openapi.Schema {
	inner, ok := innerToken(token)
	if !ok {
		return &openapi.Schema{Type: openapi.TypeString}
	}
	return cv.typeSchema(inner, path)
}
