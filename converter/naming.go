package converter

import "strings"

// schemaRefPrefix is where component schemas live in an OpenAPI 3 document.
const schemaRefPrefix = "#/components/schemas/"

var schemaNameReplacer = strings.NewReplacer(" ", "", "[", "", "]", "")

// SanitizeSchemaName turns a RAD object name into a component schema key by
// removing every space and square bracket.
func SanitizeSchemaName(name string) string {
	return schemaNameReplacer.Replace(name)
}

// SchemaRef returns the reference to the component schema with the given
// (already sanitized) name.
func SchemaRef(name string) string {
	return schemaRefPrefix + name
}
