package converter

import (
	"strings"

	"github.com/erraggy/rad2oas/openapi"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Formats produced by MapType.
const (
	FormatInt32 = "int32"
	FormatInt64 = "int64"
	FormatDate  = "date"
)

// MapType maps a RAD type token to an OpenAPI type and format.
// Matching is case-insensitive. Unrecognized tokens, including the empty
// string, map to "object". MapType never fails.
func MapType(token string) (typ, format string) {
	typ, format, _ = lookupType(token)
	return typ, format
}

// lookupType is MapType that also reports whether token was recognized.
func lookupType(token string) (typ, format string, known bool) {
	// Lower-cased, not case-folded: "ſtring" is not "string".
	lower := cases.Lower(language.Und).String(token)

	switch lower {
	case "int", "integer":
		return openapi.TypeInteger, FormatInt32, true
	case "long":
		return openapi.TypeInteger, FormatInt64, true
	case "bool", "boolean":
		return openapi.TypeBoolean, "", true
	case "float", "double":
		return openapi.TypeNumber, "", true
	case "string", "str", "text":
		return openapi.TypeString, "", true
	case "date":
		return openapi.TypeString, FormatDate, true
	case "list", "array":
		return openapi.TypeArray, "", true
	}
	if strings.Contains(lower, "list<") {
		return openapi.TypeArray, "", true
	}
	return openapi.TypeObject, "", false
}

// innerToken returns the text between the first '<' and the last '>' of a
// parameterized type such as "List<Long>". ok is false unless both brackets
// are present. When the last '>' precedes the first '<' the inner token is empty.
func innerToken(token string) (inner string, ok bool) {
	open := strings.Index(token, "<")
	closing := strings.LastIndex(token, ">")
	if open < 0 || closing < 0 {
		return "", false
	}
	if closing <= open {
		return "", true
	}
	return token[open+1 : closing], true
}
