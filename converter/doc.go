// Package converter maps RAD API catalogs onto OpenAPI 3.0.1 documents.
//
// A conversion runs three passes over a fully loaded RAD document: every object
// becomes a component schema, every API group becomes a tag, and every method
// becomes an operation under its path template. Anomalies never abort a run;
// they are recorded as issues on the [ConversionResult] and sent to the
// configured logger, and the affected element falls back to a safe default.
//
// # Quick Start
//
// Convert a file using functional options:
//
//	result, err := converter.ConvertWithOptions(
//		converter.WithFilePath("restapidoc.json"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := converter.WriteResult(result, "openapi.json", openapi.FormatJSON, false); err != nil {
//		log.Fatal(err)
//	}
//
// Or use a reusable Converter instance:
//
//	c := converter.New()
//	c.Title = "My API"
//	result, _ := c.Convert("restapidoc.json")
//
// # Type Mapping
//
// RAD type tokens are matched case-insensitively by [MapType]:
//
//	int, integer        integer (int32)
//	long                integer (int64)
//	bool, boolean       boolean
//	float, double       number
//	string, str, text   string
//	date                string (date)
//	list, array, List<X> array, items from X (string when X is missing)
//	anything else       object, reported as a warning
//
// # Conversion Issues
//
// Issues carry one of two severities:
//
//   - Warning: an unrecognized type token, a duplicate verb on a path (the first
//     method wins), or two objects whose names sanitize to the same schema key
//     (the later object wins)
//   - Info: a field that resolves to an object schema, or a response object that
//     names no known schema
//
// In strict mode any warning turns into an [oaserrors.ConversionError]; the
// result is still returned so callers can inspect it.
//
// # Related Packages
//
//   - [github.com/erraggy/rad2oas/rad] - Read RAD documents
//   - [github.com/erraggy/rad2oas/openapi] - The output model and its serialization
//   - [github.com/erraggy/rad2oas/validator] - Validate converted documents
package converter
