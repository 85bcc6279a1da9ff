// Package rad reads RAD API catalogs.
//
// A RAD document is a JSON file with two top-level arrays: "objects", the
// resource schemas, and "apis", groups of HTTP methods. The reader loads the
// whole document into memory, checks it against the RAD structure and returns
// the typed [Document].
//
// # Quick Start
//
//	result, err := rad.ParseWithOptions(
//		rad.WithFilePath("restapidoc.json"),
//		rad.WithLogger(rad.NewSlogAdapter(slog.Default())),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%d objects, %d methods\n", result.Stats.ObjectCount, result.Stats.MethodCount)
//
// # Structural Validation
//
// Missing keys are fatal: a field without "type" or a method without "response"
// cannot be converted. With structure validation enabled (the default) the
// document is checked against an embedded JSON Schema and every violation is
// reported at once in an [oaserrors.ParseError].
package rad
