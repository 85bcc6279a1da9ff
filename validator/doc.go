// Package validator checks OpenAPI 3.0 documents produced by rad2oas.
//
// Validation is delegated to github.com/getkin/kin-openapi: the document is
// loaded with an openapi3.Loader and checked with its Validate method. A
// document that fails validation is reported through ValidationResult rather
// than as an error; errors are reserved for input that cannot be read or
// loaded at all.
//
// Validation never changes a document. The converter writes its output first
// and validation runs on the written bytes.
//
// # Best Practice Warnings
//
// With IncludeWarnings set, the validator also reports:
//
//   - operations with neither a summary nor a description
//   - tags declared more than once (RAD documents may repeat API group names)
//
// Warnings never make a document invalid.
//
// # Quick Start
//
//	v := validator.New()
//	result, err := v.ValidateFile(ctx, "openapi.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !result.Valid {
//		for _, e := range result.Errors {
//			fmt.Println(e)
//		}
//	}
package validator
