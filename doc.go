// Package rad2oas converts RAD API catalogs into OpenAPI 3.0.1 documents.
//
// A RAD document describes an API as a list of objects (resource field schemas)
// and a list of API groups whose methods declare a path, an HTTP verb, path and
// query parameters, error codes and the object they return. rad2oas maps that
// structure onto OpenAPI so the catalog can be consumed by documentation UIs and
// client generators.
//
// # Packages
//
//   - rad: RAD document model, reader and structural validation
//   - converter: the RAD to OpenAPI mapping (schemas, tags, paths)
//   - openapi: OpenAPI 3.0.1 document model with ordered JSON/YAML output
//   - validator: optional OpenAPI validation of a produced document
//   - oaserrors: structured error types
//
// # Quick Start
//
//	result, err := converter.ConvertWithOptions(
//		converter.WithFilePath("restapidoc.json"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, issue := range result.Issues {
//		fmt.Println(issue)
//	}
//	if err := converter.WriteResult(result, "openapi.json", openapi.FormatJSON, false); err != nil {
//		log.Fatal(err)
//	}
//
// The rad2oas command wraps the same flow; run without arguments it converts
// restapidoc.json into openapi.json in the working directory.
package rad2oas
