// Package openapi models the OpenAPI 3.0.1 documents produced by rad2oas.
//
// The model covers only what a RAD conversion emits: info, tags, paths with
// operations, parameters, responses and request bodies, and component schemas.
// Every mapping is an [OrderedMap], so serialized output follows insertion order
// and two conversions of the same input produce identical bytes.
//
// # Serialization
//
// [Marshal] writes JSON (compact unless indent is requested) or YAML. YAML output
// keeps the JSON key order and uses block style:
//
//	data, err := openapi.Marshal(doc, openapi.FormatFromPath("openapi.yaml"), false)
package openapi
