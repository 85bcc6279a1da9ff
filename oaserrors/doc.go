// Package oaserrors provides structured error types for rad2oas.
//
// Import path: github.com/erraggy/rad2oas/oaserrors
//
// The types enable programmatic error handling via [errors.Is] and [errors.As].
//
// # Error Types
//
//   - [ParseError]: the RAD source could not be read, decoded or failed structural checks
//   - [ConversionError]: conversion finished but was rejected (strict mode)
//   - [ValidationError]: a produced OpenAPI document failed validation
//   - [ConfigError]: invalid options or inputs
//
// # Sentinel Errors
//
// Each error type matches its sentinel with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrConversion]: Matches any [ConversionError]
//   - [ErrValidation]: Matches any [ValidationError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Example
//
//	_, err := converter.ConvertWithOptions(converter.WithFilePath("restapidoc.json"))
//	var parseErr *oaserrors.ParseError
//	if errors.As(err, &parseErr) {
//		for _, v := range parseErr.Violations {
//			fmt.Println(v)
//		}
//	}
package oaserrors
