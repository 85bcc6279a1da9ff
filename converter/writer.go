package converter

import (
	"fmt"
	"os"

	"github.com/erraggy/rad2oas/oaserrors"
	"github.com/erraggy/rad2oas/openapi"
)

// MarshalResult serializes the converted document in the given format.
// JSON is compact unless indent is set.
func MarshalResult(result *ConversionResult, format openapi.Format, indent bool) ([]byte, error) {
	if result == nil || result.Document == nil {
		return nil, &oaserrors.ConversionError{Message: "no document to marshal"}
	}
	return openapi.Marshal(result.Document, format, indent)
}

// WriteResult serializes the converted document and writes it to path.
// The document is fully serialized before the file is touched, so a marshal
// failure leaves no partial output. The file is written with 0600 permissions.
func WriteResult(result *ConversionResult, path string, format openapi.Format, indent bool) error {
	data, err := MarshalResult(result, format, indent)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0600); err != nil { //nolint:gosec // output path is chosen by the caller
		return fmt.Errorf("converter: writing %s: %w", path, err)
	}
	return nil
}
