package oaserrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &ParseError{
			Path:    "restapidoc.json",
			Line:    42,
			Column:  10,
			Message: "invalid JSON",
			Cause:   cause,
		}
		assert.Equal(t, "parse error in restapidoc.json at line 42, column 10: invalid JSON: underlying error", err.Error())
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		assert.Equal(t, "parse error", (&ParseError{}).Error())
	})

	t.Run("Error message with violations", func(t *testing.T) {
		err := &ParseError{
			Path:       "rad.json",
			Message:    "document does not match the RAD structure",
			Violations: []string{"objects.0.fields.1: type is required", "apis: is required"},
		}
		assert.Equal(t,
			"parse error in rad.json: document does not match the RAD structure: objects.0.fields.1: type is required; apis: is required",
			err.Error())
	})

	t.Run("Unwrap and Is", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ParseError{Cause: cause}
		assert.ErrorIs(t, err, cause)
		assert.ErrorIs(t, err, ErrParse)
		assert.NotErrorIs(t, err, ErrConfig)
	})
}

func TestConversionError(t *testing.T) {
	err := &ConversionError{Path: "paths./x.get", Message: "strict mode", Cause: errors.New("boom")}
	assert.Equal(t, "conversion error at paths./x.get: strict mode: boom", err.Error())
	assert.ErrorIs(t, err, ErrConversion)
	assert.Equal(t, "conversion error", (&ConversionError{}).Error())
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Path: "openapi.json", Message: "invalid document"}
	assert.Equal(t, "validation error in openapi.json: invalid document", err.Error())
	assert.ErrorIs(t, err, ErrValidation)
	assert.Nil(t, err.Unwrap())
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Option: "format", Value: "xml", Message: "unsupported output format"}
	assert.Equal(t, "configuration error for format (value: xml): unsupported output format", err.Error())
	assert.ErrorIs(t, err, ErrConfig)
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("converting: %w", &ParseError{Path: "a.json", Message: "bad"})

	var parseErr *ParseError
	assert.True(t, errors.As(wrapped, &parseErr))
	assert.Equal(t, "a.json", parseErr.Path)
	assert.ErrorIs(t, wrapped, ErrParse)
}
