package converter

import (
	"io"

	"github.com/erraggy/rad2oas/internal/options"
	"github.com/erraggy/rad2oas/oaserrors"
	"github.com/erraggy/rad2oas/rad"
)

// Option is a function that configures a conversion operation
type Option func(*convertConfig) error

// convertConfig holds configuration for a conversion operation
type convertConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	parsed   *rad.ParseResult
	document *rad.Document

	strictMode        bool
	includeInfo       bool
	validateStructure bool
	title             string
	apiVersion        string
	logger            rad.Logger
	sourceName        *string
}

// ConvertWithOptions converts a RAD document using functional options.
//
// Example:
//
//	result, err := converter.ConvertWithOptions(
//	    converter.WithFilePath("restapidoc.json"),
//	    converter.WithTitle("Cytomine API"),
//	    converter.WithStrictMode(true),
//	)
func ConvertWithOptions(opts ...Option) (*ConversionResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	c := &Converter{
		StrictMode:        cfg.strictMode,
		IncludeInfo:       cfg.includeInfo,
		ValidateStructure: cfg.validateStructure,
		Title:             cfg.title,
		APIVersion:        cfg.apiVersion,
		Logger:            cfg.logger,
	}

	var result *ConversionResult
	switch {
	case cfg.filePath != nil:
		result, err = c.Convert(*cfg.filePath)
	case cfg.reader != nil:
		var parsed *rad.ParseResult
		parsed, err = rad.ParseWithOptions(
			rad.WithReader(cfg.reader),
			rad.WithStructureValidation(cfg.validateStructure),
			rad.WithLogger(cfg.logger),
		)
		if err != nil {
			return nil, err
		}
		result, err = c.ConvertParsed(*parsed)
	case cfg.parsed != nil:
		result, err = c.ConvertParsed(*cfg.parsed)
	default:
		result, err = c.ConvertDocument(cfg.document)
	}

	if result != nil && cfg.sourceName != nil {
		result.SourcePath = *cfg.sourceName
	}
	return result, err
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*convertConfig, error) {
	cfg := &convertConfig{
		includeInfo:       true,
		validateStructure: true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"converter: must specify an input source (use WithFilePath, WithReader, WithParsed, or WithDocument)",
		"converter: must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil, cfg.parsed != nil, cfg.document != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a RAD file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *convertConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader holding RAD JSON as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *convertConfig) error {
		if r == nil {
			return &oaserrors.ConfigError{Option: "reader", Message: "converter: reader cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithParsed specifies an already-parsed RAD document as the input source
func WithParsed(result rad.ParseResult) Option {
	return func(cfg *convertConfig) error {
		if result.Document == nil {
			return &oaserrors.ConfigError{Option: "parsed", Message: "converter: parse result has no document"}
		}
		cfg.parsed = &result
		return nil
	}
}

// WithDocument specifies an in-memory RAD document as the input source
func WithDocument(doc *rad.Document) Option {
	return func(cfg *convertConfig) error {
		if doc == nil {
			return &oaserrors.ConfigError{Option: "document", Message: "converter: document cannot be nil"}
		}
		cfg.document = doc
		return nil
	}
}

// WithStrictMode enables or disables strict mode (fail on warnings)
// Default: false
func WithStrictMode(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}

// WithIncludeInfo enables or disables informational messages
// Default: true
func WithIncludeInfo(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.includeInfo = enabled
		return nil
	}
}

// WithStructureValidation enables or disables the structural check of RAD sources
// Default: true
func WithStructureValidation(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.validateStructure = enabled
		return nil
	}
}

// WithTitle sets info.title of the produced document
// Default: "Cytomine API"
func WithTitle(title string) Option {
	return func(cfg *convertConfig) error {
		if title == "" {
			return &oaserrors.ConfigError{Option: "title", Message: "converter: title cannot be empty"}
		}
		cfg.title = title
		return nil
	}
}

// WithAPIVersion sets info.version of the produced document
// Default: "1.0.0"
func WithAPIVersion(version string) Option {
	return func(cfg *convertConfig) error {
		if version == "" {
			return &oaserrors.ConfigError{Option: "api-version", Message: "converter: API version cannot be empty"}
		}
		cfg.apiVersion = version
		return nil
	}
}

// WithLogger sets a structured logger for diagnostics during conversion.
// By default, no logging is performed.
func WithLogger(l rad.Logger) Option {
	return func(cfg *convertConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithSourceName overrides SourcePath in the result, e.g. "<stdin>".
func WithSourceName(name string) Option {
	return func(cfg *convertConfig) error {
		cfg.sourceName = &name
		return nil
	}
}
