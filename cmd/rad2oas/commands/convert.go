package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/erraggy/rad2oas/converter"
	"github.com/erraggy/rad2oas/internal/cliutil"
	"github.com/erraggy/rad2oas/openapi"
	"github.com/erraggy/rad2oas/rad"
	"github.com/erraggy/rad2oas/validator"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	Output     string
	Format     string
	Pretty     bool
	Title      string
	APIVersion string
	Strict     bool
	NoWarnings bool
	Quiet      bool
	Validate   bool
	LogLevel   string
	LogFormat  string
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.Output, "o", DefaultOutput, "output file path ('-' for stdout)")
	fs.StringVar(&flags.Output, "output", DefaultOutput, "output file path ('-' for stdout)")
	fs.StringVar(&flags.Format, "format", "", "output format: json or yaml (default: from the output extension)")
	fs.BoolVar(&flags.Pretty, "pretty", false, "indent JSON output")
	fs.StringVar(&flags.Title, "title", openapi.DefaultTitle, "info.title of the generated document")
	fs.StringVar(&flags.APIVersion, "api-version", openapi.DefaultAPIVersion, "info.version of the generated document")
	fs.BoolVar(&flags.Strict, "strict", false, "fail on any conversion warning")
	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress warning and info messages")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: no diagnostic messages")
	fs.BoolVar(&flags.Validate, "validate", false, "validate the written document; exit 1 if it is invalid")
	fs.StringVar(&flags.LogLevel, "log-level", "info", "log level: debug, info, warn, or error")
	fs.StringVar(&flags.LogFormat, "log-format", LogFormatText, "log format: text, json, or console")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: rad2oas convert [flags] [file|-]\n\n")
		cliutil.Writef(fs.Output(), "Convert a Cytomine RAD document (restapidoc.json) to OpenAPI 3.0.1.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  rad2oas\n")
		cliutil.Writef(fs.Output(), "  rad2oas convert -o openapi.yaml restapidoc.json\n")
		cliutil.Writef(fs.Output(), "  rad2oas --pretty --title \"Cytomine Core\" --api-version 2.0.0\n")
		cliutil.Writef(fs.Output(), "  cat restapidoc.json | rad2oas convert -q -o - - > openapi.json\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - The input defaults to %s and the output to %s\n", DefaultInput, DefaultOutput)
		cliutil.Writef(fs.Output(), "  - Warnings mark unknown types, duplicate operations, and schema name collisions\n")
		cliutil.Writef(fs.Output(), "  - Info messages mark response objects that are not known schemas\n")
		cliutil.Writef(fs.Output(), "  - Output file is written with restrictive permissions (0600)\n")
		cliutil.Writef(fs.Output(), "  - --validate checks the document after it is written\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Conversion successful\n")
		cliutil.Writef(fs.Output(), "  1    Conversion failed, warnings in --strict mode, or an invalid document with --validate\n")
	}

	return fs, flags
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	fs, flags := SetupConvertFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	inputPath := DefaultInput
	switch fs.NArg() {
	case 0:
	case 1:
		inputPath = fs.Arg(0)
	default:
		fs.Usage()
		return fmt.Errorf("convert command accepts at most one file path or '-' for stdin")
	}

	format, err := flags.outputFormat()
	if err != nil {
		return err
	}

	var logger rad.Logger = rad.NopLogger{}
	if !flags.Quiet {
		if logger, err = NewLogger(os.Stderr, flags.LogLevel, flags.LogFormat); err != nil {
			return err
		}
	}

	toStdout := flags.Output == StdinFilePath
	if !toStdout {
		if err := ValidateOutputPath(flags.Output, inputPath); err != nil {
			return err
		}
	}

	opts := []converter.Option{
		converter.WithStrictMode(flags.Strict),
		converter.WithIncludeInfo(!flags.NoWarnings),
		converter.WithTitle(flags.Title),
		converter.WithAPIVersion(flags.APIVersion),
		converter.WithLogger(logger),
	}
	if inputPath == StdinFilePath {
		opts = append(opts, converter.WithReader(os.Stdin), converter.WithSourceName(FormatSpecPath(inputPath)))
	} else {
		opts = append(opts, converter.WithFilePath(inputPath))
	}

	startTime := time.Now()
	result, convErr := converter.ConvertWithOptions(opts...)
	totalTime := time.Since(startTime)
	if result == nil {
		return fmt.Errorf("converting %s: %w", FormatSpecPath(inputPath), convErr)
	}

	if !flags.Quiet {
		printConversion(result, totalTime, !flags.NoWarnings)
	}
	if convErr != nil {
		return convErr
	}
	if !result.Success {
		return fmt.Errorf("conversion completed with %d critical issue(s)", result.CriticalCount)
	}

	if toStdout {
		data, err := converter.MarshalResult(result, format, flags.Pretty)
		if err != nil {
			return fmt.Errorf("marshaling converted document: %w", err)
		}
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("writing converted document to stdout: %w", err)
		}
	} else {
		if err := converter.WriteResult(result, flags.Output, format, flags.Pretty); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		if !flags.Quiet {
			cliutil.Writef(os.Stderr, "\nOutput written to: %s\n", flags.Output)
		}
	}

	// Validation reports on the document as written and never changes it.
	if flags.Validate {
		return validateConverted(result, flags.Quiet)
	}
	return nil
}

// outputFormat resolves --format, falling back to the output extension.
// Stdout defaults to JSON.
func (f *ConvertFlags) outputFormat() (openapi.Format, error) {
	if f.Format != "" {
		return openapi.ParseFormat(f.Format)
	}
	if f.Output == StdinFilePath {
		return openapi.FormatJSON, nil
	}
	return openapi.FormatFromPath(f.Output), nil
}

func printConversion(result *converter.ConversionResult, totalTime time.Duration, showIssues bool) {
	OutputHeader("RAD to OpenAPI Converter")
	cliutil.Writef(os.Stderr, "Source: %s\n", result.SourcePath)
	cliutil.Writef(os.Stderr, "Source Size: %s\n", cliutil.FormatBytes(result.SourceSize))
	cliutil.Writef(os.Stderr, "Tags: %d\n", result.Stats.TagCount)
	cliutil.Writef(os.Stderr, "Paths: %d\n", result.Stats.PathCount)
	cliutil.Writef(os.Stderr, "Operations: %d\n", result.Stats.OperationCount)
	cliutil.Writef(os.Stderr, "Schemas: %d\n", result.Stats.SchemaCount)
	cliutil.Writef(os.Stderr, "Load Time: %v\n", result.LoadTime)
	cliutil.Writef(os.Stderr, "Total Time: %v\n\n", totalTime)

	if showIssues && len(result.Issues) > 0 {
		cliutil.Writef(os.Stderr, "Conversion Issues (%d):\n", len(result.Issues))
		for _, issue := range result.Issues {
			cliutil.Writef(os.Stderr, "  %s\n", issue.String())
		}
		cliutil.Writef(os.Stderr, "\n")
	}

	if result.Success {
		cliutil.Writef(os.Stderr, "✓ Conversion successful")
		if result.InfoCount > 0 || result.WarningCount > 0 {
			cliutil.Writef(os.Stderr, " (%d info, %d warnings)", result.InfoCount, result.WarningCount)
		}
		cliutil.Writef(os.Stderr, "\n")
	} else {
		cliutil.Writef(os.Stderr, "✗ Conversion completed with %d critical issue(s)\n", result.CriticalCount)
	}
}

// validateConverted checks the generated document and fails on errors.
func validateConverted(result *converter.ConversionResult, quiet bool) error {
	vr, err := validator.New().ValidateDocument(context.Background(), result.Document)
	if err != nil {
		return fmt.Errorf("validating converted document: %w", err)
	}
	if !quiet {
		printValidationIssues(vr)
	}
	if !vr.Valid {
		return fmt.Errorf("converted document is invalid: %d error(s)", vr.ErrorCount)
	}
	return nil
}
