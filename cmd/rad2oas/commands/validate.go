package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/erraggy/rad2oas/internal/cliutil"
	"github.com/erraggy/rad2oas/validator"
)

// ValidateFlags contains flags for the validate command
type ValidateFlags struct {
	NoWarnings bool
	Quiet      bool
}

// SetupValidateFlags creates and configures a FlagSet for the validate command.
// Returns the FlagSet and a ValidateFlags struct with bound flag variables.
func SetupValidateFlags() (*flag.FlagSet, *ValidateFlags) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags := &ValidateFlags{}

	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress warning messages (only show errors)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only the exit code reports the result")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only the exit code reports the result")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: rad2oas validate [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Validate an OpenAPI 3.x document (JSON or YAML), such as one written by convert.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  rad2oas validate openapi.json\n")
		cliutil.Writef(fs.Output(), "  rad2oas validate --no-warnings openapi.yaml\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Document is valid (warnings allowed)\n")
		cliutil.Writef(fs.Output(), "  1    Document is invalid or could not be loaded\n")
	}

	return fs, flags
}

// HandleValidate executes the validate command
func HandleValidate(args []string) error {
	fs, flags := SetupValidateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("validate command requires exactly one file path or '-' for stdin")
	}

	specPath := fs.Arg(0)

	v := validator.New()
	v.IncludeWarnings = !flags.NoWarnings

	ctx := context.Background()
	startTime := time.Now()
	var result *validator.ValidationResult
	var err error
	if specPath == StdinFilePath {
		data, readErr := io.ReadAll(os.Stdin)
		if readErr != nil {
			return fmt.Errorf("reading stdin: %w", readErr)
		}
		result, err = v.ValidateBytes(ctx, data)
	} else {
		result, err = v.ValidateFile(ctx, specPath)
	}
	totalTime := time.Since(startTime)
	if err != nil {
		return fmt.Errorf("validating %s: %w", FormatSpecPath(specPath), err)
	}

	if !flags.Quiet {
		OutputHeader("OpenAPI Document Validator")
		cliutil.Writef(os.Stderr, "Specification: %s\n", FormatSpecPath(specPath))
		cliutil.Writef(os.Stderr, "Source Size: %s\n", cliutil.FormatBytes(result.SourceSize))
		cliutil.Writef(os.Stderr, "Load Time: %v\n", result.LoadTime)
		cliutil.Writef(os.Stderr, "Total Time: %v\n\n", totalTime)
		printValidationIssues(result)
	}

	if !result.Valid {
		return fmt.Errorf("validation failed: %d error(s)", result.ErrorCount)
	}
	return nil
}

func printValidationIssues(result *validator.ValidationResult) {
	if len(result.Errors) > 0 {
		cliutil.Writef(os.Stderr, "Errors (%d):\n", result.ErrorCount)
		for _, e := range result.Errors {
			cliutil.Writef(os.Stderr, "  %s\n", e.String())
		}
		cliutil.Writef(os.Stderr, "\n")
	}

	if len(result.Warnings) > 0 {
		cliutil.Writef(os.Stderr, "Warnings (%d):\n", result.WarningCount)
		for _, w := range result.Warnings {
			cliutil.Writef(os.Stderr, "  %s\n", w.String())
		}
		cliutil.Writef(os.Stderr, "\n")
	}

	if result.Valid {
		cliutil.Writef(os.Stderr, "✓ Validation passed")
		if result.WarningCount > 0 {
			cliutil.Writef(os.Stderr, " with %d warning(s)", result.WarningCount)
		}
		cliutil.Writef(os.Stderr, "\n")
	} else {
		cliutil.Writef(os.Stderr, "✗ Validation failed: %d error(s)\n", result.ErrorCount)
	}
}
