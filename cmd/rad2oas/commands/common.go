// Package commands provides CLI command handlers for rad2oas.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/rad2oas"
	"github.com/erraggy/rad2oas/internal/cliutil"
)

// StdinFilePath is the special file path used to indicate reading from stdin,
// or writing to stdout when given as the output.
const StdinFilePath = "-"

// Defaults used when the command line names no files.
const (
	DefaultInput  = "restapidoc.json"
	DefaultOutput = "openapi.json"
)

// ValidateOutputPath checks that writing outputPath cannot clobber the input
// and does not go through a symlink.
func ValidateOutputPath(outputPath, inputPath string) error {
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	if inputPath != StdinFilePath {
		absInputPath, err := filepath.Abs(inputPath)
		if err != nil {
			return fmt.Errorf("invalid input path %s: %w", inputPath, err)
		}
		if absOutputPath == absInputPath {
			return fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
		}
	}

	return RejectSymlinkOutput(filepath.Clean(outputPath))
}

// RejectSymlinkOutput checks if the output path is a symlink and returns an error if so.
// This prevents symlink attacks where a symlink could redirect output to an unintended location.
func RejectSymlinkOutput(cleanedPath string) error {
	info, err := os.Lstat(cleanedPath)
	if os.IsNotExist(err) {
		// File doesn't exist yet, safe to write.
		return nil
	}
	if err != nil {
		return fmt.Errorf("commands: checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("commands: refusing to write to symlink: %s", cleanedPath)
	}
	return nil
}

// FormatSpecPath returns a display-friendly path for a document.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSpecPath(specPath string) string {
	if specPath == StdinFilePath {
		return "<stdin>"
	}
	return specPath
}

// OutputHeader writes the banner shared by the commands to stderr.
func OutputHeader(title string) {
	cliutil.Writef(os.Stderr, "%s\n", title)
	for range title {
		cliutil.Writef(os.Stderr, "=")
	}
	cliutil.Writef(os.Stderr, "\n\nrad2oas version: %s\n", rad2oas.Version())
}
