package rad

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"time"

	"github.com/erraggy/rad2oas/oaserrors"
)

// Parser reads RAD documents.
type Parser struct {
	// ValidateStructure checks the raw JSON against the RAD structure before decoding.
	// Missing keys are reported as violations instead of silently decoding to zero values.
	ValidateStructure bool
	// Logger receives diagnostics such as the pre-flight existence check. Nil means no logging.
	Logger Logger
}

// ParseResult contains a parsed RAD document and information about its source.
type ParseResult struct {
	// Document is the decoded RAD catalog
	Document *Document
	// SourcePath is the file path, or a label such as "<stdin>" for readers
	SourcePath string
	// SourceSize is the size of the raw source in bytes
	SourceSize int64
	// LoadTime is the time taken to read, check and decode the source
	LoadTime time.Duration
	// Stats counts objects, fields, API groups and methods
	Stats DocumentStats
}

// New creates a new Parser with structure validation enabled
func New() *Parser {
	return &Parser{ValidateStructure: true}
}

func (p *Parser) logger() Logger {
	return OrNop(p.Logger)
}

// Parse reads the RAD document at path.
// The existence of path is checked and logged before reading, at Warn level
// when it is missing; a missing file still fails with the underlying I/O error.
func (p *Parser) Parse(path string) (*ParseResult, error) {
	if _, statErr := os.Stat(path); statErr != nil {
		p.logger().Warn("checking source document", "path", path, "exists", false)
	} else {
		p.logger().Info("checking source document", "path", path, "exists", true)
	}

	start := time.Now()
	data, err := os.ReadFile(path) //nolint:gosec // reading the user-selected input is the point
	if err != nil {
		return nil, &oaserrors.ParseError{Path: path, Message: "reading file", Cause: err}
	}
	return p.parse(data, path, start)
}

// ParseReader reads a RAD document from r.
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	start := time.Now()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: "<reader>", Message: "reading input", Cause: err}
	}
	return p.parse(data, "<reader>", start)
}

// ParseBytes decodes a RAD document held in memory.
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	return p.parse(data, "<bytes>", time.Now())
}

func (p *Parser) parse(data []byte, sourcePath string, start time.Time) (*ParseResult, error) {
	doc := &Document{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	decodeErr := dec.Decode(doc)

	var syntaxErr *json.SyntaxError
	if errors.As(decodeErr, &syntaxErr) {
		line, col := position(data, syntaxErr.Offset)
		return nil, &oaserrors.ParseError{
			Path:    sourcePath,
			Line:    line,
			Column:  col,
			Message: "invalid JSON",
			Cause:   decodeErr,
		}
	}
	if errors.Is(decodeErr, io.ErrUnexpectedEOF) {
		line, col := position(data, int64(len(data)))
		return nil, &oaserrors.ParseError{
			Path:    sourcePath,
			Line:    line,
			Column:  col,
			Message: "invalid JSON",
			Cause:   decodeErr,
		}
	}
	if errors.Is(decodeErr, io.EOF) {
		return nil, &oaserrors.ParseError{Path: sourcePath, Message: "empty document"}
	}
	if decodeErr == nil {
		if err := trailingData(dec, data, sourcePath); err != nil {
			return nil, err
		}
	}

	if p.ValidateStructure {
		violations, err := checkStructure(data)
		if err != nil {
			return nil, &oaserrors.ParseError{Path: sourcePath, Message: "checking structure", Cause: err}
		}
		if len(violations) > 0 {
			p.logger().Error("document does not match the RAD structure",
				"path", sourcePath, "violations", len(violations))
			return nil, &oaserrors.ParseError{
				Path:       sourcePath,
				Message:    "document does not match the RAD structure",
				Violations: violations,
			}
		}
	}

	if decodeErr != nil {
		return nil, &oaserrors.ParseError{Path: sourcePath, Message: "decoding document", Cause: decodeErr}
	}

	result := &ParseResult{
		Document:   doc,
		SourcePath: sourcePath,
		SourceSize: int64(len(data)),
		LoadTime:   time.Since(start),
		Stats:      doc.Stats(),
	}
	p.logger().Debug("parsed RAD document",
		"path", sourcePath,
		"objects", result.Stats.ObjectCount,
		"apis", result.Stats.APICount,
		"methods", result.Stats.MethodCount)
	return result, nil
}

// position converts a byte offset into a 1-based line and column.
// trailingData rejects anything but whitespace after the top-level value.
func trailingData(dec *json.Decoder, data []byte, sourcePath string) error {
	offset := dec.InputOffset()
	if _, err := dec.Token(); errors.Is(err, io.EOF) {
		return nil
	}
	for offset < int64(len(data)) && isJSONSpace(data[offset]) {
		offset++
	}
	line, col := position(data, offset)
	return &oaserrors.ParseError{
		Path:    sourcePath,
		Line:    line,
		Column:  col,
		Message: "invalid JSON: extra data after the top-level value",
	}
}

func isJSONSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func position(data []byte, offset int64) (line, col int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	line, col = 1, 1
	for _, b := range data[:offset] {
		if b == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}
