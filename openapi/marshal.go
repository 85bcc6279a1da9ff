package openapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/erraggy/rad2oas/oaserrors"
	"go.yaml.in/yaml/v4"
)

// Format is an output serialization format.
type Format string

const (
	// FormatJSON writes JSON.
	FormatJSON Format = "json"
	// FormatYAML writes YAML.
	FormatYAML Format = "yaml"
)

// FormatFromPath picks YAML for .yaml and .yml paths and JSON otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ParseFormat parses a format name such as "json", "yaml" or "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", &oaserrors.ConfigError{
			Option:  "format",
			Value:   s,
			Message: "must be json or yaml",
		}
	}
}

// Marshal serializes doc. JSON is compact unless indent is set; YAML is always
// block style. Both keep insertion order.
func Marshal(doc *Document, format Format, indent bool) ([]byte, error) {
	data, err := encodeJSON(doc)
	if err != nil {
		return nil, fmt.Errorf("openapi: marshaling document: %w", err)
	}

	switch format {
	case FormatJSON, "":
		if !indent {
			return data, nil
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return nil, fmt.Errorf("openapi: indenting document: %w", err)
		}
		return buf.Bytes(), nil
	case FormatYAML:
		return jsonToYAML(data)
	default:
		return nil, &oaserrors.ConfigError{Option: "format", Value: string(format), Message: "unsupported output format"}
	}
}

// jsonToYAML re-encodes JSON as YAML through a yaml.Node so key order survives.
func jsonToYAML(data []byte) ([]byte, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("openapi: converting to yaml: %w", err)
	}
	clearStyle(&node)

	out, err := yaml.Marshal(&node)
	if err != nil {
		return nil, fmt.Errorf("openapi: marshaling yaml: %w", err)
	}
	return out, nil
}

// clearStyle drops the flow and quoting styles inherited from JSON syntax.
// Strings that would otherwise read as another type are still quoted.
func clearStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		clearStyle(child)
	}
}
