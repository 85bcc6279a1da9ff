package rad

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Document is a RAD API catalog.
type Document struct {
	Objects []*Object `json:"objects"`
	APIs    []*API    `json:"apis"`
}

// Object describes the fields of one resource.
type Object struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Fields      []*Field `json:"fields"`
}

// Field is one property of an Object.
type Field struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	// Type is a free-text type token such as "Long", "Date" or "List<Integer>".
	Type string `json:"type"`
	// DefaultValue is nil when the RAD document has null.
	DefaultValue      any  `json:"defaultValue"`
	Mandatory         bool `json:"mandatory"`
	UseForCreation    bool `json:"useForCreation"`
	PresentInResponse bool `json:"presentInResponse"`
}

// API is a named group of methods.
type API struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Methods     []*Method `json:"methods"`
}

// Method describes one HTTP operation.
type Method struct {
	Path string `json:"path"`
	Verb string `json:"verb"`
	// Description is nil when the method does not declare one.
	Description     *string     `json:"description,omitempty"`
	PathParameters  []*Param    `json:"pathparameters"`
	QueryParameters []*Param    `json:"queryparameters"`
	APIErrors       []*APIError `json:"apierrors"`
	Response        *Response   `json:"response"`
}

// ResponseObject returns the declared response object name and whether one is set.
func (m *Method) ResponseObject() (string, bool) {
	if m.Response == nil || m.Response.Object == nil {
		return "", false
	}
	return *m.Response.Object, true
}

// Param is a path or query parameter.
type Param struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	// Required holds the raw RAD value. Only the JSON string "true" means required.
	Required any `json:"required,omitempty"`
}

// IsRequired reports whether Required is exactly the string "true".
// Booleans, other spellings and absence all count as not required.
func (p *Param) IsRequired() bool {
	s, ok := p.Required.(string)
	return ok && s == "true"
}

// APIError is a documented error response.
type APIError struct {
	Code        StatusCode `json:"code"`
	Description string     `json:"description"`
}

// Response names the object a method returns.
type Response struct {
	// Object is nil when the RAD document has null.
	Object *string `json:"object"`
}

// StatusCode is an HTTP status code that RAD documents write either as a
// number (404) or as a string ("404").
type StatusCode string

// UnmarshalJSON accepts JSON numbers and strings.
func (c *StatusCode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = StatusCode(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("status code must be a number or a string: %w", err)
	}
	*c = StatusCode(n.String())
	return nil
}

// String returns the code as written in the source.
func (c StatusCode) String() string {
	return string(c)
}

// DocumentStats summarizes a RAD document.
type DocumentStats struct {
	ObjectCount int
	FieldCount  int
	APICount    int
	MethodCount int
}

// Stats counts the entities of the document.
func (d *Document) Stats() DocumentStats {
	stats := DocumentStats{
		ObjectCount: len(d.Objects),
		APICount:    len(d.APIs),
	}
	for _, obj := range d.Objects {
		stats.FieldCount += len(obj.Fields)
	}
	for _, api := range d.APIs {
		stats.MethodCount += len(api.Methods)
	}
	return stats
}
