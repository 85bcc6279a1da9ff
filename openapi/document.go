package openapi

// Version is the OpenAPI version written into every document.
const Version = "3.0.1"

// Default document metadata.
const (
	DefaultTitle      = "Cytomine API"
	DefaultAPIVersion = "1.0.0"
)

// Document is an OpenAPI 3.0.1 document. Fields serialize in declaration order.
type Document struct {
	OpenAPI    string                 `json:"openapi"`
	Info       *Info                  `json:"info"`
	Tags       []*Tag                 `json:"tags"`
	Paths      *OrderedMap[*PathItem] `json:"paths"`
	Components *Components            `json:"components"`
}

// NewDocument creates an empty document with the given info metadata.
func NewDocument(title, version string) *Document {
	return &Document{
		OpenAPI:    Version,
		Info:       &Info{Title: title, Version: version},
		Tags:       []*Tag{},
		Paths:      NewOrderedMap[*PathItem](),
		Components: &Components{Schemas: NewOrderedMap[*Schema]()},
	}
}

// Info is the document metadata.
type Info struct {
	Title   string `json:"title"`
	Version string `json:"version"`
}

// Tag groups operations.
type Tag struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PathItem maps lower-cased HTTP verbs to operations.
type PathItem = OrderedMap[*Operation]

// NewPathItem creates an empty PathItem.
func NewPathItem() *PathItem {
	return NewOrderedMap[*Operation]()
}

// Operation is a single API operation on a path.
type Operation struct {
	Tags []string `json:"tags"`
	// Description is nil when the source method has none; an empty string is kept.
	Description *string                `json:"description,omitempty"`
	Parameters  []*Parameter           `json:"parameters"`
	Responses   *OrderedMap[*Response] `json:"responses"`
	RequestBody *RequestBody           `json:"requestBody,omitempty"`
}

// Parameter is a path or query parameter.
type Parameter struct {
	Name        string  `json:"name"`
	In          string  `json:"in"`
	Description string  `json:"description"`
	Required    bool    `json:"required"`
	Schema      *Schema `json:"schema"`
}

// Parameter locations.
const (
	InPath  = "path"
	InQuery = "query"
)

// Response is one entry of an operation's responses.
type Response struct {
	Description string                  `json:"description"`
	Content     *OrderedMap[*MediaType] `json:"content,omitempty"`
}

// RequestBody describes the payload accepted by an operation.
type RequestBody struct {
	Content *OrderedMap[*MediaType] `json:"content"`
}

// MediaType pairs a media type with its schema.
type MediaType struct {
	Schema *Schema `json:"schema"`
}

// MediaTypeJSON is the only media type rad2oas emits.
const MediaTypeJSON = "application/json"

// JSONContent returns a content map holding schema under application/json.
func JSONContent(schema *Schema) *OrderedMap[*MediaType] {
	content := NewOrderedMap[*MediaType]()
	content.Set(MediaTypeJSON, &MediaType{Schema: schema})
	return content
}

// Components holds reusable schemas.
type Components struct {
	Schemas *OrderedMap[*Schema] `json:"schemas"`
}

// Schema is the subset of the OpenAPI Schema Object that rad2oas produces.
type Schema struct {
	Ref         string               `json:"$ref,omitempty"`
	Type        string               `json:"type,omitempty"`
	Format      string               `json:"format,omitempty"`
	Description *string              `json:"description,omitempty"`
	Default     any                  `json:"default,omitempty"`
	Items       *Schema              `json:"items,omitempty"`
	Properties  *OrderedMap[*Schema] `json:"properties,omitempty"`
	Required    []string             `json:"required,omitempty"`
	ReadOnly    bool                 `json:"readOnly,omitempty"`
	WriteOnly   bool                 `json:"writeOnly,omitempty"`
}

// Schema types.
const (
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeString  = "string"
	TypeArray   = "array"
	TypeObject  = "object"
)

// RefSchema returns a schema that is only a $ref.
func RefSchema(ref string) *Schema {
	return &Schema{Ref: ref}
}

// ArrayOf returns an array schema with the given items.
func ArrayOf(items *Schema) *Schema {
	return &Schema{Type: TypeArray, Items: items}
}
