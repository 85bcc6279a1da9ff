package converter

import (
	"fmt"
	"strings"

	"github.com/erraggy/rad2oas/openapi"
	"github.com/erraggy/rad2oas/rad"
)

// buildPaths emits one tag per API group and one operation per method.
// names is the schema-name set from buildSchemas and is only read.
func (cv *conversion) buildPaths(apis []*rad.API, names schemaNames) ([]*openapi.Tag, *openapi.OrderedMap[*openapi.PathItem]) {
	tags := make([]*openapi.Tag, 0, len(apis))
	paths := openapi.NewOrderedMap[*openapi.PathItem]()

	for _, api := range apis {
		if api == nil {
			continue
		}
		tags = append(tags, &openapi.Tag{Name: api.Name, Description: api.Description})

		for _, method := range api.Methods {
			if method == nil {
				continue
			}
			cv.addMethod(paths, api, method, names)
		}
	}
	return tags, paths
}

func (cv *conversion) addMethod(paths *openapi.OrderedMap[*openapi.PathItem], api *rad.API, method *rad.Method, names schemaNames) {
	item, ok := paths.Get(method.Path)
	if !ok {
		item = openapi.NewPathItem()
		paths.Set(method.Path, item)
	}

	verb := strings.ToLower(method.Verb)
	opPath := fmt.Sprintf("paths.%s.%s", method.Path, verb)
	if item.Has(verb) {
		cv.addIssueWithContext(SeverityWarning, opPath,
			fmt.Sprintf("duplicate %s operation for %s in API group %q", strings.ToUpper(verb), method.Path, api.Name),
			"the first operation declared for this path and verb is kept")
		cv.logger.Warn("verb already defined for path", "verb", verb, "path", method.Path, "api", api.Name)
		return
	}

	params, paginated := cv.convertParameters(method, opPath)
	op := &openapi.Operation{
		Tags:        []string{api.Name},
		Description: method.Description,
		Parameters:  params,
		Responses:   cv.buildResponses(method, opPath, paginated, names),
	}

	if verb == "post" || verb == "put" {
		if name, ok := knownResponseSchema(method, names); ok {
			op.RequestBody = &openapi.RequestBody{
				Content: openapi.JSONContent(openapi.RefSchema(SchemaRef(name))),
			}
		}
	}

	item.Set(verb, op)
}

// buildResponses maps api errors to described responses, then adds the 200
// response for the method's response object. A declared 200 error is replaced
// in place.
func (cv *conversion) buildResponses(method *rad.Method, opPath string, paginated bool, names schemaNames) *openapi.OrderedMap[*openapi.Response] {
	responses := openapi.NewOrderedMap[*openapi.Response]()
	for _, apiErr := range method.APIErrors {
		if apiErr == nil {
			continue
		}
		responses.Set(apiErr.Code.String(), &openapi.Response{Description: apiErr.Description})
	}

	object, ok := method.ResponseObject()
	if !ok || object == "" {
		return responses
	}

	name := SanitizeSchemaName(object)
	if !names.has(name) {
		cv.addIssue(SeverityInfo, opPath+".responses.200",
			fmt.Sprintf("response object %q is not a known schema, using it as the description", object), object)
		cv.logger.Info("unresolved response object", "object", object, "path", method.Path)
		responses.Set("200", &openapi.Response{Description: object})
		return responses
	}

	schema := openapi.RefSchema(SchemaRef(name))
	if paginated {
		schema = openapi.ArrayOf(schema)
	}
	responses.Set("200", &openapi.Response{Description: "", Content: openapi.JSONContent(schema)})
	return responses
}

// knownResponseSchema returns the sanitized response object name when it is a
// registered schema.
func knownResponseSchema(method *rad.Method, names schemaNames) (string, bool) {
	object, ok := method.ResponseObject()
	if !ok || object == "" {
		return "", false
	}
	name := SanitizeSchemaName(object)
	return name, names.has(name)
}
