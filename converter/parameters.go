package converter

import (
	"fmt"

	"github.com/erraggy/rad2oas/openapi"
	"github.com/erraggy/rad2oas/rad"
)

// convertParameter builds a path or query parameter. Only the string "true"
// marks a parameter required.
func (cv *conversion) convertParameter(param *rad.Param, in, path string) *openapi.Parameter {
	return &openapi.Parameter{
		Name:        param.Name,
		In:          in,
		Description: param.Description,
		Required:    param.IsRequired(),
		Schema:      cv.typeSchema(param.Type, path+".schema"),
	}
}

// convertParameters converts path parameters followed by query parameters and
// reports whether the query parameters include both "max" and "offset".
func (cv *conversion) convertParameters(method *rad.Method, opPath string) (params []*openapi.Parameter, paginated bool) {
	params = make([]*openapi.Parameter, 0, len(method.PathParameters)+len(method.QueryParameters))

	for _, p := range method.PathParameters {
		if p == nil {
			continue
		}
		path := fmt.Sprintf("%s.parameters[%d]", opPath, len(params))
		params = append(params, cv.convertParameter(p, openapi.InPath, path))
	}

	var hasMax, hasOffset bool
	for _, p := range method.QueryParameters {
		if p == nil {
			continue
		}
		path := fmt.Sprintf("%s.parameters[%d]", opPath, len(params))
		params = append(params, cv.convertParameter(p, openapi.InQuery, path))

		switch p.Name {
		case "max":
			hasMax = true
		case "offset":
			hasOffset = true
		}
	}
	return params, hasMax && hasOffset
}
