package converter

import (
	"fmt"

	"github.com/erraggy/rad2oas/openapi"
	"github.com/erraggy/rad2oas/rad"
)

// schemaNames is the set of registered component schema keys.
type schemaNames map[string]struct{}

func (n schemaNames) has(name string) bool {
	_, ok := n[name]
	return ok
}

// buildSchemas converts every object into a component schema keyed by its
// sanitized name, in input order. When two objects sanitize to the same key
// the later one replaces the earlier in place.
func (cv *conversion) buildSchemas(objects []*rad.Object) (*openapi.OrderedMap[*openapi.Schema], schemaNames) {
	schemas := openapi.NewOrderedMap[*openapi.Schema]()
	names := make(schemaNames, len(objects))
	origins := make(map[string]string, len(objects))

	for _, obj := range objects {
		if obj == nil {
			continue
		}
		name := SanitizeSchemaName(obj.Name)
		schema := cv.objectSchema(obj, name)

		if previous, exists := origins[name]; exists {
			path := "components.schemas." + name
			cv.addIssueWithContext(SeverityWarning, path,
				fmt.Sprintf("objects %q and %q both map to schema %q", previous, obj.Name, name),
				"the later object replaces the earlier one")
			cv.logger.Warn("schema name collision", "schema", name, "previous", previous, "object", obj.Name)
		}

		schemas.Set(name, schema)
		names[name] = struct{}{}
		origins[name] = obj.Name
	}
	return schemas, names
}

func (cv *conversion) objectSchema(obj *rad.Object, name string) *openapi.Schema {
	path := "components.schemas." + name
	description := obj.Description
	schema := &openapi.Schema{
		Type:        openapi.TypeObject,
		Description: &description,
		Properties:  openapi.NewOrderedMap[*openapi.Schema](),
	}

	for _, field := range obj.Fields {
		if field == nil {
			continue
		}
		schema.Properties.Set(field.Name, cv.fieldSchema(obj, field, path+".properties."+field.Name))
		if field.Mandatory {
			schema.Required = append(schema.Required, field.Name)
		}
	}
	return schema
}

func (cv *conversion) fieldSchema(obj *rad.Object, field *rad.Field, path string) *openapi.Schema {
	schema := cv.typeSchema(field.Type, path)
	description := field.Description
	schema.Description = &description
	if field.DefaultValue != nil {
		schema.Default = field.DefaultValue
	}
	schema.WriteOnly = field.UseForCreation && !field.PresentInResponse
	schema.ReadOnly = !field.UseForCreation && field.PresentInResponse

	if schema.Type == openapi.TypeObject {
		cv.addIssue(SeverityInfo, path,
			fmt.Sprintf("field %q of object %q resolves to an untyped object", field.Name, obj.Name), field.Type)
		cv.logger.Info("field resolves to object", "object", obj.Name, "field", field.Name)
	}
	return schema
}
