package rad

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var structureSchemaJSON []byte

// structureSchema compiles the embedded RAD schema once.
var structureSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(structureSchemaJSON))
})

// checkStructure validates raw JSON against the RAD structure and returns one
// entry per violation, formatted as "<field>: <description>".
func checkStructure(data []byte) ([]string, error) {
	schema, err := structureSchema()
	if err != nil {
		return nil, fmt.Errorf("rad: compiling structure schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, err
	}
	if result.Valid() {
		return nil, nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		violations = append(violations, fmt.Sprintf("%s: %s", re.Field(), re.Description()))
	}
	return violations, nil
}
