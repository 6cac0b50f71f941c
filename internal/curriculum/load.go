package curriculum

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// Load reads, validates and parses a curriculum JSON file, returning the
// course and its prebuilt unlock chain.
func Load(path string) (*Course, *Chain, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read curriculum: %w", err)
	}
	return Parse(raw)
}

// Parse validates raw curriculum JSON against the course schema, decodes it
// and runs the structural checks in Validate.
func Parse(raw []byte) (*Course, *Chain, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, nil, fmt.Errorf("curriculum is not valid JSON: %w", err)
	}

	schema, err := courseJSONSchema()
	if err != nil {
		return nil, nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, nil, fmt.Errorf("curriculum schema validation failed: %w", err)
	}

	var course Course
	if err := json.Unmarshal(raw, &course); err != nil {
		return nil, nil, fmt.Errorf("decode curriculum: %w", err)
	}
	if err := Validate(&course); err != nil {
		return nil, nil, err
	}
	return &course, NewChain(&course), nil
}

// courseJSONSchema compiles the course schema once and caches it.
func courseJSONSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw
		// bytes. Marshal then unmarshal to get a clean any representation.
		defBytes, err := json.Marshal(courseSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://course.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
