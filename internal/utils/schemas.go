package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/stoewer/go-strcase"
)

// CreateSchema reflects a JSON schema object for the given args struct. The
// schema is inlined (no $ref/$defs) so it can be sent as function parameters.
//
// Parameter names come from json tags, falling back to the snake cased field
// name. Fields without omitempty are required. Descriptions and defaults are
// read from jsonschema_description and jsonschema:"default=..." tags.
func CreateSchema(args any) (map[string]any, error) {
	t := reflect.TypeOf(args)
	if t == nil {
		return nil, fmt.Errorf("args cannot be nil")
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("args must be a struct, got %s", t.Kind())
	}

	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
		Anonymous:      true,
		KeyNamer:       strcase.SnakeCase,
	}
	schema := r.ReflectFromType(t)
	if schema == nil {
		return nil, fmt.Errorf("failed to generate schema for %s", t.Name())
	}

	schemaBytes, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	var result map[string]any
	if err := json.Unmarshal(schemaBytes, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema to map: %w", err)
	}
	delete(result, "$schema")
	delete(result, "$id")
	return result, nil
}

// RequiredFields lists the names in a schema's "required" array.
func RequiredFields(schema map[string]any) []string {
	raw, _ := schema["required"].([]any)
	fields := make([]string, 0, len(raw))
	for _, r := range raw {
		if s, ok := r.(string); ok {
			fields = append(fields, s)
		}
	}
	return fields
}

// JsonDumpsObj renders v as indented JSON without HTML escaping.
func JsonDumpsObj(v any) string {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Sprintf("<unencodable: %v>", err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}
