package appconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

var configSchema = map[string]any{
	"$schema":              "http://json-schema.org/draft-07/schema#",
	"type":                 "object",
	"additionalProperties": false,
	"properties": map[string]any{
		"debug":   map[string]any{"type": "boolean"},
		"logFile": map[string]any{"type": "string"},
		"plot": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"width":     map[string]any{"type": "integer", "minimum": 1},
				"height":    map[string]any{"type": "integer", "minimum": 1},
				"numLabels": map[string]any{"type": "integer", "minimum": 1},
				"logX":      map[string]any{"type": "boolean"},
				"logXRev":   map[string]any{"type": "boolean"},
				"logY":      map[string]any{"type": "boolean"},
				"omitEmpty": map[string]any{"type": "boolean"},
				"barColor":  map[string]any{"type": "string"},
			},
			"not": map[string]any{
				"required":   []any{"logX", "logXRev"},
				"properties": map[string]any{"logX": map[string]any{"const": true}, "logXRev": map[string]any{"const": true}},
			},
		},
	},
}

// Validate checks raw JSON config content against the config schema.
func Validate(data []byte) error {
	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(configSchema), gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("config is not valid JSON: %w", err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
}

// ValidateFile reads path and validates its content.
func ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read config file %q: %w", path, err)
	}
	if err := Validate(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
