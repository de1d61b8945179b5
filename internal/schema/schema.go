// Package schema validates raw settings documents against the embedded
// publishing-settings JSON Schema. Validation is advisory: unknown or
// out-of-range values produce warnings for the caller to surface, and
// resolution then clamps or defaults them rather than rejecting the input.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	_ "embed"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed settings.schema.json
var settingsSchema []byte

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// compiledSchema compiles the embedded schema once.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("settings.schema.json", bytes.NewReader(settingsSchema)); err != nil {
			compileErr = fmt.Errorf("failed to load settings schema: %w", err)
			return
		}
		compiled, compileErr = compiler.Compile("settings.schema.json")
	})
	return compiled, compileErr
}

// ValidateSettings checks a raw JSON settings document against the schema
// and returns human-readable warnings. A nil error with warnings means the
// document is usable but has fields resolution will ignore or clamp.
func ValidateSettings(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	schema, err := compiledSchema()
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("settings are not valid JSON: %w", err)
	}

	err = schema.Validate(doc)
	if err == nil {
		return nil, nil
	}
	var ve *jsonschema.ValidationError
	if ok := asValidationError(err, &ve); !ok {
		return nil, fmt.Errorf("settings validation: %w", err)
	}
	return flatten(ve), nil
}

func asValidationError(err error, target **jsonschema.ValidationError) bool {
	ve, ok := err.(*jsonschema.ValidationError)
	if ok {
		*target = ve
	}
	return ok
}

// flatten collects the leaf causes of a validation error as warnings.
func flatten(ve *jsonschema.ValidationError) []string {
	if len(ve.Causes) == 0 {
		loc := ve.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		return []string{fmt.Sprintf("%s: %s", strings.TrimPrefix(loc, "/"), ve.Message)}
	}
	var out []string
	for _, cause := range ve.Causes {
		out = append(out, flatten(cause)...)
	}
	return out
}
