package project

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed schemas/model.schema.json
var modelSchema string

const modelSchemaURL = "suitegen://model.schema.json"

// Document kinds validated by Validate.
const (
	KindSuite    = "suite"
	KindSnippets = "snippets"
)

var (
	compileOnce sync.Once
	compiled    map[string]*jsonschema.Schema
	compileErr  error
)

func schemas() (map[string]*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(modelSchemaURL, strings.NewReader(modelSchema)); err != nil {
			compileErr = err
			return
		}
		compiled = make(map[string]*jsonschema.Schema)
		for _, kind := range []string{KindSuite, KindSnippets} {
			s, err := compiler.Compile(modelSchemaURL + "#/$defs/" + kind)
			if err != nil {
				compileErr = fmt.Errorf("compile %s schema: %w", kind, err)
				return
			}
			compiled[kind] = s
		}
	})
	return compiled, compileErr
}

// Validate checks a YAML or JSON document against the model schema for kind.
func Validate(kind string, data []byte) error {
	all, err := schemas()
	if err != nil {
		return err
	}
	s, ok := all[kind]
	if !ok {
		return fmt.Errorf("unknown document kind %q", kind)
	}

	doc, err := toJSONValue(data)
	if err != nil {
		return err
	}
	return s.Validate(doc)
}

// toJSONValue decodes YAML into the value shapes the JSON Schema validator
// expects: map[string]any, []any, json.Number, string and bool.
func toJSONValue(data []byte) (any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		raw = map[string]any{}
	}
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(encoded))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}
