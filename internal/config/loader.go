package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON string

// envOverrides maps environment variables to the field they replace.
var envOverrides = map[string]func(*Config, string){
	"HELLO_LOG_LEVEL": func(c *Config, v string) { c.Application.LogLevel = v },
	"HELLO_THEME":     func(c *Config, v string) { c.GUI.Theme = v },
}

// validate checks a YAML document against the embedded JSON Schema and
// reports every violation in a single error.
func validate(yb []byte) error {
	var doc interface{}
	if err := yaml.Unmarshal(yb, &doc); err != nil {
		return fmt.Errorf("unmarshal yaml: %w", err)
	}
	if doc == nil {
		// empty file
		doc = map[string]interface{}{}
	}

	jsonCompatible, err := toJSONCompatible(doc)
	if err != nil {
		return fmt.Errorf("convert yaml->json compatible: %w", err)
	}
	jb, err := json.Marshal(jsonCompatible)
	if err != nil {
		return fmt.Errorf("marshal to json: %w", err)
	}

	schemaLoader := gojsonschema.NewStringLoader(schemaJSON)
	documentLoader := gojsonschema.NewBytesLoader(jb)
	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if !result.Valid() {
		var sb strings.Builder
		for _, e := range result.Errors() {
			sb.WriteString("- ")
			sb.WriteString(e.String())
			sb.WriteString("\n")
		}
		return fmt.Errorf("config validation failed:\n%s", sb.String())
	}

	return nil
}

// applyEnvOverrides reports whether any variable was applied.
func applyEnvOverrides(cfg *Config) bool {
	applied := false
	for env, set := range envOverrides {
		if v, ok := os.LookupEnv(env); ok && v != "" {
			set(cfg, strings.TrimSpace(v))
			applied = true
		}
	}
	return applied
}

// toJSONCompatible converts map[interface{}]interface{} trees into
// map[string]interface{} so encoding/json accepts them.
func toJSONCompatible(v interface{}) (interface{}, error) {
	switch x := v.(type) {
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(x))
		for k, val := range x {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key: %v", k)
			}
			cv, err := toJSONCompatible(val)
			if err != nil {
				return nil, err
			}
			m[ks] = cv
		}
		return m, nil
	case map[string]interface{}:
		m := make(map[string]interface{}, len(x))
		for k, val := range x {
			cv, err := toJSONCompatible(val)
			if err != nil {
				return nil, err
			}
			m[k] = cv
		}
		return m, nil
	case []interface{}:
		out := make([]interface{}, len(x))
		for i, val := range x {
			cv, err := toJSONCompatible(val)
			if err != nil {
				return nil, err
			}
			out[i] = cv
		}
		return out, nil
	default:
		return x, nil
	}
}
