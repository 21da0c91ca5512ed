// File: typedstore/codec.go
package typedstore

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Codec converts between a store's in-memory value and its persisted source
// string. Encode then Decode must round-trip losslessly for every value
// shape the type system can validate.
type Codec interface {
	Name() string
	Encode(v any) (string, error)
	Decode(src string) (any, error)
}

// JSONCodec is the default codec. It round-trips the whole validated value
// domain: records, sequences, strings, numbers, booleans, and nil.
func JSONCodec() Codec { return jsonCodec{} }

// TOMLCodec persists dictionary-rooted stores as TOML. TOML has no top-level
// scalar or sequence form, so Encode rejects non-record roots.
func TOMLCodec() Codec { return tomlCodec{} }

// YAMLCodec persists values as YAML.
func YAMLCodec() Codec { return yamlCodec{} }

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Encode(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode value as JSON: %w", err)
	}
	return string(data), nil
}

func (jsonCodec) Decode(src string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(src), &v); err != nil {
		return nil, fmt.Errorf("failed to decode JSON source: %w", err)
	}
	return v, nil
}

type tomlCodec struct{}

func (tomlCodec) Name() string { return "toml" }

func (tomlCodec) Encode(v any) (string, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return "", fmt.Errorf("cannot encode %T as TOML: root must be a record", v)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(m); err != nil {
		return "", fmt.Errorf("failed to encode value as TOML: %w", err)
	}
	return buf.String(), nil
}

func (tomlCodec) Decode(src string) (any, error) {
	m := make(map[string]any)
	if err := toml.Unmarshal([]byte(src), &m); err != nil {
		return nil, fmt.Errorf("failed to decode TOML source: %w", err)
	}
	return m, nil
}

type yamlCodec struct{}

func (yamlCodec) Name() string { return "yaml" }

func (yamlCodec) Encode(v any) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode value as YAML: %w", err)
	}
	return string(data), nil
}

func (yamlCodec) Decode(src string) (any, error) {
	var v any
	if err := yaml.Unmarshal([]byte(src), &v); err != nil {
		return nil, fmt.Errorf("failed to decode YAML source: %w", err)
	}
	return v, nil
}
