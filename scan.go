// File: typedstore/scan.go
package typedstore

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes the record at path into the target struct or map. The target
// must be a non-nil pointer. Fields map via the "json" struct tag, matching
// the default codec's value model; string values convert weakly, including
// durations and comma-separated slices.
func (s *Store) Scan(path string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("target of Scan must be a non-nil pointer, got %T", target)
	}

	section, ok := s.Get(path)
	if !ok {
		return fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}

	sectionMap, ok := section.(map[string]any)
	if !ok {
		return fmt.Errorf("path %q does not refer to a scannable record, but to type %T", path, section)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(sectionMap); err != nil {
		return fmt.Errorf("failed to scan %q into %T: %w", path, target, err)
	}

	return nil
}
