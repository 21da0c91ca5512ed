// File: typedstore/type.go
package typedstore

import (
	"fmt"
	"reflect"
	"strconv"
)

// String retrieves the value at path as a string.
// Attempts conversion from common types if the stored value isn't already a string.
func (s *Store) String(path string) (string, error) {
	val, found := s.Get(path)
	if !found {
		return "", fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}
	if val == nil {
		return "", nil // Treat nil as empty string for convenience
	}

	if strVal, ok := val.(string); ok {
		return strVal, nil
	}

	// Attempt conversion for the remaining decoded value kinds
	switch v := val.(type) {
	case int, int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(val).Int(), 10), nil
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(reflect.ValueOf(val).Uint(), 10), nil
	case float32, float64:
		return strconv.FormatFloat(reflect.ValueOf(val).Float(), 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", fmt.Errorf("cannot convert type %T to string for path %s", val, path)
	}
}

// Int64 retrieves the value at path as an int64.
// Attempts conversion from numeric types, parsable strings, and booleans.
func (s *Store) Int64(path string) (int64, error) {
	val, found := s.Get(path)
	if !found {
		return 0, fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}
	if val == nil {
		return 0, fmt.Errorf("value for path %s is nil, cannot convert to int64", path)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := v.Uint()
		// Check for potential overflow converting uint64 to int64
		maxInt64 := int64(^uint64(0) >> 1)
		if u > uint64(maxInt64) {
			return 0, fmt.Errorf("cannot convert unsigned integer %d to int64 for path %s: overflow", u, path)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		// Truncate float to int
		return int64(v.Float()), nil
	case reflect.String:
		str := v.String()
		if i, err := strconv.ParseInt(str, 0, 64); err == nil {
			return i, nil
		} else {
			if f, ferr := strconv.ParseFloat(str, 64); ferr == nil {
				return int64(f), nil // Truncate
			}
			return 0, fmt.Errorf("cannot convert string %q to int64 for path %s: %w", str, path, err)
		}
	case reflect.Bool:
		if v.Bool() {
			return 1, nil
		}
		return 0, nil
	}

	return 0, fmt.Errorf("cannot convert type %T to int64 for path %s", val, path)
}

// Bool retrieves the value at path as a bool.
// Attempts conversion from numeric types (0=false, non-zero=true) and parsable strings.
func (s *Store) Bool(path string) (bool, error) {
	val, found := s.Get(path)
	if !found {
		return false, fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}
	if val == nil {
		return false, fmt.Errorf("value for path %s is nil, cannot convert to bool", path)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool(), nil
	case reflect.String:
		str := v.String()
		if b, err := strconv.ParseBool(str); err == nil {
			return b, nil
		} else {
			return false, fmt.Errorf("cannot convert string %q to bool for path %s: %w", str, path, err)
		}
	// Numeric interpretation: 0 is false, non-zero is true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() != 0, nil
	case reflect.Float32, reflect.Float64:
		return v.Float() != 0, nil
	}

	return false, fmt.Errorf("cannot convert type %T to bool for path %s", val, path)
}

// Float64 retrieves the value at path as a float64.
// Attempts conversion from numeric types, parsable strings, and booleans.
func (s *Store) Float64(path string) (float64, error) {
	val, found := s.Get(path)
	if !found {
		return 0.0, fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}
	if val == nil {
		return 0.0, fmt.Errorf("value for path %s is nil, cannot convert to float64", path)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), nil
	case reflect.String:
		str := v.String()
		if f, err := strconv.ParseFloat(str, 64); err == nil {
			return f, nil
		} else {
			return 0.0, fmt.Errorf("cannot convert string %q to float64 for path %s: %w", str, path, err)
		}
	case reflect.Bool:
		if v.Bool() {
			return 1.0, nil
		}
		return 0.0, nil
	}

	return 0.0, fmt.Errorf("cannot convert type %T to float64 for path %s", val, path)
}
