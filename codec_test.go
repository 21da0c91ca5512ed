// FILE: typedstore/codec_test.go
package typedstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestJSONCodecRoundTrip tests lossless round-tripping of the value domain
func TestJSONCodecRoundTrip(t *testing.T) {
	codec := JSONCodec()

	tests := []struct {
		name  string
		value any
	}{
		{"Record", map[string]any{"a": 1.0, "b": "x", "c": true}},
		{"Nested", map[string]any{"a": map[string]any{"b": []any{1.0, "two"}}}},
		{"Sequence", []any{1.0, 2.0}},
		{"EmptySequence", []any{}},
		{"Scalar", "hello"},
		{"Number", 4.25},
		{"Bool", true},
		{"Null", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := codec.Encode(tt.value)
			require.NoError(t, err)

			got, err := codec.Decode(src)
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
		})
	}
}

// TestJSONCodecDecodeError tests malformed source rejection
func TestJSONCodecDecodeError(t *testing.T) {
	_, err := JSONCodec().Decode("{not json")
	assert.Error(t, err)
}

// TestTOMLCodec tests record round-tripping and the record-root requirement
func TestTOMLCodec(t *testing.T) {
	codec := TOMLCodec()

	t.Run("RoundTrip", func(t *testing.T) {
		value := map[string]any{
			"host": "localhost",
			"port": int64(8080),
		}

		src, err := codec.Encode(value)
		require.NoError(t, err)

		got, err := codec.Decode(src)
		require.NoError(t, err)
		assert.Equal(t, value, got)
	})

	t.Run("ScalarRootRejected", func(t *testing.T) {
		_, err := codec.Encode("just a string")
		assert.Error(t, err)
	})
}

// TestYAMLCodec tests record round-tripping
func TestYAMLCodec(t *testing.T) {
	codec := YAMLCodec()

	value := map[string]any{
		"host":  "localhost",
		"port":  8080,
		"debug": true,
	}

	src, err := codec.Encode(value)
	require.NoError(t, err)

	got, err := codec.Decode(src)
	require.NoError(t, err)
	assert.Equal(t, value, got)
}

// TestCodecNames tests the name accessors used by Debug output
func TestCodecNames(t *testing.T) {
	assert.Equal(t, "json", JSONCodec().Name())
	assert.Equal(t, "toml", TOMLCodec().Name())
	assert.Equal(t, "yaml", YAMLCodec().Name())
}
