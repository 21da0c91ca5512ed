// FILE: typedstore/infer_test.go
package typedstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInferScalars tests leaf descriptor synthesis
func TestInferScalars(t *testing.T) {
	t.Run("Bool", func(t *testing.T) {
		typ := Infer(true)
		require.IsType(t, &BoolType{}, typ)
		assert.Equal(t, true, typ.DefaultValue())
	})

	t.Run("String", func(t *testing.T) {
		typ := Infer("hello")
		require.IsType(t, &StringType{}, typ)
		assert.Equal(t, "hello", typ.DefaultValue())
	})

	t.Run("Float", func(t *testing.T) {
		typ := Infer(2.5)
		require.IsType(t, &NumberType{}, typ)
		assert.Equal(t, 2.5, typ.DefaultValue())
	})

	t.Run("Int", func(t *testing.T) {
		typ := Infer(7)
		require.IsType(t, &NumberType{}, typ)
		assert.Equal(t, 7.0, typ.DefaultValue())
	})

	t.Run("Nil", func(t *testing.T) {
		typ := Infer(nil)
		require.IsType(t, &NullableType{}, typ)
		assert.Nil(t, typ.DefaultValue())
	})

	t.Run("Fallback", func(t *testing.T) {
		typ := Infer(struct{ X int }{1})
		require.IsType(t, &AnyType{}, typ)
	})
}

// TestInferComposites tests recursive record and sequence synthesis
func TestInferComposites(t *testing.T) {
	t.Run("Dictionary", func(t *testing.T) {
		example := map[string]any{
			"host": "localhost",
			"port": 8080.0,
			"sub":  map[string]any{"on": true},
		}
		typ := Infer(example)
		require.IsType(t, &DictType{}, typ)

		assert.Equal(t, example, typ.DefaultValue())
		assert.True(t, typ.Validate(example).Valid)

		// Field descriptors are specific, not Any.
		r := typ.Validate(map[string]any{"host": 1, "port": 8080.0, "sub": map[string]any{"on": true}})
		require.False(t, r.Valid)
		assert.Equal(t, []Path{{"host"}}, r.Paths)
	})

	t.Run("ListFromFirstElement", func(t *testing.T) {
		typ := Infer([]any{1.0, 2.0})
		require.IsType(t, &ListType{}, typ)
		lt := typ.(*ListType)
		require.IsType(t, &NumberType{}, lt.Element())

		assert.False(t, typ.Validate([]any{"not a number"}).Valid)
	})

	t.Run("EmptyListElementIsAny", func(t *testing.T) {
		typ := Infer([]any{})
		require.IsType(t, &ListType{}, typ)
		assert.IsType(t, &AnyType{}, typ.(*ListType).Element())
		assert.True(t, typ.Validate([]any{"anything", 1.0}).Valid)
	})
}

// TestInferredDefaultIsValue tests that the inferred descriptor validates its origin
func TestInferredDefaultIsValue(t *testing.T) {
	values := []any{
		true,
		"s",
		3.0,
		map[string]any{"a": 1.0, "b": []any{"x"}},
		[]any{map[string]any{"k": "v"}},
	}

	for _, v := range values {
		typ := Infer(v)
		assert.Equal(t, v, typ.DefaultValue())
		assert.True(t, typ.Validate(v).Valid)
	}
}
