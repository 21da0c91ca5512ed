// File: typedstore/infer.go
package typedstore

// Infer synthesizes the most specific descriptor matching v's runtime shape:
// records become dictionaries with recursively inferred fields, sequences
// become lists (element descriptor taken from the first element, Any when the
// sequence is empty), scalars become the matching leaf, nil becomes Nullable,
// and anything else falls back to Any. The inferred descriptor's default is
// v itself.
//
// This exists to backfill Options.Type when a store is constructed with only
// a default value.
func Infer(v any) Type {
	switch tv := v.(type) {
	case nil:
		return Nullable()
	case bool:
		return Bool().Default(tv)
	case string:
		return String().Default(tv)
	case map[string]any:
		fields := make(map[string]Type, len(tv))
		for name, fv := range tv {
			fields[name] = Infer(fv)
		}
		return Dict(fields).Default(tv)
	case []any:
		elem := Type(Any())
		if len(tv) > 0 {
			elem = Infer(tv[0])
		}
		return List(elem).Default(tv)
	}

	if f, ok := numberValue(v); ok {
		return Number().Default(f)
	}

	// Structs, channels, funcs and the like carry no structural rule.
	return Any().Default(v)
}
