// File: typedstore/doc.go

// Package typedstore provides a typed, path-addressable value store persisted
// through a pluggable string-keyed storage capability, with a structural type
// system for validation, default-value synthesis, automatic repair of invalid
// persisted data, and optimistic conflict detection against external writers.
//
// Features:
//   - Structural descriptors: Any, Bool, String, Number, Nullable, Dict, List, Union
//   - Validation with precise path reporting across composite shapes
//   - Default synthesis and type inference from an example value
//   - Dot-path get/set/update/reset with copy-on-write mutation
//   - Auto-fix: invalid subtrees replaced by their descriptor defaults
//   - Optimistic compare-before-write conflict detection
//   - Debounced persistence with explicit Flush and Cancel
//   - Pluggable codecs (JSON, TOML, YAML) and storage adapters
//
// Quick Start:
//
//	storage := typedstore.NewMemoryStorage()
//
//	settings, err := typedstore.New("settings", typedstore.Options{
//	    Type: typedstore.Dict(map[string]typedstore.Type{
//	        "host": typedstore.String().MinLength(1).Default("localhost"),
//	        "port": typedstore.Number().Integer().Min(1).Max(65535).Default(8080),
//	    }),
//	    Storage: storage,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	host, _ := settings.String("host")
//	_ = settings.Set("port", 9090)
//
// Custom construction:
//
//	s, err := typedstore.NewBuilder("settings").
//	    WithDefault(map[string]any{"theme": "dark"}).
//	    WithStorage(storage).
//	    WithDelay(100 * time.Millisecond).
//	    WithOnConflict(func(stored, lastKnown string) {
//	        // another writer changed the backing entry
//	    }).
//	    Build()
//
// Thread Safety:
// All store operations are safe for concurrent use. The package uses a
// read-write mutex and releases it around storage I/O and callbacks.
package typedstore
