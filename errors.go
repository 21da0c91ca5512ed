// File: typedstore/errors.go
package typedstore

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoName is returned when a store is constructed without a name.
	ErrNoName = errors.New("store name cannot be empty")

	// ErrNoStorage is returned when a store is constructed without a storage
	// capability. There is no ambient default; pass MemoryStorage, FileStorage,
	// or any other Storage implementation explicitly.
	ErrNoStorage = errors.New("no storage capability provided")

	// ErrPathNotFound is returned by Set, Update, and Reset when the path does
	// not structurally exist in the current value. This is a recoverable
	// condition, not a programming defect.
	ErrPathNotFound = errors.New("path does not exist")
)

// InvalidValueError reports a value that failed structural validation and was
// not repaired. Paths lists every offending location; a root failure appears
// as a single empty Path.
type InvalidValueError struct {
	Paths []Path
}

func (e *InvalidValueError) Error() string {
	rendered := make([]string, len(e.Paths))
	for i, p := range e.Paths {
		if len(p) == 0 {
			rendered[i] = "(root)"
		} else {
			rendered[i] = strings.Join(p, ".")
		}
	}
	return fmt.Sprintf("invalid value at %s", strings.Join(rendered, ", "))
}

// ConflictError reports that the backing storage was changed by another
// writer since this store last observed it. Stored is the string currently in
// storage and LastKnown is this store's baseline; either may be empty when
// the corresponding side holds no value.
type ConflictError struct {
	Stored    string
	LastKnown string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("storage conflict: stored %q diverged from last known %q", e.Stored, e.LastKnown)
}
