// File: typedstore/timing.go
package typedstore

import "time"

// Core timing constants.
// These define the fundamental timing behavior of debounced persistence.
const (
	// DefaultDelay is the debounce window suggested for stores that mutate
	// frequently. Zero (write-through) remains the constructor default.
	DefaultDelay = 100 * time.Millisecond
)

// Derived timing relationships for tests.
const (
	// debounceSettleMultiplier ensures sufficient time for a pending write to fire
	debounceSettleMultiplier = 3 // Wait 3x the delay for value stabilization
)
