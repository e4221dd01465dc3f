package walkology

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrCyclicStructure indicates a node identity was reached twice within one walk.
	ErrCyclicStructure = errors.New("cannot walk recursive structures")

	// ErrDepthExceeded indicates a walk went deeper than the configured limit.
	ErrDepthExceeded = errors.New("walk depth exceeded")

	// ErrUnhashable indicates a walked mapping key or set element cannot be used as a Go map key.
	ErrUnhashable = errors.New("unhashable key")
)

// CyclicStructureError reports the node whose identity was entered twice.
type CyclicStructureError struct {
	// Type is the type of the repeated node
	Type reflect.Type
	// ID is the repeated identity
	ID NodeID
}

// Error returns a human-readable error message.
func (e *CyclicStructureError) Error() string {
	return fmt.Sprintf("%v: %v visited more than once", ErrCyclicStructure, e.Type)
}

// Is reports whether target is ErrCyclicStructure.
func (e *CyclicStructureError) Is(target error) bool {
	return target == ErrCyclicStructure
}

// DepthExceededError reports a walk exceeding MaxDepth.
type DepthExceededError struct {
	Depth int
	Limit int
}

func (e *DepthExceededError) Error() string {
	return fmt.Sprintf("%v: depth %d, limit %d", ErrDepthExceeded, e.Depth, e.Limit)
}

// Is reports whether target is ErrDepthExceeded.
func (e *DepthExceededError) Is(target error) bool {
	return target == ErrDepthExceeded
}

// UnhashableError reports a walked key of a type or value Go maps cannot hold.
type UnhashableError struct {
	Key interface{}
}

func (e *UnhashableError) Error() string {
	return fmt.Sprintf("%v: %T", ErrUnhashable, e.Key)
}

// Is reports whether target is ErrUnhashable.
func (e *UnhashableError) Is(target error) bool {
	return target == ErrUnhashable
}
