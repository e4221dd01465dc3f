package collection

import (
	"fmt"
	"reflect"

	"github.com/viant/walkology/internal/reflectx"
)

// Shape represents a container shape recognised by the collection walker.
//
// The set of shapes is closed. Recognising another container means adding a
// Shape constant, a ShapeOf case and a rebuild branch in walker.descend.
type Shape int

const (
	// Opaque is a leaf without walked children
	Opaque Shape = iota
	// Sequence is an ordered slice; byte slices are opaque
	Sequence
	// Mapping is a map with walked keys and values
	Mapping
	// Tuple is a fixed arity Go array
	Tuple
	// Set is a map with struct{} elements
	Set
)

// String returns a string representation of the shape.
func (s Shape) String() string {
	switch s {
	case Opaque:
		return "Opaque"
	case Sequence:
		return "Sequence"
	case Mapping:
		return "Mapping"
	case Tuple:
		return "Tuple"
	case Set:
		return "Set"
	default:
		return fmt.Sprintf("Shape(%d)", s)
	}
}

// IsContainer returns true for shapes with walked children
func (s Shape) IsContainer() bool {
	return s >= Sequence && s <= Set
}

// ShapeOf returns value shape
func ShapeOf(value interface{}) Shape {
	if value == nil {
		return Opaque
	}
	rType := reflect.TypeOf(value)
	switch rType.Kind() {
	case reflect.Slice:
		if rType.Elem().Kind() == reflect.Uint8 {
			return Opaque
		}
		return Sequence
	case reflect.Array:
		return Tuple
	case reflect.Map:
		if rType.Elem() == reflectx.EmptyStructType {
			return Set
		}
		return Mapping
	}
	return Opaque
}
