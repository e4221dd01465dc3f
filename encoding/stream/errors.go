package stream

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrUnresolvedReference indicates a stream holding a token was decoded without reference hooks.
var ErrUnresolvedReference = errors.New("stream: unresolved reference")

// UnregisteredTypeError reports a type name unknown to the codec
type UnregisteredTypeError struct {
	Name string
}

func (e *UnregisteredTypeError) Error() string {
	return fmt.Sprintf("stream: unregistered type %q", e.Name)
}

// UnsupportedTypeError reports a type the codec cannot encode
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("stream: unsupported type %v", e.Type)
}

// TypeMismatchError reports a decoded value that does not fit its struct field or pointer target
type TypeMismatchError struct {
	Target string
	Type   reflect.Type
	Value  interface{}
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("stream: cannot assign %T to %v %v", e.Value, e.Target, e.Type)
}
