package walkology

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/viant/xunsafe"
)

// NodeID represents runtime identity of a reference shaped value
type NodeID struct {
	rType reflect.Type
	ptr   unsafe.Pointer
	len   int
}

// Type returns identified value type
func (n NodeID) Type() reflect.Type {
	return n.rType
}

func (n NodeID) String() string {
	if n.rType == nil {
		return "<none>"
	}
	if n.rType.Kind() == reflect.Slice {
		return fmt.Sprintf("%v@%p[%d]", n.rType, n.ptr, n.len)
	}
	return fmt.Sprintf("%v@%p", n.rType, n.ptr)
}

// IDOf returns value identity.
// Only non-nil pointers, maps, channels and slices with allocated backing
// storage carry identity; scalars, strings, arrays and structs held by value
// do not, so ok is false for them.
func IDOf(value interface{}) (NodeID, bool) {
	if value == nil {
		return NodeID{}, false
	}
	rType := reflect.TypeOf(value)
	switch rType.Kind() {
	case reflect.Ptr:
		if rType.Elem().Size() == 0 { //zero size allocations may share an address
			return NodeID{}, false
		}
		return pointerID(rType, value)
	case reflect.Map, reflect.Chan:
		return pointerID(rType, value)
	case reflect.Slice:
		if rType.Elem().Size() == 0 {
			return NodeID{}, false
		}
		rValue := reflect.ValueOf(value)
		if rValue.Cap() == 0 {
			return NodeID{}, false
		}
		return NodeID{rType: rType, ptr: rValue.UnsafePointer(), len: rValue.Len()}, true
	}
	return NodeID{}, false
}

func pointerID(rType reflect.Type, value interface{}) (NodeID, bool) {
	ptr := xunsafe.AsPointer(value)
	if ptr == nil {
		return NodeID{}, false
	}
	return NodeID{rType: rType, ptr: ptr}, true
}
