// Package reflectx rebuilds containers from walked children.
package reflectx

import (
	"reflect"

	"github.com/viant/walkology"
)

var (
	// InterfaceType is the interface{} type
	InterfaceType = reflect.TypeOf((*interface{})(nil)).Elem()
	// EmptyStructType is the struct{} type used as set element type
	EmptyStructType = reflect.TypeOf(struct{}{})
)

// Nillable returns true if nil can be stored in a t typed slot
func Nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	}
	return false
}

// Assignable returns true if value can be stored in a t typed slot
func Assignable(value interface{}, t reflect.Type) bool {
	if value == nil {
		return Nillable(t)
	}
	return reflect.TypeOf(value).AssignableTo(t)
}

// Fit returns t if all values are assignable to it, interface{} type otherwise
func Fit(t reflect.Type, values []interface{}) reflect.Type {
	for _, value := range values {
		if !Assignable(value, t) {
			return InterfaceType
		}
	}
	return t
}

// Set stores value in slot, nil stores slot zero value
func Set(slot reflect.Value, value interface{}) {
	if value == nil {
		slot.Set(reflect.Zero(slot.Type()))
		return
	}
	slot.Set(reflect.ValueOf(value))
}

// Hashable returns true if value can be used as a map key
func Hashable(value interface{}) bool {
	if value == nil {
		return true
	}
	return reflect.ValueOf(value).Comparable()
}

// Slice returns a sliceType slice holding items, or []interface{} when items do not fit sliceType elements
func Slice(sliceType reflect.Type, items []interface{}) interface{} {
	if elemType := Fit(sliceType.Elem(), items); elemType != sliceType.Elem() {
		sliceType = reflect.SliceOf(elemType)
	}
	ret := reflect.MakeSlice(sliceType, len(items), len(items))
	for i, item := range items {
		Set(ret.Index(i), item)
	}
	return ret.Interface()
}

// Array returns an arrayType array holding items, or [N]interface{} when items do not fit arrayType elements
func Array(arrayType reflect.Type, items []interface{}) interface{} {
	if elemType := Fit(arrayType.Elem(), items); elemType != arrayType.Elem() {
		arrayType = reflect.ArrayOf(len(items), elemType)
	}
	ret := reflect.New(arrayType).Elem()
	for i, item := range items {
		Set(ret.Index(i), item)
	}
	return ret.Interface()
}

// Map returns a mapType map holding keys[i]: values[i] entries; a nil values builds a set (struct{} elements).
// Key or element type is widened to interface{} when walked entries do not fit it.
// Colliding keys overwrite in order, the last one wins.
func Map(mapType reflect.Type, keys []interface{}, values []interface{}) (interface{}, error) {
	keyType := Fit(mapType.Key(), keys)
	elemType := mapType.Elem()
	if values != nil {
		elemType = Fit(elemType, values)
	}
	if keyType != mapType.Key() || elemType != mapType.Elem() {
		mapType = reflect.MapOf(keyType, elemType)
	}
	ret := reflect.MakeMapWithSize(mapType, len(keys))
	for i, key := range keys {
		if !Hashable(key) {
			return nil, &walkology.UnhashableError{Key: key}
		}
		keyValue := reflect.New(keyType).Elem()
		Set(keyValue, key)
		elemValue := reflect.New(elemType).Elem()
		if values != nil {
			Set(elemValue, values[i])
		}
		ret.SetMapIndex(keyValue, elemValue)
	}
	return ret.Interface(), nil
}
