package visitor

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/viant/tagly/format"
	"github.com/viant/xunsafe"
)

var structCache = NewSyncMap[reflect.Type, *Struct]()

type (
	// Struct represents struct fields plan
	Struct struct {
		Type   reflect.Type
		Fields []*Field
		index  map[string]int
	}

	// Field represents a struct field
	Field struct {
		Name   string
		Type   reflect.Type
		Ignore bool
		xField *xunsafe.Field
	}
)

// Value returns settable field value of the struct at structPtr, unexported fields included
func (f *Field) Value(structPtr unsafe.Pointer) reflect.Value {
	return reflect.NewAt(f.Type, f.xField.Pointer(structPtr)).Elem()
}

// Lookup returns a field by name or nil
func (s *Struct) Lookup(name string) *Field {
	idx, ok := s.index[name]
	if !ok {
		return nil
	}
	return s.Fields[idx]
}

// StructOf returns cached fields plan for a struct type
func StructOf(structType reflect.Type) *Struct {
	if ret, ok := structCache.Get(structType); ok {
		return ret
	}
	ret := &Struct{Type: structType, index: make(map[string]int, structType.NumField())}
	for i := 0; i < structType.NumField(); i++ {
		structField := structType.Field(i)
		field := &Field{Name: structField.Name, Type: structField.Type, xField: xunsafe.NewField(structField)}
		if tag, _ := format.Parse(structField.Tag); tag != nil {
			field.Ignore = tag.Ignore
		}
		ret.index[field.Name] = i
		ret.Fields = append(ret.Fields, field)
	}
	return structCache.PutIfAbsent(structType, ret)
}

// StructVisitor visits struct fields
type StructVisitor struct {
	value   interface{}
	ptr     unsafe.Pointer
	xStruct *Struct
}

// StructVisitorOf creates a StructVisitor from any struct value.
func StructVisitorOf(value interface{}) (Visitor[string, interface{}], error) {
	valueType := reflect.TypeOf(value)
	if valueType == nil {
		return nil, fmt.Errorf("expected struct or pointer to struct, got nil")
	}
	isPtr := false
	var structType reflect.Type
	switch valueType.Kind() {
	case reflect.Ptr:
		if valueType.Elem().Kind() != reflect.Struct {
			return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
		}
		isPtr = true
		structType = valueType.Elem()
	case reflect.Struct:
		structType = valueType
	default:
		return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
	}

	if !isPtr {
		rPointer := reflect.New(structType)
		rPointer.Elem().Set(reflect.ValueOf(value))
		value = rPointer.Interface()
	}
	visitor := &StructVisitor{
		value:   value,
		ptr:     xunsafe.AsPointer(value),
		xStruct: StructOf(structType),
	}
	return visitor.Visit, nil
}

// Visit iterates over not ignored struct fields, calling the provided function with each field name and value.
func (w *StructVisitor) Visit(f func(key string, element interface{}) (bool, error)) error {
	if w.ptr == nil {
		return nil
	}
	for _, field := range w.xStruct.Fields {
		if field.Ignore {
			continue
		}
		continueVisit, err := f(field.Name, field.Value(w.ptr).Interface())
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}
