package visitor

import (
	"fmt"
	"reflect"
)

// SliceVisitorOf creates a Visitor over slice or array items, the key is the item index.
func SliceVisitorOf(value interface{}) (Visitor[int, interface{}], error) {
	if items, ok := value.([]interface{}); ok {
		return func(f func(key int, element interface{}) (bool, error)) error {
			for i, item := range items {
				continueVisit, err := f(i, item)
				if err != nil {
					return err
				}
				if !continueVisit {
					break
				}
			}
			return nil
		}, nil
	}
	val := reflect.ValueOf(value)
	switch val.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, fmt.Errorf("expected slice or array, got %T", value)
	}
	visitor := &SliceVisitor{data: val}
	return visitor.Visit, nil
}

// SliceVisitor visits slice or array items via reflection
type SliceVisitor struct {
	data reflect.Value
}

// Visit iterates over items, calling the provided function for each element.
func (v *SliceVisitor) Visit(f func(key int, element interface{}) (bool, error)) error {
	for i := 0; i < v.data.Len(); i++ {
		continueVisit, err := f(i, v.data.Index(i).Interface())
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}
