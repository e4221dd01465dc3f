package visitor

import (
	"fmt"
	"reflect"
)

// MapVisitorOf creates a Visitor over map entries.
func MapVisitorOf(value interface{}) (Visitor[interface{}, interface{}], error) {
	switch actual := value.(type) {
	case map[string]interface{}:
		return typedMapVisitorOf(actual), nil
	case map[interface{}]interface{}:
		return typedMapVisitorOf(actual), nil
	case map[string]string:
		return typedMapVisitorOf(actual), nil
	case map[string]int:
		return typedMapVisitorOf(actual), nil
	}
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Map {
		return nil, fmt.Errorf("expected map, got %T", value)
	}
	visitor := &MapVisitor{data: val}
	return visitor.Visit, nil
}

func typedMapVisitorOf[K comparable, V any](aMap map[K]V) Visitor[interface{}, interface{}] {
	return func(f func(key interface{}, element interface{}) (bool, error)) error {
		for k, e := range aMap {
			continueVisit, err := f(k, e)
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}

// MapVisitor visits map entries via reflection
type MapVisitor struct {
	data reflect.Value
}

// Visit iterates over the map and calls f for each (key, element).
func (v *MapVisitor) Visit(f func(key interface{}, element interface{}) (bool, error)) error {
	iter := v.data.MapRange()
	for iter.Next() {
		continueVisit, err := f(iter.Key().Interface(), iter.Value().Interface())
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}
