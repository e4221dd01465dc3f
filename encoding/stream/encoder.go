package stream

import (
	"encoding"
	"encoding/base64"
	"reflect"
	"strconv"

	"github.com/viant/walkology"
	"github.com/viant/walkology/visitor"
)

var (
	binaryMarshalerType   = reflect.TypeOf((*encoding.BinaryMarshaler)(nil)).Elem()
	binaryUnmarshalerType = reflect.TypeOf((*encoding.BinaryUnmarshaler)(nil)).Elem()
)

// isBinaryLeaf returns true for value types round tripping through MarshalBinary/UnmarshalBinary, e.g. time.Time
func isBinaryLeaf(rType reflect.Type) bool {
	switch rType.Kind() {
	case reflect.Ptr, reflect.Interface:
		return false
	}
	return rType.Implements(binaryMarshalerType) && reflect.PtrTo(rType).Implements(binaryUnmarshalerType)
}

type encoder struct {
	types *registry
	hooks walkology.ReferenceHooks
}

// encode offers value to the hooks first, an intercepted value becomes a reference
func (e *encoder) encode(value interface{}) (*node, error) {
	if e.hooks != nil {
		token, ok, err := e.hooks.OnReference(value)
		if err != nil {
			return nil, err
		}
		if ok {
			ref := base64.URLEncoding.EncodeToString(token)
			return &node{Ref: &ref}, nil
		}
	}
	return e.encodeValue(value)
}

func (e *encoder) encodeValue(value interface{}) (*node, error) {
	if value == nil {
		return &node{Nil: true}, nil
	}
	rValue := reflect.ValueOf(value)
	rType := rValue.Type()
	desc, err := e.types.describe(rType)
	if err != nil {
		return nil, err
	}
	ret := &node{Type: desc}
	if isBinaryLeaf(rType) {
		data, err := value.(encoding.BinaryMarshaler).MarshalBinary()
		if err != nil {
			return nil, err
		}
		ret.Text = base64.StdEncoding.EncodeToString(data)
		return ret, nil
	}
	switch rType.Kind() {
	case reflect.Bool:
		ret.Bool = rValue.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		ret.Text = strconv.FormatInt(rValue.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		ret.Uint = rValue.Uint()
	case reflect.Float32, reflect.Float64:
		ret.Text = strconv.FormatFloat(rValue.Float(), 'g', -1, rType.Bits())
	case reflect.Complex64, reflect.Complex128:
		ret.Text = strconv.FormatComplex(rValue.Complex(), 'g', -1, rType.Bits())
	case reflect.String:
		ret.Text = rValue.String()
	case reflect.Slice:
		if rValue.IsNil() {
			ret.Nil = true
			return ret, nil
		}
		if rType.Elem().Kind() == reflect.Uint8 {
			ret.Text = base64.StdEncoding.EncodeToString(rValue.Bytes())
			return ret, nil
		}
		fallthrough
	case reflect.Array:
		if ret.Items, err = e.encodeItems(value); err != nil {
			return nil, err
		}
	case reflect.Map:
		if rValue.IsNil() {
			ret.Nil = true
			return ret, nil
		}
		if ret.Entries, err = e.encodeEntries(value); err != nil {
			return nil, err
		}
	case reflect.Ptr:
		if rValue.IsNil() {
			ret.Nil = true
			return ret, nil
		}
		if ret.Elem, err = e.encode(rValue.Elem().Interface()); err != nil {
			return nil, err
		}
	case reflect.Struct:
		if ret.Fields, err = e.encodeFields(value); err != nil {
			return nil, err
		}
	default:
		return nil, &UnsupportedTypeError{Type: rType}
	}
	return ret, nil
}

func (e *encoder) encodeItems(value interface{}) (nodes, error) {
	visit, err := visitor.SliceVisitorOf(value)
	if err != nil {
		return nil, err
	}
	var items nodes
	err = visit(func(_ int, element interface{}) (bool, error) {
		item, err := e.encode(element)
		if err != nil {
			return false, err
		}
		items = append(items, item)
		return true, nil
	})
	return items, err
}

func (e *encoder) encodeEntries(value interface{}) (entries, error) {
	visit, err := visitor.MapVisitorOf(value)
	if err != nil {
		return nil, err
	}
	var ret entries
	err = visit(func(key interface{}, element interface{}) (bool, error) {
		keyNode, err := e.encode(key)
		if err != nil {
			return false, err
		}
		valueNode, err := e.encode(element)
		if err != nil {
			return false, err
		}
		ret = append(ret, &entry{Key: keyNode, Value: valueNode})
		return true, nil
	})
	return ret, err
}

func (e *encoder) encodeFields(value interface{}) (fields, error) {
	visit, err := visitor.StructVisitorOf(value)
	if err != nil {
		return nil, err
	}
	var ret fields
	err = visit(func(name string, element interface{}) (bool, error) {
		valueNode, err := e.encode(element)
		if err != nil {
			return false, err
		}
		ret = append(ret, &field{Name: name, Value: valueNode})
		return true, nil
	})
	return ret, err
}
