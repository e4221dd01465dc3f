package stream

import (
	"encoding"
	"encoding/base64"
	"fmt"
	"reflect"
	"strconv"

	"github.com/viant/walkology"
	"github.com/viant/walkology/internal/reflectx"
	"github.com/viant/walkology/visitor"
	"github.com/viant/xunsafe"
)

type decoder struct {
	types *registry
	hooks walkology.ReferenceHooks
}

func (d *decoder) decode(n *node) (interface{}, error) {
	if n == nil {
		return nil, fmt.Errorf("stream: missing node")
	}
	if n.Ref != nil {
		if d.hooks == nil {
			return nil, ErrUnresolvedReference
		}
		token, err := base64.URLEncoding.DecodeString(*n.Ref)
		if err != nil {
			return nil, err
		}
		return d.hooks.OnToken(token)
	}
	if n.Type == nil {
		if n.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("stream: missing type")
	}
	rType, err := d.types.resolve(n.Type)
	if err != nil {
		return nil, err
	}
	if isBinaryLeaf(rType) {
		return d.decodeBinary(rType, n)
	}
	rValue := reflect.New(rType).Elem()
	switch rType.Kind() {
	case reflect.Bool:
		rValue.SetBool(n.Bool)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(n.Text, 10, rType.Bits())
		if err != nil {
			return nil, err
		}
		rValue.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		rValue.SetUint(n.Uint)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(n.Text, rType.Bits())
		if err != nil {
			return nil, err
		}
		rValue.SetFloat(f)
	case reflect.Complex64, reflect.Complex128:
		c, err := strconv.ParseComplex(n.Text, rType.Bits())
		if err != nil {
			return nil, err
		}
		rValue.SetComplex(c)
	case reflect.String:
		rValue.SetString(n.Text)
	case reflect.Slice:
		if n.Nil {
			break
		}
		if rType.Elem().Kind() == reflect.Uint8 {
			data, err := base64.StdEncoding.DecodeString(n.Text)
			if err != nil {
				return nil, err
			}
			rValue.SetBytes(data)
			break
		}
		items, err := d.decodeItems(n.Items)
		if err != nil {
			return nil, err
		}
		return reflectx.Slice(rType, items), nil
	case reflect.Array:
		items, err := d.decodeItems(n.Items)
		if err != nil {
			return nil, err
		}
		if len(items) != rType.Len() {
			return nil, fmt.Errorf("stream: expected %d items for %v, got %d", rType.Len(), rType, len(items))
		}
		return reflectx.Array(rType, items), nil
	case reflect.Map:
		if n.Nil {
			break
		}
		keys, values, err := d.decodeEntries(n.Entries)
		if err != nil {
			return nil, err
		}
		return reflectx.Map(rType, keys, values)
	case reflect.Ptr:
		if n.Nil {
			break
		}
		elem, err := d.decode(n.Elem)
		if err != nil {
			return nil, err
		}
		if !reflectx.Assignable(elem, rType.Elem()) {
			return nil, &TypeMismatchError{Target: "pointer to", Type: rType.Elem(), Value: elem}
		}
		ptr := reflect.New(rType.Elem())
		reflectx.Set(ptr.Elem(), elem)
		return ptr.Interface(), nil
	case reflect.Struct:
		return d.decodeStruct(rType, n.Fields)
	default:
		return nil, &UnsupportedTypeError{Type: rType}
	}
	return rValue.Interface(), nil
}

func (d *decoder) decodeBinary(rType reflect.Type, n *node) (interface{}, error) {
	data, err := base64.StdEncoding.DecodeString(n.Text)
	if err != nil {
		return nil, err
	}
	ptr := reflect.New(rType)
	if err = ptr.Interface().(encoding.BinaryUnmarshaler).UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return ptr.Elem().Interface(), nil
}

func (d *decoder) decodeItems(items nodes) ([]interface{}, error) {
	ret := make([]interface{}, len(items))
	for i, item := range items {
		value, err := d.decode(item)
		if err != nil {
			return nil, err
		}
		ret[i] = value
	}
	return ret, nil
}

func (d *decoder) decodeEntries(items entries) ([]interface{}, []interface{}, error) {
	keys := make([]interface{}, len(items))
	values := make([]interface{}, len(items))
	for i, item := range items {
		key, err := d.decode(item.Key)
		if err != nil {
			return nil, nil, err
		}
		value, err := d.decode(item.Value)
		if err != nil {
			return nil, nil, err
		}
		keys[i], values[i] = key, value
	}
	return keys, values, nil
}

// decodeStruct sets decoded fields; fields unknown to rType or ignored are skipped
func (d *decoder) decodeStruct(rType reflect.Type, items fields) (interface{}, error) {
	ptr := reflect.New(rType)
	structPtr := xunsafe.AsPointer(ptr.Interface())
	xStruct := visitor.StructOf(rType)
	for _, item := range items {
		aField := xStruct.Lookup(item.Name)
		if aField == nil || aField.Ignore {
			continue
		}
		value, err := d.decode(item.Value)
		if err != nil {
			return nil, err
		}
		if !reflectx.Assignable(value, aField.Type) {
			return nil, &TypeMismatchError{Target: "field " + rType.String() + "." + aField.Name, Type: aField.Type, Value: value}
		}
		reflectx.Set(aField.Value(structPtr), value)
	}
	return ptr.Elem().Interface(), nil
}
