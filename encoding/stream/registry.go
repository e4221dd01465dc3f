package stream

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"
	"time"

	"github.com/viant/walkology/internal/log"
	"github.com/viant/walkology/internal/lru"
	"github.com/viant/walkology/visitor"
)

var builtinTypes = []reflect.Type{
	reflect.TypeOf(false),
	reflect.TypeOf(0), reflect.TypeOf(int8(0)), reflect.TypeOf(int16(0)), reflect.TypeOf(int32(0)), reflect.TypeOf(int64(0)),
	reflect.TypeOf(uint(0)), reflect.TypeOf(uint8(0)), reflect.TypeOf(uint16(0)), reflect.TypeOf(uint32(0)), reflect.TypeOf(uint64(0)), reflect.TypeOf(uintptr(0)),
	reflect.TypeOf(float32(0)), reflect.TypeOf(float64(0)),
	reflect.TypeOf(complex64(0)), reflect.TypeOf(complex128(0)),
	reflect.TypeOf(""),
	reflect.TypeOf((*interface{})(nil)).Elem(),
	reflect.TypeOf((*error)(nil)).Elem(),
	reflect.TypeOf(time.Time{}),
	reflect.TypeOf(time.Duration(0)),
}

// registry maps types to stream names and back
type registry struct {
	mux         sync.Mutex
	byName      *visitor.SyncMap[string, reflect.Type]
	byType      *visitor.SyncMap[reflect.Type, string]
	descriptors *lru.Cache[reflect.Type, *typeNode]
}

func newRegistry(cacheSize int) *registry {
	ret := &registry{
		byName:      visitor.NewSyncMap[string, reflect.Type](),
		byType:      visitor.NewSyncMap[reflect.Type, string](),
		descriptors: lru.New[reflect.Type, *typeNode](cacheSize),
	}
	for _, rType := range builtinTypes {
		ret.register(rType)
	}
	return ret
}

func typeName(rType reflect.Type) string {
	if rType.PkgPath() != "" && rType.Name() != "" {
		return rType.PkgPath() + "." + rType.Name()
	}
	return rType.String()
}

// register returns the name rType is registered with, registering it on first use.
// Distinct types sharing a name, e.g. function local types, get a numeric suffix.
func (r *registry) register(rType reflect.Type) string {
	if name, ok := r.byType.Get(rType); ok {
		return name
	}
	r.mux.Lock()
	defer r.mux.Unlock()
	if name, ok := r.byType.Get(rType); ok {
		return name
	}
	base := typeName(rType)
	name := base
	for i := 2; ; i++ {
		if _, taken := r.byName.Get(name); !taken {
			break
		}
		name = base + "#" + strconv.Itoa(i)
	}
	r.byName.Put(name, rType)
	r.byType.Put(rType, name)
	log.Tracef("stream: registered %v as %q", rType, name)
	return name
}

func (r *registry) registerName(name string, rType reflect.Type) error {
	r.mux.Lock()
	defer r.mux.Unlock()
	if prev, ok := r.byName.Get(name); ok && prev != rType {
		return fmt.Errorf("stream: name %q already registered for %v", name, prev)
	}
	if prev, ok := r.byType.Get(rType); ok && prev != name {
		return fmt.Errorf("stream: type %v already registered as %q", rType, prev)
	}
	r.byName.Put(name, rType)
	r.byType.Put(rType, name)
	return nil
}

// describe returns rType descriptor
func (r *registry) describe(rType reflect.Type) (*typeNode, error) {
	if desc, ok := r.descriptors.Get(rType); ok {
		return desc, nil
	}
	desc, err := r.buildDescriptor(rType)
	if err != nil {
		return nil, err
	}
	r.descriptors.Set(rType, desc)
	return desc, nil
}

func (r *registry) buildDescriptor(rType reflect.Type) (*typeNode, error) {
	switch rType.Kind() {
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return nil, &UnsupportedTypeError{Type: rType}
	}
	if rType.Name() != "" {
		return &typeNode{Name: r.register(rType)}, nil
	}
	switch rType.Kind() {
	case reflect.Slice, reflect.Array, reflect.Ptr:
		elem, err := r.describe(rType.Elem())
		if err != nil {
			return nil, err
		}
		desc := &typeNode{Kind: kindSlice, Elem: elem}
		switch rType.Kind() {
		case reflect.Array:
			desc.Kind = kindArray
			desc.Len = rType.Len()
		case reflect.Ptr:
			desc.Kind = kindPtr
		}
		return desc, nil
	case reflect.Map:
		key, err := r.describe(rType.Key())
		if err != nil {
			return nil, err
		}
		elem, err := r.describe(rType.Elem())
		if err != nil {
			return nil, err
		}
		return &typeNode{Kind: kindMap, Key: key, Elem: elem}, nil
	}
	return &typeNode{Name: r.register(rType)}, nil
}

// resolve returns the type desc describes
func (r *registry) resolve(desc *typeNode) (reflect.Type, error) {
	if desc == nil {
		return nil, fmt.Errorf("stream: missing type")
	}
	if desc.Kind == "" {
		rType, ok := r.byName.Get(desc.Name)
		if !ok {
			return nil, &UnregisteredTypeError{Name: desc.Name}
		}
		return rType, nil
	}
	elem, err := r.resolve(desc.Elem)
	if err != nil {
		return nil, err
	}
	switch desc.Kind {
	case kindSlice:
		return reflect.SliceOf(elem), nil
	case kindArray:
		if desc.Len < 0 {
			return nil, fmt.Errorf("stream: invalid array length %d", desc.Len)
		}
		return reflect.ArrayOf(desc.Len, elem), nil
	case kindPtr:
		return reflect.PtrTo(elem), nil
	case kindMap:
		key, err := r.resolve(desc.Key)
		if err != nil {
			return nil, err
		}
		if !key.Comparable() {
			return nil, fmt.Errorf("stream: invalid map key type %v", key)
		}
		return reflect.MapOf(key, elem), nil
	}
	return nil, fmt.Errorf("stream: unknown type kind %q", desc.Kind)
}
