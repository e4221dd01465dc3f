package stream

import (
	"reflect"

	"github.com/francoispqt/gojay"
	"github.com/viant/walkology"
)

type (
	//Option codec option
	Option func(o *options)

	options struct {
		cacheSize int
		types     []interface{}
	}
)

//WithCacheSize sets type descriptor cache capacity
func WithCacheSize(size int) Option {
	return func(o *options) {
		o.cacheSize = size
	}
}

//WithTypes registers types of supplied values
func WithTypes(values ...interface{}) Option {
	return func(o *options) {
		o.types = append(o.types, values...)
	}
}

// Codec encodes values as a self-describing JSON node stream, it implements walkology.Serializer.
//
// Every encoded value, the root included, is first offered to ReferenceHooks.OnReference;
// an intercepted value is written as a reference holding the base64url encoded token,
// and is resolved with ReferenceHooks.OnToken on decoding.
type Codec struct {
	types *registry
}

var _ walkology.Serializer = (*Codec)(nil)

// New creates a codec
func New(opts ...Option) *Codec {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	ret := &Codec{types: newRegistry(o.cacheSize)}
	for _, value := range o.types {
		ret.Register(value)
	}
	return ret
}

// Register registers value type so that streams from other codecs can be decoded.
// Types met while encoding are registered automatically.
func (c *Codec) Register(value interface{}) {
	if value == nil {
		return
	}
	c.types.register(reflect.TypeOf(value))
}

// RegisterName registers value type with a custom name
func (c *Codec) RegisterName(name string, value interface{}) error {
	return c.types.registerName(name, reflect.TypeOf(value))
}

// Marshal encodes value, hooks may be nil
func (c *Codec) Marshal(value interface{}, hooks walkology.ReferenceHooks) ([]byte, error) {
	enc := &encoder{types: c.types, hooks: hooks}
	root, err := enc.encode(value)
	if err != nil {
		return nil, err
	}
	return gojay.MarshalJSONObject(root)
}

// Unmarshal decodes data, hooks resolve reference tokens and may be nil for streams without references
func (c *Codec) Unmarshal(data []byte, hooks walkology.ReferenceHooks) (interface{}, error) {
	root := &node{}
	if err := gojay.UnmarshalJSONObject(data, root); err != nil {
		return nil, err
	}
	dec := &decoder{types: c.types, hooks: hooks}
	return dec.decode(root)
}
