package stream

import "github.com/francoispqt/gojay"

const (
	kindSlice = "slice"
	kindArray = "array"
	kindMap   = "map"
	kindPtr   = "ptr"
)

type (
	// typeNode describes a value type: a registered name, or a composite of described types
	typeNode struct {
		Name string
		Kind string
		Len  int
		Key  *typeNode
		Elem *typeNode
	}

	// node is a single encoded value, or a reference placeholder holding a base64url token.
	// Signed integers are written as Text, the JSON number of math.MinInt64 does not decode.
	node struct {
		Type    *typeNode
		Ref     *string
		Nil     bool
		Bool    bool
		Uint    uint64
		Text    string
		Items   nodes
		Entries entries
		Fields  fields
		Elem    *node
	}

	nodes []*node

	entry struct {
		Key   *node
		Value *node
	}

	entries []*entry

	field struct {
		Name  string
		Value *node
	}

	fields []*field
)

func (t *typeNode) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKeyOmitEmpty("name", t.Name)
	enc.StringKeyOmitEmpty("kind", t.Kind)
	enc.IntKeyOmitEmpty("len", t.Len)
	enc.ObjectKeyOmitEmpty("key", t.Key)
	enc.ObjectKeyOmitEmpty("elem", t.Elem)
}

func (t *typeNode) IsNil() bool {
	return t == nil
}

func (t *typeNode) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	switch key {
	case "name":
		return dec.String(&t.Name)
	case "kind":
		return dec.String(&t.Kind)
	case "len":
		return dec.Int(&t.Len)
	case "key":
		t.Key = &typeNode{}
		return dec.Object(t.Key)
	case "elem":
		t.Elem = &typeNode{}
		return dec.Object(t.Elem)
	}
	return nil
}

func (t *typeNode) NKeys() int {
	return 0
}

func (n *node) MarshalJSONObject(enc *gojay.Encoder) {
	if n.Ref != nil {
		enc.StringKey("ref", *n.Ref)
		return
	}
	enc.ObjectKeyOmitEmpty("type", n.Type)
	enc.BoolKeyOmitEmpty("nil", n.Nil)
	enc.BoolKeyOmitEmpty("bool", n.Bool)
	enc.Uint64KeyOmitEmpty("uint", n.Uint)
	enc.StringKeyOmitEmpty("text", n.Text)
	enc.ArrayKeyOmitEmpty("items", n.Items)
	enc.ArrayKeyOmitEmpty("entries", n.Entries)
	enc.ArrayKeyOmitEmpty("fields", n.Fields)
	enc.ObjectKeyOmitEmpty("elem", n.Elem)
}

func (n *node) IsNil() bool {
	return n == nil
}

func (n *node) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	switch key {
	case "ref":
		n.Ref = new(string)
		return dec.String(n.Ref)
	case "type":
		n.Type = &typeNode{}
		return dec.Object(n.Type)
	case "nil":
		return dec.Bool(&n.Nil)
	case "bool":
		return dec.Bool(&n.Bool)
	case "uint":
		return dec.Uint64(&n.Uint)
	case "text":
		return dec.String(&n.Text)
	case "items":
		return dec.Array(&n.Items)
	case "entries":
		return dec.Array(&n.Entries)
	case "fields":
		return dec.Array(&n.Fields)
	case "elem":
		n.Elem = &node{}
		return dec.Object(n.Elem)
	}
	return nil
}

func (n *node) NKeys() int {
	return 0
}

func (n nodes) MarshalJSONArray(enc *gojay.Encoder) {
	for _, item := range n {
		enc.Object(item)
	}
}

func (n nodes) IsNil() bool {
	return len(n) == 0
}

func (n *nodes) UnmarshalJSONArray(dec *gojay.Decoder) error {
	item := &node{}
	if err := dec.Object(item); err != nil {
		return err
	}
	*n = append(*n, item)
	return nil
}

func (e *entry) MarshalJSONObject(enc *gojay.Encoder) {
	enc.ObjectKey("key", e.Key)
	enc.ObjectKey("value", e.Value)
}

func (e *entry) IsNil() bool {
	return e == nil
}

func (e *entry) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	switch key {
	case "key":
		e.Key = &node{}
		return dec.Object(e.Key)
	case "value":
		e.Value = &node{}
		return dec.Object(e.Value)
	}
	return nil
}

func (e *entry) NKeys() int {
	return 2
}

func (e entries) MarshalJSONArray(enc *gojay.Encoder) {
	for _, item := range e {
		enc.Object(item)
	}
}

func (e entries) IsNil() bool {
	return len(e) == 0
}

func (e *entries) UnmarshalJSONArray(dec *gojay.Decoder) error {
	item := &entry{}
	if err := dec.Object(item); err != nil {
		return err
	}
	*e = append(*e, item)
	return nil
}

func (f *field) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("name", f.Name)
	enc.ObjectKey("value", f.Value)
}

func (f *field) IsNil() bool {
	return f == nil
}

func (f *field) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	switch key {
	case "name":
		return dec.String(&f.Name)
	case "value":
		f.Value = &node{}
		return dec.Object(f.Value)
	}
	return nil
}

func (f *field) NKeys() int {
	return 2
}

func (f fields) MarshalJSONArray(enc *gojay.Encoder) {
	for _, item := range f {
		enc.Object(item)
	}
}

func (f fields) IsNil() bool {
	return len(f) == 0
}

func (f *fields) UnmarshalJSONArray(dec *gojay.Decoder) error {
	item := &field{}
	if err := dec.Object(item); err != nil {
		return err
	}
	*f = append(*f, item)
	return nil
}
