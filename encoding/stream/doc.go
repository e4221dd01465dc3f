// Package stream implements a reflection based serializer with reference interception.
//
// Values are written as a JSON tree of typed nodes. Named types are registered
// by name when first encoded; unnamed slices, arrays, maps and pointers are
// described structurally. Struct fields, unexported ones included, are encoded
// unless tagged with `format:"ignore=true"`.
//
// The codec offers every value to walkology.ReferenceHooks before encoding it,
// which lets a caller replace any subtree with an opaque token.
package stream
