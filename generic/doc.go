// Package generic walks any value a walkology.Serializer can encode.
//
// The serializer decides what is a container: the walker intercepts each
// reference it is about to encode, walks that reference recursively, and
// writes the serialized result back as an opaque token. Decoding the stream
// resolves tokens into the walked values.
//
// Package level functions use the stream codec; use New to walk with
// another serializer.
package generic
