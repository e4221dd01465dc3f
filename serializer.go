package walkology

// ReferenceHooks intercepts references while a Serializer encodes and resolves tokens while it decodes.
type ReferenceHooks interface {
	// OnReference is called for every reference the serializer is about to encode.
	// When ok is true the serializer writes token in place of the reference.
	OnReference(ref interface{}) (token []byte, ok bool, err error)

	// OnToken returns the value a token written by OnReference stands for.
	OnToken(token []byte) (interface{}, error)
}

// Serializer encodes values with reference interception.
// A nil hooks encodes the whole value; decoding a stream holding tokens then fails.
type Serializer interface {
	Marshal(value interface{}, hooks ReferenceHooks) ([]byte, error)
	Unmarshal(data []byte, hooks ReferenceHooks) (interface{}, error)
}
