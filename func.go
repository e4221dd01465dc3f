package walkology

// Func transforms a walked node; a returned error aborts the walk and is returned to the caller as is.
type Func func(value interface{}) (interface{}, error)

// Identity returns value unchanged
func Identity(value interface{}) (interface{}, error) {
	return value, nil
}
