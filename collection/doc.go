// Package collection walks graphs built of slices, arrays, maps and sets.
// Any other value is an opaque leaf: it passes through the walk functions
// but is never decomposed. Rebuilt containers are fresh values; the walked
// graph is never modified.
package collection
