// Package visitor decomposes slices, arrays, maps and structs into
// (key, element) callbacks. Struct fields are read through xunsafe, so
// unexported fields are visited too; fields tagged format:"ignore=true"
// are skipped.
package visitor
