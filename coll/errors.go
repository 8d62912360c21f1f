package coll

import "fmt"

// IndexError signals indexed access outside [0, length).
type IndexError struct {
	Index  int
	Length int
}

func (e IndexError) Error() string {
	return fmt.Sprintf("index out of bounds: %d with length %d", e.Index, e.Length)
}

// CapabilityError signals an operation applied to a value whose type does
// not support it, e.g. indexed access on a hashed map.
type CapabilityError struct {
	Op    string
	Value any
}

func (e CapabilityError) Error() string {
	return fmt.Sprintf("operation %s not supported by value of type %T", e.Op, e.Value)
}

// PatternError signals a malformed binding pattern handed to the
// destructuring compiler.
type PatternError struct {
	Reason string
}

func (e PatternError) Error() string {
	return "malformed binding pattern: " + e.Reason
}
