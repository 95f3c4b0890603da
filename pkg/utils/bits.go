package utils

import (
	"golang.org/x/exp/constraints"
)

// Returns an all ones bitmask of n bits of the given unsigned integer type
func AllOnes[T constraints.Unsigned](bits int) T {
	return (T(1) << bits) - T(1)
}

// Implements a read/write view over an unsigned integer, allowing manipulating individual bits easily
type BitView[T constraints.Unsigned] struct {
	Bits *T
}

// Returns the viewed unsigned int value
func (v BitView[T]) Value() T {
	return *v.Bits
}

// Extracts a range of bits given a first bit and a width
func (v BitView[T]) Read(bit int, width int) T {
	mask := AllOnes[T](width)
	return (v.Value() >> bit) & mask
}

// Copies a value into a range of bits, given the start and width of the range.
// All most significant bits of the value not fitting into the destination range are ignored.
func (v BitView[T]) Write(value T, bit int, width int) {
	clearedValue := value & AllOnes[T](width)
	*v.Bits = (*v.Bits) | (clearedValue << bit)
}

// Creates a bit view out of an unsigned int
func CreateBitView[T constraints.Unsigned](value *T) BitView[T] {
	return BitView[T]{
		Bits: value,
	}
}
