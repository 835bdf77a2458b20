package utils

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

const BitsPerByte = 8

// Returns the size in bits of n bytes
func Bits(bytes int) int {
	return bytes * BitsPerByte
}

// Returns the size in bits of values of a type
func SizeofBits[T any]() int {
	var val T
	return Bits(int(unsafe.Sizeof(val)))
}

// Returns an all ones bitmask of n bits of the given unsigned integer type
func AllOnes[T constraints.Unsigned](bits int) T {
	if bits >= SizeofBits[T]() {
		return ^T(0)
	}

	return (T(1) << bits) - T(1)
}

// Implements a read/write view over an unsigned interger, allowing manipullating individual bits easily
type BitView[T constraints.Unsigned] struct {
	Bits *T
}

// Returns the viewed unsigned int value
func (v BitView[T]) Value() T {
	return *v.Bits
}

// Extracts a range of bits given a first bit and a width
func (v BitView[T]) Read(bit int, width int) T {
	return (v.Value() >> bit) & AllOnes[T](width)
}

// Copies a value into a range of bits, given the start and width of the range.
// All most significant bits of the value not fitting into the destination range are ignored,
// and the previous contents of the range are cleared.
func (v BitView[T]) Write(value T, bit int, width int) {
	mask := AllOnes[T](width)
	*v.Bits = (*v.Bits &^ (mask << bit)) | ((value & mask) << bit)
}

// Returns bit n of the viewed value (0 or 1)
func (v BitView[T]) Bit(bit int) T {
	return v.Read(bit, 1)
}

// Creates a bit view out of an unsigned int
func CreateBitView[T constraints.Unsigned](value *T) BitView[T] {
	return BitView[T]{
		Bits: value,
	}
}

// Contiguous range of bits within a word
type BitField struct {
	// First (least significant) bit of the range
	Position int
	// Width of the range in bits
	Width int
}

// Returns the last (most significant) bit used by the field
func (f BitField) MostSignificantBit() int {
	return f.Position + f.Width - 1
}

// Extracts the field from a word
func (f BitField) Extract(word uint32) uint32 {
	return CreateBitView(&word).Read(f.Position, f.Width)
}

// Writes the value into the field range of the word, truncating it to the field width
func (f BitField) Insert(word *uint32, value uint32) {
	CreateBitView(word).Write(value, f.Position, f.Width)
}

// Interprets the lowest n bits of value as a two's complement number
func SignExtend(value uint64, bits int) int64 {
	shift := 64 - bits
	return int64(value<<shift) >> shift
}
