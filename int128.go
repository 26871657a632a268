package parse

import (
	"math"
	"unsafe"
)

// Int128 represents 128-bit signed integer.
//
// Memory layout matches little-endian int128.
type Int128 struct {
	Low  uint64 // first 64 bits
	High uint64 // last 64 bits
}

// Int128FromInt creates new Int128 from int.
func Int128FromInt(v int) Int128 {
	var hi uint64
	if v < 0 {
		hi = math.MaxUint64
	}
	return Int128{
		High: hi,
		Low:  uint64(v),
	}
}

// UInt128 represents 128-bit unsigned integer.
//
// Memory layout matches little-endian uint128.
type UInt128 struct {
	Low  uint64 // first 64 bits
	High uint64 // last 64 bits
}

// UInt128FromInt creates new UInt128 from int.
func UInt128FromInt(v int) UInt128 {
	return UInt128(Int128FromInt(v))
}

// Compile-time assertions for 128-bit layout.
var (
	_ [16]byte = [unsafe.Sizeof(Int128{})]byte{}
	_ [16]byte = [unsafe.Sizeof(UInt128{})]byte{}
)
