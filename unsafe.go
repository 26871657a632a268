package parse

import "unsafe"

// ReadUnsafe reinterprets first Sizeof[T]() bytes of b as T without checks.
//
// Caller must guarantee that len(b) >= Sizeof[T](), that b is aligned to
// Alignof[T]() and that any bit pattern is valid for T. Violating this is
// undefined behavior.
func ReadUnsafe[T any](b []byte) *T {
	return (*T)(unsafe.Pointer(unsafe.SliceData(b))) // #nosec: G103 // caller guarantees layout
}

// ReadArrayUnsafe reinterprets b as len(b)/Sizeof[T]() consecutive T
// values without checks.
//
// Trailing bytes that do not form a whole element are dropped. Capacity of
// result equals its length, so append never writes into b.
//
// Caller must guarantee the same preconditions as for ReadUnsafe and that
// T is not zero-sized.
func ReadArrayUnsafe[T any](b []byte) []T {
	n := len(b) / Sizeof[T]()
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n) // #nosec: G103 // caller guarantees layout
}

// ReadStrUnsafe returns string up to first null byte of b without UTF-8
// validation.
//
// Panics with *Error if b has no null byte, since the length of string is
// unknown in that case.
func ReadStrUnsafe(b []byte) string {
	i := terminator(b)
	if i < 0 {
		panic(errNoTerminator(b))
	}
	return bytesToStr(b[:i])
}

// bytesToStr returns string that shares memory with b.
func bytesToStr(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b)) // #nosec: G103 // b is borrowed, never written
}

// address returns start address of b, zero for nil slice.
func address(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b))) // #nosec: G103
}
