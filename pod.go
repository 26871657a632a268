package parse

import (
	"fmt"
	"unsafe"

	"github.com/google/uuid"
)

// Pod is the closed set of types that can be constructed from any bit
// pattern of their size.
//
// Only types without invalid bit patterns belong here: no bool, no floats,
// no pointers, no strings. The set uses exact types (no ~T) so that it
// stays auditable; named types derived from these are not accepted.
//
// uuid.UUID is the only non-integer member, a [16]byte without alignment
// requirement.
type Pod interface {
	uint8 | uint16 | uint32 | uint64 | UInt128 |
		int8 | int16 | int32 | int64 | Int128 |
		uuid.UUID
}

// Sizeof returns size of T in bytes.
func Sizeof[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Alignof returns required alignment of T in bytes.
func Alignof[T any]() int {
	var zero T
	return int(unsafe.Alignof(zero))
}

func typeName[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}
