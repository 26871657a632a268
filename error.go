package parse

import "fmt"

// Kind of precondition violation.
type Kind byte

// Possible violation kinds.
const (
	KindShortBuffer     Kind = iota // buffer shorter than requested data
	KindMisaligned                  // buffer start is not aligned for type
	KindPartialElement              // buffer length is not a multiple of element size
	KindZeroSize                    // array of zero-sized type requested
	KindNoTerminator                // no null byte found
	KindInvalidEncoding             // string is not valid UTF-8
)

//go:generate go run github.com/dmarkham/enumer -transform snake -type Kind -trimprefix Kind -output kind_enum.go

// Error describes violated read precondition.
//
// Validated readers panic with *Error; Check functions return it.
type Error struct {
	Kind  Kind
	Type  string  // target type, empty for strings
	Len   int     // length of input buffer
	Size  int     // required bytes, or element size for KindPartialElement
	Align int     // required alignment
	Addr  uintptr // start of input buffer, set for KindMisaligned
}

// Sentinel errors to use with errors.Is.
var (
	ErrShortBuffer     = &Error{Kind: KindShortBuffer}
	ErrMisaligned      = &Error{Kind: KindMisaligned}
	ErrPartialElement  = &Error{Kind: KindPartialElement}
	ErrZeroSize        = &Error{Kind: KindZeroSize}
	ErrNoTerminator    = &Error{Kind: KindNoTerminator}
	ErrInvalidEncoding = &Error{Kind: KindInvalidEncoding}
)

func (e *Error) Error() string {
	switch e.Kind {
	case KindShortBuffer:
		return fmt.Sprintf("parse: buffer too short for %s: %d < %d", e.Type, e.Len, e.Size)
	case KindMisaligned:
		return fmt.Sprintf("parse: buffer at %#x is not aligned to %d for %s", e.Addr, e.Align, e.Type)
	case KindPartialElement:
		return fmt.Sprintf("parse: buffer length %d is not a multiple of %s size %d", e.Len, e.Type, e.Size)
	case KindZeroSize:
		return fmt.Sprintf("parse: cannot read arrays of zero-sized type %s", e.Type)
	case KindNoTerminator:
		return fmt.Sprintf("parse: no null byte in %d bytes of input", e.Len)
	case KindInvalidEncoding:
		return "parse: invalid UTF-8 string"
	default:
		return fmt.Sprintf("parse: %s", e.Kind)
	}
}

// Is reports whether target is *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Catch calls fn and returns *Error that fn panicked with, if any.
//
// Panics with other values are propagated.
func Catch(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(*Error)
		if !ok {
			panic(r)
		}
		err = e
	}()
	fn()
	return nil
}
