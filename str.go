package parse

import (
	"bytes"

	"github.com/segmentio/asm/utf8"
)

// ReadStr returns UTF-8 string stored in b up to first null byte, which is
// not included. The result aliases b.
//
// Panics with *Error if b has no null byte or string is not valid UTF-8.
func ReadStr(b []byte) string {
	s, err := checkStr(b)
	if err != nil {
		panic(err)
	}
	return bytesToStr(s)
}

// CheckStr returns length of null-terminated string in b, or *Error that
// ReadStr would panic with.
func CheckStr(b []byte) (int, error) {
	s, err := checkStr(b)
	if err != nil {
		return 0, err
	}
	return len(s), nil
}

func checkStr(b []byte) ([]byte, *Error) {
	i := terminator(b)
	if i < 0 {
		return nil, errNoTerminator(b)
	}
	s := b[:i]
	if !utf8.Valid(s) {
		return nil, &Error{
			Kind: KindInvalidEncoding,
			Len:  len(b),
			Size: i,
		}
	}
	return s, nil
}

// terminator returns index of first null byte in b or -1.
func terminator(b []byte) int {
	return bytes.IndexByte(b, 0)
}

func errNoTerminator(b []byte) *Error {
	return &Error{
		Kind: KindNoTerminator,
		Len:  len(b),
	}
}
