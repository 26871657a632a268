package parse

// StrIter iterates over consecutive null-terminated UTF-8 strings.
//
// Sequence ends when remaining buffer is empty or starts with null byte.
// That null byte is left unconsumed, see Rest.
//
// Iteration advances StrIter, so it can be consumed only once. Copy of
// StrIter keeps its own position.
type StrIter struct {
	buf []byte
}

// ReadStrs returns iterator over null-terminated strings at start of b.
func ReadStrs(b []byte) StrIter {
	return StrIter{buf: b}
}

// Next returns next string and true, or false if sequence has ended.
// The result aliases underlying buffer.
//
// Panics with *Error if string has no null byte or is not valid UTF-8.
func (it *StrIter) Next() (string, bool) {
	if len(it.buf) == 0 || it.buf[0] == 0 {
		return "", false
	}
	s := ReadStr(it.buf)
	it.buf = it.buf[len(s)+1:]
	return s, true
}

// SizeHint returns bounds of remaining string count.
//
// Each non-empty string takes at least two bytes, one of content and the
// terminator.
func (it *StrIter) SizeHint() (lower, upper int) {
	return 0, len(it.buf) / 2
}

// Rest returns unconsumed part of buffer.
func (it *StrIter) Rest() []byte {
	return it.buf
}

// Append appends all remaining strings to dst and returns it.
func (it *StrIter) Append(dst []string) []string {
	for {
		s, ok := it.Next()
		if !ok {
			return dst
		}
		dst = append(dst, s)
	}
}
