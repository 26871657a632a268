// Package parse reinterprets borrowed byte buffers as typed values, typed
// arrays and null-terminated UTF-8 strings without copying.
//
// Every view returned by this package aliases the input buffer. The buffer
// must outlive the view and must not be written to while the view is used.
//
// Validated readers (Read, ReadArray, ReadArrayN, ReadStr, ReadStrs) panic
// with *Error when the buffer is too short, misaligned, not a whole number
// of elements, missing a terminator or not valid UTF-8. Use the Check
// functions or Catch to handle malformed input without crashing.
//
// The Unsafe readers skip validation. Calling them on a buffer that does
// not satisfy the preconditions is undefined behavior.
//
// Values are read in native byte order. No endianness conversion is done.
package parse
