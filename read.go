package parse

import "math"

// Read returns pointer to T stored in first Sizeof[T]() bytes of b.
//
// Bytes past Sizeof[T]() are ignored. The result aliases b.
// Panics with *Error if b is too short or not aligned for T.
func Read[T Pod](b []byte) *T {
	if err := checkValue[T](b); err != nil {
		panic(err)
	}
	return ReadUnsafe[T](b)
}

// ReadArray returns b reinterpreted as len(b)/Sizeof[T]() consecutive values
// of T. The result aliases b.
//
// Panics with *Error if len(b) is not a multiple of Sizeof[T]() or b is not
// aligned for T.
func ReadArray[T Pod](b []byte) []T {
	if err := checkArray[T](b); err != nil {
		panic(err)
	}
	return ReadArrayUnsafe[T](b)
}

// ReadArrayN returns first n values of T stored in b, ignoring the rest of b.
// The result aliases b.
//
// Panics with *Error if b holds less than n values or is not aligned for T.
func ReadArrayN[T Pod](b []byte, n int) []T {
	if err := checkArrayN[T](b, n); err != nil {
		panic(err)
	}
	return ReadArrayUnsafe[T](b[:n*Sizeof[T]()])
}

// CheckRead returns *Error that Read would panic with, or nil.
func CheckRead[T Pod](b []byte) error {
	if err := checkValue[T](b); err != nil {
		return err
	}
	return nil
}

// CheckArray returns *Error that ReadArray would panic with, or nil.
func CheckArray[T Pod](b []byte) error {
	if err := checkArray[T](b); err != nil {
		return err
	}
	return nil
}

// CheckArrayN returns *Error that ReadArrayN would panic with, or nil.
func CheckArrayN[T Pod](b []byte, n int) error {
	if err := checkArrayN[T](b, n); err != nil {
		return err
	}
	return nil
}

func checkValue[T any](b []byte) *Error {
	if size := Sizeof[T](); len(b) < size {
		return &Error{
			Kind: KindShortBuffer,
			Type: typeName[T](),
			Len:  len(b),
			Size: size,
		}
	}
	return checkAlign[T](b)
}

func checkArray[T any](b []byte) *Error {
	size := Sizeof[T]()
	if size == 0 {
		return errZeroSize[T]()
	}
	if len(b)%size != 0 {
		return &Error{
			Kind: KindPartialElement,
			Type: typeName[T](),
			Len:  len(b),
			Size: size,
		}
	}
	return checkAlign[T](b)
}

func checkArrayN[T any](b []byte, n int) *Error {
	size := Sizeof[T]()
	if size == 0 {
		return errZeroSize[T]()
	}
	// Comparing counts instead of bytes, n*size may overflow.
	if n < 0 || len(b)/size < n {
		return &Error{
			Kind: KindShortBuffer,
			Type: typeName[T](),
			Len:  len(b),
			Size: requiredSize(n, size),
		}
	}
	return checkAlign[T](b)
}

// requiredSize returns n*size, saturating at math.MaxInt.
func requiredSize(n, size int) int {
	if n > math.MaxInt/size {
		return math.MaxInt
	}
	return n * size
}

func checkAlign[T any](b []byte) *Error {
	align := Alignof[T]()
	if p := address(b); p&uintptr(align-1) != 0 {
		return &Error{
			Kind:  KindMisaligned,
			Type:  typeName[T](),
			Len:   len(b),
			Align: align,
			Addr:  p,
		}
	}
	return nil
}

func errZeroSize[T any]() *Error {
	return &Error{
		Kind: KindZeroSize,
		Type: typeName[T](),
	}
}
