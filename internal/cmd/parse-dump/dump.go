package main

import (
	"fmt"
	"io"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	parse "github.com/LibertyOS-Development/parse-binary"
)

// dump writes elements of buf as typ, one per line. Negative n means all
// whole elements of buf.
func dump(w io.Writer, typ string, buf []byte, n int) (int, error) {
	switch typ {
	case "u8":
		return dumpArray[uint8](w, buf, n)
	case "u16":
		return dumpArray[uint16](w, buf, n)
	case "u32":
		return dumpArray[uint32](w, buf, n)
	case "u64":
		return dumpArray[uint64](w, buf, n)
	case "u128":
		return dumpArray[parse.UInt128](w, buf, n)
	case "i8":
		return dumpArray[int8](w, buf, n)
	case "i16":
		return dumpArray[int16](w, buf, n)
	case "i32":
		return dumpArray[int32](w, buf, n)
	case "i64":
		return dumpArray[int64](w, buf, n)
	case "i128":
		return dumpArray[parse.Int128](w, buf, n)
	case "uuid":
		return dumpArray[uuid.UUID](w, buf, n)
	default:
		return 0, errors.Errorf("unknown type %q", typ)
	}
}

func dumpArray[T parse.Pod](w io.Writer, buf []byte, n int) (int, error) {
	if n < 0 {
		n = len(buf) / parse.Sizeof[T]()
	}
	var values []T
	if err := parse.Catch(func() {
		values = parse.ReadArrayN[T](buf, n)
	}); err != nil {
		return 0, errors.Wrap(err, "read")
	}
	for i, v := range values {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", i, format(v)); err != nil {
			return i, errors.Wrap(err, "write")
		}
	}
	return len(values), nil
}

func format(v any) string {
	switch v := v.(type) {
	case parse.UInt128:
		return fmt.Sprintf("0x%016x%016x", v.High, v.Low)
	case parse.Int128:
		return fmt.Sprintf("0x%016x%016x", v.High, v.Low)
	default:
		return fmt.Sprint(v)
	}
}

// dumpStrs writes null-terminated strings of buf, one per line.
func dumpStrs(w io.Writer, buf []byte) (int, error) {
	it := parse.ReadStrs(buf)
	for i := 0; ; i++ {
		var (
			s  string
			ok bool
		)
		if err := parse.Catch(func() {
			s, ok = it.Next()
		}); err != nil {
			return i, errors.Wrapf(err, "[%d]", i)
		}
		if !ok {
			return i, nil
		}
		if _, err := fmt.Fprintf(w, "%d\t%q\n", i, s); err != nil {
			return i, errors.Wrap(err, "write")
		}
	}
}
