package parse

import (
	"fmt"
	"math"
	"testing"
	"unsafe"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testRoundTrip[T Pod](t *testing.T, values ...T) {
	t.Helper()
	t.Run(typeName[T](), func(t *testing.T) {
		for _, v := range values {
			v := v
			buf := alignedBytes(Sizeof[T]())
			copy(buf, rawBytes(&v))
			require.Equal(t, v, *Read[T](buf))
		}
	})
}

func TestRead(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		testRoundTrip[uint8](t, 0, 1, 0xff)
		testRoundTrip[uint16](t, 0, 0xbeef, 0xffff)
		testRoundTrip[uint32](t, 0, 0xdeadbeef)
		testRoundTrip[uint64](t, 0, 0xdeadbeefcafebabe)
		testRoundTrip[int8](t, -128, -1, 127)
		testRoundTrip[int16](t, -32768, 1000)
		testRoundTrip[int32](t, -1, 1<<30)
		testRoundTrip[int64](t, -1<<63, 42)
		testRoundTrip(t, Int128FromInt(-100), Int128{Low: 1, High: 2})
		testRoundTrip(t, UInt128FromInt(100), UInt128{Low: 3, High: 4})
		testRoundTrip(t, uuid.MustParse("f4ba1f1c-7ff4-4a3a-9e0e-0f0dbd2ba6b0"), uuid.Nil)
	})
	t.Run("Prefix", func(t *testing.T) {
		buf := fill(alignedBytes(16))
		v := Read[uint64](buf)
		require.Equal(t, buf[:8], rawBytes(v))
	})
	t.Run("ZeroCopy", func(t *testing.T) {
		buf := alignedBytes(8)
		v := Read[uint32](buf)
		require.Equal(t, unsafe.Pointer(&buf[0]), unsafe.Pointer(v))

		buf[0], buf[1], buf[2], buf[3] = 0xff, 0xff, 0xff, 0xff
		require.Equal(t, uint32(0xffffffff), *v)
	})
	t.Run("ShortBuffer", func(t *testing.T) {
		buf := alignedBytes(7)
		require.PanicsWithError(t, "parse: buffer too short for uint64: 7 < 8", func() {
			Read[uint64](buf)
		})
		require.Panics(t, func() { Read[uint8](nil) })
	})
	t.Run("Misaligned", func(t *testing.T) {
		buf := misalignedBytes(16)
		err := Catch(func() { Read[uint32](buf) })
		require.ErrorIs(t, err, ErrMisaligned)

		var e *Error
		require.True(t, errors.As(err, &e))
		require.Equal(t, 4, e.Align)
		require.Equal(t, "uint32", e.Type)

		// Byte-sized types have no alignment requirement.
		require.Equal(t, buf[0], *Read[uint8](buf))
		require.Equal(t, uuid.UUID(buf[:16]), *Read[uuid.UUID](buf))
	})
}

func TestCheckRead(t *testing.T) {
	require.NoError(t, CheckRead[uint16](alignedBytes(2)))
	require.ErrorIs(t, CheckRead[uint16](alignedBytes(1)), ErrShortBuffer)
	require.ErrorIs(t, CheckRead[uint16](misalignedBytes(2)), ErrMisaligned)
	require.ErrorIs(t, CheckRead[Int128](alignedBytes(15)), ErrShortBuffer)
}

func TestReadArray(t *testing.T) {
	t.Run("Elements", func(t *testing.T) {
		for _, k := range []int{0, 1, 2, 7} {
			t.Run(fmt.Sprintf("%d", k), func(t *testing.T) {
				buf := fill(alignedBytes(k * 4))
				arr := ReadArray[uint32](buf)
				require.Len(t, arr, k)
				require.Equal(t, k, cap(arr))
				for i := range arr {
					require.Equal(t, buf[i*4:(i+1)*4], rawBytes(&arr[i]))
				}
			})
		}
	})
	t.Run("Nil", func(t *testing.T) {
		require.Empty(t, ReadArray[uint64](nil))
	})
	t.Run("Int128", func(t *testing.T) {
		buf := fill(alignedBytes(48))
		arr := ReadArray[UInt128](buf)
		require.Len(t, arr, 3)
		require.Equal(t, buf[32:], rawBytes(&arr[2]))
	})
	t.Run("PartialElement", func(t *testing.T) {
		for _, n := range []int{1, 3, 9} {
			buf := alignedBytes(n)
			require.PanicsWithError(t,
				fmt.Sprintf("parse: buffer length %d is not a multiple of uint16 size 2", n),
				func() { ReadArray[uint16](buf) },
			)
		}
	})
	t.Run("Misaligned", func(t *testing.T) {
		buf := misalignedBytes(8)
		err := Catch(func() { ReadArray[uint64](buf) })
		require.ErrorIs(t, err, ErrMisaligned)
		require.Len(t, ReadArray[int8](buf), 8)
	})
	t.Run("ZeroSize", func(t *testing.T) {
		for _, buf := range [][]byte{nil, alignedBytes(0), alignedBytes(16), misalignedBytes(3)} {
			err := checkArray[struct{}](buf)
			require.NotNil(t, err)
			require.Equal(t, KindZeroSize, err.Kind)
			require.EqualError(t, err, "parse: cannot read arrays of zero-sized type struct {}")

			err = checkArrayN[[0]uint64](buf, 1)
			require.NotNil(t, err)
			require.Equal(t, KindZeroSize, err.Kind)
		}
	})
}

func TestReadArrayN(t *testing.T) {
	buf := fill(alignedBytes(10))
	arr := ReadArrayN[uint16](buf, 3)
	require.Len(t, arr, 3)
	require.Equal(t, buf[4:6], rawBytes(&arr[2]))
	require.Empty(t, ReadArrayN[uint16](buf, 0))
	require.Len(t, ReadArrayN[uint16](buf, 5), 5)

	require.ErrorIs(t, CheckArrayN[uint16](buf, 6), ErrShortBuffer)
	require.ErrorIs(t, CheckArrayN[uint16](buf, -1), ErrShortBuffer)
	require.ErrorIs(t, CheckArrayN[uint16](buf[1:], 1), ErrMisaligned)
	require.PanicsWithError(t, "parse: buffer too short for uint32: 10 < 12", func() {
		ReadArrayN[uint32](buf, 3)
	})

	t.Run("HugeCount", func(t *testing.T) {
		err := CheckArrayN[uint64](alignedBytes(8), math.MaxInt/4)
		require.ErrorIs(t, err, ErrShortBuffer)
		require.EqualError(t, err, fmt.Sprintf("parse: buffer too short for uint64: 8 < %d", math.MaxInt))
	})
}

func TestCheckArray(t *testing.T) {
	require.NoError(t, CheckArray[int64](alignedBytes(24)))
	require.NoError(t, CheckArray[int64](nil))
	require.ErrorIs(t, CheckArray[int64](alignedBytes(23)), ErrPartialElement)
	require.ErrorIs(t, CheckArray[int64](misalignedBytes(24)), ErrMisaligned)
}

func TestReadUnsafe(t *testing.T) {
	buf := fill(alignedBytes(12))
	require.Equal(t, buf[:4], rawBytes(ReadUnsafe[uint32](buf)))

	// Trailing bytes are dropped.
	arr := ReadArrayUnsafe[uint64](buf)
	require.Len(t, arr, 1)
	require.Equal(t, buf[:8], rawBytes(&arr[0]))
}

func TestReadAllocs(t *testing.T) {
	buf := alignedBytes(64)
	var sink uint64
	allocs := testing.AllocsPerRun(100, func() {
		sink += *Read[uint64](buf)
		sink += uint64(len(ReadArray[uint32](buf)))
		sink += uint64(len(ReadArrayN[Int128](buf, 2)))
	})
	require.Zero(t, allocs)
	_ = sink
}

func TestSizeof(t *testing.T) {
	require.Equal(t, 16, Sizeof[Int128]())
	require.Equal(t, 16, Sizeof[uuid.UUID]())
	require.Equal(t, 0, Sizeof[struct{}]())
	require.Equal(t, 1, Alignof[uuid.UUID]())
	require.Equal(t, Alignof[uint64](), Alignof[UInt128]())
}
