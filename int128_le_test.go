//go:build amd64 || arm64

package parse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LibertyOS-Development/parse-binary/internal/gold"
)

func TestInt128Layout(t *testing.T) {
	t.Run("Int128", func(t *testing.T) {
		v := Int128FromInt(-100)
		gold.Bytes(t, rawBytes(&v), "int128_neg100")

		buf := alignedBytes(16)
		copy(buf, gold.ReadFile(t, "int128_neg100.raw"))
		require.Equal(t, v, *Read[Int128](buf))
	})
	t.Run("UInt128", func(t *testing.T) {
		v := UInt128FromInt(100)
		gold.Bytes(t, rawBytes(&v), "uint128_100")

		buf := alignedBytes(32)
		copy(buf[16:], gold.ReadFile(t, "uint128_100.raw"))
		require.Equal(t, []UInt128{{}, v}, ReadArray[UInt128](buf))
	})
}
