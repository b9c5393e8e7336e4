package endian

import (
	"encoding/binary"
	"testing"

	"github.com/arloliu/gbfs/errs"
	"github.com/stretchr/testify/require"
)

func TestGetEngines(t *testing.T) {
	require.Equal(t, binary.LittleEndian, GetLittleEndianEngine())
	require.Equal(t, binary.BigEndian, GetBigEndianEngine())

	data := []byte{0x01, 0x02}
	require.Equal(t, uint16(0x0201), GetLittleEndianEngine().Uint16(data))
	require.Equal(t, uint16(0x0102), GetBigEndianEngine().Uint16(data))
}

func TestUint16s(t *testing.T) {
	t.Run("Big endian", func(t *testing.T) {
		words, err := Uint16s(GetBigEndianEngine(), []byte{0x12, 0x34, 0xAB, 0xCD})
		require.NoError(t, err)
		require.Equal(t, []uint16{0x1234, 0xABCD}, words)
	})

	t.Run("Little endian", func(t *testing.T) {
		words, err := Uint16s(GetLittleEndianEngine(), []byte{0x12, 0x34})
		require.NoError(t, err)
		require.Equal(t, []uint16{0x3412}, words)
	})

	t.Run("Empty", func(t *testing.T) {
		words, err := Uint16s(GetBigEndianEngine(), nil)
		require.NoError(t, err)
		require.Empty(t, words)
	})

	t.Run("Odd length", func(t *testing.T) {
		words, err := Uint16s(GetBigEndianEngine(), []byte{1, 2, 3})
		require.Nil(t, words)
		require.ErrorIs(t, err, errs.ErrLengthMismatch)

		var mismatch *errs.LengthMismatchError
		require.ErrorAs(t, err, &mismatch)
		require.Equal(t, 3, mismatch.Length)
		require.Equal(t, 2, mismatch.ElemSize)
	})
}

func TestUint32s(t *testing.T) {
	t.Run("Big endian", func(t *testing.T) {
		words, err := Uint32s(GetBigEndianEngine(), []byte{0x01, 0x02, 0x03, 0x04, 0xFF, 0x00, 0x00, 0x00})
		require.NoError(t, err)
		require.Equal(t, []uint32{0x01020304, 0xFF000000}, words)
	})

	t.Run("Length not multiple of four", func(t *testing.T) {
		for _, n := range []int{1, 2, 3, 5, 6, 7} {
			_, err := Uint32s(GetBigEndianEngine(), make([]byte, n))
			require.ErrorIs(t, err, errs.ErrLengthMismatch, "length %d", n)
		}
	})
}
