package section

import (
	"strings"
	"testing"

	"github.com/arloliu/gbfs/errs"
	"github.com/stretchr/testify/require"
)

func TestNewName(t *testing.T) {
	t.Run("Fits", func(t *testing.T) {
		name, err := NewName("copper1Tiles")
		require.NoError(t, err)
		require.Equal(t, "copper1Tiles", name.String())
		require.Equal(t, 12, name.Len())
	})

	t.Run("Exactly max length", func(t *testing.T) {
		s := strings.Repeat("x", NameSize)
		name, err := NewName(s)
		require.NoError(t, err)
		require.Equal(t, s, name.String())
	})

	t.Run("Too long", func(t *testing.T) {
		_, err := NewName(strings.Repeat("x", 30))
		require.ErrorIs(t, err, errs.ErrNameTooLong)

		var tooLong *errs.NameTooLongError
		require.ErrorAs(t, err, &tooLong)
		require.Equal(t, NameSize, tooLong.Max)
		require.Equal(t, 30, tooLong.Actual)
	})

	t.Run("Empty", func(t *testing.T) {
		name, err := NewName("")
		require.NoError(t, err)
		require.Equal(t, Name{}, name)
		require.Empty(t, name.String())
	})
}

func TestDecodeName(t *testing.T) {
	t.Run("NUL padded", func(t *testing.T) {
		raw := make([]byte, NameSize)
		copy(raw, "title.txt")

		name, err := DecodeName(raw)
		require.NoError(t, err)
		require.Equal(t, "title.txt", name.String())
	})

	t.Run("No NUL uses whole field", func(t *testing.T) {
		raw := []byte(strings.Repeat("a", NameSize))

		name, err := DecodeName(raw)
		require.NoError(t, err)
		require.Equal(t, NameSize, name.Len())
	})

	t.Run("Stops at first NUL", func(t *testing.T) {
		raw := make([]byte, NameSize)
		copy(raw, "ab\x00cd")

		name, err := DecodeName(raw)
		require.NoError(t, err)
		require.Equal(t, "ab", name.String())
	})

	t.Run("Bytes after NUL are not validated", func(t *testing.T) {
		raw := make([]byte, NameSize)
		copy(raw, "ok\x00\xff\xfe")

		name, err := DecodeName(raw)
		require.NoError(t, err)
		require.Equal(t, "ok", name.String())
	})

	t.Run("Multibyte UTF-8", func(t *testing.T) {
		raw := make([]byte, NameSize)
		copy(raw, "タイル.bin")

		name, err := DecodeName(raw)
		require.NoError(t, err)
		require.Equal(t, "タイル.bin", name.String())
	})

	t.Run("Invalid UTF-8 reports offset", func(t *testing.T) {
		raw := make([]byte, NameSize)
		copy(raw, "abc\xffdef")

		_, err := DecodeName(raw)
		require.ErrorIs(t, err, errs.ErrInvalidName)

		var invalid *errs.InvalidNameError
		require.ErrorAs(t, err, &invalid)
		require.Equal(t, 3, invalid.Offset)
	})

	t.Run("Truncated multibyte sequence", func(t *testing.T) {
		raw := []byte("é")
		_, err := DecodeName(raw[:1])

		var invalid *errs.InvalidNameError
		require.ErrorAs(t, err, &invalid)
		require.Equal(t, 0, invalid.Offset)
	})

	t.Run("Too long", func(t *testing.T) {
		_, err := DecodeName(make([]byte, NameSize+1))
		require.ErrorIs(t, err, errs.ErrNameTooLong)
	})
}

func TestName_Compare(t *testing.T) {
	a, err := NewName("copper1Tiles")
	require.NoError(t, err)

	raw := make([]byte, NameSize)
	copy(raw, "copper1Tiles")
	b, err := DecodeName(raw)
	require.NoError(t, err)

	require.True(t, a.Equal(b))
	require.True(t, a.EqualString("copper1Tiles"))
	require.False(t, a.EqualString("Copper1Tiles"))
	require.False(t, a.EqualString("copper1Tile"))
	require.False(t, a.EqualString("copper1Tiles "))

	c, err := NewName("copper1Pal")
	require.NoError(t, err)
	require.False(t, a.Equal(c))
}

func TestName_BytesAndRaw(t *testing.T) {
	name, err := NewName("pal")
	require.NoError(t, err)

	b := name.Bytes()
	require.Equal(t, []byte("pal"), b)
	b[0] = 'X'
	require.Equal(t, "pal", name.String())

	raw := name.Raw()
	require.Equal(t, byte('p'), raw[0])
	require.Equal(t, byte(0), raw[3])
	require.Equal(t, byte(0), raw[NameSize-1])
}
