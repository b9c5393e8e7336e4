package archive

import (
	"testing"

	"github.com/arloliu/gbfs/errs"
	"github.com/arloliu/gbfs/internal/collision"
	"github.com/arloliu/gbfs/internal/testutil"
	"github.com/arloliu/gbfs/section"
	"github.com/stretchr/testify/require"
)

func decodeFixture(t *testing.T, data []byte) (store, *collision.Tracker, error) {
	t.Helper()

	hdr, err := section.ParseHeader(data)
	require.NoError(t, err)

	st := newDynamicStore(int(hdr.EntryCount))
	tracker := collision.NewTracker(int(hdr.EntryCount))

	return st, tracker, decodeDirectory(data, hdr, st, tracker)
}

func TestDecodeDirectory(t *testing.T) {
	t.Run("Decodes every entry in order", func(t *testing.T) {
		data := testutil.Build(t,
			testutil.File{Name: "first", Data: []byte("1")},
			testutil.File{Name: "second", Data: []byte("22")},
			testutil.File{Name: "third", Data: []byte("333")},
		)

		st, tracker, err := decodeFixture(t, data)
		require.NoError(t, err)
		require.Equal(t, 3, st.len())
		require.Equal(t, 3, tracker.Count())

		require.Equal(t, "first", st.at(0).Name.String())
		require.Equal(t, uint32(1), st.at(0).Length)
		require.Equal(t, uint32(testutil.EntryOffset(3)), st.at(0).DataOffset)
		require.Equal(t, "third", st.at(2).Name.String())
		require.Equal(t, uint32(3), st.at(2).Length)
	})

	t.Run("Empty directory", func(t *testing.T) {
		st, _, err := decodeFixture(t, testutil.Build(t))
		require.NoError(t, err)
		require.Equal(t, 0, st.len())
	})

	t.Run("Directory runs past buffer", func(t *testing.T) {
		data := testutil.Build(t, testutil.File{Name: "a", Data: nil})
		testutil.SetEntryCount(data, 2)

		_, _, err := decodeFixture(t, data)
		require.ErrorIs(t, err, errs.ErrTruncated)

		var truncated *errs.TruncatedError
		require.ErrorAs(t, err, &truncated)
		require.Equal(t, "directory", truncated.Section)
		require.Equal(t, 1, truncated.Index)
		require.Equal(t, testutil.EntryOffset(2), truncated.Need)
		require.Equal(t, len(data), truncated.Have)
	})

	t.Run("Directory offset past buffer", func(t *testing.T) {
		data := testutil.Build(t, testutil.File{Name: "a", Data: []byte("x")})
		testutil.SetDirOffset(data, 0xFFF0)

		_, _, err := decodeFixture(t, data)

		var truncated *errs.TruncatedError
		require.ErrorAs(t, err, &truncated)
		require.Equal(t, 0, truncated.Index)
	})

	t.Run("Directory may overlap header", func(t *testing.T) {
		data := testutil.Build(t, testutil.File{Name: "a", Data: []byte("x")})
		testutil.SetDirOffset(data, 0)

		st, _, err := decodeFixture(t, data)
		// The name field now covers the magic and total_len (65 = 'A').
		require.NoError(t, err)
		require.Equal(t, section.Magic+"A", st.at(0).Name.String())
	})

	t.Run("Invalid name reports absolute offset", func(t *testing.T) {
		data := testutil.Build(t,
			testutil.File{Name: "good", Data: []byte("x")},
			testutil.File{Name: "bad", Data: []byte("y")},
		)
		testutil.SetEntryName(data, 1, []byte("ba\xffd"))

		_, _, err := decodeFixture(t, data)
		require.ErrorIs(t, err, errs.ErrInvalidName)

		var invalid *errs.InvalidNameError
		require.ErrorAs(t, err, &invalid)
		require.Equal(t, 1, invalid.Index)
		require.Equal(t, testutil.EntryOffset(1)+2, invalid.Offset)
	})

	t.Run("Out of bounds payload is not a decode error", func(t *testing.T) {
		data := testutil.Build(t, testutil.File{Name: "a", Data: []byte("x")})
		testutil.SetEntryLength(data, 0, 1<<20)

		st, _, err := decodeFixture(t, data)
		require.NoError(t, err)
		require.Equal(t, uint32(1<<20), st.at(0).Length)
	})

	t.Run("Tracks duplicates", func(t *testing.T) {
		data := testutil.Build(t,
			testutil.File{Name: "pal", Data: []byte("1")},
			testutil.File{Name: "map", Data: []byte("2")},
			testutil.File{Name: "pal", Data: []byte("3")},
		)

		_, tracker, err := decodeFixture(t, data)
		require.NoError(t, err)
		require.True(t, tracker.HasDuplicates())
		require.Equal(t, []collision.Duplicate{{Name: "pal", Indices: []int{0, 2}}}, tracker.Duplicates())
	})
}
