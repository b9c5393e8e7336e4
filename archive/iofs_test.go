package archive

import (
	"errors"
	"io"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/arloliu/gbfs/internal/testutil"
	"github.com/arloliu/gbfs/section"
	"github.com/stretchr/testify/require"
)

func openFS(t *testing.T) (*Filesystem, fs.FS) {
	t.Helper()

	data := testutil.Build(t,
		testutil.File{Name: "copper1Tiles", Data: testutil.Payload(256, 3)},
		testutil.File{Name: "copper1Pal", Data: testutil.Payload(32, 7)},
		testutil.File{Name: "sprites/hero", Data: testutil.Payload(64, 0)},
		testutil.File{Name: "", Data: []byte("anonymous")},
		testutil.File{Name: "copper1Pal", Data: []byte("shadowed")},
		testutil.File{Name: "title.txt", Data: []byte("GBFS sample archive\n")},
		testutil.File{Name: "broken", Data: []byte("xy")},
		testutil.File{Name: "empty", Data: nil},
	)
	testutil.SetEntryLength(data, 6, 1<<20)

	fsys, err := Open(data)
	require.NoError(t, err)

	return fsys, fsys.FS()
}

func TestFS_Conformance(t *testing.T) {
	_, fsys := openFS(t)

	require.NoError(t, fstest.TestFS(fsys, "copper1Tiles", "copper1Pal", "title.txt", "empty"))
}

func TestFS_ReadDir(t *testing.T) {
	_, fsys := openFS(t)

	entries, err := fs.ReadDir(fsys, ".")
	require.NoError(t, err)

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
		require.False(t, e.IsDir())
	}
	require.Equal(t, []string{"copper1Pal", "copper1Tiles", "empty", "title.txt"}, names)

	_, err = fs.ReadDir(fsys, "title.txt")
	require.Error(t, err)

	_, err = fs.ReadDir(fsys, "missing")
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFS_ReadFile(t *testing.T) {
	archive, fsys := openFS(t)

	t.Run("Returns a copy", func(t *testing.T) {
		got, err := fs.ReadFile(fsys, "copper1Pal")
		require.NoError(t, err)
		require.Equal(t, testutil.Payload(32, 7), got)

		got[0] ^= 0xFF

		file, err := archive.Lookup("copper1Pal")
		require.NoError(t, err)
		require.Equal(t, testutil.Payload(32, 7), file.Data)
	})

	t.Run("First duplicate wins", func(t *testing.T) {
		got, err := fs.ReadFile(fsys, "copper1Pal")
		require.NoError(t, err)
		require.NotEqual(t, []byte("shadowed"), got)
	})

	t.Run("Hidden names", func(t *testing.T) {
		for _, name := range []string{"sprites/hero", "sprites", "missing"} {
			_, err := fs.ReadFile(fsys, name)
			require.ErrorIs(t, err, fs.ErrNotExist, name)
		}
	})

	t.Run("Invalid paths", func(t *testing.T) {
		for _, name := range []string{"/title.txt", "./title.txt", "a//b", ".."} {
			_, err := fs.ReadFile(fsys, name)
			require.ErrorIs(t, err, fs.ErrInvalid, name)
		}
	})

	t.Run("Name too long maps to not exist", func(t *testing.T) {
		_, err := fs.ReadFile(fsys, "this_name_is_far_too_long_for_gbfs")
		require.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("Out of bounds payload", func(t *testing.T) {
		_, err := fs.ReadFile(fsys, "broken")
		require.Error(t, err)

		var pathErr *fs.PathError
		require.ErrorAs(t, err, &pathErr)
		require.Equal(t, "broken", pathErr.Path)
		require.False(t, errors.Is(err, fs.ErrNotExist))
	})
}

func TestFS_OpenAndStat(t *testing.T) {
	_, fsys := openFS(t)

	f, err := fsys.Open("title.txt")
	require.NoError(t, err)
	defer f.Close()

	info, err := f.Stat()
	require.NoError(t, err)
	require.Equal(t, "title.txt", info.Name())
	require.Equal(t, int64(20), info.Size())
	require.Equal(t, fs.FileMode(0o444), info.Mode())
	require.True(t, info.ModTime().IsZero())

	entry, ok := info.Sys().(section.Entry)
	require.True(t, ok)
	require.Equal(t, uint32(20), entry.Length)

	content, err := io.ReadAll(f)
	require.NoError(t, err)
	require.Equal(t, "GBFS sample archive\n", string(content))

	root, err := fs.Stat(fsys, ".")
	require.NoError(t, err)
	require.True(t, root.IsDir())

	dir, err := fsys.Open(".")
	require.NoError(t, err)
	_, err = dir.Read(make([]byte, 1))
	require.Error(t, err)
	require.NoError(t, dir.Close())
}

func TestFS_RootReadDirPaging(t *testing.T) {
	_, fsys := openFS(t)

	f, err := fsys.Open(".")
	require.NoError(t, err)

	dir, ok := f.(fs.ReadDirFile)
	require.True(t, ok)

	first, err := dir.ReadDir(3)
	require.NoError(t, err)
	require.Len(t, first, 3)

	rest, err := dir.ReadDir(3)
	require.NoError(t, err)
	require.Len(t, rest, 1)

	_, err = dir.ReadDir(1)
	require.ErrorIs(t, err, io.EOF)

	tail, err := dir.ReadDir(-1)
	require.NoError(t, err)
	require.Empty(t, tail)
}
