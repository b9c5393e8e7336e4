package archive

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"slices"
	"strings"
	"time"

	"github.com/arloliu/gbfs/errs"
	"github.com/arloliu/gbfs/section"
)

// FS returns a read-only io/fs view of the archive.
//
// The view implements fs.FS, fs.ReadFileFS, fs.ReadDirFS and fs.StatFS. The
// namespace is flat: "." is the only directory and every other valid name is
// a file. Entries whose names are not a single valid path element (empty,
// ".", or containing "/"), later duplicates of a name, and entries whose
// payload is out of bounds are not visible through this view; use the
// Filesystem methods to reach them.
func (f *Filesystem) FS() fs.FS {
	return &dirFS{fsys: f}
}

type dirFS struct {
	fsys *Filesystem
}

var (
	_ fs.FS         = (*dirFS)(nil)
	_ fs.ReadFileFS = (*dirFS)(nil)
	_ fs.ReadDirFS  = (*dirFS)(nil)
	_ fs.StatFS     = (*dirFS)(nil)
)

// visibleName reports whether name can be addressed as a file in the flat namespace.
func visibleName(name string) bool {
	return name != "." && !strings.Contains(name, "/") && fs.ValidPath(name)
}

// file resolves a path to a visible file.
func (d *dirFS) file(op, name string) (File, error) {
	if !fs.ValidPath(name) {
		return File{}, &fs.PathError{Op: op, Path: name, Err: fs.ErrInvalid}
	}
	if !visibleName(name) {
		return File{}, &fs.PathError{Op: op, Path: name, Err: fs.ErrNotExist}
	}

	file, err := d.fsys.Lookup(name)
	if err != nil {
		if errors.Is(err, errs.ErrNoSuchFile) || errors.Is(err, errs.ErrNameTooLong) {
			return File{}, &fs.PathError{Op: op, Path: name, Err: fs.ErrNotExist}
		}

		return File{}, &fs.PathError{Op: op, Path: name, Err: err}
	}

	return file, nil
}

// Open implements fs.FS.
func (d *dirFS) Open(name string) (fs.File, error) {
	if name == "." {
		return &rootDir{info: rootInfo{}, entries: d.dirEntries()}, nil
	}

	file, err := d.file("open", name)
	if err != nil {
		return nil, err
	}

	return &openFile{Reader: file.Reader(), info: newFileInfo(d.fsys, file)}, nil
}

// ReadFile implements fs.ReadFileFS. The returned slice is a copy and may be
// modified by the caller.
func (d *dirFS) ReadFile(name string) ([]byte, error) {
	if name == "." {
		return nil, &fs.PathError{Op: "readfile", Path: name, Err: fs.ErrInvalid}
	}

	file, err := d.file("readfile", name)
	if err != nil {
		return nil, err
	}

	return bytes.Clone(file.Data), nil
}

// ReadDir implements fs.ReadDirFS. Entries are sorted by name.
func (d *dirFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if name != "." {
		if _, err := d.file("readdir", name); err != nil {
			return nil, err
		}

		return nil, &fs.PathError{Op: "readdir", Path: name, Err: errors.New("not a directory")}
	}

	return d.dirEntries(), nil
}

// Stat implements fs.StatFS.
func (d *dirFS) Stat(name string) (fs.FileInfo, error) {
	if name == "." {
		return rootInfo{}, nil
	}

	file, err := d.file("stat", name)
	if err != nil {
		return nil, err
	}

	return newFileInfo(d.fsys, file), nil
}

// dirEntries lists the visible files sorted by name, one per distinct name.
func (d *dirFS) dirEntries() []fs.DirEntry {
	entries := make([]fs.DirEntry, 0, d.fsys.Len())
	for i := range d.fsys.Len() {
		name := d.fsys.dir.at(i).Name.String()
		if !visibleName(name) {
			continue
		}
		if first, _ := d.fsys.tracker.First(name); first != i {
			continue
		}

		file, err := d.fsys.file(i)
		if err != nil {
			continue
		}
		entries = append(entries, fs.FileInfoToDirEntry(newFileInfo(d.fsys, file)))
	}

	slices.SortFunc(entries, func(a, b fs.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})

	return entries
}

// fileInfo describes an archive file. Sys returns the section.Entry.
type fileInfo struct {
	name  string
	size  int64
	entry section.Entry
}

func newFileInfo(fsys *Filesystem, file File) fileInfo {
	return fileInfo{
		name:  file.Name.String(),
		size:  int64(file.Size()),
		entry: fsys.dir.at(file.Index),
	}
}

func (i fileInfo) Name() string       { return i.name }
func (i fileInfo) Size() int64        { return i.size }
func (i fileInfo) Mode() fs.FileMode  { return 0o444 }
func (i fileInfo) ModTime() time.Time { return time.Time{} }
func (i fileInfo) IsDir() bool        { return false }
func (i fileInfo) Sys() any           { return i.entry }

// rootInfo describes the archive root directory.
type rootInfo struct{}

func (rootInfo) Name() string       { return "." }
func (rootInfo) Size() int64        { return 0 }
func (rootInfo) Mode() fs.FileMode  { return fs.ModeDir | 0o555 }
func (rootInfo) ModTime() time.Time { return time.Time{} }
func (rootInfo) IsDir() bool        { return true }
func (rootInfo) Sys() any           { return nil }

// openFile is an fs.File over a payload. It also implements io.Seeker and io.ReaderAt.
type openFile struct {
	*bytes.Reader
	info fileInfo
}

func (f *openFile) Stat() (fs.FileInfo, error) { return f.info, nil }

func (f *openFile) Close() error { return nil }

// rootDir is the fs.ReadDirFile for ".".
type rootDir struct {
	info    rootInfo
	entries []fs.DirEntry
	offset  int
}

func (d *rootDir) Stat() (fs.FileInfo, error) { return d.info, nil }

func (d *rootDir) Read([]byte) (int, error) {
	return 0, &fs.PathError{Op: "read", Path: ".", Err: errors.New("is a directory")}
}

func (d *rootDir) Close() error { return nil }

func (d *rootDir) ReadDir(n int) ([]fs.DirEntry, error) {
	remaining := d.entries[d.offset:]
	if n <= 0 {
		d.offset = len(d.entries)
		return slices.Clone(remaining), nil
	}
	if len(remaining) == 0 {
		return nil, io.EOF
	}

	n = min(n, len(remaining))
	d.offset += n

	return slices.Clone(remaining[:n]), nil
}
