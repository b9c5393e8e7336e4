package archive

import (
	"iter"
	"log/slog"

	"github.com/arloliu/gbfs/errs"
	"github.com/arloliu/gbfs/format"
	"github.com/arloliu/gbfs/internal/collision"
	"github.com/arloliu/gbfs/internal/hash"
	"github.com/arloliu/gbfs/internal/options"
	"github.com/arloliu/gbfs/section"
)

// Filesystem is a parsed, immutable view of a GBFS archive.
//
// A Filesystem borrows the buffer passed to Open and never copies it. Every
// File it returns slices that same buffer. The buffer must not be modified
// while the Filesystem or any File derived from it is in use.
//
// A Filesystem is safe for concurrent use by multiple goroutines.
type Filesystem struct {
	data    []byte
	header  section.Header
	dir     store
	tracker *collision.Tracker
	logger  *slog.Logger
}

// Duplicate describes a file name stored more than once. Lookups by Name
// return the entry at Indices[0].
type Duplicate struct {
	Name    string
	Indices []int
}

// Open parses a GBFS archive held in data.
//
// Open validates the header, checks the declared total length (unless
// disabled with WithLengthCheck(false)) and decodes the whole directory. On
// any failure it returns a nil Filesystem and an error; there is no partial
// result.
//
// Parameters:
//   - data: The complete archive; it is borrowed, not copied
//   - opts: Optional configuration (WithFixedCapacity, WithLengthCheck, WithLogger)
//
// Returns:
//   - *Filesystem: The parsed archive
//   - error: *errs.TruncatedError, *errs.HeaderError, *errs.TooManyEntriesError,
//     *errs.InvalidNameError, or an option error
//
// Example:
//
//	fsys, err := archive.Open(data)
//	if err != nil {
//	    return err
//	}
//	tiles, err := fsys.Lookup("copper1Tiles")
func Open(data []byte, opts ...Option) (*Filesystem, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	header, err := section.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	if cfg.lengthCheck && uint64(header.TotalLen) > uint64(len(data)) {
		return nil, &errs.TruncatedError{Section: "archive", Index: -1, Need: int(header.TotalLen), Have: len(data)}
	}

	count := int(header.EntryCount)
	dir, err := newStore(cfg, count)
	if err != nil {
		return nil, err
	}

	tracker := collision.NewTracker(count)
	if err := decodeDirectory(data, header, dir, tracker); err != nil {
		return nil, err
	}

	f := &Filesystem{
		data:    data,
		header:  header,
		dir:     dir,
		tracker: tracker,
		logger:  cfg.logger,
	}

	f.log().Debug("archive opened",
		"entries", count,
		"store", dir.kind().String(),
		"size", len(data),
		"total_len", header.TotalLen,
	)
	for _, dup := range tracker.Duplicates() {
		f.log().Debug("duplicate file name", "name", dup.Name, "indices", dup.Indices)
	}

	return f, nil
}

// log returns the logger, falling back to a discard logger if nil.
func (f *Filesystem) log() *slog.Logger {
	if f.logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return f.logger
}

// Len returns the number of directory entries.
func (f *Filesystem) Len() int {
	return f.dir.len()
}

// Capacity returns the number of entries the directory store can hold.
// For a dynamic store this equals Len.
func (f *Filesystem) Capacity() int {
	return f.dir.capacity()
}

// Header returns the decoded archive header.
func (f *Filesystem) Header() section.Header {
	return f.header
}

// StoreKind reports which directory store backs the Filesystem.
func (f *Filesystem) StoreKind() format.StoreKind {
	return f.dir.kind()
}

// Bytes returns the borrowed archive buffer.
func (f *Filesystem) Bytes() []byte {
	return f.data
}

// Entry returns the raw directory entry at index i.
//
// Returns errs.ErrIndexOutOfRange if i is not in [0, Len()).
func (f *Filesystem) Entry(i int) (section.Entry, error) {
	if i < 0 || i >= f.dir.len() {
		return section.Entry{}, errs.ErrIndexOutOfRange
	}

	return f.dir.at(i), nil
}

// FileAt returns the file at directory index i.
//
// Returns:
//   - File: Name and zero-copy payload
//   - error: errs.ErrIndexOutOfRange if i is not in [0, Len()), or
//     *errs.OutOfBoundsError if the payload extends past the buffer
func (f *Filesystem) FileAt(i int) (File, error) {
	if i < 0 || i >= f.dir.len() {
		return File{}, errs.ErrIndexOutOfRange
	}

	return f.file(i)
}

// file slices the payload of entry i. The payload bounds are rechecked on
// every call, independent of the directory decoder.
func (f *Filesystem) file(i int) (File, error) {
	entry := f.dir.at(i)
	if !entry.InBounds(len(f.data)) {
		return File{}, &errs.OutOfBoundsError{
			Index:  i,
			Offset: entry.DataOffset,
			Length: entry.Length,
			Size:   len(f.data),
		}
	}

	start, end := int(entry.DataOffset), int(entry.End())

	return File{Name: entry.Name, Data: f.data[start:end:end], Index: i}, nil
}

// Lookup returns the first file, in directory order, whose name equals name.
//
// Matching is exact and case-sensitive. A name longer than section.NameSize
// bytes is rejected before the directory is scanned.
//
// Returns:
//   - File: The matching file
//   - error: *errs.NameTooLongError, *errs.NoSuchFileError, or
//     *errs.OutOfBoundsError for a matching entry with an invalid payload range
func (f *Filesystem) Lookup(name string) (File, error) {
	if len(name) > section.NameSize {
		return File{}, &errs.NameTooLongError{Max: section.NameSize, Actual: len(name)}
	}

	for i := range f.dir.len() {
		if f.dir.at(i).Name.EqualString(name) {
			return f.file(i)
		}
	}

	return File{}, &errs.NoSuchFileError{Name: name}
}

// LookupName is Lookup for an already validated section.Name.
func (f *Filesystem) LookupName(name section.Name) (File, error) {
	for i := range f.dir.len() {
		if f.dir.at(i).Name.Equal(name) {
			return f.file(i)
		}
	}

	return File{}, &errs.NoSuchFileError{Name: name.String()}
}

// ReadFile returns the payload of the named file without copying it.
//
// The returned slice aliases the archive buffer and must not be modified.
func (f *Filesystem) ReadFile(name string) ([]byte, error) {
	file, err := f.Lookup(name)
	if err != nil {
		return nil, err
	}

	return file.Data, nil
}

// All returns an iterator over every file in directory order.
//
// The sequence yields exactly Len() items. An entry whose payload lies
// outside the buffer is yielded with a zero File and an *errs.OutOfBoundsError;
// iteration continues with the next entry. Each call returns a fresh iterator.
//
// Example:
//
//	for file, err := range fsys.All() {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(file.Name, file.Size())
//	}
func (f *Filesystem) All() iter.Seq2[File, error] {
	return func(yield func(File, error) bool) {
		for i := range f.dir.len() {
			if !yield(f.file(i)) {
				return
			}
		}
	}
}

// Entries returns an iterator over the raw directory entries in order.
func (f *Filesystem) Entries() iter.Seq2[int, section.Entry] {
	return func(yield func(int, section.Entry) bool) {
		for i := range f.dir.len() {
			if !yield(i, f.dir.at(i)) {
				return
			}
		}
	}
}

// Names returns an iterator over the file names in directory order,
// duplicates included.
func (f *Filesystem) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := range f.dir.len() {
			if !yield(f.dir.at(i).Name.String()) {
				return
			}
		}
	}
}

// Duplicates returns every file name stored more than once, ordered by
// first occurrence. It returns nil when all names are distinct.
func (f *Filesystem) Duplicates() []Duplicate {
	dups := f.tracker.Duplicates()
	if len(dups) == 0 {
		return nil
	}

	out := make([]Duplicate, len(dups))
	for i, d := range dups {
		out[i] = Duplicate{Name: d.Name, Indices: d.Indices}
	}

	return out
}

// Fingerprint returns an xxHash64 digest of the decoded header fields and
// directory. Opening the same buffer again yields the same fingerprint.
func (f *Filesystem) Fingerprint() uint64 {
	digest := hash.NewDigest()
	_, _ = digest.Write(f.header.Bytes())
	for i := range f.dir.len() {
		_, _ = digest.Write(f.dir.at(i).Bytes())
	}

	return digest.Sum64()
}
