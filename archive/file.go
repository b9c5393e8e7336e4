package archive

import (
	"bytes"
	"fmt"

	"github.com/arloliu/gbfs/endian"
	"github.com/arloliu/gbfs/internal/hash"
	"github.com/arloliu/gbfs/section"
)

// File is a transient view of one archive entry.
//
// Data aliases the archive buffer; it is valid as long as that buffer is and
// must not be modified. Its capacity is clipped to the payload, so appending
// to it never writes into the archive.
type File struct {
	// Name is the file name as stored in the directory.
	Name section.Name
	// Data is the zero-copy payload.
	Data []byte
	// Index is the entry's position in the directory.
	Index int
}

// Size returns the payload length in bytes.
func (f File) Size() int {
	return len(f.Data)
}

// Checksum returns the xxHash64 of the payload.
func (f File) Checksum() uint64 {
	return hash.Sum(f.Data)
}

// Reader returns an io.ReadSeeker and io.ReaderAt over the payload.
func (f File) Reader() *bytes.Reader {
	return bytes.NewReader(f.Data)
}

// Uint16s decodes the payload as big-endian 16-bit words, as used by tile
// and palette data.
//
// Returns:
//   - []uint16: Size()/2 words
//   - error: *errs.LengthMismatchError if Size() is odd
func (f File) Uint16s() ([]uint16, error) {
	words, err := endian.Uint16s(endian.GetBigEndianEngine(), f.Data)
	if err != nil {
		return nil, fmt.Errorf("file %q: %w", f.Name.String(), err)
	}

	return words, nil
}

// Uint32s decodes the payload as big-endian 32-bit words.
//
// Returns:
//   - []uint32: Size()/4 words
//   - error: *errs.LengthMismatchError if Size() is not a multiple of 4
func (f File) Uint32s() ([]uint32, error) {
	words, err := endian.Uint32s(endian.GetBigEndianEngine(), f.Data)
	if err != nil {
		return nil, fmt.Errorf("file %q: %w", f.Name.String(), err)
	}

	return words, nil
}
