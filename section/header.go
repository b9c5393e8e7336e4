package section

import (
	"github.com/arloliu/gbfs/endian"
	"github.com/arloliu/gbfs/errs"
)

// Header represents the fixed-size 32-byte header at the start of a GBFS archive.
//
// The magic string (bytes 0-15) and reserved bytes (24-31) are validated on
// parse and are not stored.
type Header struct {
	// TotalLen is the declared size of the whole archive in bytes.
	TotalLen uint32 // byte offset 16-19
	// DirOffset is the byte offset from the archive start to the first directory entry.
	DirOffset uint16 // byte offset 20-21
	// EntryCount is the number of directory entries.
	EntryCount uint16 // byte offset 22-23
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing header (must be exactly 32 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 32 bytes, or *errs.HeaderError
//     if the magic or reserved bytes are wrong
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	for i := range MagicSize {
		if data[i] != Magic[i] {
			return &errs.HeaderError{Reason: errs.ErrInvalidMagic, Offset: i}
		}
	}

	// A non-zero reserved byte means a newer or unknown format revision.
	for i := reservedOffset; i < HeaderSize; i++ {
		if data[i] != 0 {
			return &errs.HeaderError{Reason: errs.ErrReservedNotZero, Offset: i}
		}
	}

	engine := endian.GetLittleEndianEngine()
	h.TotalLen = engine.Uint32(data[totalLenOffset:dirOffsetOffset])
	h.DirOffset = engine.Uint16(data[dirOffsetOffset:entryCountOffset])
	h.EntryCount = engine.Uint16(data[entryCountOffset:reservedOffset])

	return nil
}

// Bytes serializes the Header into a new 32-byte slice, magic included.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine := endian.GetLittleEndianEngine()

	copy(b, Magic)
	engine.PutUint32(b[totalLenOffset:dirOffsetOffset], h.TotalLen)
	engine.PutUint16(b[dirOffsetOffset:entryCountOffset], h.DirOffset)
	engine.PutUint16(b[entryCountOffset:reservedOffset], h.EntryCount)

	return b
}

// DirectoryEnd returns the offset one past the last directory entry.
func (h *Header) DirectoryEnd() int {
	return int(h.DirOffset) + int(h.EntryCount)*EntrySize
}

// ParseHeader parses a Header from the start of an archive buffer.
//
// Parameters:
//   - data: Archive bytes (must be at least 32 bytes)
//
// Returns:
//   - Header: Parsed header struct
//   - error: *errs.TruncatedError if data is shorter than the header, or
//     *errs.HeaderError on magic or reserved byte mismatch
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, &errs.TruncatedError{Section: "header", Index: -1, Need: HeaderSize, Have: len(data)}
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
