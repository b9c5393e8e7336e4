package section

import (
	"github.com/arloliu/gbfs/endian"
	"github.com/arloliu/gbfs/errs"
)

// Entry records a single file in the directory table. It is a fixed size of 32 bytes:
//
//	Bytes  | Field      | Type     | Description
//	-------|------------|----------|----------------------------------
//	0-23   | Name       | [24]byte | NUL-padded UTF-8 file name
//	24-27  | Length     | uint32   | Payload size in bytes
//	28-31  | DataOffset | uint32   | Payload offset from archive start
type Entry struct {
	// Name is the decoded file name.
	Name Name
	// Length is the payload size in bytes.
	//
	// Offset: 24, Size: 4 bytes
	Length uint32
	// DataOffset is the byte offset from the start of the archive to the payload.
	//
	// Offset: 28, Size: 4 bytes
	DataOffset uint32
}

// ParseEntry parses a directory entry from a byte slice.
//
// Parameters:
//   - data: Byte slice containing one entry (must be exactly 32 bytes)
//
// Returns:
//   - Entry: Parsed entry
//   - error: ErrInvalidEntrySize if data is not 32 bytes, or *errs.InvalidNameError
//     if the name is not valid UTF-8 (Offset relative to the entry start)
func ParseEntry(data []byte) (Entry, error) {
	if len(data) != EntrySize {
		return Entry{}, errs.ErrInvalidEntrySize
	}

	name, err := DecodeName(data[:NameSize])
	if err != nil {
		return Entry{}, err
	}

	engine := endian.GetLittleEndianEngine()

	return Entry{
		Name:       name,
		Length:     engine.Uint32(data[entryLengthOffset:entryDataOffset]),
		DataOffset: engine.Uint32(data[entryDataOffset:EntrySize]),
	}, nil
}

// End returns the offset one past the last payload byte.
//
// The sum is computed in 64 bits so that hostile offsets cannot wrap.
func (e Entry) End() uint64 {
	return uint64(e.DataOffset) + uint64(e.Length)
}

// InBounds reports whether the payload lies entirely within an archive of size bytes.
func (e Entry) InBounds(size int) bool {
	return size >= 0 && e.End() <= uint64(size)
}

// Bytes serializes the Entry into a new 32-byte slice.
func (e Entry) Bytes() []byte {
	b := make([]byte, EntrySize)

	raw := e.Name.Raw()
	copy(b[:NameSize], raw[:])

	engine := endian.GetLittleEndianEngine()
	engine.PutUint32(b[entryLengthOffset:entryDataOffset], e.Length)
	engine.PutUint32(b[entryDataOffset:EntrySize], e.DataOffset)

	return b
}
