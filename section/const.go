package section

import "math"

// Magic identifies a GBFS archive. It occupies bytes 0-15 of the header.
const Magic = "PinEightGBFS\r\n\x1a\n"

// offset and section sizes in the archive
const (
	MagicSize            = len(Magic)     // magic string length in bytes
	HeaderSize           = 32             // fixed header size in bytes
	NameSize             = 24             // fixed, NUL-padded name field of a directory entry
	EntrySize            = 32             // fixed directory entry size in bytes
	DefaultFixedCapacity = 2048           // default slot count of a fixed-capacity directory
	MaxEntryCount        = math.MaxUint16 // largest entry count a header can declare

	totalLenOffset   = 16 // byte offset of total_len (u32)
	dirOffsetOffset  = 20 // byte offset of dir_offset (u16)
	entryCountOffset = 22 // byte offset of entry_count (u16)
	reservedOffset   = 24 // bytes 24-31 are reserved and must be zero

	entryLengthOffset = NameSize     // byte offset of length (u32) within an entry
	entryDataOffset   = NameSize + 4 // byte offset of data_offset (u32) within an entry
)
