// Package section defines the low-level binary structures and constants of the GBFS archive format.
//
// This package handles byte-level decoding of the fixed-size archive header,
// directory entries and their NUL-padded names. It performs no allocation of
// payload data and holds no references to the input buffer.
//
// # Archive Structure
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (32 bytes, fixed)                                │
//	│  - Magic (16 bytes): "PinEightGBFS\r\n\x1a\n"           │
//	│  - TotalLen, DirOffset, EntryCount                      │
//	│  - Reserved (8 bytes, zero)                             │
//	├─────────────────────────────────────────────────────────┤
//	│ Directory (N × 32 bytes, at DirOffset)                  │
//	│  - Name (24 bytes), Length, DataOffset                  │
//	├─────────────────────────────────────────────────────────┤
//	│ Payloads (variable, at each entry's DataOffset)         │
//	└─────────────────────────────────────────────────────────┘
//
// # Header Format
//
//	Bytes  | Field      | Type     | Description
//	-------|------------|----------|----------------------------------
//	0-15   | Magic      | [16]byte | Format identifier
//	16-19  | TotalLen   | uint32   | Declared archive size
//	20-21  | DirOffset  | uint16   | Byte offset of the first entry
//	22-23  | EntryCount | uint16   | Number of directory entries
//	24-31  | Reserved   | [8]byte  | Must be zero
//
// All multi-byte fields are little-endian. A wrong magic byte or a non-zero
// reserved byte fails the parse; there is no compatibility fallback.
//
// # Names
//
// Names are at most NameSize (24) bytes. On disk they are padded with NUL
// bytes; the decoded Name ends at the first NUL and must be valid UTF-8.
// Names are compared byte for byte, case-sensitively.
//
// # Usage Examples
//
// Parsing a header:
//
//	hdr, err := section.ParseHeader(data)
//	if err != nil {
//	    return err
//	}
//
// Parsing the i-th directory entry:
//
//	start := int(hdr.DirOffset) + i*section.EntrySize
//	entry, err := section.ParseEntry(data[start : start+section.EntrySize])
//
// Most users should use the archive package instead of using section directly.
package section
