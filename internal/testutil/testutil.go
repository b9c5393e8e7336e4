// Package testutil builds GBFS archive fixtures for tests.
package testutil

import (
	"testing"

	"github.com/arloliu/gbfs/endian"
	"github.com/arloliu/gbfs/section"
	"github.com/stretchr/testify/require"
)

// File is one file to place in a fixture archive.
type File struct {
	Name string
	Data []byte
}

// Build lays out a well-formed archive: header, directory at offset 32, then
// payloads in directory order. TotalLen is set to the final length.
func Build(tb testing.TB, files ...File) []byte {
	tb.Helper()

	hdr := section.Header{
		DirOffset:  section.HeaderSize,
		EntryCount: uint16(len(files)),
	}
	require.LessOrEqual(tb, len(files), section.MaxEntryCount)

	dataStart := hdr.DirectoryEnd()
	out := make([]byte, dataStart)

	offset := dataStart
	for i, f := range files {
		name, err := section.NewName(f.Name)
		require.NoError(tb, err)

		entry := section.Entry{
			Name:       name,
			Length:     uint32(len(f.Data)),
			DataOffset: uint32(offset),
		}
		copy(out[EntryOffset(i):], entry.Bytes())
		out = append(out, f.Data...)
		offset += len(f.Data)
	}

	hdr.TotalLen = uint32(len(out))
	copy(out, hdr.Bytes())

	return out
}

// Payload returns n bytes following a simple position-derived pattern.
func Payload(n int, seed byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i) ^ seed
	}

	return b
}

// EntryOffset returns the position of entry i when the directory starts at offset 32.
func EntryOffset(i int) int {
	return section.HeaderSize + i*section.EntrySize
}

// SetEntryCount overwrites the header's entry_count field.
func SetEntryCount(data []byte, n uint16) {
	endian.GetLittleEndianEngine().PutUint16(data[22:24], n)
}

// SetDirOffset overwrites the header's dir_offset field.
func SetDirOffset(data []byte, off uint16) {
	endian.GetLittleEndianEngine().PutUint16(data[20:22], off)
}

// SetTotalLen overwrites the header's total_len field.
func SetTotalLen(data []byte, n uint32) {
	endian.GetLittleEndianEngine().PutUint32(data[16:20], n)
}

// SetEntryName overwrites the raw 24-byte name field of entry i.
// raw is NUL padded; it may hold any bytes, including invalid UTF-8.
func SetEntryName(data []byte, i int, raw []byte) {
	field := data[EntryOffset(i) : EntryOffset(i)+section.NameSize]
	clear(field)
	copy(field, raw)
}

// SetEntryLength overwrites the length field of entry i.
func SetEntryLength(data []byte, i int, n uint32) {
	off := EntryOffset(i) + section.NameSize
	endian.GetLittleEndianEngine().PutUint32(data[off:off+4], n)
}

// SetEntryDataOffset overwrites the data_offset field of entry i.
func SetEntryDataOffset(data []byte, i int, off uint32) {
	pos := EntryOffset(i) + section.NameSize + 4
	endian.GetLittleEndianEngine().PutUint32(data[pos:pos+4], off)
}
