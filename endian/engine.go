// Package endian provides byte order utilities for decoding gbfs archives.
//
// The archive's own structures (header and directory) are little-endian. The
// typed payload views used for tile and palette data decode big-endian words,
// matching the historical reader. Both are exposed through EndianEngine so
// that decoding code names the order it relies on:
//
//	engine := endian.GetLittleEndianEngine()
//	count := engine.Uint16(hdr[22:24])
//
//	words, err := endian.Uint16s(endian.GetBigEndianEngine(), payload)
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"

	"github.com/arloliu/gbfs/errs"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine used by the archive header and directory.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine used by the typed payload views.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// Uint16s decodes data as a sequence of 16-bit words in the given byte order.
//
// Parameters:
//   - engine: Byte order of the words
//   - data: Raw bytes, length must be a multiple of 2
//
// Returns:
//   - []uint16: Newly allocated slice of len(data)/2 words
//   - error: *errs.LengthMismatchError if len(data) is odd
func Uint16s(engine EndianEngine, data []byte) ([]uint16, error) {
	if len(data)%2 != 0 {
		return nil, &errs.LengthMismatchError{Length: len(data), ElemSize: 2}
	}

	out := make([]uint16, len(data)/2)
	for i := range out {
		out[i] = engine.Uint16(data[i*2:])
	}

	return out, nil
}

// Uint32s decodes data as a sequence of 32-bit words in the given byte order.
//
// Parameters:
//   - engine: Byte order of the words
//   - data: Raw bytes, length must be a multiple of 4
//
// Returns:
//   - []uint32: Newly allocated slice of len(data)/4 words
//   - error: *errs.LengthMismatchError if len(data) is not a multiple of 4
func Uint32s(engine EndianEngine, data []byte) ([]uint32, error) {
	if len(data)%4 != 0 {
		return nil, &errs.LengthMismatchError{Length: len(data), ElemSize: 4}
	}

	out := make([]uint32, len(data)/4)
	for i := range out {
		out[i] = engine.Uint32(data[i*4:])
	}

	return out, nil
}
