// Package errs defines the error values returned by the gbfs packages.
//
// Every failure kind has an exported sentinel so callers can classify errors
// with errors.Is. Kinds that carry context (offsets, counts, names) also have
// a typed error; each typed error matches its sentinel through Is, so both
// styles work:
//
//	fsys, err := archive.Open(data)
//	if errors.Is(err, errs.ErrTruncated) {
//	    // archive shorter than it claims
//	}
//
//	var tooMany *errs.TooManyEntriesError
//	if errors.As(err, &tooMany) {
//	    fmt.Println(tooMany.Capacity, tooMany.Requested)
//	}
package errs

import (
	"errors"
	"fmt"
)

var (
	ErrHeaderInvalid     = errors.New("gbfs: invalid header")
	ErrInvalidMagic      = errors.New("gbfs: wrong magic bytes")
	ErrReservedNotZero   = errors.New("gbfs: reserved header bytes are not zero")
	ErrInvalidHeaderSize = errors.New("gbfs: invalid header size")
	ErrInvalidEntrySize  = errors.New("gbfs: invalid directory entry size")
	ErrTruncated         = errors.New("gbfs: archive truncated")
	ErrTooManyEntries    = errors.New("gbfs: too many directory entries")
	ErrInvalidCapacity   = errors.New("gbfs: invalid directory capacity")
	ErrInvalidName       = errors.New("gbfs: invalid file name")
	ErrNameTooLong       = errors.New("gbfs: file name too long")
	ErrNoSuchFile        = errors.New("gbfs: no such file")
	ErrOutOfBounds       = errors.New("gbfs: file data out of bounds")
	ErrIndexOutOfRange   = errors.New("gbfs: entry index out of range")
	ErrLengthMismatch    = errors.New("gbfs: payload length is not a multiple of element size")
)

// HeaderError reports a header that is not a recognizable GBFS header.
//
// Reason is ErrInvalidMagic or ErrReservedNotZero. Offset is the byte
// position (0..31) of the first offending byte.
type HeaderError struct {
	Reason error
	Offset int
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("%v: %v at byte %d", ErrHeaderInvalid, e.Reason, e.Offset)
}

func (e *HeaderError) Is(target error) bool { return target == ErrHeaderInvalid }

func (e *HeaderError) Unwrap() error { return e.Reason }

// TruncatedError reports a buffer shorter than the archive structure requires.
type TruncatedError struct {
	// Section is "header", "directory" or "archive".
	Section string
	// Index is the directory entry being read, or -1.
	Index int
	// Need is the number of bytes the structure requires.
	Need int
	// Have is the actual buffer length.
	Have int
}

func (e *TruncatedError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%v: %s entry %d needs %d bytes, buffer has %d", ErrTruncated, e.Section, e.Index, e.Need, e.Have)
	}

	return fmt.Sprintf("%v: %s needs %d bytes, buffer has %d", ErrTruncated, e.Section, e.Need, e.Have)
}

func (e *TruncatedError) Is(target error) bool { return target == ErrTruncated }

// TooManyEntriesError reports a directory larger than a fixed-capacity store.
type TooManyEntriesError struct {
	Capacity  int
	Requested int
}

func (e *TooManyEntriesError) Error() string {
	return fmt.Sprintf("%v: capacity %d, archive declares %d", ErrTooManyEntries, e.Capacity, e.Requested)
}

func (e *TooManyEntriesError) Is(target error) bool { return target == ErrTooManyEntries }

// InvalidNameError reports a stored file name that is not valid UTF-8.
type InvalidNameError struct {
	// Offset is the position of the first invalid byte. Within a bare name it
	// is relative to the name field; the directory decoder rewrites it as an
	// absolute archive offset and fills Index.
	Offset int
	// Index is the directory entry, or -1 when unknown.
	Index int
}

func (e *InvalidNameError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%v: entry %d is not valid UTF-8 at byte %d", ErrInvalidName, e.Index, e.Offset)
	}

	return fmt.Sprintf("%v: not valid UTF-8 at byte %d", ErrInvalidName, e.Offset)
}

func (e *InvalidNameError) Is(target error) bool { return target == ErrInvalidName }

// NameTooLongError reports a name that does not fit the fixed name field.
type NameTooLongError struct {
	Max    int
	Actual int
}

func (e *NameTooLongError) Error() string {
	return fmt.Sprintf("%v: at most %d bytes are supported, got %d", ErrNameTooLong, e.Max, e.Actual)
}

func (e *NameTooLongError) Is(target error) bool { return target == ErrNameTooLong }

// NoSuchFileError reports a lookup that matched no directory entry.
type NoSuchFileError struct {
	Name string
}

func (e *NoSuchFileError) Error() string {
	return fmt.Sprintf("%v: %q", ErrNoSuchFile, e.Name)
}

func (e *NoSuchFileError) Is(target error) bool { return target == ErrNoSuchFile }

// OutOfBoundsError reports a directory entry whose payload lies outside the buffer.
type OutOfBoundsError struct {
	Index  int
	Offset uint32
	Length uint32
	Size   int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%v: entry %d spans [%d, %d) but archive is %d bytes",
		ErrOutOfBounds, e.Index, e.Offset, uint64(e.Offset)+uint64(e.Length), e.Size)
}

func (e *OutOfBoundsError) Is(target error) bool { return target == ErrOutOfBounds }

// LengthMismatchError reports a payload that cannot be viewed as whole elements.
type LengthMismatchError struct {
	Length   int
	ElemSize int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%v: %d bytes, element size %d", ErrLengthMismatch, e.Length, e.ElemSize)
}

func (e *LengthMismatchError) Is(target error) bool { return target == ErrLengthMismatch }
