package section

import (
	"bytes"
	"unicode/utf8"

	"github.com/arloliu/gbfs/errs"
)

// Name is a file name held in a fixed 24-byte buffer with an explicit length.
//
// Bytes past Len are always zero, so two Names can be compared with ==.
// The zero value is the empty name.
type Name struct {
	buf [NameSize]byte
	n   uint8
}

// NewName builds a Name from a caller-supplied string.
//
// The string is taken byte for byte; no normalization is applied.
//
// Returns:
//   - Name: The fixed-size name
//   - error: *errs.NameTooLongError if s is longer than NameSize bytes
func NewName(s string) (Name, error) {
	if len(s) > NameSize {
		return Name{}, &errs.NameTooLongError{Max: NameSize, Actual: len(s)}
	}

	var name Name
	name.n = uint8(copy(name.buf[:], s))

	return name, nil
}

// DecodeName decodes a NUL-padded name field as stored in a directory entry.
//
// The name ends at the first NUL byte, or at the end of raw if there is none.
// The prefix must be valid UTF-8; invalid input is never substituted or
// truncated.
//
// Parameters:
//   - raw: The name field, at most NameSize bytes
//
// Returns:
//   - Name: Decoded name
//   - error: *errs.NameTooLongError if raw exceeds NameSize, or
//     *errs.InvalidNameError with the offset of the first invalid byte
func DecodeName(raw []byte) (Name, error) {
	if len(raw) > NameSize {
		return Name{}, &errs.NameTooLongError{Max: NameSize, Actual: len(raw)}
	}

	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}

	if !utf8.Valid(raw) {
		return Name{}, &errs.InvalidNameError{Offset: validUpTo(raw), Index: -1}
	}

	var name Name
	name.n = uint8(copy(name.buf[:], raw))

	return name, nil
}

// validUpTo returns the length of the longest valid UTF-8 prefix of b.
func validUpTo(b []byte) int {
	off := 0
	for off < len(b) {
		r, size := utf8.DecodeRune(b[off:])
		if r == utf8.RuneError && size <= 1 {
			return off
		}
		off += size
	}

	return off
}

// String returns the name as a Go string.
func (n Name) String() string {
	return string(n.buf[:n.n])
}

// Len returns the name length in bytes.
func (n Name) Len() int {
	return int(n.n)
}

// Bytes returns a copy of the name without padding.
func (n Name) Bytes() []byte {
	return append([]byte(nil), n.buf[:n.n]...)
}

// Raw returns the NUL-padded on-disk form of the name.
func (n Name) Raw() [NameSize]byte {
	return n.buf
}

// Equal reports whether two names are byte-for-byte identical.
func (n Name) Equal(other Name) bool {
	return n == other
}

// EqualString reports whether the name equals s exactly. Comparison is case-sensitive.
func (n Name) EqualString(s string) bool {
	return len(s) == int(n.n) && string(n.buf[:n.n]) == s
}
