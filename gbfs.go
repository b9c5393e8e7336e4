// Package gbfs reads GBFS archives: the flat, read-only asset bundles used
// by handheld console homebrew to ship tiles, palettes, maps and other
// binary resources alongside a program image.
//
// An archive is a 32-byte header, a directory of 32-byte entries (a 24-byte
// NUL-padded name plus payload length and offset), and the payload bytes.
// Parsing never copies the payloads; every file returned is a slice of the
// original buffer.
//
// # Core Features
//
//   - Zero-copy file access by name or directory index
//   - Exact, case-sensitive, first-match lookups
//   - Bounds-checked payload slicing; corrupt offsets are reported, never read
//   - Dynamic or fixed-capacity directory stores
//   - Big-endian 16 and 32-bit payload views for tile and palette data
//   - An io/fs view for use with the standard library
//
// # Basic Usage
//
// Opening an archive that was read or mapped into memory:
//
//	import "github.com/arloliu/gbfs"
//
//	fsys, err := gbfs.Open(data)
//	if err != nil {
//	    return err
//	}
//
//	tiles, err := fsys.Lookup("copper1Tiles")
//	if err != nil {
//	    return err
//	}
//	words, err := tiles.Uint16s()
//
// Parsing an embedded archive once, on first use:
//
//	//go:embed assets.gbfs
//	var assetsData []byte
//
//	var assets = gbfs.Embed(assetsData)
//
//	func load() error {
//	    fsys, err := assets()
//	    ...
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the archive
// package. The section package holds the binary layouts and errs holds the
// error values. For fine-grained control use the archive package directly.
package gbfs

import (
	"fmt"
	"sync"

	"github.com/arloliu/gbfs/archive"
)

// Open parses a GBFS archive held in data. It is archive.Open.
//
// Available options:
//   - archive.WithDynamicStore() / archive.WithFixedCapacity(n)
//   - archive.WithLengthCheck(true|false)
//   - archive.WithLogger(logger)
//
// Example:
//
//	fsys, err := gbfs.Open(data, archive.WithFixedCapacity(256))
func Open(data []byte, opts ...archive.Option) (*archive.Filesystem, error) {
	return archive.Open(data, opts...)
}

// MustOpen is like Open but panics if the archive cannot be parsed.
//
// It is intended for package-level variables over archives built into the
// program, where a parse failure is a build defect.
func MustOpen(data []byte, opts ...archive.Option) *archive.Filesystem {
	fsys, err := archive.Open(data, opts...)
	if err != nil {
		panic(fmt.Sprintf("gbfs: MustOpen: %v", err))
	}

	return fsys
}

// Embed returns a function that parses data on its first call and returns
// the same Filesystem, or the same error, on every later call.
//
// Use it with //go:embed to declare an archive as a package-level value
// without parsing it during program initialization.
//
// Parameters:
//   - data: The archive bytes; they must stay unmodified for the program lifetime
//   - opts: Options passed to archive.Open
//
// Returns:
//   - func() (*archive.Filesystem, error): Safe for concurrent use
func Embed(data []byte, opts ...archive.Option) func() (*archive.Filesystem, error) {
	return sync.OnceValues(func() (*archive.Filesystem, error) {
		return archive.Open(data, opts...)
	})
}
