// Package archive opens GBFS archives and retrieves their files.
//
// GBFS is a flat, read-only format that packs named files into one
// contiguous buffer behind a 32-byte header and a table of 32-byte directory
// entries (see the section package for the byte layout). Open validates the
// header, decodes the whole directory up front and returns an immutable
// Filesystem that borrows the buffer:
//
//	fsys, err := archive.Open(data)
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
// # Zero Copy
//
// File.Data slices the buffer passed to Open. Nothing is copied, so the
// buffer must outlive every Filesystem and File derived from it, and must not
// be modified while they are in use.
//
// # Lookup Semantics
//
// Names are compared byte for byte, case-sensitively. The format does not
// require names to be unique; Lookup scans in directory order and returns the
// first match. Duplicates reports names stored more than once. Query names
// longer than 24 bytes fail with errs.ErrNameTooLong before any scan.
//
// # Bounds Safety
//
// Open never reads outside the buffer: a buffer shorter than the header or
// the directory fails with errs.ErrTruncated. Payload ranges are checked
// every time a File is produced, so an entry pointing past the end of the
// buffer fails with errs.ErrOutOfBounds on access rather than at Open.
//
// # Directory Stores
//
// By default the directory is held in a slice sized from the header
// (format.StoreDynamic). WithFixedCapacity selects a store with a hard slot
// count (format.StoreFixed); archives declaring more entries fail with
// errs.ErrTooManyEntries. Both stores behave identically otherwise.
//
// # io/fs
//
// FS exposes the archive as an fs.FS so it can be used with fs.WalkDir,
// http.FS, template.ParseFS and similar helpers.
//
// # Thread Safety
//
// A Filesystem is immutable after Open and safe for concurrent readers.
package archive
