package archive

import (
	"errors"
	"fmt"

	"github.com/arloliu/gbfs/errs"
	"github.com/arloliu/gbfs/internal/collision"
	"github.com/arloliu/gbfs/section"
)

// decodeDirectory decodes every directory entry into st and tracker.
//
// Decoding is eager: the whole table is validated here so that later
// lookups cannot hit a malformed record. Each record is bounds-checked
// against data before any field is read.
func decodeDirectory(data []byte, hdr section.Header, st store, tracker *collision.Tracker) error {
	count := int(hdr.EntryCount)
	dirOffset := int(hdr.DirOffset)

	for i := range count {
		start := dirOffset + i*section.EntrySize
		end := start + section.EntrySize
		if end > len(data) {
			return &errs.TruncatedError{Section: "directory", Index: i, Need: end, Have: len(data)}
		}

		entry, err := section.ParseEntry(data[start:end])
		if err != nil {
			var invalid *errs.InvalidNameError
			if errors.As(err, &invalid) {
				return &errs.InvalidNameError{Offset: start + invalid.Offset, Index: i}
			}

			return fmt.Errorf("directory entry %d: %w", i, err)
		}

		if err := st.push(entry); err != nil {
			return err
		}
		tracker.Track(entry.Name.String())
	}

	return nil
}
