package archive

import (
	"github.com/arloliu/gbfs/errs"
	"github.com/arloliu/gbfs/format"
	"github.com/arloliu/gbfs/section"
)

// store holds decoded directory entries in directory order.
// Callers guarantee 0 <= i < len() for at.
type store interface {
	kind() format.StoreKind
	len() int
	capacity() int
	at(i int) section.Entry
	push(e section.Entry) error
}

// newStore returns an empty store able to hold count entries.
func newStore(cfg *config, count int) (store, error) {
	if cfg.storeKind == format.StoreFixed {
		if count > cfg.capacity {
			return nil, &errs.TooManyEntriesError{Capacity: cfg.capacity, Requested: count}
		}

		return newFixedStore(cfg.capacity), nil
	}

	return newDynamicStore(count), nil
}

type dynamicStore struct {
	entries []section.Entry
}

func newDynamicStore(count int) *dynamicStore {
	return &dynamicStore{entries: make([]section.Entry, 0, count)}
}

func (s *dynamicStore) kind() format.StoreKind { return format.StoreDynamic }

func (s *dynamicStore) len() int { return len(s.entries) }

func (s *dynamicStore) capacity() int { return cap(s.entries) }

func (s *dynamicStore) at(i int) section.Entry { return s.entries[i] }

func (s *dynamicStore) push(e section.Entry) error {
	s.entries = append(s.entries, e)
	return nil
}

// fixedStore never grows past the capacity it was created with.
// Slots [0, n) are occupied.
type fixedStore struct {
	slots []section.Entry
	n     int
}

func newFixedStore(capacity int) *fixedStore {
	return &fixedStore{slots: make([]section.Entry, capacity)}
}

func (s *fixedStore) kind() format.StoreKind { return format.StoreFixed }

func (s *fixedStore) len() int { return s.n }

func (s *fixedStore) capacity() int { return len(s.slots) }

func (s *fixedStore) at(i int) section.Entry { return s.slots[i] }

func (s *fixedStore) push(e section.Entry) error {
	if s.n == len(s.slots) {
		return &errs.TooManyEntriesError{Capacity: len(s.slots), Requested: s.n + 1}
	}
	s.slots[s.n] = e
	s.n++

	return nil
}
