// Package collision detects repeated file names in a decoded directory.
//
// The GBFS format does not require names to be unique. Lookups resolve a
// repeated name to its first occurrence; the Tracker records the later
// occurrences so they can be reported.
package collision

import (
	"slices"

	"github.com/arloliu/gbfs/internal/hash"
)

// Duplicate describes a name that occurs more than once.
type Duplicate struct {
	// Name is the repeated file name.
	Name string
	// Indices are the directory positions holding Name, ascending.
	// Indices[0] is the entry that name lookups return.
	Indices []int
}

// Tracker tracks names in directory order and detects duplicates.
// It maps name hashes to the first occurrence of every distinct name with
// that hash, so different names whose hashes collide are kept apart.
type Tracker struct {
	byHash map[uint64][]int // hash → first index of each distinct name
	names  []string         // names in tracking order
	later  map[int][]int    // first index → later indices of the same name
}

// NewTracker creates a new tracker sized for count names.
func NewTracker(count int) *Tracker {
	return &Tracker{
		byHash: make(map[uint64][]int, count),
		names:  make([]string, 0, count),
		later:  make(map[int][]int),
	}
}

// Track records the next name in directory order.
//
// Returns:
//   - int: Index of the first occurrence of name (the current index if new)
//   - bool: True if name was already tracked
func (t *Tracker) Track(name string) (int, bool) {
	index := len(t.names)
	t.names = append(t.names, name)

	h := hash.ID(name)
	for _, first := range t.byHash[h] {
		if t.names[first] == name {
			t.later[first] = append(t.later[first], index)
			return first, true
		}
	}

	t.byHash[h] = append(t.byHash[h], index)

	return index, false
}

// First returns the index of the first occurrence of name.
func (t *Tracker) First(name string) (int, bool) {
	for _, first := range t.byHash[hash.ID(name)] {
		if t.names[first] == name {
			return first, true
		}
	}

	return -1, false
}

// HasDuplicates reports whether any name was tracked more than once.
func (t *Tracker) HasDuplicates() bool {
	return len(t.later) > 0
}

// Duplicates returns every repeated name, ordered by first occurrence.
func (t *Tracker) Duplicates() []Duplicate {
	if len(t.later) == 0 {
		return nil
	}

	firsts := make([]int, 0, len(t.later))
	for first := range t.later {
		firsts = append(firsts, first)
	}
	slices.Sort(firsts)

	out := make([]Duplicate, 0, len(firsts))
	for _, first := range firsts {
		indices := make([]int, 0, 1+len(t.later[first]))
		indices = append(indices, first)
		indices = append(indices, t.later[first]...)
		out = append(out, Duplicate{Name: t.names[first], Indices: indices})
	}

	return out
}

// Count returns the number of tracked names, duplicates included.
func (t *Tracker) Count() int {
	return len(t.names)
}

// Reset clears all tracked names.
func (t *Tracker) Reset() {
	clear(t.byHash)
	clear(t.later)
	t.names = t.names[:0]
}
