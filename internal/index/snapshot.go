package index

// WordEntry is one word's contribution to an index snapshot: every
// location it occurs at, and the ascending positions at each.
type WordEntry struct {
	Word      string
	Locations []LocationEntry
}

// LocationEntry is one location's ascending positions for a given word.
type LocationEntry struct {
	Location  string
	Positions []int
}

// CountEntry pairs a location with its word count.
type CountEntry struct {
	Location string
	Count    int
}

// Snapshot copies the entire index, in Word-then-Location ascending
// order, while holding the read lock for the duration of the copy. The
// jsonio writer consumes this instead of touching the index's internals
// directly, so the index package stays the sole owner of its locking and
// ordering invariants.
func (ix *Index) Snapshot() []WordEntry {
	ix.rlock()
	defer ix.runlock()

	out := make([]WordEntry, 0, ix.words.Len())
	ix.words.Range(func(word string, locs *locations) bool {
		entry := WordEntry{Word: word, Locations: make([]LocationEntry, 0, locs.Len())}
		locs.Range(func(loc string, positions *posSet) bool {
			entry.Locations = append(entry.Locations, LocationEntry{
				Location:  loc,
				Positions: positions.slice(),
			})
			return true
		})
		out = append(out, entry)
		return true
	})
	return out
}

// SnapshotCounts copies the location -> word count map in ascending
// location order, while holding the read lock for the duration.
func (ix *Index) SnapshotCounts() []CountEntry {
	ix.rlock()
	defer ix.runlock()

	out := make([]CountEntry, 0, ix.counts.Len())
	ix.counts.Range(func(loc string, count int) bool {
		out = append(out, CountEntry{Location: loc, Count: count})
		return true
	})
	return out
}
