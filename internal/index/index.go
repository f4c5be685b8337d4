// Package index implements the inverted index: the Word -> (Location ->
// ordered set of Position) data model, its insert/merge semantics, and the
// exact/partial search algorithms. A single type serves both the
// single-writer and the multi-reader/single-writer variants; concurrency
// safety is a constructor parameter, not a separate type in an inheritance
// hierarchy, per the re-architecture guidance this system follows.
package index

import (
	"strings"
	"sync"

	"concurrent-search-index/internal/orderedmap"
)

type locations = orderedmap.Map[*posSet]

// Index is the authoritative inverted-index data structure. Create one
// with New for single-threaded use, or NewConcurrent for a multi-reader /
// single-writer index safe to share across ingestion and query workers.
type Index struct {
	mu     *sync.RWMutex
	words  *orderedmap.Map[*locations]
	counts *orderedmap.Map[int]
}

// New returns an empty, unsynchronized index. Callers must not share it
// across goroutines without external synchronization.
func New() *Index {
	return &Index{
		words:  orderedmap.New[*locations](),
		counts: orderedmap.New[int](),
	}
}

// NewConcurrent returns an empty index guarded by an internal
// reader-writer lock: any number of readers may run concurrently, but a
// writer excludes both other writers and all readers.
func NewConcurrent() *Index {
	ix := New()
	ix.mu = &sync.RWMutex{}
	return ix
}

func (ix *Index) rlock() {
	if ix.mu != nil {
		ix.mu.RLock()
	}
}

func (ix *Index) runlock() {
	if ix.mu != nil {
		ix.mu.RUnlock()
	}
}

func (ix *Index) wlock() {
	if ix.mu != nil {
		ix.mu.Lock()
	}
}

func (ix *Index) wunlock() {
	if ix.mu != nil {
		ix.mu.Unlock()
	}
}

// Insert records one occurrence of word at location, position, and
// advances the location's word count to position if it is larger than any
// position previously recorded there. Insert cannot fail.
func (ix *Index) Insert(word, location string, position int) {
	ix.wlock()
	defer ix.wunlock()

	locs := ix.words.GetOrInsert(word, func() *locations { return orderedmap.New[*posSet]() })
	positions := locs.GetOrInsert(location, newPosSet)
	positions.add(position)

	if cur, _ := ix.counts.Get(location); position > cur {
		ix.counts.Set(location, position)
	}
}

// Merge folds every (word, location, positions) triple of other into ix,
// and raises ix's word count for each location to the max of the two. The
// caller must guarantee other did not ingest any location already present
// in ix — counts merge correctly regardless, but would otherwise stop
// meaning "total tokens at this location".
func (ix *Index) Merge(other *Index) {
	ix.wlock()
	defer ix.wunlock()

	other.counts.Range(func(loc string, count int) bool {
		if cur, _ := ix.counts.Get(loc); count > cur {
			ix.counts.Set(loc, count)
		}
		return true
	})

	other.words.Range(func(word string, otherLocs *locations) bool {
		thisLocs, exists := ix.words.Get(word)
		if !exists {
			ix.words.Set(word, otherLocs)
			return true
		}
		otherLocs.Range(func(loc string, otherPositions *posSet) bool {
			thisPositions, exists := thisLocs.Get(loc)
			if !exists {
				thisLocs.Set(loc, otherPositions)
				return true
			}
			for _, p := range otherPositions.slice() {
				thisPositions.add(p)
			}
			return true
		})
		return true
	})
}

// Search dispatches to ExactSearch or PartialSearch.
func (ix *Index) Search(queries []string, partial bool) []SearchResult {
	if partial {
		return ix.PartialSearch(queries)
	}
	return ix.ExactSearch(queries)
}

// ExactSearch matches only query words that appear verbatim as index keys.
// Each location contributes at most one result across the whole query.
func (ix *Index) ExactSearch(queries []string) []SearchResult {
	ix.rlock()
	defer ix.runlock()

	matches := make(map[string]*SearchResult)
	var results []*SearchResult

	for _, word := range queries {
		if locs, ok := ix.words.Get(word); ok {
			ix.accumulate(matches, &results, locs)
		}
	}

	sortResults(results)
	return toValues(results)
}

// PartialSearch matches any index key that begins with a query word. It
// scans the ordered word map starting at the first key >= the query word
// and stops at the first key that no longer has it as a prefix; the exact
// query word itself is included as a (trivial) prefix match.
func (ix *Index) PartialSearch(queries []string) []SearchResult {
	ix.rlock()
	defer ix.runlock()

	matches := make(map[string]*SearchResult)
	var results []*SearchResult

	for _, queryWord := range queries {
		ix.words.RangeTail(queryWord,
			func(word string) bool { return strings.HasPrefix(word, queryWord) },
			func(_ string, locs *locations) { ix.accumulate(matches, &results, locs) },
		)
	}

	sortResults(results)
	return toValues(results)
}

// accumulate folds every (location, positions) pair of locs into matches,
// creating a SearchResult on first sight of a location and growing it
// (never duplicating it) on every later word that also matches there.
// Must be called with at least the read lock held.
func (ix *Index) accumulate(matches map[string]*SearchResult, results *[]*SearchResult, locs *locations) {
	locs.Range(func(loc string, positions *posSet) bool {
		r, ok := matches[loc]
		if !ok {
			r = &SearchResult{Location: loc}
			matches[loc] = r
			*results = append(*results, r)
		}
		count, _ := ix.counts.Get(loc)
		r.addMatch(positions.len(), count)
		return true
	})
}

func toValues(results []*SearchResult) []SearchResult {
	out := make([]SearchResult, len(results))
	for i, r := range results {
		out[i] = *r
	}
	return out
}

// ContainsWord reports whether word has ever been inserted.
func (ix *Index) ContainsWord(word string) bool {
	ix.rlock()
	defer ix.runlock()
	_, ok := ix.words.Get(word)
	return ok
}

// ContainsLocation reports whether word was seen at location.
func (ix *Index) ContainsLocation(word, location string) bool {
	ix.rlock()
	defer ix.runlock()
	locs, ok := ix.words.Get(word)
	if !ok {
		return false
	}
	_, ok = locs.Get(location)
	return ok
}

// ContainsPosition reports whether word was seen at location, position.
func (ix *Index) ContainsPosition(word, location string, position int) bool {
	ix.rlock()
	defer ix.runlock()
	locs, ok := ix.words.Get(word)
	if !ok {
		return false
	}
	positions, ok := locs.Get(location)
	if !ok {
		return false
	}
	return positions.contains(position)
}

// NumUniqueWords returns the number of distinct words in the index.
func (ix *Index) NumUniqueWords() int {
	ix.rlock()
	defer ix.runlock()
	return ix.words.Len()
}

// ContainsCount reports whether a word count is known for location.
func (ix *Index) ContainsCount(location string) bool {
	ix.rlock()
	defer ix.runlock()
	_, ok := ix.counts.Get(location)
	return ok
}

// NumCounts returns the number of locations with a known word count.
func (ix *Index) NumCounts() int {
	ix.rlock()
	defer ix.runlock()
	return ix.counts.Len()
}

// NumLocations returns how many locations contain word, or 0 if none do.
func (ix *Index) NumLocations(word string) int {
	ix.rlock()
	defer ix.runlock()
	locs, ok := ix.words.Get(word)
	if !ok {
		return 0
	}
	return locs.Len()
}

// NumPositions returns how many positions word occurs at within location.
func (ix *Index) NumPositions(word, location string) int {
	ix.rlock()
	defer ix.runlock()
	locs, ok := ix.words.Get(word)
	if !ok {
		return 0
	}
	positions, ok := locs.Get(location)
	if !ok {
		return 0
	}
	return positions.len()
}

// GetWordCount returns the word count recorded for location, or 0 if the
// location is unknown to the index.
func (ix *Index) GetWordCount(location string) int {
	ix.rlock()
	defer ix.runlock()
	count, _ := ix.counts.Get(location)
	return count
}

// GetPositions returns a copy of the ascending positions where word occurs
// at location, or an empty slice if either is absent.
func (ix *Index) GetPositions(word, location string) []int {
	ix.rlock()
	defer ix.runlock()
	locs, ok := ix.words.Get(word)
	if !ok {
		return []int{}
	}
	positions, ok := locs.Get(location)
	if !ok {
		return []int{}
	}
	return positions.slice()
}

// GetLocations returns a copy of the locations where word occurs, in
// ascending order.
func (ix *Index) GetLocations(word string) []string {
	ix.rlock()
	defer ix.runlock()
	locs, ok := ix.words.Get(word)
	if !ok {
		return []string{}
	}
	return locs.Keys()
}

// GetWords returns a copy of every word in the index, in ascending order.
func (ix *Index) GetWords() []string {
	ix.rlock()
	defer ix.runlock()
	return ix.words.Keys()
}

// GetWordCounts returns a copy of the location -> word count map, keyed by
// every location the index has ever seen.
func (ix *Index) GetWordCounts() map[string]int {
	ix.rlock()
	defer ix.runlock()
	out := make(map[string]int, ix.counts.Len())
	ix.counts.Range(func(loc string, count int) bool {
		out[loc] = count
		return true
	})
	return out
}
