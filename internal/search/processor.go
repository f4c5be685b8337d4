// Package search turns query lines into canonical, deduplicated queries
// against an inverted index, and collects their results keyed by
// canonical query so output is deterministic regardless of the order in
// which lines were processed.
package search

import (
	"bufio"
	"os"
	"sync"

	"concurrent-search-index/internal/index"
	"concurrent-search-index/internal/orderedmap"
	"concurrent-search-index/internal/tokenize"
	"concurrent-search-index/internal/workqueue"
)

// Processor runs exact or partial searches against an index and
// remembers one result list per canonical query. Passing a non-nil
// workqueue.Queue to New makes ProcessQueryFile fan a query file's lines
// out across the pool; passing nil keeps everything on the calling
// goroutine.
type Processor struct {
	index   *index.Index
	partial bool
	queue   *workqueue.Queue

	mu      sync.Mutex
	results *orderedmap.Map[[]index.SearchResult]
}

// New builds a Processor. idx may be a concurrent or unsynchronized
// index; queue may be nil for single-threaded query processing.
func New(idx *index.Index, partial bool, queue *workqueue.Queue) *Processor {
	return &Processor{
		index:   idx,
		partial: partial,
		queue:   queue,
		results: orderedmap.New[[]index.SearchResult](),
	}
}

// ProcessQueryFile reads path line by line, running each line through
// ParseQueryLine. If this Processor was built with a work queue, every
// line is an independent task and ProcessQueryFile blocks on
// queue.Finish before returning — even if the file could not be opened
// or reading failed partway through, mirroring a try/finally.
func (p *Processor) ProcessQueryFile(path string) error {
	if p.queue != nil {
		defer p.queue.Finish()
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if p.queue != nil {
			p.queue.Execute(func() { p.ParseQueryLine(line) })
		} else {
			p.ParseQueryLine(line)
		}
	}
	return scanner.Err()
}

// ParseQueryLine stems line into its canonical query key; if that key has
// not been searched yet, it runs the search and stores the result list.
// The presence check and the store happen under the same critical
// section, so at most one search ever runs per canonical key even when
// ParseQueryLine is called concurrently for equal (or reordered)
// duplicate query lines — closing the race the original check-then-act
// implementation this system is modeled on left open.
func (p *Processor) ParseQueryLine(line string) {
	stems := tokenize.UniqueStems(line)
	if len(stems) == 0 {
		return
	}
	key := tokenize.CanonicalKey(stems)

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.results.Get(key); ok {
		return
	}
	p.results.Set(key, p.index.Search(stems, p.partial))
}

// GetStoredResult returns the result list stored for the canonical query
// that line's stems form, if any has been computed yet.
func (p *Processor) GetStoredResult(line string) ([]index.SearchResult, bool) {
	stems := tokenize.UniqueStems(line)
	key := tokenize.CanonicalKey(stems)

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.results.Get(key)
}

// QueryLines returns every canonical query that has a result list stored
// (including queries whose list is empty), in ascending lexicographic
// order.
func (p *Processor) QueryLines() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.results.Keys()
}

// Snapshot copies every (query, results) pair in ascending query order,
// the shape the jsonio writer consumes for results.json.
func (p *Processor) Snapshot() []QueryResult {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]QueryResult, 0, p.results.Len())
	p.results.Range(func(key string, results []index.SearchResult) bool {
		out = append(out, QueryResult{Query: key, Results: results})
		return true
	})
	return out
}

// QueryResult pairs a canonical query with its ordered result list.
type QueryResult struct {
	Query   string
	Results []index.SearchResult
}
