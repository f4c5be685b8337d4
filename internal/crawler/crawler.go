// Package crawler implements the bounded breadth-first web crawl that
// feeds the ingest driver: a shared, mutex-protected visited set bounds
// the number of distinct URLs ever enqueued, while workers fetch pages,
// extract links, and index content independently.
package crawler

import (
	"context"
	"net/http"
	"net/url"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"concurrent-search-index/internal/htmlutil"
	"concurrent-search-index/internal/index"
	"concurrent-search-index/internal/ingest"
	"concurrent-search-index/internal/workqueue"
)

// Crawler owns the shared visited set and the HTTP client used to fetch
// pages during a bounded BFS crawl.
type Crawler struct {
	index   *index.Index
	queue   *workqueue.Queue
	client  *http.Client
	limiter *rate.Limiter

	mu      sync.Mutex
	visited map[string]bool
	limit   int
}

// New builds a Crawler that will merge indexed pages into shared and run
// fetch/extract/index tasks on queue. limiter paces outbound fetches
// across all crawl workers (a resource-control addition; it does not
// change which URLs are in bounds, only how fast they are requested).
func New(shared *index.Index, queue *workqueue.Queue, limiter *rate.Limiter) *Crawler {
	return &Crawler{
		index:   shared,
		queue:   queue,
		client:  htmlutil.NewClient(3),
		limiter: limiter,
		visited: make(map[string]bool),
	}
}

// Crawl normalizes seed, seeds the visited set, enqueues the first fetch
// task, and blocks until the crawl has drained: the limit bounds the
// number of distinct URLs ever enqueued, not crawl depth, and workers
// naturally stop proposing new work once that bound is reached.
func (c *Crawler) Crawl(seed string, limit int) error {
	if limit <= 0 {
		return nil
	}

	u, err := htmlutil.ParseSeed(seed)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.limit = limit
	c.visited[u.String()] = true
	c.mu.Unlock()

	c.queue.Execute(func() { c.visit(u) })
	c.queue.Finish()
	return nil
}

// Visited returns the number of distinct URLs the crawl ever enqueued.
func (c *Crawler) Visited() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.visited)
}

func (c *Crawler) visit(pageURL *url.URL) {
	if c.limiter != nil {
		if err := c.limiter.Wait(context.Background()); err != nil {
			logrus.WithError(err).Debug("rate limiter wait failed")
		}
	}

	content, err := htmlutil.Fetch(c.client, pageURL.String())
	if err != nil {
		// Fetch failures index nothing and extract nothing; the task
		// still finishes cleanly so the crawl can make progress
		// elsewhere.
		logrus.WithError(err).WithField("url", pageURL.String()).Warn("fetch failed")
		return
	}

	preStrip := htmlutil.StripBlockElements(content)
	links := htmlutil.ExtractLinks(pageURL, preStrip)
	c.enqueueNewLinks(links)

	postStrip := htmlutil.StripHTML(preStrip)
	local := ingest.Content(postStrip, pageURL.String())
	c.index.Merge(local)
}

// enqueueNewLinks adds each not-yet-seen link to the visited set and
// schedules a fetch for it, so long as the visited-set bound has not been
// reached. The visited mutex is held only for this bookkeeping, never
// across fetch I/O or the index write lock — acquire/release order with
// the index lock therefore never overlaps.
func (c *Crawler) enqueueNewLinks(links []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, raw := range links {
		u, err := url.Parse(raw)
		if err != nil {
			continue
		}
		key := u.String()
		if len(c.visited) >= c.limit || c.visited[key] {
			continue
		}
		c.visited[key] = true
		c.queue.Execute(func() { c.visit(u) })
	}
}
