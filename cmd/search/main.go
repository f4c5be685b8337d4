// Command search builds (and optionally queries) a concurrent inverted
// index over local text files, a crawled website, or both, then writes
// whichever of the three output JSON documents were requested.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"concurrent-search-index/internal/config"
	"concurrent-search-index/internal/crawler"
	"concurrent-search-index/internal/index"
	"concurrent-search-index/internal/ingest"
	"concurrent-search-index/internal/jsonio"
	"concurrent-search-index/internal/search"
	"concurrent-search-index/internal/workqueue"
)

// fetchRate bounds how fast the crawler issues outbound requests,
// independent of the -crawl URL-count limit.
const fetchRate = 10

func main() {
	start := time.Now()
	cfg := config.Parse(os.Args[1:])

	var idx *index.Index
	var queue *workqueue.Queue
	if cfg.Threaded {
		idx = index.NewConcurrent()
		queue = workqueue.New(cfg.Threads)
	} else {
		idx = index.New()
	}
	processor := search.New(idx, cfg.Partial, queue)

	if cfg.HasText {
		if cfg.TextPath == "" {
			fmt.Println("Error: cannot find path to the text files")
		} else if err := ingest.Path(idx, queue, cfg.TextPath); err != nil {
			fmt.Println("Error while processing input file:", err)
		}
	}

	if cfg.HasHTML {
		if cfg.SeedURL == "" {
			fmt.Println("Error: cannot find seed url")
		} else {
			limiter := rate.NewLimiter(rate.Limit(fetchRate), 1)
			c := crawler.New(idx, queue, limiter)
			if err := c.Crawl(cfg.SeedURL, cfg.CrawlMax); err != nil {
				fmt.Println("Error: seed url is malformed")
			}
		}
	}

	if cfg.HasQuery {
		if cfg.QueryPath == "" {
			fmt.Println("Query path not provided")
		} else if err := processor.ProcessQueryFile(cfg.QueryPath); err != nil {
			fmt.Println("Error writing to", cfg.QueryPath)
		}
	}

	if queue != nil {
		queue.Shutdown()
		queue.Join()
	}

	if cfg.HasCounts {
		if err := jsonio.WriteCountsFile(cfg.CountsPath, idx.SnapshotCounts()); err != nil {
			logrus.WithError(err).Error("failed to write counts")
			fmt.Println("Error writing to", cfg.CountsPath)
		}
	}

	if cfg.HasIndex {
		if err := jsonio.WriteIndexFile(cfg.IndexPath, idx.Snapshot()); err != nil {
			logrus.WithError(err).Error("failed to write index")
			fmt.Println("Error writing to", cfg.IndexPath)
		}
	}

	if cfg.HasResults {
		if err := jsonio.WriteQueryResultsFile(cfg.ResultsPath, processor.Snapshot()); err != nil {
			logrus.WithError(err).Error("failed to write results")
			fmt.Println("Error writing to", cfg.ResultsPath)
		}
	}

	seconds := time.Since(start).Seconds()
	fmt.Printf("Elapsed: %f seconds\n", seconds)
}
