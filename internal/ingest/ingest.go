// Package ingest builds a private local sub-index for one file or one
// fetched page, which the caller then merges into the shared index under
// the writer lock exactly once. Keeping this local-build-then-merge
// boundary is what lets the shared index avoid fine-grained per-insert
// locking.
package ingest

import (
	"bufio"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"concurrent-search-index/internal/fswalk"
	"concurrent-search-index/internal/index"
	"concurrent-search-index/internal/tokenize"
	"concurrent-search-index/internal/workqueue"
)

// File reads path line by line and returns a freshly built local index
// keyed at location path. Each parsed token advances the position
// counter only if it stems to something non-empty; a token that stems
// to the empty string leaves no entry and does not consume a position
// (this system resolves the original's file/URL position-counting
// asymmetry uniformly; see DESIGN.md).
func File(path string) (*index.Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	local := index.New()
	position := 0

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		for _, tok := range tokenize.Parse(scanner.Text()) {
			stem := tokenize.Stem(tok)
			if stem == "" {
				continue
			}
			position++
			local.Insert(stem, path, position)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return local, nil
}

// Path lists the .txt/.text files under root (or root itself, if it is a
// single file) and indexes each into shared. When queue is nil, files are
// indexed one at a time on the calling goroutine, a file that fails is
// skipped, and Path returns an aggregate of every failure once all files
// have been tried; when queue is
// non-nil, each file becomes an independent task that builds its own
// local index and merges it into shared, and Path blocks on queue.Finish
// before returning — per-file failures are logged rather than returned,
// matching the work queue's contract that a task failure never escapes
// to the submitter.
func Path(shared *index.Index, queue *workqueue.Queue, root string) error {
	files, err := fswalk.ListText(root)
	if err != nil {
		return err
	}

	if queue == nil {
		var errs *multierror.Error
		for _, f := range files {
			local, err := File(f)
			if err != nil {
				errs = multierror.Append(errs, err)
				continue
			}
			shared.Merge(local)
		}
		return errs.ErrorOrNil()
	}

	for _, f := range files {
		f := f
		queue.Execute(func() {
			local, err := File(f)
			if err != nil {
				logrus.WithError(err).WithField("file", f).Error("failed to index file")
				return
			}
			shared.Merge(local)
		})
	}
	queue.Finish()
	return nil
}

// Content tokenizes content (the already tag-stripped text of a fetched
// page) and returns a freshly built local index keyed at location.
func Content(content, location string) *index.Index {
	local := index.New()
	position := 0

	for _, tok := range tokenize.Parse(content) {
		stem := tokenize.Stem(tok)
		if stem == "" {
			continue
		}
		position++
		local.Insert(stem, location, position)
	}
	return local
}
