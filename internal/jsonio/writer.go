// Package jsonio writes the index, its word counts, and search results as
// hand-rolled "pretty" JSON: two-space indentation, one element per line.
// It is not a general-purpose encoder — each function matches the exact
// shape of one output file, the same way a dedicated writer would rather
// than routing everything through a generic marshaler.
package jsonio

import (
	"io"
	"os"
	"strconv"

	"concurrent-search-index/internal/index"
	"concurrent-search-index/internal/search"
)

// writer accumulates the first error encountered across a sequence of
// writes, so callers can chain many small write calls without checking
// an error after every one.
type writer struct {
	w   io.Writer
	err error
}

func (jw *writer) write(s string) {
	if jw.err != nil {
		return
	}
	_, jw.err = io.WriteString(jw.w, s)
}

func (jw *writer) indent(n int) {
	for i := 0; i < n; i++ {
		jw.write("  ")
	}
}

func (jw *writer) quote(s string) {
	jw.write(`"`)
	jw.write(s)
	jw.write(`"`)
}

// WriteIndex writes words as a pretty JSON object mapping each word to an
// object of location -> ascending positions array.
func WriteIndex(w io.Writer, words []index.WordEntry) error {
	jw := &writer{w: w}
	jw.write("{")
	for i, entry := range words {
		if i > 0 {
			jw.write(",")
		}
		jw.write("\n")
		jw.indent(1)
		jw.quote(entry.Word)
		jw.write(": ")
		jw.writeLocationObject(entry.Locations, 1)
	}
	jw.write("\n}")
	return jw.err
}

// writeLocationObject writes locations as a JSON object whose own closing
// brace sits at depth, with entries (and their nested position arrays) one
// level deeper — depth plays the same role as the "indent" parameter
// threaded through the reference writer this mirrors.
func (jw *writer) writeLocationObject(locations []index.LocationEntry, depth int) {
	jw.write("{")
	for i, loc := range locations {
		if i > 0 {
			jw.write(",")
		}
		jw.write("\n")
		jw.indent(depth + 1)
		jw.quote(loc.Location)
		jw.write(": ")
		jw.writeIntArray(loc.Positions, depth+1)
	}
	jw.write("\n")
	jw.indent(depth)
	jw.write("}")
}

func (jw *writer) writeIntArray(values []int, depth int) {
	jw.write("[")
	for i, v := range values {
		if i > 0 {
			jw.write(",")
		}
		jw.write("\n")
		jw.indent(depth + 1)
		jw.write(strconv.Itoa(v))
	}
	jw.write("\n")
	jw.indent(depth)
	jw.write("]")
}

// WriteCounts writes counts as a pretty JSON object mapping each location
// to its word count.
func WriteCounts(w io.Writer, counts []index.CountEntry) error {
	jw := &writer{w: w}
	jw.write("{")
	for i, c := range counts {
		if i > 0 {
			jw.write(",")
		}
		jw.write("\n")
		jw.indent(1)
		jw.quote(c.Location)
		jw.write(": ")
		jw.write(strconv.Itoa(c.Count))
	}
	jw.write("\n")
	jw.write("}")
	return jw.err
}

// WriteQueryResults writes queries as a pretty JSON object mapping each
// canonical query to its ordered array of search result objects.
func WriteQueryResults(w io.Writer, queries []search.QueryResult) error {
	jw := &writer{w: w}
	jw.write("{")
	for i, q := range queries {
		if i > 0 {
			jw.write(",")
		}
		jw.write("\n")
		jw.indent(1)
		jw.quote(q.Query)
		jw.write(": ")
		jw.writeResultArray(q.Results)
	}
	jw.write("\n")
	jw.write("}")
	return jw.err
}

func (jw *writer) writeResultArray(results []index.SearchResult) {
	jw.write("[")
	for i, r := range results {
		if i > 0 {
			jw.write(",")
		}
		jw.write("\n")
		jw.indent(2)
		jw.writeResult(r)
	}
	jw.write("\n")
	jw.indent(1)
	jw.write("]")
}

// writeResult writes one search result with its count, score, and where
// fields, in that order. Score is formatted to exactly 8 digits after the
// decimal point with Go's round-half-to-even strconv.FormatFloat — a
// deliberate, documented choice distinct from (but no less correct than)
// round-half-up.
func (jw *writer) writeResult(r index.SearchResult) {
	jw.write("{\n")
	jw.indent(3)
	jw.quote("count")
	jw.write(": ")
	jw.write(strconv.Itoa(r.MatchCount))
	jw.write(",\n")
	jw.indent(3)
	jw.quote("score")
	jw.write(": ")
	jw.write(strconv.FormatFloat(r.Score, 'f', 8, 64))
	jw.write(",\n")
	jw.indent(3)
	jw.quote("where")
	jw.write(": ")
	jw.quote(r.Location)
	jw.write("\n")
	jw.indent(2)
	jw.write("}")
}

// WriteIndexFile, WriteCountsFile, and WriteQueryResultsFile each create
// (or truncate) path and write the corresponding pretty JSON document to
// it, closing the file whether or not the write succeeded.
func WriteIndexFile(path string, words []index.WordEntry) error {
	return withFile(path, func(f *os.File) error { return WriteIndex(f, words) })
}

func WriteCountsFile(path string, counts []index.CountEntry) error {
	return withFile(path, func(f *os.File) error { return WriteCounts(f, counts) })
}

func WriteQueryResultsFile(path string, queries []search.QueryResult) error {
	return withFile(path, func(f *os.File) error { return WriteQueryResults(f, queries) })
}

func withFile(path string, fn func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return fn(f)
}
