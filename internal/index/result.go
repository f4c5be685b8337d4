package index

import (
	"sort"
	"strings"
)

// SearchResult is the value object returned by a search: a location, how
// many query stems matched there, and the resulting relevance score.
type SearchResult struct {
	Location   string
	MatchCount int
	Score      float64
}

// addMatch folds n additional matches into the result and refreshes the
// score against the given word count, mirroring InvertedIndex.SearchResult
// in the original implementation this system is modeled on.
func (r *SearchResult) addMatch(n, wordCount int) {
	r.MatchCount += n
	if wordCount > 0 {
		r.Score = float64(r.MatchCount) / float64(wordCount)
	}
}

// sortResults orders results by score descending, then match count
// descending, then location ascending case-insensitively. The ordering is
// total, so results from repeated searches over the same data are always
// identical.
func sortResults(results []*SearchResult) {
	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.MatchCount != b.MatchCount {
			return a.MatchCount > b.MatchCount
		}
		return strings.ToLower(a.Location) < strings.ToLower(b.Location)
	})
}
