package jsonio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"concurrent-search-index/internal/index"
	"concurrent-search-index/internal/search"
)

func TestWriteIndexEmpty(t *testing.T) {
	var buf strings.Builder
	require := assert.New(t)
	require.NoError(WriteIndex(&buf, nil))
	require.Equal("{\n}", buf.String())
}

func TestWriteIndexNestedIndentation(t *testing.T) {
	words := []index.WordEntry{
		{
			Word: "fox",
			Locations: []index.LocationEntry{
				{Location: "a.txt", Positions: []int{4}},
				{Location: "b.txt", Positions: []int{2}},
			},
		},
	}

	var buf strings.Builder
	assert.NoError(t, WriteIndex(&buf, words))

	want := `{
  "fox": {
    "a.txt": [
      4
    ],
    "b.txt": [
      2
    ]
  }
}`
	assert.Equal(t, want, buf.String())
}

func TestWriteCounts(t *testing.T) {
	counts := []index.CountEntry{
		{Location: "a.txt", Count: 4},
		{Location: "b.txt", Count: 2},
	}

	var buf strings.Builder
	assert.NoError(t, WriteCounts(&buf, counts))

	want := `{
  "a.txt": 4,
  "b.txt": 2
}`
	assert.Equal(t, want, buf.String())
}

func TestWriteCountsEmpty(t *testing.T) {
	var buf strings.Builder
	assert.NoError(t, WriteCounts(&buf, nil))
	assert.Equal(t, "{\n}", buf.String())
}

// Score is formatted to exactly 8 digits after the decimal point.
func TestWriteQueryResultsScoreFormatting(t *testing.T) {
	queries := []search.QueryResult{
		{
			Query: "fox",
			Results: []index.SearchResult{
				{Location: "b.txt", MatchCount: 1, Score: 0.5},
			},
		},
	}

	var buf strings.Builder
	assert.NoError(t, WriteQueryResults(&buf, queries))

	want := `{
  "fox": [
    {
      "count": 1,
      "score": 0.50000000,
      "where": "b.txt"
    }
  ]
}`
	assert.Equal(t, want, buf.String())
}

func TestWriteQueryResultsMultipleQueriesAndResults(t *testing.T) {
	queries := []search.QueryResult{
		{
			Query: "brown fox",
			Results: []index.SearchResult{
				{Location: "a.txt", MatchCount: 2, Score: 0.5},
			},
		},
		{
			Query: "quick",
			Results: []index.SearchResult{
				{Location: "b.txt", MatchCount: 1, Score: 0.5},
				{Location: "a.txt", MatchCount: 1, Score: 0.25},
			},
		},
	}

	var buf strings.Builder
	assert.NoError(t, WriteQueryResults(&buf, queries))

	want := `{
  "brown fox": [
    {
      "count": 2,
      "score": 0.50000000,
      "where": "a.txt"
    }
  ],
  "quick": [
    {
      "count": 1,
      "score": 0.50000000,
      "where": "b.txt"
    },
    {
      "count": 1,
      "score": 0.25000000,
      "where": "a.txt"
    }
  ]
}`
	assert.Equal(t, want, buf.String())
}

func TestWriteQueryResultsEmptyResultsArray(t *testing.T) {
	queries := []search.QueryResult{{Query: "nomatch", Results: nil}}

	var buf strings.Builder
	assert.NoError(t, WriteQueryResults(&buf, queries))

	want := `{
  "nomatch": [
  ]
}`
	assert.Equal(t, want, buf.String())
}
