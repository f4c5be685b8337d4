package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDefaults(t *testing.T) {
	c := Parse(nil)

	assert.False(t, c.HasText)
	assert.False(t, c.HasHTML)
	assert.Equal(t, 1, c.CrawlMax)
	assert.Equal(t, 5, c.Threads)
	assert.False(t, c.Threaded)
	assert.False(t, c.Partial)
	assert.Equal(t, "counts.json", c.CountsPath)
	assert.Equal(t, "index.json", c.IndexPath)
	assert.Equal(t, "results.json", c.ResultsPath)
}

func TestParseTextAndCrawlFlags(t *testing.T) {
	c := Parse([]string{"-text", "input", "-html", "http://example.com", "-crawl", "5"})

	assert.True(t, c.HasText)
	assert.Equal(t, "input", c.TextPath)
	assert.True(t, c.HasHTML)
	assert.Equal(t, "http://example.com", c.SeedURL)
	assert.Equal(t, 5, c.CrawlMax)
	assert.True(t, c.Threaded)
}

func TestInvalidThreadsFallsBackToFive(t *testing.T) {
	c := Parse([]string{"-threads", "0"})
	assert.Equal(t, 5, c.Threads)

	c = Parse([]string{"-threads", "notanumber"})
	assert.Equal(t, 5, c.Threads)

	c = Parse([]string{"-threads", "-3"})
	assert.Equal(t, 5, c.Threads)
}

func TestExplicitThreadsEnablesThreadedMode(t *testing.T) {
	c := Parse([]string{"-threads", "8"})
	assert.True(t, c.Threaded)
	assert.Equal(t, 8, c.Threads)
}

func TestBareFlagsHaveEmptyValues(t *testing.T) {
	c := Parse([]string{"-partial", "-query", "queries.txt"})
	assert.True(t, c.Partial)
	assert.True(t, c.HasQuery)
	assert.Equal(t, "queries.txt", c.QueryPath)
}

func TestCountsFlagWithoutValueUsesDefaultPath(t *testing.T) {
	c := Parse([]string{"-counts", "-index", "out.json"})
	assert.True(t, c.HasCounts)
	assert.Equal(t, "counts.json", c.CountsPath)
	assert.True(t, c.HasIndex)
	assert.Equal(t, "out.json", c.IndexPath)
}

func TestUnknownFlagsAreIgnored(t *testing.T) {
	c := Parse([]string{"-bogus", "value", "-text", "docs"})
	assert.True(t, c.HasText)
	assert.Equal(t, "docs", c.TextPath)
}
