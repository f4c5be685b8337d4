package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"concurrent-search-index/internal/index"
	"concurrent-search-index/internal/workqueue"
)

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileAssignsConsecutivePositions(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "c.txt", "one two three")

	local, err := File(path)
	require.NoError(t, err)

	assert.Equal(t, 3, local.GetWordCount(path))
	assert.Equal(t, []int{1}, local.GetPositions("one", path))
	assert.Equal(t, []int{2}, local.GetPositions("two", path))
	assert.Equal(t, []int{3}, local.GetPositions("three", path))
}

// End-to-end scenario 1/2 corpus: a.txt = "The quick brown fox", b.txt =
// "quick foxes".
func TestExactAndPartialSearchAcrossTwoFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeTemp(t, dir, "a.txt", "The quick brown fox")
	b := writeTemp(t, dir, "b.txt", "quick foxes")

	shared := index.New()
	for _, p := range []string{a, b} {
		local, err := File(p)
		require.NoError(t, err)
		shared.Merge(local)
	}

	exact := shared.ExactSearch([]string{"quick"})
	require.Len(t, exact, 2)
	assert.Equal(t, b, exact[0].Location)
	assert.InDelta(t, 0.5, exact[0].Score, 1e-9)
	assert.Equal(t, a, exact[1].Location)
	assert.InDelta(t, 0.25, exact[1].Score, 1e-9)

	partial := shared.PartialSearch([]string{"fox"})
	require.Len(t, partial, 2)
	assert.Equal(t, b, partial[0].Location)
	assert.Equal(t, a, partial[1].Location)
}

func TestContentSkipsNonLetterRunsWithoutConsumingPosition(t *testing.T) {
	local := Content("one 42 two", "page")
	assert.Equal(t, 2, local.GetWordCount("page"))
	assert.Equal(t, []int{1}, local.GetPositions("one", "page"))
	assert.Equal(t, []int{2}, local.GetPositions("two", "page"))
}

func TestPathIndexesEveryFileUnderADirectory(t *testing.T) {
	dir := t.TempDir()
	writeTemp(t, dir, "a.txt", "alpha beta")
	writeTemp(t, dir, "b.text", "gamma delta")
	writeTemp(t, dir, "skip.md", "not indexed")

	shared := index.New()
	require.NoError(t, Path(shared, nil, dir))

	assert.True(t, shared.ContainsWord("alpha"))
	assert.True(t, shared.ContainsWord("gamma"))
	assert.False(t, shared.ContainsWord("not"))
}

func TestPathWithWorkQueueMatchesSyncIngestion(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 20; i++ {
		writeTemp(t, dir, filepathName(i), "one two three four five")
	}

	synced := index.New()
	require.NoError(t, Path(synced, nil, dir))

	concurrent := index.NewConcurrent()
	q := workqueue.New(8)
	require.NoError(t, Path(concurrent, q, dir))
	q.Shutdown()
	q.Join()

	assert.ElementsMatch(t, synced.GetWords(), concurrent.GetWords())
	assert.Equal(t, synced.GetWordCounts(), concurrent.GetWordCounts())
}

func filepathName(i int) string {
	return "doc" + string(rune('a'+i)) + ".txt"
}
