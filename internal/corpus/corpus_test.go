package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeCorpus lays out a corpus directory for tests.
func writeCorpus(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return dir
}

func TestLoad_SentText(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"a.txt": "first sentence\nsecond sentence\n\nthird sentence\n",
		"b.txt": "fourth sentence\n",
	})

	docs, err := Load(dir, SentText)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"first sentence",
		"second sentence",
		"third sentence",
		"fourth sentence",
	}, docs)
}

func TestLoad_DocuText(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"a.txt": "doc one line one\ndoc one line two\n\ndoc two\n",
	})

	docs, err := Load(dir, DocuText)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"doc one line one\ndoc one line two",
		"doc two",
	}, docs)
}

func TestLoad_DocuJSON(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"a.jsonl": `{"text": "hello world"}` + "\n" + `{"text": "second document"}` + "\n",
	})

	docs, err := Load(dir, DocuJSON)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello world", "second document"}, docs)
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"a.jsonl": "{not json}\n",
	})

	_, err := Load(dir, SentJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON record")
}

func TestLoad_IgnoresOtherExtensions(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"a.txt":     "a sentence\n",
		"README.md": "not part of the corpus\n",
		"b.jsonl":   `{"text": "json doc"}` + "\n",
	})

	docs, err := Load(dir, SentText)
	require.NoError(t, err)
	assert.Equal(t, []string{"a sentence"}, docs)
}

func TestLoad_DeterministicFileOrder(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"b.txt":        "from b\n",
		"a.txt":        "from a\n",
		"nested/c.txt": "from c\n",
	})

	docs, err := Load(dir, SentText)
	require.NoError(t, err)
	assert.Equal(t, []string{"from a", "from b", "from c"}, docs)
}

func TestLoad_EmptyCorpus(t *testing.T) {
	_, err := Load(t.TempDir(), SentText)
	require.ErrorIs(t, err, ErrEmptyCorpus)
}

func TestLoad_UnknownType(t *testing.T) {
	_, err := Load(t.TempDir(), Type("parquet"))
	require.ErrorIs(t, err, ErrUnknownCorpusType)
}

func TestSample(t *testing.T) {
	docs := make([]string, 1000)
	for i := range docs {
		docs[i] = string(rune('a' + i%26))
	}

	sampled, err := Sample(docs, 0.5, 42)
	require.NoError(t, err)
	assert.Len(t, sampled, 500)

	// Deterministic for a fixed seed.
	again, err := Sample(docs, 0.5, 42)
	require.NoError(t, err)
	assert.Equal(t, sampled, again)

	// Ratio >= 1 keeps everything, untouched.
	all, err := Sample(docs, 1.0, 42)
	require.NoError(t, err)
	assert.Equal(t, docs, all)

	_, err = Sample(docs, 0, 42)
	require.ErrorIs(t, err, ErrInvalidSamplingRatio)

	_, err = Sample(docs, -0.5, 42)
	require.ErrorIs(t, err, ErrInvalidSamplingRatio)
}

func TestBatches(t *testing.T) {
	docs := []string{"a", "b", "c", "d", "e"}

	batches := Batches(docs, 2)
	require.Len(t, batches, 3)
	assert.Equal(t, []string{"a", "b"}, batches[0])
	assert.Equal(t, []string{"c", "d"}, batches[1])
	assert.Equal(t, []string{"e"}, batches[2])

	assert.Empty(t, Batches(nil, 2))
}

// wordCounter counts whitespace-separated tokens; it stands in for the
// tiktoken counter so tests stay offline.
type wordCounter struct{}

func (wordCounter) CountTokens(text string) int {
	n := 0
	inWord := false
	for _, r := range text {
		if r == ' ' || r == '\n' || r == '\t' {
			inWord = false
		} else if !inWord {
			inWord = true
			n++
		}
	}
	return n
}

func TestScan(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"a.txt": "one two three\nfour five\n",
		"b.txt": "six\n",
	})

	stats, err := Scan(dir, SentText, wordCounter{})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Files)
	assert.Equal(t, 3, stats.Documents)
	assert.Equal(t, int64(6), stats.Tokens)
	assert.Equal(t, int64(len("one two three")+len("four five")+len("six")), stats.Bytes)
}

func TestScan_NilCounter(t *testing.T) {
	dir := writeCorpus(t, map[string]string{"a.txt": "hello\n"})

	stats, err := Scan(dir, SentText, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Documents)
	assert.Zero(t, stats.Tokens)
}
