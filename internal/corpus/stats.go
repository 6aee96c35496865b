package corpus

import (
	"fmt"
	"sync/atomic"

	"github.com/pkoukk/tiktoken-go"

	"github.com/DaehanKim/lassl/internal/parallel"
)

// TokenCounter counts tokens in a piece of text.
//
// The toolkit ships a tiktoken-backed counter (NewTiktokenCounter); tests
// and offline environments can plug in their own.
type TokenCounter interface {
	CountTokens(text string) int
}

// Stats summarizes a corpus directory.
type Stats struct {
	Files     int
	Documents int
	Bytes     int64
	Tokens    int64 // Zero when no TokenCounter was supplied.
}

// tiktokenCounter counts tokens with an OpenAI BPE encoding.
type tiktokenCounter struct {
	encoding *tiktoken.Tiktoken
}

// NewTiktokenCounter returns a TokenCounter backed by a tiktoken encoding
// such as "cl100k_base".
//
// The encoding's BPE ranks are fetched and cached on first use, so the first
// call may touch the network.
func NewTiktokenCounter(encodingName string) (TokenCounter, error) {
	encoding, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return nil, fmt.Errorf("failed to load tiktoken encoding %q: %w", encodingName, err)
	}
	return &tiktokenCounter{encoding: encoding}, nil
}

func (c *tiktokenCounter) CountTokens(text string) int {
	return len(c.encoding.Encode(text, nil, nil))
}

// Scan computes statistics for a corpus directory.
//
// counter may be nil, in which case the token count stays zero. Files are
// scanned in parallel.
func Scan(dir string, corpusType Type, counter TokenCounter) (Stats, error) {
	files, err := Files(dir, corpusType)
	if err != nil {
		return Stats{}, err
	}
	if len(files) == 0 {
		return Stats{}, fmt.Errorf("%w: %s (%s)", ErrEmptyCorpus, dir, corpusType)
	}

	var documents, bytes, tokens atomic.Int64

	_, err = parallel.MapErr(len(files), func(i int) (struct{}, error) {
		docs, err := loadFile(files[i], corpusType)
		if err != nil {
			return struct{}{}, err
		}
		documents.Add(int64(len(docs)))
		for _, doc := range docs {
			bytes.Add(int64(len(doc)))
			if counter != nil {
				tokens.Add(int64(counter.CountTokens(doc)))
			}
		}
		return struct{}{}, nil
	}, parallel.DefaultConfig())
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		Files:     len(files),
		Documents: int(documents.Load()),
		Bytes:     bytes.Load(),
		Tokens:    tokens.Load(),
	}, nil
}
