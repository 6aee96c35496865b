package corpus

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrInvalidSamplingRatio reports a sampling ratio that is not positive.
var ErrInvalidSamplingRatio = errors.New("sampling_ratio must be greater than 0")

// Sample selects a fraction of documents without replacement.
//
// A ratio in (0, 1) keeps int(len(docs) * ratio) documents chosen uniformly
// at random; a ratio >= 1 keeps the whole corpus unchanged. The selection is
// deterministic for a given seed. Document order within the sample follows
// the shuffle, matching a uniform choice without replacement.
func Sample(docs []string, ratio float64, seed int64) ([]string, error) {
	if ratio <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidSamplingRatio, ratio)
	}
	if ratio >= 1 {
		return docs, nil
	}

	sampleSize := int(float64(len(docs)) * ratio)
	if sampleSize == 0 {
		return nil, nil
	}

	rng := rand.New(rand.NewSource(seed))
	indices := rng.Perm(len(docs))[:sampleSize]

	sampled := make([]string, sampleSize)
	for i, idx := range indices {
		sampled[i] = docs[idx]
	}
	return sampled, nil
}

// Batches splits documents into consecutive batches of at most batchSize.
//
// Tokenizer training consumes text in batches rather than one document at a
// time; this is the Go counterpart of a batch iterator over a dataset.
//
// Example:
//
//	for _, batch := range corpus.Batches(docs, 1000) {
//	    trainer.Feed(batch)
//	}
func Batches(docs []string, batchSize int) [][]string {
	if batchSize <= 0 {
		batchSize = 1000
	}

	batches := make([][]string, 0, (len(docs)+batchSize-1)/batchSize)
	for start := 0; start < len(docs); start += batchSize {
		end := min(start+batchSize, len(docs))
		batches = append(batches, docs[start:end])
	}
	return batches
}
