// Package blender interleaves samples from multiple datasets according to
// blending weights.
package blender

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrNoDatasets     = errors.New("at least one dataset is required")
	ErrWeightMismatch = errors.New("number of weights must match number of datasets")
	ErrZeroWeightSum  = errors.New("sum of all weights is zero")
)

// Blender builds a deterministic blended index over multiple datasets.
//
// Given N datasets and blending weights, the blender assigns every position
// of the combined dataset to one source dataset so that, at every prefix of
// the blend, the per-dataset sample counts track the weights as closely as
// possible. The assignment is greedy: each position goes to the dataset whose
// drawn-sample count lags its weighted target the most.
//
// This mirrors the blended-corpus indexing used by Megatron-style
// multi-corpus pretraining. When weights are nil they default to the
// relative sizes of the datasets, so every sample is visited exactly once.
//
// Example:
//
//	b, err := blender.New([]int{2000, 3000, 5000}, []float64{0.8, 0.1, 0.1})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for i := 0; i < b.Len(); i++ {
//	    dataset, sample := b.At(i)
//	    batch = append(batch, corpora[dataset].Doc(sample))
//	}
type Blender struct {
	sizes        []int
	weights      []float64
	datasetIndex []int32
	sampleIndex  []int64
}

// New creates a blender over datasets of the given sizes.
//
// weights may be nil, in which case each dataset's weight is proportional to
// its size. Weights are normalized to sum to 1; they do not need to be
// normalized by the caller.
func New(sizes []int, weights []float64) (*Blender, error) {
	if len(sizes) == 0 {
		return nil, ErrNoDatasets
	}
	for i, size := range sizes {
		if size <= 0 {
			return nil, fmt.Errorf("dataset %d has non-positive size %d", i, size)
		}
	}

	total := 0
	for _, size := range sizes {
		total += size
	}

	if weights == nil {
		weights = make([]float64, len(sizes))
		for i, size := range sizes {
			weights[i] = float64(size) / float64(total)
		}
	}
	if len(weights) != len(sizes) {
		return nil, fmt.Errorf("%w: %d weights for %d datasets", ErrWeightMismatch, len(weights), len(sizes))
	}

	normalized, err := normalizeWeights(weights)
	if err != nil {
		return nil, err
	}

	b := &Blender{
		sizes:        append([]int(nil), sizes...),
		weights:      normalized,
		datasetIndex: make([]int32, total),
		sampleIndex:  make([]int64, total),
	}
	b.buildBlendingIndices()
	return b, nil
}

// Len returns the total number of samples in the blend.
func (b *Blender) Len() int {
	return len(b.datasetIndex)
}

// Weights returns the normalized blending weights.
func (b *Blender) Weights() []float64 {
	return append([]float64(nil), b.weights...)
}

// At maps a blended position to (dataset, sample).
//
// The sample index wraps modulo the dataset size, so upweighted small
// datasets repeat samples rather than running out.
func (b *Blender) At(i int) (dataset, sample int) {
	dataset = int(b.datasetIndex[i])
	size := b.sizes[dataset]
	sample = int(b.sampleIndex[i]) % size
	return dataset, sample
}

// buildBlendingIndices assigns each blended position to the dataset whose
// drawn count has fallen furthest behind its weighted target.
func (b *Blender) buildBlendingIndices() {
	current := make([]int64, len(b.sizes))

	for pos := range b.datasetIndex {
		// Position 0 still compares against targets for one sample.
		target := float64(pos)
		if target < 1.0 {
			target = 1.0
		}

		maxErrIndex := 0
		maxErr := b.weights[0]*target - float64(current[0])
		for d := 1; d < len(b.sizes); d++ {
			if err := b.weights[d]*target - float64(current[d]); err > maxErr {
				maxErr = err
				maxErrIndex = d
			}
		}

		b.datasetIndex[pos] = int32(maxErrIndex)
		b.sampleIndex[pos] = current[maxErrIndex]
		current[maxErrIndex]++
	}
}

// normalizeWeights scales weights to sum to 1.
func normalizeWeights(weights []float64) ([]float64, error) {
	sum := 0.0
	for _, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("negative weight %g", w)
		}
		sum += w
	}
	if sum <= 0 {
		return nil, ErrZeroWeightSum
	}

	normalized := make([]float64, len(weights))
	for i, w := range weights {
		normalized[i] = w / sum
	}
	return normalized, nil
}
