package blender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProportionalWeights(t *testing.T) {
	b, err := New([]int{2000, 3000, 5000}, nil)
	require.NoError(t, err)

	assert.Equal(t, 10000, b.Len())
	assert.InDeltaSlice(t, []float64{0.2, 0.3, 0.5}, b.Weights(), 1e-12)
}

func TestNew_NormalizesWeights(t *testing.T) {
	b, err := New([]int{10, 10}, []float64{3, 1})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.75, 0.25}, b.Weights(), 1e-12)
}

func TestNew_Errors(t *testing.T) {
	_, err := New(nil, nil)
	require.ErrorIs(t, err, ErrNoDatasets)

	_, err = New([]int{10, 0}, nil)
	require.Error(t, err)

	_, err = New([]int{10, 10}, []float64{0.5})
	require.ErrorIs(t, err, ErrWeightMismatch)

	_, err = New([]int{10, 10}, []float64{0, 0})
	require.ErrorIs(t, err, ErrZeroWeightSum)

	_, err = New([]int{10, 10}, []float64{0.5, -0.5})
	require.Error(t, err)
}

func TestAt_TracksWeights(t *testing.T) {
	b, err := New([]int{100, 100}, []float64{0.8, 0.2})
	require.NoError(t, err)

	counts := make([]int, 2)
	for i := 0; i < b.Len(); i++ {
		dataset, _ := b.At(i)
		counts[dataset]++
	}

	// Greedy assignment keeps counts within one sample of the target.
	total := float64(b.Len())
	assert.InDelta(t, 0.8*total, float64(counts[0]), 1.0)
	assert.InDelta(t, 0.2*total, float64(counts[1]), 1.0)
}

func TestAt_PrefixTracking(t *testing.T) {
	b, err := New([]int{1000, 1000}, []float64{0.5, 0.5})
	require.NoError(t, err)

	counts := make([]int, 2)
	for i := 0; i < b.Len(); i++ {
		dataset, _ := b.At(i)
		counts[dataset]++

		// At every prefix, neither dataset is over-drawn by more than one.
		diff := counts[0] - counts[1]
		if diff < 0 {
			diff = -diff
		}
		assert.LessOrEqual(t, diff, 1, "imbalance at position %d", i)
	}
}

func TestAt_SampleIndicesSequential(t *testing.T) {
	b, err := New([]int{50, 50}, nil)
	require.NoError(t, err)

	// Within each dataset, samples are drawn in order 0, 1, 2, ...
	next := make([]int, 2)
	for i := 0; i < b.Len(); i++ {
		dataset, sample := b.At(i)
		assert.Equal(t, next[dataset], sample)
		next[dataset]++
	}
}

func TestAt_WrapsSmallDataset(t *testing.T) {
	// Upweighting a 5-sample dataset to half the blend forces wrap-around.
	b, err := New([]int{5, 100}, []float64{0.5, 0.5})
	require.NoError(t, err)

	seen := false
	for i := 0; i < b.Len(); i++ {
		dataset, sample := b.At(i)
		require.Less(t, sample, []int{5, 100}[dataset])
		if dataset == 0 && i > 10 {
			seen = true
		}
	}
	assert.True(t, seen, "small dataset must keep contributing after exhaustion")
}
