package parallel

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor_CoversAllIndices(t *testing.T) {
	var count atomic.Int64
	For(1000, func(i int) {
		count.Add(1)
	}, DefaultConfig())
	assert.Equal(t, int64(1000), count.Load())
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}
	order := make([]int, 0, 10)
	For(10, func(i int) {
		order = append(order, i)
	}, cfg)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, order)
}

func TestFor_ZeroAndOne(t *testing.T) {
	calls := 0
	For(0, func(i int) { calls++ }, DefaultConfig())
	assert.Equal(t, 0, calls)

	For(1, func(i int) { calls++ }, DefaultConfig())
	assert.Equal(t, 1, calls)
}

func TestMapErr_CollectsInOrder(t *testing.T) {
	results, err := MapErr(100, func(i int) (int, error) {
		return i * i, nil
	}, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, results, 100)
	for i, r := range results {
		assert.Equal(t, i*i, r)
	}
}

func TestMapErr_FirstErrorByIndex(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")
	_, err := MapErr(10, func(i int) (int, error) {
		switch i {
		case 3:
			return 0, errA
		case 7:
			return 0, errB
		default:
			return i, nil
		}
	}, DefaultConfig())
	require.ErrorIs(t, err, errA)
}
