// Copyright 2026 LASSL Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package blender interleaves samples from multiple pretraining corpora
// according to blending weights.
//
// Example usage:
//
//	import "github.com/DaehanKim/lassl/blender"
//
//	// 80% of samples from corpus 0, 10% each from corpora 1 and 2.
//	b, err := blender.New([]int{20000, 30000, 50000}, []float64{0.8, 0.1, 0.1})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for i := 0; i < b.Len(); i++ {
//	    dataset, sample := b.At(i)
//	    process(corpora[dataset], sample)
//	}
//
// Omitting the weights blends proportionally to corpus sizes, visiting every
// sample exactly once.
package blender

import (
	"github.com/DaehanKim/lassl/internal/blender"
)

// Blender builds a deterministic blended index over multiple datasets.
type Blender = blender.Blender

// Common errors.
var (
	ErrNoDatasets     = blender.ErrNoDatasets
	ErrWeightMismatch = blender.ErrWeightMismatch
	ErrZeroWeightSum  = blender.ErrZeroWeightSum
)

// New creates a blender over datasets of the given sizes. weights may be
// nil, in which case they default to the relative dataset sizes.
func New(sizes []int, weights []float64) (*Blender, error) {
	return blender.New(sizes, weights)
}
