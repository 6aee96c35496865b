// Copyright 2026 LASSL Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tokenizer provides trainable Byte-Pair Encoding tokenization for
// corpus preparation.
//
// Example usage:
//
//	import "github.com/DaehanKim/lassl/tokenizer"
//
//	trainer := tokenizer.NewTrainer(tokenizer.TrainerConfig{
//	    VocabSize:    32128,
//	    MinFrequency: 2,
//	})
//	for _, batch := range corpus.Batches(docs, 1000) {
//	    trainer.Feed(batch)
//	}
//	tok, err := trainer.Train()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = tok.Save("tokenizers/bart/tokenizer.json")
package tokenizer

import (
	"github.com/DaehanKim/lassl/internal/tokenizer"
)

// BPETokenizer is a Byte-Pair Encoding tokenizer.
type BPETokenizer = tokenizer.BPETokenizer

// Trainer learns a BPE vocabulary from corpus batches.
type Trainer = tokenizer.Trainer

// TrainerConfig holds tokenizer training settings.
type TrainerConfig = tokenizer.TrainerConfig

// Default special tokens.
const (
	PadToken  = tokenizer.PadToken
	UnkToken  = tokenizer.UnkToken
	BosToken  = tokenizer.BosToken
	EosToken  = tokenizer.EosToken
	MaskToken = tokenizer.MaskToken
)

// Common errors.
var (
	ErrDuplicateSpecialToken = tokenizer.ErrDuplicateSpecialToken
	ErrReservedSpecialToken  = tokenizer.ErrReservedSpecialToken
	ErrEmptyTrainingCorpus   = tokenizer.ErrEmptyTrainingCorpus
)

// NewTrainer creates a tokenizer trainer with defaults filled in.
func NewTrainer(config TrainerConfig) *Trainer {
	return tokenizer.NewTrainer(config)
}

// Load reads a tokenizer saved by BPETokenizer.Save.
func Load(path string) (*BPETokenizer, error) {
	return tokenizer.Load(path)
}
