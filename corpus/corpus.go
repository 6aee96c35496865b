// Copyright 2026 LASSL Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package corpus reads, samples, and verifies pretraining corpora.
//
// A corpus is a directory of text or JSON-lines files in one of four
// layouts; see Type. Example usage:
//
//	import "github.com/DaehanKim/lassl/corpus"
//
//	docs, err := corpus.Load("corpora/wiki", corpus.SentText)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sampled, err := corpus.Sample(docs, 0.98, 42)
//	for _, batch := range corpus.Batches(sampled, 1000) {
//	    trainer.Feed(batch)
//	}
package corpus

import (
	"github.com/DaehanKim/lassl/internal/corpus"
)

// Type identifies the on-disk layout of a corpus directory.
type Type = corpus.Type

// Supported corpus layouts.
const (
	SentText = corpus.SentText
	DocuText = corpus.DocuText
	SentJSON = corpus.SentJSON
	DocuJSON = corpus.DocuJSON
)

// Stats summarizes a corpus directory.
type Stats = corpus.Stats

// TokenCounter counts tokens in a piece of text.
type TokenCounter = corpus.TokenCounter

// Manifest records content hashes of every file in a corpus directory.
type Manifest = corpus.Manifest

// Common errors.
var (
	ErrUnknownCorpusType    = corpus.ErrUnknownCorpusType
	ErrEmptyCorpus          = corpus.ErrEmptyCorpus
	ErrInvalidSamplingRatio = corpus.ErrInvalidSamplingRatio
	ErrChecksumMismatch     = corpus.ErrChecksumMismatch
)

// Types lists every supported corpus layout.
func Types() []Type {
	return corpus.Types()
}

// Load reads every document from a corpus directory, in deterministic order.
func Load(dir string, corpusType Type) ([]string, error) {
	return corpus.Load(dir, corpusType)
}

// Sample selects a fraction of documents without replacement; deterministic
// for a given seed.
func Sample(docs []string, ratio float64, seed int64) ([]string, error) {
	return corpus.Sample(docs, ratio, seed)
}

// Batches splits documents into consecutive batches of at most batchSize.
func Batches(docs []string, batchSize int) [][]string {
	return corpus.Batches(docs, batchSize)
}

// Scan computes statistics for a corpus directory. counter may be nil to
// skip token counting.
func Scan(dir string, corpusType Type, counter TokenCounter) (Stats, error) {
	return corpus.Scan(dir, corpusType, counter)
}

// NewTiktokenCounter returns a TokenCounter backed by a tiktoken encoding
// such as "cl100k_base".
func NewTiktokenCounter(encodingName string) (TokenCounter, error) {
	return corpus.NewTiktokenCounter(encodingName)
}

// BuildManifest hashes every corpus file under dir.
func BuildManifest(dir string, corpusType Type) (*Manifest, error) {
	return corpus.BuildManifest(dir, corpusType)
}

// ReadManifest loads the manifest from a corpus directory.
func ReadManifest(dir string) (*Manifest, error) {
	return corpus.ReadManifest(dir)
}

// VerifyManifest re-hashes the corpus and compares against the stored
// manifest.
func VerifyManifest(dir string) error {
	return corpus.VerifyManifest(dir)
}
