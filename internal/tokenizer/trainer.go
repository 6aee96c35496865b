package tokenizer

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Default special tokens, in ID order.
const (
	PadToken  = "<pad>"
	UnkToken  = "<unk>"
	BosToken  = "<s>"
	EosToken  = "</s>"
	MaskToken = "<mask>"
)

// Common training errors.
var (
	ErrDuplicateSpecialToken = errors.New("each additional special token must be unique")
	ErrReservedSpecialToken  = errors.New("additional special token collides with a default special token")
	ErrEmptyTrainingCorpus   = errors.New("no training text was provided")
	ErrInvalidMinFrequency   = errors.New("min_frequency must be at least 1")
)

// TrainerConfig holds tokenizer training settings.
type TrainerConfig struct {
	VocabSize    int // Target vocabulary size, special tokens included (default: 32128)
	MinFrequency int // Minimum pair frequency for a merge (default: 2)

	// AdditionalSpecialTokens are appended after the default special tokens.
	// They must be unique and distinct from the defaults (e.g. UL2 mode
	// markers [NLU], [NLG], [S2S]).
	AdditionalSpecialTokens []string
}

// Trainer learns a BPE vocabulary from corpus batches.
//
// Example:
//
//	trainer := tokenizer.NewTrainer(tokenizer.TrainerConfig{VocabSize: 8000})
//	for _, batch := range corpus.Batches(docs, 1000) {
//	    trainer.Feed(batch)
//	}
//	tok, err := trainer.Train()
type Trainer struct {
	config    TrainerConfig
	wordFreqs map[string]int64
}

// NewTrainer creates a tokenizer trainer.
//
// Zero config fields fall back to defaults: vocab size 32128, minimum merge
// frequency 2.
func NewTrainer(config TrainerConfig) *Trainer {
	if config.VocabSize == 0 {
		config.VocabSize = 32128
	}
	if config.MinFrequency == 0 {
		config.MinFrequency = 2
	}
	return &Trainer{
		config:    config,
		wordFreqs: make(map[string]int64),
	}
}

// Feed accumulates word frequencies from a batch of documents.
func (t *Trainer) Feed(batch []string) {
	for _, doc := range batch {
		for _, word := range strings.Fields(doc) {
			t.wordFreqs[word]++
		}
	}
}

// Train learns merges from the accumulated frequencies and returns the
// trained tokenizer.
func (t *Trainer) Train() (*BPETokenizer, error) {
	if err := t.validateSpecialTokens(); err != nil {
		return nil, err
	}
	// A frequency floor below 1 would accept the -1 "no pairs left" count
	// and merge the empty pair forever.
	if t.config.MinFrequency < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMinFrequency, t.config.MinFrequency)
	}
	if len(t.wordFreqs) == 0 {
		return nil, ErrEmptyTrainingCorpus
	}

	// Distinct words in deterministic order, with parallel frequencies and
	// mutable symbol sequences.
	words := make([]string, 0, len(t.wordFreqs))
	for word := range t.wordFreqs {
		words = append(words, word)
	}
	sort.Strings(words)

	freqs := make([]int64, len(words))
	sequences := make([][]string, len(words))
	for i, word := range words {
		freqs[i] = t.wordFreqs[word]
		sequences[i] = symbolize(word)
	}

	// Base vocabulary: special tokens first, then every initial symbol.
	special := make(map[string]int32)
	vocab := make(map[string]int32)
	nextID := int32(0)
	for _, tok := range append([]string{PadToken, UnkToken, BosToken, EosToken, MaskToken},
		t.config.AdditionalSpecialTokens...) {
		special[tok] = nextID
		vocab[tok] = nextID
		nextID++
	}

	baseSymbols := make(map[string]struct{})
	for _, seq := range sequences {
		for _, sym := range seq {
			baseSymbols[sym] = struct{}{}
		}
	}
	for _, sym := range sortedKeys(baseSymbols) {
		vocab[sym] = nextID
		nextID++
	}

	// Learn merges until the vocab is full or no pair is frequent enough.
	var merges []pair
	for len(vocab) < t.config.VocabSize {
		best, count := bestPair(sequences, freqs)
		if count < int64(t.config.MinFrequency) {
			break
		}

		merges = append(merges, best)
		vocab[best.first+best.second] = nextID
		nextID++

		for i := range sequences {
			sequences[i] = applyMerge(sequences[i], best)
		}
	}

	return newBPETokenizer(vocab, merges, special), nil
}

// bestPair counts adjacent symbol pairs across all words, weighted by word
// frequency, and returns the most frequent one. Ties break lexicographically
// so training is deterministic.
func bestPair(sequences [][]string, freqs []int64) (pair, int64) {
	counts := make(map[pair]int64)
	for i, seq := range sequences {
		for j := 0; j < len(seq)-1; j++ {
			counts[pair{seq[j], seq[j+1]}] += freqs[i]
		}
	}

	var best pair
	var bestCount int64 = -1
	for p, c := range counts {
		if c > bestCount || (c == bestCount && lessPair(p, best)) {
			best = p
			bestCount = c
		}
	}
	return best, bestCount
}

func lessPair(a, b pair) bool {
	if a.first != b.first {
		return a.first < b.first
	}
	return a.second < b.second
}

// applyMerge rewrites a symbol sequence with one merge applied everywhere.
func applyMerge(seq []string, m pair) []string {
	if len(seq) < 2 {
		return seq
	}
	out := make([]string, 0, len(seq))
	for i := 0; i < len(seq); i++ {
		if i < len(seq)-1 && seq[i] == m.first && seq[i+1] == m.second {
			out = append(out, m.first+m.second)
			i++
		} else {
			out = append(out, seq[i])
		}
	}
	return out
}

func (t *Trainer) validateSpecialTokens() error {
	defaults := map[string]struct{}{
		PadToken: {}, UnkToken: {}, BosToken: {}, EosToken: {}, MaskToken: {},
	}
	seen := make(map[string]struct{}, len(t.config.AdditionalSpecialTokens))
	for _, tok := range t.config.AdditionalSpecialTokens {
		if _, dup := seen[tok]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateSpecialToken, tok)
		}
		if _, reserved := defaults[tok]; reserved {
			return fmt.Errorf("%w: %q", ErrReservedSpecialToken, tok)
		}
		seen[tok] = struct{}{}
	}
	return nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
