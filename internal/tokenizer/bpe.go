package tokenizer

import (
	"strings"
)

// endOfWord marks the final symbol of a word, so decoding can restore word
// boundaries without a separate space token.
const endOfWord = "</w>"

// pair is an adjacent symbol pair eligible for merging.
type pair struct {
	first  string
	second string
}

// BPETokenizer is a Byte-Pair Encoding tokenizer.
//
// A tokenizer is either trained from a corpus (see Trainer) or loaded from a
// saved tokenizer.json (see Load). Encoding splits text into
// whitespace-delimited words, explodes each word into character symbols with
// an end-of-word suffix, and greedily applies the learned merges in rank
// order.
type BPETokenizer struct {
	vocab         map[string]int32 // token -> ID
	merges        []pair           // Merge rules, in learned order
	mergeRank     map[pair]int     // Merge -> rank, lower merges first
	reverseVocab  map[int32]string // ID -> token
	specialTokens map[string]int32 // Special token -> ID
	unkToken      int32
}

// newBPETokenizer assembles a tokenizer from its parts.
func newBPETokenizer(vocab map[string]int32, merges []pair, special map[string]int32) *BPETokenizer {
	reverseVocab := make(map[int32]string, len(vocab))
	for token, id := range vocab {
		reverseVocab[id] = token
	}
	mergeRank := make(map[pair]int, len(merges))
	for i, m := range merges {
		mergeRank[m] = i
	}

	b := &BPETokenizer{
		vocab:         vocab,
		merges:        merges,
		mergeRank:     mergeRank,
		reverseVocab:  reverseVocab,
		specialTokens: special,
		unkToken:      -1,
	}
	if id, ok := special[UnkToken]; ok {
		b.unkToken = id
	}
	return b
}

// symbolize explodes a word into its initial symbol sequence.
func symbolize(word string) []string {
	runes := []rune(word)
	symbols := make([]string, len(runes))
	for i, r := range runes {
		symbols[i] = string(r)
	}
	symbols[len(symbols)-1] += endOfWord
	return symbols
}

// Encode converts text to token IDs.
func (b *BPETokenizer) Encode(text string) []int32 {
	var tokens []int32

	for _, word := range strings.Fields(text) {
		symbols := symbolize(word)

		// Apply the lowest-rank merge present until none applies.
		for len(symbols) > 1 {
			bestIdx := -1
			bestRank := len(b.merges)

			for i := 0; i < len(symbols)-1; i++ {
				if rank, ok := b.mergeRank[pair{symbols[i], symbols[i+1]}]; ok && rank < bestRank {
					bestIdx = i
					bestRank = rank
				}
			}
			if bestIdx == -1 {
				break
			}

			merged := symbols[bestIdx] + symbols[bestIdx+1]
			symbols = append(symbols[:bestIdx], append([]string{merged}, symbols[bestIdx+2:]...)...)
		}

		for _, sym := range symbols {
			if id, ok := b.vocab[sym]; ok {
				tokens = append(tokens, id)
			} else if b.unkToken >= 0 {
				tokens = append(tokens, b.unkToken)
			}
		}
	}

	return tokens
}

// Decode converts token IDs back to text.
//
// Special tokens are dropped; end-of-word suffixes become spaces.
func (b *BPETokenizer) Decode(tokens []int32) string {
	var sb strings.Builder
	for _, token := range tokens {
		text, ok := b.reverseVocab[token]
		if !ok {
			continue
		}
		if _, special := b.specialTokens[text]; special {
			continue
		}
		sb.WriteString(strings.ReplaceAll(text, endOfWord, " "))
	}
	return strings.TrimRight(sb.String(), " ")
}

// VocabSize returns the total vocabulary size, special tokens included.
func (b *BPETokenizer) VocabSize() int {
	return len(b.vocab)
}

// TokenID returns the ID of a token, or -1 when it is out of vocabulary.
func (b *BPETokenizer) TokenID(token string) int32 {
	if id, ok := b.vocab[token]; ok {
		return id
	}
	return -1
}

// SpecialTokens returns the special tokens and their IDs.
func (b *BPETokenizer) SpecialTokens() map[string]int32 {
	out := make(map[string]int32, len(b.specialTokens))
	for token, id := range b.specialTokens {
		out[token] = id
	}
	return out
}
