// Package tokenizer provides trainable Byte-Pair Encoding tokenization for
// corpus preparation.
//
// The package implements:
//   - BPE training: learn a vocabulary and merge rules from corpus batches
//   - BPE encoding/decoding with special-token handling
//   - tokenizer.json save/load
//
// Example usage:
//
//	// Train from a corpus
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
//
//	// Persist and reuse
//	err = tok.Save("tokenizers/bart/tokenizer.json")
//	tok, err = tokenizer.Load("tokenizers/bart/tokenizer.json")
//
//	// Encode text
//	tokens := tok.Encode("Hello, world!")
//	text := tok.Decode(tokens)
package tokenizer
