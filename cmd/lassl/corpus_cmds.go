package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DaehanKim/lassl/corpus"
	"github.com/DaehanKim/lassl/tokenizer"
)

func newTrainTokenizerCmd() *cobra.Command {
	var (
		corpusType       string
		batchSize        int
		samplingRatio    float64
		seed             int64
		vocabSize        int
		minFrequency     int
		additionalTokens string
		outputDir        string
	)

	cmd := &cobra.Command{
		Use:   "train-tokenizer <corpora-dir>",
		Short: "Train a BPE tokenizer from a corpus directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := corpus.Load(args[0], corpus.Type(corpusType))
			if err != nil {
				return err
			}

			if samplingRatio < 1 {
				docs, err = corpus.Sample(docs, samplingRatio, seed)
				if err != nil {
					return err
				}
			} else {
				fmt.Println("Since sampling ratio >= 1.0, the whole corpus will be used.")
			}

			trainerConfig := tokenizer.TrainerConfig{
				VocabSize:    vocabSize,
				MinFrequency: minFrequency,
			}
			if additionalTokens != "" {
				trainerConfig.AdditionalSpecialTokens = strings.Split(additionalTokens, ",")
				fmt.Printf("Additional special tokens: %v\n", trainerConfig.AdditionalSpecialTokens)
			}

			trainer := tokenizer.NewTrainer(trainerConfig)
			for _, batch := range corpus.Batches(docs, batchSize) {
				trainer.Feed(batch)
			}

			tok, err := trainer.Train()
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outputDir, 0o750); err != nil {
				return err
			}
			path := filepath.Join(outputDir, "tokenizer.json")
			if err := tok.Save(path); err != nil {
				return err
			}
			fmt.Printf("Trained tokenizer with vocab size %d from %d documents -> %s\n",
				tok.VocabSize(), len(docs), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&corpusType, "corpus-type", "sent_text", "corpus layout (docu_text, docu_json, sent_text, sent_json)")
	cmd.Flags().IntVar(&batchSize, "batch-size", 1000, "documents per training batch")
	cmd.Flags().Float64Var(&samplingRatio, "sampling-ratio", 0.98, "fraction of the corpus to train on")
	cmd.Flags().Int64Var(&seed, "seed", 42, "sampling seed")
	cmd.Flags().IntVar(&vocabSize, "vocab-size", 32128, "target vocabulary size")
	cmd.Flags().IntVar(&minFrequency, "min-frequency", 2, "minimum merge frequency")
	cmd.Flags().StringVar(&additionalTokens, "additional-special-tokens", "", "comma-separated extra special tokens (e.g. [NLU],[NLG],[S2S])")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "tokenizers", "directory for tokenizer.json")
	return cmd
}

func newCorpusStatsCmd() *cobra.Command {
	var corpusType string
	var encoding string

	cmd := &cobra.Command{
		Use:   "corpus-stats <corpora-dir>",
		Short: "Print document and token statistics for a corpus directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var counter corpus.TokenCounter
			if encoding != "" {
				var err error
				counter, err = corpus.NewTiktokenCounter(encoding)
				if err != nil {
					return err
				}
			}

			stats, err := corpus.Scan(args[0], corpus.Type(corpusType), counter)
			if err != nil {
				return err
			}

			fmt.Printf("files:     %d\n", stats.Files)
			fmt.Printf("documents: %d\n", stats.Documents)
			fmt.Printf("bytes:     %d\n", stats.Bytes)
			if counter != nil {
				fmt.Printf("tokens:    %d (%s)\n", stats.Tokens, encoding)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&corpusType, "corpus-type", "sent_text", "corpus layout (docu_text, docu_json, sent_text, sent_json)")
	cmd.Flags().StringVar(&encoding, "encoding", "cl100k_base", "tiktoken encoding for token counts (empty to skip)")
	return cmd
}

func newManifestCmd() *cobra.Command {
	var corpusType string

	cmd := &cobra.Command{
		Use:   "manifest <corpora-dir>",
		Short: "Write a checksum manifest into a corpus directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := corpus.BuildManifest(args[0], corpus.Type(corpusType))
			if err != nil {
				return err
			}
			if err := m.Write(args[0]); err != nil {
				return err
			}
			fmt.Printf("Wrote manifest covering %d files\n", len(m.Files))
			return nil
		},
	}

	cmd.Flags().StringVar(&corpusType, "corpus-type", "sent_text", "corpus layout (docu_text, docu_json, sent_text, sent_json)")
	return cmd
}

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <corpora-dir>",
		Short: "Verify a corpus directory against its checksum manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := corpus.VerifyManifest(args[0]); err != nil {
				return err
			}
			fmt.Println("Corpus verified.")
			return nil
		},
	}
}
