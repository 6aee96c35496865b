package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DaehanKim/lassl/config"
)

func newInitCmd() *cobra.Command {
	var modelType string
	var output string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a predefined configuration for a model type",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Default(config.ModelType(modelType))
			if err != nil {
				return fmt.Errorf("%w (supported: %v)", err, config.ModelTypes())
			}

			if output == "" {
				data, err := config.Marshal(cfg)
				if err != nil {
					return err
				}
				_, err = os.Stdout.Write(data)
				return err
			}

			if err := config.Save(output, cfg); err != nil {
				return err
			}
			fmt.Printf("Wrote %s configuration to %s\n", modelType, output)
			return nil
		},
	}

	cmd.Flags().StringVar(&modelType, "model-type", "bart", "architecture family (bert-cased, gpt2, roberta, albert, bart, t5, ul2)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

func newValidateCmd() *cobra.Command {
	var checkFiles bool

	cmd := &cobra.Command{
		Use:   "validate <config.yaml>",
		Short: "Check a configuration against the schema and its documented ranges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if checkFiles {
				if err := cfg.ValidateFiles(); err != nil {
					return fmt.Errorf("%s: %w", args[0], err)
				}
			}
			fmt.Printf("%s: OK\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&checkFiles, "check-files", false, "also check that referenced paths resolve")
	return cmd
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <config.yaml>",
		Short: "Print a configuration's resolved settings and derived dimensions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}

			m, t := cfg.Model, cfg.Training
			fmt.Printf("model type:            %s\n", m.ModelType)
			fmt.Printf("vocab size:            %d\n", m.VocabSize)
			fmt.Printf("d_model:               %d\n", m.DModel)
			if m.ModelType.HasEncoder() {
				fmt.Printf("encoder:               %d layers, %d heads (head dim %d), ffn %d\n",
					m.EncoderLayers, m.EncoderAttentionHeads, m.EncoderHeadDim(), m.EncoderFFNDim)
			}
			if m.ModelType.HasDecoder() {
				fmt.Printf("decoder:               %d layers, %d heads (head dim %d), ffn %d\n",
					m.DecoderLayers, m.DecoderAttentionHeads, m.DecoderHeadDim(), m.DecoderFFNDim)
			}
			fmt.Printf("max positions:         %d\n", m.MaxPositionEmbeddings)
			fmt.Printf("data dir:              %s\n", cfg.Data.DataDir)
			if cfg.Data.HasEvalSplit() {
				fmt.Printf("test split:            %g\n", cfg.Data.TestSize)
			}
			fmt.Printf("mlm probability:       %g\n", cfg.Collator.MLMProbability)
			if cfg.Collator.PoissonLambda > 0 {
				fmt.Printf("poisson lambda:        %g\n", cfg.Collator.PoissonLambda)
			}
			fmt.Printf("learning rate:         %g\n", t.LearningRate)
			fmt.Printf("effective batch size:  %d (%d x %d accumulation)\n",
				t.EffectiveBatchSize(), t.PerDeviceTrainBatchSize, t.GradientAccumulationSteps)
			fmt.Printf("steps:                 %d (warmup %d)\n", t.MaxSteps, t.WarmupSteps)
			fmt.Printf("precision:             fp16=%v\n", t.FP16)
			if t.ShardedDDP != "" {
				fmt.Printf("sharded ddp:           %s\n", t.ShardedDDP)
			}
			if t.Deepspeed != "" {
				fmt.Printf("deepspeed:             %s\n", t.Deepspeed)
			}
			return nil
		},
	}
}
