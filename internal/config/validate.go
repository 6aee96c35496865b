package config

import (
	"fmt"
	"os"
)

// Validate checks every schema-level invariant of the configuration.
//
// It verifies documented numeric ranges, attention-head divisibility, and
// cross-field consistency (warmup within the step budget, decoder fields
// present exactly when the architecture has a decoder). It does not touch
// the filesystem; see ValidateFiles for path resolution.
//
// The first violated constraint is returned as a *ValidationError.
func (c Config) Validate() error {
	if err := c.Model.validate(); err != nil {
		return err
	}
	if err := c.Data.validate(); err != nil {
		return err
	}
	if err := c.Collator.validate(c.Model.ModelType); err != nil {
		return err
	}
	return c.Training.validate()
}

func (m ModelConfig) validate() error {
	if !m.ModelType.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownModelType, m.ModelType)
	}
	if m.VocabSize <= 0 {
		return rangeErr("model", "vocab_size", fmt.Sprintf("must be positive, got %d", m.VocabSize))
	}
	if m.DModel <= 0 {
		return rangeErr("model", "d_model", fmt.Sprintf("must be positive, got %d", m.DModel))
	}
	if m.MaxPositionEmbeddings <= 0 {
		return rangeErr("model", "max_position_embeddings",
			fmt.Sprintf("must be positive, got %d", m.MaxPositionEmbeddings))
	}

	if m.ModelType.HasEncoder() {
		if m.EncoderLayers <= 0 {
			return rangeErr("model", "encoder_layers",
				fmt.Sprintf("required for %s, got %d", m.ModelType, m.EncoderLayers))
		}
		if m.EncoderAttentionHeads <= 0 {
			return rangeErr("model", "encoder_attention_heads",
				fmt.Sprintf("required for %s, got %d", m.ModelType, m.EncoderAttentionHeads))
		}
		if m.DModel%m.EncoderAttentionHeads != 0 {
			return rangeErr("model", "encoder_attention_heads",
				fmt.Sprintf("d_model (%d) must be divisible by encoder_attention_heads (%d)",
					m.DModel, m.EncoderAttentionHeads))
		}
		if m.EncoderFFNDim <= 0 {
			return rangeErr("model", "encoder_ffn_dim",
				fmt.Sprintf("required for %s, got %d", m.ModelType, m.EncoderFFNDim))
		}
	}
	if m.ModelType.HasDecoder() {
		if m.DecoderLayers <= 0 {
			return rangeErr("model", "decoder_layers",
				fmt.Sprintf("required for %s, got %d", m.ModelType, m.DecoderLayers))
		}
		if m.DecoderAttentionHeads <= 0 {
			return rangeErr("model", "decoder_attention_heads",
				fmt.Sprintf("required for %s, got %d", m.ModelType, m.DecoderAttentionHeads))
		}
		if m.DModel%m.DecoderAttentionHeads != 0 {
			return rangeErr("model", "decoder_attention_heads",
				fmt.Sprintf("d_model (%d) must be divisible by decoder_attention_heads (%d)",
					m.DModel, m.DecoderAttentionHeads))
		}
		if m.DecoderFFNDim <= 0 {
			return rangeErr("model", "decoder_ffn_dim",
				fmt.Sprintf("required for %s, got %d", m.ModelType, m.DecoderFFNDim))
		}
	}

	for _, d := range []struct {
		field string
		value float64
	}{
		{"dropout", m.Dropout},
		{"attention_dropout", m.AttentionDropout},
		{"activation_dropout", m.ActivationDropout},
		{"classifier_dropout", m.ClassifierDropout},
	} {
		if d.value < 0 || d.value > 1 {
			return rangeErr("model", d.field, fmt.Sprintf("must be in [0, 1], got %g", d.value))
		}
	}
	return nil
}

func (d DataConfig) validate() error {
	if d.DataDir == "" {
		return ErrMissingDataDir
	}
	if d.TestSize < 0 || d.TestSize >= 1 {
		return rangeErr("data", "test_size", fmt.Sprintf("must be in [0, 1), got %g", d.TestSize))
	}
	return nil
}

func (c CollatorConfig) validate(modelType ModelType) error {
	if c.MLMProbability < 0 || c.MLMProbability > 1 {
		return rangeErr("collator", "mlm_probability",
			fmt.Sprintf("must be in [0, 1], got %g", c.MLMProbability))
	}
	if c.PoissonLambda < 0 {
		return rangeErr("collator", "poisson_lambda",
			fmt.Sprintf("must not be negative, got %g", c.PoissonLambda))
	}
	if modelType.IsDenoising() && c.PoissonLambda == 0 {
		return rangeErr("collator", "poisson_lambda",
			fmt.Sprintf("must be positive for %s span masking, got %g", modelType, c.PoissonLambda))
	}
	if c.MaxSeqLength < 0 {
		return rangeErr("collator", "max_seq_length",
			fmt.Sprintf("must not be negative, got %d", c.MaxSeqLength))
	}
	if c.PadToMultipleOf < 0 {
		return rangeErr("collator", "pad_to_multiple_of",
			fmt.Sprintf("must not be negative, got %d", c.PadToMultipleOf))
	}
	return nil
}

//nolint:gocyclo // One range check per field reads better than a table here.
func (t TrainingConfig) validate() error {
	if t.OutputDir == "" {
		return rangeErr("training", "output_dir", "must not be empty")
	}
	if t.PerDeviceTrainBatchSize <= 0 {
		return rangeErr("training", "per_device_train_batch_size",
			fmt.Sprintf("must be positive, got %d", t.PerDeviceTrainBatchSize))
	}
	if t.PerDeviceEvalBatchSize <= 0 {
		return rangeErr("training", "per_device_eval_batch_size",
			fmt.Sprintf("must be positive, got %d", t.PerDeviceEvalBatchSize))
	}
	if t.GradientAccumulationSteps <= 0 {
		return rangeErr("training", "gradient_accumulation_steps",
			fmt.Sprintf("must be positive, got %d", t.GradientAccumulationSteps))
	}
	if t.LearningRate <= 0 {
		return rangeErr("training", "learning_rate", fmt.Sprintf("must be positive, got %g", t.LearningRate))
	}
	if t.WeightDecay <= 0 {
		return rangeErr("training", "weight_decay", fmt.Sprintf("must be positive, got %g", t.WeightDecay))
	}
	if t.AdamBeta1 <= 0 || t.AdamBeta1 >= 1 {
		return rangeErr("training", "adam_beta1", fmt.Sprintf("must be in (0, 1), got %g", t.AdamBeta1))
	}
	if t.AdamBeta2 <= 0 || t.AdamBeta2 >= 1 {
		return rangeErr("training", "adam_beta2", fmt.Sprintf("must be in (0, 1), got %g", t.AdamBeta2))
	}
	if t.AdamEpsilon <= 0 {
		return rangeErr("training", "adam_epsilon", fmt.Sprintf("must be positive, got %g", t.AdamEpsilon))
	}
	if t.MaxGradNorm <= 0 {
		return rangeErr("training", "max_grad_norm", fmt.Sprintf("must be positive, got %g", t.MaxGradNorm))
	}
	if t.MaxSteps <= 0 {
		return rangeErr("training", "max_steps", fmt.Sprintf("must be positive, got %d", t.MaxSteps))
	}
	if t.WarmupSteps < 0 {
		return rangeErr("training", "warmup_steps", fmt.Sprintf("must not be negative, got %d", t.WarmupSteps))
	}
	if t.WarmupSteps > t.MaxSteps {
		return rangeErr("training", "warmup_steps",
			fmt.Sprintf("warmup_steps (%d) must not exceed max_steps (%d)", t.WarmupSteps, t.MaxSteps))
	}
	for _, s := range []struct {
		field string
		value int
	}{
		{"logging_steps", t.LoggingSteps},
		{"eval_steps", t.EvalSteps},
		{"save_steps", t.SaveSteps},
	} {
		if s.value <= 0 {
			return rangeErr("training", s.field, fmt.Sprintf("must be positive, got %d", s.value))
		}
	}
	if t.SaveTotalLimit < 0 {
		return rangeErr("training", "save_total_limit",
			fmt.Sprintf("must not be negative, got %d", t.SaveTotalLimit))
	}
	if t.DataloaderNumWorkers < 0 {
		return rangeErr("training", "dataloader_num_workers",
			fmt.Sprintf("must not be negative, got %d", t.DataloaderNumWorkers))
	}
	return nil
}

// ValidateFiles checks that every path the configuration references resolves
// on the local filesystem.
//
// This is a run-start check, separate from Validate: a configuration can be
// schema-valid on a machine that does not hold the corpus.
func (c Config) ValidateFiles() error {
	info, err := os.Stat(c.Data.DataDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrDataDirNotFound, c.Data.DataDir)
	}
	if c.Training.Deepspeed != "" {
		if _, err := os.Stat(c.Training.Deepspeed); err != nil {
			return fmt.Errorf("deepspeed config not found: %s", c.Training.Deepspeed)
		}
	}
	return nil
}
