// Package config implements the pretraining run configuration: schema,
// YAML load/save, validation, and per-architecture defaults.
package config

// Config is a complete pretraining run configuration.
//
// A Config is the on-disk manifest a practitioner edits before launching a
// run: architecture dimensions, dataset location, denoising collation
// parameters, and optimizer/scheduler/checkpointing settings. It is loaded
// once at process start and treated as immutable for the rest of the run.
//
// The four sections mirror the YAML layout:
//
//	model:
//	  model_type: bart
//	  d_model: 768
//	  ...
//	data:
//	  data_dir: datasets/bart
//	collator:
//	  mlm_probability: 0.3
//	training:
//	  learning_rate: 0.0001
//	  ...
//
// Example:
//
//	cfg, err := config.Load("conf/bart.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
type Config struct {
	Model    ModelConfig    `yaml:"model"`
	Data     DataConfig     `yaml:"data"`
	Collator CollatorConfig `yaml:"collator"`
	Training TrainingConfig `yaml:"training"`
}

// ModelConfig holds transformer architecture hyperparameters.
//
// Encoder-only architectures (bert-cased, roberta, albert) leave the decoder
// fields zero; decoder-only architectures (gpt2) leave the encoder fields
// zero. Sequence-to-sequence architectures (bart, t5, ul2) set both sides.
type ModelConfig struct {
	ModelType             ModelType `yaml:"model_type"`              // Architecture family (bart, t5, gpt2, ...)
	VocabSize             int       `yaml:"vocab_size"`              // Tokenizer vocabulary size
	DModel                int       `yaml:"d_model"`                 // Hidden dimension (e.g. 768)
	EncoderLayers         int       `yaml:"encoder_layers,omitempty"`
	DecoderLayers         int       `yaml:"decoder_layers,omitempty"`
	EncoderAttentionHeads int       `yaml:"encoder_attention_heads,omitempty"`
	DecoderAttentionHeads int       `yaml:"decoder_attention_heads,omitempty"`
	EncoderFFNDim         int       `yaml:"encoder_ffn_dim,omitempty"` // FFN hidden dim, typically 4 * d_model
	DecoderFFNDim         int       `yaml:"decoder_ffn_dim,omitempty"`
	Dropout               float64   `yaml:"dropout"`
	AttentionDropout      float64   `yaml:"attention_dropout"`
	ActivationDropout     float64   `yaml:"activation_dropout"`
	ClassifierDropout     float64   `yaml:"classifier_dropout"`
	MaxPositionEmbeddings int       `yaml:"max_position_embeddings"` // Maximum sequence length the model accepts
}

// DataConfig points the run at a serialized corpus directory.
type DataConfig struct {
	// DataDir is the directory produced by the corpus serialization step.
	// It must exist and be readable when the run starts.
	DataDir string `yaml:"data_dir"`

	// TestSize is an optional held-out evaluation fraction in [0, 1).
	// Zero means no held-out split and omits the key on save.
	TestSize float64 `yaml:"test_size,omitempty"`
}

// CollatorConfig holds denoising data-collation parameters.
//
// Only the parameters live here; the masking/permutation algorithm itself
// belongs to the consuming training framework.
type CollatorConfig struct {
	MLMProbability  float64 `yaml:"mlm_probability"`            // Fraction of tokens corrupted, in [0, 1]
	PoissonLambda   float64 `yaml:"poisson_lambda,omitempty"`   // Mean span length for span masking (BART-style)
	MaxSeqLength    int     `yaml:"max_seq_length,omitempty"`   // Truncation length for collated batches
	PadToMultipleOf int     `yaml:"pad_to_multiple_of,omitempty"`
}

// TrainingConfig holds optimizer, scheduler, logging, and checkpointing
// settings for the training loop.
type TrainingConfig struct {
	OutputDir                  string  `yaml:"output_dir"`
	OverwriteOutputDir         bool    `yaml:"overwrite_output_dir"`
	PerDeviceTrainBatchSize    int     `yaml:"per_device_train_batch_size"`
	PerDeviceEvalBatchSize     int     `yaml:"per_device_eval_batch_size"`
	GradientAccumulationSteps  int     `yaml:"gradient_accumulation_steps"`
	LearningRate               float64 `yaml:"learning_rate"`
	WeightDecay                float64 `yaml:"weight_decay"`
	AdamBeta1                  float64 `yaml:"adam_beta1"`
	AdamBeta2                  float64 `yaml:"adam_beta2"`
	AdamEpsilon                float64 `yaml:"adam_epsilon"`
	MaxGradNorm                float64 `yaml:"max_grad_norm"`
	MaxSteps                   int     `yaml:"max_steps"`
	WarmupSteps                int     `yaml:"warmup_steps"`
	LoggingSteps               int     `yaml:"logging_steps"`
	EvalSteps                  int     `yaml:"eval_steps"`
	SaveSteps                  int     `yaml:"save_steps"`
	SaveTotalLimit             int     `yaml:"save_total_limit,omitempty"`
	Seed                       int     `yaml:"seed"`
	FP16                       bool    `yaml:"fp16"`
	ShardedDDP                 string  `yaml:"sharded_ddp,omitempty"` // Distributed strategy name (e.g. zero_dp_3)
	Deepspeed                  string  `yaml:"deepspeed,omitempty"`   // Path to a deepspeed config file
	DataloaderNumWorkers       int     `yaml:"dataloader_num_workers,omitempty"`
}

// EncoderHeadDim returns the per-head dimension of encoder attention,
// or 0 when the architecture has no encoder.
func (m ModelConfig) EncoderHeadDim() int {
	if m.EncoderAttentionHeads == 0 {
		return 0
	}
	return m.DModel / m.EncoderAttentionHeads
}

// DecoderHeadDim returns the per-head dimension of decoder attention,
// or 0 when the architecture has no decoder.
func (m ModelConfig) DecoderHeadDim() int {
	if m.DecoderAttentionHeads == 0 {
		return 0
	}
	return m.DModel / m.DecoderAttentionHeads
}

// EffectiveBatchSize returns the optimizer-step batch size on a single
// device: per-device batch size times gradient accumulation steps.
func (t TrainingConfig) EffectiveBatchSize() int {
	accum := t.GradientAccumulationSteps
	if accum < 1 {
		accum = 1
	}
	return t.PerDeviceTrainBatchSize * accum
}

// HasEvalSplit reports whether the run holds out an evaluation split.
func (d DataConfig) HasEvalSplit() bool {
	return d.TestSize > 0
}
