package config

import "fmt"

// ModelType identifies the architecture family a configuration targets.
type ModelType string

// Supported architecture families.
const (
	ModelBERTCased ModelType = "bert-cased"
	ModelGPT2      ModelType = "gpt2"
	ModelRoBERTa   ModelType = "roberta"
	ModelALBERT    ModelType = "albert"
	ModelBART      ModelType = "bart"
	ModelT5        ModelType = "t5"
	ModelUL2       ModelType = "ul2"
)

// ModelTypes lists every supported architecture family, in the order the
// toolkit ships predefined configurations for them.
func ModelTypes() []ModelType {
	return []ModelType{
		ModelBERTCased,
		ModelGPT2,
		ModelRoBERTa,
		ModelALBERT,
		ModelBART,
		ModelT5,
		ModelUL2,
	}
}

// Architecture shape, derived from the model type.

// HasEncoder reports whether the architecture has an encoder stack.
func (m ModelType) HasEncoder() bool {
	return m != ModelGPT2
}

// HasDecoder reports whether the architecture has a decoder stack.
func (m ModelType) HasDecoder() bool {
	switch m {
	case ModelGPT2, ModelBART, ModelT5, ModelUL2:
		return true
	default:
		return false
	}
}

// IsDenoising reports whether pretraining corrupts spans of input tokens and
// therefore reads the collator's span-masking parameters.
func (m ModelType) IsDenoising() bool {
	switch m {
	case ModelBART, ModelT5, ModelUL2:
		return true
	default:
		return false
	}
}

// Valid reports whether m names a supported architecture family.
func (m ModelType) Valid() bool {
	switch m {
	case ModelBERTCased, ModelGPT2, ModelRoBERTa, ModelALBERT, ModelBART, ModelT5, ModelUL2:
		return true
	default:
		return false
	}
}

// Default returns the predefined configuration for a model type.
//
// The returned configuration is a complete, valid starting point with the
// base-size dimensions commonly used for the architecture. Callers edit the
// data and training sections for their run and leave the model section alone
// unless they know what they are doing.
//
// Example:
//
//	cfg, err := config.Default(config.ModelBART)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfg.Data.DataDir = "datasets/my-corpus"
//	err = config.Save("conf/bart.yaml", cfg)
func Default(modelType ModelType) (Config, error) {
	if !modelType.Valid() {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownModelType, modelType)
	}

	cfg := Config{
		Model:    defaultModel(modelType),
		Data:     DataConfig{DataDir: fmt.Sprintf("datasets/%s", modelType), TestSize: 0.01},
		Collator: defaultCollator(modelType),
		Training: defaultTraining(modelType),
	}
	return cfg, nil
}

func defaultModel(modelType ModelType) ModelConfig {
	m := ModelConfig{
		ModelType:             modelType,
		DModel:                768,
		Dropout:               0.1,
		AttentionDropout:      0.0,
		ActivationDropout:     0.0,
		ClassifierDropout:     0.0,
		MaxPositionEmbeddings: 512,
	}

	if modelType.HasEncoder() {
		m.EncoderLayers = 12
		m.EncoderAttentionHeads = 12
		m.EncoderFFNDim = 3072
	}
	if modelType.HasDecoder() {
		m.DecoderLayers = 12
		m.DecoderAttentionHeads = 12
		m.DecoderFFNDim = 3072
	}

	switch modelType {
	case ModelBERTCased, ModelRoBERTa:
		m.VocabSize = 32000
	case ModelALBERT:
		m.VocabSize = 32000
		// ALBERT shares parameters across layers; dimensions stay base-size.
	case ModelGPT2:
		m.VocabSize = 51200
		m.MaxPositionEmbeddings = 1024
	case ModelBART:
		m.VocabSize = 51201
		m.EncoderLayers = 6
		m.DecoderLayers = 6
		m.MaxPositionEmbeddings = 1024
	case ModelT5, ModelUL2:
		m.VocabSize = 32128
		m.EncoderFFNDim = 2048
		m.DecoderFFNDim = 2048
	}
	return m
}

func defaultCollator(modelType ModelType) CollatorConfig {
	c := CollatorConfig{
		MLMProbability: 0.15,
		MaxSeqLength:   512,
	}
	switch modelType {
	case ModelBART:
		// BART corrupts 30% of tokens in Poisson(3) spans.
		c.MLMProbability = 0.3
		c.PoissonLambda = 3.0
	case ModelT5, ModelUL2:
		c.PoissonLambda = 3.0
	case ModelGPT2:
		// Causal LM: no masking at all.
		c.MLMProbability = 0
	}
	return c
}

func defaultTraining(modelType ModelType) TrainingConfig {
	return TrainingConfig{
		OutputDir:                 fmt.Sprintf("checkpoints/%s", modelType),
		PerDeviceTrainBatchSize:   8,
		PerDeviceEvalBatchSize:    8,
		GradientAccumulationSteps: 1,
		LearningRate:              1e-4,
		WeightDecay:               0.01,
		AdamBeta1:                 0.9,
		AdamBeta2:                 0.999,
		AdamEpsilon:               1e-8,
		MaxGradNorm:               1.0,
		MaxSteps:                  1_000_000,
		WarmupSteps:               10_000,
		LoggingSteps:              100,
		EvalSteps:                 10_000,
		SaveSteps:                 10_000,
		SaveTotalLimit:            3,
		Seed:                      42,
		FP16:                      true,
	}
}
