package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bartYAML = `model:
  model_type: bart
  vocab_size: 51201
  d_model: 768
  encoder_layers: 6
  decoder_layers: 6
  encoder_attention_heads: 12
  decoder_attention_heads: 12
  encoder_ffn_dim: 3072
  decoder_ffn_dim: 3072
  dropout: 0.1
  attention_dropout: 0.0
  activation_dropout: 0.0
  classifier_dropout: 0.0
  max_position_embeddings: 1024
data:
  data_dir: datasets/bart
  test_size: 0.01
collator:
  mlm_probability: 0.3
  poisson_lambda: 3.0
  max_seq_length: 512
training:
  output_dir: checkpoints/bart
  overwrite_output_dir: false
  per_device_train_batch_size: 8
  per_device_eval_batch_size: 8
  gradient_accumulation_steps: 4
  learning_rate: 0.0001
  weight_decay: 0.01
  adam_beta1: 0.9
  adam_beta2: 0.999
  adam_epsilon: 1.0e-08
  max_grad_norm: 1.0
  max_steps: 1000000
  warmup_steps: 10000
  logging_steps: 100
  eval_steps: 10000
  save_steps: 10000
  seed: 42
  fp16: true
`

func TestParse_BART(t *testing.T) {
	cfg, err := Parse([]byte(bartYAML))
	require.NoError(t, err)

	assert.Equal(t, ModelBART, cfg.Model.ModelType)
	assert.Equal(t, 51201, cfg.Model.VocabSize)
	assert.Equal(t, 768, cfg.Model.DModel)
	assert.Equal(t, 6, cfg.Model.EncoderLayers)
	assert.Equal(t, 12, cfg.Model.DecoderAttentionHeads)
	assert.InDelta(t, 0.1, cfg.Model.Dropout, 1e-12)

	assert.Equal(t, "datasets/bart", cfg.Data.DataDir)
	assert.InDelta(t, 0.01, cfg.Data.TestSize, 1e-12)
	assert.True(t, cfg.Data.HasEvalSplit())

	assert.InDelta(t, 0.3, cfg.Collator.MLMProbability, 1e-12)
	assert.InDelta(t, 3.0, cfg.Collator.PoissonLambda, 1e-12)

	assert.InDelta(t, 1e-4, cfg.Training.LearningRate, 1e-15)
	assert.Equal(t, 1_000_000, cfg.Training.MaxSteps)
	assert.True(t, cfg.Training.FP16)
	assert.Equal(t, 32, cfg.Training.EffectiveBatchSize())

	require.NoError(t, cfg.Validate())
}

func TestParse_UnknownKeyRejected(t *testing.T) {
	bad := `model:
  model_type: bart
  vocab_size: 1000
  learning_rte: 0.001
`
	_, err := Parse([]byte(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "learning_rte")
}

func TestParse_UnknownSectionRejected(t *testing.T) {
	_, err := Parse([]byte(bartYAML + "optimizer:\n  name: adam\n"))
	require.Error(t, err)
}

func TestValidate_MissingSection(t *testing.T) {
	// A file without a training section decodes, but its zero values fail
	// validation.
	cfg, err := Parse([]byte("model:\n  model_type: bart\ndata:\n  data_dir: d\ncollator:\n  mlm_probability: 0.3\n"))
	require.NoError(t, err)
	require.Error(t, cfg.Validate())
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse([]byte(""))
	require.Error(t, err)
}

func TestParse_MultipleDocuments(t *testing.T) {
	_, err := Parse([]byte(bartYAML + "---\nmodel:\n  model_type: t5\n"))
	require.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	cfg, err := Parse([]byte(bartYAML))
	require.NoError(t, err)

	data, err := Marshal(cfg)
	require.NoError(t, err)

	reparsed, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, reparsed)

	// Serializing again must be stable as well.
	again, err := Marshal(reparsed)
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestRoundTrip_AllDefaults(t *testing.T) {
	for _, mt := range ModelTypes() {
		cfg, err := Default(mt)
		require.NoError(t, err, "model type %s", mt)

		data, err := Marshal(cfg)
		require.NoError(t, err)

		reparsed, err := Parse(data)
		require.NoError(t, err)
		assert.Equal(t, cfg, reparsed, "round-trip mismatch for %s", mt)
	}
}

func TestLoadSave(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bart.yaml")
	require.NoError(t, os.WriteFile(path, []byte(bartYAML), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	outPath := filepath.Join(tmpDir, "out.yaml")
	require.NoError(t, Save(outPath, cfg))

	reloaded, err := Load(outPath)
	require.NoError(t, err)
	assert.Equal(t, cfg, reloaded)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestMarshal_OmitsZeroTestSize(t *testing.T) {
	cfg, err := Default(ModelBART)
	require.NoError(t, err)
	cfg.Data.TestSize = 0

	data, err := Marshal(cfg)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "test_size")
}

func TestHeadDims(t *testing.T) {
	cfg, err := Default(ModelBART)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Model.EncoderHeadDim())
	assert.Equal(t, 64, cfg.Model.DecoderHeadDim())

	gpt2, err := Default(ModelGPT2)
	require.NoError(t, err)
	assert.Equal(t, 0, gpt2.Model.EncoderHeadDim())
	assert.Equal(t, 64, gpt2.Model.DecoderHeadDim())
}
