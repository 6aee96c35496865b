// Copyright 2026 LASSL Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package config provides the pretraining run configuration: schema,
// YAML load/save, validation, and predefined per-architecture defaults.
//
// Example usage:
//
//	import "github.com/DaehanKim/lassl/config"
//
//	cfg, err := config.Load("conf/bart.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Model.DModel, cfg.Training.LearningRate)
package config

import (
	"github.com/DaehanKim/lassl/internal/config"
)

// Config is a complete pretraining run configuration.
type Config = config.Config

// Configuration sections.
type (
	// ModelConfig holds transformer architecture hyperparameters.
	ModelConfig = config.ModelConfig
	// DataConfig points the run at a serialized corpus directory.
	DataConfig = config.DataConfig
	// CollatorConfig holds denoising data-collation parameters.
	CollatorConfig = config.CollatorConfig
	// TrainingConfig holds optimizer, scheduler, and checkpointing settings.
	TrainingConfig = config.TrainingConfig
)

// ModelType identifies the architecture family a configuration targets.
type ModelType = config.ModelType

// Supported architecture families.
const (
	ModelBERTCased = config.ModelBERTCased
	ModelGPT2      = config.ModelGPT2
	ModelRoBERTa   = config.ModelRoBERTa
	ModelALBERT    = config.ModelALBERT
	ModelBART      = config.ModelBART
	ModelT5        = config.ModelT5
	ModelUL2       = config.ModelUL2
)

// ValidationError describes an out-of-range or inconsistent field.
type ValidationError = config.ValidationError

// Common errors.
var (
	ErrUnknownModelType = config.ErrUnknownModelType
	ErrMissingDataDir   = config.ErrMissingDataDir
	ErrDataDirNotFound  = config.ErrDataDirNotFound
)

// ModelTypes lists every supported architecture family.
func ModelTypes() []ModelType {
	return config.ModelTypes()
}

// Default returns the predefined configuration for a model type.
//
// Example:
//
//	cfg, err := config.Default(config.ModelBART)
//	cfg.Data.DataDir = "datasets/my-corpus"
//	err = config.Save("conf/bart.yaml", cfg)
func Default(modelType ModelType) (Config, error) {
	return config.Default(modelType)
}

// Load reads and parses a configuration file.
func Load(path string) (Config, error) {
	return config.Load(path)
}

// Parse decodes a YAML configuration.
func Parse(data []byte) (Config, error) {
	return config.Parse(data)
}

// Marshal serializes a configuration to YAML.
func Marshal(cfg Config) ([]byte, error) {
	return config.Marshal(cfg)
}

// Save writes a configuration file.
func Save(path string, cfg Config) error {
	return config.Save(path, cfg)
}
