package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML configuration.
//
// Decoding is strict: keys that do not correspond to a schema field are an
// error, so a typo like `learning_rte` fails at load time instead of
// silently training with the default.
func Parse(data []byte) (Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("empty configuration")
		}
		return Config{}, fmt.Errorf("failed to parse configuration: %w", err)
	}

	// A second document in the same file is almost certainly a mistake.
	if err := dec.Decode(new(struct{})); !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("configuration contains more than one YAML document")
	}

	return cfg, nil
}

// Marshal serializes a configuration to YAML.
//
// Marshal and Parse are inverses over the decoded values: for any valid
// configuration c, Parse(Marshal(c)) yields a structurally identical c.
// Comments and key order of the original file are not preserved.
func Marshal(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to serialize configuration: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Load reads and parses a configuration file.
//
// Example:
//
//	cfg, err := config.Load("conf/bart.yaml")
func Load(path string) (Config, error) {
	//nolint:gosec // Loading a config from a user-specified path is intentional.
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read configuration: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes a configuration file.
func Save(path string, cfg Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}
	return nil
}
