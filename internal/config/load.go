package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/quayside-dev/stride/internal/messages"
)

// Load reads a stride.toml file and validates its shape.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigMissingFileFmt, path, err)
	}
	return Parse(data, path)
}

// Parse parses and validates config TOML data.
// data is the TOML content; source is used in error messages.
func Parse(data []byte, source string) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf(messages.ConfigUnrecognizedKeysFmt, source, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// decodeStrict re-decodes the TOML data with strict unknown-field rejection.
// This catches keys that toml.Unmarshal silently ignores (e.g. a misspelled
// step field that would otherwise make a step a silent no-op).
func decodeStrict(data []byte) error {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&cfg)
}

// validate checks workflow naming, not step contents; steps are validated
// when they are translated into executable form.
func (c *Config) validate() error {
	if len(c.Workflows) == 0 {
		return errors.New(messages.ConfigNoWorkflows)
	}
	seen := make(map[string]bool, len(c.Workflows))
	for i, wf := range c.Workflows {
		if wf.Name == "" {
			return fmt.Errorf(messages.ConfigUnnamedWorkflowFmt, i)
		}
		if seen[wf.Name] {
			return fmt.Errorf(messages.ConfigDuplicateWorkflowFmt, wf.Name)
		}
		seen[wf.Name] = true
		if len(wf.Steps) == 0 {
			return fmt.Errorf(messages.ConfigWorkflowNoStepsFmt, wf.Name)
		}
	}
	return nil
}
