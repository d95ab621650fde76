package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SearchConfigManager handles loading, validation and saving of search configurations
type SearchConfigManager struct {
	validator Validator
}

// NewSearchConfigManager creates a new search configuration manager
func NewSearchConfigManager() *SearchConfigManager {
	return &SearchConfigManager{
		validator: NewSearchValidator(),
	}
}

// LoadConfig loads defaults overlaid with the given file. An empty path
// returns the defaults. The result is not validated so that environment
// and flag overrides can still be applied.
func (m *SearchConfigManager) LoadConfig(configFile string) (*SearchConfig, error) {
	cfg := NewDefaultSearchConfig()

	if configFile != "" {
		if err := m.loadFromFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	return cfg, nil
}

// loadFromFile decodes JSON or YAML depending on the file extension
func (m *SearchConfigManager) loadFromFile(configFile string, cfg *SearchConfig) error {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return fmt.Errorf("could not read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(configFile)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("could not parse YAML config: %w", err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("could not parse JSON config: %w", err)
		}
	}

	return nil
}

// ValidateConfig validates a configuration
func (m *SearchConfigManager) ValidateConfig(cfg *SearchConfig) error {
	return m.validator.Validate(cfg)
}

// SaveConfig saves configuration to file, as YAML for .yaml/.yml paths and JSON otherwise
func (m *SearchConfigManager) SaveConfig(cfg *SearchConfig, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(cfg)
	default:
		data, err = json.MarshalIndent(cfg, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
