package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/myshell/internal/core/domain/settings"
	"github.com/AntonioJCosta/myshell/internal/core/ports"
	"gopkg.in/yaml.v3"
)

const (
	configDirName  = "myshell"
	configFileName = "config.yaml"
)

// YAMLProvider implements the SettingsProvider interface
// by reading settings from a YAML file.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// filePath is the path to the YAML settings file.
func NewYAMLProvider(filePath string) (ports.SettingsProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("YAML file path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/myshell/config.yaml or its
// platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, configDirName, configFileName), nil
}

// GetSettings reads the configured YAML file on top of settings.Default.
// Keys absent from the file keep their default. A missing or empty file
// yields the defaults and no error.
func (p *YAMLProvider) GetSettings() (settings.Settings, error) {
	cfg := settings.Default()

	yamlFile, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return settings.Settings{}, fmt.Errorf("failed to read settings file %s: %w", p.filePath, err)
	}

	if len(yamlFile) == 0 {
		return cfg, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(yamlFile))
	decoder.KnownFields(true)

	if err := decoder.Decode(&cfg); err != nil {
		// A file holding only comments decodes to io.EOF.
		if errors.Is(err, io.EOF) {
			return settings.Default(), nil
		}
		return settings.Settings{}, fmt.Errorf("failed to unmarshal settings from %s: %w", p.filePath, err)
	}

	if cfg.MaxLineLength < 0 || cfg.MaxTokens < 0 {
		return settings.Settings{}, fmt.Errorf("invalid settings in %s: limits cannot be negative", p.filePath)
	}

	return cfg, nil
}
