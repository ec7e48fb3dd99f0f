// Package config handles loading and saving application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultReturnPrompt is shown after an executed command exits.
const DefaultReturnPrompt = "Press 'ENTER' to return"

// Config represents the application configuration.
type Config struct {
	UI   UIConfig   `yaml:"ui"`
	Docs DocsConfig `yaml:"docs"`
	Exec ExecConfig `yaml:"exec"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	CommandPaneWidth int  `yaml:"command_pane_width"`
	ShowHints        bool `yaml:"show_hints"`
}

// DocsConfig controls how reference documentation is looked up.
type DocsConfig struct {
	// Command is run with the command name appended, e.g. "man -P cat ls".
	Command string `yaml:"command"`
}

// ExecConfig controls command execution.
type ExecConfig struct {
	ReturnPrompt string `yaml:"return_prompt,omitempty"`
	Notify       bool   `yaml:"notify"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			CommandPaneWidth: 60,
			ShowHints:        true,
		},
		Docs: DocsConfig{
			Command: "man -P cat",
		},
		Exec: ExecConfig{
			ReturnPrompt: DefaultReturnPrompt,
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "comcom")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the default config file.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration at path.
// If the file doesn't exist, returns a default configuration.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration to path.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate reports settings the UI cannot work with.
func (c *Config) Validate() error {
	if c.UI.CommandPaneWidth < 10 {
		return fmt.Errorf("ui.command_pane_width must be at least 10, got %d", c.UI.CommandPaneWidth)
	}
	if c.Docs.Command == "" {
		return errors.New("docs.command must not be empty")
	}
	return nil
}

// ReturnPrompt returns the prompt shown after execution, falling back to the default.
func (c *Config) ReturnPrompt() string {
	if c.Exec.ReturnPrompt == "" {
		return DefaultReturnPrompt
	}
	return c.Exec.ReturnPrompt
}
