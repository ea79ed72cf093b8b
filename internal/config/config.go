package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Config represents the git-auto-rebase configuration
type Config struct {
	Version  string   `yaml:"version"`
	Defaults Defaults `yaml:"defaults,omitempty"`
	Push     Push     `yaml:"push,omitempty"`
	Log      Log      `yaml:"log,omitempty"`
}

// Defaults represents repository level defaults
type Defaults struct {
	MainBranch string `yaml:"main_branch,omitempty"`
	Remote     string `yaml:"remote,omitempty"`
}

// Push represents push behaviour
type Push struct {
	ConfirmForcePush bool `yaml:"confirm_force_push,omitempty"`
}

// Log represents diagnostic logging settings
type Log struct {
	Level string `yaml:"level,omitempty"`
}

const (
	ConfigFileName    = ".git-auto-rebase.yml"
	CurrentVersion    = "1.0"
	DefaultMainBranch = "main"
	DefaultRemote     = "origin"
	DefaultLogLevel   = "info"
)

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Defaults: Defaults{
			MainBranch: DefaultMainBranch,
			Remote:     DefaultRemote,
		},
		Log: Log{Level: DefaultLogLevel},
	}
}

// LoadConfig loads configuration from .git-auto-rebase.yml in the repository root
func LoadConfig(repoRoot string) (*Config, error) {
	configPath := filepath.Join(repoRoot, ConfigFileName)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate fills in defaults and validates the configuration
func (c *Config) Validate() error {
	if c.Version == "" {
		c.Version = CurrentVersion
	}
	if c.Defaults.MainBranch == "" {
		c.Defaults.MainBranch = DefaultMainBranch
	}
	if c.Defaults.Remote == "" {
		c.Defaults.Remote = DefaultRemote
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}

	if err := validateRefName("main_branch", c.Defaults.MainBranch); err != nil {
		return err
	}
	if err := validateRefName("remote", c.Defaults.Remote); err != nil {
		return err
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level '%s', must be one of debug, info, warn, error", c.Log.Level)
	}

	return nil
}

// validateRefName rejects names git would read as an option or split apart
func validateRefName(field, value string) error {
	if strings.HasPrefix(value, "-") {
		return fmt.Errorf("%s '%s' must not start with '-'", field, value)
	}
	if strings.ContainsAny(value, " \t\n") {
		return fmt.Errorf("%s '%s' must not contain whitespace", field, value)
	}
	if strings.Contains(value, "..") {
		return fmt.Errorf("%s '%s' must not contain '..'", field, value)
	}
	return nil
}

// MainBranch returns the protected integration branch
func (c *Config) MainBranch() string {
	return c.Defaults.MainBranch
}

// Remote returns the remote pulled from when refreshing the main branch
func (c *Config) Remote() string {
	return c.Defaults.Remote
}
