// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is looked up in the project directory when no path is given
const ConfigFileName = "nativebuild.yaml"

// Fetcher names accepted by Config.Fetcher
const (
	FetcherGit   = "git"
	FetcherGoGit = "go-git"
)

// Config holds nativebuild configuration
type Config struct {
	ProjectDir  string    `yaml:"project_dir"`
	GoBinary    string    `yaml:"go_binary"`
	GitBinary   string    `yaml:"git_binary"`
	Fetcher     string    `yaml:"fetcher"`
	NDK         NDKConfig `yaml:"ndk"`
	TargetsFile string    `yaml:"targets_file"`
	Targets     []string  `yaml:"targets"`
	Debug       bool      `yaml:"debug"`
}

// NDKConfig selects which NDK location strategies are tried
type NDKConfig struct {
	Strategies []string `yaml:"strategies"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		ProjectDir: ".",
		GoBinary:   "go",
		GitBinary:  "git",
		Fetcher:    FetcherGit,
		NDK: NDKConfig{
			Strategies: []string{"env-version"},
		},
	}
}

// LoadConfig loads configuration from file. An empty path means
// <projectDir>/nativebuild.yaml; a missing file yields the defaults.
func LoadConfig(path, projectDir string) (*Config, error) {
	if path == "" {
		if projectDir == "" {
			projectDir = "."
		}
		path = filepath.Join(projectDir, ConfigFileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			if projectDir != "" {
				cfg.ProjectDir = projectDir
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// A relative project_dir is relative to the config file
	if !filepath.IsAbs(cfg.ProjectDir) {
		cfg.ProjectDir = filepath.Join(filepath.Dir(path), cfg.ProjectDir)
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
