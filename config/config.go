// Package config loads and persists the application's YAML configuration
// file via viper. The file lives in the user config directory and is
// created with defaults on first run.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds user settings for the notes browser.
type Config struct {
	// RootDir is the notes directory shown in the tree.
	RootDir string `mapstructure:"root_dir"`
	// Editor is the external editor command.
	Editor string `mapstructure:"editor"`
	// Ignore holds doublestar glob patterns, relative to RootDir, that are
	// hidden from the tree.
	Ignore []string `mapstructure:"ignore"`

	GitEnabled  bool   `mapstructure:"git_enabled"`
	GitRemote   string `mapstructure:"git_remote"`
	GitUsername string `mapstructure:"git_username"`
	GitEmail    string `mapstructure:"git_email"`
}

// DefaultPath returns the standard config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "notes", "config.yaml"), nil
}

// Load reads the config at path, writing one with defaults on first run.
// Settings can be overridden with NOTES_* environment variables. The notes
// root directory is created if missing.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("notes")
	v.AutomaticEnv()

	if err := setDefaults(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create config dir: %w", err)
		}
		if err := v.WriteConfigAs(path); err != nil {
			return nil, fmt.Errorf("write default config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := os.MkdirAll(cfg.RootDir, 0o755); err != nil {
		return nil, fmt.Errorf("create notes dir: %w", err)
	}
	return &cfg, nil
}

// Save writes the current settings back to path.
func (c *Config) Save(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.Set("root_dir", c.RootDir)
	v.Set("editor", c.Editor)
	v.Set("ignore", c.Ignore)
	v.Set("git_enabled", c.GitEnabled)
	v.Set("git_remote", c.GitRemote)
	v.Set("git_username", c.GitUsername)
	v.Set("git_email", c.GitEmail)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home dir: %w", err)
	}
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vim"
	}
	v.SetDefault("root_dir", filepath.Join(home, "notes"))
	v.SetDefault("editor", editor)
	v.SetDefault("ignore", []string{})
	v.SetDefault("git_enabled", false)
	v.SetDefault("git_remote", "")
	v.SetDefault("git_username", "")
	v.SetDefault("git_email", "")
	return nil
}
