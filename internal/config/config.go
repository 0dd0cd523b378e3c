// Package config loads and saves the application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Decks   DecksConfig   `mapstructure:"decks"`
	History HistoryConfig `mapstructure:"history"`
}

type DecksConfig struct {
	// LastPath remembers the most recently opened deck so that `study`
	// without an argument can reopen it.
	LastPath string `mapstructure:"last_path"`
	// ProgressFilename is the name of the progress JSON stored next to a deck.
	ProgressFilename string `mapstructure:"progress_filename" validate:"required"`
}

type HistoryConfig struct {
	// DatabasePath enables the SQLite review log when non-empty.
	DatabasePath string `mapstructure:"database_path"`
}

// DefaultPath returns the config file path under the user's home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("os.UserHomeDir() > %w", err)
	}
	return filepath.Join(home, ".config", "flashmd", "config.yaml"), nil
}

// Load reads the configuration, tolerating a missing file by falling back to
// defaults. An unreadable or invalid file is an error.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("$HOME/.config/flashmd")
		v.AddConfigPath(".")
	}

	v.SetDefault("decks.last_path", "")
	v.SetDefault("decks.progress_filename", ".flashmd_progress.json")
	v.SetDefault("history.database_path", "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("configuration file found but could not be read: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration values: %w", err)
	}

	return &cfg, nil
}

// Save writes the configuration back to configFile, or to the default path
// when configFile is empty, creating parent directories as needed.
func Save(configFile string, cfg *Config) error {
	if configFile == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return err
		}
		configFile = defaultPath
	}

	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(configFile), err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("decks.last_path", cfg.Decks.LastPath)
	v.Set("decks.progress_filename", cfg.Decks.ProgressFilename)
	v.Set("history.database_path", cfg.History.DatabasePath)

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("viper.WriteConfigAs(%s) > %w", configFile, err)
	}
	return nil
}
