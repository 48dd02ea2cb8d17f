// Package config loads combokit settings from defaults, an optional YAML file
// and COMBOKIT_ environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. COMBOKIT_SPLIT_PREFIX.
const EnvPrefix = "COMBOKIT"

// FileName is the config file name looked up when no explicit path is given.
const FileName = "combokit"

// Config holds all application configuration.
type Config struct {
	Debug            bool         `mapstructure:"debug"`
	OutputDir        string       `mapstructure:"output_dir" validate:"required"`
	RemoveDuplicates bool         `mapstructure:"remove_duplicates"`
	MaxFileSizeKB    int          `mapstructure:"max_file_size_kb" validate:"gte=0"`
	Exclude          []string     `mapstructure:"exclude"`
	Merge            MergeConfig  `mapstructure:"merge"`
	Dedupe           DedupeConfig `mapstructure:"dedupe"`
	Split            SplitConfig  `mapstructure:"split"`
	Sort             SortConfig   `mapstructure:"sort"`
}

// MergeConfig contains merge settings.
type MergeConfig struct {
	Output string `mapstructure:"output" validate:"required"`
}

// DedupeConfig contains dedupe settings.
type DedupeConfig struct {
	Output string `mapstructure:"output" validate:"required"`
}

// SplitConfig contains split settings.
type SplitConfig struct {
	LinesPerChunk int    `mapstructure:"lines_per_chunk" validate:"gt=0"`
	Prefix        string `mapstructure:"prefix" validate:"required,excludesall=/\\"`
}

// SortConfig contains sort settings. An empty prefix names files after the domain only.
type SortConfig struct {
	Prefix string `mapstructure:"prefix" validate:"excludesall=/\\"`
}

// defaults cover every key so environment overrides are always picked up.
var defaults = map[string]any{
	"debug":                 false,
	"output_dir":            "combokit_results",
	"remove_duplicates":     true,
	"max_file_size_kb":      0,
	"exclude":               []string{},
	"merge.output":          "combined_combos.txt",
	"dedupe.output":         "deduplicated_combos.txt",
	"split.lines_per_chunk": 1000,
	"split.prefix":          "combo",
	"sort.prefix":           "",
}

// Load reads configuration. An explicit path must exist; otherwise combokit.yaml
// is looked up in the working directory and $HOME/.config/combokit, and a missing
// file is not an error. Environment variables take precedence over the file.
func Load(path string) (*Config, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "combokit"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}
