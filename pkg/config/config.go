// Package config loads cleaning settings from an optional YAML file and
// DSCLEAN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/viper"

	"github.com/Ikenna1414/DS-Midterm-Project/pkg/dataprep"
)

// TagsConfig controls tag counting and encoding.
type TagsConfig struct {
	Column   string `mapstructure:"column" yaml:"column"`
	Prefix   string `mapstructure:"prefix" yaml:"prefix"`
	MinCount int    `mapstructure:"min_count" yaml:"min_count"`
	Strict   bool   `mapstructure:"strict" yaml:"strict"`
	Encode   bool   `mapstructure:"encode" yaml:"encode"`
}

// Options converts the section to dataprep options.
func (c TagsConfig) Options() dataprep.TagOptions {
	return dataprep.TagOptions{
		Column:   c.Column,
		Prefix:   c.Prefix,
		MinCount: c.MinCount,
		Strict:   c.Strict,
	}
}

// CleanConfig lists the collaborators the clean command runs.
type CleanConfig struct {
	DropColumns     []string `mapstructure:"drop_columns" yaml:"drop_columns"`
	DropNullColumns bool     `mapstructure:"drop_null_columns" yaml:"drop_null_columns"`
	MeanColumns     []string `mapstructure:"mean_columns" yaml:"mean_columns"`
}

// IOConfig controls how tag lists are read from and written to CSV.
type IOConfig struct {
	TagDelimiter string `mapstructure:"tag_delimiter" yaml:"tag_delimiter"`
}

// LogConfig sets the log level.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// Config wraps the entire configuration.
type Config struct {
	Tags  TagsConfig  `mapstructure:"tags" yaml:"tags"`
	Clean CleanConfig `mapstructure:"clean" yaml:"clean"`
	IO    IOConfig    `mapstructure:"io" yaml:"io"`
	Log   LogConfig   `mapstructure:"log" yaml:"log"`
}

// Validate checks the values that would otherwise fail deep inside a run.
func (c *Config) Validate() error {
	if c.Tags.Column == "" {
		return errors.New("tags.column is required")
	}
	if c.Tags.Prefix == "" {
		return errors.New("tags.prefix is required")
	}
	if c.Tags.MinCount < 0 {
		return fmt.Errorf("tags.min_count must be non-negative, got %d", c.Tags.MinCount)
	}
	if c.IO.TagDelimiter == "" {
		return errors.New("io.tag_delimiter is required")
	}
	if slices.Contains(c.Clean.DropColumns, c.Tags.Column) && c.Tags.Encode {
		return fmt.Errorf("clean.drop_columns removes %q before tags can be encoded", c.Tags.Column)
	}
	return nil
}

var (
	defaults = map[string]any{
		"tags.column":             "tags",
		"tags.prefix":             "tag_",
		"tags.min_count":          1,
		"tags.strict":             false,
		"tags.encode":             true,
		"clean.drop_columns":      []string{},
		"clean.drop_null_columns": true,
		"clean.mean_columns":      []string{},
		"io.tag_delimiter":        "|",
		"log.level":               "info",
	}

	// envBindings maps config keys to the environment variables that can
	// set them.
	envBindings = map[string]string{
		"tags.column":             "DSCLEAN_TAGS_COLUMN",
		"tags.prefix":             "DSCLEAN_TAGS_PREFIX",
		"tags.min_count":          "DSCLEAN_TAGS_MIN_COUNT",
		"tags.strict":             "DSCLEAN_TAGS_STRICT",
		"tags.encode":             "DSCLEAN_TAGS_ENCODE",
		"clean.drop_columns":      "DSCLEAN_CLEAN_DROP_COLUMNS",
		"clean.drop_null_columns": "DSCLEAN_CLEAN_DROP_NULL_COLUMNS",
		"clean.mean_columns":      "DSCLEAN_CLEAN_MEAN_COLUMNS",
		"io.tag_delimiter":        "DSCLEAN_IO_TAG_DELIMITER",
		"log.level":               "DSCLEAN_LOG_LEVEL",
	}
)

// Default returns the configuration used when no file or env is present.
func Default() *Config {
	cfg, err := unmarshal(newViper())
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads the config file at filePath, then applies environment
// overrides. An empty filePath uses defaults and env only; a non-empty
// one must name a readable file.
func Load(filePath string) (*Config, error) {
	v := newViper()
	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	if filePath != "" {
		v.SetConfigFile(filePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", filePath, err)
		}
	}

	cfg, err := unmarshal(v)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// bindEnvs binds the environment variables to the viper instance.
func bindEnvs(v *viper.Viper) error {
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return err
		}
	}
	return nil
}
