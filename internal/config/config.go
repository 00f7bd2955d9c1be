package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// configFile is the optional per-project defaults file, looked up in
// the working directory.
const configFile = "tabfile.yaml"

// Config holds library-wide default I/O options. Environment variables
// (TABFILE_*) take precedence over the config file; built-in defaults
// fill whatever remains.
type Config struct {
	// Separator is the default field separator for delimited text.
	Separator string `yaml:"separator" envconfig:"SEPARATOR"`

	// SheetName is the default sheet name for written workbooks.
	SheetName string `yaml:"sheet_name" envconfig:"SHEET_NAME"`

	// Orient is the default JSON orientation (lines or records).
	Orient string `yaml:"orient" envconfig:"ORIENT"`
}

var (
	defaults     Config
	defaultsOnce sync.Once
)

// Defaults returns the resolved library defaults, loading them on first
// use. Load failures fall back to the built-in defaults.
func Defaults() Config {
	defaultsOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			cfg = &Config{}
			cfg.applyBuiltins()
		}
		defaults = *cfg
	})
	return defaults
}

// Load loads defaults from environment variables and the optional
// config file, env taking precedence.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("TABFILE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if _, err := os.Stat(configFile); err == nil {
		fileCfg, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = merge(*fileCfg, cfg)
	}

	cfg.applyBuiltins()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// loadFromFile loads defaults from a YAML file.
func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// merge merges file config with env config (env takes precedence).
func merge(fileCfg, envCfg Config) Config {
	if envCfg.Separator == "" {
		envCfg.Separator = fileCfg.Separator
	}
	if envCfg.SheetName == "" {
		envCfg.SheetName = fileCfg.SheetName
	}
	if envCfg.Orient == "" {
		envCfg.Orient = fileCfg.Orient
	}
	return envCfg
}

// applyBuiltins fills any still-empty field with the built-in default.
func (c *Config) applyBuiltins() {
	if c.Separator == "" {
		c.Separator = "\t"
	}
	if c.SheetName == "" {
		c.SheetName = "new_sheet"
	}
	if c.Orient == "" {
		c.Orient = "lines"
	}
}

// validate checks loaded values.
func (c *Config) validate() error {
	if len([]rune(c.Separator)) != 1 {
		return fmt.Errorf("separator must be a single character, got %q", c.Separator)
	}
	if c.Orient != "lines" && c.Orient != "records" {
		return fmt.Errorf("orient must be lines or records, got %q", c.Orient)
	}
	return nil
}

// SeparatorRune returns the separator as a rune.
func (c Config) SeparatorRune() rune {
	return []rune(c.Separator)[0]
}
