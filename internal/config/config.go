// Package config loads lambdatree settings from TOML or YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable that points at a config file.
const EnvVar = "LAMBDATREE_CONFIG"

// Config holds the complete application configuration
type Config struct {
	Log    LogConfig    `toml:"log" yaml:"log"`
	Parser ParserConfig `toml:"parser" yaml:"parser"`
	Output OutputConfig `toml:"output" yaml:"output"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level      string `toml:"level" yaml:"level"`
	Format     string `toml:"format" yaml:"format"`
	Timestamps bool   `toml:"timestamps" yaml:"timestamps"`
}

// ParserConfig holds parser settings
type ParserConfig struct {
	// EpsilonNodes is a pointer so an absent key can default to true.
	EpsilonNodes *bool `toml:"epsilon_nodes" yaml:"epsilon_nodes"`
}

// OutputConfig holds rendering settings
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"`
	Color  bool   `toml:"color" yaml:"color"`
}

var (
	logLevels     = []string{"debug", "info", "warn", "error"}
	logFormats    = []string{"text", "json", "logfmt"}
	outputFormats = []string{"text", "outline", "dot", "json", "yaml"}
)

// Default returns a configuration with every default applied.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", path)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by LAMBDATREE_CONFIG, falling back to
// the default locations and finally to Default().
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}
	for _, p := range defaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

func defaultPaths() []string {
	paths := []string{"./lambdatree.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "lambdatree", "config.toml"))
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Parser.EpsilonNodes == nil {
		on := true
		c.Parser.EpsilonNodes = &on
	}
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
}

// Validate reports the first setting outside its allowed values.
func (c *Config) Validate() error {
	if err := oneOf("log.level", c.Log.Level, logLevels); err != nil {
		return err
	}
	if err := oneOf("log.format", c.Log.Format, logFormats); err != nil {
		return err
	}
	return oneOf("output.format", c.Output.Format, outputFormats)
}

// Epsilon reports whether ε leaves should be added to parse trees.
func (c *Config) Epsilon() bool {
	return c.Parser.EpsilonNodes == nil || *c.Parser.EpsilonNodes
}

func oneOf(key, value string, allowed []string) error {
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return nil
		}
	}
	return fmt.Errorf("invalid %s %q (want one of %s)", key, value, strings.Join(allowed, ", "))
}
