// Package config loads the summa configuration from TOML or YAML files
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/summa/foundation/core/error"
	mdwlog "github.com/msto63/summa/foundation/core/log"
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Parser  ParserConfig  `toml:"parser" yaml:"parser"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
	REPL    REPLConfig    `toml:"repl" yaml:"repl"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name       string `toml:"name" yaml:"name"`
	LogLevel   string `toml:"log_level" yaml:"log_level"`
	LogFormat  string `toml:"log_format" yaml:"log_format"`
	Locale     string `toml:"locale" yaml:"locale"`
	LocalesDir string `toml:"locales_dir" yaml:"locales_dir"`
}

// ParserConfig holds settings of the parsing engine
type ParserConfig struct {
	MaxInputLength int      `toml:"max_input_length" yaml:"max_input_length"`
	SlowThreshold  Duration `toml:"slow_threshold" yaml:"slow_threshold"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	Mode   string `toml:"mode" yaml:"mode"`
	Prompt string `toml:"prompt" yaml:"prompt"`
	Color  bool   `toml:"color" yaml:"color"`
}

// REPLConfig holds settings of the interactive mode
type REPLConfig struct {
	HistorySize int `toml:"history_size" yaml:"history_size"`
}

// Output modes
const (
	ModeTree   = "tree"
	ModeTokens = "tokens"
	ModeJSON   = "json"
)

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration string from a YAML scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		code := mdwerror.CodeIOError
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return nil, mdwerror.Wrap(err, fmt.Sprintf("config file not found: %s", path)).
			WithCode(code).
			WithOperation("config.Load").
			WithDetail("file", path).
			WithDetail("reason", err.Error()).
			WithMessage("diagnostic.config", map[string]interface{}{"reason": "cannot read " + path})
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		_, err = toml.Decode(string(content), &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &cfg)
	default:
		return nil, mdwerror.Newf("unsupported config format: %s", ext).
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("file", path).
			WithDetail("reason", "unsupported format "+ext)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("file", path).
			WithDetail("reason", err.Error())
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration from the SUMMA_CONFIG environment
// variable or the default locations. Without any file the defaults are
// used. SUMMA_LOG_LEVEL and SUMMA_LOCALE override the loaded values.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv("SUMMA_CONFIG")
	if path == "" {
		path = findDefault()
	}

	cfg := Default()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}

func findDefault() string {
	candidates := []string{
		"./summa.toml",
		"./summa.yaml",
		"./configs/summa.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(home, ".config/summa/config.toml"),
			filepath.Join(home, ".config/summa/config.yaml"),
		)
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// ApplyEnv overrides fields from SUMMA_* environment variables
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv("SUMMA_LOG_LEVEL"); v != "" {
		c.General.LogLevel = v
	}
	if v := getenv("SUMMA_LOG_FORMAT"); v != "" {
		c.General.LogFormat = v
	}
	if v := getenv("SUMMA_LOCALE"); v != "" {
		c.General.Locale = v
	}
	if v := getenv("SUMMA_MAX_INPUT_LENGTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return mdwerror.Wrap(err, "invalid SUMMA_MAX_INPUT_LENGTH").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.ApplyEnv").
				WithDetail("reason", "SUMMA_MAX_INPUT_LENGTH must be an integer")
		}
		c.Parser.MaxInputLength = n
	}
	return c.Validate()
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.Name == "" {
		c.General.Name = "summa"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}
	if c.General.Locale == "" {
		c.General.Locale = "en"
	}

	if c.Parser.MaxInputLength == 0 {
		c.Parser.MaxInputLength = 4096
	}

	if c.Output.Mode == "" {
		c.Output.Mode = ModeTree
	}
	if c.Output.Prompt == "" {
		c.Output.Prompt = "> "
	}

	if c.REPL.HistorySize == 0 {
		c.REPL.HistorySize = 100
	}
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.General.LocalesDir = os.ExpandEnv(c.General.LocalesDir)
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	invalid := func(field, reason string) error {
		return mdwerror.Newf("invalid %s: %s", field, reason).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("field", field).
			WithDetail("reason", field+": "+reason)
	}

	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", fmt.Sprintf("unknown level %q", c.General.LogLevel))
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", fmt.Sprintf("unknown format %q", c.General.LogFormat))
	}

	if c.Parser.MaxInputLength < 0 {
		return invalid("parser.max_input_length", "must not be negative")
	}
	if c.Parser.SlowThreshold.Duration < 0 {
		return invalid("parser.slow_threshold", "must not be negative")
	}

	switch c.Output.Mode {
	case ModeTree, ModeTokens, ModeJSON:
	default:
		return invalid("output.mode", fmt.Sprintf("unknown mode %q", c.Output.Mode))
	}

	if c.REPL.HistorySize < 0 {
		return invalid("repl.history_size", "must not be negative")
	}

	return nil
}
