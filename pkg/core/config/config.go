// ============================================================================
// texunc - Uncertainty formatting for LaTeX
// ============================================================================
//
// Package:     config
// Description: Configuration file loading with defaults
// Created:     2026-10-03
// License:     MIT
// ============================================================================

package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/texunc/texunc/foundation/core/error"
	mdwlog "github.com/texunc/texunc/foundation/core/log"
	"github.com/texunc/texunc/internal/frame"
	"github.com/texunc/texunc/internal/tabular"
	"github.com/texunc/texunc/internal/uncertainty"
)

// EnvConfig names the environment variable holding the config file path.
const EnvConfig = "TEXUNC_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General       GeneralConfig        `toml:"general" yaml:"general"`
	Format        FormatConfig         `toml:"format" yaml:"format"`
	Table         TableConfig          `toml:"table" yaml:"table"`
	Substitutions []SubstitutionConfig `toml:"substitutions" yaml:"substitutions"`

	// Path is the file the configuration was read from, if any.
	Path string `toml:"-" yaml:"-"`
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// FormatConfig holds formatter options. Unset fields keep the formatter
// defaults, including the derived min_power and min_dp_no_error.
type FormatConfig struct {
	MaxPower     *int  `toml:"max_power" yaml:"max_power"`
	MinPower     *int  `toml:"min_power" yaml:"min_power"`
	MinDP        *int  `toml:"min_dp" yaml:"min_dp"`
	MinDPNoError *int  `toml:"min_dp_no_error" yaml:"min_dp_no_error"`
	ZeroDPInts   *bool `toml:"zero_dp_ints" yaml:"zero_dp_ints"`
}

// TableConfig holds table rendering settings
type TableConfig struct {
	ResultLevel  string `toml:"result_level" yaml:"result_level"`
	Caption      string `toml:"caption" yaml:"caption"`
	Label        string `toml:"label" yaml:"label"`
	StarTable    bool   `toml:"star_table" yaml:"star_table"`
	CaptionAbove *bool  `toml:"caption_above" yaml:"caption_above"`
	IndexColumns int    `toml:"index_columns" yaml:"index_columns"`
}

// SubstitutionConfig is one literal replacement applied to rendered tables
type SubstitutionConfig struct {
	From string `toml:"from" yaml:"from"`
	To   string `toml:"to" yaml:"to"`
}

// Default returns the configuration used when no file is found
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); err != nil {
		return nil, mdwerror.Wrap(err, "config file not found").
			WithCode(mdwerror.CodeNotFound).
			WithDetail("path", path)
	}

	var cfg Config
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = decodeTOML(path, &cfg)
	case ".yaml", ".yml":
		err = decodeYAML(path, &cfg)
	default:
		return nil, mdwerror.Newf("unsupported config format %q", filepath.Ext(path)).
			WithCode(mdwerror.CodeInvalidConfig).
			WithDetail("path", path)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeConfigError).
			WithDetail("path", path)
	}

	cfg.applyDefaults()
	cfg.Path = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func decodeTOML(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return mdwerror.Newf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func decodeYAML(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// LoadFromEnv loads the file named by TEXUNC_CONFIG, else the first
// default location that exists. Without any file it returns Default().
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfig); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// DefaultPaths lists the locations LoadFromEnv searches, in order
func DefaultPaths() []string {
	paths := []string{
		"./texunc.toml",
		"./texunc.yaml",
		"./texunc.yml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config/texunc/config.toml"))
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	if c.Table.ResultLevel == "" {
		c.Table.ResultLevel = tabular.DefaultResultLevel
	}
	if c.Table.Caption == "" {
		c.Table.Caption = tabular.DefaultCaption
	}
	if c.Table.Label == "" {
		c.Table.Label = tabular.DefaultLabel
	}
	if c.Table.CaptionAbove == nil {
		above := true
		c.Table.CaptionAbove = &above
	}
	if c.Table.IndexColumns == 0 {
		c.Table.IndexColumns = frame.DefaultIndexColumns
	}
}

// Validate checks option ranges and logging settings
func (c *Config) Validate() error {
	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid(err, "general.log_level")
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid(err, "general.log_format")
	}
	if c.Table.IndexColumns < 0 {
		return mdwerror.New("index_columns must not be negative").
			WithCode(mdwerror.CodeInvalidConfig).
			WithDetail("key", "table.index_columns")
	}
	if err := c.FormatOptions().Validate(); err != nil {
		return mdwerror.Wrap(err, "invalid [format] section").WithDetail("path", c.Path)
	}
	return nil
}

func invalid(err error, key string) error {
	return mdwerror.Wrap(err, "invalid configuration").
		WithCode(mdwerror.CodeInvalidConfig).
		WithDetail("key", key)
}

// FormatOptions converts the [format] section into formatter options
func (c *Config) FormatOptions() uncertainty.Options {
	var opts []uncertainty.Option
	f := c.Format
	if f.MaxPower != nil {
		opts = append(opts, uncertainty.WithMaxPower(*f.MaxPower))
	}
	if f.MinPower != nil {
		opts = append(opts, uncertainty.WithMinPower(*f.MinPower))
	}
	if f.MinDP != nil {
		opts = append(opts, uncertainty.WithMinDP(*f.MinDP))
	}
	if f.MinDPNoError != nil {
		opts = append(opts, uncertainty.WithMinDPNoError(*f.MinDPNoError))
	}
	if f.ZeroDPInts != nil {
		opts = append(opts, uncertainty.WithZeroDPInts(*f.ZeroDPInts))
	}
	return uncertainty.NewOptions(opts...)
}

// RenderOptions converts the [table] section and substitutions
func (c *Config) RenderOptions() tabular.RenderOptions {
	r := tabular.DefaultRenderOptions()
	r.ResultLevel = c.Table.ResultLevel
	r.Format = c.FormatOptions()
	r.Caption = c.Table.Caption
	r.Label = c.Table.Label
	r.StarTable = c.Table.StarTable
	if c.Table.CaptionAbove != nil {
		r.CaptionAbove = *c.Table.CaptionAbove
	}
	for _, s := range c.Substitutions {
		r.Substitutions = append(r.Substitutions, tabular.Substitution{Old: s.From, New: s.To})
	}
	return r
}
