// Package config loads the optional sor-reader TOML configuration file.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"sor-reader/logging"
	"sor-reader/sor"
)

type (
	Config struct {
		Output OutputConfig `toml:"output"`
		Log    LogConfig    `toml:"log"`
	}
	OutputConfig struct {
		Format string `toml:"format"`
		Indent int    `toml:"indent"`
		Debug  bool   `toml:"debug"`
	}
	LogConfig struct {
		Level  string `toml:"level"`
		Format string `toml:"format"`
	}
)

func Default() Config {
	return Config{
		Output: OutputConfig{
			Format: string(sor.FormatJSON),
			Indent: 2,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: string(logging.FormatText),
		},
	}
}

// Load reads path over the defaults. An empty path gives the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, `config.Load error: read "%s"`, path)
	}
	if err := Parse(string(data), &cfg); err != nil {
		return cfg, errors.Wrapf(err, `config.Load error: "%s"`, path)
	}
	return cfg, nil
}

// Parse decodes TOML into cfg, leaving keys the document does not set as
// they are, then validates the result.
func Parse(data string, cfg *Config) error {
	meta, err := toml.Decode(data, cfg)
	if err != nil {
		return errors.Wrap(err, "config.Parse error")
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return errors.Errorf("config.Parse error: unknown key %s", undecoded[0].String())
	}
	return cfg.Validate()
}

func (c Config) Validate() error {
	switch sor.Format(c.Output.Format) {
	case sor.FormatJSON, sor.FormatYAML:
	default:
		return errors.Errorf(`config error: output.format must be json or yaml, got "%s"`, c.Output.Format)
	}
	if c.Output.Indent < 0 || c.Output.Indent > 8 {
		return errors.Errorf("config error: output.indent must be within [0, 8], got %d", c.Output.Indent)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "config error: log.level")
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return errors.Wrap(err, "config error: log.format")
	}
	return nil
}

func (c Config) SOROptions() sor.Options {
	return sor.Options{
		Format: sor.Format(c.Output.Format),
		Indent: c.Output.Indent,
		Debug:  c.Output.Debug,
	}
}

// LoggingConfig assumes c has been validated.
func (c Config) LoggingConfig() logging.Config {
	cfg := logging.DefaultConfig()
	if level, err := logging.ParseLevel(c.Log.Level); err == nil {
		cfg.Level = level
	}
	if format, err := logging.ParseFormat(c.Log.Format); err == nil {
		cfg.Format = format
	}
	return cfg
}
