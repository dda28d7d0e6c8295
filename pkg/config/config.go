// Package config loads the event-set configuration used to build dynamic
// registries. Defaults are merged first, then an optional events file in
// TOML or YAML, selected by extension.
package config

import (
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/calehb/evoke/pkg/errors"
	"github.com/calehb/evoke/pkg/events"
	"github.com/calehb/evoke/pkg/logging"
)

// Config describes a runtime event set
type Config struct {
	// Events is the fixed set of event names the registry is built with
	Events []string `koanf:"events"`
}

// defaults mirror the canonical demo event set
var defaults = map[string]interface{}{
	"events": []string{"foo", "bar", "baz"},
}

// Default returns the built-in configuration without reading any file
func Default() *Config {
	return &Config{Events: []string{"foo", "bar", "baz"}}
}

// Load reads the configuration from path, merged over the defaults. The
// parser is chosen by extension: .toml, .yaml or .yml.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load events file %s", path)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse events file %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().Str("path", path).Strs("events", cfg.Events).Msg("Loaded event set")
	return &cfg, nil
}

// Validate checks the configuration for an unusable event set
func (c *Config) Validate() error {
	if len(c.Events) == 0 {
		return errors.New(errors.ErrConfigValid, "events list cannot be empty")
	}
	for _, name := range c.Events {
		if name == "" {
			return errors.New(errors.ErrConfigValid, "event names cannot be empty")
		}
	}
	return nil
}

// Registry builds a dynamic registry over the configured event set.
// Duplicate names in the file surface as ErrDuplicateEvent.
func (c *Config) Registry() (*events.Dynamic, error) {
	return events.NewDynamic(c.Events...)
}

func parserFor(path string) (koanf.Parser, error) {
	switch filepath.Ext(path) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported events file format: %s", path)
	}
}
