package config

import (
	"os"
	"path/filepath"

	gotoml "github.com/pelletier/go-toml/v2"
	goyaml "gopkg.in/yaml.v3"

	"github.com/calehb/evoke/pkg/errors"
)

type sampleConfig struct {
	Events []string `toml:"events" yaml:"events"`
}

// WriteSample writes a starter events file at path, in the format implied by
// its extension (.toml, .yaml or .yml). An existing file is never overwritten.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Newf(errors.ErrInvalidInput, "refusing to overwrite existing file %s", path)
	}

	sample := sampleConfig{Events: Default().Events}

	var (
		data []byte
		err  error
	)
	switch filepath.Ext(path) {
	case ".toml":
		data, err = gotoml.Marshal(sample)
	case ".yaml", ".yml":
		data, err = goyaml.Marshal(sample)
	default:
		return errors.Newf(errors.ErrInvalidInput, "unsupported events file format: %s", path)
	}
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to marshal sample events file")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to write %s", path)
	}
	return nil
}
