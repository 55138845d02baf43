// Package config loads qrlabels defaults from a TOML file.
//
// The file holds pipeline options under their toml keys:
//
//	count = 20
//	repeat = 2
//	scale = 1.25
//	include_cut_lines = true
//	output = "~/labels"
//	name = "garage"
//	encoder = "rsc"
//
// Values from the file replace the built-in defaults; command-line
// arguments replace values from the file. Unknown keys are rejected so a
// typo does not silently fall back to a default.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/qrlabels/pkg/errors"
	"github.com/matzehuels/qrlabels/pkg/pipeline"
)

const (
	appName = "qrlabels"

	// FileName is the config file name inside the config directory.
	FileName = "config.toml"
)

// Dir returns the qrlabels config directory, following the XDG base
// directory convention: $XDG_CONFIG_HOME/qrlabels, else ~/.config/qrlabels.
func Dir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// DefaultPath returns the path of the default config file.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Load decodes the config file at path onto opts. Keys absent from the
// file leave the corresponding options untouched.
func Load(path string, opts *pipeline.Options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "read config %s", path)
	}
	return Decode(string(data), path, opts)
}

// Decode decodes TOML config data onto opts. The name is used in messages.
func Decode(data, name string, opts *pipeline.Options) error {
	md, err := toml.Decode(data, opts)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", name)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidInput, "config %s: unknown keys: %s", name, strings.Join(keys, ", "))
	}
	opts.Output = expandHome(opts.Output)
	return nil
}

// LoadDefault loads the default config file onto opts if it exists. It
// returns the path that was loaded, or "" when there is no config file.
func LoadDefault(opts *pipeline.Options) (string, error) {
	path, err := DefaultPath()
	if err != nil {
		return "", nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", nil
	}
	if err := Load(path, opts); err != nil {
		return "", err
	}
	return path, nil
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
