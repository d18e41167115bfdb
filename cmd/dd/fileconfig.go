package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

const configEnv = "DD_CONFIG"

// FileConfig holds defaults read from a yaml file. Command line options
// take precedence over it.
type FileConfig struct {
	Sep           string   `yaml:"sep"`
	Delimiter     string   `yaml:"delimiter"`
	CommentMarker string   `yaml:"commentMarker"`
	Color         *bool    `yaml:"color"`
	Indent        *int     `yaml:"indent"`
	Debug         []string `yaml:"debug"`

	Notation struct {
		Digits   int    `yaml:"digits"`
		Exponent string `yaml:"exponent"`
		Decimal  string `yaml:"decimal"`
	} `yaml:"notation"`
}

func configPath(explicit string) (path string, required bool) {
	if explicit != "" {
		return explicit, true
	}
	if p := os.Getenv(configEnv); p != "" {
		return p, true
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(dir, "dd", "config.yaml"), false
}

// readConfig reads the config file at explicit, $DD_CONFIG or the user
// config directory, in that order. Only a missing default file is not an
// error.
func readConfig(explicit string) (*FileConfig, error) {
	path, required := configPath(explicit)
	if path == "" {
		return &FileConfig{}, nil
	}
	d, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return &FileConfig{}, nil
		}
		return nil, fmt.Errorf("could not read config: %w", err)
	}
	return parseConfig(d)
}

func parseConfig(d []byte) (*FileConfig, error) {
	fc := &FileConfig{}
	if err := yaml.UnmarshalWithOptions(d, fc, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return fc, nil
}
