// Copyright (c) AttachKit Authors. All rights reserved.
// Licensed under the MIT License.

// Package configutil loads the optional psattach configuration file.
//
// The file is YAML, looked up as .psattach.yaml in the working directory
// unless an explicit path is given:
//
//	format: json
//	show_all: true
//	listing:
//	  command: /usr/bin/ps
//	  args: ["-ax", "-o", "pid=,ppid=,comm=cccccccccccccccccccc,command="]
//
// A missing file is not an error; defaults apply.
package configutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = ".psattach.yaml"

// ErrInvalidPath indicates a config path that is unsafe to read.
var ErrInvalidPath = errors.New("invalid config path")

// Config holds the CLI settings read from the config file. Zero values mean
// "use the built-in default".
type Config struct {
	// Format is the output format: "default" or "json".
	Format string `yaml:"format"`

	// ShowAll includes processes without debug flags in listings.
	ShowAll bool `yaml:"show_all"`

	// Listing overrides the platform process-listing command. Use with
	// care: the output must match the column layout of the platform
	// parser.
	Listing struct {
		Command string   `yaml:"command"`
		Args    []string `yaml:"args"`
	} `yaml:"listing"`
}

// Load reads the config file at path, or DefaultFileName when path is empty.
// A missing default file yields a zero Config; a missing explicit file is an
// error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	if err := validatePath(path); err != nil {
		return nil, err
	}

	// #nosec G304 -- path validated above
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &cfg, nil
}

// validatePath rejects paths with parent directory references, before and
// after cleaning, so a config path from an untrusted source cannot escape
// the directory it appears to name.
func validatePath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if strings.Contains(path, "..") {
		return fmt.Errorf("%w: path contains parent directory reference", ErrInvalidPath)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path: %w", ErrInvalidPath, err)
	}
	if strings.Contains(filepath.Clean(absPath), "..") {
		return fmt.Errorf("%w: cleaned path contains parent directory reference", ErrInvalidPath)
	}
	return nil
}
