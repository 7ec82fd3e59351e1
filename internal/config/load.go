package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file Resolve looks for when no path is given.
const ConfigFileName = ".trivia.yml"

// ErrNotFound is returned by FindConfigPath when no config file exists.
var ErrNotFound = errors.New("config file not found")

// errMultipleDocuments rejects files holding more than one YAML document.
var errMultipleDocuments = errors.New("multiple YAML documents are not supported")

// Parse decodes a single YAML document, rejecting unknown keys. An empty
// document yields the zero Config.
func Parse(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	switch err := dec.Decode(&cfg); {
	case errors.Is(err, io.EOF):
		return Config{}, nil
	case err != nil:
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	var extra yaml.Node
	switch err := dec.Decode(&extra); {
	case err == nil:
		return Config{}, fmt.Errorf("parse config: %w", errMultipleDocuments)
	case !errors.Is(err, io.EOF):
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Load reads, parses, normalizes and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Resolve loads the explicit path when set, otherwise the nearest
// .trivia.yml above startDir, otherwise the defaults. It returns the path
// that was read, or "" for defaults.
func Resolve(explicit, startDir string) (Config, string, error) {
	path := explicit
	if path == "" {
		found, err := FindConfigPath(startDir)
		if errors.Is(err, ErrNotFound) {
			return Default(), "", nil
		}
		if err != nil {
			return Config{}, "", err
		}
		path = found
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, path, err
	}
	return cfg, path, nil
}

// FindConfigPath returns the nearest .trivia.yml in startDir or one of its
// parents. An empty startDir means the working directory.
func FindConfigPath(startDir string) (string, error) {
	if startDir == "" {
		startDir = "."
	}
	start, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}
	for dir := start; ; dir = filepath.Dir(dir) {
		candidate := filepath.Join(dir, ConfigFileName)
		info, err := os.Stat(candidate)
		switch {
		case err == nil && info.IsDir():
			return "", fmt.Errorf("config path %q is a directory", candidate)
		case err == nil:
			return candidate, nil
		case !errors.Is(err, fs.ErrNotExist):
			return "", fmt.Errorf("stat config path %q: %w", candidate, err)
		}
		if filepath.Dir(dir) == dir {
			return "", fmt.Errorf("%w: no %s in %s or its parents", ErrNotFound, ConfigFileName, start)
		}
	}
}
