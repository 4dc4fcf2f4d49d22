package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/coinbase/cb-mlkem-go/pkg/mlkem"
	"github.com/coinbase/cb-mlkem-go/pkg/mlkem/logging"
)

// fileConfig is the optional YAML configuration file.
//
//	level: 768
//	log:
//	  level: info
//	  format: json
type fileConfig struct {
	Level string    `yaml:"level"`
	Log   logConfig `yaml:"log"`
}

type logConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func defaultConfig() fileConfig {
	return fileConfig{
		Level: "768",
		Log:   logConfig{Level: "warn", Format: "text"},
	}
}

// loadConfig reads path on top of the defaults. Unknown keys are rejected so
// typos do not silently fall back to a default parameter set.
func loadConfig(path string) (fileConfig, error) {
	cfg := defaultConfig()
	absPath, err := securePath(path)
	if err != nil {
		return cfg, fmt.Errorf("secure path: %w", err)
	}
	data, err := os.ReadFile(absPath) // #nosec G304 -- absPath validated by securePath
	if err != nil {
		return cfg, fmt.Errorf("read file: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("unmarshal YAML: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c fileConfig) validate() error {
	if _, err := mlkem.ParseParameterSet(c.Level); err != nil {
		return fmt.Errorf("level: %w", err)
	}
	if _, err := parseLogLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format: unsupported format %q", c.Log.Format)
	}
	return nil
}

func parseLogLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, err
	}
	return lvl, nil
}

// newLogger builds the slog handler selected by cfg and wraps it in the
// library's logging facade.
func newLogger(cfg logConfig, w io.Writer) (logging.Logger, error) {
	lvl, err := parseLogLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler
	switch cfg.Format {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	case "text":
		h = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("unsupported log format %q", cfg.Format)
	}
	return logging.New(slog.New(h)), nil
}

// securePath validates that a file path doesn't escape the working directory.
// It guards --config only.
func securePath(path string) (string, error) {
	if path == "" {
		return "", errors.New("empty path")
	}
	clean := filepath.Clean(path)
	absPath, err := filepath.Abs(clean)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}
	base, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	rel, err := filepath.Rel(base, absPath)
	if err != nil {
		return "", fmt.Errorf("relative path: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("path %q escapes working directory", path)
	}
	return absPath, nil
}

// readFile loads a key or ciphertext named on the command line. Unlike the
// configuration file these may live anywhere the caller can read.
func readFile(path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("empty path")
	}
	data, err := os.ReadFile(filepath.Clean(path)) // #nosec G304 -- operator-supplied input file
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}
