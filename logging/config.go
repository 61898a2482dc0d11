// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/prelude/internal/buildmode"
	"github.com/spf13/afero"
)

// ColourMode selects whether the console sink writes ANSI colors.
type ColourMode string

const (
	// ColourAuto follows NO_COLOR, FORCE_COLOR and terminal detection.
	ColourAuto ColourMode = "auto"
	// ColourAlways always writes colors.
	ColourAlways ColourMode = "always"
	// ColourNever never writes colors.
	ColourNever ColourMode = "never"
)

var (
	// ErrReadConfig is returned when the log configuration file cannot be read.
	ErrReadConfig = errors.New("failed to read log config")
	// ErrParseConfig is returned when the log configuration file is not valid.
	ErrParseConfig = errors.New("failed to parse log config")
)

// executable is the seam used to derive the level environment variable name.
var executable = os.Executable

// Config describes the console logger installed by InitWith.
type Config struct {
	// Level is the threshold for records whose module has no override.
	Level slog.Level
	// Modules maps module paths to their own threshold. Debug builds only.
	Modules map[string]slog.Level
	// Colour selects color output. The zero value behaves like ColourAuto.
	Colour ColourMode
	// Writer is the sink destination, stderr when nil.
	Writer io.Writer
}

// DefaultConfig returns the configuration used by Init. Debug builds log at TRACE;
// release builds use LevelFromEnv.
func DefaultConfig() Config {
	cfg := Config{Colour: ColourAuto}

	if buildmode.Debug {
		cfg.Level = LevelTrace
	} else {
		cfg.Level = LevelFromEnv()
	}

	return cfg
}

type fileConfig struct {
	Level   string            `yaml:"level"`
	Colour  string            `yaml:"colour"`
	Modules map[string]string `yaml:"modules"`
}

// LoadConfig reads a YAML log configuration from path on fs.
// Fields missing from the file keep the values of DefaultConfig.
func LoadConfig(fs afero.Fs, path string) (Config, error) {
	cfg := DefaultConfig()

	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return cfg, errors.Join(ErrReadConfig, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return cfg, errors.Join(ErrParseConfig, fmt.Errorf("%s: %w", path, err))
	}

	if fc.Level != "" {
		if cfg.Level, err = ParseLevel(fc.Level); err != nil {
			return cfg, errors.Join(ErrParseConfig, err)
		}
	}

	switch mode := ColourMode(strings.ToLower(fc.Colour)); mode {
	case "":
	case ColourAuto, ColourAlways, ColourNever:
		cfg.Colour = mode
	default:
		return cfg, errors.Join(ErrParseConfig, fmt.Errorf("unknown colour mode %q", fc.Colour))
	}

	if len(fc.Modules) > 0 {
		cfg.Modules = make(map[string]slog.Level, len(fc.Modules))

		for module, name := range fc.Modules {
			l, err := ParseLevel(name)
			if err != nil {
				return cfg, errors.Join(ErrParseConfig, fmt.Errorf("module %s: %w", module, err))
			}

			cfg.Modules[module] = l
		}
	}

	return cfg, nil
}

// LevelEnvVar returns the name of the environment variable that sets the release-build
// level. It is derived from the executable name, e.g. "MYAPP_LOG_LEVEL" for "myapp".
func LevelEnvVar() string {
	exec, _ := executable()
	exec = filepath.Base(exec)

	if ext := filepath.Ext(exec); ext == ".exe" {
		exec = exec[:len(exec)-len(ext)]
	}

	exec = strings.ReplaceAll(exec, "-", "_")

	return strings.ToUpper(exec) + "_LOG_LEVEL"
}

// LevelFromEnv returns the level named by LevelEnvVar, or INFO when it is unset or invalid.
func LevelFromEnv() slog.Level {
	v := os.Getenv(LevelEnvVar())
	if v == "" {
		return slog.LevelInfo
	}

	l, err := ParseLevel(v)
	if err != nil {
		return slog.LevelInfo
	}

	return l
}
