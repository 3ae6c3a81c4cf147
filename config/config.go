// Package config loads pptfield settings from TOML or YAML files.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/pptfields/errors"
)

// Color modes for terminal output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds every tunable of the pptfield tool.
type Config struct {
	Log     LogConfig    `toml:"log" yaml:"log"`
	Output  OutputConfig `toml:"output" yaml:"output"`
	Scan    ScanConfig   `toml:"scan" yaml:"scan"`
	Workers int          `toml:"workers" yaml:"workers"` // 0 means GOMAXPROCS
}

type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

type ScanConfig struct {
	MaxDepth    int  `toml:"max_depth" yaml:"max_depth"`
	SkipUnknown bool `toml:"skip_unknown" yaml:"skip_unknown"`
}

type OutputConfig struct {
	Color string `toml:"color" yaml:"color"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: "info", Format: FormatConsole},
		Output: OutputConfig{Color: ColorAuto},
		Scan:   ScanConfig{MaxDepth: 16, SkipUnknown: true},
	}
}

// Load reads path, picking the decoder from its extension (.toml, .yaml or
// .yml). Keys absent from the file keep their defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Load("read config", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return Parse(data, "toml")
	case ".yaml", ".yml":
		return Parse(data, "yaml")
	default:
		return Config{}, errors.InvalidInput(errors.PhaseLoad, fmt.Sprintf("unsupported config extension %q", ext))
	}
}

// Parse decodes data in the given format ("toml" or "yaml") over the
// defaults and validates the result. Unknown keys are rejected.
func Parse(data []byte, format string) (Config, error) {
	cfg := Default()
	switch format {
	case "toml":
		meta, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Config{}, errors.Load("parse toml", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return Config{}, errors.InvalidInput(errors.PhaseLoad, fmt.Sprintf("unknown key %q", undecoded[0].String()))
		}
	case "yaml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && err != io.EOF {
			return Config{}, errors.Load("parse yaml", err)
		}
	default:
		return Config{}, errors.InvalidInput(errors.PhaseLoad, fmt.Sprintf("unknown config format %q", format))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and enumerated settings.
func (c Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return errors.InvalidInput(errors.PhaseLoad, fmt.Sprintf("log.level: %v", err))
	}
	switch c.Log.Format {
	case FormatConsole, FormatJSON:
	default:
		return errors.InvalidInput(errors.PhaseLoad, fmt.Sprintf("log.format: %q is not console or json", c.Log.Format))
	}
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.InvalidInput(errors.PhaseLoad, fmt.Sprintf("output.color: %q is not auto, always or never", c.Output.Color))
	}
	if c.Scan.MaxDepth < 1 {
		return errors.InvalidInput(errors.PhaseLoad, fmt.Sprintf("scan.max_depth: %d is below 1", c.Scan.MaxDepth))
	}
	if c.Workers < 0 {
		return errors.InvalidInput(errors.PhaseLoad, fmt.Sprintf("workers: %d is negative", c.Workers))
	}
	return nil
}

// EffectiveWorkers resolves Workers, substituting GOMAXPROCS for 0.
func (c Config) EffectiveWorkers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// NewLogger builds a zap logger from the log settings. The console format
// uses zap's development encoder, json the production one.
func (c LogConfig) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, errors.InvalidInput(errors.PhaseLoad, fmt.Sprintf("log.level: %v", err))
	}
	var zc zap.Config
	if c.Format == FormatJSON {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
