package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/averycrespi/mathline/internal/vars"
	"github.com/averycrespi/mathline/pkg/types"

	"gopkg.in/yaml.v3"
)

const (
	DefaultLogLevel     = "info"
	DefaultSolveTimeout = 10 * time.Second
	DefaultPrompt       = "> "
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() *types.Config {
	return &types.Config{
		LogLevel:     DefaultLogLevel,
		SolveTimeout: DefaultSolveTimeout,
		Prompt:       DefaultPrompt,
		Color:        ColorAuto,
		Variables:    make(map[string]float64),
	}
}

// Load reads a YAML configuration file over the defaults.
// An empty path returns the defaults; a missing file is an error.
func Load(path string) (*types.Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	applyDefaults(config)
	if err := Validate(config); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return config, nil
}

// Fields the file set to their zero value fall back to the defaults
func applyDefaults(config *types.Config) {
	if config.LogLevel == "" {
		config.LogLevel = DefaultLogLevel
	}
	if config.SolveTimeout == 0 {
		config.SolveTimeout = DefaultSolveTimeout
	}
	if config.Prompt == "" {
		config.Prompt = DefaultPrompt
	}
	if config.Color == "" {
		config.Color = ColorAuto
	}
	if config.Variables == nil {
		config.Variables = make(map[string]float64)
	}
}

// Validate checks every field of config and joins the problems found
func Validate(config *types.Config) error {
	var errs []error
	if _, err := ParseLevel(config.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if config.SolveTimeout < 0 {
		errs = append(errs, fmt.Errorf("solve_timeout must not be negative, got %s", config.SolveTimeout))
	}
	switch config.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, fmt.Errorf("color must be one of %s, %s or %s, got %q",
			ColorAuto, ColorAlways, ColorNever, config.Color))
	}
	for name := range config.Variables {
		if err := vars.ValidateName(name); err != nil {
			errs = append(errs, fmt.Errorf("variable %q: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// ParseLevel maps a log level name to its slog level
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

// NewLogger returns a text logger writing to w at the configured level
func NewLogger(w io.Writer, config *types.Config) *slog.Logger {
	level, err := ParseLevel(config.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
