package types

import "time"

// Config represents the configuration for mathline
type Config struct {
	LogLevel     string             `json:"log_level,omitempty" yaml:"log_level,omitempty"`
	SolveTimeout time.Duration      `json:"solve_timeout,omitempty" yaml:"solve_timeout,omitempty"`
	MemeMode     bool               `json:"meme_mode,omitempty" yaml:"meme_mode,omitempty"`
	Prompt       string             `json:"prompt,omitempty" yaml:"prompt,omitempty"`
	Color        string             `json:"color,omitempty" yaml:"color,omitempty"`
	Variables    map[string]float64 `json:"variables,omitempty" yaml:"variables,omitempty"`
}
