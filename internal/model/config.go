package model

import (
	"os"
	"path/filepath"
)

// Config holds all opsbrief configuration
type Config struct {
	Intake      IntakeConfig      `yaml:"intake" mapstructure:"intake"`
	Storage     StorageConfig     `yaml:"storage" mapstructure:"storage"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
	Session     SessionConfig     `yaml:"session" mapstructure:"session"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
}

// IntakeConfig controls intake validation and normalization
type IntakeConfig struct {
	MaxChars  int  `yaml:"max_chars" mapstructure:"max_chars"`   // Export is refused above this length
	StripHTML bool `yaml:"strip_html" mapstructure:"strip_html"` // Flatten pasted HTML before parsing
}

// StorageConfig controls the persistent key-value store
type StorageConfig struct {
	Dir        string `yaml:"dir" mapstructure:"dir"`
	MemoryOnly bool   `yaml:"memory_only" mapstructure:"memory_only"` // Skip disk persistence (testing, ephemeral runs)
}

// OutputConfig controls rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
}

// SessionConfig controls saved-session retention
type SessionConfig struct {
	MaxSaved int `yaml:"max_saved" mapstructure:"max_saved"`
}

// ConcurrencyConfig controls batch processing only; a single pipeline run is
// always synchronous.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// DefaultConfig returns the standard configuration
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	return &Config{
		Intake: IntakeConfig{
			MaxChars:  5000,
			StripHTML: false,
		},
		Storage: StorageConfig{
			Dir:        filepath.Join(home, ".opsbrief", "store"),
			MemoryOnly: false,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
		Session: SessionConfig{
			MaxSaved: MaxSavedSessions,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
	}
}
