package app

import (
	"github.com/vk/producepat/internal/emit"
	"github.com/vk/producepat/internal/job"
)

// StdoutPath is the OutputPath value that selects the app's output writer.
const StdoutPath = "-"

// Config holds everything an App needs to run. It is built once at the
// entrypoint and never read from global state.
type Config struct {
	Params       job.Parameters
	PipelinePath string // empty selects the built-in template
	EmitFormat   emit.Format
	OutputPath   string

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if err := cfg.Params.Validate(); err != nil {
		return nil, err
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = StdoutPath
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return &cfg, nil
}
