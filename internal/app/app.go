package app

import (
	"io"
	"log/slog"

	"github.com/vk/producepat/internal/pipeline"
)

// App encapsulates the job's dependencies and configuration.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	config    *Config
	assembler pipeline.Assembler
}

// NewApp returns an App that writes the descriptor to outW (when the output
// path is "-") and logs to logW. A nil assembler selects the HCL template at
// cfg.PipelinePath, or the built-in template when that is empty.
func NewApp(outW, logW io.Writer, cfg *Config, assembler pipeline.Assembler) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:      outW,
		logger:    logger,
		config:    cfg,
		assembler: assembler,
	}
}
