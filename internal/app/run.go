package app

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/producepat/internal/ctxlog"
	"github.com/vk/producepat/internal/emit"
	"github.com/vk/producepat/internal/job"
	"github.com/vk/producepat/internal/pipeline"
	"github.com/vk/producepat/internal/template"
)

// Run assembles the job and emits its descriptor. Configuration and assembly
// errors are returned exactly as job.Assemble reports them.
func (a *App) Run(ctx context.Context) (*pipeline.Descriptor, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "global_tag", a.config.Params.GlobalTag())

	assembler, err := a.resolveAssembler(ctx)
	if err != nil {
		return nil, err
	}

	desc, err := job.Assemble(ctx, a.config.Params, assembler)
	if err != nil {
		return nil, err
	}
	if err := desc.Validate(); err != nil {
		return nil, fmt.Errorf("assembled descriptor is invalid: %w", err)
	}

	if err := a.emit(ctx, desc); err != nil {
		return nil, err
	}

	a.logger.Info("🏁 Descriptor handed off.", "process", desc.Name, "id", desc.ID.String(), "destination", a.config.OutputPath)
	return desc, nil
}

func (a *App) resolveAssembler(ctx context.Context) (pipeline.Assembler, error) {
	if a.assembler != nil {
		a.logger.Debug("Using injected pipeline assembler.")
		return a.assembler, nil
	}
	var (
		tmpl *template.Template
		err  error
	)
	if a.config.PipelinePath == "" {
		tmpl = template.Default()
	} else if tmpl, err = template.Load(ctx, a.config.PipelinePath); err != nil {
		return nil, err
	}
	a.logger.Info("Using pipeline template.", "template", tmpl.Name())
	return tmpl, nil
}

func (a *App) emit(ctx context.Context, desc *pipeline.Descriptor) error {
	if a.config.OutputPath == StdoutPath {
		return emit.Write(ctx, a.outW, desc, a.config.EmitFormat)
	}

	f, err := os.Create(a.config.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create descriptor file: %w", err)
	}
	if err := emit.Write(ctx, f, desc, a.config.EmitFormat); err != nil {
		f.Close()
		return fmt.Errorf("failed to write descriptor to %s: %w", a.config.OutputPath, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close descriptor file: %w", err)
	}
	return nil
}
