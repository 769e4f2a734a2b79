package template

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/producepat/internal/ctxlog"
	"github.com/vk/producepat/internal/pipeline"
)

//go:embed default.hcl
var defaultSource []byte

// DefaultName is the filename reported in diagnostics of the built-in template.
const DefaultName = "default.hcl"

// Template is a parsed pipeline template. It is safe for concurrent use; every
// Assemble call decodes the parsed body against a fresh evaluation context.
type Template struct {
	name string
	file *hcl.File
}

var _ pipeline.Assembler = (*Template)(nil)

// Parse parses template source. Syntax errors are reported as a
// *pipeline.AssemblyError.
func Parse(filename string, src []byte) (*Template, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, &pipeline.AssemblyError{Stage: "parse", Err: diags}
	}
	return &Template{name: filename, file: file}, nil
}

// Load reads and parses the template at path.
func Load(ctx context.Context, path string) (*Template, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading pipeline template.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &pipeline.AssemblyError{Stage: "load", Err: err}
	}
	return Parse(path, src)
}

// Default returns the built-in template.
func Default() *Template {
	t, err := Parse(DefaultName, defaultSource)
	if err != nil {
		// The embedded template is part of the binary; failing here is a build defect.
		panic(fmt.Errorf("built-in pipeline template is invalid: %w", err))
	}
	return t
}

// Name returns the filename the template was parsed from.
func (t *Template) Name() string {
	return t.name
}

// Assemble implements pipeline.Assembler.
func (t *Template) Assemble(ctx context.Context, flags pipeline.Flags, globalTag string) (*pipeline.Descriptor, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Assembling pipeline from template.", "template", t.name, "global_tag", globalTag)

	evalCtx := newEvalContext(flags, globalTag)

	var root fileRoot
	if diags := gohcl.DecodeBody(t.file.Body, evalCtx, &root); diags.HasErrors() {
		return nil, &pipeline.AssemblyError{Stage: "decode", Err: diags}
	}
	if root.Process == nil {
		return nil, &pipeline.AssemblyError{Stage: "decode", Err: fmt.Errorf("%s: no process block", t.name)}
	}

	desc, err := t.build(ctx, root.Process, evalCtx, flags, globalTag)
	if err != nil {
		return nil, &pipeline.AssemblyError{Stage: "evaluate", Err: err}
	}
	if err := desc.Validate(); err != nil {
		return nil, &pipeline.AssemblyError{Stage: "validate", Err: err}
	}

	logger.Debug("Template assembled.", "process", desc.Name, "modules", len(desc.Modules), "paths", len(desc.Paths))
	return desc, nil
}

func (t *Template) build(ctx context.Context, p *processBlock, evalCtx *hcl.EvalContext, flags pipeline.Flags, globalTag string) (*pipeline.Descriptor, error) {
	logger := ctxlog.FromContext(ctx)

	desc := &pipeline.Descriptor{
		Name:      p.Name,
		ID:        pipeline.DescriptorID(p.Name, flags, globalTag),
		GlobalTag: globalTag,
		Flags:     flags,
		MaxEvents: -1,
	}
	if err := decodeOptional(p.MaxEvents, evalCtx, &desc.MaxEvents); err != nil {
		return nil, fmt.Errorf("max_events: %w", err)
	}

	if p.Source == nil {
		return nil, fmt.Errorf("process %q has no source block", p.Name)
	}
	desc.Source = pipeline.Source{Type: p.Source.Type, FileNames: p.Source.FileNames}

	disabled := make(map[string]struct{})
	for _, m := range p.Modules {
		enabled := true
		if err := decodeOptional(m.Enabled, evalCtx, &enabled); err != nil {
			return nil, fmt.Errorf("module %q enabled: %w", m.Label, err)
		}
		if !enabled {
			logger.Debug("Module disabled by template condition.", "module", m.Label)
			disabled[m.Label] = struct{}{}
			continue
		}
		params, err := evalParams(m.Params, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("module %q params: %w", m.Label, err)
		}
		desc.Modules = append(desc.Modules, pipeline.Module{Label: m.Label, Type: m.Type, Params: params})
	}

	for _, path := range p.Paths {
		modules := slices.DeleteFunc(slices.Clone(path.Modules), func(label string) bool {
			_, off := disabled[label]
			return off
		})
		desc.Paths = append(desc.Paths, pipeline.Path{Name: path.Name, Modules: modules})
	}

	if p.Output == nil {
		return nil, fmt.Errorf("process %q has no output block", p.Name)
	}
	desc.Output = pipeline.Output{
		Label:       p.Output.Label,
		Type:        p.Output.Type,
		FileName:    p.Output.FileName,
		Commands:    p.Output.OutputCommands,
		SelectPaths: p.Output.SelectPaths,
	}
	return desc, nil
}
