package job

import (
	"context"
	"errors"

	"github.com/vk/producepat/internal/ctxlog"
	"github.com/vk/producepat/internal/pipeline"
)

const (
	// InputFile is the single dataset file the job reads.
	InputFile = "/store/user/sbrochet/../../data/Run2012B/SinglePhoton/AOD/22Jan2013-v1/20000/FC9D17BE-0C72-E211-BCC8-003048678A80.root"

	// OutputFileName is the name of the PAT tuple written by the engine.
	OutputFileName = "patTuple_PF2PAT.root"

	// Variant is the pipeline variant every job of this kind is built with.
	Variant = pipeline.VariantDataAOD
)

// Assemble builds the processing descriptor for the job. Errors returned by
// the assembler are passed back unchanged and no descriptor is returned.
func Assemble(ctx context.Context, params Parameters, assembler pipeline.Assembler) (*pipeline.Descriptor, error) {
	logger := ctxlog.FromContext(ctx)

	if err := params.Validate(); err != nil {
		return nil, err
	}
	if assembler == nil {
		return nil, &pipeline.AssemblyError{Stage: "assemble", Err: errors.New("no assembler")}
	}

	flags := Variant.Flags()
	logger.Debug("Invoking pipeline assembler.", "variant", Variant.String(), "global_tag", params.GlobalTag())

	desc, err := assembler.Assemble(ctx, flags, params.GlobalTag())
	if err != nil {
		logger.Debug("Pipeline assembler failed.", "error", err)
		return nil, err
	}
	if desc == nil {
		return nil, &pipeline.AssemblyError{Stage: "assemble"}
	}

	logger.Debug("Overriding input and output bindings.",
		"default_inputs", desc.Source.FileNames,
		"default_output", desc.Output.FileName,
	)
	desc.Source.FileNames = []string{InputFile}
	desc.Output.FileName = OutputFileName

	logger.Info("Job assembled.", "process", desc.Name, "modules", len(desc.Modules), "output", desc.Output.FileName)
	return desc, nil
}
