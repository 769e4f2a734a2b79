package testutil

import (
	"context"
	"sync"

	"github.com/vk/producepat/internal/pipeline"
)

// AssembleCall records the arguments of a single Assemble invocation.
type AssembleCall struct {
	Flags     pipeline.Flags
	GlobalTag string
}

// RecordingAssembler is a pipeline.Assembler stub that records every call.
// It returns a fresh copy of Descriptor (or MinimalDescriptor when nil), or
// Err when set.
type RecordingAssembler struct {
	Descriptor *pipeline.Descriptor
	Err        error

	mu    sync.Mutex
	calls []AssembleCall
}

// Assemble implements pipeline.Assembler.
func (r *RecordingAssembler) Assemble(_ context.Context, flags pipeline.Flags, globalTag string) (*pipeline.Descriptor, error) {
	r.mu.Lock()
	r.calls = append(r.calls, AssembleCall{Flags: flags, GlobalTag: globalTag})
	r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}
	if r.Descriptor != nil {
		return r.Descriptor.Clone(), nil
	}
	return MinimalDescriptor(flags, globalTag), nil
}

// Calls returns a copy of the recorded calls.
func (r *RecordingAssembler) Calls() []AssembleCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]AssembleCall, len(r.calls))
	copy(out, r.calls)
	return out
}

// MinimalDescriptor returns the smallest valid descriptor, with default
// input and output bindings that differ from the job's fixed ones.
func MinimalDescriptor(flags pipeline.Flags, globalTag string) *pipeline.Descriptor {
	return &pipeline.Descriptor{
		Name:      "PAT",
		ID:        pipeline.DescriptorID("PAT", flags, globalTag),
		GlobalTag: globalTag,
		Flags:     flags,
		MaxEvents: -1,
		Source: pipeline.Source{
			Type:      "PoolSource",
			FileNames: []string{"file:input_data.root", "file:other.root"},
		},
		Modules: []pipeline.Module{{Label: "patCandidates", Type: "PATCandidateProducer"}},
		Paths:   []pipeline.Path{{Name: "p", Modules: []string{"patCandidates"}}},
		Output: pipeline.Output{
			Label:       "out",
			Type:        "PoolOutputModule",
			FileName:    "patTuple.root",
			SelectPaths: []string{"p"},
		},
	}
}
