package pipeline

import (
	"context"
	"fmt"
)

// Assembler builds a fully wired descriptor from a flag set and a global tag.
// Implementations must return either a non-nil descriptor or an error.
type Assembler interface {
	Assemble(ctx context.Context, flags Flags, globalTag string) (*Descriptor, error)
}

// AssemblerFunc adapts a plain function to the Assembler interface.
type AssemblerFunc func(ctx context.Context, flags Flags, globalTag string) (*Descriptor, error)

// Assemble calls f.
func (f AssemblerFunc) Assemble(ctx context.Context, flags Flags, globalTag string) (*Descriptor, error) {
	return f(ctx, flags, globalTag)
}

// AssemblyError reports a failure while constructing the processing graph.
type AssemblyError struct {
	Stage string
	Err   error
}

func (e *AssemblyError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("pipeline assembly failed during %s", e.Stage)
	}
	return fmt.Sprintf("pipeline assembly failed during %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying cause.
func (e *AssemblyError) Unwrap() error {
	return e.Err
}
