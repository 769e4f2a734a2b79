// Package pipeline defines the assembled processing-job descriptor handed to
// the external reconstruction engine, the build variants that select the
// assembly routine's feature flags, and the Assembler contract that any
// pipeline-assembly routine must satisfy.
//
// The descriptor mirrors the engine's process layout: a single input source,
// an ordered list of processing modules, named paths that sequence those
// modules, and one output module bound to a file.
package pipeline
