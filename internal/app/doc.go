// Package app wires the production job together: it owns the logger, picks
// the pipeline assembler, runs the job assembly and hands the resulting
// descriptor to the configured destination. It is decoupled from any specific
// entrypoint like a CLI.
package app
