// Package template provides the HCL implementation of pipeline.Assembler.
// A template declares one `process` block with a source, processing modules,
// paths and an output module. Attribute expressions are evaluated against the
// caller's feature flags and global tag, so a single template can describe
// every variant of the pipeline.
package template
