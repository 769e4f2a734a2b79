// Package emit serialises an assembled pipeline.Descriptor for the external
// execution engine. HCL is the native format; JSON and YAML are provided for
// tooling that cannot read HCL.
package emit
