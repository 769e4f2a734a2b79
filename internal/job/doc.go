// Package job holds the validated run parameters of a PAT-tuple production
// job and the assembly step that turns them into a processing descriptor.
//
// Assemble delegates graph construction to a pipeline.Assembler and then
// binds the job's fixed input dataset and output file. Nothing else in the
// returned descriptor is touched.
package job
