// Package cli turns the producepat command line into an app.Config. It reads
// the required --globalTag option together with the template, emit format,
// output and logging options, accepts the same options as bare key=value
// arguments, and maps invalid invocations to an ExitError carrying the
// process exit code.
package cli
