package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/producepat/internal/app"
	"github.com/vk/producepat/internal/emit"
	"github.com/vk/producepat/internal/job"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the error that caused the exit, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

func usageError(err error) *ExitError {
	return &ExitError{Code: 2, Message: err.Error(), Err: err}
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// Options may be given as flags (--globalTag=TAG) or as bare key=value
// arguments (globalTag=TAG).
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("producepat", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
producepat - configures the PAT-tuple production job and emits its pipeline descriptor.

Usage:
  producepat --globalTag=<tag> [options]
  producepat globalTag=<tag> [key=value ...]

Options:
`)
		flagSet.PrintDefaults()
	}

	globalTagFlag := flagSet.String(job.GlobalTagOption, "", "The global tag to be used (required).")
	pipelineFlag := flagSet.String("pipeline", "", "Path to an HCL pipeline template. Empty uses the built-in template.")
	emitFlag := flagSet.String("emit", "hcl", "Descriptor format. Options: 'hcl', 'json' or 'yaml'.")
	outputFlag := flagSet.String("output", app.StdoutPath, "Descriptor destination file. '-' writes to stdout.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	for _, arg := range flagSet.Args() {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || flagSet.Lookup(key) == nil {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", arg)}
		}
		if err := flagSet.Set(key, value); err != nil {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid value for %s: %v", key, err)}
		}
	}

	params, err := job.NewParameters(*globalTagFlag)
	if err != nil {
		slog.Debug("Parameter validation failed.", "error", err)
		return nil, false, usageError(err)
	}

	format, err := emit.ParseFormat(*emitFlag)
	if err != nil {
		return nil, false, usageError(err)
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Params:       params,
		PipelinePath: *pipelineFlag,
		EmitFormat:   format,
		OutputPath:   *outputFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})
	if err != nil {
		return nil, false, usageError(err)
	}

	slog.Debug("CLI parser finished successfully.", "global_tag", params.GlobalTag())
	return config, false, nil
}
