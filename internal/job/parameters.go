package job

import "fmt"

// GlobalTagOption is the command-line name of the global tag parameter.
const GlobalTagOption = "globalTag"

// ConfigurationError reports a missing or malformed required parameter.
type ConfigurationError struct {
	Option  string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Option, e.Message)
}

// Parameters is the validated run configuration of a job.
type Parameters struct {
	globalTag string
}

// NewParameters validates the raw parameter values and returns an immutable
// Parameters value. The tag is kept exactly as given; only the empty string
// is rejected.
func NewParameters(globalTag string) (Parameters, error) {
	p := Parameters{globalTag: globalTag}
	if err := p.Validate(); err != nil {
		return Parameters{}, err
	}
	return p, nil
}

// GlobalTag returns the calibration/alignment tag of the job.
func (p Parameters) GlobalTag() string {
	return p.globalTag
}

// Validate checks the parameter invariants.
func (p Parameters) Validate() error {
	if p.globalTag == "" {
		return &ConfigurationError{
			Option:  GlobalTagOption,
			Message: fmt.Sprintf("a global tag is required, pass --%s=<tag> (see --help)", GlobalTagOption),
		}
	}
	return nil
}
