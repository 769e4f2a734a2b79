package emit

import (
	"fmt"
	"strings"
)

// Format selects the serialisation of an emitted descriptor.
type Format int

const (
	FormatHCL Format = iota
	FormatJSON
	FormatYAML
)

var formatNames = []string{"hcl", "json", "yaml"}

func (f Format) String() string {
	if int(f) >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// ParseFormat resolves a format by name.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "yml" {
		return FormatYAML, nil
	}
	for i, n := range formatNames {
		if n == name {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("unknown emit format %q: must be one of %s", s, strings.Join(formatNames, ", "))
}
