package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/vk/producepat/internal/app"
	"github.com/vk/producepat/internal/emit"
	"github.com/vk/producepat/internal/job"
)

func mustParams(t *testing.T, tag string) job.Parameters {
	t.Helper()
	p, err := job.NewParameters(tag)
	require.NoError(t, err)
	return p
}

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		args           []string
		expectExit     bool
		expectErr      bool
		expectCfgErr   bool
		expectedConfig *app.Config
		checkOutput    func(t *testing.T, output string)
	}{
		{
			name: "Happy Path with all flags",
			args: []string{
				"--globalTag=FT_53_V6_AN3",
				"--pipeline=/tmp/pipeline.hcl",
				"--emit=json",
				"--output=/tmp/descriptor.json",
				"--log-level=debug",
				"--log-format=json",
			},
			expectedConfig: &app.Config{
				Params:       mustParams(t, "FT_53_V6_AN3"),
				PipelinePath: "/tmp/pipeline.hcl",
				EmitFormat:   emit.FormatJSON,
				OutputPath:   "/tmp/descriptor.json",
				LogLevel:     "debug",
				LogFormat:    "json",
			},
		},
		{
			name: "Defaults",
			args: []string{"-globalTag", "FT_53_V6_AN3"},
			expectedConfig: &app.Config{
				Params:     mustParams(t, "FT_53_V6_AN3"),
				EmitFormat: emit.FormatHCL,
				OutputPath: "-",
				LogLevel:   "info",
				LogFormat:  "text",
			},
		},
		{
			name: "Bare key=value arguments",
			args: []string{"globalTag=GR_R_53_V18", "emit=yaml"},
			expectedConfig: &app.Config{
				Params:     mustParams(t, "GR_R_53_V18"),
				EmitFormat: emit.FormatYAML,
				OutputPath: "-",
				LogLevel:   "info",
				LogFormat:  "text",
			},
		},
		{
			name:       "Help flag triggers clean exit",
			args:       []string{"--help"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.Contains(t, output, "Usage:")
				require.Contains(t, output, "globalTag")
			},
		},
		{
			name:         "Missing globalTag is a configuration error",
			args:         []string{},
			expectErr:    true,
			expectCfgErr: true,
		},
		{
			name:         "Empty globalTag is a configuration error",
			args:         []string{"--globalTag="},
			expectErr:    true,
			expectCfgErr: true,
		},
		{
			name:      "Unknown bare argument",
			args:      []string{"--globalTag=X", "foo"},
			expectErr: true,
		},
		{
			name:      "Unknown key=value argument",
			args:      []string{"--globalTag=X", "maxEvents=10"},
			expectErr: true,
		},
		{
			name:      "Unknown flag",
			args:      []string{"--globalTag=X", "--nope"},
			expectErr: true,
		},
		{
			name:      "Invalid emit format",
			args:      []string{"--globalTag=X", "--emit=toml"},
			expectErr: true,
		},
		{
			name:      "Invalid log level returns an error",
			args:      []string{"--globalTag=X", "--log-level=foo"},
			expectErr: true,
		},
		{
			name:      "Invalid log format returns an error",
			args:      []string{"--globalTag=X", "--log-format=yaml"},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			out := &bytes.Buffer{}

			// --- Act ---
			cfg, shouldExit, err := Parse(tc.args, out)

			// --- Assert ---
			if tc.expectErr {
				require.Error(t, err)
				var exitErr *ExitError
				require.True(t, errors.As(err, &exitErr), "Expected error to be of type ExitError")
				require.NotZero(t, exitErr.Code)
				if tc.expectCfgErr {
					var cfgErr *job.ConfigurationError
					require.ErrorAs(t, err, &cfgErr)
					require.Contains(t, err.Error(), "globalTag")
				}
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectExit, shouldExit)

			if tc.expectedConfig != nil {
				opt := cmp.AllowUnexported(job.Parameters{})
				if diff := cmp.Diff(tc.expectedConfig, cfg, opt); diff != "" {
					t.Errorf("Config mismatch (-want +got):\n%s", diff)
				}
			}

			if tc.checkOutput != nil {
				tc.checkOutput(t, out.String())
			}
		})
	}
}
