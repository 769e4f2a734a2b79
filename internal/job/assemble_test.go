package job

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/producepat/internal/pipeline"
	"github.com/vk/producepat/internal/testutil"
	"github.com/zclconf/go-cty/cty"
)

func mustParams(t *testing.T, tag string) Parameters {
	t.Helper()
	params, err := NewParameters(tag)
	require.NoError(t, err)
	return params
}

func TestAssemble_InvokesAssemblerWithFixedFlags(t *testing.T) {
	stub := &testutil.RecordingAssembler{}

	desc, err := Assemble(context.Background(), mustParams(t, "FT_53_V6_AN3"), stub)
	require.NoError(t, err)
	require.NotNil(t, desc)

	calls := stub.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, pipeline.Flags{UseData: false, UseDataPlusAOD: true, FeatureB: true, FeatureC: false}, calls[0].Flags)
	assert.Equal(t, "FT_53_V6_AN3", calls[0].GlobalTag)

	assert.Equal(t, "patTuple_PF2PAT.root", desc.Output.FileName)
	assert.Equal(t, []string{InputFile}, desc.Source.FileNames)
}

func TestAssemble_InvalidParametersNeverReachAssembler(t *testing.T) {
	stub := &testutil.RecordingAssembler{}

	desc, err := Assemble(context.Background(), Parameters{}, stub)

	require.Error(t, err)
	assert.Nil(t, desc)
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "globalTag")
	assert.Empty(t, stub.Calls())
}

func TestAssemble_PropagatesAssemblerErrorVerbatim(t *testing.T) {
	cause := &pipeline.AssemblyError{Stage: "conditions lookup", Err: errors.New("tag not found")}
	stub := &testutil.RecordingAssembler{Err: cause}

	desc, err := Assemble(context.Background(), mustParams(t, "FT_53_V6_AN3"), stub)

	assert.Nil(t, desc)
	require.Error(t, err)
	assert.Same(t, cause, err)
	assert.Len(t, stub.Calls(), 1)
}

func TestAssemble_NilDescriptorIsAnAssemblyError(t *testing.T) {
	assembler := pipeline.AssemblerFunc(func(context.Context, pipeline.Flags, string) (*pipeline.Descriptor, error) {
		return nil, nil
	})

	desc, err := Assemble(context.Background(), mustParams(t, "FT_53_V6_AN3"), assembler)

	assert.Nil(t, desc)
	var asmErr *pipeline.AssemblyError
	require.ErrorAs(t, err, &asmErr)
}

func TestAssemble_OverridesOnlyInputAndOutput(t *testing.T) {
	base := testutil.MinimalDescriptor(Variant.Flags(), "FT_53_V6_AN3")
	base.Modules[0].Params = map[string]cty.Value{"src": cty.StringVal("particleFlow")}
	stub := &testutil.RecordingAssembler{Descriptor: base}

	desc, err := Assemble(context.Background(), mustParams(t, "FT_53_V6_AN3"), stub)
	require.NoError(t, err)

	want := base.Clone()
	want.Source.FileNames = []string{InputFile}
	want.Output.FileName = OutputFileName

	opt := cmp.Comparer(func(a, b cty.Value) bool { return a.RawEquals(b) })
	if diff := cmp.Diff(want, desc, opt); diff != "" {
		t.Errorf("descriptor mismatch (-want +got):\n%s", diff)
	}
}

func TestAssemble_IsIdempotentInOverriddenFields(t *testing.T) {
	stub := &testutil.RecordingAssembler{}
	params := mustParams(t, "GR_R_53_V18")

	first, err := Assemble(context.Background(), params, stub)
	require.NoError(t, err)
	second, err := Assemble(context.Background(), params, stub)
	require.NoError(t, err)

	assert.Equal(t, first.Source.FileNames, second.Source.FileNames)
	assert.Equal(t, first.Output.FileName, second.Output.FileName)
	assert.Len(t, stub.Calls(), 2)
}

func TestAssemble_PassesGlobalTagThroughVerbatim(t *testing.T) {
	for _, tag := range []string{" FT_53_V6_AN3 ", "   ", "FT_53_V6_AN3::All"} {
		t.Run(tag, func(t *testing.T) {
			stub := &testutil.RecordingAssembler{}

			_, err := Assemble(context.Background(), mustParams(t, tag), stub)
			require.NoError(t, err)

			calls := stub.Calls()
			require.Len(t, calls, 1)
			assert.Equal(t, tag, calls[0].GlobalTag)
		})
	}
}

func TestAssemble_NilAssembler(t *testing.T) {
	desc, err := Assemble(context.Background(), mustParams(t, "FT_53_V6_AN3"), nil)

	assert.Nil(t, desc)
	var asmErr *pipeline.AssemblyError
	require.ErrorAs(t, err, &asmErr)
	assert.Equal(t, "assemble", asmErr.Stage)
	assert.Contains(t, err.Error(), "no assembler")
}
