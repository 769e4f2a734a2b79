package emit

import (
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/vk/producepat/internal/pipeline"
	"github.com/zclconf/go-cty/cty"
)

// encodeHCL renders the descriptor as a `process` block.
func encodeHCL(d *pipeline.Descriptor) []byte {
	f := hclwrite.NewEmptyFile()
	proc := f.Body().AppendNewBlock("process", []string{d.Name}).Body()

	proc.SetAttributeValue("id", cty.StringVal(d.ID.String()))
	proc.SetAttributeValue("global_tag", cty.StringVal(d.GlobalTag))
	proc.SetAttributeValue("max_events", cty.NumberIntVal(int64(d.MaxEvents)))

	flags := proc.AppendNewBlock("flags", nil).Body()
	flags.SetAttributeValue("use_data", cty.BoolVal(d.Flags.UseData))
	flags.SetAttributeValue("use_data_plus_aod", cty.BoolVal(d.Flags.UseDataPlusAOD))
	flags.SetAttributeValue("feature_b", cty.BoolVal(d.Flags.FeatureB))
	flags.SetAttributeValue("feature_c", cty.BoolVal(d.Flags.FeatureC))

	proc.AppendNewline()
	src := proc.AppendNewBlock("source", []string{d.Source.Type}).Body()
	src.SetAttributeValue("file_names", stringList(d.Source.FileNames))

	for _, m := range d.Modules {
		proc.AppendNewline()
		mb := proc.AppendNewBlock("module", []string{m.Label, m.Type}).Body()
		if len(m.Params) == 0 {
			continue
		}
		// An object value lets hclwrite quote keys that are not identifiers.
		mb.SetAttributeValue("params", paramsObject(m.Params))
	}

	for _, p := range d.Paths {
		proc.AppendNewline()
		proc.AppendNewBlock("path", []string{p.Name}).Body().SetAttributeValue("modules", stringList(p.Modules))
	}

	proc.AppendNewline()
	out := proc.AppendNewBlock("output", []string{d.Output.Label, d.Output.Type}).Body()
	out.SetAttributeValue("file_name", cty.StringVal(d.Output.FileName))
	if len(d.Output.SelectPaths) > 0 {
		out.SetAttributeValue("select_paths", stringList(d.Output.SelectPaths))
	}
	if len(d.Output.Commands) > 0 {
		out.SetAttributeValue("output_commands", stringList(d.Output.Commands))
	}

	return f.Bytes()
}

func stringList(values []string) cty.Value {
	if len(values) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(values))
	for i, v := range values {
		vals[i] = cty.StringVal(v)
	}
	return cty.ListVal(vals)
}
