package template

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/vk/producepat/internal/pipeline"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// functions is the function table available to template expressions.
var functions = map[string]function.Function{
	"coalesce": stdlib.CoalesceFunc,
	"concat":   stdlib.ConcatFunc,
	"contains": stdlib.ContainsFunc,
	"format":   stdlib.FormatFunc,
	"join":     stdlib.JoinFunc,
	"lower":    stdlib.LowerFunc,
	"upper":    stdlib.UpperFunc,
}

// newEvalContext exposes the assembly inputs to template expressions as
// `flags`, `global_tag` and `variant`.
func newEvalContext(flags pipeline.Flags, globalTag string) *hcl.EvalContext {
	variant := ""
	if v := pipeline.VariantOf(flags); v.Valid() {
		variant = v.String()
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"flags": cty.ObjectVal(map[string]cty.Value{
				"use_data":          cty.BoolVal(flags.UseData),
				"use_data_plus_aod": cty.BoolVal(flags.UseDataPlusAOD),
				"feature_b":         cty.BoolVal(flags.FeatureB),
				"feature_c":         cty.BoolVal(flags.FeatureC),
			}),
			"global_tag": cty.StringVal(globalTag),
			"variant":    cty.StringVal(variant),
		},
		Functions: functions,
	}
}
