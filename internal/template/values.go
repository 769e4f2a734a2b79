package template

import (
	"fmt"
	"reflect"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// evalOptional evaluates an optional attribute expression. A nil expression
// or a null result reports ok=false.
func evalOptional(expr hcl.Expression, evalCtx *hcl.EvalContext) (cty.Value, bool, error) {
	if expr == nil {
		return cty.NilVal, false, nil
	}
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return cty.NilVal, false, diags
	}
	if val.IsNull() {
		return cty.NilVal, false, nil
	}
	if !val.IsWhollyKnown() {
		return cty.NilVal, false, fmt.Errorf("%s: value is not known at assembly time", expr.Range())
	}
	return val, true, nil
}

// decodeOptional evaluates expr and decodes it into target, leaving target
// untouched when the attribute is absent.
func decodeOptional(expr hcl.Expression, evalCtx *hcl.EvalContext, target any) error {
	val, ok, err := evalOptional(expr, evalCtx)
	if err != nil || !ok {
		return err
	}
	ptr := reflect.ValueOf(target)
	if ptr.Kind() != reflect.Ptr || ptr.IsNil() {
		return fmt.Errorf("decode target must be a non-nil pointer, got %T", target)
	}
	ty, err := gocty.ImpliedType(ptr.Elem().Interface())
	if err != nil {
		return fmt.Errorf("unsupported decode target %T: %w", target, err)
	}
	converted, err := convert.Convert(val, ty)
	if err != nil {
		return fmt.Errorf("%s: cannot convert %s to %s: %w", expr.Range(), val.Type().FriendlyName(), ty.FriendlyName(), err)
	}
	return gocty.FromCtyValue(converted, target)
}

// evalParams turns a `params` object or map into a per-key value map.
func evalParams(expr hcl.Expression, evalCtx *hcl.EvalContext) (map[string]cty.Value, error) {
	val, ok, err := evalOptional(expr, evalCtx)
	if err != nil || !ok {
		return nil, err
	}
	ty := val.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, fmt.Errorf("%s: params must be an object, got %s", expr.Range(), ty.FriendlyName())
	}

	params := make(map[string]cty.Value, val.LengthInt())
	it := val.ElementIterator()
	for it.Next() {
		key, v := it.Element()
		params[key.AsString()] = v
	}
	return params, nil
}
