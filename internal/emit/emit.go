package emit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/vk/producepat/internal/ctxlog"
	"github.com/vk/producepat/internal/pipeline"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
	"gopkg.in/yaml.v3"
)

// Write serialises d to w in the requested format.
func Write(ctx context.Context, w io.Writer, d *pipeline.Descriptor, f Format) error {
	logger := ctxlog.FromContext(ctx)
	if d == nil {
		return fmt.Errorf("no descriptor to emit")
	}
	logger.Debug("Emitting descriptor.", "format", f.String(), "process", d.Name)

	switch f {
	case FormatHCL:
		_, err := w.Write(encodeHCL(d))
		return err
	case FormatJSON:
		return writeJSON(w, d)
	case FormatYAML:
		return writeYAML(w, d)
	default:
		return fmt.Errorf("unsupported emit format %s", f)
	}
}

func writeJSON(w io.Writer, d *pipeline.Descriptor) error {
	doc, err := newDocument(d, func(params cty.Value) (any, error) {
		return ctyjson.SimpleJSONValue{Value: params}, nil
	})
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode descriptor as JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, d *pipeline.Descriptor) error {
	doc, err := newDocument(d, ctyToNative)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode descriptor as YAML: %w", err)
	}
	return enc.Close()
}
