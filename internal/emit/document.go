package emit

import (
	"github.com/vk/producepat/internal/pipeline"
	"github.com/zclconf/go-cty/cty"
)

// document is the JSON/YAML shape of a descriptor.
type document struct {
	Name      string      `json:"name" yaml:"name"`
	ID        string      `json:"id" yaml:"id"`
	GlobalTag string      `json:"global_tag" yaml:"global_tag"`
	Flags     flagsDoc    `json:"flags" yaml:"flags"`
	MaxEvents int         `json:"max_events" yaml:"max_events"`
	Source    sourceDoc   `json:"source" yaml:"source"`
	Modules   []moduleDoc `json:"modules,omitempty" yaml:"modules,omitempty"`
	Paths     []pathDoc   `json:"paths,omitempty" yaml:"paths,omitempty"`
	Output    outputDoc   `json:"output" yaml:"output"`
}

type flagsDoc struct {
	UseData        bool `json:"use_data" yaml:"use_data"`
	UseDataPlusAOD bool `json:"use_data_plus_aod" yaml:"use_data_plus_aod"`
	FeatureB       bool `json:"feature_b" yaml:"feature_b"`
	FeatureC       bool `json:"feature_c" yaml:"feature_c"`
}

type sourceDoc struct {
	Type      string   `json:"type" yaml:"type"`
	FileNames []string `json:"file_names" yaml:"file_names"`
}

type moduleDoc struct {
	Label  string `json:"label" yaml:"label"`
	Type   string `json:"type" yaml:"type"`
	Params any    `json:"params,omitempty" yaml:"params,omitempty"`
}

type pathDoc struct {
	Name    string   `json:"name" yaml:"name"`
	Modules []string `json:"modules" yaml:"modules"`
}

type outputDoc struct {
	Label       string   `json:"label" yaml:"label"`
	Type        string   `json:"type" yaml:"type"`
	FileName    string   `json:"file_name" yaml:"file_name"`
	SelectPaths []string `json:"select_paths,omitempty" yaml:"select_paths,omitempty"`
	Commands    []string `json:"output_commands,omitempty" yaml:"output_commands,omitempty"`
}

// paramsEncoder renders a module's params for a specific serialiser.
type paramsEncoder func(params cty.Value) (any, error)

func newDocument(d *pipeline.Descriptor, encode paramsEncoder) (*document, error) {
	doc := &document{
		Name:      d.Name,
		ID:        d.ID.String(),
		GlobalTag: d.GlobalTag,
		Flags: flagsDoc{
			UseData:        d.Flags.UseData,
			UseDataPlusAOD: d.Flags.UseDataPlusAOD,
			FeatureB:       d.Flags.FeatureB,
			FeatureC:       d.Flags.FeatureC,
		},
		MaxEvents: d.MaxEvents,
		Source:    sourceDoc{Type: d.Source.Type, FileNames: d.Source.FileNames},
		Output: outputDoc{
			Label:       d.Output.Label,
			Type:        d.Output.Type,
			FileName:    d.Output.FileName,
			SelectPaths: d.Output.SelectPaths,
			Commands:    d.Output.Commands,
		},
	}
	if doc.Source.FileNames == nil {
		doc.Source.FileNames = []string{}
	}

	for _, m := range d.Modules {
		md := moduleDoc{Label: m.Label, Type: m.Type}
		if len(m.Params) > 0 {
			p, err := encode(paramsObject(m.Params))
			if err != nil {
				return nil, err
			}
			md.Params = p
		}
		doc.Modules = append(doc.Modules, md)
	}
	for _, p := range d.Paths {
		doc.Paths = append(doc.Paths, pathDoc{Name: p.Name, Modules: p.Modules})
	}
	return doc, nil
}
