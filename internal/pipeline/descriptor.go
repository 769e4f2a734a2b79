package pipeline

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/zclconf/go-cty/cty"
)

// idNamespace scopes the deterministic descriptor IDs.
var idNamespace = uuid.MustParse("6f1c8c3e-4d0b-5a7e-9a55-2d3c1b0e7f42")

// Descriptor is the assembled representation of a processing job.
type Descriptor struct {
	Name      string
	ID        uuid.UUID
	GlobalTag string
	Flags     Flags
	MaxEvents int

	Source  Source
	Modules []Module
	Paths   []Path
	Output  Output
}

// Source is the input binding of the job.
type Source struct {
	Type      string
	FileNames []string
}

// Module is a single processing stage.
type Module struct {
	Label  string
	Type   string
	Params map[string]cty.Value
}

// Path is an ordered sequence of module labels executed for every event.
type Path struct {
	Name    string
	Modules []string
}

// Output is the output binding of the job.
type Output struct {
	Label       string
	Type        string
	FileName    string
	Commands    []string
	SelectPaths []string
}

// DescriptorID derives a stable identifier for a descriptor built from the
// given process name, flags and global tag.
func DescriptorID(name string, flags Flags, globalTag string) uuid.UUID {
	key := fmt.Sprintf("%s|%t|%t|%t|%t|%s", name, flags.UseData, flags.UseDataPlusAOD, flags.FeatureB, flags.FeatureC, globalTag)
	return uuid.NewSHA1(idNamespace, []byte(key))
}

// Module returns the module with the given label, or nil.
func (d *Descriptor) Module(label string) *Module {
	for i := range d.Modules {
		if d.Modules[i].Label == label {
			return &d.Modules[i]
		}
	}
	return nil
}

// Validate checks that every reference inside the descriptor resolves.
func (d *Descriptor) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("descriptor has no process name")
	}
	if d.Source.Type == "" {
		return fmt.Errorf("process %q has no source", d.Name)
	}

	labels := make(map[string]struct{}, len(d.Modules)+1)
	for _, m := range d.Modules {
		if m.Label == "" {
			return fmt.Errorf("process %q has a module of type %q without a label", d.Name, m.Type)
		}
		if _, dup := labels[m.Label]; dup {
			return fmt.Errorf("duplicate module label %q", m.Label)
		}
		labels[m.Label] = struct{}{}
	}
	if d.Output.Label != "" {
		if _, dup := labels[d.Output.Label]; dup {
			return fmt.Errorf("output label %q collides with a module label", d.Output.Label)
		}
	}

	paths := make(map[string]struct{}, len(d.Paths))
	for _, p := range d.Paths {
		if _, dup := paths[p.Name]; dup {
			return fmt.Errorf("duplicate path %q", p.Name)
		}
		paths[p.Name] = struct{}{}
		for _, label := range p.Modules {
			if _, ok := labels[label]; !ok {
				return fmt.Errorf("path %q references unknown module %q", p.Name, label)
			}
		}
	}

	if d.Output.FileName == "" {
		return fmt.Errorf("output %q has no file name", d.Output.Label)
	}
	for _, sp := range d.Output.SelectPaths {
		if _, ok := paths[sp]; !ok {
			return fmt.Errorf("output %q selects unknown path %q", d.Output.Label, sp)
		}
	}
	return nil
}

// Clone returns a deep copy of the descriptor. cty values are immutable and
// are shared.
func (d *Descriptor) Clone() *Descriptor {
	if d == nil {
		return nil
	}
	c := *d
	c.Source.FileNames = cloneStrings(d.Source.FileNames)
	c.Output.Commands = cloneStrings(d.Output.Commands)
	c.Output.SelectPaths = cloneStrings(d.Output.SelectPaths)

	if d.Modules != nil {
		c.Modules = make([]Module, len(d.Modules))
		for i, m := range d.Modules {
			c.Modules[i] = Module{Label: m.Label, Type: m.Type}
			if m.Params != nil {
				c.Modules[i].Params = make(map[string]cty.Value, len(m.Params))
				for k, v := range m.Params {
					c.Modules[i].Params[k] = v
				}
			}
		}
	}
	if d.Paths != nil {
		c.Paths = make([]Path, len(d.Paths))
		for i, p := range d.Paths {
			c.Paths[i] = Path{Name: p.Name, Modules: cloneStrings(p.Modules)}
		}
	}
	return &c
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
