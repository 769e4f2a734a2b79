package template

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes the top level of a template file. Anything other than the
// process block is rejected.
type fileRoot struct {
	Process *processBlock `hcl:"process,block"`
}

// processBlock is the `process "<name>" {}` block.
type processBlock struct {
	Name      string         `hcl:"name,label"`
	MaxEvents hcl.Expression `hcl:"max_events,optional"`
	Source    *sourceBlock   `hcl:"source,block"`
	Modules   []*moduleBlock `hcl:"module,block"`
	Paths     []*pathBlock   `hcl:"path,block"`
	Output    *outputBlock   `hcl:"output,block"`
}

// sourceBlock is the `source "<type>" {}` block.
type sourceBlock struct {
	Type      string   `hcl:"type,label"`
	FileNames []string `hcl:"file_names,optional"`
}

// moduleBlock is the `module "<label>" "<type>" {}` block.
type moduleBlock struct {
	Label   string         `hcl:"label,label"`
	Type    string         `hcl:"type,label"`
	Enabled hcl.Expression `hcl:"enabled,optional"`
	Params  hcl.Expression `hcl:"params,optional"`
}

// pathBlock is the `path "<name>" {}` block.
type pathBlock struct {
	Name    string   `hcl:"name,label"`
	Modules []string `hcl:"modules"`
}

// outputBlock is the `output "<label>" "<type>" {}` block.
type outputBlock struct {
	Label          string   `hcl:"label,label"`
	Type           string   `hcl:"type,label"`
	FileName       string   `hcl:"file_name"`
	SelectPaths    []string `hcl:"select_paths,optional"`
	OutputCommands []string `hcl:"output_commands,optional"`
}
