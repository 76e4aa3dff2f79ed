// Package schema holds the HCL-specific structures that configuration files
// are decoded into before translation to the agnostic config model.
package schema

import "github.com/hashicorp/hcl/v2"

// Module represents a `module` block from a configuration file. Block order
// in the file determines load order. Options are free-form attributes whose
// meaning is up to the module's factory.
type Module struct {
	Name    string   `hcl:"name,label"`
	Options hcl.Body `hcl:",remain"`
}

// Optimizer represents the optional `optimizer` block, selecting the scoring
// policy applied to the loaded module set.
type Optimizer struct {
	Scorer string `hcl:"scorer,optional"`
}

// Config represents the top-level structure of a configuration file.
type Config struct {
	Modules   []*Module  `hcl:"module,block"`
	Optimizer *Optimizer `hcl:"optimizer,block"`
	Body      hcl.Body   `hcl:",remain"`
}
