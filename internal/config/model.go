package config

import (
	"context"

	"github.com/zclconf/go-cty/cty"
)

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads configuration from the given paths (files or directories)
	// and translates it into the format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}

// Model is the unified, format-agnostic representation of the application
// configuration: which modules to load, in what order, and with what options.
type Model struct {
	// Modules holds the module definitions in declaration order, which is
	// also the load order.
	Modules []*ModuleDefinition

	// Scorer names the scoring policy for the optimizer. Empty means the
	// built-in default.
	Scorer string
}

// ModuleDefinition describes a single module to load.
type ModuleDefinition struct {
	Name    string
	Options map[string]cty.Value
}

// ModuleNames returns the configured module names in load order.
func (m *Model) ModuleNames() []string {
	names := make([]string, 0, len(m.Modules))
	for _, def := range m.Modules {
		names = append(names, def.Name)
	}
	return names
}

// Module returns the definition for a name, if present.
func (m *Model) Module(name string) (*ModuleDefinition, bool) {
	for _, def := range m.Modules {
		if def.Name == name {
			return def, true
		}
	}
	return nil, false
}
