// Package app wires the application together: logger, configuration, module
// registry, and the synergy pass over the loaded modules. The App owns the
// lifecycle; cmd/cli stays a thin shell around it.
package app
