// Package hcl implements the config.Loader interface for HCL configuration
// files.
package hcl
