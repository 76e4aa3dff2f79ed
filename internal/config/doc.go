// Package config defines the format-agnostic configuration model for the
// application, along with the Loader interface for reading it from various
// sources. Concrete implementations, such as for HCL, live in separate
// packages.
package config
