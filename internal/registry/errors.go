package registry

import (
	"errors"
	"fmt"
)

// ErrNotLoaded is returned by Reload when the named module was never loaded.
// It is a sentinel so callers can distinguish "never loaded" from a failed
// re-resolution with errors.Is.
var ErrNotLoaded = errors.New("module not loaded")

// ImportError reports that the resolver could not resolve a module name at
// all. It wraps the resolver's own error as the root cause.
type ImportError struct {
	Name string
	Err  error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("module %q not found or failed to resolve: %v", e.Name, e.Err)
}

func (e *ImportError) Unwrap() error { return e.Err }

// UnavailableError reports that the resolver returned no handle for a name
// without reporting an error of its own. This is distinct from ImportError:
// resolution "succeeded" but produced nothing usable.
type UnavailableError struct {
	Name string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("module %q resolved to an empty handle", e.Name)
}

// BatchLoadError is the single error kind LoadAll reports, regardless of
// which name failed or how. The per-name failure is reachable through Unwrap.
type BatchLoadError struct {
	Err error
}

func (e *BatchLoadError) Error() string {
	return fmt.Sprintf("failed to load one or more modules: %v", e.Err)
}

func (e *BatchLoadError) Unwrap() error { return e.Err }

// ReloadError reports a failed re-resolution of an already-loaded module.
type ReloadError struct {
	Name string
	Err  error
}

func (e *ReloadError) Error() string {
	return fmt.Sprintf("failed to reload module %q: %v", e.Name, e.Err)
}

func (e *ReloadError) Unwrap() error { return e.Err }
