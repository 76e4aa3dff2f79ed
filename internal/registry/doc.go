// Package registry provides the central "glue" for the module system.
//
// The Registry owns a fixed, ordered list of module names and the mapping
// from each name to the opaque handle produced by resolving it. How a name
// becomes a handle is delegated to an injected Resolver, so the registry's
// control logic stays independent of the resolution mechanism (a compiled-in
// table, a plugin lookup, a remote fetch).
//
// Loading is all-or-nothing at the batch level: LoadAll reports a single
// BatchLoadError no matter which name failed, while handles resolved before
// the failure remain recorded. Reload replaces a single handle in place and
// refuses to touch names that were never loaded.
package registry
