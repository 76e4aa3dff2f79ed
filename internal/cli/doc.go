// Package cli parses command-line arguments into an app.Config and carries
// exit-code semantics back to main through ExitError.
package cli
