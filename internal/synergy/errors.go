package synergy

import "fmt"

// EvaluationError reports that scoring a single pair failed.
type EvaluationError struct {
	Module1 string
	Module2 string
	Err     error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("failed to evaluate connection between %q and %q: %v", e.Module1, e.Module2, e.Err)
}

func (e *EvaluationError) Unwrap() error { return e.Err }

// OptimizationError is the single error kind FindBestPartners reports. The
// per-pair failure is reachable through Unwrap.
type OptimizationError struct {
	Err error
}

func (e *OptimizationError) Error() string {
	return fmt.Sprintf("failed to analyze synergies between modules: %v", e.Err)
}

func (e *OptimizationError) Unwrap() error { return e.Err }
