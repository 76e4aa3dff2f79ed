// Package reasoning provides the inference module: a unit that evaluates
// HCL expressions against a bound variable scope, so callers can phrase
// simple deductions ("threat = motion && !authorized") as text.
package reasoning

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/synergrid/internal/ctxlog"
	"github.com/vk/synergrid/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

var _ registry.Factory = (*Module)(nil)

// Module implements the registry.Factory interface for this package.
type Module struct{}

// Name returns the module name this factory resolves.
func (m *Module) Name() string { return "reasoning" }

// New constructs a fresh unit with an empty scope.
func (m *Module) New(ctx context.Context) (any, error) {
	ctxlog.FromContext(ctx).Debug("Creating reasoning unit.")
	return NewUnit(), nil
}

// Refresh rebuilds the unit. Bindings are deliberately dropped: a reloaded
// reasoner starts from a clean scope.
func (m *Module) Refresh(ctx context.Context, handle any) (any, error) {
	if _, ok := handle.(*Unit); !ok {
		return nil, fmt.Errorf("reasoning: cannot refresh handle of type %T", handle)
	}
	ctxlog.FromContext(ctx).Debug("Reasoning unit refreshed with a clean scope.")
	return NewUnit(), nil
}

// Unit is the inference handle: a variable scope plus an expression
// evaluator. Not safe for concurrent use.
type Unit struct {
	vars map[string]cty.Value
}

// NewUnit creates a unit with an empty scope.
func NewUnit() *Unit {
	return &Unit{vars: make(map[string]cty.Value)}
}

// Bind adds or replaces a variable in the evaluation scope.
func (u *Unit) Bind(name string, value cty.Value) {
	u.vars[name] = value
}

// Evaluate parses and evaluates a single HCL expression against the current
// scope and returns the resulting value.
func (u *Unit) Evaluate(expr string) (cty.Value, error) {
	parsed, diags := hclsyntax.ParseExpression([]byte(expr), "<inline>", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("failed to parse expression: %w", diags)
	}

	val, diags := parsed.Value(&hcl.EvalContext{Variables: u.vars})
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("failed to evaluate expression: %w", diags)
	}
	return val, nil
}
