// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package declare implements the declaration rules of the operators: given a call with its arguments
// bound, a rule infers the call's output (dtype, shape and device) or, when all operands are
// compile-time scalars, computes the output and folds the call into a constant.
//
// Rules follow the convention of the backends: they panic with an error on invalid invocations,
// see package github.com/gomlx/exceptions. Declare runs the rule of a call and returns such
// errors instead. Errors wrap one of shapeinference.ErrShapeMismatch, ops.ErrDivisionByZero,
// ops.ErrUnsupportedOperands or ops.ErrSchemaMismatch.
//
// The package registers its operators and rules in ops.Default() during initialization. Use
// Register to populate other registries.
package declare

import (
	"github.com/dustin/go-humanize"
	"github.com/gomlx/exceptions"
	"github.com/gomlx/opcore/pkg/core/ops"
	"github.com/gomlx/opcore/pkg/core/values"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Names of the operators declared in this package.
const (
	OpAdd          = "add"
	OpSubtract     = "subtract"
	OpMultiply     = "multiply"
	OpDivide       = "divide"
	OpMod          = "mod"
	OpLess         = "less"
	OpGreater      = "greater"
	OpLessEqual    = "less_equal"
	OpGreaterEqual = "greater_equal"
	OpEqual        = "equal"
	OpNotEqual     = "not_equal"
	OpAddDx        = "add_dx"
)

// rules holds the schema and rule of each operator declared here.
var rules = []struct {
	name   string
	schema ops.Schema
	rule   ops.Rule
}{
	{OpAdd, ops.SchemaBinaryUfunc, binaryArithmetic(OpAdd, arithAdd)},
	{OpSubtract, ops.SchemaBinaryUfunc, binaryArithmetic(OpSubtract, arithSub)},
	{OpMultiply, ops.SchemaBinaryUfunc, binaryArithmetic(OpMultiply, arithMul)},
	{OpDivide, ops.SchemaBinaryUfunc, binaryArithmetic(OpDivide, arithDiv)},
	{OpMod, ops.SchemaBinaryUfunc, binaryArithmetic(OpMod, arithMod)},
	{OpLess, ops.SchemaBinaryUfunc, binaryComparison(OpLess, cmpLess)},
	{OpGreater, ops.SchemaBinaryUfunc, binaryComparison(OpGreater, cmpGreater)},
	{OpLessEqual, ops.SchemaBinaryUfunc, binaryComparison(OpLessEqual, cmpLessEqual)},
	{OpGreaterEqual, ops.SchemaBinaryUfunc, binaryComparison(OpGreaterEqual, cmpGreaterEqual)},
	{OpEqual, ops.SchemaBinaryUfunc, binaryComparison(OpEqual, cmpEqual)},
	{OpNotEqual, ops.SchemaBinaryUfunc, binaryComparison(OpNotEqual, cmpNotEqual)},
	{OpAddDx, ops.SchemaBinaryDx, addDx},
}

func init() {
	Register(ops.Default())
}

// Register the operators of this package, with their declaration rules, in the registry.
//
// It panics if any of them already has a rule in the registry.
func Register(registry *ops.Registry) {
	for _, r := range rules {
		registry.RegisterOp(r.name, r.schema)
		registry.Declare(r.name, r.rule)
	}
}

// Names returns the names of the operators declared by this package.
func Names() []string {
	names := make([]string, 0, len(rules))
	for _, r := range rules {
		names = append(names, r.name)
	}
	return names
}

// Declare runs the declaration rule of the call's operator, resolving the call.
//
// On success call.Out is set and, if the call was folded into a constant, call.Callee is nil.
// On failure the call is left unresolved and the error is returned.
func Declare(call *ops.CallValues) error {
	if call == nil || call.Callee == nil {
		return errors.New("declare.Declare(): call has no operator to declare")
	}
	if call.IsResolved() {
		return errors.Errorf("declare.Declare(): call %s was already resolved", call)
	}
	op := call.Callee
	rule := op.Rule()
	if rule == nil {
		return errors.Wrapf(ops.ErrUnsupportedOperands, "operator %q has no declaration rule", op.Name())
	}
	if call.Args == nil || call.Args.Schema() != op.Schema() {
		return errors.Wrapf(ops.ErrSchemaMismatch, "operator %q requires arguments of schema %s", op.Name(), op.Schema())
	}
	err := exceptions.TryCatch[error](func() { rule(call) })
	if err != nil {
		call.Out = nil
		call.Callee = op
		return errors.WithMessagef(err, "declaring %q", op.Name())
	}
	if call.Out == nil {
		call.Callee = op
		return errors.Errorf("declaration rule of %q didn't set the output", op.Name())
	}
	if klog.V(2).Enabled() {
		if tensor, ok := call.Out.(values.TensorValue); ok {
			klog.Infof("declared %s: %s on %s (%s)", op.Name(), tensor, call.Device, humanize.Bytes(uint64(tensor.Memory())))
		} else {
			klog.Infof("declared %s: folded to %s", op.Name(), call.Out)
		}
	}
	return nil
}
