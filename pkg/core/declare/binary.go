// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package declare

import (
	"github.com/gomlx/opcore/pkg/core/ops"
	"github.com/gomlx/opcore/pkg/core/shapeinference"
	"github.com/gomlx/opcore/pkg/core/values"
	"github.com/pkg/errors"
)

// ufuncArgs returns the arguments of a call to a binary ufunc, and panics if they were bound to another schema.
func ufuncArgs(name string, call *ops.CallValues) *ops.BinaryUfuncArgs {
	args, ok := call.Args.(*ops.BinaryUfuncArgs)
	if !ok || args == nil {
		panic(errors.Wrapf(ops.ErrSchemaMismatch, "%s: expected %s arguments, got %T", name, ops.SchemaBinaryUfunc, call.Args))
	}
	return args
}

func unsupported(name string, operands ...values.Value) error {
	kinds := make([]string, len(operands))
	for ii, operand := range operands {
		kinds[ii] = values.KindOf(operand)
	}
	return errors.Wrapf(ops.ErrUnsupportedOperands, "%s: operand kinds %v", name, kinds)
}

// binaryArithmetic returns the rule of an arithmetic binary ufunc.
//
// Two scalars are folded. Two tensors are broadcast, and the output is placed on x1's device with x1's dtype.
func binaryArithmetic(name string, op arithOp) ops.Rule {
	return func(call *ops.CallValues) {
		args := ufuncArgs(name, call)
		if args.Out == nil && args.Where == nil {
			switch x1 := args.X1.(type) {
			case values.ScalarValue:
				if x2, ok := args.X2.(values.ScalarValue); ok {
					call.Out = foldArithmetic(name, op, x1, x2)
					call.Callee = nil
					return
				}
			case values.TensorValue:
				if x2, ok := args.X2.(values.TensorValue); ok {
					shape, err := shapeinference.BroadcastOp(x1.Shape, x2.Shape)
					if err != nil {
						panic(errors.WithMessagef(err, "%s", name))
					}
					out := values.TensorValue{Device: x1.Device, Shape: shape}
					call.Out = out
					call.Device = out.Device
					return
				}
			}
		}
		panic(unsupported(name, args.X1, args.X2, args.Out, args.Where))
	}
}

// binaryComparison returns the rule of a comparison binary ufunc. Only scalars are supported: they are folded
// into a boolean.
func binaryComparison(name string, op cmpOp) ops.Rule {
	return func(call *ops.CallValues) {
		args := ufuncArgs(name, call)
		if args.Out == nil && args.Where == nil {
			if x1, ok := args.X1.(values.ScalarValue); ok {
				if x2, ok := args.X2.(values.ScalarValue); ok {
					call.Out = foldComparison(op, x1, x2)
					call.Callee = nil
					return
				}
			}
		}
		panic(unsupported(name, args.X1, args.X2, args.Out, args.Where))
	}
}

// addDx declares the gradient of add with respect to x1: it validates that x1 broadcasts to dy, and
// its output has the exact description of x1. The reduction over the broadcast axes is left to the kernel.
func addDx(call *ops.CallValues) {
	args, ok := call.Args.(*ops.BinaryDxArgs)
	if !ok || args == nil {
		panic(errors.Wrapf(ops.ErrSchemaMismatch, "%s: expected %s arguments, got %T", OpAddDx, ops.SchemaBinaryDx, call.Args))
	}
	x1, ok1 := args.X1.(values.TensorValue)
	dy, ok2 := args.Dy.(values.TensorValue)
	if !ok1 || !ok2 {
		panic(unsupported(OpAddDx, args.X1, args.Dy))
	}
	shape, err := shapeinference.BinaryGradOp(x1.Shape, dy.Shape)
	if err != nil {
		panic(errors.WithMessagef(err, "%s", OpAddDx))
	}
	call.Out = values.TensorValue{Device: x1.Device, Shape: shape}
	call.Device = x1.Device
}
