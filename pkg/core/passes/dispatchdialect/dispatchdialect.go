// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package dispatchdialect implements the DispatchDialect pass: it replaces each reference to a base
// operator by the dialect operator with the highest priority level (plevel) enabled on the target
// device.
//
// Primitive (fused) functions are left untouched, and operators without a dialect for the device
// are kept as they are. The pass is idempotent.
package dispatchdialect

import (
	"github.com/gomlx/opcore/pkg/core/device"
	"github.com/gomlx/opcore/pkg/core/ir"
	"github.com/gomlx/opcore/pkg/core/ops"
	"github.com/gomlx/opcore/pkg/core/passes"
	"k8s.io/klog/v2"
)

// PassName under which the pass is registered.
const PassName = "DispatchDialect"

// OptLevel of the pass.
const OptLevel = 1

func init() {
	passes.Register(PassName, New)
}

// New creates the DispatchDialect function pass. It dispatches to the current device of the
// passes.Context, using its operators registry.
func New() passes.Pass {
	return passes.NewFunctionPass(PassName, OptLevel, func(_ *ir.Module, pc *passes.Context) passes.FunctionTransform {
		dev := pc.Device()
		if !dev.IsSet() {
			warnUnset()
			return nil
		}
		return func(fn *ir.Function) *ir.Function {
			return Dispatch(fn, dev, pc.Registry).(*ir.Function)
		}
	})
}

func warnUnset() {
	klog.Warningf("Device is not specified, skip %s pass.", PassName)
}

// Dispatch rewrites the operator references in expr to the dialect operators of dev, as selected
// by registry.Dispatch. It returns expr itself if nothing changed. A nil registry means ops.Default().
//
// If dev is not set, it logs a warning and returns expr unchanged.
func Dispatch(expr ir.Expr, dev device.Device, registry *ops.Registry) ir.Expr {
	if !dev.IsSet() {
		warnUnset()
		return expr
	}
	if registry == nil {
		registry = ops.Default()
	}
	m := &mutator{
		devType:  dev.Type,
		registry: registry,
		memo:     make(map[ir.Expr]ir.Expr),
	}
	result := m.visit(expr)
	if klog.V(1).Enabled() {
		klog.Infof("%s: %d operator references dispatched for %s", PassName, m.rewrites, dev)
	}
	return result
}

// mutator rebuilds an expression bottom-up, keeping the identity of sub-expressions that didn't change.
type mutator struct {
	devType  device.DevType
	registry *ops.Registry
	memo     map[ir.Expr]ir.Expr
	rewrites int
}

func (m *mutator) visit(expr ir.Expr) ir.Expr {
	if expr == nil {
		return nil
	}
	if result, found := m.memo[expr]; found {
		return result
	}
	result := m.rewrite(expr)
	m.memo[expr] = result
	return result
}

// visitList returns the new list and whether any element changed.
func (m *mutator) visitList(exprs []ir.Expr) ([]ir.Expr, bool) {
	var changed bool
	result := make([]ir.Expr, len(exprs))
	for ii, e := range exprs {
		result[ii] = m.visit(e)
		changed = changed || result[ii] != e
	}
	return result, changed
}

func (m *mutator) rewrite(expr ir.Expr) ir.Expr {
	switch expr.Kind() {
	case ir.KindVar, ir.KindGlobalVar, ir.KindConstant:
		return expr

	case ir.KindOp:
		ref := expr.(*ir.OpRef)
		if ref.Op == nil || ref.Op.IsDialect() {
			return expr
		}
		dialectOp := m.registry.Dispatch(ref.Op, m.devType, nil)
		if dialectOp == nil {
			return expr
		}
		m.rewrites++
		klog.V(3).Infof("%s: %s -> %s", PassName, ref.Op, dialectOp)
		return ir.NewOpRef(dialectOp)

	case ir.KindFunction:
		fn := expr.(*ir.Function)
		if fn.Primitive {
			// Fused functions are already lowered.
			return expr
		}
		body := m.visit(fn.Body)
		if body == fn.Body {
			return expr
		}
		return fn.WithBody(body)

	case ir.KindCall:
		call := expr.(*ir.Call)
		callee := m.visit(call.Fn)
		args, changed := m.visitList(call.Args)
		if callee == call.Fn && !changed {
			return expr
		}
		return &ir.Call{Fn: callee, Args: args}

	case ir.KindTuple:
		tuple := expr.(*ir.Tuple)
		fields, changed := m.visitList(tuple.Fields)
		if !changed {
			return expr
		}
		return &ir.Tuple{Fields: fields}

	case ir.KindTupleGetItem:
		get := expr.(*ir.TupleGetItem)
		tuple := m.visit(get.Tuple)
		if tuple == get.Tuple {
			return expr
		}
		return ir.NewTupleGetItem(tuple, get.Index)

	case ir.KindLet:
		let := expr.(*ir.Let)
		value, body := m.visit(let.Value), m.visit(let.Body)
		if value == let.Value && body == let.Body {
			return expr
		}
		return ir.NewLet(let.Var, value, body)

	case ir.KindIf:
		ifExpr := expr.(*ir.If)
		cond, then, els := m.visit(ifExpr.Cond), m.visit(ifExpr.Then), m.visit(ifExpr.Else)
		if cond == ifExpr.Cond && then == ifExpr.Then && els == ifExpr.Else {
			return expr
		}
		return ir.NewIf(cond, then, els)
	}
	return expr
}
