// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"github.com/gomlx/opcore/pkg/core/ops"
	"github.com/gomlx/opcore/pkg/core/values"
)

// Equal reports whether a and b are structurally equal.
//
// Vars are compared by identity (the same *Var), operators by identity in the registry, and
// constants by their values.
func Equal(a, b Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a == b {
		return true
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch ea := a.(type) {
	case *Var:
		return false // Different pointers.
	case *GlobalVar:
		return ea.Name == b.(*GlobalVar).Name
	case *Constant:
		return values.Equal(ea.Value, b.(*Constant).Value)
	case *OpRef:
		return ea.Op == b.(*OpRef).Op
	case *Call:
		eb := b.(*Call)
		return Equal(ea.Fn, eb.Fn) && equalList(ea.Args, eb.Args)
	case *Function:
		eb := b.(*Function)
		if ea.Primitive != eb.Primitive || len(ea.Params) != len(eb.Params) {
			return false
		}
		for ii := range ea.Params {
			if ea.Params[ii] != eb.Params[ii] {
				return false
			}
		}
		return Equal(ea.Body, eb.Body)
	case *Tuple:
		return equalList(ea.Fields, b.(*Tuple).Fields)
	case *TupleGetItem:
		eb := b.(*TupleGetItem)
		return ea.Index == eb.Index && Equal(ea.Tuple, eb.Tuple)
	case *Let:
		eb := b.(*Let)
		return ea.Var == eb.Var && Equal(ea.Value, eb.Value) && Equal(ea.Body, eb.Body)
	case *If:
		eb := b.(*If)
		return Equal(ea.Cond, eb.Cond) && Equal(ea.Then, eb.Then) && Equal(ea.Else, eb.Else)
	}
	return false
}

func equalList(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for ii := range a {
		if !Equal(a[ii], b[ii]) {
			return false
		}
	}
	return true
}

// Visit calls fn for expr and each of its sub-expressions, in pre-order. Shared sub-expressions are
// visited once. If fn returns false, the sub-expressions of that node are not visited.
func Visit(expr Expr, fn func(Expr) bool) {
	visited := make(map[Expr]bool)
	var visit func(e Expr)
	visit = func(e Expr) {
		if e == nil || visited[e] {
			return
		}
		visited[e] = true
		if !fn(e) {
			return
		}
		switch node := e.(type) {
		case *Call:
			visit(node.Fn)
			for _, arg := range node.Args {
				visit(arg)
			}
		case *Function:
			for _, p := range node.Params {
				visit(p)
			}
			visit(node.Body)
		case *Tuple:
			for _, f := range node.Fields {
				visit(f)
			}
		case *TupleGetItem:
			visit(node.Tuple)
		case *Let:
			visit(node.Var)
			visit(node.Value)
			visit(node.Body)
		case *If:
			visit(node.Cond)
			visit(node.Then)
			visit(node.Else)
		}
	}
	visit(expr)
}

// CollectOps returns the operators referenced in expr, in pre-order of first appearance.
// If skipPrimitives is true, the bodies of primitive functions are not searched.
func CollectOps(expr Expr, skipPrimitives bool) []*ops.Op {
	var result []*ops.Op
	seen := make(map[*ops.Op]bool)
	Visit(expr, func(e Expr) bool {
		switch node := e.(type) {
		case *OpRef:
			if node.Op != nil && !seen[node.Op] {
				seen[node.Op] = true
				result = append(result, node.Op)
			}
		case *Function:
			return !(skipPrimitives && node.Primitive)
		}
		return true
	})
	return result
}
