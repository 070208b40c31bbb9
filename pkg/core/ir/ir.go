// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package ir defines the intermediate representation of compiled functions: a tree (or DAG, when
// sub-expressions are shared) of expressions, each with a Kind from a closed enumeration.
//
// Expressions are immutable once built: passes that transform them build new expressions, reusing
// the sub-expressions that didn't change.
package ir

import (
	"slices"

	"github.com/gomlx/opcore/pkg/core/ops"
	"github.com/gomlx/opcore/pkg/core/values"
)

// Kind enumerates the kinds of expressions.
type Kind int

//go:generate go tool enumer -type=Kind -trimprefix=Kind -output=gen_kind_enumer.go ir.go

const (
	KindVar Kind = iota
	KindGlobalVar
	KindConstant
	KindOp
	KindCall
	KindFunction
	KindTuple
	KindTupleGetItem
	KindLet
	KindIf
)

// Expr is an expression of the IR. The concrete type of an Expr is determined by its Kind:
// *Var, *GlobalVar, *Constant, *OpRef, *Call, *Function, *Tuple, *TupleGetItem, *Let or *If.
type Expr interface {
	Kind() Kind
}

// Var is a local variable: a function parameter or a let binding. Vars are compared by identity.
type Var struct {
	Name string
}

// GlobalVar refers to a function of a Module by name.
type GlobalVar struct {
	Name string
}

// Constant holds a compile-time value.
type Constant struct {
	Value values.Value
}

// OpRef is a reference to an operator. It is usually the callee of a Call.
type OpRef struct {
	Op *ops.Op
}

// Call invokes Fn (an OpRef, a Function, a GlobalVar or any expression evaluating to a function) with Args.
type Call struct {
	Fn   Expr
	Args []Expr
}

// Function is a function literal.
//
// A Primitive function was fused by an earlier pass into a single kernel: its body is committed to a
// specific lowering and later per-operator rewrites must leave it untouched.
type Function struct {
	Params    []*Var
	Body      Expr
	Primitive bool
}

// Tuple groups expressions.
type Tuple struct {
	Fields []Expr
}

// TupleGetItem extracts the element Index of Tuple.
type TupleGetItem struct {
	Tuple Expr
	Index int
}

// Let binds Var to Value within Body.
type Let struct {
	Var   *Var
	Value Expr
	Body  Expr
}

// If evaluates Then or Else depending on Cond.
type If struct {
	Cond, Then, Else Expr
}

func (*Var) Kind() Kind          { return KindVar }
func (*GlobalVar) Kind() Kind    { return KindGlobalVar }
func (*Constant) Kind() Kind     { return KindConstant }
func (*OpRef) Kind() Kind        { return KindOp }
func (*Call) Kind() Kind         { return KindCall }
func (*Function) Kind() Kind     { return KindFunction }
func (*Tuple) Kind() Kind        { return KindTuple }
func (*TupleGetItem) Kind() Kind { return KindTupleGetItem }
func (*Let) Kind() Kind          { return KindLet }
func (*If) Kind() Kind           { return KindIf }

// NewVar creates a new variable.
func NewVar(name string) *Var { return &Var{Name: name} }

// NewGlobalVar creates a reference to the function name of a module.
func NewGlobalVar(name string) *GlobalVar { return &GlobalVar{Name: name} }

// NewConstant creates a constant expression.
func NewConstant(value values.Value) *Constant { return &Constant{Value: value} }

// NewOpRef creates a reference to op.
func NewOpRef(op *ops.Op) *OpRef { return &OpRef{Op: op} }

// NewCall creates a call of fn with the given arguments.
func NewCall(fn Expr, args ...Expr) *Call { return &Call{Fn: fn, Args: slices.Clone(args)} }

// CallOp creates a call to the operator op.
func CallOp(op *ops.Op, args ...Expr) *Call { return NewCall(NewOpRef(op), args...) }

// NewFunction creates a (non-primitive) function.
func NewFunction(params []*Var, body Expr) *Function {
	return &Function{Params: slices.Clone(params), Body: body}
}

// NewPrimitive creates a primitive (fused) function.
func NewPrimitive(params []*Var, body Expr) *Function {
	return &Function{Params: slices.Clone(params), Body: body, Primitive: true}
}

// WithBody returns a copy of f with a new body. Parameters and attributes are kept.
func (f *Function) WithBody(body Expr) *Function {
	return &Function{Params: f.Params, Body: body, Primitive: f.Primitive}
}

// NewTuple creates a tuple of the given fields.
func NewTuple(fields ...Expr) *Tuple { return &Tuple{Fields: slices.Clone(fields)} }

// NewTupleGetItem creates an expression extracting element index of tuple.
func NewTupleGetItem(tuple Expr, index int) *TupleGetItem {
	return &TupleGetItem{Tuple: tuple, Index: index}
}

// NewLet creates a let binding.
func NewLet(v *Var, value, body Expr) *Let { return &Let{Var: v, Value: value, Body: body} }

// NewIf creates a conditional expression.
func NewIf(cond, then, els Expr) *If { return &If{Cond: cond, Then: then, Else: els} }
