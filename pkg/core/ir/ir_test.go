// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"strings"
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/opcore/pkg/core/device"
	"github.com/gomlx/opcore/pkg/core/ops"
	"github.com/gomlx/opcore/pkg/core/values"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func testRegistry() (r *ops.Registry, add, mul *ops.Op) {
	r = ops.NewRegistry()
	add = r.RegisterOp("add", ops.SchemaBinaryUfunc)
	mul = r.RegisterOp("multiply", ops.SchemaBinaryUfunc)
	return
}

func TestKind(t *testing.T) {
	assert.Equal(t, "TupleGetItem", KindTupleGetItem.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
	assert.Equal(t, KindOp, NewOpRef(nil).Kind())
	assert.Equal(t, KindFunction, NewPrimitive(nil, NewVar("x")).Kind())
}

func TestString(t *testing.T) {
	_, add, mul := testRegistry()
	x, y, t0 := NewVar("x"), NewVar("y"), NewVar("t0")
	prim := NewPrimitive([]*Var{x}, CallOp(mul, x, x))
	fn := NewFunction([]*Var{x, y},
		NewLet(t0, CallOp(add, x, NewConstant(values.Int(1))),
			NewIf(NewConstant(values.Bool(true)),
				NewTupleGetItem(NewTuple(NewCall(prim, t0), y), 0),
				NewCall(NewGlobalVar("other"), y))))
	want := "fn(%x, %y) { let %t0 = add(%x, 1:Int64); if (true) { " +
		"((fn[primitive](%x) { multiply(%x, %x) })(%t0), %y).0 } else { @other(%y) } }"
	if diff := cmp.Diff(want, fn.String()); diff != "" {
		t.Errorf("unexpected printed function (-want +got):\n%s", diff)
	}
	assert.Equal(t, "<nil>", String(nil))
}

func TestEqual(t *testing.T) {
	_, add, mul := testRegistry()
	x, y := NewVar("x"), NewVar("y")
	tensor := values.NewTensor(device.New(device.CPU, 0), dtypes.Float32, 2, 3)

	build := func(op *ops.Op, v *Var) Expr {
		return NewFunction([]*Var{x}, NewTuple(CallOp(op, v, NewConstant(tensor)), NewGlobalVar("g")))
	}
	assert.True(t, Equal(build(add, x), build(add, x)))
	assert.False(t, Equal(build(add, x), build(mul, x)))
	assert.False(t, Equal(build(add, x), build(add, y)))
	assert.False(t, Equal(build(add, x), nil))
	assert.True(t, Equal(nil, nil))

	// Vars with the same name are still different variables.
	assert.False(t, Equal(NewVar("x"), NewVar("x")))

	// Primitive attribute counts.
	assert.False(t, Equal(NewFunction([]*Var{x}, x), NewPrimitive([]*Var{x}, x)))
	assert.True(t, Equal(NewPrimitive([]*Var{x}, x), NewPrimitive([]*Var{x}, x)))
}

func TestCollectOps(t *testing.T) {
	_, add, mul := testRegistry()
	x := NewVar("x")
	prim := NewPrimitive([]*Var{x}, CallOp(mul, x, x))
	shared := CallOp(add, x, x)
	fn := NewFunction([]*Var{x}, NewTuple(shared, shared, NewCall(prim, x)))

	got := CollectOps(fn, false)
	require.Len(t, got, 2)
	assert.Same(t, add, got[0])
	assert.Same(t, mul, got[1])

	got = CollectOps(fn, true)
	require.Len(t, got, 1)
	assert.Same(t, add, got[0])

	// Shared sub-expressions are visited once.
	count := 0
	Visit(fn, func(e Expr) bool {
		if e == Expr(shared) {
			count++
		}
		return true
	})
	assert.Equal(t, 1, count)
}

func TestModule(t *testing.T) {
	_, add, _ := testRegistry()
	x := NewVar("x")
	m := NewModule()
	require.NoError(t, m.Add("main", NewFunction([]*Var{x}, NewCall(NewGlobalVar("helper"), x))))
	require.NoError(t, m.Add("helper", NewFunction([]*Var{x}, CallOp(add, x, x))))
	require.Error(t, m.Add("main", NewFunction(nil, x)))
	require.Error(t, m.Add("nil", nil))
	assert.Equal(t, []string{"main", "helper"}, m.Names())
	assert.Equal(t, 2, m.Len())
	require.NoError(t, m.Validate())

	clone := m.Clone()
	require.NoError(t, clone.Update("helper", NewFunction([]*Var{x}, x)))
	require.Error(t, clone.Update("missing", NewFunction(nil, x)))
	fn, found := m.Lookup("helper")
	require.True(t, found)
	assert.Equal(t, "fn(%x) { add(%x, %x) }", fn.String())
	assert.True(t, strings.HasPrefix(m.String(), "@main = fn(%x) { @helper(%x) }\n"))
}

func TestModuleValidate(t *testing.T) {
	x := NewVar("x")
	m := NewModule()
	require.NoError(t, m.Add("bad", NewFunction([]*Var{x}, NewTuple(
		NewCall(NewGlobalVar("missing"), x),
		NewOpRef(nil),
		&Constant{},
		NewLet(x, nil, x)))))
	require.NoError(t, m.Add("empty", &Function{}))
	err := m.Validate()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 5)
	assert.Contains(t, err.Error(), "undefined global @missing")
	assert.Contains(t, err.Error(), `function "empty": nil body`)
}
