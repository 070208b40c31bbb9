// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ops

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/opcore/pkg/core/device"
	"github.com/gomlx/opcore/pkg/core/values"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry() *Registry {
	r := NewRegistry()
	r.RegisterOp("add", SchemaBinaryUfunc)
	r.RegisterOp("multiply", SchemaBinaryUfunc)
	r.RegisterOp("vm.alloc_tensor", SchemaNone)
	r.RegisterDialect("tvm", device.CPU, device.CUDA)
	r.RegisterDialect("cudnn", device.CUDA)
	r.RegisterDialect("mps", device.Metal)
	r.RegisterDialectOp("add", "tvm", 10)
	r.RegisterDialectOp("add", "cudnn", 15)
	r.RegisterDialectOp("multiply", "tvm", 10)
	r.RegisterDialectOp("multiply", "mps", 10)
	return r
}

func TestRegistry(t *testing.T) {
	r := newTestRegistry()
	add := r.MustLookup("add")
	assert.False(t, add.IsDialect())
	assert.Equal(t, add, add.Base())
	assert.Same(t, add, r.RegisterOp("add", SchemaBinaryUfunc))
	require.Panics(t, func() { r.RegisterOp("add", SchemaBinaryDx) })
	require.Panics(t, func() { r.RegisterOp("", SchemaNone) })

	cudnnAdd := r.MustLookup("cudnn.add")
	assert.True(t, cudnnAdd.IsDialect())
	assert.Equal(t, "cudnn", cudnnAdd.Dialect())
	assert.Same(t, add, cudnnAdd.Base())
	assert.Equal(t, 15, cudnnAdd.PLevel())
	assert.Equal(t, SchemaBinaryUfunc, cudnnAdd.Schema())
	assert.Equal(t, "BinaryUfunc", cudnnAdd.Schema().String())
	assert.Equal(t, []string{"None", "BinaryUfunc", "BinaryDx"}, SchemaStrings())
	require.Panics(t, func() { r.RegisterOp("cudnn.add", SchemaBinaryUfunc) })

	// Dialect ops sorted by priority.
	dialectOps := r.DialectOps(add)
	require.Len(t, dialectOps, 2)
	assert.Equal(t, "cudnn.add", dialectOps[0].Name())
	assert.Equal(t, "tvm.add", dialectOps[1].Name())

	require.Panics(t, func() { r.RegisterDialectOp("add", "tvm", 3) })
	require.Panics(t, func() { r.RegisterDialectOp("add", "unknown", 3) })
	require.Panics(t, func() { r.RegisterDialectOp("subtract", "tvm", 3) })
	require.Panics(t, func() { r.RegisterDialectOp("tvm.add", "cudnn", 3) })
	require.Panics(t, func() { r.MustLookup("subtract") })
	_, found := r.Lookup("subtract")
	assert.False(t, found)

	assert.Equal(t, []string{"add", "cudnn.add", "mps.multiply", "multiply", "tvm.add", "tvm.multiply", "vm.alloc_tensor"},
		r.OpNames())

	d, found := r.LookupDialect("tvm")
	require.True(t, found)
	assert.True(t, d.EnabledOn(device.CUDA))
	assert.False(t, d.EnabledOn(device.Metal))
	r.RegisterDialect("tvm", device.Metal)
	assert.True(t, d.EnabledOn(device.Metal))
	assert.Equal(t, []device.DevType{device.CPU, device.CUDA, device.Metal}, d.DevTypes())
	assert.Equal(t, []string{"cudnn", "mps", "tvm"}, r.DialectNames())
}

func TestDeclareRule(t *testing.T) {
	r := newTestRegistry()
	rule := func(call *CallValues) { call.Out = values.Int(0) }
	r.Declare("add", rule)
	require.NotNil(t, r.MustLookup("add").Rule())
	require.NotNil(t, r.MustLookup("tvm.add").Rule(), "dialect ops use the rule of their base op")
	require.Panics(t, func() { r.Declare("add", rule) })
	require.Panics(t, func() { r.Declare("tvm.multiply", rule) })
	require.Panics(t, func() { r.Declare("multiply", nil) })
	require.Nil(t, r.MustLookup("multiply").Rule())
}

func TestDispatch(t *testing.T) {
	r := newTestRegistry()
	add, multiply := r.MustLookup("add"), r.MustLookup("multiply")

	assert.Equal(t, "cudnn.add", r.Dispatch(add, device.CUDA, nil).Name())
	assert.Equal(t, "tvm.add", r.Dispatch(add, device.CPU, nil).Name())
	assert.Nil(t, r.Dispatch(add, device.Metal, nil))
	assert.Nil(t, r.Dispatch(add, device.Unknown, nil))
	assert.Equal(t, "tvm.add", r.Dispatch(add, device.CUDA, []string{"tvm"}).Name())
	assert.Nil(t, r.Dispatch(add, device.CUDA, []string{"mps"}))

	// Ties are broken by dialect name.
	r.RegisterDialect("mps", device.CPU)
	assert.Equal(t, "mps.multiply", r.Dispatch(multiply, device.CPU, nil).Name())

	// Dialect ops and ops without dialects are not dispatched.
	assert.Nil(t, r.Dispatch(r.MustLookup("cudnn.add"), device.CUDA, nil))
	assert.Nil(t, r.Dispatch(r.MustLookup("vm.alloc_tensor"), device.CUDA, nil))
	assert.Nil(t, r.Dispatch(nil, device.CUDA, nil))
}

func TestNewCall(t *testing.T) {
	r := newTestRegistry()
	add := r.MustLookup("add")
	x := values.NewTensor(device.New(device.CPU, 0), dtypes.Float32, 2, 3)

	call := must.M1(NewCall(add, x, values.Int(1)))
	args, ok := call.Args.(*BinaryUfuncArgs)
	require.True(t, ok)
	assert.Equal(t, x, args.X1)
	assert.Nil(t, args.Out)
	assert.Nil(t, args.Where)
	assert.False(t, call.IsResolved())
	assert.Equal(t, device.Unset(), call.Device)
	assert.Equal(t, "add(tensor(Float32)[2 3]@cpu(0), 1:Int64)", call.String())

	call = must.M1(NewCall(add, x, x, x, nil))
	args = call.Args.(*BinaryUfuncArgs)
	assert.Equal(t, x, args.Out)
	assert.Nil(t, args.Where)

	for _, bad := range [][]values.Value{{x}, {x, x, x, x, x}, {x, nil}} {
		_, err := NewCall(add, bad...)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrSchemaMismatch))
	}
	_, err := NewCall(r.MustLookup("vm.alloc_tensor"), x)
	assert.True(t, errors.Is(err, ErrSchemaMismatch))
	_, err = NewCall(nil)
	assert.True(t, errors.Is(err, ErrSchemaMismatch))

	dx := must.M1(BindArgs(SchemaBinaryDx, []values.Value{x, x}))
	assert.Equal(t, SchemaBinaryDx, dx.Schema())
	_, err = BindArgs(SchemaBinaryDx, []values.Value{x})
	assert.True(t, errors.Is(err, ErrSchemaMismatch))
}
