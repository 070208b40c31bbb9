// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dialects

import (
	"testing"

	"github.com/gomlx/opcore/pkg/core/declare"
	"github.com/gomlx/opcore/pkg/core/device"
	"github.com/gomlx/opcore/pkg/core/ops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDispatch(t *testing.T) {
	r := ops.Default()
	add := r.MustLookup(declare.OpAdd)
	assert.Equal(t, "cudnn.add", r.Dispatch(add, device.CUDA, nil).Name())
	assert.Equal(t, "tvm.add", r.Dispatch(add, device.CPU, nil).Name())
	assert.Nil(t, r.Dispatch(add, device.Metal, nil))

	less := r.MustLookup(declare.OpLess)
	assert.Equal(t, "tvm.less", r.Dispatch(less, device.CUDA, nil).Name())

	for _, name := range []string{OpAllocStorage, OpAllocTensor, OpInvokeOp, OpSetShape} {
		op := r.MustLookup(name)
		assert.Nilf(t, r.Dispatch(op, device.CUDA, nil), "runtime op %q should have no dialect", name)
		assert.Empty(t, r.DialectOps(op))
	}
}

func TestRegister(t *testing.T) {
	r := ops.NewRegistry()
	require.Panics(t, func() { Register(r) }, "declare.Register must be called first")

	r = ops.NewRegistry()
	declare.Register(r)
	Register(r)
	for _, name := range declare.Names() {
		op := r.MustLookup("tvm." + name)
		assert.Equal(t, PLevelTVM, op.PLevel())
	}
	assert.Len(t, r.DialectOps(r.MustLookup(declare.OpAddDx)), 2)
}
