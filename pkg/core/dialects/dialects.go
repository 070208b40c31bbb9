// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package dialects registers the default dialects and their operators, along with the runtime
// operators that have no dialect counterpart.
//
// To use it simply include:
//
//	import _ "github.com/gomlx/opcore/pkg/core/dialects"
//
// The kernels themselves are provided by the backends: here only the dialect operators and their
// priority levels are declared.
package dialects

import (
	"github.com/gomlx/opcore/pkg/core/declare"
	"github.com/gomlx/opcore/pkg/core/device"
	"github.com/gomlx/opcore/pkg/core/ops"
)

// Names of the default dialects.
const (
	// TVM dialect: operators compiled by TVM, for CPU and CUDA.
	TVM = "tvm"

	// CuDNN dialect: operators backed by NVidia's cuDNN library.
	CuDNN = "cudnn"
)

// Runtime operators: they are handled by the virtual machine and never dispatched to a dialect.
const (
	OpAllocStorage = "vm.alloc_storage"
	OpAllocTensor  = "vm.alloc_tensor"
	OpInvokeOp     = "vm.invoke_op"
	OpSetShape     = "vm.set_shape"
)

// Default priority levels.
const (
	PLevelTVM   = 10
	PLevelCuDNN = 15
)

// table lists, for each dialect, the base operators it implements.
var table = []struct {
	dialect string
	plevel  int
	ops     []string
}{
	{TVM, PLevelTVM, declare.Names()},
	{CuDNN, PLevelCuDNN, []string{declare.OpAdd, declare.OpMultiply, declare.OpAddDx}},
}

func init() {
	Register(ops.Default())
}

// Register the default dialects, their operators and the runtime operators into registry.
// The operators of package declare must already be registered in it.
func Register(registry *ops.Registry) {
	registry.RegisterDialect(TVM, device.CPU, device.CUDA)
	registry.RegisterDialect(CuDNN, device.CUDA)
	for _, entry := range table {
		for _, name := range entry.ops {
			registry.RegisterDialectOp(name, entry.dialect, entry.plevel)
		}
	}
	for _, name := range []string{OpAllocStorage, OpAllocTensor, OpInvokeOp, OpSetShape} {
		registry.RegisterOp(name, ops.SchemaNone)
	}
}
