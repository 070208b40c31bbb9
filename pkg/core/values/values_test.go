// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package values

import (
	"math"
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/opcore/pkg/core/device"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarConstructors(t *testing.T) {
	i := Int(-7)
	assert.Equal(t, ScalarInt, i.Kind())
	assert.Equal(t, dtypes.Int64, i.DType())
	assert.Equal(t, int64(-7), i.AsInt64())
	assert.Equal(t, -7.0, i.AsFloat64())
	assert.True(t, i.AsBool())
	assert.Equal(t, "-7:Int64", i.String())

	f := Float(3.5)
	assert.True(t, f.IsFloat())
	assert.Equal(t, dtypes.Float64, f.DType())
	assert.Equal(t, int64(3), f.AsInt64())
	assert.Equal(t, "3.5:Float64", f.String())

	b := Bool(true)
	assert.Equal(t, ScalarBool, b.Kind())
	assert.Equal(t, int64(1), b.AsInt64())
	assert.Equal(t, 1.0, b.AsFloat64())
	assert.Equal(t, "true", b.String())

	assert.True(t, Int(0).IsZero())
	assert.True(t, Float(0).IsZero())
	assert.True(t, Bool(false).IsZero())
	assert.False(t, Float(1e-300).IsZero())
}

func TestScalarPrecision(t *testing.T) {
	// Integers wrap to the dtype range.
	assert.Equal(t, int64(-128), IntOf(dtypes.Int8, 128).AsInt64())
	assert.Equal(t, int64(255), IntOf(dtypes.Uint8, -1).AsInt64())
	assert.Equal(t, float64(math.MaxUint64), IntOf(dtypes.Uint64, -1).AsFloat64())
	assert.True(t, IntOf(dtypes.Uint64, -1).IsUint64())
	assert.Equal(t, uint64(math.MaxUint64), IntOf(dtypes.Uint64, -1).AsUint64())
	assert.False(t, Int(-1).IsUint64())

	// Floats are rounded to the dtype precision.
	assert.Equal(t, float64(float32(0.1)), FloatOf(dtypes.Float32, 0.1).AsFloat64())
	assert.Equal(t, 2048.0, FloatOf(dtypes.Float16, 2049).AsFloat64())
	assert.Equal(t, 256.0, FloatOf(dtypes.BFloat16, 257).AsFloat64())

	require.Panics(t, func() { IntOf(dtypes.Float32, 1) })
	require.Panics(t, func() { FloatOf(dtypes.Int32, 1) })
}

func TestEqual(t *testing.T) {
	cpu := device.New(device.CPU, 0)
	t1 := NewTensor(cpu, dtypes.Float32, 2, 3)
	assert.True(t, Equal(t1, NewTensor(cpu, dtypes.Float32, 2, 3)))
	assert.False(t, Equal(t1, NewTensor(device.New(device.CUDA, 0), dtypes.Float32, 2, 3)))
	assert.False(t, Equal(t1, NewTensor(cpu, dtypes.Float32, 3, 2)))
	assert.False(t, Equal(t1, Int(1)))
	assert.True(t, Equal(Int(1), Int(1)))
	assert.False(t, Equal(Int(1), IntOf(dtypes.Int32, 1)))
	assert.False(t, Equal(Int(1), nil))
	assert.True(t, Equal(nil, nil))

	assert.Equal(t, "tensor(Float32)[2 3]@cpu(0)", t1.String())
	assert.Equal(t, 24, int(t1.Memory()))
	assert.Equal(t, "scalar", KindOf(Int(1)))
	assert.Equal(t, "tensor", KindOf(t1))
	assert.Equal(t, "none", KindOf(nil))
}

func TestKindNames(t *testing.T) {
	assert.Equal(t, []string{"int", "float", "bool"}, ScalarKindStrings())
	assert.Equal(t, "ScalarKind(7)", ScalarKind(7).String())
	assert.Equal(t, []string{"scalar", "tensor"}, ValueKindStrings())
	kind, err := ValueKindString("Tensor")
	require.NoError(t, err)
	assert.Equal(t, KindTensor, kind)
}
