// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package shapes

import (
	"testing"

	. "github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/require"
)

func TestShape(t *testing.T) {
	require.Equal(t, InvalidDType, Invalid().DType)

	shape0 := Make(Float64)
	require.Equal(t, 0, shape0.Rank())
	require.Len(t, shape0.Dimensions, 0)
	require.Equal(t, 1, shape0.Size())
	require.Equal(t, 8, int(shape0.Memory()))
	require.Equal(t, "(Float64)", shape0.String())

	shape1 := Make(Float32, 4, 3, 2)
	require.Equal(t, 3, shape1.Rank())
	require.Equal(t, 4*3*2, shape1.Size())
	require.Equal(t, 4*4*3*2, int(shape1.Memory()))
	require.Equal(t, "(Float32)[4 3 2]", shape1.String())

	// Empty tensors are valid.
	empty := Make(Int64, 0, 3)
	require.Equal(t, 0, empty.Size())
	require.Panics(t, func() { _ = Make(Int64, 2, -1) })

	// Make doesn't alias the caller's dimensions.
	dims := []int{2, 3}
	s := Make(Int8, dims...)
	dims[0] = 7
	require.Equal(t, 2, s.Dimensions[0])
}

func TestEqualAndClone(t *testing.T) {
	s := Make(Float32, 2, 3)
	c := s.Clone()
	require.True(t, s.Equal(c))
	c.Dimensions[0] = 5
	require.Equal(t, 2, s.Dimensions[0])
	require.False(t, s.Equal(c))

	require.False(t, Make(Int32, 2, 3).Equal(s))
	require.False(t, Make(Float32, 2).Equal(s))
	require.NoError(t, s.Check(Float32, 2, 3))
	require.Error(t, s.Check(Float32, 3, 2))
	require.Error(t, s.Check(Int32, 2, 3))
}
