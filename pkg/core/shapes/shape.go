// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package shapes defines Shape, the static metadata (dtype and dimensions) of a tensor.
//
// Shapes here describe values flowing through operator declarations: they carry no data.
// A shape with no dimensions is a scalar, and a dimension of 0 is a valid empty axis.
//
// Example: shapes.Make(dtypes.Int32, 2, 3) is printed as "(Int32)[2 3]".
package shapes

import (
	"fmt"
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
)

// Shape of a tensor value.
type Shape struct {
	DType      dtypes.DType
	Dimensions []int
}

// Make a Shape, owning a copy of dimensions. It panics on negative dimensions.
func Make(dtype dtypes.DType, dimensions ...int) Shape {
	s := Shape{Dimensions: slices.Clone(dimensions), DType: dtype}
	for _, dim := range dimensions {
		if dim < 0 {
			exceptions.Panicf("shapes.Make(%s): negative dimension", s)
		}
	}
	return s
}

// Invalid is the shape returned along with errors by the shape inference functions.
func Invalid() Shape {
	return Shape{DType: dtypes.InvalidDType}
}

// Rank is the number of dimensions.
func (s Shape) Rank() int { return len(s.Dimensions) }

// String implements fmt.Stringer. E.g.: "(Float32)[2 3]", or "(Int64)" for a scalar.
func (s Shape) String() string {
	if s.Rank() == 0 {
		return fmt.Sprintf("(%s)", s.DType)
	}
	return fmt.Sprintf("(%s)%v", s.DType, s.Dimensions)
}

// Size is the number of elements: 1 for scalars, 0 if any dimension is 0.
func (s Shape) Size() (size int) {
	size = 1
	for _, d := range s.Dimensions {
		size *= d
	}
	return
}

// Memory in bytes taken by a tensor of this shape.
func (s Shape) Memory() uintptr {
	return s.DType.Memory() * uintptr(s.Size())
}

// Equal returns whether both shapes have the same dtype and dimensions.
func (s Shape) Equal(s2 Shape) bool {
	return s.DType == s2.DType && slices.Equal(s.Dimensions, s2.Dimensions)
}

// Clone returns a copy of s that doesn't share the dimensions slice.
func (s Shape) Clone() Shape {
	return Shape{DType: s.DType, Dimensions: slices.Clone(s.Dimensions)}
}

// Check returns an error if s doesn't have the given dtype and dimensions.
func (s Shape) Check(dtype dtypes.DType, dimensions ...int) error {
	if s.DType != dtype {
		return errors.Errorf("shape %s has dtype %s, expected %s", s, s.DType, dtype)
	}
	if !slices.Equal(s.Dimensions, dimensions) {
		return errors.Errorf("shape %s has dimensions %v, expected %v", s, s.Dimensions, dimensions)
	}
	return nil
}
