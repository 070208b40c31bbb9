// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package shapeinference calculates the shapes resulting from operations and validates their inputs.
//
// It defines BroadcastOp, used by the element-wise binary operators, and BinaryGradOp, which validates
// the shape of the gradient of a broadcast operand.
//
// Errors returned wrap ErrShapeMismatch, so they can be checked with errors.Is.
package shapeinference

import (
	"github.com/gomlx/opcore/pkg/core/shapes"
	"github.com/pkg/errors"
)

// ErrShapeMismatch is wrapped by all errors caused by incompatible shapes.
var ErrShapeMismatch = errors.New("shape mismatch")

// BroadcastOp returns the output shape of an element-wise binary operation, using the standard
// broadcasting rules: shapes are right-aligned, missing leading axes are taken as 1, and on each axis
// the dimensions must either match or one of them must be 1.
//
// The output rank is the largest of the two ranks, and its DType is lhsShape's.
func BroadcastOp(lhsShape, rhsShape shapes.Shape) (output shapes.Shape, err error) {
	lhsRank, rhsRank := lhsShape.Rank(), rhsShape.Rank()
	rank := max(lhsRank, rhsRank)
	output = shapes.Shape{DType: lhsShape.DType, Dimensions: make([]int, rank)}
	// Iterate from the last (fastest-varying) axis backwards.
	for ii := range rank {
		lhsDim := 1
		if ii < lhsRank {
			lhsDim = lhsShape.Dimensions[lhsRank-1-ii]
		}
		rhsDim := 1
		if ii < rhsRank {
			rhsDim = rhsShape.Dimensions[rhsRank-1-ii]
		}
		outAxis := rank - 1 - ii
		switch {
		case lhsDim == 1:
			output.Dimensions[outAxis] = rhsDim
		case rhsDim == 1, lhsDim == rhsDim:
			output.Dimensions[outAxis] = lhsDim
		default:
			err = errors.Wrapf(ErrShapeMismatch,
				"cannot broadcast %s and %s: dimensions %d and %d of output axis #%d don't match",
				lhsShape, rhsShape, lhsDim, rhsDim, outAxis)
			return shapes.Invalid(), err
		}
	}
	return
}

// BinaryGradOp validates the shape of an operand of a broadcast binary operation against the shape
// of the incoming gradient, and returns the shape of the operand's gradient, which is the operand's
// own shape.
//
// The operand's rank must be <= the gradient's rank and, right-aligned, each of the operand's
// dimensions must either be 1 (broadcast) or equal the gradient's dimension.
func BinaryGradOp(operand, grad shapes.Shape) (output shapes.Shape, err error) {
	if operand.Rank() > grad.Rank() {
		err = errors.Wrapf(ErrShapeMismatch,
			"operand %s has rank %d, larger than the rank %d of its gradient %s",
			operand, operand.Rank(), grad.Rank(), grad)
		return shapes.Invalid(), err
	}
	offset := grad.Rank() - operand.Rank()
	for axis, dim := range operand.Dimensions {
		gradDim := grad.Dimensions[axis+offset]
		if dim != 1 && dim != gradDim {
			err = errors.Wrapf(ErrShapeMismatch,
				"operand %s axis #%d has dimension %d, which is neither 1 nor the gradient's %s dimension %d",
				operand, axis, dim, grad, gradDim)
			return shapes.Invalid(), err
		}
	}
	return operand.Clone(), nil
}
