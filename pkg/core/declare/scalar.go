// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package declare

import (
	"math"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/opcore/pkg/core/ops"
	"github.com/gomlx/opcore/pkg/core/values"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

type arithOp int

const (
	arithAdd arithOp = iota
	arithSub
	arithMul
	arithDiv
	arithMod
)

type cmpOp int

const (
	cmpLess cmpOp = iota
	cmpGreater
	cmpLessEqual
	cmpGreaterEqual
	cmpEqual
	cmpNotEqual
)

// foldArithmetic computes the arithmetic op on two scalars.
//
// If either operand is a float the operation is done in float64, otherwise in int64, with booleans taken as 0 or 1.
// Integer operations with a Uint64 operand are done in uint64, where negative operands wrap around.
// The result is then converted to the promoted dtype of the operands, see resultDType.
//
// Modulo of integers truncates (the result has the sign of the dividend), and modulo of floats is math.Mod.
func foldArithmetic(name string, op arithOp, x1, x2 values.ScalarValue) values.ScalarValue {
	if (op == arithDiv || op == arithMod) && x2.IsZero() {
		panic(errors.Wrapf(ops.ErrDivisionByZero, "%s(%s, %s)", name, x1, x2))
	}
	dtype := resultDType(x1, x2)
	if x1.IsFloat() || x2.IsFloat() {
		a, b := x1.AsFloat64(), x2.AsFloat64()
		if op == arithMod {
			return values.FloatOf(dtype, math.Mod(a, b))
		}
		return values.FloatOf(dtype, applyArith(op, a, b))
	}
	if x1.IsUint64() || x2.IsUint64() {
		a, b := x1.AsUint64(), x2.AsUint64()
		if op == arithMod {
			return values.IntOf(dtype, int64(a%b))
		}
		return values.IntOf(dtype, int64(applyArith(op, a, b)))
	}
	a, b := x1.AsInt64(), x2.AsInt64()
	if op == arithMod {
		return values.IntOf(dtype, a%b)
	}
	return values.IntOf(dtype, applyArith(op, a, b))
}

func applyArith[T constraints.Integer | constraints.Float](op arithOp, a, b T) T {
	switch op {
	case arithAdd:
		return a + b
	case arithSub:
		return a - b
	case arithMul:
		return a * b
	case arithDiv:
		return a / b
	}
	exceptions.Panicf("applyArith(): invalid arithmetic op %d", op)
	return 0
}

// resultDType of an arithmetic operation on two scalars:
//
//   - If either is a float: the float dtype, or the larger of both if both are floats.
//   - Otherwise, Uint64 if either is a Uint64, or the larger integer dtype, where booleans don't count.
//     Two booleans yield Int64.
//
// On equal sizes, x1's dtype wins.
func resultDType(x1, x2 values.ScalarValue) dtypes.DType {
	if x1.IsFloat() != x2.IsFloat() {
		if x1.IsFloat() {
			return x1.DType()
		}
		return x2.DType()
	}
	bool1, bool2 := x1.Kind() == values.ScalarBool, x2.Kind() == values.ScalarBool
	switch {
	case bool1 && bool2:
		return dtypes.Int64
	case bool1:
		return x2.DType()
	case bool2:
		return x1.DType()
	case x1.IsUint64() || x2.IsUint64():
		return dtypes.Uint64
	}
	if x2.DType().Memory() > x1.DType().Memory() {
		return x2.DType()
	}
	return x1.DType()
}

// foldComparison compares two scalars, as float64 if either is a float, or as int64 otherwise.
// With a Uint64 operand integers are compared as uint64, and a negative signed integer is less than any Uint64.
func foldComparison(op cmpOp, x1, x2 values.ScalarValue) values.ScalarValue {
	if x1.IsFloat() || x2.IsFloat() {
		return values.Bool(compare(op, x1.AsFloat64(), x2.AsFloat64()))
	}
	if x1.IsUint64() || x2.IsUint64() {
		switch {
		case !x1.IsUint64() && x1.AsInt64() < 0:
			return values.Bool(compare(op, 0, 1))
		case !x2.IsUint64() && x2.AsInt64() < 0:
			return values.Bool(compare(op, 1, 0))
		}
		return values.Bool(compare(op, x1.AsUint64(), x2.AsUint64()))
	}
	return values.Bool(compare(op, x1.AsInt64(), x2.AsInt64()))
}

func compare[T constraints.Ordered](op cmpOp, a, b T) bool {
	switch op {
	case cmpLess:
		return a < b
	case cmpGreater:
		return a > b
	case cmpLessEqual:
		return a <= b
	case cmpGreaterEqual:
		return a >= b
	case cmpEqual:
		return a == b
	case cmpNotEqual:
		return a != b
	}
	exceptions.Panicf("compare(): invalid comparison op %d", op)
	return false
}
