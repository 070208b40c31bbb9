// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package values

import (
	"strconv"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/x448/float16"
)

// ScalarKind enumerates the payloads a ScalarValue can hold.
type ScalarKind int

//go:generate go tool enumer -type=ScalarKind -trimprefix=Scalar -transform=lower -output=gen_scalarkind_enumer.go scalar.go

const (
	ScalarInt ScalarKind = iota
	ScalarFloat
	ScalarBool
)

// ScalarValue is a number known at compile time.
//
// The payload is stored widened (int64, float64 or bool) and the dtype tag tells the precision
// it represents: the payload is always rounded (or wrapped) to what the dtype can represent.
type ScalarValue struct {
	kind  ScalarKind
	dtype dtypes.DType
	i     int64
	f     float64
	b     bool
}

// Int returns an Int64 scalar.
func Int(v int64) ScalarValue { return IntOf(dtypes.Int64, v) }

// IntOf returns an integer scalar of the given dtype, wrapping v to the dtype's range.
//
// It panics if dtype is not an integer type.
func IntOf(dtype dtypes.DType, v int64) ScalarValue {
	switch dtype {
	case dtypes.Int8:
		v = int64(int8(v))
	case dtypes.Int16:
		v = int64(int16(v))
	case dtypes.Int32:
		v = int64(int32(v))
	case dtypes.Int64:
	case dtypes.Uint8:
		v = int64(uint8(v))
	case dtypes.Uint16:
		v = int64(uint16(v))
	case dtypes.Uint32:
		v = int64(uint32(v))
	case dtypes.Uint64:
		// Stored as the same 64 bits.
	default:
		exceptions.Panicf("values.IntOf(%s, %d): dtype is not an integer type", dtype, v)
	}
	return ScalarValue{kind: ScalarInt, dtype: dtype, i: v}
}

// Float returns a Float64 scalar.
func Float(v float64) ScalarValue { return FloatOf(dtypes.Float64, v) }

// FloatOf returns a float scalar of the given dtype, rounding v to the dtype's precision.
//
// It panics if dtype is not a float type.
func FloatOf(dtype dtypes.DType, v float64) ScalarValue {
	switch dtype {
	case dtypes.Float16:
		v = float64(float16.Fromfloat32(float32(v)).Float32())
	case dtypes.BFloat16:
		v = float64(bfloat16.FromFloat32(float32(v)).Float32())
	case dtypes.Float32:
		v = float64(float32(v))
	case dtypes.Float64:
	default:
		exceptions.Panicf("values.FloatOf(%s, %g): dtype is not a float type", dtype, v)
	}
	return ScalarValue{kind: ScalarFloat, dtype: dtype, f: v}
}

// Bool returns a boolean scalar.
func Bool(v bool) ScalarValue {
	return ScalarValue{kind: ScalarBool, dtype: dtypes.Bool, b: v}
}

// ValueKind implements Value.
func (s ScalarValue) ValueKind() ValueKind { return KindScalar }

// Kind of the payload.
func (s ScalarValue) Kind() ScalarKind { return s.kind }

// DType of the scalar.
func (s ScalarValue) DType() dtypes.DType { return s.dtype }

// IsFloat returns whether the payload is a float.
func (s ScalarValue) IsFloat() bool { return s.kind == ScalarFloat }

// AsInt64 converts the payload to int64: floats are truncated and booleans become 0 or 1.
func (s ScalarValue) AsInt64() int64 {
	switch s.kind {
	case ScalarFloat:
		return int64(s.f)
	case ScalarBool:
		if s.b {
			return 1
		}
		return 0
	default:
		return s.i
	}
}

// IsUint64 returns whether the payload is an integer holding the bits of a Uint64.
func (s ScalarValue) IsUint64() bool { return s.kind == ScalarInt && s.dtype == dtypes.Uint64 }

// AsUint64 converts the payload to uint64. Negative signed integers wrap around.
func (s ScalarValue) AsUint64() uint64 {
	if s.kind == ScalarFloat {
		return uint64(s.f)
	}
	return uint64(s.AsInt64())
}

// AsFloat64 converts the payload to float64. Booleans become 0 or 1.
func (s ScalarValue) AsFloat64() float64 {
	switch s.kind {
	case ScalarFloat:
		return s.f
	case ScalarBool:
		return float64(s.AsInt64())
	default:
		if s.IsUint64() {
			return float64(uint64(s.i))
		}
		return float64(s.i)
	}
}

// AsBool converts the payload to bool: any non-zero number is true.
func (s ScalarValue) AsBool() bool {
	switch s.kind {
	case ScalarFloat:
		return s.f != 0
	case ScalarBool:
		return s.b
	default:
		return s.i != 0
	}
}

// IsZero returns whether the payload compares equal to zero (false for booleans, ±0 for floats).
func (s ScalarValue) IsZero() bool { return !s.AsBool() }

// Equal returns whether both scalars have the same kind, dtype and payload.
func (s ScalarValue) Equal(s2 ScalarValue) bool {
	return s == s2
}

// String implements fmt.Stringer. E.g.: "2:Int64", "5.5:Float64" or "true".
func (s ScalarValue) String() string {
	switch s.kind {
	case ScalarFloat:
		return strconv.FormatFloat(s.f, 'g', -1, 64) + ":" + s.dtype.String()
	case ScalarBool:
		return strconv.FormatBool(s.b)
	default:
		if s.dtype == dtypes.Uint64 {
			return strconv.FormatUint(uint64(s.i), 10) + ":" + s.dtype.String()
		}
		return strconv.FormatInt(s.i, 10) + ":" + s.dtype.String()
	}
}
