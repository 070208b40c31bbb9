// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package values defines the compile-time values seen by operator declarations.
//
// A Value is either a ScalarValue, a host number known at compile time, or a TensorValue, which
// only describes a tensor (device, dtype and dimensions) and holds no data.
//
// Values are immutable once created.
package values

import (
	"fmt"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/opcore/pkg/core/device"
	"github.com/gomlx/opcore/pkg/core/shapes"
)

// Value is implemented by ScalarValue and TensorValue.
type Value interface {
	fmt.Stringer

	// ValueKind returns the variant of the value.
	ValueKind() ValueKind
}

// ValueKind enumerates the variants of Value.
type ValueKind int

//go:generate go tool enumer -type=ValueKind -trimprefix=Kind -transform=lower -output=gen_valuekind_enumer.go values.go

const (
	KindScalar ValueKind = iota
	KindTensor
)

// KindOf returns the kind name of v, or "none" if v is nil.
func KindOf(v Value) string {
	if v == nil {
		return "none"
	}
	return v.ValueKind().String()
}

// Equal returns whether a and b are the same variant with the same contents.
// Two nil values are equal.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case ScalarValue:
		bv, ok := b.(ScalarValue)
		return ok && av.Equal(bv)
	case TensorValue:
		bv, ok := b.(TensorValue)
		return ok && av.Equal(bv)
	}
	return false
}

// TensorValue describes a tensor: its device placement and its shape (dtype and dimensions).
type TensorValue struct {
	Device device.Device
	Shape  shapes.Shape
}

// NewTensor returns a TensorValue on the given device with the given dtype and dimensions.
//
// It panics if any dimension is negative.
func NewTensor(dev device.Device, dtype dtypes.DType, dimensions ...int) TensorValue {
	return TensorValue{Device: dev, Shape: shapes.Make(dtype, dimensions...)}
}

// ValueKind implements Value.
func (t TensorValue) ValueKind() ValueKind { return KindTensor }

// DType of the tensor elements.
func (t TensorValue) DType() dtypes.DType { return t.Shape.DType }

// Rank of the tensor.
func (t TensorValue) Rank() int { return t.Shape.Rank() }

// Dimensions returns the dimensions of the tensor. It should not be modified.
func (t TensorValue) Dimensions() []int { return t.Shape.Dimensions }

// Memory returns the number of bytes a tensor with this description occupies.
func (t TensorValue) Memory() uintptr { return t.Shape.Memory() }

// Equal returns whether both tensors have the same device and shape.
func (t TensorValue) Equal(t2 TensorValue) bool {
	return t.Device == t2.Device && t.Shape.Equal(t2.Shape)
}

// String implements fmt.Stringer. E.g.: "tensor(Float32)[2 3]@cuda(0)".
func (t TensorValue) String() string {
	return fmt.Sprintf("tensor%s@%s", t.Shape, t.Device)
}
