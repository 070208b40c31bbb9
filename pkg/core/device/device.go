// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package device defines the device placement of values and computations: a device type
// (CPU, CUDA, ...) and an index among the devices of that type.
//
// There is no process-wide "current device": a compilation session owns a Scope, which is
// pushed/popped around compilation regions and read by the passes that need it.
package device

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DevType enumerates the kinds of devices known to the compiler.
// Its String method returns the lower-case name.
type DevType int

//go:generate go tool enumer -type=DevType -transform=lower -output=gen_devtype_enumer.go device.go

const (
	Unknown DevType = iota
	CPU
	CUDA
	Metal
	Vulkan
	WebGPU
)

// Device is a (device type, device index) pair.
type Device struct {
	Type  DevType
	Index int
}

// New returns the Device for the given type and index.
func New(devType DevType, index int) Device {
	return Device{Type: devType, Index: index}
}

// Unset returns the sentinel used when no device was specified.
func Unset() Device {
	return Device{Type: Unknown, Index: -1}
}

// IsSet returns whether d refers to an actual device: it has a known type and a non-negative index.
func (d Device) IsSet() bool {
	return d.Type != Unknown && d.Index >= 0
}

// String implements fmt.Stringer. E.g.: "cuda(1)".
func (d Device) String() string {
	if !d.IsSet() {
		return "unset"
	}
	return fmt.Sprintf("%s(%d)", d.Type, d.Index)
}

// Parse a device description. Accepted formats are "cuda(1)", "cuda:1" and "cuda", the latter
// meaning index 0.
func Parse(desc string) (Device, error) {
	desc = strings.TrimSpace(desc)
	name, indexStr := desc, ""
	if idx := strings.IndexAny(desc, "(:"); idx != -1 {
		name, indexStr = desc[:idx], desc[idx+1:]
		if desc[idx] == '(' {
			if !strings.HasSuffix(indexStr, ")") {
				return Unset(), errors.Errorf("invalid device %q: missing closing parenthesis", desc)
			}
			indexStr = strings.TrimSuffix(indexStr, ")")
		}
	}
	devType, err := DevTypeString(strings.TrimSpace(name))
	if err != nil || devType == Unknown {
		return Unset(), errors.Errorf("invalid device %q: unknown device type %q", desc, name)
	}
	if indexStr == "" {
		return New(devType, 0), nil
	}
	index, err := strconv.Atoi(strings.TrimSpace(indexStr))
	if err != nil || index < 0 {
		return Unset(), errors.Errorf("invalid device %q: index must be a non-negative integer", desc)
	}
	return New(devType, index), nil
}
