// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package device

import (
	"slices"

	"github.com/gomlx/exceptions"
	"k8s.io/klog/v2"
)

// Scope is a stack of devices, the top being the current device of a compilation session.
//
// A Scope is owned by one compilation session and it is not safe for concurrent use: concurrent
// sessions should each have their own.
//
// A nil Scope is valid and always reports an unset device.
type Scope struct {
	stack []Device
}

// NewScope returns an empty Scope, optionally with the given devices pushed in order.
func NewScope(devices ...Device) *Scope {
	return &Scope{stack: slices.Clone(devices)}
}

// Push makes dev the current device.
func (s *Scope) Push(dev Device) {
	s.stack = append(s.stack, dev)
}

// Pop removes the current device, restoring the previous one.
func (s *Scope) Pop() {
	if s == nil || len(s.stack) == 0 {
		klog.Warningf("device.Scope.Pop() called on an already empty scope stack!?")
		return
	}
	s.stack = s.stack[:len(s.stack)-1]
}

// With runs fn with dev as the current device.
func (s *Scope) With(dev Device, fn func()) {
	s.Push(dev)
	defer s.Pop()
	fn()
}

// Current returns the current device.
//
// If no device was pushed, it returns Unset() when allowUnset is true, and it panics otherwise.
func (s *Scope) Current(allowUnset bool) Device {
	if s == nil || len(s.stack) == 0 {
		if !allowUnset {
			exceptions.Panicf("no device is set in the current scope")
		}
		return Unset()
	}
	return s.stack[len(s.stack)-1]
}

// Depth returns the number of devices pushed.
func (s *Scope) Depth() int {
	if s == nil {
		return 0
	}
	return len(s.stack)
}
