// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ops

import (
	"github.com/pkg/errors"
)

var (
	// ErrSchemaMismatch indicates the arguments bound to a call don't match the operator's schema.
	// It is an internal error: the lowering that created the call is broken.
	ErrSchemaMismatch = errors.New("argument schema mismatch")

	// ErrUnsupportedOperands indicates no declaration rule handles the kinds of operands given.
	ErrUnsupportedOperands = errors.New("not implemented for these operand kinds")

	// ErrDivisionByZero indicates a division or modulo of compile-time scalars by zero.
	ErrDivisionByZero = errors.New("division by zero")
)
