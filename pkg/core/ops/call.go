// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ops

import (
	"fmt"
	"strings"

	"github.com/gomlx/opcore/pkg/core/device"
	"github.com/gomlx/opcore/pkg/core/values"
	"github.com/pkg/errors"
)

// CallValues is one pending invocation of an operator.
//
// It is created with NewCall, with its arguments bound, and it is resolved exactly once by the
// declaration rule of its operator, which sets Out (and Device for tensor outputs). If the rule
// folds the invocation into a constant, Callee is set to nil: no operator needs to run.
type CallValues struct {
	// Callee is the operator invoked, nil if the call was folded into the constant Out.
	Callee *Op

	// Args bound to the schema of Callee.
	Args Args

	// Out is the output of the call, set by the declaration rule.
	Out values.Value

	// Device where the call runs. Unset until resolved with a tensor output.
	Device device.Device
}

// NewCall binds args to the schema of op and returns the new call.
// Errors wrap ErrSchemaMismatch.
func NewCall(op *Op, args ...values.Value) (*CallValues, error) {
	if op == nil {
		return nil, errors.Wrap(ErrSchemaMismatch, "ops.NewCall(): nil operator")
	}
	bound, err := BindArgs(op.Schema(), args)
	if err != nil {
		return nil, errors.WithMessagef(err, "binding arguments of %q", op.Name())
	}
	return &CallValues{Callee: op, Args: bound, Device: device.Unset()}, nil
}

// IsResolved returns whether a declaration rule already set the output.
func (c *CallValues) IsResolved() bool { return c.Out != nil }

// IsFolded returns whether the call was resolved into a constant, and needs no operator to run.
func (c *CallValues) IsFolded() bool { return c.Out != nil && c.Callee == nil }

// String implements fmt.Stringer.
func (c *CallValues) String() string {
	var sb strings.Builder
	callee := "<folded>"
	if c.Callee != nil {
		callee = c.Callee.Name()
	}
	sb.WriteString(callee)
	sb.WriteString("(")
	switch args := c.Args.(type) {
	case *BinaryUfuncArgs:
		sb.WriteString(joinValues(args.X1, args.X2))
		if args.Out != nil {
			fmt.Fprintf(&sb, ", out=%s", args.Out)
		}
		if args.Where != nil {
			fmt.Fprintf(&sb, ", where=%s", args.Where)
		}
	case *BinaryDxArgs:
		sb.WriteString(joinValues(args.X1, args.Dy))
	}
	sb.WriteString(")")
	if c.Out != nil {
		fmt.Fprintf(&sb, " -> %s", c.Out)
	}
	return sb.String()
}

func joinValues(vs ...values.Value) string {
	parts := make([]string, len(vs))
	for ii, v := range vs {
		if v == nil {
			parts[ii] = "none"
		} else {
			parts[ii] = v.String()
		}
	}
	return strings.Join(parts, ", ")
}
