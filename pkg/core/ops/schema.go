// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ops

import (
	"github.com/gomlx/opcore/pkg/core/values"
	"github.com/pkg/errors"
)

// Schema identifies the arguments structure an operator takes.
type Schema int

//go:generate go tool enumer -type=Schema -trimprefix=Schema -output=gen_schema_enumer.go schema.go

const (
	// SchemaNone is for operators that are not declared here (e.g.: runtime ops), they take no
	// arguments that can be bound.
	SchemaNone Schema = iota

	// SchemaBinaryUfunc is bound to *BinaryUfuncArgs: x1, x2 and the optional out and where.
	SchemaBinaryUfunc

	// SchemaBinaryDx is bound to *BinaryDxArgs: x1 and dy.
	SchemaBinaryDx
)

// Args is implemented by the argument structures of each schema.
type Args interface {
	Schema() Schema
}

// BinaryUfuncArgs are the arguments of element-wise binary operators.
// Out and Where are nil when not given.
type BinaryUfuncArgs struct {
	X1, X2     values.Value
	Out, Where values.Value
}

// Schema implements Args.
func (*BinaryUfuncArgs) Schema() Schema { return SchemaBinaryUfunc }

// BinaryDxArgs are the arguments of the gradient of a binary operator with respect to X1, given
// the gradient Dy of its output.
type BinaryDxArgs struct {
	X1, Dy values.Value
}

// Schema implements Args.
func (*BinaryDxArgs) Schema() Schema { return SchemaBinaryDx }

// BindArgs binds a positional list of arguments to the structure of the given schema.
//
// Trailing optional arguments may be omitted or given as nil. Required arguments can't be nil.
// Errors wrap ErrSchemaMismatch.
func BindArgs(schema Schema, args []values.Value) (Args, error) {
	switch schema {
	case SchemaBinaryUfunc:
		if len(args) < 2 || len(args) > 4 {
			return nil, errors.Wrapf(ErrSchemaMismatch, "schema %s takes 2 to 4 arguments (x1, x2, out, where), got %d",
				schema, len(args))
		}
		bound := &BinaryUfuncArgs{X1: args[0], X2: args[1]}
		if len(args) > 2 {
			bound.Out = args[2]
		}
		if len(args) > 3 {
			bound.Where = args[3]
		}
		if bound.X1 == nil || bound.X2 == nil {
			return nil, errors.Wrapf(ErrSchemaMismatch, "schema %s requires x1 and x2", schema)
		}
		return bound, nil

	case SchemaBinaryDx:
		if len(args) != 2 {
			return nil, errors.Wrapf(ErrSchemaMismatch, "schema %s takes 2 arguments (x1, dy), got %d",
				schema, len(args))
		}
		if args[0] == nil || args[1] == nil {
			return nil, errors.Wrapf(ErrSchemaMismatch, "schema %s requires x1 and dy", schema)
		}
		return &BinaryDxArgs{X1: args[0], Dy: args[1]}, nil

	default:
		return nil, errors.Wrapf(ErrSchemaMismatch, "arguments can't be bound to schema %s", schema)
	}
}
