// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"fmt"
	"strings"
)

// String returns a one-line textual representation of expr, e.g.: `fn(%x, %y) { add(%x, %y) }`.
// A nil expression is printed as "<nil>".
func String(expr Expr) string {
	var sb strings.Builder
	writeExpr(&sb, expr)
	return sb.String()
}

func (v *Var) String() string          { return String(v) }
func (v *GlobalVar) String() string    { return String(v) }
func (c *Constant) String() string     { return String(c) }
func (o *OpRef) String() string        { return String(o) }
func (c *Call) String() string         { return String(c) }
func (f *Function) String() string     { return String(f) }
func (t *Tuple) String() string        { return String(t) }
func (t *TupleGetItem) String() string { return String(t) }
func (l *Let) String() string          { return String(l) }
func (i *If) String() string           { return String(i) }

func writeList(sb *strings.Builder, exprs []Expr) {
	for ii, e := range exprs {
		if ii > 0 {
			sb.WriteString(", ")
		}
		writeExpr(sb, e)
	}
}

func writeExpr(sb *strings.Builder, expr Expr) {
	if expr == nil {
		sb.WriteString("<nil>")
		return
	}
	switch e := expr.(type) {
	case *Var:
		sb.WriteString("%" + e.Name)
	case *GlobalVar:
		sb.WriteString("@" + e.Name)
	case *Constant:
		if e.Value == nil {
			sb.WriteString("const(<nil>)")
		} else {
			sb.WriteString(e.Value.String())
		}
	case *OpRef:
		if e.Op == nil {
			sb.WriteString("<nil op>")
		} else {
			sb.WriteString(e.Op.Name())
		}
	case *Call:
		if _, isFn := e.Fn.(*Function); isFn {
			sb.WriteString("(")
			writeExpr(sb, e.Fn)
			sb.WriteString(")")
		} else {
			writeExpr(sb, e.Fn)
		}
		sb.WriteString("(")
		writeList(sb, e.Args)
		sb.WriteString(")")
	case *Function:
		sb.WriteString("fn")
		if e.Primitive {
			sb.WriteString("[primitive]")
		}
		sb.WriteString("(")
		for ii, p := range e.Params {
			if ii > 0 {
				sb.WriteString(", ")
			}
			writeExpr(sb, p)
		}
		sb.WriteString(") { ")
		writeExpr(sb, e.Body)
		sb.WriteString(" }")
	case *Tuple:
		sb.WriteString("(")
		writeList(sb, e.Fields)
		sb.WriteString(")")
	case *TupleGetItem:
		writeExpr(sb, e.Tuple)
		fmt.Fprintf(sb, ".%d", e.Index)
	case *Let:
		sb.WriteString("let ")
		writeExpr(sb, e.Var)
		sb.WriteString(" = ")
		writeExpr(sb, e.Value)
		sb.WriteString("; ")
		writeExpr(sb, e.Body)
	case *If:
		sb.WriteString("if (")
		writeExpr(sb, e.Cond)
		sb.WriteString(") { ")
		writeExpr(sb, e.Then)
		sb.WriteString(" } else { ")
		writeExpr(sb, e.Else)
		sb.WriteString(" }")
	default:
		fmt.Fprintf(sb, "<unknown %s>", expr.Kind())
	}
}
