// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"slices"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Module is a set of named global functions: the unit transformed by passes.
type Module struct {
	functions map[string]*Function
	names     []string // In order of insertion.
}

// NewModule creates an empty module.
func NewModule() *Module {
	return &Module{functions: make(map[string]*Function)}
}

// Add a global function. It returns an error if a function with the same name already exists.
func (m *Module) Add(name string, fn *Function) error {
	if fn == nil {
		return errors.Errorf("Module.Add(%q): nil function", name)
	}
	if _, found := m.functions[name]; found {
		return errors.Errorf("Module.Add(%q): function already defined", name)
	}
	m.functions[name] = fn
	m.names = append(m.names, name)
	return nil
}

// Lookup a global function by name.
func (m *Module) Lookup(name string) (fn *Function, found bool) {
	fn, found = m.functions[name]
	return
}

// Names of the global functions, in the order they were added.
func (m *Module) Names() []string {
	return slices.Clone(m.names)
}

// Len returns the number of global functions.
func (m *Module) Len() int { return len(m.names) }

// Update replaces the global function name. It returns an error if name is not defined.
func (m *Module) Update(name string, fn *Function) error {
	if fn == nil {
		return errors.Errorf("Module.Update(%q): nil function", name)
	}
	if _, found := m.functions[name]; !found {
		return errors.Errorf("Module.Update(%q): function not defined", name)
	}
	m.functions[name] = fn
	return nil
}

// Clone returns a shallow copy of the module: functions are shared, since they are immutable,
// but adding or updating functions of the clone doesn't affect m.
func (m *Module) Clone() *Module {
	clone := NewModule()
	for _, name := range m.names {
		clone.functions[name] = m.functions[name]
	}
	clone.names = slices.Clone(m.names)
	return clone
}

// Validate checks that every function is well-formed: no nil sub-expressions, calls to known global
// functions, and no nil operators. All problems found are returned combined in one error.
func (m *Module) Validate() error {
	var err error
	for _, name := range m.names {
		fn := m.functions[name]
		if fn.Body == nil {
			err = multierr.Append(err, errors.Errorf("function %q: nil body", name))
			continue
		}
		Visit(fn, func(e Expr) bool {
			switch node := e.(type) {
			case *GlobalVar:
				if _, found := m.functions[node.Name]; !found {
					err = multierr.Append(err, errors.Errorf("function %q: reference to undefined global @%s", name, node.Name))
				}
			case *OpRef:
				if node.Op == nil {
					err = multierr.Append(err, errors.Errorf("function %q: reference to nil operator", name))
				}
			case *Constant:
				if node.Value == nil {
					err = multierr.Append(err, errors.Errorf("function %q: constant without value", name))
				}
			case *Call:
				if node.Fn == nil || slices.Contains(node.Args, nil) {
					err = multierr.Append(err, errors.Errorf("function %q: nil expression in call %s", name, node))
				}
			case *Function:
				if node.Body == nil {
					err = multierr.Append(err, errors.Errorf("function %q: nested function with nil body", name))
				}
			case *Tuple:
				if slices.Contains(node.Fields, nil) {
					err = multierr.Append(err, errors.Errorf("function %q: nil field in tuple %s", name, node))
				}
			case *TupleGetItem:
				if node.Tuple == nil || node.Index < 0 {
					err = multierr.Append(err, errors.Errorf("function %q: invalid tuple access %s", name, node))
				}
			case *Let:
				if node.Var == nil || node.Value == nil || node.Body == nil {
					err = multierr.Append(err, errors.Errorf("function %q: incomplete let %s", name, node))
				}
			case *If:
				if node.Cond == nil || node.Then == nil || node.Else == nil {
					err = multierr.Append(err, errors.Errorf("function %q: incomplete if %s", name, node))
				}
			}
			return true
		})
	}
	return err
}

// String lists the functions of the module, one per line.
func (m *Module) String() string {
	var s string
	for _, name := range m.names {
		s += "@" + name + " = " + String(m.functions[name]) + "\n"
	}
	return s
}
