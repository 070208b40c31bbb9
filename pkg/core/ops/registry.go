// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package ops defines operators (Op), their device-specific dialect variants, the Registry that
// holds them, and CallValues, the record of one pending operator invocation.
//
// Base operators are device agnostic, and they own the declaration rule that infers the output of
// an invocation. A dialect operator is a device or library specific implementation of a base
// operator, named "<dialect>.<base>". Each dialect operator has a priority level (plevel): when
// dispatching a base operator for a device type, the enabled dialect operator with the highest
// plevel wins.
//
// Registration is expected to happen during initialization of the packages: a Registry is not safe
// for concurrent registration, but it is safe for concurrent lookups once populated.
package ops

import (
	"slices"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/opcore/pkg/core/device"
)

// Rule is a declaration rule: it takes a call whose arguments are bound, and sets the call's output.
// If the output can be folded into a constant, it also sets the call's Callee to nil.
//
// Rules panic (see package github.com/gomlx/exceptions) with an error on invalid invocations.
type Rule func(call *CallValues)

// Op is an operator: either a base operator or a dialect operator.
type Op struct {
	name   string
	schema Schema
	rule   Rule

	// Dialect operators only.
	dialect string
	base    *Op
	plevel  int
}

// Name of the operator, e.g.: "add" or "cudnn.add".
func (op *Op) Name() string { return op.name }

// String implements fmt.Stringer.
func (op *Op) String() string { return op.name }

// Schema of the operator's arguments.
func (op *Op) Schema() Schema { return op.schema }

// IsDialect returns whether op is a dialect operator.
func (op *Op) IsDialect() bool { return op.base != nil }

// Dialect returns the name of the dialect of a dialect operator, or "" for base operators.
func (op *Op) Dialect() string { return op.dialect }

// Base returns the base operator of a dialect operator, or op itself for base operators.
func (op *Op) Base() *Op {
	if op.base != nil {
		return op.base
	}
	return op
}

// PLevel returns the priority level of a dialect operator. It is 0 for base operators.
func (op *Op) PLevel() int { return op.plevel }

// Rule returns the declaration rule of the operator, nil if none was declared.
// Dialect operators share the rule of their base operator.
func (op *Op) Rule() Rule { return op.Base().rule }

// Dialect is a named family of dialect operators (usually backed by one library), enabled for a set
// of device types.
type Dialect struct {
	name    string
	devices map[device.DevType]bool
}

// Name of the dialect.
func (d *Dialect) Name() string { return d.name }

// EnabledOn returns whether the dialect can be used on the given device type.
func (d *Dialect) EnabledOn(devType device.DevType) bool { return d.devices[devType] }

// DevTypes returns the device types the dialect is enabled on, sorted.
func (d *Dialect) DevTypes() []device.DevType {
	devTypes := make([]device.DevType, 0, len(d.devices))
	for devType := range d.devices {
		devTypes = append(devTypes, devType)
	}
	slices.Sort(devTypes)
	return devTypes
}

// Registry holds operators and dialects.
type Registry struct {
	ops      map[string]*Op
	dialects map[string]*Dialect

	// dialectOps of each base operator, sorted by decreasing plevel and then by dialect name.
	dialectOps map[*Op][]*Op
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		ops:        make(map[string]*Op),
		dialects:   make(map[string]*Dialect),
		dialectOps: make(map[*Op][]*Op),
	}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry, where the operators of this module register themselves
// during initialization.
func Default() *Registry { return defaultRegistry }

// RegisterOp registers a base operator with the given arguments schema and returns it.
//
// Registering an existing operator again with the same schema returns the existing one.
// It panics if the name is empty, or if the name was registered with a different schema or as a
// dialect operator.
func (r *Registry) RegisterOp(name string, schema Schema) *Op {
	if name == "" {
		exceptions.Panicf("ops.RegisterOp(): operator name cannot be empty")
	}
	if op, found := r.ops[name]; found {
		if op.IsDialect() || op.schema != schema {
			exceptions.Panicf("ops.RegisterOp(%q, %s): operator already registered with schema %s (dialect=%q)",
				name, schema, op.schema, op.dialect)
		}
		return op
	}
	op := &Op{name: name, schema: schema}
	r.ops[name] = op
	return op
}

// Declare sets the declaration rule of the base operator with the given name.
//
// It panics if the operator is unknown, is a dialect operator or already has a rule.
func (r *Registry) Declare(name string, rule Rule) {
	op := r.MustLookup(name)
	if op.IsDialect() {
		exceptions.Panicf("ops.Declare(%q): dialect operators use the rule of their base operator %q", name, op.base.name)
	}
	if op.rule != nil {
		exceptions.Panicf("ops.Declare(%q): operator already has a declaration rule", name)
	}
	if rule == nil {
		exceptions.Panicf("ops.Declare(%q): nil rule", name)
	}
	op.rule = rule
}

// RegisterDialect registers a dialect enabled for the given device types. Registering an existing
// dialect enables it for the additional device types.
func (r *Registry) RegisterDialect(name string, devTypes ...device.DevType) *Dialect {
	if name == "" || strings.Contains(name, ".") {
		exceptions.Panicf("ops.RegisterDialect(%q): invalid dialect name", name)
	}
	d, found := r.dialects[name]
	if !found {
		d = &Dialect{name: name, devices: make(map[device.DevType]bool)}
		r.dialects[name] = d
	}
	for _, devType := range devTypes {
		d.devices[devType] = true
	}
	return d
}

// RegisterDialectOp registers the dialect operator "<dialect>.<base>" implementing the base operator
// with the given priority level. It returns the new operator.
//
// It panics if the base operator or the dialect are unknown, or if the dialect operator already exists.
func (r *Registry) RegisterDialectOp(baseName, dialectName string, plevel int) *Op {
	base := r.MustLookup(baseName)
	if base.IsDialect() {
		exceptions.Panicf("ops.RegisterDialectOp(%q, %q): %q is already a dialect operator", baseName, dialectName, baseName)
	}
	if _, found := r.dialects[dialectName]; !found {
		exceptions.Panicf("ops.RegisterDialectOp(%q, %q): unknown dialect %q", baseName, dialectName, dialectName)
	}
	name := dialectName + "." + baseName
	if _, found := r.ops[name]; found {
		exceptions.Panicf("ops.RegisterDialectOp(%q, %q): operator %q already registered", baseName, dialectName, name)
	}
	op := &Op{name: name, schema: base.schema, dialect: dialectName, base: base, plevel: plevel}
	r.ops[name] = op
	candidates := append(r.dialectOps[base], op)
	slices.SortStableFunc(candidates, func(a, b *Op) int {
		if a.plevel != b.plevel {
			return b.plevel - a.plevel
		}
		return strings.Compare(a.dialect, b.dialect)
	})
	r.dialectOps[base] = candidates
	return op
}

// Lookup returns the operator with the given name.
func (r *Registry) Lookup(name string) (op *Op, found bool) {
	op, found = r.ops[name]
	return
}

// MustLookup returns the operator with the given name, and panics if it is not registered.
func (r *Registry) MustLookup(name string) *Op {
	op, found := r.ops[name]
	if !found {
		exceptions.Panicf("operator %q is not registered", name)
	}
	return op
}

// LookupDialect returns the dialect with the given name.
func (r *Registry) LookupDialect(name string) (d *Dialect, found bool) {
	d, found = r.dialects[name]
	return
}

// OpNames returns the sorted names of all registered operators, base and dialect.
func (r *Registry) OpNames() []string {
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// DialectNames returns the sorted names of the registered dialects.
func (r *Registry) DialectNames() []string {
	names := make([]string, 0, len(r.dialects))
	for name := range r.dialects {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// DialectOps returns the dialect operators of the base operator, sorted by decreasing priority.
func (r *Registry) DialectOps(base *Op) []*Op {
	return slices.Clone(r.dialectOps[base])
}

// Dispatch returns the dialect operator with the highest priority level implementing op on the given
// device type, or nil if there is none.
//
// If allowed is not empty, only dialects listed in it are considered. Dialect operators are not
// dispatched again: for them Dispatch returns nil.
func (r *Registry) Dispatch(op *Op, devType device.DevType, allowed []string) *Op {
	if op == nil || op.IsDialect() {
		return nil
	}
	for _, candidate := range r.dialectOps[op] {
		if !r.dialects[candidate.dialect].EnabledOn(devType) {
			continue
		}
		if len(allowed) > 0 && !slices.Contains(allowed, candidate.dialect) {
			continue
		}
		return candidate
	}
	return nil
}
