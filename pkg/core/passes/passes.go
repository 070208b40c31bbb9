// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package passes implements the infrastructure to transform an ir.Module: passes, their composition
// with Sequential, a registry of passes by name, and the Context (device, optimization level,
// enabled/disabled passes) that drives them.
//
// Passes never modify their input module: they return a new one, sharing the functions that didn't
// change.
package passes

import (
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/opcore/pkg/core/ir"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Info describes a pass.
type Info struct {
	// Name of the pass, used to enable/disable it and in error messages.
	Name string

	// OptLevel is the minimum optimization level at which the pass runs, unless it is required.
	OptLevel int

	// Required lists the names of registered passes that must run before this one.
	Required []string
}

// String implements fmt.Stringer.
func (info Info) String() string {
	if len(info.Required) == 0 {
		return fmt.Sprintf("%s(opt_level=%d)", info.Name, info.OptLevel)
	}
	return fmt.Sprintf("%s(opt_level=%d, required=%v)", info.Name, info.OptLevel, info.Required)
}

// Pass transforms a module.
type Pass interface {
	// Info returns the description of the pass.
	Info() Info

	// Run the pass over mod, returning the transformed module. mod itself is not changed.
	Run(mod *ir.Module, pc *Context) (*ir.Module, error)
}

// FunctionTransform transforms one function, returning it unchanged if there is nothing to do.
// It may panic with an error to signal a failure.
type FunctionTransform func(fn *ir.Function) *ir.Function

// FunctionPrepare is called once per run of a function pass, and returns the transform to apply to
// each function of the module. Returning nil skips the module.
type FunctionPrepare func(mod *ir.Module, pc *Context) FunctionTransform

type functionPass struct {
	info    Info
	prepare FunctionPrepare
}

// NewFunctionPass creates a pass that applies a transform to each non-primitive function of a module.
//
// Primitive functions were already lowered to a single kernel, and function passes don't touch them.
// A panic during the transform of a function is converted to an error annotated with the pass and
// the function names.
func NewFunctionPass(name string, optLevel int, prepare FunctionPrepare, required ...string) Pass {
	return &functionPass{
		info:    Info{Name: name, OptLevel: optLevel, Required: slices.Clone(required)},
		prepare: prepare,
	}
}

// Info implements Pass.
func (p *functionPass) Info() Info { return p.info }

// Run implements Pass.
func (p *functionPass) Run(mod *ir.Module, pc *Context) (*ir.Module, error) {
	transform := p.prepare(mod, pc)
	if transform == nil {
		return mod, nil
	}
	result := mod.Clone()
	var changed int
	for _, name := range mod.Names() {
		fn, _ := mod.Lookup(name)
		if fn.Primitive {
			continue
		}
		var newFn *ir.Function
		err := exceptions.TryCatch[error](func() { newFn = transform(fn) })
		if err != nil {
			return nil, errors.WithMessagef(err, "pass %q failed on function @%s", p.info.Name, name)
		}
		if newFn == nil || newFn == fn {
			continue
		}
		if err = result.Update(name, newFn); err != nil {
			return nil, errors.WithMessagef(err, "pass %q", p.info.Name)
		}
		changed++
	}
	if klog.V(1).Enabled() {
		klog.Infof("pass %s: %d of %d functions changed", p.info.Name, changed, mod.Len())
	}
	return result, nil
}

type sequential struct {
	info   Info
	passes []Pass
}

// Sequential creates a pass that runs the given passes in order.
//
// Each pass runs only if enabled by the Context (see Context.PassEnabled). The passes listed in the
// Info.Required of an enabled pass are fetched from the registry and run before it, except those
// listed in Context.DisabledPasses.
func Sequential(name string, optLevel int, passes ...Pass) Pass {
	return &sequential{
		info:   Info{Name: name, OptLevel: optLevel},
		passes: slices.Clone(passes),
	}
}

// Info implements Pass.
func (s *sequential) Info() Info { return s.info }

// Run implements Pass.
func (s *sequential) Run(mod *ir.Module, pc *Context) (*ir.Module, error) {
	var err error
	for _, pass := range s.passes {
		info := pass.Info()
		if !pc.PassEnabled(info) {
			klog.V(2).Infof("%s: skipping pass %s", s.info.Name, info)
			continue
		}
		for _, reqName := range info.Required {
			if pc.PassDisabled(reqName) {
				klog.V(2).Infof("%s: skipping disabled pass %q, required by %q", s.info.Name, reqName, info.Name)
				continue
			}
			var required Pass
			required, err = Get(reqName)
			if err != nil {
				return nil, errors.WithMessagef(err, "%s: pass %q requires %q", s.info.Name, info.Name, reqName)
			}
			klog.V(2).Infof("%s: running pass %s, required by %q", s.info.Name, reqName, info.Name)
			mod, err = required.Run(mod, pc)
			if err != nil {
				return nil, err
			}
		}
		klog.V(2).Infof("%s: running pass %s", s.info.Name, info)
		mod, err = pass.Run(mod, pc)
		if err != nil {
			return nil, err
		}
	}
	return mod, nil
}

var (
	registryMu sync.Mutex
	registry   = make(map[string]func() Pass)
)

// Register a pass constructor under name. It panics if the name is already registered.
//
// It is usually called from the init() function of the package implementing the pass.
func Register(name string, ctor func() Pass) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, found := registry[name]; found {
		exceptions.Panicf("passes.Register(%q): pass already registered", name)
	}
	registry[name] = ctor
}

// Get creates a new instance of the registered pass name.
func Get(name string) (Pass, error) {
	registryMu.Lock()
	ctor, found := registry[name]
	registryMu.Unlock()
	if !found {
		return nil, errors.Errorf("pass %q is not registered, registered passes: %v", name, Names())
	}
	return ctor(), nil
}

// Names of the registered passes, sorted.
func Names() []string {
	registryMu.Lock()
	defer registryMu.Unlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
