// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package passes

import (
	"bytes"
	"io"
	"os"
	"slices"

	"github.com/gomlx/opcore/pkg/core/device"
	"github.com/gomlx/opcore/pkg/core/ops"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultOptLevel is the optimization level of a new Context.
const DefaultOptLevel = 2

// Context of a compilation session: it is passed to every pass run.
type Context struct {
	// OptLevel: passes with a higher Info.OptLevel are skipped, unless required.
	OptLevel int

	// Devices holds the current target device. It may be nil or empty, in which case the device is unset.
	Devices *device.Scope

	// Registry of operators and dialects used by the passes.
	Registry *ops.Registry

	// DisabledPasses are never run, even if required.
	DisabledPasses []string

	// RequiredPasses are run regardless of the optimization level.
	RequiredPasses []string
}

// NewContext returns a Context with the default optimization level, no device and the default
// operators registry.
func NewContext() *Context {
	return &Context{
		OptLevel: DefaultOptLevel,
		Devices:  device.NewScope(),
		Registry: ops.Default(),
	}
}

// Device returns the current target device, or device.Unset() if none is set.
func (pc *Context) Device() device.Device {
	return pc.Devices.Current(true)
}

// PassDisabled returns whether the named pass is listed in DisabledPasses.
func (pc *Context) PassDisabled(name string) bool {
	return slices.Contains(pc.DisabledPasses, name)
}

// PassEnabled returns whether a pass with the given info should run in this context.
func (pc *Context) PassEnabled(info Info) bool {
	if pc.PassDisabled(info.Name) {
		return false
	}
	if slices.Contains(pc.RequiredPasses, info.Name) {
		return true
	}
	return info.OptLevel <= pc.OptLevel
}

// Config is the YAML representation of a Context, e.g.:
//
//	device: cuda(0)
//	opt_level: 3
//	disabled_pass: [DispatchDialect]
//	required_pass: []
type Config struct {
	Device       string   `yaml:"device"`
	OptLevel     *int     `yaml:"opt_level"`
	DisabledPass []string `yaml:"disabled_pass"`
	RequiredPass []string `yaml:"required_pass"`
}

// NewContext converts the configuration to a Context, starting from the defaults of NewContext.
func (cfg *Config) NewContext() (*Context, error) {
	pc := NewContext()
	if cfg.OptLevel != nil {
		if *cfg.OptLevel < 0 {
			return nil, errors.Errorf("invalid opt_level %d, it must be >= 0", *cfg.OptLevel)
		}
		pc.OptLevel = *cfg.OptLevel
	}
	if cfg.Device != "" {
		dev, err := device.Parse(cfg.Device)
		if err != nil {
			return nil, errors.WithMessage(err, "invalid device in configuration")
		}
		pc.Devices.Push(dev)
	}
	pc.DisabledPasses = slices.Clone(cfg.DisabledPass)
	pc.RequiredPasses = slices.Clone(cfg.RequiredPass)
	return pc, nil
}

// ParseConfig parses a YAML configuration (see Config) and returns the corresponding Context.
// Unknown fields are an error. An empty document yields the default Context.
func ParseConfig(data []byte) (*Context, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to parse passes configuration")
	}
	return cfg.NewContext()
}

// LoadConfig reads the YAML configuration file at path, see ParseConfig.
func LoadConfig(path string) (*Context, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read passes configuration from %q", path)
	}
	pc, err := ParseConfig(data)
	if err != nil {
		return nil, errors.WithMessagef(err, "configuration file %q", path)
	}
	return pc, nil
}
