// Package registry owns the compiled-in RAMP symbol tables.
//
// Ownership boundary:
// - layer and protocol definitions
// - named parameter patterns
// - construction-time integrity checks
package registry

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
)

var (
	ErrDuplicateProtocol = errors.New("registry: duplicate protocol code")
	ErrUnknownLayer      = errors.New("registry: unknown layer code")
	ErrUnknownPattern    = errors.New("registry: unknown pattern reference")
	ErrBadPattern        = errors.New("registry: pattern does not compile")
	ErrBadCode           = errors.New("registry: code must be a single uppercase letter or digit")
)

// IntegrityError reports a defect in registry source data. It is raised once
// at construction; lookups on a constructed Registry never fail this way.
type IntegrityError struct {
	Layer   byte
	Code    byte
	Pattern string
	Err     error
}

func (e *IntegrityError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("registry integrity: layer=%c code=%c pattern=%q: %v", e.Layer, e.Code, e.Pattern, e.Err)
	}
	return fmt.Sprintf("registry integrity: layer=%c code=%c: %v", e.Layer, e.Code, e.Err)
}

func (e *IntegrityError) Unwrap() error { return e.Err }

// LayerDef names one top-level RAMP category.
type LayerDef struct {
	Code byte
	Name string
}

// ParamSpec declares one positional parameter slot for a protocol.
type ParamSpec struct {
	Slot    string
	Pattern string
}

// ProtocolDef declares one protocol code within a layer.
type ProtocolDef struct {
	Layer  byte
	Code   byte
	Name   string
	Params []ParamSpec
	Note   string
}

// Registry is the read-only symbol table consulted during validation.
// Safe for unsynchronized concurrent reads; never mutated after construction.
type Registry struct {
	layers    map[byte]LayerDef
	protocols map[byte]map[byte]ProtocolDef
	patterns  map[string]Pattern
}

// New builds a Registry from source data, running the integrity checks.
// Duplicate (layer, code) pairs and dangling pattern references are defects
// in the data, not per-call errors.
func New(layers []LayerDef, protocols []ProtocolDef, patterns []Pattern) (*Registry, error) {
	r := &Registry{
		layers:    make(map[byte]LayerDef, len(layers)),
		protocols: make(map[byte]map[byte]ProtocolDef, len(layers)),
		patterns:  make(map[string]Pattern, len(patterns)),
	}
	for _, p := range patterns {
		re, err := regexp.Compile(p.Expr)
		if err != nil {
			return nil, &IntegrityError{Pattern: p.Name, Err: ErrBadPattern}
		}
		p.re = re
		r.patterns[p.Name] = p
	}
	for _, l := range layers {
		r.layers[l.Code] = l
		r.protocols[l.Code] = make(map[byte]ProtocolDef)
	}
	for _, def := range protocols {
		if err := r.add(def); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// WithExtensions returns a new Registry holding the receiver's entries plus
// ext. Extensions may add codes only; shadowing a builtin code is a duplicate
// and fails the integrity check.
func (r *Registry) WithExtensions(ext []ProtocolDef) (*Registry, error) {
	merged := &Registry{
		layers:    r.layers,
		protocols: make(map[byte]map[byte]ProtocolDef, len(r.protocols)),
		patterns:  r.patterns,
	}
	for layer, defs := range r.protocols {
		cp := make(map[byte]ProtocolDef, len(defs))
		for code, def := range defs {
			cp[code] = def
		}
		merged.protocols[layer] = cp
	}
	for _, def := range ext {
		if err := merged.add(def); err != nil {
			return nil, err
		}
	}
	return merged, nil
}

func (r *Registry) add(def ProtocolDef) error {
	if !validCode(def.Code) {
		return &IntegrityError{Layer: def.Layer, Code: def.Code, Err: ErrBadCode}
	}
	defs, ok := r.protocols[def.Layer]
	if !ok {
		return &IntegrityError{Layer: def.Layer, Code: def.Code, Err: ErrUnknownLayer}
	}
	if _, dup := defs[def.Code]; dup {
		return &IntegrityError{Layer: def.Layer, Code: def.Code, Err: ErrDuplicateProtocol}
	}
	for _, ps := range def.Params {
		if _, ok := r.patterns[ps.Pattern]; !ok {
			return &IntegrityError{Layer: def.Layer, Code: def.Code, Pattern: ps.Pattern, Err: ErrUnknownPattern}
		}
	}
	defs[def.Code] = def
	return nil
}

func validCode(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// Layer resolves a layer code.
func (r *Registry) Layer(code byte) (LayerDef, bool) {
	l, ok := r.layers[code]
	return l, ok
}

// Protocol resolves a protocol code within a layer.
func (r *Registry) Protocol(layer, code byte) (ProtocolDef, bool) {
	defs, ok := r.protocols[layer]
	if !ok {
		return ProtocolDef{}, false
	}
	def, ok := defs[code]
	return def, ok
}

// PatternByName resolves a named parameter pattern.
func (r *Registry) PatternByName(name string) (Pattern, bool) {
	p, ok := r.patterns[name]
	return p, ok
}

// Layers returns all layer definitions ordered by code.
func (r *Registry) Layers() []LayerDef {
	out := make([]LayerDef, 0, len(r.layers))
	for _, l := range r.layers {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Protocols returns all protocol definitions under layer, ordered by code.
func (r *Registry) Protocols(layer byte) []ProtocolDef {
	defs, ok := r.protocols[layer]
	if !ok {
		return nil
	}
	out := make([]ProtocolDef, 0, len(defs))
	for _, def := range defs {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// LayerName returns the display name for a layer code, or "" when unknown.
func (r *Registry) LayerName(code byte) string {
	return r.layers[code].Name
}

// ProtocolName returns the display name for (layer, code), or "" when unknown.
func (r *Registry) ProtocolName(layer, code byte) string {
	def, _ := r.Protocol(layer, code)
	return def.Name
}

// ProtocolNote returns the free-text annotation for (layer, code).
func (r *Registry) ProtocolNote(layer, code byte) string {
	def, _ := r.Protocol(layer, code)
	return def.Note
}
