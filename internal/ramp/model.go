package ramp

import "github.com/danmuck/rampctl/internal/ramp/registry"

// Address is a validated RAMP address. Immutable once constructed: it is
// only ever produced by Validate (or New, which routes through the same
// checks), never in a partially valid state. Addresses are shared freely
// between callers, so parameter slices are copied on the way in and out.
type Address struct {
	person   bool
	layer    byte
	protocol byte
	params   []string
	hasMeta  bool
	meta     string
}

// New constructs an Address directly from component values, running the full
// validation against reg. meta == "" means no metadata.
func New(reg *registry.Registry, person bool, layer, protocol string, params []string, meta string) (Address, error) {
	ts := TokenSet{
		IsPerson: person,
		Layer:    layer,
		Protocol: protocol,
		Params:   params,
		HasMeta:  meta != "",
		Meta:     meta,
	}
	return Validate(ts, reg)
}

// IsPersonReference reports whether the address carries the ~ person marker.
func (a Address) IsPersonReference() bool { return a.person }

// Layer returns the single-letter layer code.
func (a Address) Layer() string { return string(a.layer) }

// Protocol returns the single-letter protocol code.
func (a Address) Protocol() string { return string(a.protocol) }

// Parameters returns a copy of the positional parameter values.
func (a Address) Parameters() []string {
	if len(a.params) == 0 {
		return nil
	}
	out := make([]string, len(a.params))
	copy(out, a.params)
	return out
}

// Metadata returns the metadata tag and whether one is present.
func (a Address) Metadata() (string, bool) { return a.meta, a.hasMeta }

// Equal reports field-for-field equality.
func (a Address) Equal(b Address) bool {
	if a.person != b.person || a.layer != b.layer || a.protocol != b.protocol {
		return false
	}
	if a.hasMeta != b.hasMeta || a.meta != b.meta {
		return false
	}
	if len(a.params) != len(b.params) {
		return false
	}
	for i := range a.params {
		if a.params[i] != b.params[i] {
			return false
		}
	}
	return true
}

// String returns the canonical form.
func (a Address) String() string { return Canonical(a) }
