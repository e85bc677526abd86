package ramp

import (
	"strings"

	"github.com/danmuck/rampctl/internal/ramp/registry"
)

// Parse tokenizes and validates raw against reg. It returns either a fully
// valid Address or an error; never a partial result. Pure function: the same
// input always yields the same Address or the same error value.
func Parse(raw string, reg *registry.Registry) (Address, error) {
	ts, err := Tokenize(raw)
	if err != nil {
		return Address{}, err
	}
	return Validate(ts, reg)
}

// ParseURI parses the ramp:// URI form produced by URI. Parameter and
// metadata slots are percent-decoded before validation; the structural
// characters themselves are never encoded, so the slot boundaries are
// identical to the canonical form.
func ParseURI(raw string, reg *registry.Registry) (Address, error) {
	rest, ok := strings.CutPrefix(raw, "ramp://")
	if !ok {
		return Address{}, ErrURIScheme
	}
	ts, err := Tokenize(rest)
	if err != nil {
		return Address{}, err
	}
	for i, p := range ts.Params {
		decoded, err := percentDecode(p)
		if err != nil {
			return Address{}, err
		}
		ts.Params[i] = decoded
	}
	if ts.HasMeta {
		decoded, err := percentDecode(ts.Meta)
		if err != nil {
			return Address{}, err
		}
		ts.Meta = decoded
	}
	return Validate(ts, reg)
}
