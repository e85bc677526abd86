package ramp

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/danmuck/rampctl/internal/ramp/registry"
)

var metaPattern = regexp.MustCompile(`^[A-Z0-9-]+$`)

// Validate checks tokens against reg and returns the Address on success.
// All independent violations are collected in one pass; checks that depend
// on a resolved layer (or protocol) are skipped when that code is unknown.
// Layer and protocol codes are normalized to uppercase before lookup;
// parameters and metadata are matched exactly as authored.
func Validate(ts TokenSet, reg *registry.Registry) (Address, error) {
	var violations []Violation

	layerCode, layerOK := normalizeCode(ts.Layer)
	if layerOK {
		_, layerOK = reg.Layer(layerCode)
	}
	if !layerOK {
		violations = append(violations, Violation{Kind: UnknownLayer, Field: "layer", Detail: ts.Layer})
	}

	protoCode, protoOK := normalizeCode(ts.Protocol)
	var def registry.ProtocolDef
	if layerOK {
		if protoOK {
			def, protoOK = reg.Protocol(layerCode, protoCode)
		}
		if !protoOK {
			violations = append(violations, Violation{Kind: UnknownProtocol, Field: "protocol", Detail: ts.Protocol})
		}
	}

	if layerOK && protoOK && len(ts.Params) != len(def.Params) {
		violations = append(violations, Violation{
			Kind:   ParameterArityMismatch,
			Field:  "parameters",
			Detail: fmt.Sprintf("got %d, want %d", len(ts.Params), len(def.Params)),
		})
	}
	for i, value := range ts.Params {
		// Structural characters can never ride inside a slot value, or the
		// canonical form would not tokenize back to this address. Tokenized
		// input cannot trip this; New and percent-decoded URI slots can.
		if strings.ContainsAny(value, "/#") {
			violations = append(violations, Violation{
				Kind:   ParameterFormatMismatch,
				Field:  fmt.Sprintf("parameter[%d]", i),
				Detail: "structural character in value",
			})
			continue
		}
		if !layerOK || !protoOK || i >= len(def.Params) {
			continue
		}
		pattern, ok := reg.PatternByName(def.Params[i].Pattern)
		if !ok || !pattern.Match(value) {
			violations = append(violations, Violation{
				Kind:   ParameterFormatMismatch,
				Field:  fmt.Sprintf("parameter[%d]", i),
				Detail: def.Params[i].Pattern,
			})
		}
	}

	if ts.HasMeta && !metaPattern.MatchString(ts.Meta) {
		violations = append(violations, Violation{Kind: InvalidMetadata, Field: "metadata", Detail: ts.Meta})
	}

	if len(violations) != 0 {
		return Address{}, &ValidationError{Violations: violations}
	}

	params := make([]string, len(ts.Params))
	copy(params, ts.Params)
	return Address{
		person:   ts.IsPerson,
		layer:    layerCode,
		protocol: protoCode,
		params:   params,
		hasMeta:  ts.HasMeta,
		meta:     ts.Meta,
	}, nil
}

// normalizeCode folds a one-character code slot to uppercase. Multi-character
// slots never come out of the tokenizer, but New feeds component values in
// directly.
func normalizeCode(s string) (byte, bool) {
	if len(s) != 1 {
		return 0, false
	}
	c := s[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return c, true
}
