package ramp

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/danmuck/rampctl/internal/ramp/registry"
	"github.com/danmuck/rampctl/internal/testutil/testlog"
)

func TestParseCanonicalRoundTrip(t *testing.T) {
	testlog.Start(t)
	reg := registry.Builtin()
	inputs := []string{
		"P/L:433.500MHz/SF7#MESHNODE",
		"~N/I:10.0.0.1/24#NOC-LEAD",
		"P/B:AA:BB:CC:DD:EE:FF/PUB",
		"N/A:64512/22",
		"A/M:@alice:example.org/!ops:example.org#CHAT-OPS",
		"A/H:example.org/_status#WEB",
	}
	for _, raw := range inputs {
		addr, err := Parse(raw, reg)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if got := Canonical(addr); got != raw {
			t.Fatalf("canonical round trip: %q -> %q", raw, got)
		}
		again, err := Parse(Canonical(addr), reg)
		if err != nil {
			t.Fatalf("reparse %q: %v", raw, err)
		}
		if !addr.Equal(again) {
			t.Fatalf("round-trip address mismatch for %q", raw)
		}
	}
}

func TestParseScenarioFields(t *testing.T) {
	testlog.Start(t)
	reg := registry.Builtin()
	addr, err := Parse("~N/I:10.0.0.1/24#NOC-LEAD", reg)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !addr.IsPersonReference() {
		t.Fatalf("person marker lost")
	}
	if addr.Layer() != "N" || addr.Protocol() != "I" {
		t.Fatalf("codes: %s/%s", addr.Layer(), addr.Protocol())
	}
	params := addr.Parameters()
	if len(params) != 2 || params[0] != "10.0.0.1" || params[1] != "24" {
		t.Fatalf("params: %v", params)
	}
	if meta, ok := addr.Metadata(); !ok || meta != "NOC-LEAD" {
		t.Fatalf("metadata: %q ok=%v", meta, ok)
	}
}

func TestParseIsDeterministic(t *testing.T) {
	testlog.Start(t)
	reg := registry.Builtin()

	a1, e1 := Parse("P/L:433.500MHz/SF7#MESHNODE", reg)
	a2, e2 := Parse("P/L:433.500MHz/SF7#MESHNODE", reg)
	if e1 != nil || e2 != nil || !a1.Equal(a2) {
		t.Fatalf("valid parse not deterministic: %v %v", e1, e2)
	}

	// Invalid inputs must produce identical violation lists too.
	_, e1 = Parse("X/L:433.500MHz/SF7#bad", reg)
	_, e2 = Parse("X/L:433.500MHz/SF7#bad", reg)
	if !reflect.DeepEqual(e1, e2) {
		t.Fatalf("error values differ: %v vs %v", e1, e2)
	}
}

func TestURIRoundTrip(t *testing.T) {
	testlog.Start(t)
	reg := registry.Builtin()
	inputs := []string{
		"P/L:433.500MHz/SF7#MESHNODE",
		"~N/I:10.0.0.1/24#NOC-LEAD",
		"P/B:AA:BB:CC:DD:EE:FF/PUB",
		"A/M:@alice:example.org/!ops:example.org#CHAT-OPS",
	}
	for _, raw := range inputs {
		addr, err := Parse(raw, reg)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		uri := URI(addr)
		if !strings.HasPrefix(uri, "ramp://") {
			t.Fatalf("uri missing scheme: %q", uri)
		}
		back, err := ParseURI(uri, reg)
		if err != nil {
			t.Fatalf("parse uri %q: %v", uri, err)
		}
		if !addr.Equal(back) {
			t.Fatalf("uri round-trip mismatch: %q -> %q", raw, uri)
		}
	}
}

func TestURIEncodesReservedCharacters(t *testing.T) {
	testlog.Start(t)
	reg := registry.Builtin()
	addr, err := Parse("P/B:AA:BB:CC:DD:EE:FF/PUB", reg)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	uri := URI(addr)
	if strings.Contains(uri[len("ramp://"):], "AA:BB") {
		t.Fatalf("colons in parameter slot must be percent-encoded: %q", uri)
	}
	if want := "AA%3ABB%3ACC%3ADD%3AEE%3AFF"; !strings.Contains(uri, want) {
		t.Fatalf("uri %q missing %q", uri, want)
	}
}

func TestURILayerProtocolNeverEncoded(t *testing.T) {
	testlog.Start(t)
	reg := registry.Builtin()
	addr, err := Parse("~P/L:433.500MHz/SF7", reg)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if uri := URI(addr); !strings.HasPrefix(uri, "ramp://~P/L:") {
		t.Fatalf("structure must stay literal: %q", uri)
	}
}

func TestParseURIRejectsWrongScheme(t *testing.T) {
	testlog.Start(t)
	if _, err := ParseURI("http://P/L", registry.Builtin()); !errors.Is(err, ErrURIScheme) {
		t.Fatalf("expected ErrURIScheme, got %v", err)
	}
}

func TestParseURIRejectsBadEscape(t *testing.T) {
	testlog.Start(t)
	if _, err := ParseURI("ramp://P/L:433.500MHz/SF%2", registry.Builtin()); !errors.Is(err, ErrBadEscape) {
		t.Fatalf("expected ErrBadEscape, got %v", err)
	}
}

func TestParseSyntaxErrorSurfaces(t *testing.T) {
	testlog.Start(t)
	_, err := Parse("P/L:433.500MHz/SF7/EXTRA#X", registry.Builtin())
	var syn *SyntaxError
	if !errors.As(err, &syn) || syn.Reason != ReasonTooManyParameters {
		t.Fatalf("expected too_many_parameters, got %v", err)
	}
}
