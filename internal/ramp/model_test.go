package ramp

import (
	"errors"
	"testing"

	"github.com/danmuck/rampctl/internal/ramp/registry"
	"github.com/danmuck/rampctl/internal/testutil/testlog"
)

func TestNewConstructsValidatedAddress(t *testing.T) {
	testlog.Start(t)
	reg := registry.Builtin()
	addr, err := New(reg, false, "P", "L", []string{"433.500MHz", "SF7"}, "MESHNODE")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if addr.String() != "P/L:433.500MHz/SF7#MESHNODE" {
		t.Fatalf("canonical: %q", addr.String())
	}
}

func TestNewRejectsInvalidComponents(t *testing.T) {
	testlog.Start(t)
	reg := registry.Builtin()

	_, err := New(reg, false, "X", "L", []string{"433.500MHz", "SF7"}, "")
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	// Multi-character codes never resolve; there is no draft state to leak.
	if _, err := New(reg, false, "PX", "L", nil, ""); err == nil {
		t.Fatalf("expected rejection of multi-character layer")
	}

	// Structural characters inside a slot value cannot round-trip.
	_, err = New(reg, false, "A", "H", []string{"example.org", "a/b"}, "")
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for embedded separator, got %v", err)
	}
}

func TestAddressImmutability(t *testing.T) {
	testlog.Start(t)
	reg := registry.Builtin()
	source := []string{"433.500MHz", "SF7"}
	addr, err := New(reg, false, "P", "L", source, "")
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	source[0] = "999.999MHz"
	if addr.Parameters()[0] != "433.500MHz" {
		t.Fatalf("address aliased caller slice")
	}

	leaked := addr.Parameters()
	leaked[1] = "SF12"
	if addr.Parameters()[1] != "SF7" {
		t.Fatalf("accessor leaked internal slice")
	}
}

func TestAddressEqual(t *testing.T) {
	testlog.Start(t)
	reg := registry.Builtin()
	a, _ := New(reg, true, "N", "I", []string{"10.0.0.1", "24"}, "NOC-LEAD")
	b, _ := New(reg, true, "N", "I", []string{"10.0.0.1", "24"}, "NOC-LEAD")
	c, _ := New(reg, false, "N", "I", []string{"10.0.0.1", "24"}, "NOC-LEAD")
	d, _ := New(reg, true, "N", "I", []string{"10.0.0.1", "24"}, "")

	if !a.Equal(b) {
		t.Fatalf("identical addresses must compare equal")
	}
	if a.Equal(c) {
		t.Fatalf("person marker must participate in equality")
	}
	if a.Equal(d) {
		t.Fatalf("metadata presence must participate in equality")
	}
}
