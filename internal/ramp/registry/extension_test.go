package registry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/danmuck/rampctl/internal/testutil/testlog"
)

func writeExtensionFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "extensions.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write extension file: %v", err)
	}
	return path
}

func TestLoadExtensions(t *testing.T) {
	testlog.Start(t)
	path := writeExtensionFile(t, `
[[protocol]]
layer = "P"
code = "T"
name = "TestLink"
slots = ["channel:CHAN", "mode:MODE"]
note = "site-local bench radio"
`)
	defs, err := LoadExtensions(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(defs) != 1 {
		t.Fatalf("expected 1 def, got %d", len(defs))
	}
	def := defs[0]
	if def.Layer != 'P' || def.Code != 'T' || def.Name != "TestLink" {
		t.Fatalf("unexpected def: %+v", def)
	}
	if len(def.Params) != 2 || def.Params[0].Pattern != PatternChan {
		t.Fatalf("unexpected params: %+v", def.Params)
	}

	merged, err := Builtin().WithExtensions(defs)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if _, ok := merged.Protocol('P', 'T'); !ok {
		t.Fatalf("merged registry missing P/T")
	}
}

func TestLoadExtensionsRejectsMalformedSlot(t *testing.T) {
	testlog.Start(t)
	path := writeExtensionFile(t, `
[[protocol]]
layer = "P"
code = "T"
name = "TestLink"
slots = ["channel"]
`)
	if _, err := LoadExtensions(path); err == nil {
		t.Fatalf("expected slot format error")
	}
}

func TestLoadExtensionsRejectsTooManySlots(t *testing.T) {
	testlog.Start(t)
	path := writeExtensionFile(t, `
[[protocol]]
layer = "P"
code = "T"
name = "TestLink"
slots = ["a:CHAN", "b:CHAN", "c:CHAN"]
`)
	if _, err := LoadExtensions(path); err == nil {
		t.Fatalf("expected arity error")
	}
}

func TestExtensionUnknownPatternFailsMerge(t *testing.T) {
	testlog.Start(t)
	path := writeExtensionFile(t, `
[[protocol]]
layer = "P"
code = "T"
name = "TestLink"
slots = ["channel:NOPE"]
`)
	defs, err := LoadExtensions(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := Builtin().WithExtensions(defs); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("expected ErrUnknownPattern, got %v", err)
	}
}
