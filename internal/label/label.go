// Package label renders validated RAMP addresses as human-readable text.
// Physical layout, QR payloads, and printing are owned by downstream tools;
// this package only produces the strings they place on a sticker.
package label

import (
	"strings"
	"unicode/utf8"

	"github.com/danmuck/rampctl/internal/ramp"
	"github.com/danmuck/rampctl/internal/ramp/registry"
)

// Text renders a as descriptive lines: protocol display name, one line per
// parameter slot, and the metadata tag when present.
func Text(reg *registry.Registry, a ramp.Address) string {
	return strings.Join(lines(reg, a, true), "\n")
}

// Box renders the same content inside a box-drawing border, each line
// centered. Sized by rune count; slot values are ASCII by construction.
func Box(reg *registry.Registry, a ramp.Address) string {
	content := lines(reg, a, false)
	width := 0
	for _, line := range content {
		if n := utf8.RuneCountInString(line); n > width {
			width = n
		}
	}
	width += 4

	var b strings.Builder
	b.WriteString("┌" + strings.Repeat("─", width) + "┐\n")
	for _, line := range content {
		n := utf8.RuneCountInString(line)
		left := (width - n) / 2
		right := width - n - left
		b.WriteString("│" + strings.Repeat(" ", left) + line + strings.Repeat(" ", right) + "│\n")
	}
	b.WriteString("└" + strings.Repeat("─", width) + "┘")
	return b.String()
}

func lines(reg *registry.Registry, a ramp.Address, withNote bool) []string {
	layer := a.Layer()[0]
	proto := a.Protocol()[0]
	def, _ := reg.Protocol(layer, proto)

	header := def.Name + " (" + reg.LayerName(layer) + ")"
	if a.IsPersonReference() {
		header = "~ " + header
	}
	out := []string{header}

	for i, value := range a.Parameters() {
		slot := "param"
		if i < len(def.Params) {
			slot = def.Params[i].Slot
		}
		out = append(out, slot+": "+value)
	}
	if meta, ok := a.Metadata(); ok {
		out = append(out, "ID: "+meta)
	}
	if withNote && def.Note != "" {
		out = append(out, "note: "+def.Note)
	}
	return out
}
