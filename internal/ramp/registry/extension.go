package registry

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// extensionFile is the on-disk shape of a site-local protocol extension.
type extensionFile struct {
	Protocols []extensionEntry `toml:"protocol"`
}

type extensionEntry struct {
	Layer string   `toml:"layer"`
	Code  string   `toml:"code"`
	Name  string   `toml:"name"`
	Slots []string `toml:"slots"`
	Note  string   `toml:"note"`
}

// LoadExtensions reads site-local protocol definitions from a TOML file.
// Each slot entry is "name:PATTERN"; pattern names must already exist in the
// registry the result is merged into.
func LoadExtensions(path string) ([]ProtocolDef, error) {
	var raw extensionFile
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("load registry extensions (%s): %w", path, err)
	}

	defs := make([]ProtocolDef, 0, len(raw.Protocols))
	for i, entry := range raw.Protocols {
		def, err := entry.toDef()
		if err != nil {
			return nil, fmt.Errorf("registry extension [%d]: %w", i, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func (e extensionEntry) toDef() (ProtocolDef, error) {
	layer := strings.TrimSpace(e.Layer)
	code := strings.TrimSpace(e.Code)
	if len(layer) != 1 {
		return ProtocolDef{}, fmt.Errorf("layer must be a single character, got %q", e.Layer)
	}
	if len(code) != 1 {
		return ProtocolDef{}, fmt.Errorf("code must be a single character, got %q", e.Code)
	}
	if strings.TrimSpace(e.Name) == "" {
		return ProtocolDef{}, fmt.Errorf("name is required")
	}
	if len(e.Slots) > 2 {
		return ProtocolDef{}, fmt.Errorf("at most two parameter slots, got %d", len(e.Slots))
	}

	def := ProtocolDef{
		Layer: layer[0],
		Code:  code[0],
		Name:  strings.TrimSpace(e.Name),
		Note:  strings.TrimSpace(e.Note),
	}
	for _, slot := range e.Slots {
		name, pattern, ok := strings.Cut(slot, ":")
		if !ok || strings.TrimSpace(name) == "" || strings.TrimSpace(pattern) == "" {
			return ProtocolDef{}, fmt.Errorf("slot must be name:PATTERN, got %q", slot)
		}
		def.Params = append(def.Params, ParamSpec{
			Slot:    strings.TrimSpace(name),
			Pattern: strings.TrimSpace(pattern),
		})
	}
	return def, nil
}
