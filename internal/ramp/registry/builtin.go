package registry

// Layer codes.
const (
	LayerPhysical    byte = 'P'
	LayerNetwork     byte = 'N'
	LayerApplication byte = 'A'
)

func builtinLayers() []LayerDef {
	return []LayerDef{
		{Code: LayerPhysical, Name: "Physical"},
		{Code: LayerNetwork, Name: "Network"},
		{Code: LayerApplication, Name: "Application"},
	}
}

func builtinProtocols() []ProtocolDef {
	return []ProtocolDef{
		{Layer: 'P', Code: 'L', Name: "LoRa",
			Params: []ParamSpec{{Slot: "freq", Pattern: PatternFreq}, {Slot: "mode", Pattern: PatternMode}},
			Note:   "older sheets packed freq/sf/bw/rate into one compound token; two-part form is canonical"},
		{Layer: 'P', Code: 'R', Name: "Radio",
			Params: []ParamSpec{{Slot: "freq", Pattern: PatternFreq}, {Slot: "mode", Pattern: PatternMode}}},
		{Layer: 'P', Code: 'W', Name: "WiFi",
			Params: []ParamSpec{{Slot: "channel", Pattern: PatternChan}, {Slot: "width", Pattern: PatternChan}}},
		{Layer: 'P', Code: 'B', Name: "BLE",
			Params: []ParamSpec{{Slot: "mac", Pattern: PatternMAC}, {Slot: "type", Pattern: PatternMode}}},
		{Layer: 'P', Code: 'Z', Name: "Zigbee",
			Params: []ParamSpec{{Slot: "channel", Pattern: PatternChan}, {Slot: "pan", Pattern: PatternPANID}}},
		{Layer: 'P', Code: 'Q', Name: "QAM",
			Params: []ParamSpec{{Slot: "symrate", Pattern: PatternChan}, {Slot: "mode", Pattern: PatternMode}},
			Note:   "code Q also appeared as QR on one table revision; QAM kept, collision rejected by the integrity check"},

		{Layer: 'N', Code: 'A', Name: "AS",
			Params: []ParamSpec{{Slot: "asn", Pattern: PatternASN}, {Slot: "prefix", Pattern: PatternCIDR}}},
		{Layer: 'N', Code: 'I', Name: "IPv4",
			Params: []ParamSpec{{Slot: "net", Pattern: PatternIPv4}, {Slot: "mask", Pattern: PatternCIDR}}},
		{Layer: 'N', Code: 'V', Name: "IPv6",
			Params: []ParamSpec{{Slot: "net", Pattern: PatternIPv6}, {Slot: "prefix", Pattern: PatternCIDR}},
			Note:   "legacy sheets used digit 6; V keeps codes within the letter rule"},
		{Layer: 'N', Code: 'O', Name: "Tor",
			Params: []ParamSpec{{Slot: "onion", Pattern: PatternOnion}, {Slot: "port", Pattern: PatternPort}}},

		{Layer: 'A', Code: 'M', Name: "Matrix",
			Params: []ParamSpec{{Slot: "user", Pattern: PatternUser}, {Slot: "room", Pattern: PatternUser}}},
		{Layer: 'A', Code: 'I', Name: "IRC",
			Params: []ParamSpec{{Slot: "server", Pattern: PatternHost}, {Slot: "channel", Pattern: PatternChannel}}},
		{Layer: 'A', Code: 'H', Name: "HTTP",
			Params: []ParamSpec{{Slot: "host", Pattern: PatternHost}, {Slot: "path", Pattern: PatternPath}}},
		{Layer: 'A', Code: 'G', Name: "Gemini",
			Params: []ParamSpec{{Slot: "host", Pattern: PatternHost}, {Slot: "path", Pattern: PatternPath}}},
	}
}

var builtin = mustBuiltin()

func mustBuiltin() *Registry {
	r, err := New(builtinLayers(), builtinProtocols(), builtinPatterns())
	if err != nil {
		// Compiled-in data is a build artifact; a defect here means no lookup
		// can be trusted, so initialization halts.
		panic(err)
	}
	return r
}

// Builtin returns the compiled-in registry. The same instance is shared by
// all callers; it is immutable.
func Builtin() *Registry { return builtin }
