package registry

import "regexp"

// Pattern is a named validation rule for one parameter slot. Patterns are
// registry-level constants shared across protocols, not tied to any one code.
type Pattern struct {
	Name    string
	Expr    string
	Accepts string

	re *regexp.Regexp
}

// Match reports whether value satisfies the pattern. Values are matched
// exactly as authored; no case folding happens here.
func (p Pattern) Match(value string) bool {
	if p.re == nil {
		return false
	}
	return p.re.MatchString(value)
}

// Named pattern identifiers from the label notation tables.
const (
	PatternFreq    = "FREQ"
	PatternMode    = "MODE"
	PatternChan    = "CHAN"
	PatternMAC     = "MAC"
	PatternPANID   = "PANID"
	PatternASN     = "ASN"
	PatternCIDR    = "CIDR"
	PatternIPv4    = "IPV4"
	PatternIPv6    = "IPV6"
	PatternOnion   = "ONION"
	PatternPort    = "PORT"
	PatternUser    = "USER"
	PatternHost    = "HOST"
	PatternPath    = "PATH"
	PatternChannel = "CHANNEL"
)

func builtinPatterns() []Pattern {
	return []Pattern{
		{Name: PatternFreq, Expr: `^\d+\.\d{3}(MHz|GHz)$`, Accepts: "digits, dot, MHz/GHz suffix"},
		{Name: PatternMode, Expr: `^[A-Za-z0-9+-]{1,12}$`, Accepts: "alphanumeric, plus, hyphen"},
		{Name: PatternChan, Expr: `^\d{1,3}$`, Accepts: "1-3 digits"},
		{Name: PatternMAC, Expr: `^([0-9A-Fa-f]{2}[:-]){5}[0-9A-Fa-f]{2}$`, Accepts: "hex pairs, colon or hyphen separated"},
		{Name: PatternPANID, Expr: `^(0x)?[0-9A-Fa-f]{1,4}$`, Accepts: "hex, optional 0x prefix"},
		{Name: PatternASN, Expr: `^\d{1,10}$`, Accepts: "1-10 digits"},
		{Name: PatternCIDR, Expr: `^\d{1,3}$`, Accepts: "prefix length digits"},
		{Name: PatternIPv4, Expr: `^(\d{1,3}\.){3}\d{1,3}$`, Accepts: "dotted quad"},
		{Name: PatternIPv6, Expr: `^[0-9A-Fa-f:]{2,39}$`, Accepts: "hex and colons"},
		{Name: PatternOnion, Expr: `^[a-z2-7]{56}\.onion$`, Accepts: "v3 onion address, lowercase base32"},
		{Name: PatternPort, Expr: `^\d{1,5}$`, Accepts: "1-5 digits"},
		{Name: PatternUser, Expr: `^[@!]?[A-Za-z0-9_.:-]+$`, Accepts: "handle with optional @ or ! sigil"},
		{Name: PatternHost, Expr: `^[A-Za-z0-9.-]+$`, Accepts: "hostname characters"},
		{Name: PatternPath, Expr: `^[A-Za-z0-9_.-]+$`, Accepts: "single path segment, no slashes"},
		{Name: PatternChannel, Expr: `^[A-Za-z0-9_.-]+$`, Accepts: "channel name, sigil dropped"},
	}
}
