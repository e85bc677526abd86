package ramp

import "strings"

// Canonical serializes a into the single defined string form:
//
//	["~"] layer "/" protocol [":" param1 ["/" param2]] ["#" metadata]
//
// The ":" clause is omitted entirely when there are no parameters, the "#"
// clause when metadata is absent. Inverse of Parse for every valid Address.
func Canonical(a Address) string {
	var b strings.Builder
	if a.person {
		b.WriteByte('~')
	}
	b.WriteByte(a.layer)
	b.WriteByte('/')
	b.WriteByte(a.protocol)
	for i, p := range a.params {
		if i == 0 {
			b.WriteByte(':')
		} else {
			b.WriteByte('/')
		}
		b.WriteString(p)
	}
	if a.hasMeta {
		b.WriteByte('#')
		b.WriteString(a.meta)
	}
	return b.String()
}

// URI serializes a as ramp://<canonical structure>. Layer and protocol codes
// are never encoded; parameters and metadata are percent-encoded for any
// byte outside the RFC 3986 unreserved set.
func URI(a Address) string {
	var b strings.Builder
	b.WriteString("ramp://")
	if a.person {
		b.WriteByte('~')
	}
	b.WriteByte(a.layer)
	b.WriteByte('/')
	b.WriteByte(a.protocol)
	for i, p := range a.params {
		if i == 0 {
			b.WriteByte(':')
		} else {
			b.WriteByte('/')
		}
		b.WriteString(percentEncode(p))
	}
	if a.hasMeta {
		b.WriteByte('#')
		b.WriteString(percentEncode(a.meta))
	}
	return b.String()
}

const upperhex = "0123456789ABCDEF"

func unreserved(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '.' || c == '_' || c == '~':
		return true
	}
	return false
}

func percentEncode(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !unreserved(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}
	return b.String()
}

func percentDecode(s string) (string, error) {
	if !strings.ContainsRune(s, '%') {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		if i+2 >= len(s) {
			return "", ErrBadEscape
		}
		hi, ok1 := unhex(s[i+1])
		lo, ok2 := unhex(s[i+2])
		if !ok1 || !ok2 {
			return "", ErrBadEscape
		}
		b.WriteByte(hi<<4 | lo)
		i += 2
	}
	return b.String(), nil
}

func unhex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
