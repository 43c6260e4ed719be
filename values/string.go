package values

import "unicode/utf16"

// Surrogate code unit boundaries (UTF-16).
const (
	highSurrogateMin = 0xD800
	highSurrogateMax = 0xDBFF
	lowSurrogateMin  = 0xDC00
	lowSurrogateMax  = 0xDFFF
)

// String is an immutable sequence of UTF-16 code units.
//
// All offsets in the protocol layer (capture bounds, lastIndex, advance
// increments) are in UTF-16 code units, matching ECMAScript string
// semantics. A String may contain unpaired surrogates; construct such
// strings with StringFromUnits.
type String []uint16

// NewString encodes a Go string into UTF-16 code units.
func NewString(s string) String {
	return String(utf16.Encode([]rune(s)))
}

// StringFromUnits wraps raw UTF-16 code units as a String. The slice is
// used directly, not copied; callers must not mutate it afterwards.
func StringFromUnits(units []uint16) String {
	return String(units)
}

// Kind implements Value.
func (String) Kind() Kind { return KindString }

// Len returns the length in UTF-16 code units.
func (s String) Len() int { return len(s) }

// CharAt returns the code unit at index i.
// Panics if i is out of range; bounds are the caller's contract.
func (s String) CharAt(i int) uint16 { return s[i] }

// Substring returns the code units in [start, end).
// Panics on out-of-range bounds.
func (s String) Substring(start, end int) String {
	return s[start:end:end]
}

// String decodes the code units back to a Go string. Unpaired surrogates
// decode to U+FFFD; use this for display, not for round-tripping
// ill-formed strings.
func (s String) String() string {
	return string(utf16.Decode(s))
}

// Equal reports whether s and other hold identical code units.
func (s String) Equal(other String) bool {
	if len(s) != len(other) {
		return false
	}
	for i, u := range s {
		if other[i] != u {
			return false
		}
	}
	return true
}

// IsHighSurrogate reports whether u is a UTF-16 high (lead) surrogate.
func IsHighSurrogate(u uint16) bool {
	return u >= highSurrogateMin && u <= highSurrogateMax
}

// IsLowSurrogate reports whether u is a UTF-16 low (trail) surrogate.
func IsLowSurrogate(u uint16) bool {
	return u >= lowSurrogateMin && u <= lowSurrogateMax
}
