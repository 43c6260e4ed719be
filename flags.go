package jsregexp

import "fmt"

// Flags is the set of pattern flags on a RegExp.
type Flags uint8

const (
	// FlagGlobal makes matching resume from lastIndex (flag g).
	FlagGlobal Flags = 1 << iota

	// FlagIgnoreCase enables case-insensitive matching (flag i).
	FlagIgnoreCase

	// FlagMultiline makes ^ and $ match at line boundaries (flag m).
	FlagMultiline

	// FlagDotAll makes . match line terminators (flag s).
	FlagDotAll

	// FlagUnicode enables code-point semantics: surrogate pairs match as
	// one unit and lastIndex advances over whole pairs (flag u).
	FlagUnicode

	// FlagSticky anchors matching exactly at lastIndex (flag y).
	FlagSticky
)

var flagChars = []struct {
	ch   byte
	flag Flags
}{
	{'g', FlagGlobal},
	{'i', FlagIgnoreCase},
	{'m', FlagMultiline},
	{'s', FlagDotAll},
	{'u', FlagUnicode},
	{'y', FlagSticky},
}

// ParseFlags parses a flag string such as "gu". Unknown or repeated
// characters yield an error matching ErrInvalidFlags.
func ParseFlags(s string) (Flags, error) {
	var f Flags
	for i := 0; i < len(s); i++ {
		var found Flags
		for _, fc := range flagChars {
			if fc.ch == s[i] {
				found = fc.flag
				break
			}
		}
		if found == 0 {
			return 0, fmt.Errorf("%w: unknown flag %q", ErrInvalidFlags, s[i])
		}
		if f&found != 0 {
			return 0, fmt.Errorf("%w: duplicate flag %q", ErrInvalidFlags, s[i])
		}
		f |= found
	}
	return f, nil
}

// Has reports whether all bits of flag are set.
func (f Flags) Has(flag Flags) bool { return f&flag == flag }

// String returns the flags in canonical "gimsuy" order.
func (f Flags) String() string {
	buf := make([]byte, 0, len(flagChars))
	for _, fc := range flagChars {
		if f.Has(fc.flag) {
			buf = append(buf, fc.ch)
		}
	}
	return string(buf)
}
