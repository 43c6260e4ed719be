package engine

import (
	"sort"
	"strconv"

	"github.com/dlclark/regexp2"
)

// Pattern is a compiled pattern, ready for repeated execution. A Pattern
// is immutable after Compile and safe for concurrent use.
type Pattern struct {
	re      *regexp2.Regexp
	source  string
	unicode bool
	nums    []int    // regexp2 group numbers in group order
	names   []string // declared group names, "" for positional groups
}

// Compile compiles a pattern in ECMAScript mode.
func Compile(source string, cfg Config) (*Pattern, error) {
	var opts regexp2.RegexOptions = regexp2.ECMAScript
	if cfg.DotAll {
		// Singleline cannot be combined with ECMAScript mode in regexp2;
		// dotAll patterns trade conformance mode for the flag.
		opts = regexp2.Singleline
	}
	if cfg.IgnoreCase {
		opts |= regexp2.IgnoreCase
	}
	if cfg.Multiline {
		opts |= regexp2.Multiline
	}

	re, err := regexp2.Compile(source, opts)
	if err != nil {
		return nil, &CompileError{Source: source, Err: err}
	}

	nums := re.GetGroupNumbers()
	sort.Ints(nums)
	names := make([]string, len(nums))
	for i, num := range nums {
		name := re.GroupNameFromNumber(num)
		if name != strconv.Itoa(num) {
			names[i] = name
		}
	}

	return &Pattern{
		re:      re,
		source:  source,
		unicode: cfg.Unicode,
		nums:    nums,
		names:   names,
	}, nil
}

// Source returns the pattern source text.
func (p *Pattern) Source() string { return p.source }

// GroupCount returns the number of capture groups, including group 0.
func (p *Pattern) GroupCount() int { return len(p.nums) }

// Exec searches subject for the first match at or after start (a UTF-16
// code-unit offset). It returns nil with no error when there is no match.
// With sticky set, a match is reported only if it begins exactly at start.
//
// Panics on a negative start; callers establish non-negative positions.
func (p *Pattern) Exec(subject []uint16, start int, sticky bool) (*Match, error) {
	if start < 0 {
		panic("engine: negative start position")
	}
	if start > len(subject) {
		return nil, nil
	}

	runes, pos := decodeSubject(subject, p.unicode)
	runeStart := start
	if pos != nil {
		// First code point boundary at or after start. Starting inside a
		// surrogate pair cannot match the pair anyway.
		runeStart = sort.SearchInts(pos, start)
	}

	m, err := p.re.FindRunesMatchStartingAt(runes, runeStart)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	if sticky && unitOffset(pos, m.Index) != start {
		return nil, nil
	}

	offsets := make([]int, 0, 2*len(p.nums))
	for _, num := range p.nums {
		g := m.GroupByNumber(num)
		if g == nil || len(g.Captures) == 0 {
			offsets = append(offsets, -1, -1)
			continue
		}
		// ECMAScript keeps the last capture of a repeated group.
		c := g.Captures[len(g.Captures)-1]
		offsets = append(offsets,
			unitOffset(pos, c.Index),
			unitOffset(pos, c.Index+c.Length))
	}

	return &Match{Offsets: offsets, Names: p.names}, nil
}

// decodeSubject turns UTF-16 code units into the rune sequence the engine
// runs over.
//
// Without unicode semantics every code unit becomes one rune, so rune
// offsets and UTF-16 offsets coincide and the position table is nil. With
// unicode semantics surrogate pairs decode to single code points and the
// returned table maps each rune index (plus one past the end) back to its
// UTF-16 offset.
func decodeSubject(subject []uint16, unicode bool) ([]rune, []int) {
	if !unicode {
		runes := make([]rune, len(subject))
		for i, u := range subject {
			runes[i] = rune(u)
		}
		return runes, nil
	}

	runes := make([]rune, 0, len(subject))
	pos := make([]int, 0, len(subject)+1)
	for i := 0; i < len(subject); {
		u := subject[i]
		pos = append(pos, i)
		if u >= 0xD800 && u <= 0xDBFF && i+1 < len(subject) {
			if next := subject[i+1]; next >= 0xDC00 && next <= 0xDFFF {
				runes = append(runes, decodePair(u, next))
				i += 2
				continue
			}
		}
		// Lone surrogates stay as themselves.
		runes = append(runes, rune(u))
		i++
	}
	pos = append(pos, len(subject))
	return runes, pos
}

func decodePair(high, low uint16) rune {
	return (rune(high)-0xD800)<<10 + (rune(low) - 0xDC00) + 0x10000
}

// unitOffset maps a rune offset back to a UTF-16 offset. A nil table
// means the two coincide.
func unitOffset(pos []int, runeIdx int) int {
	if pos == nil {
		return runeIdx
	}
	return pos[runeIdx]
}
