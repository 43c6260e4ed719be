// Package engine provides the pattern-matching engine behind the regexp
// protocol layer.
//
// The boundary is a single call: given a subject as UTF-16 code units and
// a start position, return either no match or the capture offsets of the
// first match. Everything above this package works purely in terms of
// that contract; everything below it (pattern syntax, backtracking) is
// delegated to github.com/dlclark/regexp2 running in ECMAScript mode.
//
// All offsets crossing the boundary are UTF-16 code-unit offsets into the
// subject, with -1 marking a capture group that did not participate in
// the match.
package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidPattern indicates the pattern source could not be compiled.
var ErrInvalidPattern = errors.New("invalid regexp pattern")

// CompileError wraps compilation failures with the offending source.
type CompileError struct {
	Source string
	Err    error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("compiling pattern %q: %v", e.Source, e.Err)
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error { return e.Err }

// Is reports ErrInvalidPattern for errors.Is.
func (e *CompileError) Is(target error) bool { return target == ErrInvalidPattern }

// Config selects pattern semantics at compile time.
type Config struct {
	// IgnoreCase enables case-insensitive matching (flag i).
	IgnoreCase bool

	// Multiline makes ^ and $ match at line boundaries (flag m).
	Multiline bool

	// DotAll makes . match line terminators (flag s).
	DotAll bool

	// Unicode switches the subject decoding: surrogate pairs are matched
	// as single code points and capture offsets are mapped back to UTF-16
	// units (flag u).
	Unicode bool
}

// Match holds the result of a successful execution.
type Match struct {
	// Offsets is the flattened (start, end) pair per capture group, group
	// 0 being the whole match. Offsets are UTF-16 code units into the
	// subject; both members of a pair are -1 when the group did not
	// participate.
	Offsets []int

	// Names holds the declared name per group, "" for positional groups.
	// Aligned with the pairs in Offsets.
	Names []string
}

// GroupCount returns the number of capture groups, including group 0.
func (m *Match) GroupCount() int { return len(m.Offsets) / 2 }
