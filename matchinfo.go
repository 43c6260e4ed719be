package jsregexp

import "github.com/coregx/jsregexp/values"

// MatchInfo is the last-match record: capture offsets of the most recent
// match, the subject they point into, and the original input value.
//
// A MatchInfo is caller-scoped scratch, not a global: create one per
// logical match/replace/split operation and reuse it across the iterations
// of that operation only. It is a single-writer record; concurrent use
// must be serialized by the caller.
//
// Offsets are UTF-16 code units. Captures are stored as flattened
// (start, end) pairs, pair i belonging to capture group i with group 0
// the whole match. A bound of -1 means the group did not participate.
type MatchInfo struct {
	captureCount int
	subject      values.String
	input        values.Value
	captures     []int
}

// NewMatchInfo returns an empty record.
func NewMatchInfo() *MatchInfo {
	return &MatchInfo{input: values.Undefined}
}

// CaptureCount returns the number of stored capture bounds (pairs × 2).
func (m *MatchInfo) CaptureCount() int { return m.captureCount }

// SetCaptureCount sets the number of valid capture bounds. Values set by
// a successful match are always even and at least 2.
func (m *MatchInfo) SetCaptureCount(n int) { m.captureCount = n }

// Subject returns the subject string of the most recent match.
func (m *MatchInfo) Subject() values.String { return m.subject }

// SetSubject replaces the subject reference. The string is referenced,
// not copied.
func (m *MatchInfo) SetSubject(s values.String) { m.subject = s }

// Input returns the original input value passed to exec, which may differ
// in representation from the subject.
func (m *MatchInfo) Input() values.Value { return m.input }

// SetInput replaces the input value.
func (m *MatchInfo) SetInput(v values.Value) { m.input = v }

// Capture returns the i-th capture bound. Pure storage access: i must be
// below CaptureCount, which is the caller's contract (CaptureString is
// the guarded reader).
func (m *MatchInfo) Capture(i int) int { return m.captures[i] }

// SetCapture stores the i-th capture bound, growing the backing storage
// as needed. This mutates the shared record in place.
func (m *MatchInfo) SetCapture(i, v int) {
	if i >= len(m.captures) {
		grown := make([]int, i+1)
		copy(grown, m.captures)
		m.captures = grown
	}
	m.captures[i] = v
}

// Record fills the record from a completed match in one step.
func (m *MatchInfo) Record(subject values.String, input values.Value, offsets []int) {
	m.subject = subject
	m.input = input
	m.captureCount = len(offsets)
	m.captures = append(m.captures[:0], offsets...)
}

// CaptureString decodes capture group g into its substring of the subject.
//
// The boolean result distinguishes the three outcomes a caller must keep
// apart: (nil, false) when the group does not exist for this match or
// existed but did not participate — both render as undefined upstream —
// and (s, true) for a participating group, where s is empty exactly when
// the group matched the empty string.
func (m *MatchInfo) CaptureString(g int) (values.String, bool) {
	offset := g * 2
	if offset >= m.captureCount {
		return nil, false
	}
	start, end := m.captures[offset], m.captures[offset+1]
	if start == -1 || end == -1 {
		return nil, false
	}
	return m.subject.Substring(start, end), true
}
