package jsregexp

import (
	"github.com/coregx/jsregexp/internal/conv"
	"github.com/coregx/jsregexp/values"
)

// AdvanceStringIndex returns the increment from index to the next scan
// position in s (ES#sec-advancestringindex): always 1, except under
// unicode semantics when the code unit at index is a high surrogate
// directly followed by a low surrogate — the pair is one code point and
// the increment is 2. Lone surrogates are never combined.
//
// Panics on a negative index; valid positions are the caller's contract.
func AdvanceStringIndex(s values.String, index int, unicode bool) int {
	if index < 0 {
		panic("jsregexp: negative string index")
	}
	if !unicode || index >= s.Len() {
		return 1
	}
	if !values.IsHighSurrogate(s.CharAt(index)) {
		return 1
	}
	if index+1 >= s.Len() || !values.IsLowSurrogate(s.CharAt(index+1)) {
		return 1
	}
	return 2
}

// SetAdvancedStringIndex advances the receiver's lastIndex past the
// current position: it reads the cursor, coerces it with ToLength,
// adds the AdvanceStringIndex increment, and writes it back. Used after a
// zero-width match in global iteration to guarantee forward progress with
// correct code-point alignment.
//
// Coercion and cursor failures propagate; positions at or beyond the end
// of s advance by one.
func SetAdvancedStringIndex(recv values.Value, s values.String, unicode bool) error {
	liVal, err := GetLastIndex(recv)
	if err != nil {
		return err
	}
	li, err := values.ToLength(liVal)
	if err != nil {
		return err
	}

	increment := 1
	if li < int64(s.Len()) {
		increment = AdvanceStringIndex(s, conv.Int64ToInt(li), unicode)
	}
	return SetLastIndex(recv, li+int64(increment))
}
