package jsregexp

import (
	"github.com/coregx/jsregexp/internal/conv"
	"github.com/coregx/jsregexp/values"
)

// Test reports whether the receiver matches s, going through full exec
// dispatch: overrides run, and global/sticky receivers consume lastIndex
// exactly as they would for Exec.
func Test(recv values.Value, s values.String) (bool, error) {
	res, err := Exec(recv, s, nil)
	if err != nil {
		return false, err
	}
	return !values.IsNull(res), nil
}

// Search returns the index of the first match of recv in s, or -1. The
// receiver's lastIndex is saved, zeroed for the search, and restored
// afterwards, including when the search itself fails.
func Search(recv values.Value, s values.String) (int, error) {
	prev, err := GetLastIndex(recv)
	if err != nil {
		return 0, err
	}
	if err := SetLastIndex(recv, 0); err != nil {
		return 0, err
	}

	res, execErr := Exec(recv, s, nil)

	if err := setLastIndexValue(recv, prev); err != nil {
		return 0, err
	}
	if execErr != nil {
		return 0, execErr
	}
	if values.IsNull(res) {
		return -1, nil
	}

	obj, _ := values.AsObject(res)
	idxVal, err := obj.Get(values.StringKey("index"))
	if err != nil {
		return 0, err
	}
	idx, err := values.ToLength(idxVal)
	if err != nil {
		return 0, err
	}
	// An override may report an index past the subject; clamp rather than
	// propagate a position that no substring operation could use.
	if idx > int64(s.Len()) {
		idx = int64(s.Len())
	}
	return conv.Int64ToInt(idx), nil
}

// GlobalMatch runs the global exec loop (the core of matching builtins
// over global receivers): lastIndex is zeroed, exec dispatch repeats until
// it yields null, and zero-width matches advance the cursor with
// surrogate-aware increments to guarantee forward progress.
//
// It returns the matched strings in order, nil when nothing matched. A
// canonical non-global RegExp yields at most its first match, mirroring
// how matching builtins treat non-global receivers. An override that
// keeps producing matches without moving the cursor makes the loop
// unbounded; bounding misbehaving overrides is the caller's concern.
func GlobalMatch(recv values.Value, s values.String) ([]values.String, error) {
	if r, ok := recv.(*RegExp); ok && !r.flags.Has(FlagGlobal) {
		res, err := Exec(recv, s, nil)
		if err != nil {
			return nil, err
		}
		if values.IsNull(res) {
			return nil, nil
		}
		str, err := matchedString(res)
		if err != nil {
			return nil, err
		}
		return []values.String{str}, nil
	}

	unicode, err := receiverUnicode(recv)
	if err != nil {
		return nil, err
	}
	if err := SetLastIndex(recv, 0); err != nil {
		return nil, err
	}

	var out []values.String
	for {
		res, err := Exec(recv, s, nil)
		if err != nil {
			return nil, err
		}
		if values.IsNull(res) {
			return out, nil
		}
		str, err := matchedString(res)
		if err != nil {
			return nil, err
		}
		out = append(out, str)
		if str.Len() == 0 {
			if err := SetAdvancedStringIndex(recv, s, unicode); err != nil {
				return nil, err
			}
		}
	}
}

// matchedString extracts the whole-match string (property "0") from an
// exec result, coercing whatever an override put there.
func matchedString(res values.Value) (values.String, error) {
	obj, _ := values.AsObject(res)
	v, err := obj.Get(values.StringKey("0"))
	if err != nil {
		return nil, err
	}
	return values.ToString(v)
}

// receiverUnicode determines the unicode mode of a receiver: the compiled
// flag for RegExp values, the coerced "unicode" property for generic ones.
func receiverUnicode(recv values.Value) (bool, error) {
	if r, ok := recv.(*RegExp); ok {
		return r.flags.Has(FlagUnicode), nil
	}
	obj, err := receiverObject(recv)
	if err != nil {
		return false, err
	}
	v, err := obj.Get(values.StringKey("unicode"))
	if err != nil {
		return false, err
	}
	return values.ToBoolean(v), nil
}
