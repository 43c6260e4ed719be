package jsregexp

import "github.com/coregx/jsregexp/values"

// IsRegExp implements the IsRegExp abstract operation (ES#sec-isregexp).
//
// Primitives are never regexp-like. Canonical RegExp instances answer true
// on the fast path — valid only because the canonical shape guarantees the
// Symbol.match property has not been tampered with. Otherwise the
// Symbol.match property decides: when defined, its truthiness is the
// answer, letting any object opt in or out regardless of actual matching
// behavior. When it is undefined, the structural check covers RegExp
// instances whose shape was customized without touching Symbol.match.
//
// The property read may run a getter; its failure propagates.
func IsRegExp(v values.Value) (bool, error) {
	obj, ok := values.AsObject(v)
	if !ok {
		return false, nil
	}
	if _, ok := canonicalRegExp(v); ok {
		return true, nil
	}

	matcher, err := obj.Get(values.SymbolKey(values.SymbolMatch))
	if err != nil {
		return false, err
	}
	if !values.IsUndefined(matcher) {
		return values.ToBoolean(matcher), nil
	}

	_, isRegExp := v.(*RegExp)
	return isRegExp, nil
}
