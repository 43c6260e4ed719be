package jsregexp

import "github.com/coregx/jsregexp/values"

// GetLastIndex reads the scan position of a regexp-like receiver.
//
// Canonical RegExp instances read the inline slot directly; no user code
// runs. Any other receiver goes through the generic property protocol,
// which may invoke a lastIndex getter and fail.
func GetLastIndex(recv values.Value) (values.Value, error) {
	if r, ok := canonicalRegExp(recv); ok {
		return r.lastIndex, nil
	}
	obj, err := receiverObject(recv)
	if err != nil {
		return nil, err
	}
	return obj.Get(lastIndexKey)
}

// SetLastIndex writes the scan position of a regexp-like receiver.
//
// Canonical RegExp instances write the inline slot directly. Any other
// receiver gets a strict-mode property write: a rejected write (read-only
// property, getter-only accessor) is an error, never silently dropped.
func SetLastIndex(recv values.Value, value int64) error {
	return setLastIndexValue(recv, values.Number(float64(value)))
}

// setLastIndexValue is SetLastIndex for an arbitrary saved value; used
// when restoring a cursor captured before an operation.
func setLastIndexValue(recv values.Value, v values.Value) error {
	if r, ok := canonicalRegExp(recv); ok {
		r.lastIndex = v
		return nil
	}
	obj, err := receiverObject(recv)
	if err != nil {
		return err
	}
	return obj.Set(lastIndexKey, v, true)
}
