package values

import "fmt"

// TypeError is the error surfaced for dynamic type violations: strict-mode
// writes rejected by a read-only property, calls on non-callables, and
// coercion failures. It corresponds to the language-level TypeError at the
// boundary that invoked the operation.
type TypeError struct {
	msg string
}

// NewTypeError formats a new TypeError.
func NewTypeError(format string, args ...any) *TypeError {
	return &TypeError{msg: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *TypeError) Error() string { return "TypeError: " + e.msg }
