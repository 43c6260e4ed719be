package jsregexp

import "errors"

// Protocol-level errors. All of them surface as TypeErrors at the
// language boundary that invoked the operation; none is recoverable
// within the protocol layer.
var (
	// ErrInvalidExecResult indicates a user-supplied exec returned a value
	// that is neither null nor an object.
	ErrInvalidExecResult = errors.New("invalid RegExp exec result")

	// ErrIncompatibleReceiver indicates the builtin-only exec path was
	// reached on a receiver that is not a genuine RegExp.
	ErrIncompatibleReceiver = errors.New("incompatible method receiver")

	// ErrInvalidFlags indicates an unknown or duplicated flag character.
	ErrInvalidFlags = errors.New("invalid RegExp flags")
)
