package jsregexp

import (
	"fmt"

	"github.com/coregx/jsregexp/values"
)

// Exec implements the RegExpExec runtime semantics (ES#sec-regexpexec):
// the dispatch point between user-supplied exec overrides and the builtin
// matching routine.
//
// When execArg is nil or Undefined, exec is looked up as a property of the
// receiver (which may run a getter). If the resolved value is callable it
// is invoked with the receiver as this and s as the sole argument; its
// result must be Null or an object, anything else fails with
// ErrInvalidExecResult. If it is not callable, the receiver must be a
// genuine RegExp — the builtin routine is invoked directly — or dispatch
// fails with ErrIncompatibleReceiver.
//
// Callers that have already fetched exec pass it as execArg to skip the
// second property read.
func Exec(recv values.Value, s values.String, execArg values.Value) (values.Value, error) {
	obj, err := receiverObject(recv)
	if err != nil {
		return nil, err
	}

	exec := execArg
	if values.IsUndefined(exec) {
		exec, err = obj.Get(execKey)
		if err != nil {
			return nil, err
		}
	}

	if fn, ok := values.AsCallable(exec); ok {
		result, err := values.Call(fn, recv, s)
		if err != nil {
			return nil, err
		}
		// The callee ran arbitrary code. Validate the shape it actually
		// returned instead of trusting anything captured before the call.
		if _, isObj := values.AsObject(result); !isObj && !values.IsNull(result) {
			return nil, fmt.Errorf("%w: exec returned %s", ErrInvalidExecResult, result.Kind())
		}
		return result, nil
	}

	r, ok := recv.(*RegExp)
	if !ok {
		return nil, incompatibleReceiverError(recv)
	}
	return r.Exec(s)
}

// IsBuiltinExec reports whether v is the engine's own default exec
// implementation. The check is identity, not behavior: a user function
// that perfectly imitates the builtin still reports false. Higher-level
// builtins use this to skip the override path when nothing was customized.
func IsBuiltinExec(v values.Value) bool {
	fn, ok := values.AsCallable(v)
	return ok && fn == builtinExec
}

func incompatibleReceiverError(recv values.Value) error {
	return fmt.Errorf("%w: RegExp.prototype.exec called on %s", ErrIncompatibleReceiver, describeReceiver(recv))
}

func describeReceiver(v values.Value) string {
	if o, ok := values.AsObject(v); ok && o.Name() != "" {
		return "function " + o.Name()
	}
	return v.Kind().String()
}
