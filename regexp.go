// Package jsregexp implements the runtime protocol between ECMAScript-style
// regexp objects and the underlying pattern-matching engine.
//
// The package does not search strings itself. Matching is delegated
// through the engine package; what lives here is the protocol around it,
// per the ECMAScript RegExp abstract operations:
//
//   - Exec dispatch: choosing between a user-supplied exec override and
//     the builtin matching routine, and validating the override's result
//     (ES#sec-regexpexec).
//   - The last-match record: capture offsets into a subject string, and
//     the decoder that distinguishes "group absent", "group did not
//     participate", and "group matched the empty string".
//   - The lastIndex cursor: an inline fast slot on unmodified RegExp
//     instances, with a generic property fallback for everything else.
//   - Surrogate-pair-safe index advancement (ES#sec-advancestringindex).
//   - The IsRegExp predicate with its Symbol.match opt-in.
//
// Receivers are polymorphic: any object with a lastIndex property and an
// invocable exec member can participate. Unmodified RegExp instances are
// recognized by a shape tag and take fast paths that run no user code;
// everything else goes through the generic property protocol, which may
// invoke getters, setters, and exec overrides. Every such call is an
// arbitrary-code boundary, so result shapes are re-validated after the
// call returns.
//
// Basic usage:
//
//	re := jsregexp.MustCompile(`(\w+)@(\w+)`, "g")
//	result, err := jsregexp.Exec(re, values.NewString("mail me@here now"), nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// result is null or an object with "0".."n", "index", "input".
package jsregexp

import (
	"strconv"

	"github.com/coregx/jsregexp/engine"
	"github.com/coregx/jsregexp/internal/conv"
	"github.com/coregx/jsregexp/values"
)

var (
	lastIndexKey = values.StringKey("lastIndex")
	execKey      = values.StringKey("exec")
)

// canonicalShape tags RegExp instances whose layout is exactly what the
// constructor installed. Own-property surgery of any kind moves an
// instance off this shape and onto the generic paths.
var canonicalShape = values.NewShape()

// builtinExec is the one builtin exec function, installed on the shared
// prototype. IsBuiltinExec compares against this identity.
var builtinExec = values.NewFunction("exec", builtinExecCall)

var regExpPrototype = newPrototype()

func newPrototype() *values.Object {
	p := values.NewObject(nil)
	p.DefineProperty(execKey, builtinExec, true)
	return p
}

// Prototype returns the shared prototype of all compiled RegExp values.
// It carries the builtin exec; replacing that property affects dispatch
// for every instance, as in the language itself.
func Prototype() *values.Object { return regExpPrototype }

// RegExp is a compiled, canonical regexp-like object: the engine's default
// receiver representation. It embeds a property table so user code can
// still treat it as an ordinary object; as long as its shape stays
// canonical, lastIndex reads and writes bypass the property protocol
// entirely.
type RegExp struct {
	*values.Object

	pattern *engine.Pattern
	source  string
	flags   Flags

	// lastIndex is the inline fast slot. The lastIndex property defined
	// on the object reads and writes this same slot, so the two views
	// never diverge.
	lastIndex values.Value
}

// Compile compiles a pattern with the given flag string ("gimsuy").
func Compile(source, flags string) (*RegExp, error) {
	f, err := ParseFlags(flags)
	if err != nil {
		return nil, err
	}
	p, err := engine.Compile(source, engine.Config{
		IgnoreCase: f.Has(FlagIgnoreCase),
		Multiline:  f.Has(FlagMultiline),
		DotAll:     f.Has(FlagDotAll),
		Unicode:    f.Has(FlagUnicode),
	})
	if err != nil {
		return nil, err
	}

	r := &RegExp{
		pattern:   p,
		source:    source,
		flags:     f,
		lastIndex: values.Number(0),
	}
	r.Object = newRegExpObject(r)
	return r, nil
}

// MustCompile is like Compile but panics on error. Useful for patterns
// known to be valid at compile time.
func MustCompile(source, flags string) *RegExp {
	r, err := Compile(source, flags)
	if err != nil {
		panic("jsregexp: Compile(`" + source + "`, `" + flags + "`): " + err.Error())
	}
	return r
}

// newRegExpObject builds the property table for a fresh instance and
// stamps the canonical shape. lastIndex is exposed as a property backed
// by the inline slot, so generic reads on customized instances stay
// coherent with the fast path.
func newRegExpObject(r *RegExp) *values.Object {
	o := values.NewObject(regExpPrototype)
	getter := values.NewFunction("get lastIndex", func(this values.Value, args ...values.Value) (values.Value, error) {
		return r.lastIndex, nil
	})
	setter := values.NewFunction("set lastIndex", func(this values.Value, args ...values.Value) (values.Value, error) {
		if len(args) > 0 {
			r.lastIndex = args[0]
		}
		return values.Undefined, nil
	})
	o.DefineAccessor(lastIndexKey, getter, setter)
	o.SetShape(canonicalShape)
	return o
}

// Source returns the pattern source text.
func (r *RegExp) Source() string { return r.source }

// Flags returns the compiled flag set.
func (r *RegExp) Flags() Flags { return r.flags }

// GroupCount returns the number of capture groups, including group 0.
func (r *RegExp) GroupCount() int { return r.pattern.GroupCount() }

// canonicalRegExp returns v as a RegExp when it is one and its shape is
// still exactly what the constructor installed. This is the cheap tag
// check gating every fast path: one type assertion and one pointer
// comparison, no user code.
func canonicalRegExp(v values.Value) (*RegExp, bool) {
	r, ok := v.(*RegExp)
	if !ok || r.Object.Shape() != canonicalShape {
		return nil, false
	}
	return r, true
}

// receiverObject extracts the property table behind an object-like
// receiver, or fails with a TypeError for primitives.
func receiverObject(v values.Value) (*values.Object, error) {
	o, ok := values.AsObject(v)
	if !ok {
		return nil, values.NewTypeError("method called on %s, expected an object", v.Kind())
	}
	return o, nil
}

// builtinExecCall adapts the builtin matching routine to the calling
// convention of exec properties.
func builtinExecCall(this values.Value, args ...values.Value) (values.Value, error) {
	r, ok := this.(*RegExp)
	if !ok {
		return nil, incompatibleReceiverError(this)
	}
	var arg values.Value = values.Undefined
	if len(args) > 0 {
		arg = args[0]
	}
	s, err := values.ToString(arg)
	if err != nil {
		return nil, err
	}
	return r.Exec(s)
}

// Exec runs the builtin matching routine (ES#sec-regexpbuiltinexec)
// directly, bypassing exec property lookup. It returns Null for no match,
// or a result object with the indexed captures, "index", "input", and
// "groups" for named captures.
//
// Global and sticky receivers honor lastIndex (via ToLength) and write it
// back: to the end of the match on success, to zero on failure.
func (r *RegExp) Exec(s values.String) (values.Value, error) {
	return r.ExecWithInfo(s, nil)
}

// ExecWithInfo is Exec, additionally recording the capture offsets of a
// successful match into info. The record is caller-scoped scratch: reusing
// one across logically unrelated matches without an intervening Record is
// the caller's responsibility to avoid.
func (r *RegExp) ExecWithInfo(s values.String, info *MatchInfo) (values.Value, error) {
	liVal, err := GetLastIndex(r)
	if err != nil {
		return nil, err
	}
	li, err := values.ToLength(liVal)
	if err != nil {
		return nil, err
	}

	global := r.flags.Has(FlagGlobal)
	sticky := r.flags.Has(FlagSticky)
	if !global && !sticky {
		li = 0
	}

	if li > int64(s.Len()) {
		if global || sticky {
			if err := SetLastIndex(r, 0); err != nil {
				return nil, err
			}
		}
		return values.Null, nil
	}

	m, err := r.pattern.Exec([]uint16(s), conv.Int64ToInt(li), sticky)
	if err != nil {
		return nil, err
	}
	if m == nil {
		if global || sticky {
			if err := SetLastIndex(r, 0); err != nil {
				return nil, err
			}
		}
		return values.Null, nil
	}

	if global || sticky {
		if err := SetLastIndex(r, int64(m.Offsets[1])); err != nil {
			return nil, err
		}
	}
	if info != nil {
		info.Record(s, s, m.Offsets)
	}
	return buildExecResult(s, m), nil
}

func buildExecResult(s values.String, m *engine.Match) *values.Object {
	res := values.NewObject(nil)
	n := m.GroupCount()
	res.DefineProperty(values.StringKey("index"), values.Number(float64(m.Offsets[0])), true)
	res.DefineProperty(values.StringKey("input"), s, true)
	res.DefineProperty(values.StringKey("length"), values.Number(float64(n)), true)

	var groups *values.Object
	for i := 0; i < n; i++ {
		start, end := m.Offsets[2*i], m.Offsets[2*i+1]
		var v values.Value = values.Undefined
		if start != -1 && end != -1 {
			v = s.Substring(start, end)
		}
		res.DefineProperty(values.StringKey(strconv.Itoa(i)), v, true)
		if name := m.Names[i]; name != "" {
			if groups == nil {
				groups = values.NewObject(nil)
			}
			groups.DefineProperty(values.StringKey(name), v, true)
		}
	}

	if groups != nil {
		res.DefineProperty(values.StringKey("groups"), groups, true)
	} else {
		res.DefineProperty(values.StringKey("groups"), values.Undefined, true)
	}
	return res
}
