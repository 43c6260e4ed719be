// Package values implements the dynamic value model used by the regexp
// protocol layer: ECMAScript-style primitives, property-bearing objects
// with shape tags, and the coercion operations the protocol depends on.
//
// The model is deliberately small. It covers exactly what the RegExp
// abstract operations need: a handful of primitive kinds, objects with
// data and accessor properties reached through a prototype chain,
// callable objects, well-known symbols, and the ToLength/ToBoolean
// family of coercions. Property getters, setters, and coercion hooks
// (valueOf, toString) run arbitrary user code, so every operation that
// can reach them returns an explicit error.
package values

// Kind identifies the dynamic type of a Value.
type Kind uint8

const (
	KindUndefined Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindSymbol
	KindObject
)

// String returns a human-readable name for the kind, used in error messages.
func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSymbol:
		return "symbol"
	case KindObject:
		return "object"
	}
	return "unknown"
}

// Value is any dynamic value handled by the protocol layer.
type Value interface {
	Kind() Kind
}

type undefinedValue struct{}

func (undefinedValue) Kind() Kind { return KindUndefined }

type nullValue struct{}

func (nullValue) Kind() Kind { return KindNull }

// Undefined and Null are the singleton absent-value and empty-value
// primitives. Operations that look up a missing property return Undefined,
// never a nil Value.
var (
	Undefined Value = undefinedValue{}
	Null      Value = nullValue{}
)

// Bool is the boolean primitive.
type Bool bool

// Kind implements Value.
func (Bool) Kind() Kind { return KindBool }

// Number is the numeric primitive (IEEE 754 double, as in ECMAScript).
type Number float64

// Kind implements Value.
func (Number) Kind() Kind { return KindNumber }

// IsUndefined reports whether v is the Undefined singleton.
func IsUndefined(v Value) bool { return v == nil || v.Kind() == KindUndefined }

// IsNull reports whether v is the Null singleton.
func IsNull(v Value) bool { return v != nil && v.Kind() == KindNull }
