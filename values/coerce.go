package values

import (
	"math"
	"strconv"
	"strings"
)

// maxLength is 2^53-1, the largest length ToLength can yield.
const maxLength = 1<<53 - 1

// ToBoolean converts any value to a boolean. Never runs user code.
func ToBoolean(v Value) bool {
	switch t := v.(type) {
	case undefinedValue, nullValue:
		return false
	case Bool:
		return bool(t)
	case Number:
		return t == t && t != 0 // false for NaN and ±0
	case String:
		return t.Len() > 0
	default:
		return true
	}
}

// ToNumber converts a value to a number. Object input is first converted
// to a primitive via its valueOf/toString methods, which may run user code
// and fail; Symbol input is a TypeError.
func ToNumber(v Value) (float64, error) {
	switch t := v.(type) {
	case undefinedValue:
		return math.NaN(), nil
	case nullValue:
		return 0, nil
	case Bool:
		if t {
			return 1, nil
		}
		return 0, nil
	case Number:
		return float64(t), nil
	case String:
		return stringToNumber(t), nil
	case *Symbol:
		return 0, NewTypeError("cannot convert a symbol to a number")
	}
	prim, err := toPrimitive(v, "number")
	if err != nil {
		return 0, err
	}
	return ToNumber(prim)
}

// ToString converts a value to a UTF-16 string. Object input is first
// converted to a primitive via toString/valueOf; Symbol input is a
// TypeError.
func ToString(v Value) (String, error) {
	switch t := v.(type) {
	case undefinedValue:
		return NewString("undefined"), nil
	case nullValue:
		return NewString("null"), nil
	case Bool:
		if t {
			return NewString("true"), nil
		}
		return NewString("false"), nil
	case Number:
		return NewString(formatNumber(float64(t))), nil
	case String:
		return t, nil
	case *Symbol:
		return nil, NewTypeError("cannot convert a symbol to a string")
	}
	prim, err := toPrimitive(v, "string")
	if err != nil {
		return nil, err
	}
	return ToString(prim)
}

// ToLength converts a value to a non-negative integer length: NaN and
// negatives clamp to 0, large values clamp to 2^53-1. Failures come only
// from ToNumber (non-coercible input or a throwing valueOf/toString).
func ToLength(v Value) (int64, error) {
	n, err := ToNumber(v)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(n) || n <= 0 {
		return 0, nil
	}
	if n >= maxLength {
		return maxLength, nil
	}
	return int64(math.Floor(n)), nil
}

// toPrimitive implements OrdinaryToPrimitive: tries the hint-ordered
// methods and returns the first primitive result.
func toPrimitive(v Value, hint string) (Value, error) {
	o, ok := AsObject(v)
	if !ok {
		return v, nil
	}
	methods := [2]string{"valueOf", "toString"}
	if hint == "string" {
		methods = [2]string{"toString", "valueOf"}
	}
	for _, name := range methods {
		m, err := o.Get(StringKey(name))
		if err != nil {
			return nil, err
		}
		fn, ok := AsCallable(m)
		if !ok {
			continue
		}
		res, err := Call(fn, v)
		if err != nil {
			return nil, err
		}
		if _, isObj := AsObject(res); !isObj {
			return res, nil
		}
	}
	return nil, NewTypeError("cannot convert object to primitive value")
}

func stringToNumber(s String) float64 {
	t := strings.TrimSpace(s.String())
	switch {
	case t == "":
		return 0
	case t == "Infinity" || t == "+Infinity":
		return math.Inf(1)
	case t == "-Infinity":
		return math.Inf(-1)
	}
	// Non-decimal integer literals. Signs are not permitted on these.
	if len(t) > 2 && t[0] == '0' {
		var base int
		switch t[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, err := strconv.ParseUint(t[2:], base, 64)
			if err != nil {
				return math.NaN()
			}
			return float64(n)
		}
	}
	n, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return math.NaN()
	}
	return n
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0" // both +0 and -0
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
