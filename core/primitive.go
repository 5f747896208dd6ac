package core

import (
	"math"
	"strconv"
	"strings"
)

// PrimitiveType represents the type of a Primitive
type PrimitiveType uint8

const (
	UndefinedType PrimitiveType = iota
	NullType
	BoolType
	NumberType
	StringType
	ObjectType
)

// Primitive is a Value for hosts without their own value representation and
// for tests. Objects convert through ToStringFunc, which may fail.
type Primitive struct {
	Type         PrimitiveType
	Bool         bool
	Number       float64
	Str          string
	ToStringFunc func() (string, error)
}

// Undefined returns the undefined value
func Undefined() Primitive { return Primitive{Type: UndefinedType} }

// Null returns the null value
func Null() Primitive { return Primitive{Type: NullType} }

// Bool creates a boolean value
func Bool(b bool) Primitive { return Primitive{Type: BoolType, Bool: b} }

// Number creates a numeric value
func Number(f float64) Primitive { return Primitive{Type: NumberType, Number: f} }

// Int creates a numeric value from an int
func Int(i int) Primitive { return Primitive{Type: NumberType, Number: float64(i)} }

// String creates a string value
func String(s string) Primitive { return Primitive{Type: StringType, Str: s} }

// Object creates an object value converted by fn. A nil fn converts to
// "[object Object]".
func Object(fn func() (string, error)) Primitive {
	return Primitive{Type: ObjectType, ToStringFunc: fn}
}

// Values converts Go values to console values. Strings, bools, numbers, nil
// and Values map directly; errors and Stringers become objects converting
// through their method; anything else converts to "[object Object]".
func Values(vs ...interface{}) []Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = toValue(v)
	}
	return out
}

func toValue(v interface{}) Value {
	switch x := v.(type) {
	case Value:
		return x
	case nil:
		return Null()
	case string:
		return String(x)
	case bool:
		return Bool(x)
	case int:
		return Int(x)
	case int64:
		return Number(float64(x))
	case uint64:
		return Number(float64(x))
	case float64:
		return Number(x)
	case error:
		return Object(func() (string, error) { return x.Error(), nil })
	case interface{ String() string }:
		return Object(func() (string, error) { return x.String(), nil })
	default:
		return Object(nil)
	}
}

// ToString converts the value following ECMAScript ToString rules for
// primitives.
func (p Primitive) ToString() (string, error) {
	switch p.Type {
	case UndefinedType:
		return "undefined", nil
	case NullType:
		return "null", nil
	case BoolType:
		return strconv.FormatBool(p.Bool), nil
	case NumberType:
		return formatNumber(p.Number), nil
	case StringType:
		return p.Str, nil
	case ObjectType:
		if p.ToStringFunc == nil {
			return "[object Object]", nil
		}
		return p.ToStringFunc()
	default:
		return "", nil
	}
}

// ToBoolean reports the truthiness of the value
func (p Primitive) ToBoolean() bool {
	switch p.Type {
	case BoolType:
		return p.Bool
	case NumberType:
		return p.Number != 0 && !math.IsNaN(p.Number)
	case StringType:
		return p.Str != ""
	case ObjectType:
		return true
	default:
		return false
	}
}

// IsString reports whether the value is a string primitive
func (p Primitive) IsString() bool {
	return p.Type == StringType
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
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e-7 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	// Go pads exponents to two digits ("1e-07"), scripts do not ("1e-7").
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + digits
}
