package model

import (
	"math"
	"strconv"
)

// Value is a runtime value. The set of implementations is closed: Nil,
// String, Number and Boolean. Values are immutable scalars, safe to copy.
type Value interface {
	// Type returns the name of the value's variant, as shown in diagnostics.
	Type() string
	// String returns the debug form of the value (strings are quoted).
	String() string

	value()
}

// Nil is the absence of value.
type Nil struct{}

// String is a string value.
type String string

// Number is a double precision floating point value.
type Number float64

// Boolean is a truth value.
type Boolean bool

func (Nil) Type() string     { return "nil" }
func (String) Type() string  { return "string" }
func (Number) Type() string  { return "number" }
func (Boolean) Type() string { return "boolean" }

func (Nil) String() string       { return "nil" }
func (s String) String() string  { return strconv.Quote(string(s)) }
func (n Number) String() string  { return formatNumber(float64(n)) }
func (b Boolean) String() string { return strconv.FormatBool(bool(b)) }

func (Nil) value()     {}
func (String) value()  {}
func (Number) value()  {}
func (Boolean) value() {}

// Display returns the print form of v: like String but with raw strings.
func Display(v Value) string {
	if s, ok := v.(String); ok {
		return string(s)
	}

	return v.String()
}

// Equal reports whether a and b are the same variant holding the same payload.
// Values of different variants are never equal.
func Equal(a, b Value) bool {
	switch l := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case String:
		r, ok := b.(String)
		return ok && l == r
	case Number:
		r, ok := b.(Number)
		return ok && l == r
	case Boolean:
		r, ok := b.(Boolean)
		return ok && l == r
	default:
		return false
	}
}

// Truthy maps v to a boolean: nil and false are false, everything else
// (including 0 and "") is true.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case Nil:
		return false
	case Boolean:
		return bool(v)
	default:
		return true
	}
}

// formatNumber renders whole numbers without a fractional part and other
// numbers in their shortest decimal form.
func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "nan"
	case math.IsInf(n, 1):
		return "inf"
	case math.IsInf(n, -1):
		return "-inf"
	case n == math.Trunc(n) && math.Abs(n) < 1e21:
		return strconv.FormatFloat(n, 'f', 0, 64)
	default:
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
}
