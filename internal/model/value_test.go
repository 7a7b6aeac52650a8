package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_TypeAndString(t *testing.T) {
	tests := []struct {
		value   Value
		typ     string
		debug   string
		display string
	}{
		{value: Nil{}, typ: "nil", debug: "nil", display: "nil"},
		{value: String("ab"), typ: "string", debug: `"ab"`, display: "ab"},
		{value: Number(7), typ: "number", debug: "7", display: "7"},
		{value: Number(-3), typ: "number", debug: "-3", display: "-3"},
		{value: Number(1.5), typ: "number", debug: "1.5", display: "1.5"},
		{value: Number(0.1 + 0.2), typ: "number", debug: "0.30000000000000004", display: "0.30000000000000004"},
		{value: Number(math.Inf(1)), typ: "number", debug: "inf", display: "inf"},
		{value: Number(math.Inf(-1)), typ: "number", debug: "-inf", display: "-inf"},
		{value: Number(math.NaN()), typ: "number", debug: "nan", display: "nan"},
		{value: Boolean(true), typ: "boolean", debug: "true", display: "true"},
		{value: Boolean(false), typ: "boolean", debug: "false", display: "false"},
	}

	for _, tt := range tests {
		t.Run(tt.debug, func(t *testing.T) {
			assert.Equal(t, tt.typ, tt.value.Type())
			assert.Equal(t, tt.debug, tt.value.String())
			assert.Equal(t, tt.display, Display(tt.value))
		})
	}
}

func TestValue_WholeNumbersHaveNoFraction(t *testing.T) {
	for _, n := range []float64{0, 1, 42, 1234567890, 1e20} {
		got := Number(n).String()
		assert.NotContains(t, got, ".", "whole number %v rendered as %q", n, got)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{name: "nil nil", a: Nil{}, b: Nil{}, want: true},
		{name: "same strings", a: String("a"), b: String("a"), want: true},
		{name: "different strings", a: String("a"), b: String("b"), want: false},
		{name: "same numbers", a: Number(1), b: Number(1), want: true},
		{name: "different numbers", a: Number(1), b: Number(2), want: false},
		{name: "nan", a: Number(math.NaN()), b: Number(math.NaN()), want: false},
		{name: "same booleans", a: Boolean(true), b: Boolean(true), want: true},
		{name: "nil and false", a: Nil{}, b: Boolean(false), want: false},
		{name: "number and string", a: Number(1), b: String("1"), want: false},
		{name: "zero and false", a: Number(0), b: Boolean(false), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, Equal(tt.b, tt.a), "equality must be symmetric")
		})
	}
}

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(Nil{}))
	assert.False(t, Truthy(Boolean(false)))
	assert.True(t, Truthy(Boolean(true)))
	assert.True(t, Truthy(Number(0)), "zero is truthy")
	assert.True(t, Truthy(String("")), "empty string is truthy")
}
