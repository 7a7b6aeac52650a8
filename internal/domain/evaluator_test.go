package domain

import (
	"math"
	"testing"

	m "github.com/mouse-blink/lox/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eval(t *testing.T, input string) (m.Value, error) {
	t.Helper()

	return Evaluate(parse(t, input))
}

func TestEvaluate_Values(t *testing.T) {
	tests := []struct {
		input string
		want  m.Value
	}{
		{input: "1 + 2 * 3", want: m.Number(7)},
		{input: "(1 + 2) * 3", want: m.Number(9)},
		{input: "10 - 4 - 3", want: m.Number(3)},
		{input: "7 / 2", want: m.Number(3.5)},
		{input: "-(2 * 3)", want: m.Number(-6)},
		{input: "--4", want: m.Number(4)},
		{input: `"a" + "b"`, want: m.String("ab")},
		{input: `"" + ""`, want: m.String("")},
		{input: "1 < 2", want: m.Boolean(true)},
		{input: "2 <= 2", want: m.Boolean(true)},
		{input: "1 > 2", want: m.Boolean(false)},
		{input: "3 >= 4", want: m.Boolean(false)},
		{input: "1 == 1", want: m.Boolean(true)},
		{input: `"a" == "a"`, want: m.Boolean(true)},
		{input: `1 == "1"`, want: m.Boolean(false)},
		{input: "nil == nil", want: m.Boolean(true)},
		{input: "nil == false", want: m.Boolean(false)},
		{input: "true != false", want: m.Boolean(true)},
		{input: "!nil", want: m.Boolean(true)},
		{input: "!false", want: m.Boolean(true)},
		{input: "!0", want: m.Boolean(false)},
		{input: `!""`, want: m.Boolean(false)},
		{input: "!!true", want: m.Boolean(true)},
		{input: "nil", want: m.Nil{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := eval(t, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_DivisionByZero(t *testing.T) {
	got, err := eval(t, "1 / 0")
	require.NoError(t, err)
	assert.True(t, math.IsInf(float64(got.(m.Number)), 1))

	got, err = eval(t, "-1 / 0")
	require.NoError(t, err)
	assert.True(t, math.IsInf(float64(got.(m.Number)), -1))

	got, err = eval(t, "0 / 0")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(float64(got.(m.Number))))
}

func TestEvaluate_NaNIsNotEqualToItself(t *testing.T) {
	got, err := eval(t, "0 / 0 == 0 / 0")
	require.NoError(t, err)
	assert.Equal(t, m.Boolean(false), got)
}

func TestEvaluate_RuntimeErrors(t *testing.T) {
	tests := []struct {
		input   string
		kind    RuntimeErrorKind
		message string
	}{
		{
			input:   `"a" + 1`,
			kind:    BinaryOperands,
			message: "invalid operands for binary operator `+': expected (number, number) or (string, string) but got (string, number)",
		},
		{
			input:   `1 - "a"`,
			kind:    BinaryOperands,
			message: "invalid operands for binary operator `-': expected (number, number) but got (number, string)",
		},
		{
			input:   "true < 1",
			kind:    BinaryOperands,
			message: "invalid operands for binary operator `<': expected (number, number) but got (boolean, number)",
		},
		{
			input:   "nil * nil",
			kind:    BinaryOperands,
			message: "invalid operands for binary operator `*': expected (number, number) but got (nil, nil)",
		},
		{
			input:   `-"a"`,
			kind:    UnaryOperands,
			message: "invalid operands for unary operator `-': expected (number) but got (string)",
		},
		{
			input:   "-nil",
			kind:    UnaryOperands,
			message: "invalid operands for unary operator `-': expected (number) but got (nil)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := eval(t, tt.input)

			var runtimeErr *RuntimeError
			require.ErrorAs(t, err, &runtimeErr)
			assert.Equal(t, tt.kind, runtimeErr.Kind)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestEvaluate_RuntimeErrorCarriesNode(t *testing.T) {
	expr := parse(t, `1 + (2 * "x")`)

	_, err := Evaluate(expr)

	var runtimeErr *RuntimeError
	require.ErrorAs(t, err, &runtimeErr)

	failing, ok := runtimeErr.Expr.(*m.Binary)
	require.True(t, ok)
	assert.Equal(t, m.InfixMult, failing.Op)
	assert.Equal(t, m.Number(2), runtimeErr.Left)
	assert.Equal(t, m.String("x"), runtimeErr.Right)

	// The failing node is the one inside the evaluated tree.
	group := expr.(*m.Binary).Right.(*m.Grouping)
	assert.Same(t, group.Inner, runtimeErr.Expr)
}

func TestEvaluate_LeftFailsFirst(t *testing.T) {
	_, err := eval(t, `-"a" + -nil`)

	var runtimeErr *RuntimeError
	require.ErrorAs(t, err, &runtimeErr)
	assert.Equal(t, m.String("a"), runtimeErr.Operand)
}

func TestInterpret(t *testing.T) {
	value, err := Interpret("test", "(1 + 2) * 3 == 9")
	require.NoError(t, err)
	assert.Equal(t, m.Boolean(true), value)

	_, err = Interpret("test", "(1")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)

	_, err = Interpret("test", "1 + nil")
	var runtimeErr *RuntimeError
	require.ErrorAs(t, err, &runtimeErr)
}
