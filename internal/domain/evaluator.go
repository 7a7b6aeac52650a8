package domain

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/lox/internal/model"
)

// errInvalidOperands is returned by the operator helpers; Evaluate turns it
// into a *RuntimeError naming the failing node.
var errInvalidOperands = errors.New("invalid operands")

type numberComputation func(l, r float64) m.Value

// Evaluate reduces expr to a value. Operands are evaluated left first, both
// sides of a binary operator always.
func Evaluate(expr m.Expression) (m.Value, error) {
	switch e := expr.(type) {
	case *m.Literal:
		return e.Value, nil
	case *m.Grouping:
		return Evaluate(e.Inner)
	case *m.Unary:
		return evaluateUnary(e)
	case *m.Binary:
		return evaluateBinary(e)
	default:
		return nil, fmt.Errorf("unsupported expression %T", expr)
	}
}

func evaluateUnary(e *m.Unary) (m.Value, error) {
	operand, err := Evaluate(e.Operand)
	if err != nil {
		return nil, err
	}

	var value m.Value

	switch e.Op {
	case m.PrefixNot:
		value, err = not(operand)
	case m.PrefixInverse:
		value, err = negate(operand)
	default:
		return nil, fmt.Errorf("unsupported prefix operator %s", e.Op)
	}

	if errors.Is(err, errInvalidOperands) {
		return nil, &RuntimeError{Kind: UnaryOperands, Expr: e, Operand: operand}
	}

	return value, err
}

func evaluateBinary(e *m.Binary) (m.Value, error) {
	left, err := Evaluate(e.Left)
	if err != nil {
		return nil, err
	}

	right, err := Evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	value, err := apply(e.Op, left, right)
	if errors.Is(err, errInvalidOperands) {
		return nil, &RuntimeError{Kind: BinaryOperands, Expr: e, Left: left, Right: right}
	}

	return value, err
}

func apply(op m.Infix, left, right m.Value) (m.Value, error) {
	switch op {
	case m.InfixEq:
		return m.Boolean(m.Equal(left, right)), nil
	case m.InfixNe:
		return m.Boolean(!m.Equal(left, right)), nil
	case m.InfixLt:
		return numeric(left, right, func(l, r float64) m.Value { return m.Boolean(l < r) })
	case m.InfixLte:
		return numeric(left, right, func(l, r float64) m.Value { return m.Boolean(l <= r) })
	case m.InfixGt:
		return numeric(left, right, func(l, r float64) m.Value { return m.Boolean(l > r) })
	case m.InfixGte:
		return numeric(left, right, func(l, r float64) m.Value { return m.Boolean(l >= r) })
	case m.InfixAdd:
		return add(left, right)
	case m.InfixSub:
		return numeric(left, right, func(l, r float64) m.Value { return m.Number(l - r) })
	case m.InfixMult:
		return numeric(left, right, func(l, r float64) m.Value { return m.Number(l * r) })
	case m.InfixDiv:
		// Division by zero yields an infinity or NaN.
		return numeric(left, right, func(l, r float64) m.Value { return m.Number(l / r) })
	default:
		return nil, fmt.Errorf("unsupported infix operator %s", op)
	}
}

// add concatenates two strings or adds two numbers.
func add(left, right m.Value) (m.Value, error) {
	if l, ok := left.(m.String); ok {
		if r, ok := right.(m.String); ok {
			return l + r, nil
		}
	}

	return numeric(left, right, func(l, r float64) m.Value { return m.Number(l + r) })
}

// numeric applies compute when both operands are numbers.
func numeric(left, right m.Value, compute numberComputation) (m.Value, error) {
	l, ok := left.(m.Number)
	if !ok {
		return nil, errInvalidOperands
	}

	r, ok := right.(m.Number)
	if !ok {
		return nil, errInvalidOperands
	}

	return compute(float64(l), float64(r)), nil
}

func not(operand m.Value) (m.Value, error) {
	return m.Boolean(!m.Truthy(operand)), nil
}

func negate(operand m.Value) (m.Value, error) {
	n, ok := operand.(m.Number)
	if !ok {
		return nil, errInvalidOperands
	}

	return -n, nil
}
