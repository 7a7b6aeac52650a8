package domain

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/lox/internal/model"
)

// ErrEvaluationFailed is returned by the workflow when at least one source
// failed to lex, parse or evaluate. It is wrapped in an *EvaluationError
// carrying the kind of the first failure.
var ErrEvaluationFailed = errors.New("evaluation failed")

// EvaluationError reports a failed evaluation after its diagnosis was shown.
type EvaluationError struct {
	Kind m.DiagnosisKind
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("%s: %s error", ErrEvaluationFailed, e.Kind)
}

func (e *EvaluationError) Unwrap() error {
	return ErrEvaluationFailed
}

// LexError is a lexical error token surfaced as an error.
type LexError struct {
	Token m.Token
}

func (e *LexError) Error() string {
	return e.message()
}

func (e *LexError) message() string {
	switch e.Token.Kind {
	case m.KindUnterminatedString:
		return "unterminated string"
	default:
		return fmt.Sprintf("unrecognized input `%s'", e.Token.Lexeme())
	}
}

// Diagnose points at the offending token.
func (e *LexError) Diagnose() m.Diagnosis {
	return diagnoseAt(m.DiagnosisLexing, e.message(), e.Token.Location)
}

// ParseErrorKind classifies a grammar violation.
type ParseErrorKind int

const (
	// UnclosedGrouping is an opening paren not followed by a closing one.
	UnclosedGrouping ParseErrorKind = iota
	// ExpectedExpression is a token (or the end of input) where an operand
	// was expected.
	ExpectedExpression
	// TrailingToken is a token left over after a complete expression.
	TrailingToken
)

// ParseError is a grammar violation. Got is the offending token, nil when the
// end of input was reached.
type ParseError struct {
	Kind   ParseErrorKind
	Source *m.Source
	Got    *m.Token
	// Open and Inner are set for UnclosedGrouping: the opening paren and the
	// expression parsed after it.
	Open  *m.Token
	Inner m.Expression
}

func (e *ParseError) Error() string {
	return e.message()
}

func (e *ParseError) message() string {
	got := "eof"
	if e.Got != nil {
		got = e.Got.Describe()
	}

	switch e.Kind {
	case UnclosedGrouping:
		return "expected `)' to close grouped expression, but got " + got
	case TrailingToken:
		return "expected end of input, but got " + got
	default:
		return "expected an expression, but got " + got
	}
}

// Diagnose points at the offending token, or past the last character when
// the end of input was reached.
func (e *ParseError) Diagnose() m.Diagnosis {
	if e.Got != nil {
		return diagnoseAt(m.DiagnosisParsing, e.message(), e.Got.Location)
	}

	return diagnoseEOF(m.DiagnosisParsing, e.message(), e.Source)
}

// RuntimeErrorKind classifies an evaluation failure.
type RuntimeErrorKind int

const (
	// BinaryOperands is an infix operator applied to unsupported operands.
	BinaryOperands RuntimeErrorKind = iota
	// UnaryOperands is a prefix operator applied to an unsupported operand.
	UnaryOperands
)

// RuntimeError is an operator applied to values of the wrong type. Expr is
// the failing node of the evaluated tree; Left and Right (binary) or Operand
// (unary) are the values computed for its operands.
type RuntimeError struct {
	Kind    RuntimeErrorKind
	Expr    m.Expression
	Left    m.Value
	Right   m.Value
	Operand m.Value
}

func (e *RuntimeError) Error() string {
	return e.message()
}

func (e *RuntimeError) operator() m.Token {
	return e.Expr.Tokens()[0]
}

func (e *RuntimeError) message() string {
	op := e.operator().Lexeme()

	if e.Kind == UnaryOperands {
		return fmt.Sprintf("invalid operands for unary operator `%s': expected (number) but got (%s)",
			op, e.Operand.Type())
	}

	// `+' also concatenates strings, so it has a compound expectation.
	expected := "(number, number)"
	if b, ok := e.Expr.(*m.Binary); ok && b.Op == m.InfixAdd {
		expected = "(number, number) or (string, string)"
	}

	return fmt.Sprintf("invalid operands for binary operator `%s': expected %s but got (%s, %s)",
		op, expected, e.Left.Type(), e.Right.Type())
}

// Diagnose points at the operator token.
func (e *RuntimeError) Diagnose() m.Diagnosis {
	return diagnoseAt(m.DiagnosisRuntime, e.message(), e.operator().Location)
}
