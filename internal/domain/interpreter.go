package domain

import (
	m "github.com/mouse-blink/lox/internal/model"
)

// Interpret parses content as a single expression and evaluates it. Errors
// are *LexError, *ParseError or *RuntimeError, all Diagnosable.
func Interpret(sourceID, content string) (m.Value, error) {
	src := m.NewSource(sourceID, content)

	expr, err := Parse(src)
	if err != nil {
		return nil, err
	}

	return Evaluate(expr)
}
