package model

import (
	"fmt"
	"strings"
)

// Prefix is a unary prefix operator.
type Prefix int

// Prefix operators.
const (
	PrefixNot     Prefix = iota // !
	PrefixInverse               // -
)

func (p Prefix) String() string {
	switch p {
	case PrefixNot:
		return "!"
	case PrefixInverse:
		return "-"
	default:
		return fmt.Sprintf("Prefix(%d)", int(p))
	}
}

// Infix is a binary infix operator.
type Infix int

// Infix operators.
const (
	InfixEq   Infix = iota // ==
	InfixNe                // !=
	InfixLt                // <
	InfixLte               // <=
	InfixGt                // >
	InfixGte               // >=
	InfixAdd               // +
	InfixSub               // -
	InfixMult              // *
	InfixDiv               // /
)

var infixSymbols = [...]string{
	InfixEq:   "==",
	InfixNe:   "!=",
	InfixLt:   "<",
	InfixLte:  "<=",
	InfixGt:   ">",
	InfixGte:  ">=",
	InfixAdd:  "+",
	InfixSub:  "-",
	InfixMult: "*",
	InfixDiv:  "/",
}

func (i Infix) String() string {
	if i < 0 || int(i) >= len(infixSymbols) {
		return fmt.Sprintf("Infix(%d)", int(i))
	}

	return infixSymbols[i]
}

// Expression is a node of the tree produced by the parser. The set of
// implementations is closed: *Literal, *Grouping, *Unary and *Binary.
// Nodes are built bottom-up by the New* constructors and never change
// afterwards.
type Expression interface {
	// Tokens returns the tokens that produced the node.
	Tokens() []Token
	// Parent returns the enclosing node, nil for the root.
	Parent() Expression

	setParent(parent Expression)
}

type node struct {
	tokens []Token
	parent Expression
}

func (n *node) Tokens() []Token             { return n.tokens }
func (n *node) Parent() Expression          { return n.parent }
func (n *node) setParent(parent Expression) { n.parent = parent }

// Literal is a constant value.
type Literal struct {
	node
	Value Value
}

// Grouping is a parenthesized expression.
type Grouping struct {
	node
	Inner Expression
}

// Unary is a prefix operation.
type Unary struct {
	node
	Op      Prefix
	Operand Expression
}

// Binary is an infix operation.
type Binary struct {
	node
	Left  Expression
	Op    Infix
	Right Expression
}

// NewLiteral creates a literal node scanned from token.
func NewLiteral(value Value, token Token) *Literal {
	return &Literal{node: node{tokens: []Token{token}}, Value: value}
}

// NewGrouping creates a grouping node delimited by the open and close tokens.
func NewGrouping(inner Expression, open, closing Token) *Grouping {
	g := &Grouping{node: node{tokens: []Token{open, closing}}, Inner: inner}
	inner.setParent(g)

	return g
}

// NewUnary creates a prefix operation node for the operator token.
func NewUnary(op Prefix, operand Expression, token Token) *Unary {
	u := &Unary{node: node{tokens: []Token{token}}, Op: op, Operand: operand}
	operand.setParent(u)

	return u
}

// NewBinary creates an infix operation node for the operator token.
func NewBinary(left Expression, op Infix, right Expression, token Token) *Binary {
	b := &Binary{node: node{tokens: []Token{token}}, Left: left, Op: op, Right: right}
	left.setParent(b)
	right.setParent(b)

	return b
}

// Sexpr renders the tree in parenthesized prefix form, e.g. (+ 1 (group 2)).
// Literals use their debug form with whole numbers rendered as integers.
func Sexpr(expr Expression) string {
	var b strings.Builder

	writeSexpr(&b, expr)

	return b.String()
}

func writeSexpr(b *strings.Builder, expr Expression) {
	switch e := expr.(type) {
	case *Literal:
		b.WriteString(e.Value.String())
	case *Grouping:
		b.WriteString("(group ")
		writeSexpr(b, e.Inner)
		b.WriteString(")")
	case *Unary:
		b.WriteString("(" + e.Op.String() + " ")
		writeSexpr(b, e.Operand)
		b.WriteString(")")
	case *Binary:
		b.WriteString("(" + e.Op.String() + " ")
		writeSexpr(b, e.Left)
		b.WriteString(" ")
		writeSexpr(b, e.Right)
		b.WriteString(")")
	default:
		fmt.Fprintf(b, "<%T>", expr)
	}
}
