package domain

import (
	m "github.com/mouse-blink/lox/internal/model"
)

type (
	parseFunc     func() (m.Expression, error)
	infixMatcher  func(m.TokenKind) (m.Infix, bool)
	prefixMatcher func(m.TokenKind) (m.Prefix, bool)
)

// Parse builds the expression tree of src. The whole source must be a single
// expression.
func Parse(src *m.Source) (m.Expression, error) {
	p := NewParser(src)

	expr, err := p.Expression()
	if err != nil {
		return nil, err
	}

	if token := p.peeker.next(); token != nil {
		if token.Kind.IsError() {
			return nil, &LexError{Token: *token}
		}

		return nil, p.fail(TrailingToken, token)
	}

	return expr, nil
}

// Parser is a recursive descent parser over the tokens of a source.
//
//	expression     → equality
//	equality       → comparison ( ( "!=" | "==" ) comparison )*
//	comparison     → addition ( ( ">" | ">=" | "<" | "<=" ) addition )*
//	addition       → multiplication ( ( "-" | "+" ) multiplication )*
//	multiplication → unary ( ( "/" | "*" ) unary )*
//	unary          → ( "!" | "-" ) unary | primary
//	primary        → NUMBER | STRING | "false" | "true" | "nil" | "(" expression ")"
type Parser struct {
	src    *m.Source
	peeker *tokenPeeker
}

// NewParser creates a parser reading the tokens of src.
func NewParser(src *m.Source) *Parser {
	return &Parser{src: src, peeker: newTokenPeeker(NewLexer(src))}
}

// Expression parses one expression and leaves the following tokens unread.
func (p *Parser) Expression() (m.Expression, error) {
	return p.equality()
}

func (p *Parser) equality() (m.Expression, error) {
	return p.infixBinary(p.comparison, func(kind m.TokenKind) (m.Infix, bool) {
		switch kind {
		case m.KindBangEqual:
			return m.InfixNe, true
		case m.KindEqualEq:
			return m.InfixEq, true
		default:
			return 0, false
		}
	})
}

func (p *Parser) comparison() (m.Expression, error) {
	return p.infixBinary(p.addition, func(kind m.TokenKind) (m.Infix, bool) {
		switch kind {
		case m.KindGreater:
			return m.InfixGt, true
		case m.KindGreaterEq:
			return m.InfixGte, true
		case m.KindLess:
			return m.InfixLt, true
		case m.KindLessEq:
			return m.InfixLte, true
		default:
			return 0, false
		}
	})
}

func (p *Parser) addition() (m.Expression, error) {
	return p.infixBinary(p.multiplication, func(kind m.TokenKind) (m.Infix, bool) {
		switch kind {
		case m.KindMinus:
			return m.InfixSub, true
		case m.KindPlus:
			return m.InfixAdd, true
		default:
			return 0, false
		}
	})
}

func (p *Parser) multiplication() (m.Expression, error) {
	return p.infixBinary(p.unary, func(kind m.TokenKind) (m.Infix, bool) {
		switch kind {
		case m.KindSlash:
			return m.InfixDiv, true
		case m.KindStar:
			return m.InfixMult, true
		default:
			return 0, false
		}
	})
}

func (p *Parser) unary() (m.Expression, error) {
	return p.prefixUnary(p.unary, p.primary, func(kind m.TokenKind) (m.Prefix, bool) {
		switch kind {
		case m.KindBang:
			return m.PrefixNot, true
		case m.KindMinus:
			return m.PrefixInverse, true
		default:
			return 0, false
		}
	})
}

// primary consumes exactly one token (plus a grouped expression after an
// opening paren).
func (p *Parser) primary() (m.Expression, error) {
	token := p.peeker.next()
	if token == nil {
		return nil, p.fail(ExpectedExpression, nil)
	}

	switch token.Kind {
	case m.KindOpenParen:
		return p.grouping(*token)
	case m.KindString:
		return m.NewLiteral(m.String(token.Text), *token), nil
	case m.KindNumber:
		return m.NewLiteral(m.Number(token.Number), *token), nil
	case m.KindFalse:
		return m.NewLiteral(m.Boolean(false), *token), nil
	case m.KindTrue:
		return m.NewLiteral(m.Boolean(true), *token), nil
	case m.KindNil:
		return m.NewLiteral(m.Nil{}, *token), nil
	case m.KindUnterminatedString, m.KindUnknownRun:
		return nil, &LexError{Token: *token}
	default:
		return nil, p.fail(ExpectedExpression, token)
	}
}

func (p *Parser) grouping(open m.Token) (m.Expression, error) {
	inner, err := p.Expression()
	if err != nil {
		return nil, err
	}

	closing := p.peeker.next()
	if closing != nil && closing.Kind.IsError() {
		return nil, &LexError{Token: *closing}
	}

	if closing == nil || closing.Kind != m.KindCloseParen {
		return nil, &ParseError{
			Kind:   UnclosedGrouping,
			Source: p.src,
			Got:    closing,
			Open:   &open,
			Inner:  inner,
		}
	}

	return m.NewGrouping(inner, open, *closing), nil
}

// infixBinary parses a left-associative chain of higher operands joined by
// the operators accepted by match.
func (p *Parser) infixBinary(higher parseFunc, match infixMatcher) (m.Expression, error) {
	left, err := higher()
	if err != nil {
		return nil, err
	}

	for peeked := p.peeker.peek(); peeked != nil; peeked = p.peeker.peek() {
		op, ok := match(peeked.Kind)
		if !ok {
			break
		}

		token := p.peeker.next()

		right, err := higher()
		if err != nil {
			return nil, err
		}

		left = m.NewBinary(left, op, right, *token)
	}

	return left, nil
}

// prefixUnary parses an operator accepted by match followed by this, or falls
// through to higher.
func (p *Parser) prefixUnary(this, higher parseFunc, match prefixMatcher) (m.Expression, error) {
	if peeked := p.peeker.peek(); peeked != nil {
		if op, ok := match(peeked.Kind); ok {
			token := p.peeker.next()

			operand, err := this()
			if err != nil {
				return nil, err
			}

			return m.NewUnary(op, operand, *token), nil
		}
	}

	return higher()
}

// synchronize discards tokens until it has consumed a `;' followed by the
// start of a statement or by the end of input. It is the recovery point for
// the statement grammar.
func (p *Parser) synchronize() {
	for token := p.peeker.next(); token != nil; token = p.peeker.next() {
		if token.Kind != m.KindSemiColon {
			continue
		}

		next := p.peeker.peek()
		if next == nil {
			return
		}

		switch next.Kind {
		case m.KindClass, m.KindFun, m.KindVar, m.KindFor, m.KindIf, m.KindWhile, m.KindPrint, m.KindReturn:
			return
		}
	}
}

func (p *Parser) fail(kind ParseErrorKind, got *m.Token) *ParseError {
	return &ParseError{Kind: kind, Source: p.src, Got: got}
}

// tokenPeeker reads a lexer with two tokens of lookahead.
type tokenPeeker struct {
	lexer     *Lexer
	lookahead [2]*m.Token
}

func newTokenPeeker(lexer *Lexer) *tokenPeeker {
	tp := &tokenPeeker{lexer: lexer}
	tp.lookahead[0] = tp.load()
	tp.lookahead[1] = tp.load()

	return tp
}

func (tp *tokenPeeker) load() *m.Token {
	token, ok := tp.lexer.Next()
	if !ok {
		return nil
	}

	return &token
}

func (tp *tokenPeeker) peek() *m.Token {
	return tp.lookahead[0]
}

func (tp *tokenPeeker) peek2() *m.Token {
	return tp.lookahead[1]
}

func (tp *tokenPeeker) next() *m.Token {
	token := tp.lookahead[0]
	tp.lookahead[0] = tp.lookahead[1]
	tp.lookahead[1] = tp.load()

	return token
}
