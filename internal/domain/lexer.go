// Package domain implements the lox pipeline: lexing, parsing, evaluation and
// diagnosis, plus the workflow driving it from the command line.
package domain

import (
	"iter"
	"strconv"

	m "github.com/mouse-blink/lox/internal/model"
)

// Lexer turns a source into a lazy sequence of tokens. Lexical errors are
// tokens of an error kind; lexing never stops at them.
type Lexer struct {
	src    *m.Source
	cursor *cursor
}

// NewLexer creates a lexer positioned at the start of src.
func NewLexer(src *m.Source) *Lexer {
	return &Lexer{src: src, cursor: newCursor(src)}
}

// Scan lexes the whole source and returns every token.
func Scan(src *m.Source) []m.Token {
	var tokens []m.Token
	for token := range NewLexer(src).All() {
		tokens = append(tokens, token)
	}

	return tokens
}

// LexErrors returns a *LexError for every error token, in source order.
func LexErrors(tokens []m.Token) []error {
	var errs []error

	for _, token := range tokens {
		if token.Kind.IsError() {
			errs = append(errs, &LexError{Token: token})
		}
	}

	return errs
}

// Source returns the source being lexed.
func (l *Lexer) Source() *m.Source {
	return l.src
}

// All returns the remaining tokens as a sequence.
func (l *Lexer) All() iter.Seq[m.Token] {
	return func(yield func(m.Token) bool) {
		for {
			token, ok := l.Next()
			if !ok || !yield(token) {
				return
			}
		}
	}
}

// Next returns the next token, false once the end of input is reached.
func (l *Lexer) Next() (m.Token, bool) {
	c := l.cursor

	for {
		c.skip(isBlank)

		first := c.next()
		if first == nil {
			return m.Token{}, false
		}

		start := first.offset

		switch first.r {
		case '(':
			return l.token(start, m.KindOpenParen), true
		case ')':
			return l.token(start, m.KindCloseParen), true
		case '{':
			return l.token(start, m.KindOpenBrace), true
		case '}':
			return l.token(start, m.KindCloseBrace), true
		case ',':
			return l.token(start, m.KindComma), true
		case '.':
			return l.token(start, m.KindDot), true
		case '-':
			return l.token(start, m.KindMinus), true
		case '+':
			return l.token(start, m.KindPlus), true
		case ';':
			return l.token(start, m.KindSemiColon), true
		case '*':
			return l.token(start, m.KindStar), true
		case '!':
			return l.either(start, '=', m.KindBangEqual, m.KindBang), true
		case '=':
			return l.either(start, '=', m.KindEqualEq, m.KindEqual), true
		case '>':
			return l.either(start, '=', m.KindGreaterEq, m.KindGreater), true
		case '<':
			return l.either(start, '=', m.KindLessEq, m.KindLess), true
		case '/':
			if !c.match('/') {
				return l.token(start, m.KindSlash), true
			}
			// A line comment runs up to the newline, which is left for the
			// blank skipping.
			c.skip(func(r rune) bool { return r != '\n' })

			continue
		case '"':
			return l.scanString(start), true
		}

		switch {
		case isDigit(first.r):
			return l.scanNumber(start, first.r), true
		case isAlpha(first.r):
			return l.scanIdentifier(start, first.r), true
		default:
			return l.scanUnknown(start, first.r), true
		}
	}
}

// token creates a token spanning from start to the cursor.
func (l *Lexer) token(start int, kind m.TokenKind) m.Token {
	loc, err := l.src.Location(start, l.cursor.offset()-start)
	if err != nil {
		// The cursor never moves past the end of the source.
		panic(err)
	}

	return m.Token{Kind: kind, Location: loc}
}

// either emits long when the next character is next, short otherwise.
func (l *Lexer) either(start int, next rune, long, short m.TokenKind) m.Token {
	if l.cursor.match(next) {
		return l.token(start, long)
	}

	return l.token(start, short)
}

// scanString scans a literal up to the closing double quote. There is no escape
// sequence: a string cannot contain a double quote.
func (l *Lexer) scanString(start int) m.Token {
	content := l.cursor.skip(func(r rune) bool { return r != '"' })
	if !l.cursor.advance() {
		token := l.token(start, m.KindUnterminatedString)
		token.Text = string(content)

		return token
	}

	token := l.token(start, m.KindString)
	token.Text = string(content)

	return token
}

// scanNumber scans digits with an optional fractional part. The dot is consumed
// only when a digit follows it, so "1." stops before the dot.
func (l *Lexer) scanNumber(start int, first rune) m.Token {
	c := l.cursor
	digits := append([]rune{first}, c.skip(isDigit)...)

	if dot, after := c.peek(), c.peek2(); dot != nil && dot.r == '.' && after != nil && isDigit(after.r) {
		digits = append(digits, c.next().r)
		digits = append(digits, c.skip(isDigit)...)
	}

	n, err := strconv.ParseFloat(string(digits), 64)
	if err != nil {
		// Only ASCII digits and at most one inner dot reach this point.
		panic(err)
	}

	token := l.token(start, m.KindNumber)
	token.Number = n

	return token
}

// scanIdentifier scans a word and resolves it against the keyword table.
func (l *Lexer) scanIdentifier(start int, first rune) m.Token {
	word := string(append([]rune{first}, l.cursor.skip(isAlnum)...))

	kind := m.LookupKeyword(word)

	token := l.token(start, kind)
	if kind == m.KindIdentifier {
		token.Text = word
	}

	return token
}

// scanUnknown consumes the run of non-blank characters started by first.
func (l *Lexer) scanUnknown(start int, first rune) m.Token {
	run := append([]rune{first}, l.cursor.skip(func(r rune) bool { return !isBlank(r) })...)

	token := l.token(start, m.KindUnknownRun)
	token.Text = string(run)

	return token
}

func isBlank(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isAlpha accepts ASCII letters and the underscore.
func isAlpha(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '_'
}

func isAlnum(r rune) bool {
	return isAlpha(r) || isDigit(r)
}
