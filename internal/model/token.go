package model

import (
	"fmt"
	"strconv"
	"strings"
)

// TokenKind classifies a scanned token.
type TokenKind int

// Token kinds. The set is closed: the lexer never produces anything else.
const (
	// Single-character punctuation.
	KindOpenParen  TokenKind = iota // (
	KindCloseParen                  // )
	KindOpenBrace                   // {
	KindCloseBrace                  // }
	KindComma                       // ,
	KindDot                         // .
	KindMinus                       // -
	KindPlus                        // +
	KindSemiColon                   // ;
	KindSlash                       // /
	KindStar                        // *

	// One or two character operators.
	KindBang      // !
	KindBangEqual // !=
	KindEqual     // =
	KindEqualEq   // ==
	KindGreater   // >
	KindGreaterEq // >=
	KindLess      // <
	KindLessEq    // <=

	// Literals.
	KindIdentifier
	KindString
	KindNumber

	// Keywords.
	KindAnd
	KindClass
	KindElse
	KindFalse
	KindFun
	KindFor
	KindIf
	KindNil
	KindOr
	KindPrint
	KindReturn
	KindSuper
	KindThis
	KindTrue
	KindVar
	KindWhile

	// Errors.
	KindUnterminatedString
	KindUnknownRun
)

var tokenKindNames = [...]string{
	KindOpenParen:          "open_paren",
	KindCloseParen:         "close_paren",
	KindOpenBrace:          "open_brace",
	KindCloseBrace:         "close_brace",
	KindComma:              "comma",
	KindDot:                "dot",
	KindMinus:              "minus",
	KindPlus:               "plus",
	KindSemiColon:          "semi_colon",
	KindSlash:              "slash",
	KindStar:               "star",
	KindBang:               "bang",
	KindBangEqual:          "bang_eq",
	KindEqual:              "eq",
	KindEqualEq:            "eq_eq",
	KindGreater:            "gt",
	KindGreaterEq:          "gt_eq",
	KindLess:               "lt",
	KindLessEq:             "lt_eq",
	KindIdentifier:         "identifier",
	KindString:             "string",
	KindNumber:             "number",
	KindAnd:                "and",
	KindClass:              "class",
	KindElse:               "else",
	KindFalse:              "false",
	KindFun:                "fun",
	KindFor:                "for",
	KindIf:                 "if",
	KindNil:                "nil",
	KindOr:                 "or",
	KindPrint:              "print",
	KindReturn:             "return",
	KindSuper:              "super",
	KindThis:               "this",
	KindTrue:               "true",
	KindVar:                "var",
	KindWhile:              "while",
	KindUnterminatedString: "unterminated_string",
	KindUnknownRun:         "unknown_run",
}

// jlox names, used by the token dump.
var tokenKindJlox = [...]string{
	KindOpenParen:          "LEFT_PAREN",
	KindCloseParen:         "RIGHT_PAREN",
	KindOpenBrace:          "LEFT_BRACE",
	KindCloseBrace:         "RIGHT_BRACE",
	KindComma:              "COMMA",
	KindDot:                "DOT",
	KindMinus:              "MINUS",
	KindPlus:               "PLUS",
	KindSemiColon:          "SEMICOLON",
	KindSlash:              "SLASH",
	KindStar:               "STAR",
	KindBang:               "BANG",
	KindBangEqual:          "BANG_EQUAL",
	KindEqual:              "EQUAL",
	KindEqualEq:            "EQUAL_EQUAL",
	KindGreater:            "GREATER",
	KindGreaterEq:          "GREATER_EQUAL",
	KindLess:               "LESS",
	KindLessEq:             "LESS_EQUAL",
	KindIdentifier:         "IDENTIFIER",
	KindString:             "STRING",
	KindNumber:             "NUMBER",
	KindAnd:                "AND",
	KindClass:              "CLASS",
	KindElse:               "ELSE",
	KindFalse:              "FALSE",
	KindFun:                "FUN",
	KindFor:                "FOR",
	KindIf:                 "IF",
	KindNil:                "NIL",
	KindOr:                 "OR",
	KindPrint:              "PRINT",
	KindReturn:             "RETURN",
	KindSuper:              "SUPER",
	KindThis:               "THIS",
	KindTrue:               "TRUE",
	KindVar:                "VAR",
	KindWhile:              "WHILE",
	KindUnterminatedString: "ERROR",
	KindUnknownRun:         "ERROR",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}

	return tokenKindNames[k]
}

// JloxName returns the upper-case kind name jlox prints in its token dump.
func (k TokenKind) JloxName() string {
	if k < 0 || int(k) >= len(tokenKindJlox) {
		return k.String()
	}

	return tokenKindJlox[k]
}

// IsError reports whether the kind is a lexical error.
func (k TokenKind) IsError() bool {
	return k == KindUnterminatedString || k == KindUnknownRun
}

// IsKeyword reports whether the kind is a reserved word.
func (k TokenKind) IsKeyword() bool {
	return k >= KindAnd && k <= KindWhile
}

// Keywords maps every reserved word to its token kind.
var Keywords = map[string]TokenKind{
	"and":    KindAnd,
	"class":  KindClass,
	"else":   KindElse,
	"false":  KindFalse,
	"fun":    KindFun,
	"for":    KindFor,
	"if":     KindIf,
	"nil":    KindNil,
	"or":     KindOr,
	"print":  KindPrint,
	"return": KindReturn,
	"super":  KindSuper,
	"this":   KindThis,
	"true":   KindTrue,
	"var":    KindVar,
	"while":  KindWhile,
}

// LookupKeyword returns the keyword kind of word, or KindIdentifier.
func LookupKeyword(word string) TokenKind {
	if kind, ok := Keywords[word]; ok {
		return kind
	}

	return KindIdentifier
}

// Token is a classified run of source characters.
type Token struct {
	Kind     TokenKind
	Location Location
	// Text holds the identifier name, the string content or the unknown run.
	Text string
	// Number holds the value of a number literal.
	Number float64
}

// Lexeme returns the exact source text the token was scanned from.
func (t Token) Lexeme() string {
	return t.Location.Text()
}

// Describe renders the token kind with its payload, as used in diagnostics.
func (t Token) Describe() string {
	switch t.Kind {
	case KindIdentifier, KindUnknownRun:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
	case KindString:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
	case KindNumber:
		return fmt.Sprintf("%s(%s)", t.Kind, formatNumber(t.Number))
	default:
		return t.Kind.String()
	}
}

// Jlox renders the token the way jlox dumps it: KIND lexeme literal.
func (t Token) Jlox() string {
	literal := "null"

	switch t.Kind {
	case KindString:
		literal = t.Text
	case KindNumber:
		literal = strconv.FormatFloat(t.Number, 'f', -1, 64)
		if !strings.Contains(literal, ".") {
			literal += ".0"
		}
	}

	return fmt.Sprintf("%s %s %s", t.Kind.JloxName(), t.Lexeme(), literal)
}
