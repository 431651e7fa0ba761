/*
File   : monkeymix/parser/precedence.go
Package: parser

The seven precedence levels of spec §4.2, lowest to highest. All binary
operators are left-associative: the right operand of an infix expression
is parsed by recursing at the *current* operator's precedence, not one
higher.
*/
package parser

import "github.com/akashmaji946/monkeymix/lexer"

type precedence int

const (
	LOWEST precedence = iota + 1
	EQUALS
	LESSGREATER
	SUM
	PRODUCT
	PREFIX
	CALL
)

// precedences maps each infix-capable token to its binding power.
var precedences = map[lexer.TokenType]precedence{
	lexer.EQ:       EQUALS,
	lexer.NOT_EQ:   EQUALS,
	lexer.LT:       LESSGREATER,
	lexer.GT:       LESSGREATER,
	lexer.PLUS:     SUM,
	lexer.MINUS:    SUM,
	lexer.SLASH:    PRODUCT,
	lexer.ASTERISK: PRODUCT,
	lexer.LPAREN:   CALL,
	lexer.LBRACKET: CALL,
}
