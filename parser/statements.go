/*
File   : monkeymix/parser/statements.go
Package: parser

Statement-level grammar of spec §4.2 and §6.3: let, return, expression
statements, and blocks. Each accepts an optional trailing semicolon.
*/
package parser

import (
	"github.com/akashmaji946/monkeymix/ast"
	"github.com/akashmaji946/monkeymix/lexer"
)

// parseLetStatement expects IDENT after `let`, then `=`, then an
// expression at LOWEST, then an optional `;`. On a shape violation it
// records a diagnostic (via expectPeek) and abandons the statement.
func (p *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStatement{Token: p.curToken}

	if !p.expectPeek(lexer.IDENT) {
		return nil
	}

	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(lexer.ASSIGN) {
		return nil
	}

	p.advance()
	stmt.Value = p.parseExpression(LOWEST)

	if p.peekTokenIs(lexer.SEMICOLON) {
		p.advance()
	}

	return stmt
}

// parseReturnStatement parses `return <expr>;?`.
func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curToken}

	p.advance()
	stmt.ReturnValue = p.parseExpression(LOWEST)

	if p.peekTokenIs(lexer.SEMICOLON) {
		p.advance()
	}

	return stmt
}

// parseExpressionStatement parses a bare expression at LOWEST, consuming
// an optional trailing `;`.
func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}

	stmt.Expression = p.parseExpression(LOWEST)

	if p.peekTokenIs(lexer.SEMICOLON) {
		p.advance()
	}

	return stmt
}

// parseBlockStatement consumes statements until `}` or EOF. It assumes
// curToken is already the opening `{`.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken, Statements: []ast.Statement{}}

	p.advance()

	for !p.curTokenIs(lexer.RBRACE) && !p.curTokenIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.advance()
	}

	return block
}
