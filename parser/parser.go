/*
File    : filipe/parser/parser.go
Package : parser

Package parser implements a Pratt (precedence-climbing) parser for Filipe.
It turns a token stream from lexer into an ast.Program.

The parser stops at the first error it encounters (spec §4.2: "on the
first error, stops and surfaces that error; parser does not attempt
recovery") rather than collecting a list, which is the one place this
diverges from the teacher's error-collecting parser.
*/
package parser

import (
	"fmt"

	"github.com/filipelang/filipe/ast"
	"github.com/filipelang/filipe/lexer"
)

type unaryParseFn func() ast.Expr
type binaryParseFn func(ast.Expr) ast.Expr

// Parser holds parsing state: the lexer, one token of lookahead, and the
// Pratt dispatch tables keyed by token type.
type Parser struct {
	lex lexer.Lexer

	currToken lexer.Token
	peekToken lexer.Token

	unaryFns  map[lexer.TokenType]unaryParseFn
	binaryFns map[lexer.TokenType]binaryParseFn

	err error
}

// New creates a Parser over src and primes the two-token lookahead.
func New(src string) *Parser {
	par := &Parser{lex: lexer.NewLexer(src)}
	par.init()
	par.advance()
	par.advance()
	return par
}

func (par *Parser) init() {
	par.unaryFns = make(map[lexer.TokenType]unaryParseFn)
	par.binaryFns = make(map[lexer.TokenType]binaryParseFn)

	par.registerUnary(lexer.INT_LIT, par.parseIntLiteral)
	par.registerUnary(lexer.FLOAT_LIT, par.parseFloatLiteral)
	par.registerUnary(lexer.STRING_LIT, par.parseStringLiteral)
	par.registerUnary(lexer.TRUE_LIT, par.parseBooleanLiteral)
	par.registerUnary(lexer.FALSE_LIT, par.parseBooleanLiteral)
	par.registerUnary(lexer.NULL_LIT, par.parseNullLiteral)
	par.registerUnary(lexer.IDENT, par.parseIdentifier)
	par.registerUnary(lexer.LEFT_PAREN, par.parseGroupedExpr)
	par.registerUnary(lexer.LEFT_BRACKET, par.parseArrayLiteral)
	par.registerUnary(lexer.NOT_OP, par.parsePrefixExpr)
	par.registerUnary(lexer.PLUS_OP, par.parsePrefixExpr)
	par.registerUnary(lexer.MINUS_OP, par.parsePrefixExpr)

	par.registerBinary(lexer.PLUS_OP, par.parseInfixExpr)
	par.registerBinary(lexer.MINUS_OP, par.parseInfixExpr)
	par.registerBinary(lexer.MUL_OP, par.parseInfixExpr)
	par.registerBinary(lexer.DIV_OP, par.parseInfixExpr)
	par.registerBinary(lexer.MOD_OP, par.parseInfixExpr)
	par.registerBinary(lexer.EQ_OP, par.parseInfixExpr)
	par.registerBinary(lexer.NE_OP, par.parseInfixExpr)
	par.registerBinary(lexer.LT_OP, par.parseInfixExpr)
	par.registerBinary(lexer.LE_OP, par.parseInfixExpr)
	par.registerBinary(lexer.GT_OP, par.parseInfixExpr)
	par.registerBinary(lexer.GE_OP, par.parseInfixExpr)
	par.registerBinary(lexer.INCR_OP, par.parsePostfixExpr)
	par.registerBinary(lexer.DECR_OP, par.parsePostfixExpr)
	par.registerBinary(lexer.LEFT_PAREN, par.parseCallExpr)
	par.registerBinary(lexer.DOT_OP, par.parseFieldAccessExpr)
	par.registerBinary(lexer.ASSIGN_OP, par.parseAssignExpr)
}

func (par *Parser) registerUnary(tt lexer.TokenType, fn unaryParseFn)   { par.unaryFns[tt] = fn }
func (par *Parser) registerBinary(tt lexer.TokenType, fn binaryParseFn) { par.binaryFns[tt] = fn }

// HasError reports whether parsing has already failed.
func (par *Parser) HasError() bool { return par.err != nil }

// GetError returns the first error encountered, or nil.
func (par *Parser) GetError() error { return par.err }

func (par *Parser) fail(format string, args ...interface{}) {
	if par.err == nil {
		par.err = fmt.Errorf("[SyntaxError] "+format, args...)
	}
}

func (par *Parser) advance() {
	par.currToken = par.peekToken
	par.peekToken = par.lex.NextToken()
}

func (par *Parser) currIs(tt lexer.TokenType) bool { return par.currToken.Type == tt }
func (par *Parser) peekIs(tt lexer.TokenType) bool  { return par.peekToken.Type == tt }

// expectPeek advances only if the next token has type tt, else records an
// error and leaves the cursor in place.
func (par *Parser) expectPeek(tt lexer.TokenType) bool {
	if par.peekIs(tt) {
		par.advance()
		return true
	}
	par.fail("expected next token %q, got %q", tt, par.peekToken.Type)
	return false
}

func (par *Parser) peekPrecedence() ast.Precedence {
	if p, ok := ast.Precedences[string(par.peekToken.Type)]; ok {
		return p
	}
	return ast.Lowest
}

func (par *Parser) currPrecedence() ast.Precedence {
	if p, ok := ast.Precedences[string(par.currToken.Type)]; ok {
		return p
	}
	return ast.Lowest
}

// Parse consumes the whole token stream and returns the resulting Program.
// On the first error it stops and returns what it parsed so far; callers
// must check HasError/GetError before trusting the result.
func (par *Parser) Parse() *ast.Program {
	program := &ast.Program{Statements: []ast.Stmt{}}

	for !par.currIs(lexer.EOF_TYPE) && !par.HasError() {
		stmt := par.parseStmt()
		if par.HasError() {
			break
		}
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		par.advance()
	}

	return program
}
