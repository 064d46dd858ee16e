package parser

import (
	"strconv"

	"github.com/filipelang/filipe/ast"
	"github.com/filipelang/filipe/lexer"
)

// parseExpr is the Pratt loop: a prefix (unary) parser builds the left
// operand, then infix/postfix parsers fold in operators while the next
// token's precedence exceeds prec.
func (par *Parser) parseExpr(prec ast.Precedence) ast.Expr {
	unary, ok := par.unaryFns[par.currToken.Type]
	if !ok {
		par.fail("unexpected token %q", par.currToken.Literal)
		return nil
	}
	left := unary()
	if par.HasError() {
		return nil
	}

	for !par.peekIs(lexer.EOF_TYPE) && prec < par.peekPrecedence() {
		binary, ok := par.binaryFns[par.peekToken.Type]
		if !ok {
			return left
		}
		par.advance()
		left = binary(left)
		if par.HasError() {
			return nil
		}
	}

	return left
}

func (par *Parser) parseIntLiteral() ast.Expr {
	v, err := strconv.ParseInt(par.currToken.Literal, 10, 64)
	if err != nil {
		par.fail("integer literal overflow: %q", par.currToken.Literal)
		return nil
	}
	return &ast.IntLiteral{Value: v}
}

func (par *Parser) parseFloatLiteral() ast.Expr {
	v, err := strconv.ParseFloat(par.currToken.Literal, 64)
	if err != nil {
		par.fail("invalid float literal %q", par.currToken.Literal)
		return nil
	}
	return &ast.FloatLiteral{Value: v}
}

func (par *Parser) parseStringLiteral() ast.Expr {
	return &ast.StringLiteral{Value: par.currToken.Literal}
}

func (par *Parser) parseBooleanLiteral() ast.Expr {
	return &ast.BooleanLiteral{Value: par.currIs(lexer.TRUE_LIT)}
}

func (par *Parser) parseNullLiteral() ast.Expr {
	return &ast.NullLiteral{}
}

func (par *Parser) parseIdentifier() ast.Expr {
	return &ast.Identifier{Name: par.currToken.Literal}
}

func (par *Parser) parseGroupedExpr() ast.Expr {
	par.advance()
	expr := par.parseExpr(ast.Lowest)
	if par.HasError() {
		return nil
	}
	if !par.expectPeek(lexer.RIGHT_PAREN) {
		return nil
	}
	return expr
}

// parseArrayLiteral parses `[e1, e2, ...]`; a trailing comma is a syntax
// error (spec §4.2).
func (par *Parser) parseArrayLiteral() ast.Expr {
	lit := &ast.ArrayLiteral{Elements: []ast.Expr{}}

	if par.peekIs(lexer.RIGHT_BRACKET) {
		par.advance()
		return lit
	}

	par.advance()
	lit.Elements = append(lit.Elements, par.parseExpr(ast.Lowest))
	if par.HasError() {
		return nil
	}

	for par.peekIs(lexer.COMMA_DELIM) {
		par.advance()
		if par.peekIs(lexer.RIGHT_BRACKET) {
			par.fail("trailing comma is not allowed in array literal")
			return nil
		}
		par.advance()
		lit.Elements = append(lit.Elements, par.parseExpr(ast.Lowest))
		if par.HasError() {
			return nil
		}
	}

	if !par.expectPeek(lexer.RIGHT_BRACKET) {
		return nil
	}
	return lit
}

func (par *Parser) parsePrefixExpr() ast.Expr {
	op := par.currToken.Literal
	par.advance()
	right := par.parseExpr(ast.PrefixPrec)
	if par.HasError() {
		return nil
	}
	return &ast.PrefixExpr{Operator: op, Right: right}
}

func (par *Parser) parseInfixExpr(left ast.Expr) ast.Expr {
	op := par.currToken.Literal
	prec := par.currPrecedence()
	par.advance()
	right := par.parseExpr(prec)
	if par.HasError() {
		return nil
	}
	return &ast.InfixExpr{Left: left, Operator: op, Right: right}
}

func (par *Parser) parsePostfixExpr(left ast.Expr) ast.Expr {
	return &ast.PostfixExpr{Left: left, Operator: par.currToken.Literal}
}

// parseAssignExpr requires an Identifier left-hand side and is
// right-associative (spec §4.2).
func (par *Parser) parseAssignExpr(left ast.Expr) ast.Expr {
	ident, ok := left.(*ast.Identifier)
	if !ok {
		par.fail("invalid left-hand side of assignment")
		return nil
	}
	par.advance()
	value := par.parseExpr(ast.AssignPrec - 1)
	if par.HasError() {
		return nil
	}
	return &ast.AssignExpr{Name: ident.Name, Value: value}
}

// parseCallExpr parses `callee(args...)`. Args are comma-separated with no
// trailing comma (spec §4.2).
func (par *Parser) parseCallExpr(callee ast.Expr) ast.Expr {
	args, ok := par.parseCallArgs()
	if !ok {
		return nil
	}
	return &ast.CallExpr{Callee: callee, Args: args}
}

func (par *Parser) parseCallArgs() ([]ast.Expr, bool) {
	args := []ast.Expr{}

	if par.peekIs(lexer.RIGHT_PAREN) {
		par.advance()
		return args, true
	}

	par.advance()
	args = append(args, par.parseExpr(ast.Lowest))
	if par.HasError() {
		return nil, false
	}

	for par.peekIs(lexer.COMMA_DELIM) {
		par.advance()
		if par.peekIs(lexer.RIGHT_PAREN) {
			par.fail("trailing comma is not allowed in call arguments")
			return nil, false
		}
		par.advance()
		args = append(args, par.parseExpr(ast.Lowest))
		if par.HasError() {
			return nil, false
		}
	}

	if !par.expectPeek(lexer.RIGHT_PAREN) {
		return nil, false
	}
	return args, true
}

// parseFieldAccessExpr folds `a.b` / `a.b(...)` into FieldAccessExpr,
// left-associative (spec §4.2): target is Identifier or CallExpr.
func (par *Parser) parseFieldAccessExpr(receiver ast.Expr) ast.Expr {
	if !par.expectPeek(lexer.IDENT) {
		return nil
	}
	var target ast.Expr = &ast.Identifier{Name: par.currToken.Literal}

	if par.peekIs(lexer.LEFT_PAREN) {
		par.advance()
		args, ok := par.parseCallArgs()
		if !ok {
			return nil
		}
		target = &ast.CallExpr{Callee: target, Args: args}
	}

	return &ast.FieldAccessExpr{Receiver: receiver, Target: target}
}
