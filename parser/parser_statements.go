package parser

import (
	"github.com/filipelang/filipe/ast"
	"github.com/filipelang/filipe/lexer"
)

func (par *Parser) parseStmt() ast.Stmt {
	switch par.currToken.Type {
	case lexer.LET_KEY:
		return par.parseLetStmt()
	case lexer.DEFINE_KEY:
		return par.parseFuncStmt()
	case lexer.RETURN_KEY:
		return par.parseReturnStmt()
	case lexer.IF_KEY:
		return par.parseIfStmt()
	case lexer.FOR_KEY:
		return par.parseForStmt()
	case lexer.IMPORT_KEY:
		return par.parseImportStmt()
	default:
		return par.parseExprStmt()
	}
}

// parseLetStmt parses `let name [: Type] [= expr]`. The type or the
// initializer must be present (spec §4.2).
func (par *Parser) parseLetStmt() ast.Stmt {
	stmt := &ast.LetStmt{}

	if !par.expectPeek(lexer.IDENT) {
		return nil
	}
	stmt.Name = par.currToken.Literal

	if par.peekIs(lexer.COLON_DELIM) {
		par.advance()
		par.advance()
		t := par.parseType()
		if par.HasError() {
			return nil
		}
		if t.Name == "void" {
			par.fail("'void' is not a valid type for 'let'")
			return nil
		}
		stmt.DeclaredType = t
	}

	if par.peekIs(lexer.ASSIGN_OP) {
		par.advance()
		par.advance()
		stmt.Value = par.parseExpr(ast.Lowest)
		if par.HasError() {
			return nil
		}
	}

	if stmt.DeclaredType == nil && stmt.Value == nil {
		par.fail("'let' requires a type annotation, an initializer, or both")
		return nil
	}

	return stmt
}

// parseType parses a type annotation: int | float | string | boolean |
// void | Array<type>.
func (par *Parser) parseType() *ast.ExprType {
	switch par.currToken.Type {
	case lexer.INT_TYPE, lexer.FLOAT_TYPE, lexer.STRING_TYPE, lexer.BOOLEAN_TYPE, lexer.VOID_TYPE:
		return &ast.ExprType{Name: string(par.currToken.Type)}
	case lexer.ARRAY_TYPE:
		if !par.expectPeek(lexer.LT_OP) {
			return nil
		}
		par.advance()
		inner := par.parseType()
		if par.HasError() {
			return nil
		}
		if !par.expectPeek(lexer.GT_OP) {
			return nil
		}
		return &ast.ExprType{Name: "Array", Inner: inner}
	default:
		par.fail("invalid type annotation %q", par.currToken.Literal)
		return nil
	}
}

// parseFuncStmt parses `define name(p1: T1, ...): RetType { block }`.
func (par *Parser) parseFuncStmt() ast.Stmt {
	stmt := &ast.FuncStmt{}

	if !par.expectPeek(lexer.IDENT) {
		return nil
	}
	stmt.Name = par.currToken.Literal

	if !par.expectPeek(lexer.LEFT_PAREN) {
		return nil
	}

	params, ok := par.parseParams()
	if !ok {
		return nil
	}
	stmt.Params = params

	if !par.expectPeek(lexer.COLON_DELIM) {
		return nil
	}
	par.advance()
	stmt.ReturnType = par.parseType()
	if par.HasError() {
		return nil
	}

	if !par.expectPeek(lexer.LEFT_BRACE) {
		return nil
	}
	stmt.Body = par.parseBlock()
	return stmt
}

func (par *Parser) parseParams() ([]ast.Param, bool) {
	params := []ast.Param{}

	if par.peekIs(lexer.RIGHT_PAREN) {
		par.advance()
		return params, true
	}

	par.advance()
	for {
		if !par.currIs(lexer.IDENT) {
			par.fail("expected parameter name, got %q", par.currToken.Literal)
			return nil, false
		}
		name := par.currToken.Literal
		if !par.expectPeek(lexer.COLON_DELIM) {
			return nil, false
		}
		par.advance()
		t := par.parseType()
		if par.HasError() {
			return nil, false
		}
		if t.Name == "void" {
			par.fail("'void' is not a valid parameter type")
			return nil, false
		}
		params = append(params, ast.Param{Name: name, Type: t})

		if par.peekIs(lexer.COMMA_DELIM) {
			par.advance()
			par.advance()
			continue
		}
		break
	}

	if !par.expectPeek(lexer.RIGHT_PAREN) {
		return nil, false
	}
	return params, true
}

// parseBlock parses statements up to a closing '}'. The current token on
// entry must be '{'; on exit the current token is '}'.
func (par *Parser) parseBlock() []ast.Stmt {
	stmts := []ast.Stmt{}
	par.advance()

	for !par.currIs(lexer.RIGHT_BRACE) && !par.currIs(lexer.EOF_TYPE) && !par.HasError() {
		stmt := par.parseStmt()
		if par.HasError() {
			return nil
		}
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		par.advance()
	}

	if !par.currIs(lexer.RIGHT_BRACE) {
		par.fail("unexpected end of input, expected '}'")
		return nil
	}
	return stmts
}

func (par *Parser) parseReturnStmt() ast.Stmt {
	stmt := &ast.ReturnStmt{}
	if par.peekIs(lexer.RIGHT_BRACE) || par.peekIs(lexer.EOF_TYPE) {
		return stmt
	}
	par.advance()
	stmt.Value = par.parseExpr(ast.Lowest)
	return stmt
}

func (par *Parser) parseIfStmt() ast.Stmt {
	stmt := &ast.IfStmt{}

	if !par.expectPeek(lexer.LEFT_PAREN) {
		return nil
	}
	par.advance()
	stmt.Condition = par.parseExpr(ast.Lowest)
	if par.HasError() {
		return nil
	}
	if !par.expectPeek(lexer.RIGHT_PAREN) {
		return nil
	}
	if !par.expectPeek(lexer.LEFT_BRACE) {
		return nil
	}
	stmt.Consequence = par.parseBlock()
	if par.HasError() {
		return nil
	}

	if par.peekIs(lexer.ELSE_KEY) {
		par.advance()
		if !par.expectPeek(lexer.LEFT_BRACE) {
			return nil
		}
		stmt.Alternative = par.parseBlock()
		if par.HasError() {
			return nil
		}
	}

	return stmt
}

func (par *Parser) parseForStmt() ast.Stmt {
	stmt := &ast.ForStmt{}

	if !par.expectPeek(lexer.IDENT) {
		return nil
	}
	stmt.Cursor = par.currToken.Literal

	if !par.expectPeek(lexer.IN_KEY) {
		return nil
	}
	par.advance()
	stmt.Iterable = par.parseExpr(ast.Lowest)
	if par.HasError() {
		return nil
	}
	if !par.expectPeek(lexer.LEFT_BRACE) {
		return nil
	}
	stmt.Body = par.parseBlock()
	return stmt
}

// parseImportStmt parses `import name` (spec §1 Non-goals: "no import
// system beyond resolving known module names").
func (par *Parser) parseImportStmt() ast.Stmt {
	if !par.expectPeek(lexer.IDENT) {
		return nil
	}
	return &ast.ImportStmt{Name: par.currToken.Literal}
}

func (par *Parser) parseExprStmt() ast.Stmt {
	expr := par.parseExpr(ast.Lowest)
	if par.HasError() {
		return nil
	}
	return &ast.ExprStmt{Value: expr}
}
