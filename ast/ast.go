/*
File    : filipe/ast/ast.go
Package : ast

Package ast declares the syntax tree Filipe's parser produces and its
evaluator walks. Every node is a plain data type; nothing here parses or
evaluates anything.
*/
package ast

import (
	"fmt"
	"strings"
)

// Node is implemented by every AST node for debugging/pretty-printing.
type Node interface {
	String() string
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Program is the root of a parsed Filipe source file: an ordered sequence
// of statements.
type Program struct {
	Statements []Stmt
}

func (p *Program) String() string {
	var b strings.Builder
	for _, s := range p.Statements {
		b.WriteString(s.String())
		b.WriteString("\n")
	}
	return b.String()
}

// ExprType is the syntactic type annotation attached to let/param/return
// declarations: int, float, string, boolean, void, or Array(inner).
type ExprType struct {
	Name  string    // "int", "float", "string", "boolean", "void", "Array"
	Inner *ExprType // non-nil only when Name == "Array"
}

func (t *ExprType) String() string {
	if t == nil {
		return ""
	}
	if t.Name == "Array" {
		return fmt.Sprintf("Array<%s>", t.Inner.String())
	}
	return t.Name
}

// ---- Statements -------------------------------------------------------

// ExprStmt wraps a bare expression used as a statement.
type ExprStmt struct {
	Value Expr
}

func (*ExprStmt) stmtNode()       {}
func (s *ExprStmt) String() string { return s.Value.String() }

// LetStmt declares a new binding: `let name [: Type] [= expr]`.
type LetStmt struct {
	Name        string
	DeclaredType *ExprType // nil when omitted
	Value       Expr      // nil when omitted
}

func (*LetStmt) stmtNode() {}
func (s *LetStmt) String() string {
	var b strings.Builder
	b.WriteString("let ")
	b.WriteString(s.Name)
	if s.DeclaredType != nil {
		b.WriteString(": ")
		b.WriteString(s.DeclaredType.String())
	}
	if s.Value != nil {
		b.WriteString(" = ")
		b.WriteString(s.Value.String())
	}
	return b.String()
}

// Param is a single function parameter: `name: Type`.
type Param struct {
	Name string
	Type *ExprType
}

// FuncStmt declares a named function: `define name(params): RetType { body }`.
type FuncStmt struct {
	Name       string
	Params     []Param
	ReturnType *ExprType
	Body       []Stmt
}

func (*FuncStmt) stmtNode() {}
func (s *FuncStmt) String() string {
	parts := make([]string, len(s.Params))
	for i, p := range s.Params {
		parts[i] = fmt.Sprintf("%s: %s", p.Name, p.Type.String())
	}
	return fmt.Sprintf("define %s(%s): %s { ... }", s.Name, strings.Join(parts, ", "), s.ReturnType.String())
}

// ImportStmt is `import name`, binding a known built-in module into the
// current scope by name.
type ImportStmt struct {
	Name string
}

func (*ImportStmt) stmtNode()       {}
func (s *ImportStmt) String() string { return "import " + s.Name }

// ReturnStmt is `return [expr]`.
type ReturnStmt struct {
	Value Expr // nil when omitted
}

func (*ReturnStmt) stmtNode() {}
func (s *ReturnStmt) String() string {
	if s.Value == nil {
		return "return"
	}
	return "return " + s.Value.String()
}

// IfStmt is `if (cond) { block } [else { block }]`.
type IfStmt struct {
	Condition   Expr
	Consequence []Stmt
	Alternative []Stmt // nil when no else branch
}

func (*IfStmt) stmtNode() {}
func (s *IfStmt) String() string {
	if s.Alternative == nil {
		return fmt.Sprintf("if (%s) { ... }", s.Condition.String())
	}
	return fmt.Sprintf("if (%s) { ... } else { ... }", s.Condition.String())
}

// ForStmt is `for cursor in iterable { block }`.
type ForStmt struct {
	Cursor   string
	Iterable Expr
	Body     []Stmt
}

func (*ForStmt) stmtNode() {}
func (s *ForStmt) String() string {
	return fmt.Sprintf("for %s in %s { ... }", s.Cursor, s.Iterable.String())
}

// ---- Expressions -------------------------------------------------------

// IntLiteral is an integer literal expression.
type IntLiteral struct {
	Value int64
}

func (*IntLiteral) exprNode()       {}
func (e *IntLiteral) String() string { return fmt.Sprintf("%d", e.Value) }

// FloatLiteral is a floating-point literal expression.
type FloatLiteral struct {
	Value float64
}

func (*FloatLiteral) exprNode()       {}
func (e *FloatLiteral) String() string { return fmt.Sprintf("%g", e.Value) }

// StringLiteral is a string literal expression.
type StringLiteral struct {
	Value string
}

func (*StringLiteral) exprNode()       {}
func (e *StringLiteral) String() string { return fmt.Sprintf("%q", e.Value) }

// BooleanLiteral is `true` or `false`.
type BooleanLiteral struct {
	Value bool
}

func (*BooleanLiteral) exprNode()       {}
func (e *BooleanLiteral) String() string { return fmt.Sprintf("%t", e.Value) }

// NullLiteral is the `null` literal.
type NullLiteral struct{}

func (*NullLiteral) exprNode()       {}
func (e *NullLiteral) String() string { return "null" }

// ArrayLiteral is `[e1, e2, ...]`.
type ArrayLiteral struct {
	Elements []Expr
}

func (*ArrayLiteral) exprNode() {}
func (e *ArrayLiteral) String() string {
	parts := make([]string, len(e.Elements))
	for i, el := range e.Elements {
		parts[i] = el.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Identifier is a bare name reference.
type Identifier struct {
	Name string
}

func (*Identifier) exprNode()       {}
func (e *Identifier) String() string { return e.Name }

// CallExpr is `callee(args...)`.
type CallExpr struct {
	Callee Expr
	Args   []Expr
}

func (*CallExpr) exprNode() {}
func (e *CallExpr) String() string {
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", e.Callee.String(), strings.Join(parts, ", "))
}

// InfixExpr is `lhs op rhs`.
type InfixExpr struct {
	Left     Expr
	Operator string
	Right    Expr
}

func (*InfixExpr) exprNode() {}
func (e *InfixExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left.String(), e.Operator, e.Right.String())
}

// PrefixExpr is `op expr` (`! + -`).
type PrefixExpr struct {
	Operator string
	Right    Expr
}

func (*PrefixExpr) exprNode() {}
func (e *PrefixExpr) String() string {
	return fmt.Sprintf("(%s%s)", e.Operator, e.Right.String())
}

// PostfixExpr is `expr op` (`++ --`).
type PostfixExpr struct {
	Left     Expr
	Operator string
}

func (*PostfixExpr) exprNode() {}
func (e *PostfixExpr) String() string {
	return fmt.Sprintf("(%s%s)", e.Left.String(), e.Operator)
}

// AssignExpr is `identifier = expr`. The left-hand side must be a bare
// identifier (spec §4.2 — field-assignment is not required).
type AssignExpr struct {
	Name  string
	Value Expr
}

func (*AssignExpr) exprNode() {}
func (e *AssignExpr) String() string {
	return fmt.Sprintf("(%s = %s)", e.Name, e.Value.String())
}

// FieldAccessExpr is `receiver.target`, where target is either an
// Identifier (field read) or a CallExpr (method call).
type FieldAccessExpr struct {
	Receiver Expr
	Target   Expr
}

func (*FieldAccessExpr) exprNode() {}
func (e *FieldAccessExpr) String() string {
	return fmt.Sprintf("%s.%s", e.Receiver.String(), e.Target.String())
}
