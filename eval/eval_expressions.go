package eval

import (
	"github.com/filipelang/filipe/ast"
	"github.com/filipelang/filipe/object"
	"github.com/filipelang/filipe/scope"
)

func (e *Evaluator) evalExpr(expr ast.Expr, scp *scope.Scope) object.Object {
	switch ex := expr.(type) {
	case *ast.IntLiteral:
		return &object.Int{Value: ex.Value}
	case *ast.FloatLiteral:
		return &object.Float{Value: ex.Value}
	case *ast.StringLiteral:
		return &object.String{Value: ex.Value}
	case *ast.BooleanLiteral:
		return &object.Boolean{Value: ex.Value}
	case *ast.NullLiteral:
		return &object.Null{}
	case *ast.ArrayLiteral:
		return e.evalArrayLiteral(ex, scp)
	case *ast.Identifier:
		return e.evalIdentifier(ex, scp)
	case *ast.InfixExpr:
		return e.evalInfixExpr(ex, scp)
	case *ast.PrefixExpr:
		return e.evalPrefixExpr(ex, scp)
	case *ast.PostfixExpr:
		return e.evalPostfixExpr(ex, scp)
	case *ast.AssignExpr:
		return e.evalAssignExpr(ex, scp)
	case *ast.CallExpr:
		return e.evalCallExpr(ex, scp)
	case *ast.FieldAccessExpr:
		return e.evalFieldAccessExpr(ex, scp)
	default:
		e.raise(object.SyntaxError, "unknown expression")
		return nil
	}
}

// evalArrayLiteral fixes the element type from the first element; every
// subsequent element must match exactly (spec §4.5.2).
func (e *Evaluator) evalArrayLiteral(lit *ast.ArrayLiteral, scp *scope.Scope) object.Object {
	if len(lit.Elements) == 0 {
		return &object.Array{Inner: []object.Object{}, ElemType: nil}
	}

	elements := make([]object.Object, len(lit.Elements))
	first := e.evalExpr(lit.Elements[0], scp)
	if e.HasError() {
		return nil
	}
	elements[0] = first
	elemType := first.Type()

	for i := 1; i < len(lit.Elements); i++ {
		v := e.evalExpr(lit.Elements[i], scp)
		if e.HasError() {
			return nil
		}
		if !v.Type().Equal(elemType) {
			e.raise(object.TypeError, "array element %d has type %s, expected %s", i, v.Type().String(), elemType.String())
			return nil
		}
		elements[i] = v
	}

	return &object.Array{Inner: elements, ElemType: &elemType}
}

func (e *Evaluator) evalIdentifier(id *ast.Identifier, scp *scope.Scope) object.Object {
	info, ok := scp.Resolve(id.Name)
	if !ok {
		e.raise(object.NameError, "%q is not defined", id.Name)
		return nil
	}
	return info.Value
}

func (e *Evaluator) evalPrefixExpr(ex *ast.PrefixExpr, scp *scope.Scope) object.Object {
	right := e.evalExpr(ex.Right, scp)
	if e.HasError() {
		return nil
	}

	switch ex.Operator {
	case "!":
		switch v := right.(type) {
		case *object.Null:
			return &object.Boolean{Value: true}
		case *object.Boolean:
			return &object.Boolean{Value: !v.Value}
		default:
			return &object.Boolean{Value: false}
		}
	case "-":
		switch v := right.(type) {
		case *object.Int:
			return &object.Int{Value: -v.Value}
		case *object.Float:
			return &object.Float{Value: -v.Value}
		default:
			e.raise(object.TypeError, "unary '-' requires int or float, got %s", right.Type().String())
			return nil
		}
	case "+":
		switch right.(type) {
		case *object.Int, *object.Float:
			return right
		default:
			e.raise(object.TypeError, "unary '+' requires int or float, got %s", right.Type().String())
			return nil
		}
	default:
		e.raise(object.SyntaxError, "unknown prefix operator %q", ex.Operator)
		return nil
	}
}

// evalPostfixExpr requires an identifier operand of type Int; it mutates
// the binding in place and evaluates to the new value (spec §4.5.2, Open
// Question 2 — see DESIGN.md for the chosen interpretation).
func (e *Evaluator) evalPostfixExpr(ex *ast.PostfixExpr, scp *scope.Scope) object.Object {
	id, ok := ex.Left.(*ast.Identifier)
	if !ok {
		e.raise(object.TypeError, "'%s' requires an identifier operand", ex.Operator)
		return nil
	}

	info, ok := scp.Resolve(id.Name)
	if !ok {
		e.raise(object.NameError, "%q is not defined", id.Name)
		return nil
	}
	cur, ok := info.Value.(*object.Int)
	if !ok {
		e.raise(object.TypeError, "'%s' requires an int, got %s", ex.Operator, info.Value.Type().String())
		return nil
	}

	delta := int64(1)
	if ex.Operator == "--" {
		delta = -1
	}
	next := &object.Int{Value: cur.Value + delta}

	if !scp.Mutate(id.Name, next) {
		e.raise(object.NameError, "cannot assign to immutable binding %q", id.Name)
		return nil
	}
	return next
}

// evalAssignExpr resolves the existing binding, rejects immutable or
// unknown targets, and enforces type equality with the array
// element-type adoption rule (spec §4.5.2).
func (e *Evaluator) evalAssignExpr(ex *ast.AssignExpr, scp *scope.Scope) object.Object {
	info, ok := scp.Resolve(ex.Name)
	if !ok {
		e.raise(object.NameError, "%q is not defined", ex.Name)
		return nil
	}
	if !info.IsMut {
		e.raise(object.NameError, "cannot assign to immutable binding %q", ex.Name)
		return nil
	}

	value := e.evalExpr(ex.Value, scp)
	if e.HasError() {
		return nil
	}

	valueType := value.Type()
	if !info.DeclaredType.Equal(valueType) {
		e.raise(object.TypeError, "cannot assign %s to binding %q of type %s", valueType.String(), ex.Name, info.DeclaredType.String())
		return nil
	}
	if info.DeclaredType.Kind == object.ArrayKind && valueType.Elem == nil {
		if arr, ok := value.(*object.Array); ok && info.DeclaredType.Elem != nil {
			elem := *info.DeclaredType.Elem
			arr.ElemType = &elem
		}
	}

	scp.Mutate(ex.Name, value)
	return value
}
