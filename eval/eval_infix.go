package eval

import (
	"math"

	"github.com/filipelang/filipe/ast"
	"github.com/filipelang/filipe/object"
	"github.com/filipelang/filipe/scope"
)

// evalInfixExpr requires both operands to share exactly the same runtime
// type (spec §4.5.2); each type defines its own operator set.
func (e *Evaluator) evalInfixExpr(ex *ast.InfixExpr, scp *scope.Scope) object.Object {
	left := e.evalExpr(ex.Left, scp)
	if e.HasError() {
		return nil
	}
	right := e.evalExpr(ex.Right, scp)
	if e.HasError() {
		return nil
	}

	if !left.Type().Equal(right.Type()) {
		e.raise(object.TypeError, "operator %q not defined for %s and %s", ex.Operator, left.Type().String(), right.Type().String())
		return nil
	}

	switch l := left.(type) {
	case *object.Int:
		return e.evalIntInfix(ex.Operator, l, right.(*object.Int))
	case *object.Float:
		return e.evalFloatInfix(ex.Operator, l, right.(*object.Float))
	case *object.String:
		return e.evalStringInfix(ex.Operator, l, right.(*object.String))
	case *object.Boolean:
		return e.evalBooleanInfix(ex.Operator, l, right.(*object.Boolean))
	default:
		e.raise(object.TypeError, "operator %q not defined for %s", ex.Operator, left.Type().String())
		return nil
	}
}

func (e *Evaluator) evalIntInfix(op string, l, r *object.Int) object.Object {
	switch op {
	case "+":
		return &object.Int{Value: l.Value + r.Value}
	case "-":
		return &object.Int{Value: l.Value - r.Value}
	case "*":
		return &object.Int{Value: l.Value * r.Value}
	case "/":
		if r.Value == 0 {
			e.raise(object.ValueError, "division by zero")
			return nil
		}
		return &object.Int{Value: l.Value / r.Value}
	case "%":
		if r.Value == 0 {
			e.raise(object.ValueError, "division by zero")
			return nil
		}
		return &object.Int{Value: l.Value % r.Value}
	case "==":
		return &object.Boolean{Value: l.Value == r.Value}
	case "!=":
		return &object.Boolean{Value: l.Value != r.Value}
	case "<":
		return &object.Boolean{Value: l.Value < r.Value}
	case "<=":
		return &object.Boolean{Value: l.Value <= r.Value}
	case ">":
		return &object.Boolean{Value: l.Value > r.Value}
	case ">=":
		return &object.Boolean{Value: l.Value >= r.Value}
	default:
		e.raise(object.TypeError, "operator %q not defined for int", op)
		return nil
	}
}

func (e *Evaluator) evalFloatInfix(op string, l, r *object.Float) object.Object {
	switch op {
	case "+":
		return &object.Float{Value: l.Value + r.Value}
	case "-":
		return &object.Float{Value: l.Value - r.Value}
	case "*":
		return &object.Float{Value: l.Value * r.Value}
	case "/":
		return &object.Float{Value: l.Value / r.Value} // IEEE-754: +-Inf/NaN on zero divisor
	case "%":
		return &object.Float{Value: math.Mod(l.Value, r.Value)}
	case "==":
		return &object.Boolean{Value: l.Value == r.Value}
	case "!=":
		return &object.Boolean{Value: l.Value != r.Value}
	case "<":
		return &object.Boolean{Value: l.Value < r.Value}
	case "<=":
		return &object.Boolean{Value: l.Value <= r.Value}
	case ">":
		return &object.Boolean{Value: l.Value > r.Value}
	case ">=":
		return &object.Boolean{Value: l.Value >= r.Value}
	default:
		e.raise(object.TypeError, "operator %q not defined for float", op)
		return nil
	}
}

func (e *Evaluator) evalStringInfix(op string, l, r *object.String) object.Object {
	switch op {
	case "+":
		return &object.String{Value: l.Value + r.Value}
	case "==":
		return &object.Boolean{Value: l.Value == r.Value}
	case "!=":
		return &object.Boolean{Value: l.Value != r.Value}
	default:
		e.raise(object.TypeError, "operator %q not defined for string", op)
		return nil
	}
}

// evalBooleanInfix implements spec §4.5.2's Boolean ordering: false < true.
func (e *Evaluator) evalBooleanInfix(op string, l, r *object.Boolean) object.Object {
	toInt := func(b bool) int {
		if b {
			return 1
		}
		return 0
	}
	lv, rv := toInt(l.Value), toInt(r.Value)

	switch op {
	case "==":
		return &object.Boolean{Value: l.Value == r.Value}
	case "!=":
		return &object.Boolean{Value: l.Value != r.Value}
	case "<":
		return &object.Boolean{Value: lv < rv}
	case "<=":
		return &object.Boolean{Value: lv <= rv}
	case ">":
		return &object.Boolean{Value: lv > rv}
	case ">=":
		return &object.Boolean{Value: lv >= rv}
	default:
		e.raise(object.TypeError, "operator %q not defined for boolean", op)
		return nil
	}
}
