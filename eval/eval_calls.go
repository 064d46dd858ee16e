package eval

import (
	"github.com/filipelang/filipe/ast"
	"github.com/filipelang/filipe/object"
	"github.com/filipelang/filipe/scope"
)

// evalCallExpr implements spec §4.5.3.
func (e *Evaluator) evalCallExpr(ex *ast.CallExpr, scp *scope.Scope) object.Object {
	callee := e.evalExpr(ex.Callee, scp)
	if e.HasError() {
		return nil
	}

	args, ok := e.evalArgs(ex.Args, scp)
	if !ok {
		return nil
	}

	return e.applyFunction(callee, args)
}

// evalArgs evaluates each argument left-to-right into an ObjectInfo with
// declared-type = runtime type and is-mut = true (spec §4.5.3 step 1).
func (e *Evaluator) evalArgs(exprs []ast.Expr, scp *scope.Scope) ([]object.ObjectInfo, bool) {
	args := make([]object.ObjectInfo, len(exprs))
	for i, a := range exprs {
		v := e.evalExpr(a, scp)
		if e.HasError() {
			return nil, false
		}
		args[i] = object.ObjectInfo{Value: v, DeclaredType: v.Type(), IsMut: true}
	}
	return args, true
}

// applyFunction dispatches to a BuiltInFunction or UserDefinedFunction
// (spec §4.5.3 steps 2-4).
func (e *Evaluator) applyFunction(callee object.Object, args []object.ObjectInfo) object.Object {
	switch fn := callee.(type) {
	case *object.BuiltInFunction:
		result, rerr := fn.Fn(args)
		if rerr != nil {
			e.raise(rerr.Kind, "%s", rerr.Msg)
			return nil
		}
		return result

	case *object.UserDefinedFunction:
		return e.callUserDefinedFunction(fn, args)

	default:
		e.raise(object.TypeError, "%s is not callable", callee.Type().String())
		return nil
	}
}

// callUserDefinedFunction creates a new Function scope parented on the
// global scope — never the call site — per spec §4.5.3 step 3 and §9's
// design note: functions capture only the global context, so there are no
// closures over nested locals (see DESIGN.md Open Question 3).
func (e *Evaluator) callUserDefinedFunction(fn *object.UserDefinedFunction, args []object.ObjectInfo) object.Object {
	if len(args) != len(fn.Params) {
		e.raise(object.ArgumentError, "expected %d argument(s), got %d", len(fn.Params), len(args))
		return nil
	}

	callScope := scope.NewChild(scope.Function, e.Global)
	for i, param := range fn.Params {
		if !param.Type.Equal(args[i].Value.Type()) {
			e.raise(object.TypeError, "parameter %q expects %s, got %s", param.Name, param.Type.String(), args[i].Value.Type().String())
			return nil
		}
		callScope.Set(param.Name, object.ObjectInfo{Value: args[i].Value, DeclaredType: param.Type, IsMut: true})
	}

	result := e.evalBlock(fn.Body, callScope)
	if e.HasError() {
		return nil
	}

	var value object.Object = &object.Null{}
	if rv, ok := result.(*object.ReturnValue); ok {
		value = rv.Value
	} else if result != nil {
		value = result
	}

	if !value.Type().EqualAsReturnType(fn.ReturnType) {
		e.raise(object.TypeError, "function returns %s, expected %s", value.Type().String(), fn.ReturnType.String())
		return nil
	}
	return value
}

// evalFieldAccessExpr implements spec §4.5.4: look up the receiver's field
// map, then either read a field or invoke it as a method with the
// receiver prepended as an implicit first argument. Module members are
// plain functions: they receive only the call's own arguments.
func (e *Evaluator) evalFieldAccessExpr(ex *ast.FieldAccessExpr, scp *scope.Scope) object.Object {
	receiver := e.evalExpr(ex.Receiver, scp)
	if e.HasError() {
		return nil
	}

	fielder, ok := receiver.(object.Fielder)
	if !ok {
		e.raise(object.TypeError, "%s has no fields", receiver.Type().String())
		return nil
	}
	fields := fielder.Fields()

	switch target := ex.Target.(type) {
	case *ast.Identifier:
		field, ok := fields[target.Name]
		if !ok {
			e.raise(object.NameError, "%s has no field %q", receiver.Type().String(), target.Name)
			return nil
		}
		return field

	case *ast.CallExpr:
		name, ok := target.Callee.(*ast.Identifier)
		if !ok {
			e.raise(object.TypeError, "invalid method call target")
			return nil
		}
		field, ok := fields[name.Name]
		if !ok {
			e.raise(object.NameError, "%s has no method %q", receiver.Type().String(), name.Name)
			return nil
		}

		args, ok := e.evalArgs(target.Args, scp)
		if !ok {
			return nil
		}
		if _, isModule := receiver.(*object.Module); !isModule {
			self := object.ObjectInfo{Value: receiver, DeclaredType: receiver.Type(), IsMut: true}
			args = append([]object.ObjectInfo{self}, args...)
		}

		return e.applyFunction(field, args)

	default:
		e.raise(object.SyntaxError, "invalid field-access target")
		return nil
	}
}
