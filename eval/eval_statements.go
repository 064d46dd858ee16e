package eval

import (
	"github.com/filipelang/filipe/ast"
	"github.com/filipelang/filipe/object"
	"github.com/filipelang/filipe/scope"
	"github.com/filipelang/filipe/std"
)

func (e *Evaluator) evalStmt(stmt ast.Stmt, scp *scope.Scope) object.Object {
	switch s := stmt.(type) {
	case *ast.LetStmt:
		return e.evalLetStmt(s, scp)
	case *ast.FuncStmt:
		return e.evalFuncStmt(s, scp)
	case *ast.ReturnStmt:
		return e.evalReturnStmt(s, scp)
	case *ast.IfStmt:
		return e.evalIfStmt(s, scp)
	case *ast.ForStmt:
		return e.evalForStmt(s, scp)
	case *ast.ImportStmt:
		return e.evalImportStmt(s, scp)
	case *ast.ExprStmt:
		return e.evalExpr(s.Value, scp)
	default:
		e.raise(object.SyntaxError, "unknown statement")
		return nil
	}
}

// evalLetStmt implements the three cases from spec §4.5.1. `let` always
// declares a mutable binding — Filipe has no separate immutability
// keyword; only function bindings (evalFuncStmt) and imported modules
// (evalImportStmt) are immutable.
func (e *Evaluator) evalLetStmt(s *ast.LetStmt, scp *scope.Scope) object.Object {
	var declared object.Type
	var hasDeclared bool
	if s.DeclaredType != nil {
		declared = resolveType(s.DeclaredType)
		hasDeclared = true
	}

	var value object.Object
	var valueType object.Type

	switch {
	case hasDeclared && s.Value == nil:
		// Case 1: type present, initializer absent.
		if declared.Kind == object.ArrayKind {
			value = zeroArrayFor(declared)
		} else {
			value = &object.Null{}
		}
		valueType = declared

	case !hasDeclared && s.Value != nil:
		// Case 2: type absent, initializer present.
		value = e.evalExpr(s.Value, scp)
		if e.HasError() {
			return nil
		}
		valueType = value.Type()
		if valueType.Kind == object.ArrayKind && valueType.Elem == nil {
			e.raise(object.TypeError, "cannot infer element type of empty array literal for %q; annotate with Array<T>", s.Name)
			return nil
		}

	default:
		// Case 3: both present.
		value = e.evalExpr(s.Value, scp)
		if e.HasError() {
			return nil
		}
		valueType = value.Type()
		if !declared.Equal(valueType) {
			e.raise(object.TypeError, "cannot assign %s to binding %q of type %s", valueType.String(), s.Name, declared.String())
			return nil
		}
		if declared.Kind == object.ArrayKind && valueType.Elem == nil {
			// Empty array literal adopts the declared element type
			// (spec §3 invariant 4).
			if arr, ok := value.(*object.Array); ok {
				elem := *declared.Elem
				arr.ElemType = &elem
			}
		}
		valueType = declared
	}

	if !scp.Set(s.Name, object.ObjectInfo{Value: value, DeclaredType: valueType, IsMut: true}) {
		e.raise(object.NameError, "%q is already declared in this scope", s.Name)
		return nil
	}
	return value
}

// evalFuncStmt builds a UserDefinedFunction and binds it immutably in the
// current scope (spec §4.5.1).
func (e *Evaluator) evalFuncStmt(s *ast.FuncStmt, scp *scope.Scope) object.Object {
	params := make([]object.Param, len(s.Params))
	for i, p := range s.Params {
		params[i] = object.Param{Name: p.Name, Type: resolveType(p.Type)}
	}

	fn := &object.UserDefinedFunction{
		Params:     params,
		Body:       s.Body,
		ReturnType: resolveType(s.ReturnType),
	}

	if !scp.Set(s.Name, object.ObjectInfo{Value: fn, DeclaredType: object.FunctionType, IsMut: false}) {
		e.raise(object.NameError, "%q is already declared in this scope", s.Name)
		return nil
	}
	return fn
}

// evalReturnStmt requires an enclosing Function scope (spec §4.5.1,
// §4.4 InContext).
func (e *Evaluator) evalReturnStmt(s *ast.ReturnStmt, scp *scope.Scope) object.Object {
	if !scp.InContext(scope.Function) {
		e.raise(object.NameError, "'return' outside of function")
		return nil
	}

	var value object.Object = &object.Null{}
	if s.Value != nil {
		value = e.evalExpr(s.Value, scp)
		if e.HasError() {
			return nil
		}
	}
	return &object.ReturnValue{Value: value}
}

// evalIfStmt evaluates the condition, then runs the chosen branch inside a
// fresh IfElse scope (spec §4.5.1).
func (e *Evaluator) evalIfStmt(s *ast.IfStmt, scp *scope.Scope) object.Object {
	cond := e.evalExpr(s.Condition, scp)
	if e.HasError() {
		return nil
	}

	branchScope := scope.NewChild(scope.IfElse, scp)
	if isTruthy(cond) {
		return e.evalBlock(s.Consequence, branchScope)
	}
	if s.Alternative != nil {
		return e.evalBlock(s.Alternative, branchScope)
	}
	return &object.Null{}
}

// evalForStmt iterates a Range, declaring the cursor as a mutable Int
// (spec §4.5.1). The iterable must evaluate to a Range.
func (e *Evaluator) evalForStmt(s *ast.ForStmt, scp *scope.Scope) object.Object {
	iterable := e.evalExpr(s.Iterable, scp)
	if e.HasError() {
		return nil
	}
	rng, ok := iterable.(*object.Range)
	if !ok {
		e.raise(object.TypeError, "'for ... in' requires a range, got %s", iterable.Type().String())
		return nil
	}

	var result object.Object = &object.Null{}
	for cursor := rng.Start; cursor < rng.End; cursor += rng.Step {
		loopScope := scope.NewChild(scope.Loop, scp)
		loopScope.Set(s.Cursor, object.ObjectInfo{
			Value:        &object.Int{Value: cursor},
			DeclaredType: object.IntType,
			IsMut:        true,
		})

		result = e.evalBlock(s.Body, loopScope)
		if e.HasError() {
			return nil
		}
		if _, ok := result.(*object.ReturnValue); ok {
			return result
		}
	}
	return result
}

// evalImportStmt binds a known built-in module by name (spec §1
// Non-goals: "no import system beyond resolving known module names").
func (e *Evaluator) evalImportStmt(s *ast.ImportStmt, scp *scope.Scope) object.Object {
	mod, ok := std.LookupModule(s.Name, e.rt)
	if !ok {
		e.raise(object.NameError, "no built-in module named %q", s.Name)
		return nil
	}
	scp.Set(s.Name, object.ObjectInfo{Value: mod, DeclaredType: object.ModuleType, IsMut: false})
	return &object.Null{}
}
