package std

import (
	"fmt"

	"github.com/filipelang/filipe/object"
	"github.com/filipelang/filipe/scope"
)

// RegisterGlobals binds the free functions spec §4.5.5 requires in every
// fresh global scope: print, exit, typeof, range, len. true/false/null are
// not bound here — Filipe's grammar parses them as literal tokens, never as
// identifiers, so a scope entry for them would be unreachable (see
// DESIGN.md).
func RegisterGlobals(global *scope.Scope, rt *Runtime) {
	bind := func(name string, fn func(args []object.ObjectInfo) (object.Object, *object.RuntimeError)) {
		global.Set(name, object.ObjectInfo{
			Value:        &object.BuiltInFunction{Name: name, Fn: fn},
			DeclaredType: object.FunctionType,
			IsMut:        false,
		})
	}

	bind("print", printBuiltin(rt))
	bind("exit", exitBuiltin(rt))
	bind("typeof", typeofBuiltin)
	bind("range", rangeBuiltin)
	bind("len", lenBuiltin)
}

// printBuiltin writes each argument's Display() form concatenated (no
// separator), then a trailing newline (spec §6). Strings print unquoted;
// arrays print each element quoted as in the REPL echo, since Array.Display
// delegates to Inspect for its elements.
func printBuiltin(rt *Runtime) func([]object.ObjectInfo) (object.Object, *object.RuntimeError) {
	return func(args []object.ObjectInfo) (object.Object, *object.RuntimeError) {
		out := ""
		for _, a := range args {
			out += a.Value.Display()
		}
		fmt.Fprintln(rt.Writer, out)
		return &object.Null{}, nil
	}
}

// exitBuiltin terminates the process via the Runtime's ExitFunc. Called
// with zero arguments it exits 0; with one int argument it exits that code.
func exitBuiltin(rt *Runtime) func([]object.ObjectInfo) (object.Object, *object.RuntimeError) {
	return func(args []object.ObjectInfo) (object.Object, *object.RuntimeError) {
		code := int64(0)
		switch len(args) {
		case 0:
		case 1:
			n, ok := args[0].Value.(*object.Int)
			if !ok {
				return nil, object.NewError(object.TypeError, "exit expects an int, got %s", args[0].Value.Type().String())
			}
			code = n.Value
		default:
			return nil, object.NewError(object.ArgumentError, "exit expects 0 or 1 argument(s), got %d", len(args))
		}
		rt.ExitFunc(int(code))
		return &object.Null{}, nil
	}
}

// typeofBuiltin returns a value whose display form equals its argument's
// type's display form (spec §8 property 7).
func typeofBuiltin(args []object.ObjectInfo) (object.Object, *object.RuntimeError) {
	if len(args) != 1 {
		return nil, object.NewError(object.ArgumentError, "typeof expects 1 argument, got %d", len(args))
	}
	return &object.TypeValue{Value: args[0].Value.Type()}, nil
}

// rangeBuiltin builds the Range iterable consumed by `for x in range(...)`
// (spec §4.5.1). Step defaults to 1 and may never be zero.
func rangeBuiltin(args []object.ObjectInfo) (object.Object, *object.RuntimeError) {
	if len(args) != 2 && len(args) != 3 {
		return nil, object.NewError(object.ArgumentError, "range expects 2 or 3 arguments, got %d", len(args))
	}

	start, ok := args[0].Value.(*object.Int)
	if !ok {
		return nil, object.NewError(object.TypeError, "range start must be an int, got %s", args[0].Value.Type().String())
	}
	end, ok := args[1].Value.(*object.Int)
	if !ok {
		return nil, object.NewError(object.TypeError, "range end must be an int, got %s", args[1].Value.Type().String())
	}

	step := int64(1)
	if len(args) == 3 {
		s, ok := args[2].Value.(*object.Int)
		if !ok {
			return nil, object.NewError(object.TypeError, "range step must be an int, got %s", args[2].Value.Type().String())
		}
		if s.Value == 0 {
			return nil, object.NewError(object.ValueError, "range step must not be zero")
		}
		step = s.Value
	}

	return &object.Range{Start: start.Value, End: end.Value, Step: step}, nil
}

// lenBuiltin returns a string's length (spec §4.5.5: "len(iterable) (string
// length)").
func lenBuiltin(args []object.ObjectInfo) (object.Object, *object.RuntimeError) {
	if len(args) != 1 {
		return nil, object.NewError(object.ArgumentError, "len expects 1 argument, got %d", len(args))
	}
	s, ok := args[0].Value.(*object.String)
	if !ok {
		return nil, object.NewError(object.TypeError, "len expects a string, got %s", args[0].Value.Type().String())
	}
	return &object.Int{Value: int64(len(s.Value))}, nil
}
