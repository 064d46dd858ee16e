package std

import "github.com/filipelang/filipe/object"

// newSysModule builds the sys module: exit([code]) (SUPPLEMENTED FEATURES
// #1, grounded on original_source/stdlib/modules/sys.rs).
func newSysModule(rt *Runtime) *object.Module {
	return &object.Module{
		Name: "sys",
		Attrs: map[string]object.Object{
			"exit": &object.BuiltInFunction{Name: "exit", Fn: sysExit(rt)},
		},
	}
}

// sysExit terminates the process via the Runtime's ExitFunc, identical to
// the global exit() builtin — kept as a module member too since spec.md
// lists sys as a named built-in module.
//
// Syntax: sys.exit([code])
func sysExit(rt *Runtime) func([]object.ObjectInfo) (object.Object, *object.RuntimeError) {
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
