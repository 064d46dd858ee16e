package std

import (
	"bufio"
	"fmt"

	"github.com/filipelang/filipe/object"
)

// newIOModule builds the io module: puts(...) and gets([prompt])
// (SUPPLEMENTED FEATURES #1, grounded on original_source/stdlib/modules/io.rs).
func newIOModule(rt *Runtime) *object.Module {
	return &object.Module{
		Name: "io",
		Attrs: map[string]object.Object{
			"puts": &object.BuiltInFunction{Name: "puts", Fn: ioPuts(rt)},
			"gets": &object.BuiltInFunction{Name: "gets", Fn: ioGets(rt)},
		},
	}
}

// ioPuts writes each argument's Display() form concatenated, with no
// trailing newline — unlike the global print, which always appends one
// (spec's io module note: "prints without the trailing newline print adds").
//
// Syntax: io.puts(a, b, ...)
func ioPuts(rt *Runtime) func([]object.ObjectInfo) (object.Object, *object.RuntimeError) {
	return func(args []object.ObjectInfo) (object.Object, *object.RuntimeError) {
		out := ""
		for _, a := range args {
			out += a.Value.Display()
		}
		fmt.Fprint(rt.Writer, out)
		return &object.Null{}, nil
	}
}

// ioGets reads a single line from the Runtime's Reader, optionally printing
// a prompt first. The trailing newline is stripped.
//
// Syntax: io.gets([prompt])
func ioGets(rt *Runtime) func([]object.ObjectInfo) (object.Object, *object.RuntimeError) {
	reader := bufio.NewReader(rt.Reader)
	return func(args []object.ObjectInfo) (object.Object, *object.RuntimeError) {
		switch len(args) {
		case 0:
		case 1:
			prompt, ok := args[0].Value.(*object.String)
			if !ok {
				return nil, object.NewError(object.TypeError, "gets prompt must be a string, got %s", args[0].Value.Type().String())
			}
			fmt.Fprint(rt.Writer, prompt.Value)
		default:
			return nil, object.NewError(object.ArgumentError, "gets expects 0 or 1 argument(s), got %d", len(args))
		}

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return nil, object.NewError(object.IOError, "failed to read input: %v", err)
		}
		for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
			line = line[:len(line)-1]
		}
		return &object.String{Value: line}, nil
	}
}
