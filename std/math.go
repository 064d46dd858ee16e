package std

import (
	"math"

	"github.com/filipelang/filipe/object"
)

// newMathModule builds the math module: PI (Float) and sqrt(x) (SUPPLEMENTED
// FEATURES #1, grounded on original_source/stdlib/modules/math.rs).
func newMathModule(*Runtime) *object.Module {
	return &object.Module{
		Name: "math",
		Attrs: map[string]object.Object{
			"PI":   &object.Float{Value: math.Pi},
			"sqrt": &object.BuiltInFunction{Name: "sqrt", Fn: mathSqrt},
		},
	}
}

// mathSqrt returns the square root of an int or float argument as a Float.
//
// Syntax: math.sqrt(number)
//
// Example:
//
//	math.sqrt(16)   // 4.0
//	math.sqrt(2.25) // 1.5
func mathSqrt(args []object.ObjectInfo) (object.Object, *object.RuntimeError) {
	if len(args) != 1 {
		return nil, object.NewError(object.ArgumentError, "sqrt expects 1 argument, got %d", len(args))
	}

	var value float64
	switch v := args[0].Value.(type) {
	case *object.Int:
		value = float64(v.Value)
	case *object.Float:
		value = v.Value
	default:
		return nil, object.NewError(object.TypeError, "sqrt expects an int or float, got %s", args[0].Value.Type().String())
	}

	if value < 0 {
		return nil, object.NewError(object.ValueError, "cannot take the square root of a negative number")
	}
	return &object.Float{Value: math.Sqrt(value)}, nil
}
