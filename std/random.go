package std

import (
	"math/rand"

	"github.com/filipelang/filipe/object"
)

// newRandomModule builds the random module: randint(lo, hi) (SUPPLEMENTED
// FEATURES #1, recovered from original_source/stdlib/modules/random.rs —
// spec.md names the module but never details it).
func newRandomModule(*Runtime) *object.Module {
	return &object.Module{
		Name: "random",
		Attrs: map[string]object.Object{
			"randint": &object.BuiltInFunction{Name: "randint", Fn: randomRandint},
		},
	}
}

// randomRandint returns a pseudo-random int in [lo, hi] inclusive.
//
// Syntax: random.randint(lo, hi)
func randomRandint(args []object.ObjectInfo) (object.Object, *object.RuntimeError) {
	if len(args) != 2 {
		return nil, object.NewError(object.ArgumentError, "randint expects 2 arguments, got %d", len(args))
	}
	lo, ok := args[0].Value.(*object.Int)
	if !ok {
		return nil, object.NewError(object.TypeError, "randint expects ints, got %s", args[0].Value.Type().String())
	}
	hi, ok := args[1].Value.(*object.Int)
	if !ok {
		return nil, object.NewError(object.TypeError, "randint expects ints, got %s", args[1].Value.Type().String())
	}
	if lo.Value > hi.Value {
		return nil, object.NewError(object.ValueError, "randint: lo (%d) must not exceed hi (%d)", lo.Value, hi.Value)
	}
	return &object.Int{Value: lo.Value + rand.Int63n(hi.Value-lo.Value+1)}, nil
}
