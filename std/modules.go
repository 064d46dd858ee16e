package std

import "github.com/filipelang/filipe/object"

// modules is the registry of built-in modules resolvable by name from an
// `import` statement (SUPPLEMENTED FEATURES #1). A module is NOT bound into
// any scope until an `import` names it — see the std package entry in
// DESIGN.md.
var modules = map[string]func(*Runtime) *object.Module{
	"math":   newMathModule,
	"io":     newIOModule,
	"sys":    newSysModule,
	"random": newRandomModule,
}

// LookupModule resolves a built-in module by name against rt (io needs the
// Runtime's Reader/Writer, sys needs ExitFunc). Each call returns a fresh
// Module value so that two `import` statements in the same program never
// share mutable state through a single pointer.
func LookupModule(name string, rt *Runtime) (*object.Module, bool) {
	ctor, ok := modules[name]
	if !ok {
		return nil, false
	}
	return ctor(rt), true
}
