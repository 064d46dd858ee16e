/*
File    : filipe/eval/eval.go
Package : eval

Package eval is Filipe's tree-walking evaluator: a single-threaded,
synchronous, recursive walker over the AST (spec §4.5) with a single-slot
error handler (spec §4.6, §7) and a context tree rooted at one persistent
global scope (spec §4.4).
*/
package eval

import (
	"io"
	"os"

	"github.com/filipelang/filipe/ast"
	"github.com/filipelang/filipe/object"
	"github.com/filipelang/filipe/scope"
	"github.com/filipelang/filipe/std"
)

// Evaluator walks a Program against a chain of Context scopes rooted at
// Global. Writer/Reader back print/io.puts/io.gets; they are the only
// configurable surface (spec's ambient stack has no config files or env
// vars — see SPEC_FULL.md).
type Evaluator struct {
	Global *scope.Scope
	Writer io.Writer
	Reader io.Reader
	rt     *std.Runtime

	err *object.RuntimeError
}

// New creates an Evaluator with a freshly seeded global scope holding the
// free built-in functions (spec §4.5.5); true, false and null are literal
// tokens and get no scope entry (see std.RegisterGlobals). Built-in
// modules (math, io, sys, random) are not bound until `import`ed.
func New(w io.Writer, r io.Reader) *Evaluator {
	rt := &std.Runtime{Writer: w, Reader: r, ExitFunc: defaultExit}
	e := &Evaluator{
		Global: scope.New(scope.Global),
		Writer: w,
		Reader: r,
		rt:     rt,
	}
	std.RegisterGlobals(e.Global, rt)
	return e
}

// SetWriter reconfigures where print/io.puts writes, per the teacher's
// Evaluator.SetWriter shape.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
	e.rt.Writer = w
}

// SetReader reconfigures where io.gets reads from.
func (e *Evaluator) SetReader(r io.Reader) {
	e.Reader = r
	e.rt.Reader = r
}

// HasError reports whether the single-slot error handler already holds an
// error.
func (e *Evaluator) HasError() bool { return e.err != nil }

// GetError returns the first error raised during evaluation, or nil.
func (e *Evaluator) GetError() *object.RuntimeError { return e.err }

// ResetError clears the error slot. The REPL calls this between top-level
// lines (spec §9: "current REPL resets by constructing a new handler per
// line" — here, reusing one Evaluator and resetting is equivalent).
func (e *Evaluator) ResetError() { e.err = nil }

func (e *Evaluator) raise(kind object.ErrorKind, format string, args ...interface{}) {
	if e.err == nil {
		e.err = object.NewError(kind, format, args...)
	}
}

// Eval runs every statement in program against the global scope in source
// order, short-circuiting on the first error. It returns the value of the
// last statement (for REPL echo) or nil.
func (e *Evaluator) Eval(program *ast.Program) object.Object {
	var result object.Object
	for _, stmt := range program.Statements {
		result = e.evalStmt(stmt, e.Global)
		if e.HasError() {
			return nil
		}
		if rv, ok := result.(*object.ReturnValue); ok {
			result = rv.Value
		}
	}
	return result
}

// evalBlock evaluates a block's statements under scp, returning early
// (without evaluating the rest of the block) the moment a ReturnValue
// surfaces or an error is raised (spec §4.5.1, §9 "Return propagation").
func (e *Evaluator) evalBlock(stmts []ast.Stmt, scp *scope.Scope) object.Object {
	var result object.Object = &object.Null{}
	for _, stmt := range stmts {
		result = e.evalStmt(stmt, scp)
		if e.HasError() {
			return nil
		}
		if _, ok := result.(*object.ReturnValue); ok {
			return result
		}
	}
	return result
}

// defaultExit is the ExitFunc every Evaluator's Runtime starts with: it ends
// the process with code. Tests of the std package construct their own
// Runtime to observe the code instead.
func defaultExit(code int) {
	os.Exit(code)
}

// isTruthy implements spec §4.5.1's truthiness rule: every value other
// than Null, Boolean(false), Int(0), and Float(0.0) is truthy.
func isTruthy(obj object.Object) bool {
	switch v := obj.(type) {
	case *object.Null:
		return false
	case *object.Boolean:
		return v.Value
	case *object.Int:
		return v.Value != 0
	case *object.Float:
		return v.Value != 0
	default:
		return true
	}
}
