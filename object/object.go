/*
File    : filipe/object/object.go
Package : object

Package object is Filipe's runtime value model: a single Object interface
implemented by every concrete value kind (spec §3), plus the ObjectInfo
binding wrapper and the classified RuntimeError the evaluator raises.
*/
package object

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/filipelang/filipe/ast"
)

// Object is implemented by every runtime value.
type Object interface {
	Type() Type
	Inspect() string // REPL/debug form: quoted strings, etc.
	Display() string // print() form: unquoted strings
}

// ObjectInfo is what a Context binding stores: the value together with its
// declared type and whether it may be reassigned (spec §3).
type ObjectInfo struct {
	Value        Object
	DeclaredType Type
	IsMut        bool
}

// ErrorKind classifies a RuntimeError (spec §7).
type ErrorKind string

const (
	SyntaxError   ErrorKind = "Syntax Error"
	NameError     ErrorKind = "Name Error"
	TypeError     ErrorKind = "Type Error"
	ArgumentError ErrorKind = "Argument Error"
	ValueError    ErrorKind = "Value Error"
	IOError       ErrorKind = "IO Error"
)

// RuntimeError is a single classified error. Display renders it as
// "[<Kind>] message" (SUPPLEMENTED FEATURES #2, from
// original_source/runtime/runtime_error.rs's Display impl).
type RuntimeError struct {
	Kind ErrorKind
	Msg  string
}

func NewError(kind ErrorKind, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Kind, e.Msg)
}

// ---- Null ---------------------------------------------------------------

type Null struct{}

func (*Null) Type() Type      { return Type{Kind: NullKind} }
func (*Null) Inspect() string { return "null" }
func (*Null) Display() string { return "null" }

// ---- TypeValue (a first-class type annotation, e.g. the result of
// typeof()'s argument resolution for diagnostics) -------------------------

type TypeValue struct {
	Value Type
}

func (t *TypeValue) Type() Type      { return Type{Kind: TypeAnnotKind} }
func (t *TypeValue) Inspect() string { return t.Value.String() }
func (t *TypeValue) Display() string { return t.Value.String() }

// ---- Int ------------------------------------------------------------

type Int struct {
	Value int64
}

func (i *Int) Type() Type      { return Type{Kind: IntKind} }
func (i *Int) Inspect() string { return strconv.FormatInt(i.Value, 10) }
func (i *Int) Display() string { return i.Inspect() }

// Fields exposes Int's primitive method table: as_float() → Float (spec
// §4.5.5). The callable expects the receiver prepended as args[0] per the
// uniform field-access convention (spec §4.5.4 step 4).
func (i *Int) Fields() map[string]Object {
	return map[string]Object{
		"as_float": &BuiltInFunction{
			Name: "as_float",
			Fn: func(args []ObjectInfo) (Object, *RuntimeError) {
				self, ok := args[0].Value.(*Int)
				if !ok {
					return nil, NewError(TypeError, "as_float: receiver is not an int")
				}
				return &Float{Value: float64(self.Value)}, nil
			},
		},
	}
}

// ---- Float ------------------------------------------------------------

type Float struct {
	Value float64
}

func (f *Float) Type() Type      { return Type{Kind: FloatKind} }
func (f *Float) Inspect() string { return strconv.FormatFloat(f.Value, 'g', -1, 64) }
func (f *Float) Display() string { return f.Inspect() }

// ---- Boolean ------------------------------------------------------------

type Boolean struct {
	Value bool
}

func (b *Boolean) Type() Type      { return Type{Kind: BooleanKind} }
func (b *Boolean) Inspect() string { return strconv.FormatBool(b.Value) }
func (b *Boolean) Display() string { return b.Inspect() }

// ---- String ------------------------------------------------------------

type String struct {
	Value string
}

func (s *String) Type() Type      { return Type{Kind: StringKind} }
func (s *String) Inspect() string { return fmt.Sprintf("'%s'", s.Value) }
func (s *String) Display() string { return s.Value }

// Fields exposes String's primitive method table: length (Int, a plain
// field) and as_int() → Int (a callable, errors on parse failure).
func (s *String) Fields() map[string]Object {
	return map[string]Object{
		"length": &Int{Value: int64(len(s.Value))},
		"as_int": &BuiltInFunction{
			Name: "as_int",
			Fn: func(args []ObjectInfo) (Object, *RuntimeError) {
				self, ok := args[0].Value.(*String)
				if !ok {
					return nil, NewError(TypeError, "as_int: receiver is not a string")
				}
				v, err := strconv.ParseInt(strings.TrimSpace(self.Value), 10, 64)
				if err != nil {
					return nil, NewError(ValueError, "cannot parse %q as int", self.Value)
				}
				return &Int{Value: v}, nil
			},
		},
	}
}

// ---- Array ------------------------------------------------------------

// Array holds an ordered sequence of Object plus an optional element type.
// ElemType is nil only while the array is empty and unbound (spec §3
// invariant 4); any array bound to a name always carries a concrete type.
type Array struct {
	Inner    []Object
	ElemType *Type
}

func (a *Array) Type() Type {
	if a.ElemType == nil {
		return EmptyArray
	}
	return ArrayOf(*a.ElemType)
}

func (a *Array) Inspect() string {
	parts := make([]string, len(a.Inner))
	for i, el := range a.Inner {
		parts[i] = el.Inspect()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (a *Array) Display() string { return a.Inspect() }

// Fields exposes Array's primitive method table: length() → Int.
func (a *Array) Fields() map[string]Object {
	return map[string]Object{
		"length": &BuiltInFunction{
			Name: "length",
			Fn: func(args []ObjectInfo) (Object, *RuntimeError) {
				self, ok := args[0].Value.(*Array)
				if !ok {
					return nil, NewError(TypeError, "length: receiver is not an array")
				}
				return &Int{Value: int64(len(self.Inner))}, nil
			},
		},
	}
}

// ---- Range ------------------------------------------------------------

// Range is the iterable produced by range(start, end[, step]). Step is
// never zero (spec §3 invariant 5).
type Range struct {
	Start, End, Step int64
}

func (r *Range) Type() Type      { return Type{Kind: RangeKind} }
func (r *Range) Inspect() string { return fmt.Sprintf("range(%d, %d, %d)", r.Start, r.End, r.Step) }
func (r *Range) Display() string { return r.Inspect() }

// ---- Functions ----------------------------------------------------------

// Param is one function parameter: a name plus its declared type.
type Param struct {
	Name string
	Type Type
}

// UserDefinedFunction is a Filipe-defined function. It deliberately carries
// no captured lexical scope: calls always resolve against the interpreter's
// global scope (spec §4.5.3 step 3, §9 design note, Open Question 3).
type UserDefinedFunction struct {
	Params     []Param
	Body       []ast.Stmt
	ReturnType Type
}

func (f *UserDefinedFunction) Type() Type      { return Type{Kind: FunctionKind} }
func (f *UserDefinedFunction) Inspect() string { return "[User Defined Function]" }
func (f *UserDefinedFunction) Display() string { return f.Inspect() }

// BuiltInFunction wraps a native Go callable. Per spec §4.5.3 step 2 it
// returns either a value or a classified RuntimeError.
type BuiltInFunction struct {
	Name string
	Fn   func(args []ObjectInfo) (Object, *RuntimeError)
}

func (f *BuiltInFunction) Type() Type      { return Type{Kind: FunctionKind} }
func (f *BuiltInFunction) Inspect() string { return "[Built-in Function]" }
func (f *BuiltInFunction) Display() string { return f.Inspect() }

// ReturnValue is the sentinel that threads a `return` through nested block
// evaluation without exceptions (spec §3 invariant 6, §9). It is stripped
// at the function-call boundary and must never be bound to a name.
type ReturnValue struct {
	Value Object
}

func (r *ReturnValue) Type() Type      { return r.Value.Type() }
func (r *ReturnValue) Inspect() string { return r.Value.Inspect() }
func (r *ReturnValue) Display() string { return r.Value.Display() }

// ---- Module ------------------------------------------------------------

// Module is a named bundle of fields exposed to Filipe code under a single
// identifier (e.g. math, io, sys, random — spec §4.5.5).
type Module struct {
	Name  string
	Attrs map[string]Object
}

func (m *Module) Type() Type      { return Type{Kind: ModuleKind} }
func (m *Module) Inspect() string { return fmt.Sprintf("[Module] %s", m.Name) }
func (m *Module) Display() string { return m.Inspect() }

// Fields exposes a Module's attribute map for field/method access.
func (m *Module) Fields() map[string]Object { return m.Attrs }
