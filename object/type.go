/*
File    : filipe/object/type.go
Package : object
*/
package object

import "fmt"

// Kind names the family a runtime Type belongs to.
type Kind string

const (
	NullKind     Kind = "null"
	VoidKind     Kind = "void"
	IntKind      Kind = "int"
	FloatKind    Kind = "float"
	StringKind   Kind = "string"
	BooleanKind  Kind = "boolean"
	FunctionKind Kind = "function"
	RangeKind    Kind = "range"
	ArrayKind    Kind = "Array"
	ModuleKind   Kind = "module"
	TypeAnnotKind Kind = "type"
)

// Type is Filipe's runtime type tag. Array carries an optional element
// type: nil only for an empty array whose element type isn't known yet
// (spec §3 invariant 4).
type Type struct {
	Kind Kind
	Elem *Type
}

func (t Type) String() string {
	if t.Kind == ArrayKind {
		if t.Elem == nil {
			return "Array<?>"
		}
		return fmt.Sprintf("Array<%s>", t.Elem.String())
	}
	return string(t.Kind)
}

// Equal implements the structural equality rule from spec §3: Array(None)
// (empty array, no known element type) matches Array(Some(t)) for any t.
// This is the only exception to strict structural equality; it holds in
// both directions and exists purely so that an empty array literal can bind
// against any concrete Array<T> annotation.
func (t Type) Equal(other Type) bool {
	if t.Kind != other.Kind {
		return false
	}
	if t.Kind != ArrayKind {
		return true
	}
	if t.Elem == nil || other.Elem == nil {
		return true
	}
	return t.Elem.Equal(*other.Elem)
}

// EqualAsReturnType implements the Null/Void equivalence that applies only
// to function return types (spec §3, §4.5.3 step 3, SUPPLEMENTED FEATURES
// #4): nowhere else does Null satisfy a Void-typed contract.
func (t Type) EqualAsReturnType(other Type) bool {
	if (t.Kind == NullKind && other.Kind == VoidKind) || (t.Kind == VoidKind && other.Kind == NullKind) {
		return true
	}
	return t.Equal(other)
}

// Named Type values for the non-Array kinds. These are suffixed Type to
// avoid colliding with the identically-named concrete Object structs
// (Int, Float, String, Boolean, ...) declared in object.go.
var (
	NullType     = Type{Kind: NullKind}
	VoidType     = Type{Kind: VoidKind}
	IntType      = Type{Kind: IntKind}
	FloatType    = Type{Kind: FloatKind}
	StringType   = Type{Kind: StringKind}
	BooleanType  = Type{Kind: BooleanKind}
	FunctionType = Type{Kind: FunctionKind}
	RangeType    = Type{Kind: RangeKind}
	ModuleType   = Type{Kind: ModuleKind}
	TypeAnnotType = Type{Kind: TypeAnnotKind}
)

// ArrayOf builds an Array type with a concrete element type.
func ArrayOf(elem Type) Type {
	e := elem
	return Type{Kind: ArrayKind, Elem: &e}
}

// EmptyArray is the type of an array literal with no elements: the element
// type is not yet known (spec §3 invariant 4).
var EmptyArray = Type{Kind: ArrayKind, Elem: nil}
