package eval

import "github.com/filipelang/filipe/object"
import "github.com/filipelang/filipe/ast"

// resolveType converts a syntactic ast.ExprType into a runtime object.Type
// (grounded on original_source/runtime/type_system.rs's
// expr_type_to_object_type).
func resolveType(t *ast.ExprType) object.Type {
	switch t.Name {
	case "int":
		return object.IntType
	case "float":
		return object.FloatType
	case "string":
		return object.StringType
	case "boolean":
		return object.BooleanType
	case "void":
		return object.VoidType
	case "Array":
		inner := resolveType(t.Inner)
		return object.ArrayOf(inner)
	default:
		return object.VoidType
	}
}

// zeroArrayFor builds the empty-array value bound when a `let xs:
// Array<T>` has no initializer (spec §4.5.1 case 1).
func zeroArrayFor(t object.Type) object.Object {
	elem := *t.Elem
	return &object.Array{Inner: []object.Object{}, ElemType: &elem}
}
