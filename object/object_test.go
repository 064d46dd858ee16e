package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestType_EmptyArrayMatchesConcrete(t *testing.T) {
	assert.True(t, EmptyArray.Equal(ArrayOf(IntType)))
	assert.True(t, ArrayOf(IntType).Equal(EmptyArray))
	assert.False(t, ArrayOf(IntType).Equal(ArrayOf(StringType)))
}

func TestType_EqualAsReturnType(t *testing.T) {
	assert.True(t, NullType.EqualAsReturnType(VoidType))
	assert.True(t, VoidType.EqualAsReturnType(NullType))
	assert.False(t, NullType.Equal(VoidType))
}

func TestString_Fields(t *testing.T) {
	s := &String{Value: "hello"}
	fields := s.Fields()

	length, ok := fields["length"].(*Int)
	assert.True(t, ok)
	assert.EqualValues(t, 5, length.Value)

	asInt, ok := fields["as_int"].(*BuiltInFunction)
	assert.True(t, ok)
	_, rerr := asInt.Fn([]ObjectInfo{{Value: &String{Value: "not a number"}}})
	assert.NotNil(t, rerr)
	assert.Equal(t, ValueError, rerr.Kind)
}

func TestArray_Length(t *testing.T) {
	arr := &Array{Inner: []Object{&Int{Value: 1}, &Int{Value: 2}}, ElemType: &IntType}
	length := arr.Fields()["length"].(*BuiltInFunction)
	result, rerr := length.Fn([]ObjectInfo{{Value: arr}})
	assert.Nil(t, rerr)
	assert.EqualValues(t, 2, result.(*Int).Value)
}

func TestRuntimeError_Display(t *testing.T) {
	err := NewError(TypeError, "cannot assign %s to %s", "string", "int")
	assert.Equal(t, "[Type Error] cannot assign string to int", err.Error())
}
