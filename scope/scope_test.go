package scope

import (
	"testing"

	"github.com/filipelang/filipe/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScope_SetIsLocalOnly(t *testing.T) {
	global := New(Global)
	require.True(t, global.Set("x", object.ObjectInfo{Value: &object.Int{Value: 1}, DeclaredType: object.IntType, IsMut: true}))

	child := NewChild(IfElse, global)
	assert.True(t, child.Set("x", object.ObjectInfo{Value: &object.Int{Value: 2}, DeclaredType: object.IntType, IsMut: true}))

	assert.False(t, global.Set("x", object.ObjectInfo{Value: &object.Int{Value: 3}, DeclaredType: object.IntType, IsMut: true}))
}

func TestScope_ResolveWalksChain(t *testing.T) {
	global := New(Global)
	global.Set("x", object.ObjectInfo{Value: &object.Int{Value: 1}, DeclaredType: object.IntType, IsMut: true})

	child := NewChild(Function, global)
	info, ok := child.Resolve("x")
	require.True(t, ok)
	assert.EqualValues(t, 1, info.Value.(*object.Int).Value)

	_, ok = child.Resolve("missing")
	assert.False(t, ok)
}

func TestScope_MutateRewritesNearestDeclaringScope(t *testing.T) {
	global := New(Global)
	global.Set("x", object.ObjectInfo{Value: &object.Int{Value: 1}, DeclaredType: object.IntType, IsMut: true})

	child := NewChild(IfElse, global)
	assert.True(t, child.Mutate("x", &object.Int{Value: 42}))

	info, _ := global.Resolve("x")
	assert.EqualValues(t, 42, info.Value.(*object.Int).Value)
}

func TestScope_MutateRejectsImmutable(t *testing.T) {
	global := New(Global)
	global.Set("pi", object.ObjectInfo{Value: &object.Float{Value: 3.14}, DeclaredType: object.FloatType, IsMut: false})

	assert.False(t, global.Mutate("pi", &object.Float{Value: 0}))
}

func TestScope_MutateFailsWhenUnbound(t *testing.T) {
	global := New(Global)
	assert.False(t, global.Mutate("never declared", &object.Null{}))
}

func TestScope_InContext(t *testing.T) {
	global := New(Global)
	fn := NewChild(Function, global)
	loop := NewChild(Loop, fn)

	assert.True(t, loop.InContext(Function))
	assert.True(t, loop.InContext(Loop))
	assert.False(t, loop.InContext(IfElse))
	assert.True(t, loop.InContext(Global))
}
