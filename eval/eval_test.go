package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/filipelang/filipe/object"
	"github.com/filipelang/filipe/parser"
)

// run parses src and evaluates it against a fresh Evaluator, returning the
// last statement's value, the Evaluator (to inspect errors), and whatever
// was written to stdout by print/io.puts.
func run(t *testing.T, src string) (object.Object, *Evaluator, string) {
	t.Helper()
	p := parser.New(src)
	program := p.Parse()
	require.False(t, p.HasError(), "parse error: %v", p.GetError())

	var out bytes.Buffer
	e := New(&out, strings.NewReader(""))
	result := e.Eval(program)
	return result, e, out.String()
}

func TestEval_IntArithmetic(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"1 + 2", 3},
		{"10 - 4", 6},
		{"3 * 4", 12},
		{"10 / 3", 3},
		{"10 % 3", 1},
		{"2 + 3 * 4", 14},
		{"-5 + 2", -3},
	}
	for _, tt := range tests {
		result, e, _ := run(t, tt.input)
		require.False(t, e.HasError(), "%s: %v", tt.input, e.GetError())
		i, ok := result.(*object.Int)
		require.True(t, ok, "%s: expected Int, got %T", tt.input, result)
		require.Equal(t, tt.expected, i.Value, tt.input)
	}
}

func TestEval_IntDivisionByZero(t *testing.T) {
	_, e, _ := run(t, "10 / 0")
	require.True(t, e.HasError())
	require.Equal(t, object.ValueError, e.GetError().Kind)
}

func TestEval_FloatDivisionByZeroIsInf(t *testing.T) {
	result, e, _ := run(t, "1.0 / 0.0")
	require.False(t, e.HasError())
	f, ok := result.(*object.Float)
	require.True(t, ok)
	require.True(t, f.Value > 1e300 || f.Value == f.Value+1) // +Inf
}

func TestEval_StringConcat(t *testing.T) {
	result, e, _ := run(t, `"foo" + "bar"`)
	require.False(t, e.HasError())
	s, ok := result.(*object.String)
	require.True(t, ok)
	require.Equal(t, "foobar", s.Value)
}

func TestEval_LetCases(t *testing.T) {
	// Case: type only, no initializer.
	result, e, _ := run(t, "let x: int\nx")
	require.False(t, e.HasError())
	require.Equal(t, &object.Null{}, result)

	// Case: initializer only, type inferred.
	result, e, _ = run(t, "let y = 5\ny")
	require.False(t, e.HasError())
	require.Equal(t, int64(5), result.(*object.Int).Value)

	// Case: both present, type mismatch is a TypeError.
	_, e, _ = run(t, `let z: int = "oops"`)
	require.True(t, e.HasError())
	require.Equal(t, object.TypeError, e.GetError().Kind)
}

func TestEval_LetRedeclarationIsNameError(t *testing.T) {
	_, e, _ := run(t, "let x = 1\nlet x = 2")
	require.True(t, e.HasError())
	require.Equal(t, object.NameError, e.GetError().Kind)
}

func TestEval_EmptyArrayAdoptsDeclaredElemType(t *testing.T) {
	result, e, _ := run(t, "let xs: Array<int> = []\nxs")
	require.False(t, e.HasError())
	arr, ok := result.(*object.Array)
	require.True(t, ok)
	require.NotNil(t, arr.ElemType)
	require.Equal(t, object.IntKind, arr.ElemType.Kind)
}

func TestEval_ArrayElementTypeMismatch(t *testing.T) {
	_, e, _ := run(t, `[1, "two"]`)
	require.True(t, e.HasError())
	require.Equal(t, object.TypeError, e.GetError().Kind)
}

func TestEval_IfElse(t *testing.T) {
	result, e, _ := run(t, `if (1 < 2) { "yes" } else { "no" }`)
	require.False(t, e.HasError())
	require.Equal(t, "yes", result.(*object.String).Value)

	result, e, _ = run(t, `if (2 < 1) { "yes" } else { "no" }`)
	require.False(t, e.HasError())
	require.Equal(t, "no", result.(*object.String).Value)
}

func TestEval_ForLoopOverRange(t *testing.T) {
	_, e, out := run(t, `for x in range(0, 3) { print(x) }`)
	require.False(t, e.HasError())
	require.Equal(t, "0\n1\n2\n", out)
}

func TestEval_FunctionCallAndReturn(t *testing.T) {
	src := `
define sum(a: int, b: int): int {
	return a + b
}
sum(34, 35)
`
	result, e, _ := run(t, src)
	require.False(t, e.HasError())
	require.Equal(t, int64(69), result.(*object.Int).Value)
}

func TestEval_ReturnOutsideFunctionIsNameError(t *testing.T) {
	_, e, _ := run(t, `return 1`)
	require.True(t, e.HasError())
	require.Equal(t, object.NameError, e.GetError().Kind)
}

func TestEval_FunctionDoesNotCloseOverCallerLocals(t *testing.T) {
	// inner's call scope parents on the global scope, not on outer's call
	// scope, so outer's local `x` is unreachable from inner (Open Question
	// 3 — see DESIGN.md).
	src := `
define inner(): int {
	return x
}
define outer(): int {
	let x = 5
	return inner()
}
outer()
`
	_, e, _ := run(t, src)
	require.True(t, e.HasError())
	require.Equal(t, object.NameError, e.GetError().Kind)
}

func TestEval_ArrayLengthFieldCall(t *testing.T) {
	result, e, _ := run(t, "let xs = [1, 2, 3]\nxs.length()")
	require.False(t, e.HasError())
	require.Equal(t, int64(3), result.(*object.Int).Value)
}

func TestEval_StringFields(t *testing.T) {
	result, e, _ := run(t, `"hello".length`)
	require.False(t, e.HasError())
	require.Equal(t, int64(5), result.(*object.Int).Value)

	result, e, _ = run(t, `"42".as_int()`)
	require.False(t, e.HasError())
	require.Equal(t, int64(42), result.(*object.Int).Value)

	_, e, _ = run(t, `"nope".as_int()`)
	require.True(t, e.HasError())
	require.Equal(t, object.ValueError, e.GetError().Kind)
}

func TestEval_PostfixIncrementMutatesBinding(t *testing.T) {
	result, e, _ := run(t, "let x = 5\nlet y = x++\nx")
	require.False(t, e.HasError())
	require.Equal(t, int64(6), result.(*object.Int).Value)
	_ = result
	_ = e
}

func TestEval_PostfixIncrementYieldsNewValue(t *testing.T) {
	result, e, _ := run(t, "let x = 5\nx++")
	require.False(t, e.HasError())
	require.Equal(t, int64(6), result.(*object.Int).Value)
}

func TestEval_AssignRejectsImmutableFunctionBinding(t *testing.T) {
	src := `
define f(): void {}
f = 1
`
	_, e, _ := run(t, src)
	require.True(t, e.HasError())
	require.Equal(t, object.NameError, e.GetError().Kind)
}

func TestEval_ImportBindsModule(t *testing.T) {
	result, e, _ := run(t, "import math\nmath.sqrt(16.0)")
	require.False(t, e.HasError())
	require.Equal(t, 4.0, result.(*object.Float).Value)
}

func TestEval_ImportUnknownModuleIsNameError(t *testing.T) {
	_, e, _ := run(t, `import nope`)
	require.True(t, e.HasError())
	require.Equal(t, object.NameError, e.GetError().Kind)
}

func TestEval_TypeofMatchesDisplayForm(t *testing.T) {
	cases := map[string]string{
		"typeof(1)":            "int",
		"typeof(1.0)":          "float",
		`typeof("s")`:          "string",
		"typeof(true)":         "boolean",
		"typeof(null)":         "null",
		"typeof([1, 2])":       "Array<int>",
	}
	for src, want := range cases {
		result, e, _ := run(t, src)
		require.False(t, e.HasError(), src)
		require.Equal(t, want, result.Inspect(), src)
	}
}

func TestEval_Print(t *testing.T) {
	_, e, out := run(t, `print("hi", 1, [1, 2])`)
	require.False(t, e.HasError())
	require.Equal(t, "hi1[1, 2]\n", out)
}

func TestEval_FirstErrorWins(t *testing.T) {
	_, e, _ := run(t, "let x = 1 / 0\nlet y = \"a\" + 1")
	require.True(t, e.HasError())
	require.Equal(t, object.ValueError, e.GetError().Kind)
}
