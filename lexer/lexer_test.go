/*
File    : filipe/lexer/lexer_test.go
Package : lexer
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type TestConsumeToken struct {
	Input          string
	ExpectedTokens []Token
}

func TestNewLexer_ConsumeTokens(t *testing.T) {

	tests := []TestConsumeToken{
		{
			Input: ` 123 + 2   31 - 12 `,
			ExpectedTokens: []Token{
				New(INT_LIT, "123"),
				New(PLUS_OP, "+"),
				New(INT_LIT, "2"),
				New(INT_LIT, "31"),
				New(MINUS_OP, "-"),
				New(INT_LIT, "12"),
			},
		},
		{
			Input: ` { } + []  abc - a12 `,
			ExpectedTokens: []Token{
				New(LEFT_BRACE, "{"),
				New(RIGHT_BRACE, "}"),
				New(PLUS_OP, "+"),
				New(LEFT_BRACKET, "["),
				New(RIGHT_BRACKET, "]"),
				New(IDENT, "abc"),
				New(MINUS_OP, "-"),
				New(IDENT, "a12"),
			},
		},
		{
			Input: ` <=  + 2   {31} - 12 a19bcd`,
			ExpectedTokens: []Token{
				New(LE_OP, "<="),
				New(PLUS_OP, "+"),
				New(INT_LIT, "2"),
				New(LEFT_BRACE, "{"),
				New(INT_LIT, "31"),
				New(RIGHT_BRACE, "}"),
				New(MINUS_OP, "-"),
				New(INT_LIT, "12"),
				New(IDENT, "a19bcd"),
			},
		},
		{
			Input: `== != <= >= ++ --`,
			ExpectedTokens: []Token{
				New(EQ_OP, "=="),
				New(NE_OP, "!="),
				New(LE_OP, "<="),
				New(GE_OP, ">="),
				New(INCR_OP, "++"),
				New(DECR_OP, "--"),
			},
		},
		{
			Input: `"This is a long string  " nowAnIdentifier "12"`,
			ExpectedTokens: []Token{
				New(STRING_LIT, "This is a long string  "),
				New(IDENT, "nowAnIdentifier"),
				New(STRING_LIT, "12"),
			},
		},
		{
			Input: `let define return if else for in import`,
			ExpectedTokens: []Token{
				New(LET_KEY, "let"),
				New(DEFINE_KEY, "define"),
				New(RETURN_KEY, "return"),
				New(IF_KEY, "if"),
				New(ELSE_KEY, "else"),
				New(FOR_KEY, "for"),
				New(IN_KEY, "in"),
				New(IMPORT_KEY, "import"),
			},
		},
		{
			Input: `int float string boolean void Array`,
			ExpectedTokens: []Token{
				New(INT_TYPE, "int"),
				New(FLOAT_TYPE, "float"),
				New(STRING_TYPE, "string"),
				New(BOOLEAN_TYPE, "boolean"),
				New(VOID_TYPE, "void"),
				New(ARRAY_TYPE, "Array"),
			},
		},
		{
			Input: `1 1.23 true false null`,
			ExpectedTokens: []Token{
				New(INT_LIT, "1"),
				New(FLOAT_LIT, "1.23"),
				New(TRUE_LIT, "true"),
				New(FALSE_LIT, "false"),
				New(NULL_LIT, "null"),
			},
		},
		{
			Input: `
			define main(args: Array<int>): int {
				let a: int = args[0]
				if (a <= 0) {
					return a + 1
				} else {
					let f: int = 1
					for (x in args) {
						f = f * x
					}
					return f
				}
			}
			`,
			ExpectedTokens: []Token{
				New(DEFINE_KEY, "define"),
				New(IDENT, "main"),
				New(LEFT_PAREN, "("),
				New(IDENT, "args"),
				New(COLON_DELIM, ":"),
				New(ARRAY_TYPE, "Array"),
				New(LT_OP, "<"),
				New(INT_TYPE, "int"),
				New(GT_OP, ">"),
				New(RIGHT_PAREN, ")"),
				New(COLON_DELIM, ":"),
				New(INT_TYPE, "int"),
				New(LEFT_BRACE, "{"),
				New(LET_KEY, "let"),
				New(IDENT, "a"),
				New(COLON_DELIM, ":"),
				New(INT_TYPE, "int"),
				New(ASSIGN_OP, "="),
				New(IDENT, "args"),
				New(LEFT_BRACKET, "["),
				New(INT_LIT, "0"),
				New(RIGHT_BRACKET, "]"),
				New(IF_KEY, "if"),
				New(LEFT_PAREN, "("),
				New(IDENT, "a"),
				New(LE_OP, "<="),
				New(INT_LIT, "0"),
				New(RIGHT_PAREN, ")"),
				New(LEFT_BRACE, "{"),
				New(RETURN_KEY, "return"),
				New(IDENT, "a"),
				New(PLUS_OP, "+"),
				New(INT_LIT, "1"),
				New(RIGHT_BRACE, "}"),
				New(ELSE_KEY, "else"),
				New(LEFT_BRACE, "{"),
				New(LET_KEY, "let"),
				New(IDENT, "f"),
				New(COLON_DELIM, ":"),
				New(INT_TYPE, "int"),
				New(ASSIGN_OP, "="),
				New(INT_LIT, "1"),
				New(FOR_KEY, "for"),
				New(LEFT_PAREN, "("),
				New(IDENT, "x"),
				New(IN_KEY, "in"),
				New(IDENT, "args"),
				New(RIGHT_PAREN, ")"),
				New(LEFT_BRACE, "{"),
				New(IDENT, "f"),
				New(ASSIGN_OP, "="),
				New(IDENT, "f"),
				New(MUL_OP, "*"),
				New(IDENT, "x"),
				New(RIGHT_BRACE, "}"),
				New(RETURN_KEY, "return"),
				New(IDENT, "f"),
				New(RIGHT_BRACE, "}"),
				New(RIGHT_BRACE, "}"),
			},
		},
	}

	for _, test := range tests {
		lex := NewLexer(test.Input)

		gotTokens := lex.ConsumeTokens()

		assert.Equal(t, len(test.ExpectedTokens), len(gotTokens))
		for i, token := range test.ExpectedTokens {
			if i >= len(gotTokens) {
				break
			}
			assert.Equal(t, token.Type, gotTokens[i].Type)
			assert.Equal(t, token.Literal, gotTokens[i].Literal)
		}
	}
}

func TestNewLexer_Import(t *testing.T) {
	tests := []TestConsumeToken{
		{
			Input: `import math`,
			ExpectedTokens: []Token{
				New(IMPORT_KEY, "import"),
				New(IDENT, "math"),
			},
		},
		{
			Input: `import random`,
			ExpectedTokens: []Token{
				New(IMPORT_KEY, "import"),
				New(IDENT, "random"),
			},
		},
	}
	for _, test := range tests {
		lex := NewLexer(test.Input)
		gotTokens := lex.ConsumeTokens()
		assert.Equal(t, len(test.ExpectedTokens), len(gotTokens))
		for i, token := range test.ExpectedTokens {
			if i >= len(gotTokens) {
				break
			}
			assert.Equal(t, token.Type, gotTokens[i].Type)
			assert.Equal(t, token.Literal, gotTokens[i].Literal)
		}
	}
}

func TestNewLexer_UnterminatedString(t *testing.T) {
	lex := NewLexer(`"unterminated`)
	tok := lex.NextToken()
	assert.Equal(t, ILLEGAL_TYPE, tok.Type)
}

func TestNewLexer_Comments(t *testing.T) {
	lex := NewLexer("// comment\n1 /* block\ncomment */ 2")
	tokens := lex.ConsumeTokens()
	assert.Equal(t, 2, len(tokens))
	assert.Equal(t, "1", tokens[0].Literal)
	assert.Equal(t, "2", tokens[1].Literal)
}
