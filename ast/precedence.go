package ast

// Precedence ranks binding power for the Pratt parser, lowest first.
type Precedence int

const (
	Lowest Precedence = iota
	AssignPrec
	ComparisonPrec
	SumPrec
	ProductPrec
	PrefixPrec
	PostfixPrec
	CallPrec
)

// Precedences maps each infix/postfix operator token literal to its
// binding power. Tokens absent from this table default to Lowest, which
// stops the Pratt loop.
var Precedences = map[string]Precedence{
	"=":  AssignPrec,
	"==": ComparisonPrec,
	"!=": ComparisonPrec,
	"<":  ComparisonPrec,
	"<=": ComparisonPrec,
	">":  ComparisonPrec,
	">=": ComparisonPrec,
	"+":  SumPrec,
	"-":  SumPrec,
	"*":  ProductPrec,
	"/":  ProductPrec,
	"%":  ProductPrec,
	"++": PostfixPrec,
	"--": PostfixPrec,
	"(":  CallPrec,
	".":  CallPrec,
}
