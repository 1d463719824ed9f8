// Package syntax implements lexical and syntactic analysis for lambda
// expressions of the form "lambda x, y: <body>".
package syntax

import "fmt"

// Kind represents the type of a lexical token.
type Kind uint8

const (
	End      Kind = iota // end of input
	Lambda               // lambda
	Colon                // :
	Comma                // ,
	LParen               // (
	RParen               // )
	Variable             // identifier: x, var92
	Operator             // operator (used with Operation)
	Constant             // literal value (used with Const)

	kindCount
)

// kindNames maps token kinds to their string representation.
var kindNames = [...]string{
	End:      "End",
	Lambda:   "lambda",
	Colon:    ":",
	Comma:    ",",
	LParen:   "(",
	RParen:   ")",
	Variable: "Variable",
	Operator: "Operator",
	Constant: "Constant",
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Operation identifies an operator token.
type Operation uint8

const (
	Add Operation = iota // +
	Sub                  // -
	Mul                  // *
	Div                  // //
	Mod                  // %
	And                  // and
	Or                   // or
	Eq                   // ==
	Not                  // not

	opCount
)

// opSpellings holds the canonical spelling of each operation.
var opSpellings = [...]string{
	Add: "+",
	Sub: "-",
	Mul: "*",
	Div: "//",
	Mod: "%",
	And: "and",
	Or:  "or",
	Eq:  "==",
	Not: "not",
}

// String returns the canonical spelling of the operation.
func (op Operation) String() string {
	if op < opCount {
		return opSpellings[op]
	}
	return fmt.Sprintf("op(%d)", op)
}

// Const identifies a constant token.
type Const uint8

const (
	True   Const = iota // True
	False               // False
	Number              // raw digit run, never converted
)

// String returns the name of the constant kind.
func (c Const) String() string {
	switch c {
	case True:
		return "True"
	case False:
		return "False"
	case Number:
		return "Number"
	}
	return fmt.Sprintf("const(%d)", c)
}

// Token is a single lexical token. Op is meaningful only for Operator
// tokens, Const only for Constant tokens, and Text only for Variable
// tokens and Number constants.
type Token struct {
	Kind  Kind
	Op    Operation
	Const Const
	Text  string
	Pos   Pos // start of the token
}

// Spelling returns the terminal spelling used for parse tree leaves:
// keywords and symbols in canonical form ("//" for division, "==" for
// equality), identifiers and numbers as written.
func (t Token) Spelling() string {
	switch t.Kind {
	case End:
		return ""
	case Variable:
		return t.Text
	case Operator:
		return t.Op.String()
	case Constant:
		if t.Const == Number {
			return t.Text
		}
		return t.Const.String()
	}
	return t.Kind.String()
}

// String describes the token for diagnostics, e.g. `Operator "=="`.
func (t Token) String() string {
	switch t.Kind {
	case End:
		return "End"
	case Variable, Operator, Constant:
		return fmt.Sprintf("%s %q", t.Kind, t.Spelling())
	}
	return fmt.Sprintf("%q", t.Spelling())
}

// Is reports whether t is the operator op.
func (t Token) Is(op Operation) bool {
	return t.Kind == Operator && t.Op == op
}

// keywords maps reserved words to their token. The Pos field is left
// zero and filled in by lookupKeyword.
var keywords = map[string]Token{
	"lambda": {Kind: Lambda},
	"not":    {Kind: Operator, Op: Not},
	"and":    {Kind: Operator, Op: And},
	"or":     {Kind: Operator, Op: Or},
	"True":   {Kind: Constant, Const: True},
	"False":  {Kind: Constant, Const: False},
}

// lookupKeyword returns the token for an identifier-shaped run starting at
// pos: the keyword token if the text is reserved, otherwise a Variable.
func lookupKeyword(text string, pos Pos) Token {
	if tok, ok := keywords[text]; ok {
		tok.Pos = pos
		return tok
	}
	return Token{Kind: Variable, Text: text, Pos: pos}
}
