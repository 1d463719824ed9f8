package syntax

// Nonterminal labels as they appear in the parse tree.
const (
	SymS  = "S"  // S  -> "lambda" V ":" S'
	SymV  = "V"  // V  -> Variable V' | ε
	SymVp = "V'" // V' -> "," V | ε
	SymSp = "S'" // S' -> S | E
	SymE  = "E"  // E  -> O E'
	SymEp = "E'" // E' -> "or" E | ε
	SymO  = "O"  // O  -> A O'
	SymOp = "O'" // O' -> "and" O | ε
	SymA  = "A"  // A  -> "not" N | N
	SymN  = "N"  // N  -> Q N'
	SymNp = "N'" // N' -> "==" N | ε
	SymQ  = "Q"  // Q  -> T Q'
	SymQp = "Q'" // Q' -> "+" Q | "-" Q | ε
	SymT  = "T"  // T  -> F T'
	SymTp = "T'" // T' -> "*" T | "/" T | "%" T | ε
	SymF  = "F"  // F  -> "+" C | "-" C | C
	SymC  = "C"  // C  -> Variable | Number | "True" | "False" | "(" S' ")"
)

// EpsilonLabel labels the single child an empty alternative contributes.
const EpsilonLabel = "ε"

// Nonterminals lists every nonterminal in grammar order.
var Nonterminals = []string{
	SymS, SymV, SymVp, SymSp, SymE, SymEp, SymO, SymOp, SymA,
	SymN, SymNp, SymQ, SymQp, SymT, SymTp, SymF, SymC,
}

// Lookahead sets. The grammar is LL(1): within one nonterminal the sets
// selecting different alternatives never overlap.

// startsOperand reports whether t can begin N, Q, T or F.
func startsOperand(t Token) bool {
	switch t.Kind {
	case Variable, Constant, LParen:
		return true
	}
	return t.Is(Add) || t.Is(Sub)
}

// startsExpr reports whether t can begin E, O or A.
func startsExpr(t Token) bool {
	return startsOperand(t) || t.Is(Not)
}

// endsOr reports whether t may follow a complete E (selects E' -> ε).
func endsOr(t Token) bool {
	return t.Kind == RParen || t.Kind == End
}

// endsAnd selects O' -> ε.
func endsAnd(t Token) bool {
	return endsOr(t) || t.Is(Or)
}

// endsEq selects N' -> ε.
func endsEq(t Token) bool {
	return endsAnd(t) || t.Is(And)
}

// endsSum selects Q' -> ε.
func endsSum(t Token) bool {
	return endsEq(t) || t.Is(Eq)
}

// endsTerm selects T' -> ε.
func endsTerm(t Token) bool {
	return endsSum(t) || t.Is(Add) || t.Is(Sub)
}
