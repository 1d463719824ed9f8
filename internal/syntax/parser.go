package syntax

import (
	"errors"
	"fmt"
)

// Parser recognizes the lambda grammar by recursive descent with one token
// of lookahead and records every production in a Tree. Each nonterminal
// has one method that creates its node, picks an alternative from the
// current token, and appends the right-hand side symbols left to right.
//
// A Parser is single use and not safe for concurrent use.
type Parser struct {
	scanner *Scanner

	// Current token (cached from scanner)
	tok Token

	tree    *Tree
	epsilon bool // emit an "ε" leaf for empty alternatives
}

// NewParser creates a Parser for src, positioned on its first token.
func NewParser(src string) (*Parser, error) {
	s, err := NewScanner(src)
	if err != nil {
		return nil, err
	}
	return &Parser{
		scanner: s,
		tok:     s.Token(),
		epsilon: true,
	}, nil
}

// Parse parses src starting from S.
func Parse(src string) (*Tree, error) {
	p, err := NewParser(src)
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

// SetEpsilonNodes controls whether an empty alternative contributes a
// single "ε" child (the default) or no child at all.
func (p *Parser) SetEpsilonNodes(enabled bool) {
	p.epsilon = enabled
}

// Parse parses a complete lambda expression and returns its parse tree.
func (p *Parser) Parse() (*Tree, error) {
	return p.ParseFrom(SymS)
}

// ParseFrom parses the input as a derivation of the nonterminal sym,
// e.g. SymE to parse a bare expression without the lambda header.
// The whole input must be consumed. No partial tree is returned on error.
func (p *Parser) ParseFrom(sym string) (*Tree, error) {
	if p.tree != nil {
		return nil, errors.New("syntax: parser already used")
	}
	rule := p.rule(sym)
	if rule == nil {
		return nil, fmt.Errorf("syntax: unknown nonterminal %q", sym)
	}

	p.tree = newTree()
	root, err := rule()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != End {
		return nil, &SyntaxError{Pos: p.tok.Pos, Tok: p.tok, Msg: "unexpected " + p.tok.String() + " after expression"}
	}
	p.tree.root = root
	return p.tree, nil
}

// rule returns the method expanding sym, or nil.
func (p *Parser) rule(sym string) func() (NodeID, error) {
	switch sym {
	case SymS:
		return p.lambdaExpr
	case SymV:
		return p.params
	case SymVp:
		return p.paramsTail
	case SymSp:
		return p.body
	case SymE:
		return p.orExpr
	case SymEp:
		return p.orTail
	case SymO:
		return p.andExpr
	case SymOp:
		return p.andTail
	case SymA:
		return p.notExpr
	case SymN:
		return p.eqExpr
	case SymNp:
		return p.eqTail
	case SymQ:
		return p.sumExpr
	case SymQp:
		return p.sumTail
	case SymT:
		return p.termExpr
	case SymTp:
		return p.termTail
	case SymF:
		return p.signed
	case SymC:
		return p.operand
	}
	return nil
}

// ----------------------------------------------------------------------------
// Token navigation

// next advances to the next token.
func (p *Parser) next() error {
	if err := p.scanner.Next(); err != nil {
		return err
	}
	p.tok = p.scanner.Token()
	return nil
}

// consume appends the current token to n as a terminal leaf and advances.
func (p *Parser) consume(n NodeID) error {
	p.tree.attach(n, p.tree.add(p.tok.Spelling(), Terminal))
	return p.next()
}

// expect is like consume but first checks the token kind.
func (p *Parser) expect(n NodeID, rule string, kind Kind) error {
	if p.tok.Kind != kind {
		return &SyntaxError{
			Pos:  p.tok.Pos,
			Tok:  p.tok,
			Rule: rule,
			Msg:  fmt.Sprintf("expected %q, found %s", kind.String(), p.tok),
		}
	}
	return p.consume(n)
}

// sub expands a nonterminal and appends its node to n.
func (p *Parser) sub(n NodeID, rule func() (NodeID, error)) error {
	child, err := rule()
	if err != nil {
		return err
	}
	p.tree.attach(n, child)
	return nil
}

// empty records an ε alternative of n.
func (p *Parser) empty(n NodeID) {
	if p.epsilon {
		p.tree.attach(n, p.tree.add(EpsilonLabel, Epsilon))
	}
}

// unexpected reports that the current token starts no alternative of rule.
func (p *Parser) unexpected(rule string) error {
	return &SyntaxError{Pos: p.tok.Pos, Tok: p.tok, Rule: rule, Msg: "unexpected " + p.tok.String()}
}

// ----------------------------------------------------------------------------
// Header

// lambdaExpr parses S -> "lambda" V ":" S'
func (p *Parser) lambdaExpr() (NodeID, error) {
	n := p.tree.add(SymS, Nonterminal)
	if p.tok.Kind != Lambda {
		return NoNode, p.unexpected(SymS)
	}
	if err := p.consume(n); err != nil {
		return NoNode, err
	}
	if err := p.sub(n, p.params); err != nil {
		return NoNode, err
	}
	if err := p.expect(n, SymS, Colon); err != nil {
		return NoNode, err
	}
	if err := p.sub(n, p.body); err != nil {
		return NoNode, err
	}
	return n, nil
}

// params parses V -> Variable V' | ε
func (p *Parser) params() (NodeID, error) {
	n := p.tree.add(SymV, Nonterminal)
	switch p.tok.Kind {
	case Variable:
		if err := p.consume(n); err != nil {
			return NoNode, err
		}
		if err := p.sub(n, p.paramsTail); err != nil {
			return NoNode, err
		}
	case Colon:
		p.empty(n)
	default:
		return NoNode, p.unexpected(SymV)
	}
	return n, nil
}

// paramsTail parses V' -> "," V | ε
func (p *Parser) paramsTail() (NodeID, error) {
	n := p.tree.add(SymVp, Nonterminal)
	switch p.tok.Kind {
	case Comma:
		if err := p.consume(n); err != nil {
			return NoNode, err
		}
		if err := p.sub(n, p.params); err != nil {
			return NoNode, err
		}
	case Colon:
		p.empty(n)
	default:
		return NoNode, p.unexpected(SymVp)
	}
	return n, nil
}

// body parses S' -> S | E
func (p *Parser) body() (NodeID, error) {
	n := p.tree.add(SymSp, Nonterminal)
	switch {
	case p.tok.Kind == Lambda:
		if err := p.sub(n, p.lambdaExpr); err != nil {
			return NoNode, err
		}
	case startsExpr(p.tok):
		if err := p.sub(n, p.orExpr); err != nil {
			return NoNode, err
		}
	default:
		return NoNode, p.unexpected(SymSp)
	}
	return n, nil
}

// ----------------------------------------------------------------------------
// Boolean layer

// orExpr parses E -> O E'
func (p *Parser) orExpr() (NodeID, error) {
	n := p.tree.add(SymE, Nonterminal)
	if !startsExpr(p.tok) {
		return NoNode, p.unexpected(SymE)
	}
	if err := p.sub(n, p.andExpr); err != nil {
		return NoNode, err
	}
	if err := p.sub(n, p.orTail); err != nil {
		return NoNode, err
	}
	return n, nil
}

// orTail parses E' -> "or" E | ε
func (p *Parser) orTail() (NodeID, error) {
	n := p.tree.add(SymEp, Nonterminal)
	switch {
	case p.tok.Is(Or):
		if err := p.consume(n); err != nil {
			return NoNode, err
		}
		if err := p.sub(n, p.orExpr); err != nil {
			return NoNode, err
		}
	case endsOr(p.tok):
		p.empty(n)
	default:
		return NoNode, p.unexpected(SymEp)
	}
	return n, nil
}

// andExpr parses O -> A O'
func (p *Parser) andExpr() (NodeID, error) {
	n := p.tree.add(SymO, Nonterminal)
	if !startsExpr(p.tok) {
		return NoNode, p.unexpected(SymO)
	}
	if err := p.sub(n, p.notExpr); err != nil {
		return NoNode, err
	}
	if err := p.sub(n, p.andTail); err != nil {
		return NoNode, err
	}
	return n, nil
}

// andTail parses O' -> "and" O | ε
func (p *Parser) andTail() (NodeID, error) {
	n := p.tree.add(SymOp, Nonterminal)
	switch {
	case p.tok.Is(And):
		if err := p.consume(n); err != nil {
			return NoNode, err
		}
		if err := p.sub(n, p.andExpr); err != nil {
			return NoNode, err
		}
	case endsAnd(p.tok):
		p.empty(n)
	default:
		return NoNode, p.unexpected(SymOp)
	}
	return n, nil
}

// notExpr parses A -> "not" N | N
func (p *Parser) notExpr() (NodeID, error) {
	n := p.tree.add(SymA, Nonterminal)
	switch {
	case p.tok.Is(Not):
		if err := p.consume(n); err != nil {
			return NoNode, err
		}
		if err := p.sub(n, p.eqExpr); err != nil {
			return NoNode, err
		}
	case startsOperand(p.tok):
		if err := p.sub(n, p.eqExpr); err != nil {
			return NoNode, err
		}
	default:
		return NoNode, p.unexpected(SymA)
	}
	return n, nil
}

// eqExpr parses N -> Q N'
func (p *Parser) eqExpr() (NodeID, error) {
	n := p.tree.add(SymN, Nonterminal)
	if !startsOperand(p.tok) {
		return NoNode, p.unexpected(SymN)
	}
	if err := p.sub(n, p.sumExpr); err != nil {
		return NoNode, err
	}
	if err := p.sub(n, p.eqTail); err != nil {
		return NoNode, err
	}
	return n, nil
}

// eqTail parses N' -> "==" N | ε
func (p *Parser) eqTail() (NodeID, error) {
	n := p.tree.add(SymNp, Nonterminal)
	switch {
	case p.tok.Is(Eq):
		if err := p.consume(n); err != nil {
			return NoNode, err
		}
		if err := p.sub(n, p.eqExpr); err != nil {
			return NoNode, err
		}
	case endsEq(p.tok):
		p.empty(n)
	default:
		return NoNode, p.unexpected(SymNp)
	}
	return n, nil
}

// ----------------------------------------------------------------------------
// Arithmetic layer

// sumExpr parses Q -> T Q'
func (p *Parser) sumExpr() (NodeID, error) {
	n := p.tree.add(SymQ, Nonterminal)
	if !startsOperand(p.tok) {
		return NoNode, p.unexpected(SymQ)
	}
	if err := p.sub(n, p.termExpr); err != nil {
		return NoNode, err
	}
	if err := p.sub(n, p.sumTail); err != nil {
		return NoNode, err
	}
	return n, nil
}

// sumTail parses Q' -> "+" Q | "-" Q | ε
func (p *Parser) sumTail() (NodeID, error) {
	n := p.tree.add(SymQp, Nonterminal)
	switch {
	case p.tok.Is(Add), p.tok.Is(Sub):
		if err := p.consume(n); err != nil {
			return NoNode, err
		}
		if err := p.sub(n, p.sumExpr); err != nil {
			return NoNode, err
		}
	case endsSum(p.tok):
		p.empty(n)
	default:
		return NoNode, p.unexpected(SymQp)
	}
	return n, nil
}

// termExpr parses T -> F T'
func (p *Parser) termExpr() (NodeID, error) {
	n := p.tree.add(SymT, Nonterminal)
	if !startsOperand(p.tok) {
		return NoNode, p.unexpected(SymT)
	}
	if err := p.sub(n, p.signed); err != nil {
		return NoNode, err
	}
	if err := p.sub(n, p.termTail); err != nil {
		return NoNode, err
	}
	return n, nil
}

// termTail parses T' -> "*" T | "/" T | "%" T | ε
func (p *Parser) termTail() (NodeID, error) {
	n := p.tree.add(SymTp, Nonterminal)
	switch {
	case p.tok.Is(Mul), p.tok.Is(Div), p.tok.Is(Mod):
		if err := p.consume(n); err != nil {
			return NoNode, err
		}
		if err := p.sub(n, p.termExpr); err != nil {
			return NoNode, err
		}
	case endsTerm(p.tok):
		p.empty(n)
	default:
		return NoNode, p.unexpected(SymTp)
	}
	return n, nil
}

// signed parses F -> "+" C | "-" C | C
func (p *Parser) signed() (NodeID, error) {
	n := p.tree.add(SymF, Nonterminal)
	switch {
	case p.tok.Is(Add), p.tok.Is(Sub):
		if err := p.consume(n); err != nil {
			return NoNode, err
		}
		if err := p.sub(n, p.operand); err != nil {
			return NoNode, err
		}
	case p.tok.Kind == Variable, p.tok.Kind == Constant, p.tok.Kind == LParen:
		if err := p.sub(n, p.operand); err != nil {
			return NoNode, err
		}
	default:
		return NoNode, p.unexpected(SymF)
	}
	return n, nil
}

// operand parses C -> Variable | Number | "True" | "False" | "(" S' ")"
func (p *Parser) operand() (NodeID, error) {
	n := p.tree.add(SymC, Nonterminal)
	switch p.tok.Kind {
	case Variable, Constant:
		if err := p.consume(n); err != nil {
			return NoNode, err
		}
	case LParen:
		if err := p.consume(n); err != nil {
			return NoNode, err
		}
		if err := p.sub(n, p.body); err != nil {
			return NoNode, err
		}
		if err := p.expect(n, SymC, RParen); err != nil {
			return NoNode, err
		}
	default:
		return NoNode, p.unexpected(SymC)
	}
	return n, nil
}
