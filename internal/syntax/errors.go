package syntax

import "fmt"

// LexicalError reports a character the scanner cannot turn into a token.
type LexicalError struct {
	Pos  Pos
	Char rune // offending character, eof if the input ended
	Msg  string
}

func (e *LexicalError) Error() string {
	if e.Char == eof {
		return fmt.Sprintf("%s: %s at offset %d", e.Pos, e.Msg, e.Pos.Offset())
	}
	return fmt.Sprintf("%s: %s %q at offset %d", e.Pos, e.Msg, e.Char, e.Pos.Offset())
}

// SyntaxError reports a token that no production of Rule can start with.
type SyntaxError struct {
	Pos  Pos
	Tok  Token
	Rule string // nonterminal being expanded, empty after the start symbol returned
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.Rule == "" {
		return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
	}
	return fmt.Sprintf("%s: %s in %s", e.Pos, e.Msg, e.Rule)
}
