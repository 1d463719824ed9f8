package syntax

import "strings"

// Scanner turns source text into tokens with one token of lookahead.
// The first error is sticky: once Next fails, every later call returns
// the same error.
type Scanner struct {
	source // embedded character reader

	tok Token // current token
	err error // first lexical error

	// Literal accumulation
	litBuf strings.Builder
}

// NewScanner creates a Scanner positioned on the first token of src.
// An empty src is a lexical error.
func NewScanner(src string) (*Scanner, error) {
	if src == "" {
		return nil, &LexicalError{Pos: NewPos(0, 1, 1), Char: eof, Msg: "empty source"}
	}
	s := &Scanner{source: newSource(src)}
	s.nextch()
	if err := s.Next(); err != nil {
		return nil, err
	}
	return s, nil
}

// Next advances to the next token.
func (s *Scanner) Next() error {
	if s.err != nil {
		return s.err
	}

	s.skipBlanks()
	pos := s.pos()

	switch {
	case s.ch == eof:
		s.tok = Token{Kind: End, Pos: pos}

	case isSeparator(s.ch):
		s.scanSeparator(pos)

	default:
		s.scanRun(pos)
	}

	return s.err
}

// Token returns the current token without advancing.
func (s *Scanner) Token() Token {
	return s.tok
}

// HasMoreSymbols reports whether the raw cursor has not yet run past the
// end of the source.
func (s *Scanner) HasMoreSymbols() bool {
	return s.ch != eof
}

// Err returns the first lexical error, or nil.
func (s *Scanner) Err() error {
	return s.err
}

// skipBlanks skips space, carriage return, and newline.
func (s *Scanner) skipBlanks() {
	for isBlank(s.ch) {
		s.nextch()
	}
}

// fail records a lexical error at pos.
func (s *Scanner) fail(pos Pos, ch rune, msg string) {
	s.err = &LexicalError{Pos: pos, Char: ch, Msg: msg}
}

// scanSeparator scans a one-character symbol or one of the doubled
// operators "==" and "//".
func (s *Scanner) scanSeparator(pos Pos) {
	ch := s.ch
	s.nextch()

	switch ch {
	case ',':
		s.tok = Token{Kind: Comma, Pos: pos}
	case ':':
		s.tok = Token{Kind: Colon, Pos: pos}
	case '(':
		s.tok = Token{Kind: LParen, Pos: pos}
	case ')':
		s.tok = Token{Kind: RParen, Pos: pos}
	case '*':
		s.tok = Token{Kind: Operator, Op: Mul, Pos: pos}
	case '+':
		s.tok = Token{Kind: Operator, Op: Add, Pos: pos}
	case '-':
		s.tok = Token{Kind: Operator, Op: Sub, Pos: pos}
	case '%':
		s.tok = Token{Kind: Operator, Op: Mod, Pos: pos}
	case '=':
		if s.ch != '=' {
			s.fail(pos, ch, `malformed operator (want "==")`)
			return
		}
		s.nextch()
		s.tok = Token{Kind: Operator, Op: Eq, Pos: pos}
	case '/':
		if s.ch != '/' {
			s.fail(pos, ch, `malformed operator (want "//")`)
			return
		}
		s.nextch()
		s.tok = Token{Kind: Operator, Op: Div, Pos: pos}
	default:
		s.fail(pos, ch, "unknown separator")
	}
}

// scanRun scans an identifier, keyword, or number: a run of letters and
// digits up to the next separator. A run that starts with a digit is a
// Number holding the raw text.
func (s *Scanner) scanRun(pos Pos) {
	first := s.ch
	s.litBuf.Reset()

	for !isSeparator(s.ch) {
		if !isLetter(s.ch) && !isDigit(s.ch) {
			s.fail(s.pos(), s.ch, "unexpected character")
			return
		}
		s.litBuf.WriteByte(byte(s.ch))
		s.nextch()
	}

	lit := s.litBuf.String()
	if isDigit(first) {
		s.tok = Token{Kind: Constant, Const: Number, Text: lit, Pos: pos}
		return
	}
	s.tok = lookupKeyword(lit, pos)
}
