package syntax

// eof is the end-of-input sentinel held in source.ch.
const eof = -1

// source is a byte reader with position tracking. Input is treated as
// ASCII; any byte outside the character classes below is rejected by the
// scanner rather than decoded.
type source struct {
	buf string // immutable for the scanner's lifetime

	// Position tracking
	line uint32 // line of ch (1-based)
	col  uint32 // column of ch (1-based, byte offset)

	// Current state
	ch    rune // current character, eof past the end
	chOff int  // byte offset of ch
	offs  int  // byte offset of the next character to read
}

// newSource creates a source positioned before the first character.
// The caller reads it with nextch.
func newSource(buf string) source {
	return source{
		buf:  buf,
		line: 1,
		col:  0, // incremented to 1 by the first nextch()
		ch:   eof,
	}
}

// nextch reads the next character and updates the position.
// Sets s.ch to eof once the buffer is exhausted.
//
// (line, col) always refers to s.ch after nextch() returns.
func (s *source) nextch() {
	if s.ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}

	if s.offs >= len(s.buf) {
		s.ch = eof
		s.chOff = len(s.buf)
		return
	}

	s.ch = rune(s.buf[s.offs])
	s.chOff = s.offs
	s.offs++
}

// pos returns the position of the current character.
func (s *source) pos() Pos {
	return NewPos(s.chOff, s.line, s.col)
}

// Character classification helpers

// isBlank reports whether r is skipped between tokens.
func isBlank(r rune) bool {
	return r == ' ' || r == '\r' || r == '\n'
}

// isSeparator reports whether r ends an identifier or number run.
func isSeparator(r rune) bool {
	switch r {
	case '*', '/', '+', '-', '%', ',', ':', '=', '(', ')', eof:
		return true
	}
	return isBlank(r)
}

// isLetter reports whether r is an ASCII letter (a-z, A-Z).
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

// isDigit reports whether r is a decimal digit (0-9).
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
