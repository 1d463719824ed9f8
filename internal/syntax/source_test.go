package syntax

import "testing"

func TestSourceBasic(t *testing.T) {
	src := newSource("ab")
	src.nextch()

	if src.ch != 'a' || src.chOff != 0 || src.line != 1 || src.col != 1 {
		t.Errorf("got ch=%q off=%d pos=%d:%d, want 'a' 0 1:1", src.ch, src.chOff, src.line, src.col)
	}

	src.nextch()
	if src.ch != 'b' || src.chOff != 1 || src.col != 2 {
		t.Errorf("got ch=%q off=%d col=%d, want 'b' 1 2", src.ch, src.chOff, src.col)
	}

	src.nextch()
	if src.ch != eof || src.chOff != 2 {
		t.Errorf("got ch=%d off=%d, want eof at 2", src.ch, src.chOff)
	}

	// Reading past the end stays at eof.
	src.nextch()
	if src.ch != eof || src.chOff != 2 {
		t.Errorf("got ch=%d off=%d after eof, want eof at 2", src.ch, src.chOff)
	}
}

func TestSourceNewline(t *testing.T) {
	src := newSource("a\nb")
	src.nextch() // a
	src.nextch() // \n
	if src.line != 1 || src.col != 2 {
		t.Errorf("newline at %d:%d, want 1:2", src.line, src.col)
	}
	src.nextch() // b
	if src.ch != 'b' || src.line != 2 || src.col != 1 {
		t.Errorf("got ch=%q pos=%d:%d, want 'b' 2:1", src.ch, src.line, src.col)
	}
	if p := src.pos(); p.Offset() != 2 {
		t.Errorf("offset = %d, want 2", p.Offset())
	}
}

func TestCharClasses(t *testing.T) {
	tests := []struct {
		ch                       rune
		blank, sep, letter, digit bool
	}{
		{' ', true, true, false, false},
		{'\r', true, true, false, false},
		{'\n', true, true, false, false},
		{'\t', false, false, false, false},
		{'*', false, true, false, false},
		{'/', false, true, false, false},
		{'+', false, true, false, false},
		{'-', false, true, false, false},
		{'%', false, true, false, false},
		{',', false, true, false, false},
		{':', false, true, false, false},
		{'=', false, true, false, false},
		{'(', false, true, false, false},
		{')', false, true, false, false},
		{eof, false, true, false, false},
		{'a', false, false, true, false},
		{'Z', false, false, true, false},
		{'_', false, false, false, false},
		{'0', false, false, false, true},
		{'9', false, false, false, true},
		{'@', false, false, false, false},
	}

	for _, tt := range tests {
		if got := isBlank(tt.ch); got != tt.blank {
			t.Errorf("isBlank(%q) = %v", tt.ch, got)
		}
		if got := isSeparator(tt.ch); got != tt.sep {
			t.Errorf("isSeparator(%q) = %v", tt.ch, got)
		}
		if got := isLetter(tt.ch); got != tt.letter {
			t.Errorf("isLetter(%q) = %v", tt.ch, got)
		}
		if got := isDigit(tt.ch); got != tt.digit {
			t.Errorf("isDigit(%q) = %v", tt.ch, got)
		}
	}
}
