package grammar

import "testing"

func collectKinds(src string) []TokenKind {
	lex := NewLexer(src)
	var kinds []TokenKind
	for {
		tok := lex.Next()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == TokEOF {
			return kinds
		}
	}
}

func TestLexerKeywordsAndPunctuation(t *testing.T) {
	got := collectKinds("mnet { machine state initial final -> ; }")
	want := []TokenKind{
		TokKwMNet, TokLBrace, TokKwMachine, TokKwState, TokKwInitial, TokKwFinal,
		TokRArrow, TokSemi, TokRBrace, TokEOF,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexerSingleCharIdentifier(t *testing.T) {
	lex := NewLexer("S")
	tok := lex.Next()
	if tok.Kind != TokIdent || tok.Ident != 'S' {
		t.Fatalf("token = %+v, want TokIdent 'S'", tok)
	}
	if len(lex.Diags()) != 0 {
		t.Errorf("unexpected diagnostics: %v", lex.Diags())
	}
}

func TestLexerNumber(t *testing.T) {
	lex := NewLexer("042")
	tok := lex.Next()
	if tok.Kind != TokNumber || tok.Number != 42 {
		t.Fatalf("token = %+v, want TokNumber 42", tok)
	}
}

// spec.md §6.1: identifiers longer than one character are a lexical
// error, not silently truncated.
func TestLexerOverlongIdentifierIsLexicalError(t *testing.T) {
	lex := NewLexer("foo")
	tok := lex.Next()
	if tok.Kind != TokInvalid {
		t.Fatalf("token = %+v, want TokInvalid", tok)
	}
	diags := lex.Diags()
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", len(diags), diags)
	}
	if diags[0].Loc.Row != 1 || diags[0].Loc.Col != 1 {
		t.Errorf("diag location = %+v, want row 1 col 1", diags[0].Loc)
	}
}

// spec.md §6.1's IDENT is ASCII-only; a non-ASCII letter is not an
// identifier character and must fall through to the unrecognised-character
// diagnostic rather than being accepted as a one-rune identifier.
func TestLexerNonASCIILetterIsUnrecognisedCharacter(t *testing.T) {
	lex := NewLexer("Σ")
	tok := lex.Next()
	if tok.Kind != TokInvalid {
		t.Fatalf("token = %+v, want TokInvalid", tok)
	}
	diags := lex.Diags()
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", len(diags), diags)
	}
}

func TestLexerUnrecognisedCharacter(t *testing.T) {
	lex := NewLexer("#")
	tok := lex.Next()
	if tok.Kind != TokInvalid {
		t.Fatalf("token = %+v, want TokInvalid", tok)
	}
	if len(lex.Diags()) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(lex.Diags()))
	}
}

func TestLexerTracksRowColumnAcrossNewlines(t *testing.T) {
	lex := NewLexer("S\nT")
	first := lex.Next()
	if first.Loc != (Location{Row: 1, Col: 1}) {
		t.Errorf("first token loc = %+v, want {1 1}", first.Loc)
	}
	second := lex.Next()
	if second.Loc != (Location{Row: 2, Col: 1}) {
		t.Errorf("second token loc = %+v, want {2 1}", second.Loc)
	}
}

func TestLexerWhitespaceIsInsignificant(t *testing.T) {
	a := collectKinds("mnet{}")
	b := collectKinds("  mnet \t {\n}\r\n ")
	if len(a) != len(b) {
		t.Fatalf("kind counts differ: %v vs %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("kind %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}
