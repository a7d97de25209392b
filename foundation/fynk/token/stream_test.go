package token

import "testing"

func sampleTokens() []Token {
	return []Token{
		New(INT, int64(12), 1, 0),
		New(PLUS, "+", 1, 2),
		New(INT, int64(3), 1, 3),
		New(SEMICOLON, ";", 1, 4),
		New(EOF, "", 1, 5),
	}
}

func TestStreamStartsAtFirstToken(t *testing.T) {
	s := NewStream("main.fy", sampleTokens())

	if s.Index() != 0 {
		t.Errorf("Expected index 0, got %d", s.Index())
	}
	if got := s.Current(); got.Kind != INT || got.Int() != 12 {
		t.Errorf("Expected INT(12), got %s", got)
	}
	if got := s.Peek(1); got.Kind != PLUS {
		t.Errorf("Expected PLUS, got %s", got)
	}
	if s.FilePath() != "main.fy" {
		t.Errorf("Expected main.fy, got %s", s.FilePath())
	}
}

func TestStreamLookaheadPastEnd(t *testing.T) {
	s := NewStream("main.fy", sampleTokens())

	if got := s.Peek(10); got != EndOfStream() {
		t.Errorf("Expected synthetic EOF, got %s", got)
	}
	if got := s.Peek(-1); got != EndOfStream() {
		t.Errorf("Expected synthetic EOF for negative lookahead, got %s", got)
	}

	for i := 0; i < 20; i++ {
		s.Advance()
	}
	if s.Index() != s.Len() {
		t.Errorf("Expected index to stop at %d, got %d", s.Len(), s.Index())
	}
	got := s.Current()
	if got.Kind != EOF || got.Line != -1 || got.Column != -1 {
		t.Errorf("Expected EOF at -1:-1, got %s", got)
	}
}

func TestStreamIndexNeverDecreases(t *testing.T) {
	s := NewStream("", sampleTokens())
	last := s.Index()
	for i := 0; i < 8; i++ {
		s.Advance()
		if s.Index() < last {
			t.Fatalf("Index decreased from %d to %d", last, s.Index())
		}
		last = s.Index()
	}
}

func TestStreamIsImmutable(t *testing.T) {
	toks := sampleTokens()
	s := NewStream("", toks)
	toks[0] = New(STRING, "changed", 9, 9)

	if s.Current().Kind != INT {
		t.Error("Expected stream to own its tokens")
	}

	out := s.Tokens()
	out[0] = New(STRING, "changed", 9, 9)
	if s.Current().Kind != INT {
		t.Error("Expected Tokens() to return a copy")
	}
	if len(out) != s.Len() {
		t.Errorf("Expected %d tokens, got %d", s.Len(), len(out))
	}
}

func TestEmptyStream(t *testing.T) {
	s := NewStream("", nil)
	if s.Current() != EndOfStream() {
		t.Errorf("Expected synthetic EOF, got %s", s.Current())
	}
	s.Advance()
	if s.Index() != 0 {
		t.Errorf("Expected index 0, got %d", s.Index())
	}
}

func TestEndOfStreamIsFresh(t *testing.T) {
	s := NewStream("a.fy", nil)

	eof := EndOfStream()
	eof.Line, eof.Column = 3, 4

	again := s.Current()
	if again.Kind != EOF || again.Line != -1 || again.Column != -1 {
		t.Errorf("Expected EOF at -1:-1, got %s", again)
	}
	if again != EndOfStream() {
		t.Errorf("Expected %s, got %s", EndOfStream(), again)
	}
}
