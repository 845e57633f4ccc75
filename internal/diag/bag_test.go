package diag

import (
	"testing"

	"wgslkit/internal/source"
)

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	for i := 0; i < 3; i++ {
		ok := b.Add(Diagnostic{Code: SynUnexpectedToken, Severity: SevError})
		if i < 2 && !ok {
			t.Errorf("add %d rejected below limit", i)
		}
		if i == 2 && ok {
			t.Errorf("add beyond limit accepted")
		}
	}
	if b.Len() != 2 {
		t.Errorf("Len = %d, want 2", b.Len())
	}
}

func TestBagZeroMaxIsUnlimited(t *testing.T) {
	b := NewBag(0)
	for i := 0; i < 100; i++ {
		if !b.Add(Diagnostic{Code: SynUnexpectedToken, Severity: SevError}) {
			t.Fatalf("add %d rejected with no limit", i)
		}
	}
	if b.Len() != 100 {
		t.Errorf("Len = %d, want 100", b.Len())
	}
}

func TestBagSortAndDedup(t *testing.T) {
	sp := func(start, end uint32) source.Span { return source.Span{Start: start, End: end} }
	b := NewBag(10)
	b.Add(Diagnostic{Code: SynUnexpectedToken, Severity: SevError, Primary: sp(5, 6)})
	b.Add(Diagnostic{Code: LexUnknownChar, Severity: SevError, Primary: sp(1, 2)})
	b.Add(Diagnostic{Code: SynUnexpectedToken, Severity: SevError, Primary: sp(5, 6)})

	b.Sort()
	b.Dedup()

	if b.Len() != 2 {
		t.Fatalf("Dedup left %d items, want 2", b.Len())
	}
	if b.Items()[0].Code != LexUnknownChar {
		t.Errorf("sort order wrong: %v first", b.Items()[0].Code)
	}
}

func TestCodeID(t *testing.T) {
	if got := LexUnknownChar.ID(); got != "LEX1001" {
		t.Errorf("ID = %q", got)
	}
	if got := SynUnexpectedToken.ID(); got != "SYN2001" {
		t.Errorf("ID = %q", got)
	}
}

func TestHasErrors(t *testing.T) {
	b := NewBag(4)
	b.Add(Diagnostic{Severity: SevWarning})
	if b.HasErrors() {
		t.Errorf("warning counted as error")
	}
	if !b.HasWarnings() {
		t.Errorf("warning not seen")
	}
	b.Add(Diagnostic{Severity: SevError})
	if !b.HasErrors() {
		t.Errorf("error not seen")
	}
}
