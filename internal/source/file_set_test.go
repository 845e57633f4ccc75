package source

import (
	"testing"
)

func TestAddVirtualAndGet(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("shader.wgsl", []byte("fn main() {}\n"))

	f := fs.Get(id)
	if f.Path != "shader.wgsl" {
		t.Errorf("path = %q, want shader.wgsl", f.Path)
	}
	if f.Flags&FileVirtual == 0 {
		t.Errorf("expected FileVirtual flag")
	}
	if len(f.LineIdx) != 1 {
		t.Errorf("line index = %v, want one newline entry", f.LineIdx)
	}
}

func TestReplaceContentGetsNewID(t *testing.T) {
	fs := NewFileSet()
	first := fs.AddVirtual("tab0.wgsl", []byte("var a: f32;"))
	second := fs.AddVirtual("tab0.wgsl", []byte("var b: f32;"))

	if first == second {
		t.Fatalf("content replacement must produce a fresh FileID")
	}
	latest, ok := fs.GetLatest("tab0.wgsl")
	if !ok || latest != second {
		t.Errorf("GetLatest = (%v, %v), want (%v, true)", latest, ok, second)
	}
	// The original buffer must stay intact.
	if got := string(fs.Get(first).Content); got != "var a: f32;" {
		t.Errorf("first buffer mutated: %q", got)
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.wgsl", []byte("ab\ncd\nef"))

	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{1, LineCol{1, 2}},
		{2, LineCol{1, 3}}, // the newline byte ends line 1
		{3, LineCol{2, 1}},
		{4, LineCol{2, 2}},
		{5, LineCol{2, 3}},
		{6, LineCol{3, 1}},
		{7, LineCol{3, 2}},
	}
	for _, tc := range cases {
		start, _ := fs.Resolve(Span{File: id, Start: tc.off, End: tc.off})
		if start != tc.want {
			t.Errorf("Resolve(%d) = %+v, want %+v", tc.off, start, tc.want)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.wgsl", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	cases := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
	}
	for _, tc := range cases {
		if got := f.GetLine(tc.line); got != tc.want {
			t.Errorf("GetLine(%d) = %q, want %q", tc.line, got, tc.want)
		}
	}
}

func TestNormalizeCRLF(t *testing.T) {
	out, changed := normalizeCRLF([]byte("a\r\nb\rc\n"))
	if !changed {
		t.Fatalf("expected change")
	}
	if string(out) != "a\nb\rc\n" {
		t.Errorf("normalizeCRLF = %q", out)
	}

	out, changed = normalizeCRLF([]byte("plain"))
	if changed || string(out) != "plain" {
		t.Errorf("no-op case changed: %q %v", out, changed)
	}
}

func TestRemoveBOM(t *testing.T) {
	out, had := removeBOM([]byte{0xEF, 0xBB, 0xBF, 'x'})
	if !had || string(out) != "x" {
		t.Errorf("removeBOM = %q, %v", out, had)
	}
}

func TestSpanCoverAndContains(t *testing.T) {
	a := Span{File: 0, Start: 3, End: 7}
	b := Span{File: 0, Start: 5, End: 12}

	c := a.Cover(b)
	if c.Start != 3 || c.End != 12 {
		t.Errorf("Cover = %v", c)
	}
	if !c.Contains(3) || !c.Contains(11) || c.Contains(12) {
		t.Errorf("Contains is not half-open over %v", c)
	}
}
