package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"wgslkit/internal/diag"
	"wgslkit/internal/diagfmt"
	"wgslkit/internal/lexer"
	"wgslkit/internal/parser"
	"wgslkit/internal/source"
	"wgslkit/internal/syntax"
)

func parseForDump(t *testing.T, input string) (*syntax.Tree, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("dump.wgsl", []byte(input)))
	bag := diag.NewBag(0)
	adapter := &lexer.ReporterAdapter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: adapter.Reporter()})
	res := parser.ParseFile(lx, parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
	return res.Tree, fs
}

func TestFormatTreePretty(t *testing.T) {
	tree, fs := parseForDump(t, "var x : f32;")
	var buf bytes.Buffer
	if err := diagfmt.FormatTreePretty(&buf, tree, fs); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Program", "GlobalVarDecl", "TypeRef", `"f32"`, "└─"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
}

func TestFormatTreeJSON(t *testing.T) {
	tree, _ := parseForDump(t, "fn f() { return; }")
	var buf bytes.Buffer
	if err := diagfmt.FormatTreeJSON(&buf, tree); err != nil {
		t.Fatal(err)
	}
	var root diagfmt.NodeJSON
	if err := json.Unmarshal(buf.Bytes(), &root); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if root.Kind != "Program" || len(root.Children) != 1 {
		t.Fatalf("root = %s with %d children", root.Kind, len(root.Children))
	}
	if root.Children[0].Kind != "FnDecl" {
		t.Errorf("first child = %s, want FnDecl", root.Children[0].Kind)
	}
}

func TestFormatTokens(t *testing.T) {
	tree, fs := parseForDump(t, "const n = 1; // tail")
	var buf bytes.Buffer
	if err := diagfmt.FormatTokensPretty(&buf, tree.Tokens(), fs); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"const", "IntLit", "EOF", "LineComment"} {
		if !strings.Contains(out, want) {
			t.Errorf("token dump missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := diagfmt.FormatTokensJSON(&buf, tree.Tokens()); err != nil {
		t.Fatal(err)
	}
	var toks []diagfmt.TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &toks); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if toks[len(toks)-1].Kind != "EOF" {
		t.Errorf("last token = %s, want EOF", toks[len(toks)-1].Kind)
	}
}
