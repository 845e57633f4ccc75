package parser_test

import (
	"testing"

	"wgslkit/internal/syntax"
)

func TestEmptyInputIsEmptyProgram(t *testing.T) {
	for _, input := range []string{"", "   \n\t  ", "// just a comment\n", "/* block */"} {
		res := parseSource(t, input)
		if res.Tree.Root.Kind != syntax.KindProgram {
			t.Fatalf("%q: root kind = %v", input, res.Tree.Root.Kind)
		}
		if len(res.Tree.Root.Children) != 0 {
			t.Errorf("%q: want empty program, got %d children", input, len(res.Tree.Root.Children))
		}
		if res.Bag.HasErrors() {
			t.Errorf("%q: unexpected errors: %v", input, res.Bag.Items())
		}
	}
}

func TestGlobalDirective(t *testing.T) {
	res := parseSource(t, "enable f16_ext;\nvar x : f32;")
	kinds := topKinds(res.Tree)
	want := []syntax.NodeKind{syntax.KindGlobalDirective, syntax.KindGlobalVarDecl}
	if !sameKinds(kinds, want) {
		t.Fatalf("top-level kinds = %v, want %v", kinds, want)
	}
	if res.Bag.HasErrors() {
		t.Errorf("unexpected errors: %v", res.Bag.Items())
	}
}

func TestDirectiveAfterDeclarationIsFlagged(t *testing.T) {
	res := parseSource(t, "var x : f32;\nenable ext;")
	if !res.Bag.HasErrors() {
		t.Fatal("want error for directive after declaration")
	}
	// The directive still parses into the tree.
	if n := findNodes(res.Tree, syntax.KindGlobalDirective); len(n) != 1 {
		t.Errorf("directive nodes = %d, want 1", len(n))
	}
}

func TestGlobalVarForms(t *testing.T) {
	cases := []struct {
		input string
		kind  syntax.NodeKind
	}{
		{"var x : f32;", syntax.KindGlobalVarDecl},
		{"var<uniform> params : Params;", syntax.KindGlobalVarDecl},
		{"var<storage, read_write> buf : array<f32>;", syntax.KindGlobalVarDecl},
		{"let half = 0.5;", syntax.KindGlobalVarDecl},
		{"const count : i32 = 4;", syntax.KindGlobalConstDecl},
		{"override scale : f32 = 1.0;", syntax.KindOverrideDecl},
	}
	for _, tc := range cases {
		res := parseSource(t, tc.input)
		if res.Bag.HasErrors() {
			t.Errorf("%q: unexpected errors: %v", tc.input, res.Bag.Items())
			continue
		}
		findOne(t, res.Tree, tc.kind)
	}
}

func TestTypeAlias(t *testing.T) {
	res := parseSource(t, "type Scalar = f32;")
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", res.Bag.Items())
	}
	alias := findOne(t, res.Tree, syntax.KindTypeAliasDecl)
	if got := tokenTexts(alias); got[0] != "type" || got[1] != "Scalar" {
		t.Errorf("alias tokens = %v", got)
	}
	findOne(t, res.Tree, syntax.KindTypeRef)
}

func TestStructDecl(t *testing.T) {
	input := `struct VertexOut {
	@builtin(position) pos : vec4f,
	@location(0) color : vec4f,
}`
	res := parseSource(t, input)
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", res.Bag.Items())
	}
	findOne(t, res.Tree, syntax.KindStructDecl)
	if members := findNodes(res.Tree, syntax.KindStructMember); len(members) != 2 {
		t.Fatalf("members = %d, want 2", len(members))
	}
	if attrs := findNodes(res.Tree, syntax.KindAttribute); len(attrs) != 2 {
		t.Errorf("attributes = %d, want 2", len(attrs))
	}
}

func TestFnDecl(t *testing.T) {
	input := `@vertex
fn main(@location(0) pos : vec3f, @location(1) uv : vec2f) -> @builtin(position) vec4f {
	return vec4f(pos, 1.0);
}`
	res := parseSource(t, input)
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", res.Bag.Items())
	}
	fn := findOne(t, res.Tree, syntax.KindFnDecl)
	if params := findNodes(res.Tree, syntax.KindParam); len(params) != 2 {
		t.Errorf("params = %d, want 2", len(params))
	}
	// The @vertex attribute is the declaration's first child.
	first := fn.ChildNodes()[0]
	if first.Kind != syntax.KindAttribute {
		t.Errorf("first child = %v, want Attribute", first.Kind)
	}
}

func TestImportDecl(t *testing.T) {
	res := parseSource(t, `import {lighting, noise as n} from "lib/common";`)
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", res.Bag.Items())
	}
	findOne(t, res.Tree, syntax.KindImportDecl)
	items := findNodes(res.Tree, syntax.KindImportItem)
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	if got := tokenTexts(items[1]); len(got) != 3 || got[1] != "as" {
		t.Errorf("aliased item tokens = %v", got)
	}
}

func TestUseDecl(t *testing.T) {
	res := parseSource(t, `use "lib/common"::{lighting, noise};`)
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", res.Bag.Items())
	}
	findOne(t, res.Tree, syntax.KindUseDecl)
	if items := findNodes(res.Tree, syntax.KindImportItem); len(items) != 2 {
		t.Errorf("items = %d, want 2", len(items))
	}
}

func TestEmptyImportGroupWarns(t *testing.T) {
	res := parseSource(t, `import {} from "lib";`)
	if res.Bag.HasErrors() {
		t.Fatalf("empty group is not an error: %v", res.Bag.Items())
	}
	if !res.Bag.HasWarnings() {
		t.Error("want a warning for the empty import group")
	}
}

func TestBareSemicolonAtTopLevel(t *testing.T) {
	res := parseSource(t, ";;")
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", res.Bag.Items())
	}
	want := []syntax.NodeKind{syntax.KindEmptyStmt, syntax.KindEmptyStmt}
	if kinds := topKinds(res.Tree); !sameKinds(kinds, want) {
		t.Errorf("top-level kinds = %v, want %v", kinds, want)
	}
}
