package parser_test

import (
	"testing"

	"wgslkit/internal/syntax"
)

var roundTripInputs = []string{
	"",
	"enable ext;\n",
	"// header comment\nvar<uniform> params : Params;\n",
	"const n : i32 = -3; /* trailing */",
	`import {a, b as c} from "lib/x";`,
	`struct S { @align(16) v : vec4f, flag : bool }`,
	`@fragment
fn main(@location(0) uv : vec2f) -> @location(0) vec4f {
	var color = vec4f(uv, 0.0, 1.0);
	for (var i = 0; i < 4; i++) {
		color.x += 0.25;
	}
	if color.x > 1.0 {
		color.x = 1.0;
	} else {
		color.x = color.x * 0.5;
	}
	return color;
}
`,
	"loop {\n\tbreak;\n\tcontinuing { }\n}", // statement soup at top level still lexes
	"var x i32;\nvar y : f32;",              // broken input must round-trip too
	"fn f() { let a = 1 + ; }",
	"/* a /* not nested */ var x : f32;",
	"var x : vec4<f32>>;\nvar y : array<f32>;", // stray '>' from a split '>>'
	"let m = array<vec4<f32>>>();",
}

func TestParseRoundTrip(t *testing.T) {
	for _, input := range roundTripInputs {
		res := parseSource(t, input)
		if got := reconstruct(res.Tree); got != input {
			t.Errorf("round-trip mismatch\n got: %q\nwant: %q", got, input)
		}
	}
}

func TestReparseIsIdempotent(t *testing.T) {
	for _, input := range roundTripInputs {
		first := parseSource(t, input)
		second := parseSource(t, reconstruct(first.Tree))
		a := first.Tree.KindSequence()
		b := second.Tree.KindSequence()
		if len(a) != len(b) {
			t.Errorf("%q: kind sequence lengths differ: %d vs %d", input, len(a), len(b))
			continue
		}
		for i := range a {
			if a[i] != b[i] {
				t.Errorf("%q: kind sequence diverges at %d: %v vs %v", input, i, a[i], b[i])
				break
			}
		}
	}
}

func TestTreeSpansNest(t *testing.T) {
	res := parseSource(t, `fn f(x : f32) -> f32 {
	return x * 2.0;
}`)
	res.Tree.Root.Walk(func(n *syntax.Node) bool {
		for _, c := range n.Children {
			sp := c.Span()
			if sp.Start < n.Span.Start || sp.End > n.Span.End {
				t.Errorf("%v child span %v escapes parent span %v", n.Kind, sp, n.Span)
			}
		}
		return true
	})
}
