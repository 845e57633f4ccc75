package parser_test

import (
	"strings"
	"testing"

	"wgslkit/internal/syntax"
)

// exprTree parses the expression as a let initializer and returns its node.
func exprTree(t *testing.T, expr string) *syntax.Node {
	t.Helper()
	res := parseSource(t, "let v = "+expr+";")
	if res.Bag.HasErrors() {
		t.Fatalf("%q: unexpected errors: %v", expr, res.Bag.Items())
	}
	decl := findOne(t, res.Tree, syntax.KindGlobalVarDecl)
	nodes := decl.ChildNodes()
	return nodes[len(nodes)-1]
}

func TestCallVersusParen(t *testing.T) {
	// A name directly before '(' commits to a call; '(' with no
	// preceding name is a grouped expression.
	if n := exprTree(t, "foo(1, 2)"); n.Kind != syntax.KindCallExpr {
		t.Errorf("foo(1,2) = %v, want CallExpr", n.Kind)
	}
	if n := exprTree(t, "(1 + 2)"); n.Kind != syntax.KindParenExpr {
		t.Errorf("(1+2) = %v, want ParenExpr", n.Kind)
	}
	if n := exprTree(t, "f32(x)"); n.Kind != syntax.KindTypeCallExpr {
		t.Errorf("f32(x) = %v, want TypeCallExpr", n.Kind)
	}
	if n := exprTree(t, "vec2<f32>(0.0, 1.0)"); n.Kind != syntax.KindTypeCallExpr {
		t.Errorf("vec2<f32>(...) = %v, want TypeCallExpr", n.Kind)
	}
}

func TestBinaryPrecedence(t *testing.T) {
	// a + b * c groups the multiplication first.
	n := exprTree(t, "a + b * c")
	if n.Kind != syntax.KindBinaryExpr {
		t.Fatalf("kind = %v", n.Kind)
	}
	if op := opToken(n); op != "+" {
		t.Errorf("outer op = %q, want +", op)
	}
	right := n.ChildNodes()[1]
	if right.Kind != syntax.KindBinaryExpr || opToken(right) != "*" {
		t.Errorf("right side should be the multiplication, got %v %q", right.Kind, opToken(right))
	}

	// Shift binds tighter than relational, looser than additive.
	n = exprTree(t, "a << b + c")
	if opToken(n) != "<<" {
		t.Errorf("outer op = %q, want <<", opToken(n))
	}
}

func TestEqualityAndRelationalShareOneLevel(t *testing.T) {
	// '==' and '<' fold left to right as a single level, so the
	// comparison is the right child of the equality.
	n := exprTree(t, "a == b < c")
	if n.Kind != syntax.KindBinaryExpr || opToken(n) != "<" {
		t.Fatalf("outer = %v %q, want <", n.Kind, opToken(n))
	}
	left := n.ChildNodes()[0]
	if left.Kind != syntax.KindBinaryExpr || opToken(left) != "==" {
		t.Errorf("a == b < c must fold as (a == b) < c, left = %v %q", left.Kind, opToken(left))
	}

	// The same level in the other order.
	n = exprTree(t, "a < b != c")
	if opToken(n) != "!=" || opToken(n.ChildNodes()[0]) != "<" {
		t.Errorf("a < b != c must fold as (a < b) != c, got outer %q", opToken(n))
	}
}

func TestLogicalChainsAreLeftAssociative(t *testing.T) {
	n := exprTree(t, "a && b && c")
	if n.Kind != syntax.KindBinaryExpr || opToken(n) != "&&" {
		t.Fatalf("outer = %v %q", n.Kind, opToken(n))
	}
	left := n.ChildNodes()[0]
	if left.Kind != syntax.KindBinaryExpr || opToken(left) != "&&" {
		t.Errorf("a && b && c must fold as (a && b) && c, left = %v", left.Kind)
	}
	// || binds looser than &&.
	n = exprTree(t, "a || b && c")
	if opToken(n) != "||" {
		t.Errorf("outer op = %q, want ||", opToken(n))
	}
}

func TestUnaryAndPostfixChain(t *testing.T) {
	n := exprTree(t, "-v.xyz[i]")
	if n.Kind != syntax.KindUnaryExpr {
		t.Fatalf("kind = %v, want UnaryExpr", n.Kind)
	}
	inner := n.ChildNodes()[0]
	if inner.Kind != syntax.KindIndexExpr {
		t.Fatalf("operand = %v, want IndexExpr", inner.Kind)
	}
	if inner.ChildNodes()[0].Kind != syntax.KindMemberExpr {
		t.Errorf("index base = %v, want MemberExpr", inner.ChildNodes()[0].Kind)
	}
}

func TestBitcastExpr(t *testing.T) {
	n := exprTree(t, "bitcast<u32>(x)")
	if n.Kind != syntax.KindBitcastExpr {
		t.Fatalf("kind = %v, want BitcastExpr", n.Kind)
	}
	findOneUnder(t, n, syntax.KindTypeRef)
}

func TestNestedTemplateSplitsShiftRight(t *testing.T) {
	// The '>>' closing both argument lists splits into two '>' tokens
	// without losing a byte of the source.
	res := parseSource(t, "var m : array<vec4<f32>, 4>;\nlet v = array<vec4<f32>>();")
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", res.Bag.Items())
	}
	if got := reconstruct(res.Tree); got != "var m : array<vec4<f32>, 4>;\nlet v = array<vec4<f32>>();" {
		t.Errorf("round-trip mismatch:\n%s", got)
	}
}

func TestLiteralExpressions(t *testing.T) {
	for _, expr := range []string{"0", "-7", "7u", "1.5", "1e10", "true", `"text"`} {
		n := exprTree(t, expr)
		if n.Kind != syntax.KindLiteralExpr {
			t.Errorf("%q = %v, want LiteralExpr", expr, n.Kind)
		}
	}
}

// opToken returns the first operator token of a binary node.
func opToken(n *syntax.Node) string {
	for _, c := range n.Children {
		if c.Tok != nil {
			return c.Tok.Text
		}
	}
	return ""
}

func findOneUnder(t *testing.T, n *syntax.Node, kind syntax.NodeKind) *syntax.Node {
	t.Helper()
	var found *syntax.Node
	n.Walk(func(c *syntax.Node) bool {
		if c.Kind == kind && found == nil {
			found = c
		}
		return true
	})
	if found == nil {
		t.Fatalf("no %v node under %v: %v", kind, n.Kind, strings.Join(tokenTexts(n), " "))
	}
	return found
}
