package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"wgslkit/internal/driver"
	"wgslkit/internal/token"
)

func writeShader(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTokenizeBytes(t *testing.T) {
	res := driver.TokenizeBytes("buf.wgsl", []byte("var x : f32;"), 0)
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", res.Bag.Items())
	}
	if last := res.Tokens[len(res.Tokens)-1]; last.Kind != token.EOF {
		t.Errorf("stream must end in EOF, got %v", last.Kind)
	}
	if res.Tokens[0].Kind != token.KwVar {
		t.Errorf("first token = %v, want var keyword", res.Tokens[0].Kind)
	}
}

func TestParseFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := writeShader(t, dir, "a.wgsl", "fn f() { return; }\n")
	res, err := driver.Parse(path, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", res.Bag.Items())
	}
	if res.Tree == nil || len(res.Tree.Root.Children) != 1 {
		t.Fatalf("tree missing or wrong shape")
	}
}

func TestParseMissingFile(t *testing.T) {
	if _, err := driver.Parse(filepath.Join(t.TempDir(), "missing.wgsl"), 0); err == nil {
		t.Fatal("want an error for a missing file")
	}
}

func TestParseDir(t *testing.T) {
	dir := t.TempDir()
	writeShader(t, dir, "ok.wgsl", "var a : i32;\n")
	writeShader(t, dir, "bad.wgsl", "var a i32;\n")
	writeShader(t, dir, "notes.txt", "not a shader")
	sub := filepath.Join(dir, "nested")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeShader(t, sub, "deep.wgsl", "fn g() { }\n")

	results, err := driver.ParseDir(context.Background(), dir, 0, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3 wgsl files", len(results))
	}
	// Sorted path order: bad.wgsl, nested/deep.wgsl, ok.wgsl.
	if filepath.Base(results[0].Path) != "bad.wgsl" {
		t.Errorf("first result = %s", results[0].Path)
	}
	if !results[0].Bag.HasErrors() {
		t.Error("bad.wgsl must carry errors")
	}
	if results[2].Bag.HasErrors() {
		t.Errorf("ok.wgsl should be clean: %v", results[2].Bag.Items())
	}
}

func TestParseDirEmpty(t *testing.T) {
	results, err := driver.ParseDir(context.Background(), t.TempDir(), 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if results != nil {
		t.Errorf("results = %v, want nil for no files", results)
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cacheDir := t.TempDir()
	cache, err := driver.OpenDiskCacheAt(cacheDir)
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	path := writeShader(t, dir, "a.wgsl", "var x i32;\nvar y : f32;\n")

	first, hit, err := driver.ParseCached(cache, path, 0)
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Fatal("first run must miss")
	}
	if first.ErrorNodes != 1 || len(first.Diags) == 0 {
		t.Errorf("payload = %+v", first)
	}

	second, hit, err := driver.ParseCached(cache, path, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !hit {
		t.Fatal("second run must hit")
	}
	if second.NodeCount != first.NodeCount || second.TokenCount != first.TokenCount {
		t.Errorf("cached payload diverges: %+v vs %+v", second, first)
	}

	// Changing the content invalidates the entry by key.
	writeShader(t, dir, "a.wgsl", "var x : i32;\nvar y : f32;\n")
	third, hit, err := driver.ParseCached(cache, path, 0)
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Fatal("changed content must miss")
	}
	if third.ErrorNodes != 0 {
		t.Errorf("fixed shader still reports %d error nodes", third.ErrorNodes)
	}

	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := driver.ParseCached(cache, path, 0); hit {
		t.Error("DropAll must empty the cache")
	}
}

func TestNilCacheAlwaysParses(t *testing.T) {
	dir := t.TempDir()
	path := writeShader(t, dir, "a.wgsl", "const k = 1;\n")
	payload, hit, err := driver.ParseCached(nil, path, 0)
	if err != nil {
		t.Fatal(err)
	}
	if hit || payload == nil {
		t.Errorf("nil cache: hit=%v payload=%v", hit, payload)
	}
}
