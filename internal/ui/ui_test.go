package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"wgslkit/internal/driver"
	"wgslkit/internal/editor"
)

const sampleShader = `// header
fn main() -> f32 {
    let x = 1.0;
    return x;
}
`

func parseSample(t *testing.T) *driver.ParseResult {
	t.Helper()
	res, err := driver.ParseBytes("sample.wgsl", []byte(sampleShader), 0)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestRenderSourceKeepsContent(t *testing.T) {
	res := parseSample(t)
	out := renderSource(res.File, editor.Highlight(res.Tree), nil)
	// Without a color-capable terminal the styles are no-ops, so the
	// rendered text must match the input byte for byte.
	if out != sampleShader {
		t.Errorf("rendered source diverged:\n%q\nwant\n%q", out, sampleShader)
	}
}

func TestRenderTreeAndFolds(t *testing.T) {
	res := parseSample(t)
	tree := renderTree(res.Tree, res.FileSet)
	if !strings.Contains(tree, "Program") || !strings.Contains(tree, "FnDecl") {
		t.Errorf("tree pane missing nodes:\n%s", tree)
	}
	folds := renderFolds(res.Tree, res.FileSet)
	if !strings.Contains(folds, "lines 2-5") {
		t.Errorf("folds pane = %q", folds)
	}
}

func TestRenderDiagnosticsEmpty(t *testing.T) {
	res := parseSample(t)
	if got := renderDiagnostics(res.Bag, res.FileSet); got != "no diagnostics" {
		t.Errorf("got %q", got)
	}
}

func TestViewerPaneSwitching(t *testing.T) {
	res := parseSample(t)
	model := NewViewer(res.FileSet, res.File, res.Tree, res.Bag, nil)

	m, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	v := m.(*viewerModel)
	if !v.ready {
		t.Fatal("viewer not ready after window size")
	}
	if !strings.Contains(v.View(), "source") {
		t.Errorf("header missing pane tabs:\n%s", v.View())
	}

	m, _ = v.Update(tea.KeyMsg{Type: tea.KeyTab})
	v = m.(*viewerModel)
	if v.pane != paneTree {
		t.Errorf("pane = %v after tab, want tree", v.pane)
	}
	if !strings.Contains(v.View(), "Program") {
		t.Errorf("tree pane not shown:\n%s", v.View())
	}

	m, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'4'}})
	v = m.(*viewerModel)
	if v.pane != paneFolds {
		t.Errorf("pane = %v after '4', want folds", v.pane)
	}
}

func TestViewerQuits(t *testing.T) {
	res := parseSample(t)
	model := NewViewer(res.FileSet, res.File, res.Tree, res.Bag, nil)
	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("cmd() = %v, want quit", msg)
	}
}

func TestStyleForThemeOverride(t *testing.T) {
	theme := map[string]string{"keyword": "magenta"}
	st := styleFor(editor.ClassKeyword, theme)
	if got := st.GetForeground(); got != colorValue("magenta") {
		t.Errorf("foreground = %v", got)
	}
	if !st.GetBold() {
		t.Error("keywords should stay bold under theme overrides")
	}
}
