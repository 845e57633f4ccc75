// Package ui renders parsed shaders in an interactive terminal viewer.
package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wgslkit/internal/diag"
	"wgslkit/internal/editor"
	"wgslkit/internal/source"
	"wgslkit/internal/syntax"
)

type pane int

const (
	paneSource pane = iota
	paneTree
	paneDiagnostics
	paneFolds
	paneCount
)

var paneLabels = [paneCount]string{"source", "tree", "diagnostics", "folds"}

type viewerModel struct {
	fs    *source.FileSet
	file  *source.File
	tree  *syntax.Tree
	bag   *diag.Bag
	theme map[string]string

	vp     viewport.Model
	pane   pane
	cached [paneCount]string
	ready  bool
}

// NewViewer returns a Bubble Tea model presenting one parsed shader file.
func NewViewer(fs *source.FileSet, file *source.File, tree *syntax.Tree, bag *diag.Bag, theme map[string]string) tea.Model {
	return &viewerModel{
		fs:    fs,
		file:  file,
		tree:  tree,
		bag:   bag,
		theme: theme,
		pane:  paneSource,
	}
}

// RunViewer takes over the terminal until the user quits the viewer.
func RunViewer(fs *source.FileSet, file *source.File, tree *syntax.Tree, bag *diag.Bag, theme map[string]string) error {
	p := tea.NewProgram(NewViewer(fs, file, tree, bag, theme), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *viewerModel) Init() tea.Cmd {
	return nil
}

func (m *viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab", "right":
			m.setPane((m.pane + 1) % paneCount)
			return m, nil
		case "shift+tab", "left":
			m.setPane((m.pane + paneCount - 1) % paneCount)
			return m, nil
		case "1", "2", "3", "4":
			m.setPane(pane(msg.String()[0] - '1'))
			return m, nil
		}
	case tea.WindowSizeMsg:
		headerHeight := 2
		footerHeight := 1
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
			m.vp.SetContent(m.content(m.pane))
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - headerHeight - footerHeight
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *viewerModel) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.header() + "\n" + m.vp.View() + "\n" + m.footer()
}

func (m *viewerModel) setPane(p pane) {
	if p == m.pane || p >= paneCount {
		return
	}
	m.pane = p
	if m.ready {
		m.vp.SetContent(m.content(p))
		m.vp.GotoTop()
	}
}

func (m *viewerModel) content(p pane) string {
	if m.cached[p] == "" {
		switch p {
		case paneSource:
			m.cached[p] = renderSource(m.file, editor.Highlight(m.tree), m.theme)
		case paneTree:
			m.cached[p] = renderTree(m.tree, m.fs)
		case paneDiagnostics:
			m.cached[p] = renderDiagnostics(m.bag, m.fs)
		case paneFolds:
			m.cached[p] = renderFolds(m.tree, m.fs)
		}
	}
	return m.cached[p]
}

func (m *viewerModel) header() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	activeTab := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	inactiveTab := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	tabs := make([]string, 0, paneCount)
	for i, label := range paneLabels {
		rendered := fmt.Sprintf("[%d] %s", i+1, label)
		if pane(i) == m.pane {
			tabs = append(tabs, activeTab.Render(rendered))
		} else {
			tabs = append(tabs, inactiveTab.Render(rendered))
		}
	}
	title := filepath.Base(m.file.Path)
	if m.bag != nil && m.bag.HasErrors() {
		title += lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(" (errors)")
	}
	return titleStyle.Render(title) + "\n" + strings.Join(tabs, "  ")
}

func (m *viewerModel) footer() string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	pct := fmt.Sprintf("%3.0f%%", m.vp.ScrollPercent()*100)
	return style.Render("tab: switch pane  q: quit  " + pct)
}
