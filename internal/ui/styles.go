package ui

import (
	"github.com/charmbracelet/lipgloss"

	"wgslkit/internal/editor"
)

// defaultPalette maps highlight classes to ANSI colors. Entries can be
// overridden per class through the manifest's [theme] table.
var defaultPalette = map[editor.Class]string{
	editor.ClassKeyword:   "5",
	editor.ClassType:      "6",
	editor.ClassNumber:    "3",
	editor.ClassString:    "2",
	editor.ClassBool:      "3",
	editor.ClassFunction:  "4",
	editor.ClassAttribute: "13",
	editor.ClassDirective: "13",
	editor.ClassReserved:  "9",
	editor.ClassComment:   "8",
	editor.ClassError:     "1",
}

// namedColors accepts the human-friendly names manifests tend to use.
var namedColors = map[string]string{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",
	"gray":    "8",
	"grey":    "8",
}

func colorValue(name string) lipgloss.Color {
	if v, ok := namedColors[name]; ok {
		return lipgloss.Color(v)
	}
	// ANSI indexes and hex values pass through unchanged.
	return lipgloss.Color(name)
}

func styleFor(class editor.Class, theme map[string]string) lipgloss.Style {
	st := lipgloss.NewStyle()
	if name, ok := theme[class.String()]; ok && name != "" {
		st = st.Foreground(colorValue(name))
	} else if v, ok := defaultPalette[class]; ok {
		st = st.Foreground(lipgloss.Color(v))
	}
	switch class {
	case editor.ClassKeyword, editor.ClassError:
		st = st.Bold(true)
	case editor.ClassComment:
		st = st.Italic(true)
	}
	return st
}
