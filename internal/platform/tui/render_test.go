package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "cd", core.ColorRed)
	s.SetColored(0, 1, '█', core.ColorGray)

	out := RenderScreen(s, GetTheme())

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	// Styles may or may not emit ANSI codes depending on the terminal;
	// the visible width and text must survive either way.
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 6 {
			t.Errorf("line %d: width %d, expected 6", i, w)
		}
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "cd") {
		t.Errorf("text lost in %q", lines[0])
	}
	if !strings.Contains(lines[1], "█") {
		t.Errorf("wall glyph lost in %q", lines[1])
	}
}

func TestThemeCoversPalette(t *testing.T) {
	theme := DefaultTheme()
	for i := range core.NumColors {
		c := core.Color(i)
		if _, ok := theme.Cells[c]; !ok {
			t.Errorf("theme has no style for color %s", c)
		}
	}
}
