package tui

import (
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run to keep the
// number of ANSI escape sequences down.
func RenderScreen(s *core.Screen, theme Theme) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			// Spaces and uncolored text need no escape codes.
			text := run.String()
			if color == core.ColorDefault || strings.TrimSpace(text) == "" {
				sb.WriteString(text)
				continue
			}
			style, ok := theme.Cells[color]
			if !ok {
				sb.WriteString(text)
				continue
			}
			sb.WriteString(style.Render(text))
		}
	}
	return sb.String()
}
