package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"falling-sand/internal/sims/sand"
)

// cellWidth is the number of terminal columns drawn per grid cell, which
// keeps cells roughly square.
const cellWidth = 2

var cellGlyphs = [...]string{
	sand.Air:   "  ",
	sand.Sand:  "██",
	sand.Water: "▒▒",
}

var cellStyles = map[sand.Material]lipgloss.Style{
	sand.Air:   lipgloss.NewStyle(),
	sand.Sand:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	sand.Water: lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("236"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
)

func glyph(m sand.Material) string {
	if int(m) < len(cellGlyphs) {
		return cellGlyphs[m]
	}
	return cellGlyphs[sand.Air]
}

// RenderGrid draws g with one styled glyph pair per cell.
// Adjacent cells of the same material share one style run.
func RenderGrid(g *sand.Grid) string {
	var sb strings.Builder
	sb.Grow(g.Width()*g.Height()*cellWidth*3 + g.Height())

	for y := range g.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < g.Width() {
			start := g.At(x, y)
			var run strings.Builder
			for x < g.Width() && g.At(x, y) == start {
				run.WriteString(glyph(start))
				x++
			}
			style, ok := cellStyles[start]
			if !ok {
				style = cellStyles[sand.Air]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// renderStatus draws the one-line status bar.
func renderStatus(w *sand.World, tps int, paused bool) string {
	c := w.Counts()
	state := "running"
	if paused {
		state = pausedStyle.Render("paused")
	}
	line := fmt.Sprintf(" %s  brush %d  %s  %d tps  tick %d  sand %d  water %d  %s",
		w.Selected(), w.BrushRadius(), w.Mode(), tps, w.Ticks(), c[sand.Sand], c[sand.Water], state)
	return statusStyle.Render(line)
}
