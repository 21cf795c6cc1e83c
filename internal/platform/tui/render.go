package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/xenzia/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var (
	statusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("10")).
			Foreground(lipgloss.Color("15")).
			Bold(true).
			Padding(1, 4).
			Align(lipgloss.Center)
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// scoreLabel is the status text shown on every tick.
func scoreLabel(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// renderStatus draws the score bar across width columns.
func renderStatus(score int, width int) string {
	bar := statusStyle.Render(scoreLabel(score))
	return lipgloss.PlaceHorizontal(max(width, lipgloss.Width(bar)), lipgloss.Left, bar)
}

// renderBanner replaces the board once the game is over with the final score
// in large type, centred in a width x height area.
func renderBanner(score int, width, height int) string {
	banner := bannerStyle.Render(
		"GAME OVER\n\n" + bigDigits(score) + "\n\n" + scoreLabel(score) + "\n\nr new game · q quit",
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, banner)
}

// glyphs are 3x5 block digits.
var glyphs = [10][5]string{
	{"███", "█ █", "█ █", "█ █", "███"},
	{" █ ", "██ ", " █ ", " █ ", "███"},
	{"███", "  █", "███", "█  ", "███"},
	{"███", "  █", "███", "  █", "███"},
	{"█ █", "█ █", "███", "  █", "  █"},
	{"███", "█  ", "███", "  █", "███"},
	{"███", "█  ", "███", "█ █", "███"},
	{"███", "  █", "  █", "  █", "  █"},
	{"███", "█ █", "███", "█ █", "███"},
	{"███", "█ █", "███", "  █", "███"},
}

// bigDigits renders a non-negative number in block digits.
func bigDigits(n int) string {
	digits := fmt.Sprintf("%d", max(n, 0))
	rows := make([]string, 5)
	for i, d := range digits {
		g := glyphs[d-'0']
		for r := range rows {
			if i > 0 {
				rows[r] += " "
			}
			rows[r] += g[r]
		}
	}
	return strings.Join(rows, "\n")
}
