// Package report renders simulation summaries and played rounds for the
// terminal, and exports per-game results as CSV.
package report

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/midas/internal/game"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	winStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	pushStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	lossStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func resultStyle(r game.RoundResult) lipgloss.Style {
	switch {
	case r.IsWin():
		return winStyle
	case r == game.Push:
		return pushStyle
	default:
		return lossStyle
	}
}

func netStyle(net float64) lipgloss.Style {
	switch {
	case net > 0:
		return winStyle
	case net < 0:
		return lossStyle
	default:
		return pushStyle
	}
}
