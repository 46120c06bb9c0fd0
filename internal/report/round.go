package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/midas/cards"
	"github.com/lox/midas/internal/game"
)

// Round renders a played round: the dealer's hand followed by every player
// hand in the order it was settled.
func Round(report game.RoundReport) string {
	var b strings.Builder

	width := len("Dealer")
	for _, h := range report.Hands {
		width = max(width, lipgloss.Width(h.Player.Name))
	}
	label := lipgloss.NewStyle().Width(width + 2)

	b.WriteString(headerStyle.Render(fmt.Sprintf("Round %d", report.Round)))
	b.WriteString("\n")

	dealer := fmt.Sprintf("%s (%d)", cards.NewHand(report.Dealer...), report.DealerValue)
	if report.DealerBust() {
		dealer += " bust"
	}
	b.WriteString(label.Render("Dealer") + dealer + "\n")

	for _, h := range report.Hands {
		var notes []string
		if h.FromSplit {
			notes = append(notes, "split")
		}
		if h.Doubled {
			notes = append(notes, "doubled")
		}

		line := fmt.Sprintf("%s (%d)", cards.NewHand(h.Cards...), h.Value)
		if len(notes) > 0 {
			line += dimStyle.Render(" [" + strings.Join(notes, ", ") + "]")
		}
		net := h.Payout - h.Wager
		line += fmt.Sprintf("  wager %.2f  %s %s",
			h.Wager,
			resultStyle(h.Result).Render(h.Result.String()),
			netStyle(net).Render(fmt.Sprintf("%+.2f", net)))

		b.WriteString(label.Render(nameStyle.Render(h.Player.Name)) + line + "\n")
	}

	return b.String()
}
