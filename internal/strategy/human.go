package strategy

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/midas/cards"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	handStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#74B9FF")).Bold(true)
)

// Human asks a person for each decision over a line-based reader/writer.
// Illegal choices are refused at the prompt so the engine only ever sees
// legal actions. End of input stands.
type Human struct {
	in     *bufio.Scanner
	out    io.Writer
	closed bool
}

// NewHuman creates a human policy reading answers from in and writing prompts to out
func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{in: bufio.NewScanner(in), out: out}
}

// Action implements ActionPolicy
func (h *Human) Action(hand cards.Hand, up cards.Card) Action {
	fmt.Fprintf(h.out, "%s %s (%d)\n", infoStyle.Render("Hand:"), handStyle.Render(hand.String()), hand.Value())
	fmt.Fprintf(h.out, "%s %s\n", infoStyle.Render("Dealer shows:"), handStyle.Render(up.String()))

	for {
		fmt.Fprint(h.out, promptStyle.Render("hit/stand/double/split/surrender> "))
		if !h.scan() {
			return Stand
		}

		action, err := ParseAction(h.in.Text())
		if err != nil {
			fmt.Fprintln(h.out, errorStyle.Render(err.Error()))
			continue
		}
		if !Legal(action, hand) {
			fmt.Fprintln(h.out, errorStyle.Render(fmt.Sprintf("cannot %s this hand", action)))
			continue
		}
		return action
	}
}

// Continue asks whether to play another round. Anything but end of input
// or "q"/"quit" continues.
func (h *Human) Continue() bool {
	fmt.Fprint(h.out, promptStyle.Render("enter to deal, q to quit> "))
	if !h.scan() {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(h.in.Text())) {
	case "q", "quit", "exit":
		return false
	default:
		return true
	}
}

// Closed reports whether the input has been exhausted
func (h *Human) Closed() bool {
	return h.closed
}

func (h *Human) scan() bool {
	if h.closed {
		return false
	}
	if !h.in.Scan() {
		h.closed = true
		fmt.Fprintln(h.out)
		return false
	}
	return true
}
