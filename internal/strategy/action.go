// Package strategy defines the pluggable decision policies a seat plays
// with: an ActionPolicy that decides what to do with a hand, and a
// BettingPolicy that sizes wagers and may track the cards it has seen.
package strategy

import (
	"fmt"
	"strings"

	"github.com/lox/midas/cards"
)

// Action is a player decision for one hand
type Action uint8

const (
	Hit Action = iota
	Stand
	Double
	Split
	Surrender
)

// String returns the lower-case action name
func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	case Double:
		return "double"
	case Split:
		return "split"
	case Surrender:
		return "surrender"
	default:
		return fmt.Sprintf("action(%d)", uint8(a))
	}
}

// ParseAction accepts action names and their one-letter shortcuts
// (h, s, d, p, r).
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hit", "h":
		return Hit, nil
	case "stand", "s":
		return Stand, nil
	case "double", "d":
		return Double, nil
	case "split", "p":
		return Split, nil
	case "surrender", "r":
		return Surrender, nil
	default:
		return 0, fmt.Errorf("unknown action %q", s)
	}
}

// ActionPolicy decides what to do with a hand given the dealer's up-card.
//
// Implementations must be total: for any hand the engine asks about (value
// below 21) they return an action that is legal for it. Double and
// Surrender need exactly two cards, Split needs a pair. The engine treats
// anything else as a broken policy and panics.
type ActionPolicy interface {
	Action(hand cards.Hand, up cards.Card) Action
}

// ActionFunc adapts a function to ActionPolicy
type ActionFunc func(hand cards.Hand, up cards.Card) Action

// Action calls f
func (f ActionFunc) Action(hand cards.Hand, up cards.Card) Action {
	return f(hand, up)
}

// Legal reports whether action may be taken on hand.
func Legal(action Action, hand cards.Hand) bool {
	switch action {
	case Hit, Stand:
		return true
	case Double, Surrender:
		return hand.Len() == 2
	case Split:
		return hand.IsPair()
	default:
		return false
	}
}
