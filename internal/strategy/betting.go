package strategy

import (
	"fmt"
	"strings"

	"github.com/lox/midas/cards"
)

// EventKind identifies what happened to produce a CardEvent
type EventKind uint8

const (
	// CardDealt is a face-up card dealt to any hand, dealer included.
	CardDealt EventKind = iota
	// HoleCardDealt is the dealer's concealed second card at the moment it is dealt.
	HoleCardDealt
	// HoleCardRevealed is the dealer's hole card turned over before dealer play.
	HoleCardRevealed
	// Shuffled means the discards were folded back and the shoe reshuffled.
	Shuffled
)

// String returns the event kind name
func (k EventKind) String() string {
	switch k {
	case CardDealt:
		return "card_dealt"
	case HoleCardDealt:
		return "hole_card_dealt"
	case HoleCardRevealed:
		return "hole_card_revealed"
	case Shuffled:
		return "shuffled"
	default:
		return "unknown"
	}
}

// CardEvent is one entry in the stream of table events a betting policy sees.
// Card is the zero value for Shuffled events.
type CardEvent struct {
	Kind EventKind
	Card cards.Card
}

// BettingPolicy sizes wagers and observes every card the table deals.
type BettingPolicy interface {
	// Bet returns the wager for the next round. The engine clamps the result
	// to the table minimum and to balance.
	Bet(balance float64) float64
	// Observe receives every card event in deal order.
	Observe(event CardEvent)
}

// HoleCardMode controls when a counting policy counts the dealer's hole card.
type HoleCardMode uint8

const (
	// CountOnDeal counts the hole card as soon as it is dealt.
	CountOnDeal HoleCardMode = iota
	// CountOnReveal counts the hole card when it is turned over.
	CountOnReveal
	// IgnoreHoleCard never counts the hole card.
	IgnoreHoleCard
)

// String returns the configuration name of the mode
func (m HoleCardMode) String() string {
	switch m {
	case CountOnDeal:
		return "deal"
	case CountOnReveal:
		return "reveal"
	case IgnoreHoleCard:
		return "ignore"
	default:
		return "unknown"
	}
}

// ParseHoleCardMode parses "deal", "reveal" or "ignore". Empty means deal.
func ParseHoleCardMode(s string) (HoleCardMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "deal":
		return CountOnDeal, nil
	case "reveal":
		return CountOnReveal, nil
	case "ignore":
		return IgnoreHoleCard, nil
	default:
		return 0, fmt.Errorf("unknown hole card mode %q", s)
	}
}
