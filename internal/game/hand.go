package game

import (
	"github.com/lox/midas/cards"
)

// ActiveHand is a round-scoped hand plus the wager backing it. Splitting
// creates new ActiveHands during the round.
type ActiveHand struct {
	Player *Player
	Hand   cards.Hand
	Wager  float64

	// Blackjack is set at deal time for a natural two-card 21. Hands
	// created by a split are never blackjack.
	Blackjack bool
	Completed bool

	FromSplit   bool
	SplitAces   bool
	Doubled     bool
	Surrendered bool
}

// HandReport is the settled view of one ActiveHand
type HandReport struct {
	Player *Player
	Cards  []cards.Card
	Value  int
	Wager  float64
	Payout float64
	Result RoundResult

	FromSplit bool
	Doubled   bool
}

// RoundReport describes one played round
type RoundReport struct {
	Round       int
	Dealer      []cards.Card
	DealerValue int
	Hands       []HandReport
}

// Results returns the outcome of every hand in creation order
func (r RoundReport) Results() []RoundResult {
	out := make([]RoundResult, len(r.Hands))
	for i, h := range r.Hands {
		out[i] = h.Result
	}
	return out
}

// DealerBust reports whether the dealer finished over 21
func (r RoundReport) DealerBust() bool {
	return r.DealerValue > 21
}
