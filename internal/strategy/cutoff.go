package strategy

import "github.com/lox/midas/cards"

// DefaultCutoff is the stand threshold used when none is configured
const DefaultCutoff = 15

// Cutoff is a baseline policy: split any pair, double any two-card 11,
// otherwise hit below the threshold and stand at or above it.
type Cutoff struct {
	Threshold int
}

// NewCutoff creates a cutoff policy. A non-positive threshold uses DefaultCutoff.
func NewCutoff(threshold int) *Cutoff {
	if threshold <= 0 {
		threshold = DefaultCutoff
	}
	return &Cutoff{Threshold: threshold}
}

// Action implements ActionPolicy
func (c *Cutoff) Action(hand cards.Hand, _ cards.Card) Action {
	if hand.Len() == 2 {
		if hand.IsPair() {
			return Split
		}
		if hand.Value() == 11 {
			return Double
		}
	}

	if hand.Value() < c.Threshold {
		return Hit
	}
	return Stand
}
