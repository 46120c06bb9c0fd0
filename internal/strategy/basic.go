package strategy

import "github.com/lox/midas/cards"

// BasicStrategy is the fixed decision table driven by hand total,
// composition and the dealer's up-card.
type BasicStrategy struct {
	surrender bool
}

// BasicOption configures a BasicStrategy
type BasicOption func(*BasicStrategy)

// WithLateSurrender lets the table surrender hard 16 against 9, ten or Ace
// and hard 15 against ten.
func WithLateSurrender() BasicOption {
	return func(b *BasicStrategy) { b.surrender = true }
}

// NewBasicStrategy creates the reference strategy table
func NewBasicStrategy(opts ...BasicOption) *BasicStrategy {
	b := &BasicStrategy{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Action implements ActionPolicy
func (b *BasicStrategy) Action(hand cards.Hand, up cards.Card) Action {
	initial := hand.Len() == 2
	dealer := up.Points()

	if hand.IsPair() && shouldSplit(hand.Card(0).Face, dealer) {
		return Split
	}

	value := hand.Value()
	if hand.IsSoft() {
		return softTotal(value, initial, dealer)
	}

	if b.surrender && initial && shouldSurrender(value, dealer) {
		return Surrender
	}
	return hardTotal(value, initial, dealer)
}

func shouldSplit(face cards.Face, dealer int) bool {
	switch face {
	case cards.Ace, cards.Eight:
		return true
	case cards.Nine:
		return between(dealer, 2, 6) || dealer == 8 || dealer == 9
	case cards.Seven:
		return between(dealer, 2, 7)
	case cards.Six, cards.Three, cards.Two:
		return between(dealer, 2, 6)
	case cards.Four:
		return dealer == 4 || dealer == 5
	default:
		// tens and fives
		return false
	}
}

func softTotal(value int, initial bool, dealer int) Action {
	switch {
	case value >= 20:
		return Stand
	case value == 19:
		if dealer == 6 {
			return doubleOr(initial, Stand)
		}
		return Stand
	case value == 18:
		switch {
		case dealer == 7 || dealer == 8:
			return Stand
		case dealer >= 9:
			return Hit
		default:
			return doubleOr(initial, Stand)
		}
	case value == 17:
		if between(dealer, 3, 6) {
			return doubleOr(initial, Hit)
		}
		return Hit
	case value == 15 || value == 16:
		if between(dealer, 4, 6) {
			return doubleOr(initial, Hit)
		}
		return Hit
	case value == 13 || value == 14:
		if dealer == 5 || dealer == 6 {
			return doubleOr(initial, Hit)
		}
		return Hit
	default:
		// soft 12 only shows up when a pair of aces was not split
		return Hit
	}
}

func hardTotal(value int, initial bool, dealer int) Action {
	switch {
	case value >= 17:
		return Stand
	case value >= 13:
		if between(dealer, 2, 6) {
			return Stand
		}
		return Hit
	case value == 12:
		if between(dealer, 4, 6) {
			return Stand
		}
		return Hit
	case value == 11:
		return doubleOr(initial, Hit)
	case value == 10:
		if between(dealer, 2, 9) {
			return doubleOr(initial, Hit)
		}
		return Hit
	case value == 9:
		if between(dealer, 3, 6) {
			return doubleOr(initial, Hit)
		}
		return Hit
	default:
		return Hit
	}
}

func shouldSurrender(value, dealer int) bool {
	switch value {
	case 16:
		return dealer >= 9
	case 15:
		return dealer == 10
	default:
		return false
	}
}

func doubleOr(initial bool, otherwise Action) Action {
	if initial {
		return Double
	}
	return otherwise
}

func between(v, lo, hi int) bool {
	return v >= lo && v <= hi
}
