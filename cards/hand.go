package cards

import "strings"

// Hand is an ordered sequence of cards with blackjack valuation.
// The zero value is an empty hand ready to use.
type Hand struct {
	cards []Card
}

// NewHand creates a hand holding the given cards
func NewHand(cards ...Card) Hand {
	h := Hand{cards: make([]Card, 0, max(len(cards), 4))}
	h.cards = append(h.cards, cards...)
	return h
}

// Add appends a card to the hand
func (h *Hand) Add(c Card) {
	h.cards = append(h.cards, c)
}

// Cards returns a copy of the cards in the hand
func (h Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Card returns the i-th card
func (h Hand) Card(i int) Card {
	return h.cards[i]
}

// Len returns the number of cards held
func (h Hand) Len() int {
	return len(h.cards)
}

// Clone returns an independent copy of the hand
func (h Hand) Clone() Hand {
	return NewHand(h.cards...)
}

// Take removes and returns all cards, leaving the hand empty
func (h *Hand) Take() []Card {
	out := h.cards
	h.cards = nil
	return out
}

// TakeLast removes and returns the last card. It panics on an empty hand.
func (h *Hand) TakeLast() Card {
	c := h.cards[len(h.cards)-1]
	h.cards = h.cards[:len(h.cards)-1]
	return c
}

// valuation returns the best total and how many aces are still counted as 11.
func (h Hand) valuation() (total int, highAces int) {
	for _, c := range h.cards {
		total += c.Points()
		if c.IsAce() {
			highAces++
		}
	}
	for total > 21 && highAces > 0 {
		total -= 10
		highAces--
	}
	return total, highAces
}

// Value returns the largest total not above 21, or the smallest bust total
// when every ace is already counted as 1.
func (h Hand) Value() int {
	total, _ := h.valuation()
	return total
}

// IsSoft reports whether an ace is still counted as 11 in Value.
func (h Hand) IsSoft() bool {
	_, high := h.valuation()
	return high > 0
}

// IsPair reports whether the hand is exactly two cards of the same face.
// Ten-valued cards of different faces (J, K) are not a pair.
func (h Hand) IsPair() bool {
	return len(h.cards) == 2 && h.cards[0].Face == h.cards[1].Face
}

// IsBlackjack reports a two-card 21
func (h Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.Value() == 21
}

// IsBust reports a value over 21
func (h Hand) IsBust() bool {
	return h.Value() > 21
}

// String renders the cards separated by spaces
func (h Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
