package cards

import (
	"fmt"
	"strings"
)

// Suit represents a card suit. Suits have no effect on play.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Suits lists every suit in deck-building order.
var Suits = [4]Suit{Clubs, Diamonds, Hearts, Spades}

// String returns the suit symbol
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Face represents a card face from Ace through King.
type Face uint8

const (
	Ace Face = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Faces lists every face in deck-building order.
var Faces = [13]Face{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// String returns the short face name used when rendering cards
func (f Face) String() string {
	switch f {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	if f >= Two && f <= Ten {
		return fmt.Sprintf("%d", int(f))
	}
	return "?"
}

// Points returns the blackjack point value of the face. Aces count 11 here;
// reduction to 1 happens at the hand level.
func (f Face) Points() int {
	switch {
	case f == Ace:
		return 11
	case f >= Ten:
		return 10
	default:
		return int(f)
	}
}

// HiLo returns the Hi-Lo counting tag: +1 for 2-6, 0 for 7-9, -1 for tens and aces.
func (f Face) HiLo() int {
	switch p := f.Points(); {
	case p >= 2 && p <= 6:
		return 1
	case p >= 10:
		return -1
	default:
		return 0
	}
}

// Card is an immutable (suit, face) pair.
type Card struct {
	Suit Suit
	Face Face
}

// NewCard creates a card
func NewCard(face Face, suit Suit) Card {
	return Card{Suit: suit, Face: face}
}

// Points returns the blackjack point value of the card
func (c Card) Points() int {
	return c.Face.Points()
}

// IsAce reports whether the card is an Ace
func (c Card) IsAce() bool {
	return c.Face == Ace
}

// String returns the card rendered as face and suit, e.g. "A♠" or "10♥"
func (c Card) String() string {
	return c.Face.String() + c.Suit.String()
}

// ParseCard parses a card like "Ah", "10d", "Tc" or "qs".
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}

	faceStr := strings.ToUpper(s[:len(s)-1])
	suitStr := strings.ToLower(s[len(s)-1:])

	var face Face
	switch faceStr {
	case "A":
		face = Ace
	case "K":
		face = King
	case "Q":
		face = Queen
	case "J":
		face = Jack
	case "T", "10":
		face = Ten
	default:
		if len(faceStr) != 1 || faceStr[0] < '2' || faceStr[0] > '9' {
			return Card{}, fmt.Errorf("invalid face in card %q", s)
		}
		face = Face(faceStr[0] - '0')
	}

	var suit Suit
	switch suitStr {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		return Card{}, fmt.Errorf("invalid suit in card %q", s)
	}

	return NewCard(face, suit), nil
}

// MustParseCards parses a whitespace separated list of cards and panics on error.
// Intended for tests and fixtures.
func MustParseCards(s string) []Card {
	fields := strings.Fields(s)
	out := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			panic(err)
		}
		out = append(out, c)
	}
	return out
}

// NewSet returns the 52 standard cards in suit-major order.
func NewSet() []Card {
	set := make([]Card, 0, SetSize)
	for _, suit := range Suits {
		for _, face := range Faces {
			set = append(set, NewCard(face, suit))
		}
	}
	return set
}

// SetSize is the number of cards in one standard set.
const SetSize = 52
