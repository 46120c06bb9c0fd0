package cards

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrShoeExhausted means every card of the set is held in hands, so a
// reshuffle cannot produce a card. This breaks the table's invariants.
var ErrShoeExhausted = errors.New("shoe exhausted: no cards left to reshuffle")

// ShuffleObserver is notified once per reshuffle.
type ShuffleObserver interface {
	Shuffled()
}

// ShuffleFunc adapts a function to ShuffleObserver
type ShuffleFunc func()

// Shuffled calls f
func (f ShuffleFunc) Shuffled() { f() }

// Shoe is the live card supply plus the discard pile. Cards are dealt from
// the top of the stack; an empty stack is refilled from the discards.
type Shoe struct {
	stack     []Card // top of the shoe is the last element
	discards  []Card
	rng       *rand.Rand
	observers []ShuffleObserver
	shuffles  int
}

// NewShoe creates a shoe holding one shuffled 52-card set
func NewShoe(rng *rand.Rand) *Shoe {
	s := &Shoe{
		stack: NewSet(),
		rng:   rng,
	}
	s.shuffleStack()
	return s
}

// NewStackedShoe creates a shoe that deals the given cards first, in order,
// followed by the rest of the set in shuffled order. It panics if a card
// appears twice. Useful for deterministic tests.
func NewStackedShoe(rng *rand.Rand, first ...Card) *Shoe {
	seen := make(map[Card]bool, len(first))
	for _, c := range first {
		if seen[c] {
			panic(fmt.Sprintf("stacked shoe: duplicate card %s", c))
		}
		seen[c] = true
	}

	rest := make([]Card, 0, SetSize-len(first))
	for _, c := range NewSet() {
		if !seen[c] {
			rest = append(rest, c)
		}
	}
	if len(rest)+len(first) != SetSize {
		panic("stacked shoe: cards outside the standard set")
	}

	s := &Shoe{stack: rest, rng: rng}
	s.shuffleStack()
	for i := len(first) - 1; i >= 0; i-- {
		s.stack = append(s.stack, first[i])
	}
	return s
}

// AddObserver registers an observer for reshuffle events
func (s *Shoe) AddObserver(o ShuffleObserver) {
	s.observers = append(s.observers, o)
}

// Deal removes the top card. When the stack is empty the discards are
// reshuffled into it first and observers are notified before the card is
// returned. It panics with ErrShoeExhausted if no card can be produced.
func (s *Shoe) Deal() Card {
	if len(s.stack) == 0 {
		s.Shuffle()
		if len(s.stack) == 0 {
			panic(ErrShoeExhausted)
		}
	}

	c := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return c
}

// Shuffle folds the discards into the stack, randomizes the order and
// notifies observers.
func (s *Shoe) Shuffle() {
	s.stack = append(s.stack, s.discards...)
	s.discards = s.discards[:0]
	s.shuffleStack()
	s.shuffles++

	for _, o := range s.observers {
		o.Shuffled()
	}
}

func (s *Shoe) shuffleStack() {
	s.rng.Shuffle(len(s.stack), func(i, j int) {
		s.stack[i], s.stack[j] = s.stack[j], s.stack[i]
	})
}

// Discard moves cards onto the discard pile
func (s *Shoe) Discard(cards ...Card) {
	s.discards = append(s.discards, cards...)
}

// Len returns the number of cards left to deal before a reshuffle
func (s *Shoe) Len() int {
	return len(s.stack)
}

// DiscardLen returns the size of the discard pile
func (s *Shoe) DiscardLen() int {
	return len(s.discards)
}

// Shuffles returns how many reshuffles have happened since construction
func (s *Shoe) Shuffles() int {
	return s.shuffles
}
