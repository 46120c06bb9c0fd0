package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/midas/cards"
)

func hand(s string) cards.Hand {
	return cards.NewHand(cards.MustParseCards(s)...)
}

func up(s string) cards.Card {
	return cards.MustParseCards(s)[0]
}

func TestBasicStrategyPairs(t *testing.T) {
	t.Parallel()
	b := NewBasicStrategy()

	tests := []struct {
		pair   string
		splits []string
		keeps  []string
	}{
		{"As Ad", []string{"2c", "6c", "Tc", "Ac"}, nil},
		{"8s 8d", []string{"2c", "7c", "Tc", "Ac"}, nil},
		{"Ts Td", nil, []string{"2c", "6c", "Ac"}},
		{"5s 5d", nil, []string{"2c", "6c", "9c"}},
		{"9s 9d", []string{"2c", "6c", "8c", "9c"}, []string{"7c", "Tc", "Ac"}},
		{"7s 7d", []string{"2c", "7c"}, []string{"8c", "Tc"}},
		{"6s 6d", []string{"2c", "6c"}, []string{"7c", "Ac"}},
		{"3s 3d", []string{"2c", "6c"}, []string{"7c"}},
		{"2s 2d", []string{"4c"}, []string{"8c"}},
		{"4s 4d", []string{"4c", "5c"}, []string{"3c", "6c"}},
	}

	for _, tt := range tests {
		for _, d := range tt.splits {
			assert.Equal(t, Split, b.Action(hand(tt.pair), up(d)), "%s vs %s", tt.pair, d)
		}
		for _, d := range tt.keeps {
			assert.NotEqual(t, Split, b.Action(hand(tt.pair), up(d)), "%s vs %s", tt.pair, d)
		}
	}
}

func TestBasicStrategyTotals(t *testing.T) {
	t.Parallel()
	b := NewBasicStrategy()

	tests := []struct {
		name   string
		hand   string
		dealer string
		want   Action
	}{
		// soft totals
		{"soft 20 stands", "As 9d", "6c", Stand},
		{"soft 19 doubles vs 6", "As 8d", "6c", Double},
		{"soft 19 stands vs 5", "As 8d", "5c", Stand},
		{"soft 19 three cards stands vs 6", "As 4d 4h", "6c", Stand},
		{"soft 18 stands vs 7", "As 7d", "7c", Stand},
		{"soft 18 stands vs 8", "As 7d", "8c", Stand},
		{"soft 18 hits vs 9", "As 7d", "9c", Hit},
		{"soft 18 hits vs ten", "As 7d", "Kc", Hit},
		{"soft 18 hits vs ace", "As 7d", "Ac", Hit},
		{"soft 18 doubles vs 4", "As 7d", "4c", Double},
		{"soft 18 three cards stands vs 4", "As 3d 4h", "4c", Stand},
		{"soft 17 doubles vs 3", "As 6d", "3c", Double},
		{"soft 17 hits vs 2", "As 6d", "2c", Hit},
		{"soft 17 three cards hits vs 5", "As 2d 4h", "5c", Hit},
		{"soft 16 doubles vs 4", "As 5d", "4c", Double},
		{"soft 15 hits vs 3", "As 4d", "3c", Hit},
		{"soft 14 doubles vs 5", "As 3d", "5c", Double},
		{"soft 13 hits vs 4", "As 2d", "4c", Hit},
		{"soft 13 three aces hits vs 6", "As Ac Ah", "6c", Hit},

		// hard totals
		{"hard 20 stands", "Ks Qd", "Ac", Stand},
		{"hard 17 stands", "Ts 7d", "Ac", Stand},
		{"hard 16 stands vs 6", "Ts 6d", "6c", Stand},
		{"hard 16 hits vs 7", "Ts 6d", "7c", Hit},
		{"hard 13 stands vs 2", "Ts 3d", "2c", Stand},
		{"hard 12 stands vs 4", "Ts 2d", "4c", Stand},
		{"hard 12 hits vs 3", "Ts 2d", "3c", Hit},
		{"hard 11 doubles", "6s 5d", "Ac", Double},
		{"hard 11 three cards hits", "4s 5d 2h", "6c", Hit},
		{"hard 10 doubles vs 9", "6s 4d", "9c", Double},
		{"hard 10 hits vs ten", "6s 4d", "Tc", Hit},
		{"hard 10 three cards hits", "3s 4d 3h", "5c", Hit},
		{"hard 9 doubles vs 3", "5s 4d", "3c", Double},
		{"hard 9 hits vs 2", "5s 4d", "2c", Hit},
		{"hard 9 hits vs 7", "5s 4d", "7c", Hit},
		{"hard 8 hits", "5s 3d", "6c", Hit},
		{"hard 5 hits", "3s 2d", "6c", Hit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, b.Action(hand(tt.hand), up(tt.dealer)))
		})
	}
}

func TestBasicStrategySoftTwelveHits(t *testing.T) {
	t.Parallel()
	// unsplit aces, for example when the split could not be funded
	for dealer := 2; dealer <= 11; dealer++ {
		assert.Equal(t, Hit, softTotal(12, true, dealer))
		assert.Equal(t, Hit, softTotal(12, false, dealer))
	}
}

func TestBasicStrategySurrender(t *testing.T) {
	t.Parallel()
	plain := NewBasicStrategy()
	late := NewBasicStrategy(WithLateSurrender())

	assert.Equal(t, Hit, plain.Action(hand("Ts 6d"), up("Tc")))
	assert.Equal(t, Surrender, late.Action(hand("Ts 6d"), up("Tc")))
	assert.Equal(t, Surrender, late.Action(hand("Ts 6d"), up("9c")))
	assert.Equal(t, Surrender, late.Action(hand("Ts 6d"), up("Ac")))
	assert.Equal(t, Surrender, late.Action(hand("Ts 5d"), up("Tc")))
	assert.Equal(t, Hit, late.Action(hand("Ts 5d"), up("9c")))
	assert.Equal(t, Split, late.Action(hand("8s 8d"), up("Tc")), "eights split before surrender")
	assert.Equal(t, Hit, late.Action(hand("Ts 2d 4h"), up("Tc")), "no surrender after hitting")
}

// Every hand value below 21 must map to a legal action for every up-card.
func TestBasicStrategyIsTotalAndLegal(t *testing.T) {
	t.Parallel()
	policies := []ActionPolicy{NewBasicStrategy(), NewBasicStrategy(WithLateSurrender()), NewCutoff(15)}
	set := cards.NewSet()

	for _, p := range policies {
		for i := 0; i < len(set); i++ {
			for j := i + 1; j < len(set); j++ {
				h := cards.NewHand(set[i], set[j])
				for _, d := range cards.Faces {
					dealer := cards.NewCard(d, cards.Clubs)
					if h.Value() < 21 {
						a := p.Action(h, dealer)
						assert.True(t, Legal(a, h), "%T %s vs %s -> %s", p, h, dealer, a)
					}
					for k := 0; k < len(set); k += 13 {
						three := cards.NewHand(set[i], set[j], set[k])
						if three.Value() < 21 {
							a := p.Action(three, dealer)
							assert.True(t, Legal(a, three), "%T %s vs %s -> %s", p, three, dealer, a)
						}
					}
				}
			}
		}
	}
}
