package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/midas/internal/strategy"
)

// betFunc is a betting policy returning a fixed wager
type betFunc func(balance float64) float64

func (f betFunc) Bet(balance float64) float64 { return f(balance) }
func (f betFunc) Observe(strategy.CardEvent)   {}

func fixedBet(amount float64) betFunc {
	return func(float64) float64 { return amount }
}

func TestPlayerWagerClamping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		balance float64
		bet     float64
		want    float64
	}{
		{"within range", 100, 25, 25},
		{"above balance", 50, 1000, 50},
		{"below minimum", 100, 1, 10},
		{"zero", 100, 0, 10},
		{"negative", 100, -20, 10},
		{"nan", 100, math.NaN(), 10},
		{"infinite", 40, math.Inf(1), 40},
		{"minimum capped by balance", 10, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := NewPlayer("p", tt.balance, strategy.NewCutoff(15), fixedBet(tt.bet))
			assert.Equal(t, tt.want, p.wager(10))
		})
	}
}

func TestPlayerLedger(t *testing.T) {
	t.Parallel()
	p := NewPlayer("p", 100, strategy.NewCutoff(15), strategy.NewFlat(10))

	assert.Equal(t, 10.0, p.debit(10))
	assert.Equal(t, 90.0, p.Balance())

	assert.Equal(t, 90.0, p.debit(500), "never more than the balance")
	assert.Zero(t, p.Balance())
	assert.Zero(t, p.debit(10))

	p.credit(25)
	assert.Equal(t, 25.0, p.Balance())
	assert.Equal(t, 100.0, p.Wagered())
	assert.Equal(t, 25.0, p.Returned())
	assert.Equal(t, -75.0, p.Net())
	assert.Equal(t, p.Returned()-p.Wagered(), p.Net())
	assert.Equal(t, 100.0, p.StartingBalance())
}

func TestNewPlayerRequiresPolicies(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { NewPlayer("p", 100, nil, strategy.NewFlat(10)) })
	assert.Panics(t, func() { NewPlayer("p", 100, strategy.NewCutoff(15), nil) })
}
