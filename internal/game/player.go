package game

import (
	"math"

	"github.com/lox/midas/internal/strategy"
)

// Player is a seat at the table: a bankroll plus the two policies that
// play it. The balance is only changed by the round engine.
type Player struct {
	Name string

	balance float64
	start   float64

	action  strategy.ActionPolicy
	betting strategy.BettingPolicy

	wagered  float64
	returned float64
}

// NewPlayer creates a player with a starting balance and its policies
func NewPlayer(name string, balance float64, action strategy.ActionPolicy, betting strategy.BettingPolicy) *Player {
	if action == nil || betting == nil {
		panic("player requires both an action and a betting policy")
	}
	return &Player{
		Name:    name,
		balance: balance,
		start:   balance,
		action:  action,
		betting: betting,
	}
}

// Balance returns the current bankroll
func (p *Player) Balance() float64 {
	return p.balance
}

// StartingBalance returns the bankroll the player was created with
func (p *Player) StartingBalance() float64 {
	return p.start
}

// Wagered returns the total staked so far, doubles and splits included
func (p *Player) Wagered() float64 {
	return p.wagered
}

// Returned returns the total paid back by settlement
func (p *Player) Returned() float64 {
	return p.returned
}

// Net returns the change in balance since creation
func (p *Player) Net() float64 {
	return p.balance - p.start
}

// wager asks the betting policy for a stake and clamps it into
// [minimum, balance]. Callers guarantee balance >= minimum.
func (p *Player) wager(minimum float64) float64 {
	w := p.betting.Bet(p.balance)
	if math.IsNaN(w) || w < minimum {
		w = minimum
	}
	return min(w, p.balance)
}

// debit stakes up to amount and returns what was actually taken.
func (p *Player) debit(amount float64) float64 {
	amount = min(max(amount, 0), p.balance)
	p.balance -= amount
	p.wagered += amount
	return amount
}

func (p *Player) credit(amount float64) {
	p.balance += amount
	p.returned += amount
}
