package game

import "fmt"

// RoundResult is the settled outcome of one hand
type RoundResult uint8

const (
	Blackjack RoundResult = iota
	Win
	Push
	Lose
	Bust
	Surrender
)

// Results lists every outcome in display order
var Results = []RoundResult{Blackjack, Win, Push, Lose, Bust, Surrender}

// String returns the outcome name
func (r RoundResult) String() string {
	switch r {
	case Blackjack:
		return "blackjack"
	case Win:
		return "win"
	case Push:
		return "push"
	case Lose:
		return "lose"
	case Bust:
		return "bust"
	case Surrender:
		return "surrender"
	default:
		return fmt.Sprintf("result(%d)", uint8(r))
	}
}

// IsWin reports Blackjack or Win
func (r RoundResult) IsWin() bool {
	return r == Blackjack || r == Win
}

// IsLoss reports Lose or Bust. Surrender is counted separately.
func (r RoundResult) IsLoss() bool {
	return r == Lose || r == Bust
}

// Payout returns the amount credited back for a hand staked with wager,
// the stake itself included.
func (r RoundResult) Payout(wager float64) float64 {
	switch r {
	case Blackjack:
		return wager * 2.5
	case Win:
		return wager * 2
	case Push:
		return wager
	case Surrender:
		return wager / 2
	default:
		return 0
	}
}
