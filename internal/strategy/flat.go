package strategy

// DefaultBet is the flat wager used when none is configured
const DefaultBet = 10.0

// Flat bets the same amount every round and ignores card events.
type Flat struct {
	Amount float64
}

// NewFlat creates a flat betting policy. A non-positive amount uses DefaultBet.
func NewFlat(amount float64) *Flat {
	if amount <= 0 {
		amount = DefaultBet
	}
	return &Flat{Amount: amount}
}

// Bet implements BettingPolicy
func (f *Flat) Bet(balance float64) float64 {
	return min(f.Amount, balance)
}

// Observe implements BettingPolicy
func (f *Flat) Observe(CardEvent) {}
