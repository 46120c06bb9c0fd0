package strategy

// HiLo is a Hi-Lo card counter. The running count goes up for 2-6, down
// for tens and aces, and resets on every reshuffle. Each positive count
// point adds one unit to the base wager.
type HiLo struct {
	Base     float64
	Unit     float64
	HoleCard HoleCardMode

	count int
}

// NewHiLo creates a counting policy. Non-positive base or unit fall back to DefaultBet.
func NewHiLo(base, unit float64, mode HoleCardMode) *HiLo {
	if base <= 0 {
		base = DefaultBet
	}
	if unit <= 0 {
		unit = DefaultBet
	}
	return &HiLo{Base: base, Unit: unit, HoleCard: mode}
}

// Bet implements BettingPolicy
func (h *HiLo) Bet(balance float64) float64 {
	wager := h.Base + h.Unit*float64(max(h.count, 0))
	return min(wager, balance)
}

// Observe implements BettingPolicy
func (h *HiLo) Observe(e CardEvent) {
	switch e.Kind {
	case CardDealt:
		h.count += e.Card.Face.HiLo()
	case HoleCardDealt:
		if h.HoleCard == CountOnDeal {
			h.count += e.Card.Face.HiLo()
		}
	case HoleCardRevealed:
		if h.HoleCard == CountOnReveal {
			h.count += e.Card.Face.HiLo()
		}
	case Shuffled:
		h.count = 0
	}
}

// RunningCount returns the count since the last reshuffle
func (h *HiLo) RunningCount() int {
	return h.count
}
