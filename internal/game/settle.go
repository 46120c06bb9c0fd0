package game

import "github.com/lox/midas/cards"

// settle compares a finished hand against the dealer's final hand.
func settle(h *ActiveHand, dealer cards.Hand) RoundResult {
	value := h.Hand.Value()
	dealerValue := dealer.Value()
	dealerBlackjack := dealer.IsBlackjack()

	switch {
	case h.Surrendered:
		return Surrender
	case h.Blackjack && !dealerBlackjack:
		return Blackjack
	case value > 21:
		return Bust
	case dealerBlackjack && !h.Blackjack:
		return Lose
	case dealerValue > 21 || dealerValue < value:
		return Win
	case dealerValue > value:
		return Lose
	default:
		return Push
	}
}
