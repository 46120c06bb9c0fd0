package game

import (
	"fmt"

	"github.com/lox/midas/cards"
	"github.com/lox/midas/internal/strategy"
)

// ContractError is the panic value raised when an action policy returns
// an action that is illegal for the hand it was asked about. It means the
// policy is broken; the engine never corrects it.
type ContractError struct {
	Player string
	Action strategy.Action
	Hand   cards.Hand
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("player %s: illegal action %s on hand %s (%d cards)",
		e.Player, e.Action, e.Hand, e.Hand.Len())
}

// InvariantError is the panic value raised by invariant checks when the
// table no longer holds exactly one set of cards.
type InvariantError struct {
	Shoe, Discards, InPlay int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("card conservation broken: shoe %d + discards %d + in play %d != %d",
		e.Shoe, e.Discards, e.InPlay, cards.SetSize)
}
