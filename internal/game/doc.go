// Package game implements the blackjack round engine.
//
// The main type is Game, which owns a Shoe and a set of seated Players and
// plays one complete round per call: dealing, player decisions (including
// splits), dealer play, settlement and cleanup.
//
// # Basic Usage
//
//	players := []*game.Player{
//	    game.NewPlayer("alice", 100, strategy.NewBasicStrategy(), strategy.NewFlat(10)),
//	}
//	g := game.NewGame(players, game.WithSeed(42))
//	for players[0].Balance() >= g.MinimumBet() {
//	    results := g.Round()
//	    // ...
//	}
//
// # Deterministic Testing
//
// Inject a shoe to control every card dealt:
//
//	shoe := cards.NewStackedShoe(randutil.New(1), cards.MustParseCards("As Kd 9c 7h")...)
//	g := game.NewGame(players, game.WithShoe(shoe), game.WithInvariantChecks())
//
// # Policies
//
// The engine only talks to the strategy.ActionPolicy and
// strategy.BettingPolicy contracts. Action policies see their own hand and
// the dealer's up-card. Betting policies see every card event, including
// the dealer's hole card through a separate concealed path, and are told
// when the shoe is reshuffled.
package game
