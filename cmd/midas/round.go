package main

import (
	"fmt"

	"github.com/lox/midas/internal/game"
	"github.com/lox/midas/internal/report"
)

// RoundCmd plays one round with the configured seats and prints it
type RoundCmd struct {
	Seed *int64 `kong:"help='Shoe seed (overrides config)'"`
}

func (c *RoundCmd) Run(globals *Globals) error {
	logger := globals.Logger()

	cfg, err := globals.LoadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	seed := resolveSeed(logger, c.Seed, cfg.Table.Seed)

	players, err := buildPlayers(cfg)
	if err != nil {
		return err
	}

	g := game.NewGame(players,
		game.WithSeed(seed),
		game.WithMinimumBet(cfg.Table.MinimumBet),
		game.WithLogger(logger.WithPrefix("game")),
	)
	if !g.Active() {
		return fmt.Errorf("no player can cover the minimum bet of %.2f", cfg.Table.MinimumBet)
	}

	fmt.Print(report.Round(g.PlayRound()))
	printBalances(players)
	return nil
}
