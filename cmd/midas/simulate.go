package main

import (
	"fmt"

	"github.com/coder/quartz"

	"github.com/lox/midas/internal/report"
	"github.com/lox/midas/internal/simulator"
	"github.com/lox/midas/internal/strategy"
)

// SimulateCmd runs a batch of independent games
type SimulateCmd struct {
	Games     *int   `kong:"help='Number of games to simulate (overrides config)'"`
	Workers   *int   `kong:"help='Parallel workers, 0 for one per CPU (overrides config)'"`
	Seed      *int64 `kong:"help='Master RNG seed (overrides config)'"`
	MaxRounds *int   `kong:"name='max-rounds',help='Round limit per game (overrides config)'"`
	CSV       string `kong:"name='csv',type='path',help='Write per-game results to this CSV file'"`
}

func (c *SimulateCmd) Run(globals *Globals) error {
	logger := globals.Logger()

	cfg, err := globals.LoadConfig()
	if err != nil {
		return err
	}
	if c.Games != nil {
		cfg.Simulation.Games = *c.Games
	}
	if c.Workers != nil {
		cfg.Simulation.Workers = *c.Workers
	}
	if c.MaxRounds != nil {
		cfg.Simulation.MaxRounds = *c.MaxRounds
	}
	cfg.Table.Seed = resolveSeed(logger, c.Seed, cfg.Table.Seed)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	for _, p := range cfg.Players {
		if p.Action == strategy.ActionHuman {
			return fmt.Errorf("player %s: human players cannot be simulated, use the play command", p.Name)
		}
	}

	simCfg := cfg.SimulatorConfig()
	simCfg.Clock = quartz.NewReal()
	simCfg.Logger = logger.WithPrefix("simulator")

	ctx, cancel := signalContext(logger)
	defer cancel()

	result, err := simulator.New(simCfg).Run(ctx)
	if err != nil {
		return err
	}

	fmt.Print(report.Summary(result))

	if c.CSV != "" {
		if err := report.SaveCSV(c.CSV, result.Games); err != nil {
			return err
		}
		logger.Info("Saved results", "path", c.CSV, "rows", len(result.Games))
	}
	return nil
}
