// Package config loads the HCL file describing a blackjack table, the
// seats playing at it and the batch simulation parameters.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/midas/internal/game"
	"github.com/lox/midas/internal/simulator"
	"github.com/lox/midas/internal/strategy"
)

// DefaultBalance is the starting bankroll of a player without one
const DefaultBalance = 100.0

// Config represents the complete configuration file
type Config struct {
	Table      *TableConfig      `hcl:"table,block"`
	Players    []PlayerConfig    `hcl:"player,block"`
	Simulation *SimulationConfig `hcl:"simulation,block"`
}

// TableConfig contains table-level settings
type TableConfig struct {
	MinimumBet float64 `hcl:"minimum_bet,optional"`
	Seed       int64   `hcl:"seed,optional"`
}

// PlayerConfig defines one seat and the policies it plays with
type PlayerConfig struct {
	Name      string  `hcl:"name,label"`
	Balance   float64 `hcl:"balance,optional"`
	Action    string  `hcl:"action,optional"`
	Betting   string  `hcl:"betting,optional"`
	Bet       float64 `hcl:"bet,optional"`
	Unit      float64 `hcl:"unit,optional"`
	Cutoff    int     `hcl:"cutoff,optional"`
	HoleCard  string  `hcl:"hole_card,optional"`
	Surrender bool    `hcl:"surrender,optional"`
}

// SimulationConfig contains batch settings
type SimulationConfig struct {
	Games     int `hcl:"games,optional"`
	Workers   int `hcl:"workers,optional"`
	MaxRounds int `hcl:"max_rounds,optional"`
}

// Default returns the configuration used when no file is present: a single
// flat-betting cutoff player.
func Default() *Config {
	c := &Config{
		Players: []PlayerConfig{{Name: "player"}},
	}
	c.applyDefaults()
	return c
}

// Load loads configuration from an HCL file. A missing file yields Default.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if len(config.Players) == 0 {
		config.Players = []PlayerConfig{{Name: "player"}}
	}
	config.applyDefaults()

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Table == nil {
		c.Table = &TableConfig{}
	}
	if c.Table.MinimumBet == 0 {
		c.Table.MinimumBet = game.DefaultMinimumBet
	}

	if c.Simulation == nil {
		c.Simulation = &SimulationConfig{}
	}
	if c.Simulation.Games == 0 {
		c.Simulation.Games = simulator.DefaultGames
	}
	if c.Simulation.MaxRounds == 0 {
		c.Simulation.MaxRounds = simulator.DefaultMaxRounds
	}

	for i := range c.Players {
		p := &c.Players[i]
		if p.Balance == 0 {
			p.Balance = DefaultBalance
		}
		if p.Action == "" {
			p.Action = strategy.ActionCutoff
		}
		if p.Betting == "" {
			p.Betting = strategy.BettingFlat
		}
		if p.Bet == 0 {
			p.Bet = c.Table.MinimumBet
		}
		if p.Unit == 0 {
			p.Unit = p.Bet
		}
		if p.Cutoff == 0 {
			p.Cutoff = strategy.DefaultCutoff
		}
		if p.HoleCard == "" {
			p.HoleCard = strategy.CountOnDeal.String()
		}
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Table.MinimumBet <= 0 {
		return fmt.Errorf("table: minimum bet must be positive")
	}

	if len(c.Players) == 0 {
		return fmt.Errorf("at least one player must be configured")
	}
	if len(c.Players) > game.MaxSeats {
		return fmt.Errorf("at most %d players can be seated, got %d", game.MaxSeats, len(c.Players))
	}

	seen := make(map[string]bool, len(c.Players))
	for _, p := range c.Players {
		if seen[p.Name] {
			return fmt.Errorf("player %s: duplicate name", p.Name)
		}
		seen[p.Name] = true

		if p.Balance < 0 {
			return fmt.Errorf("player %s: balance must not be negative", p.Name)
		}
		if p.Bet <= 0 || p.Unit <= 0 {
			return fmt.Errorf("player %s: bet and unit must be positive", p.Name)
		}
		if p.Cutoff < 2 || p.Cutoff > 21 {
			return fmt.Errorf("player %s: cutoff must be between 2 and 21", p.Name)
		}
		// building a policy once checks the names and the hole card mode
		if _, err := strategy.NewActionPolicy(p.ActionSpec()); err != nil {
			return fmt.Errorf("player %s: %w", p.Name, err)
		}
		if _, err := strategy.NewBettingPolicy(p.BettingSpec()); err != nil {
			return fmt.Errorf("player %s: %w", p.Name, err)
		}
	}

	if c.Simulation.Games < 1 {
		return fmt.Errorf("simulation: games must be positive")
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("simulation: workers must not be negative")
	}
	if c.Simulation.MaxRounds < 1 {
		return fmt.Errorf("simulation: max rounds must be positive")
	}

	return nil
}

// ActionSpec returns the registry description of the player's action policy
func (p PlayerConfig) ActionSpec() strategy.ActionSpec {
	return strategy.ActionSpec{Name: p.Action, Cutoff: p.Cutoff, Surrender: p.Surrender}
}

// BettingSpec returns the registry description of the player's betting policy
func (p PlayerConfig) BettingSpec() strategy.BettingSpec {
	return strategy.BettingSpec{Name: p.Betting, Bet: p.Bet, Unit: p.Unit, HoleCard: p.HoleCard}
}

// Seats converts the configured players into simulator seats
func (c *Config) Seats() []simulator.Seat {
	seats := make([]simulator.Seat, len(c.Players))
	for i, p := range c.Players {
		seats[i] = simulator.NewSeat(p.Name, p.Balance, p.ActionSpec(), p.BettingSpec())
	}
	return seats
}

// SimulatorConfig builds a simulator configuration. Seat policies are
// created fresh per game.
func (c *Config) SimulatorConfig() simulator.Config {
	return simulator.Config{
		Games:      c.Simulation.Games,
		MaxRounds:  c.Simulation.MaxRounds,
		Workers:    c.Simulation.Workers,
		Seed:       c.Table.Seed,
		MinimumBet: c.Table.MinimumBet,
		Seats:      c.Seats(),
	}
}
