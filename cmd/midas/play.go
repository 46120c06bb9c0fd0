package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/midas/internal/config"
	"github.com/lox/midas/internal/game"
	"github.com/lox/midas/internal/report"
	"github.com/lox/midas/internal/strategy"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

// PlayCmd seats a human at the table, optionally alongside the configured players
type PlayCmd struct {
	Name    string  `kong:"default='you',help='Your seat name'"`
	Balance float64 `kong:"default='100',help='Starting balance'"`
	Bet     float64 `kong:"help='Flat bet per round (defaults to the table minimum)'"`
	Seed    *int64  `kong:"help='Shoe seed (overrides config)'"`
	Bots    bool    `kong:"help='Also seat the players from the configuration file'"`
}

func (c *PlayCmd) Run(globals *Globals) error {
	logger := globals.Logger()

	cfg, err := globals.LoadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	seed := resolveSeed(logger, c.Seed, cfg.Table.Seed)

	bet := c.Bet
	if bet <= 0 {
		bet = cfg.Table.MinimumBet
	}

	policy, err := strategy.NewActionPolicy(strategy.ActionSpec{
		Name: strategy.ActionHuman,
		In:   os.Stdin,
		Out:  os.Stdout,
	})
	if err != nil {
		return err
	}
	human := policy.(*strategy.Human)
	players := []*game.Player{game.NewPlayer(c.Name, c.Balance, human, strategy.NewFlat(bet))}

	if c.Bots {
		if err := checkBots(cfg, c.Name); err != nil {
			return err
		}
		bots, err := buildPlayers(cfg)
		if err != nil {
			return err
		}
		players = append(players, bots...)
	}

	g := game.NewGame(players,
		game.WithSeed(seed),
		game.WithMinimumBet(cfg.Table.MinimumBet),
		game.WithLogger(logger.WithPrefix("game")),
	)

	fmt.Println(titleStyle.Render(" ♠ ♥ Blackjack ♦ ♣ "))
	fmt.Println()

	you := players[0]
	for you.Balance() >= g.MinimumBet() && human.Continue() {
		fmt.Print(report.Round(g.PlayRound()))
		printBalances(players)
		if human.Closed() {
			break
		}
	}

	fmt.Printf("\nFinished after %d rounds with %.2f (%+.2f)\n", g.Rounds(), you.Balance(), you.Net())
	return nil
}

// checkBots verifies the configured players can sit next to the human seat
// called name. Only one seat may read from the terminal.
func checkBots(cfg *config.Config, name string) error {
	if len(cfg.Players)+1 > game.MaxSeats {
		return fmt.Errorf("at most %d players can be seated, %d configured plus you", game.MaxSeats, len(cfg.Players))
	}
	for _, p := range cfg.Players {
		if p.Name == name {
			return fmt.Errorf("player %s: name clashes with your seat", p.Name)
		}
		if p.Action == strategy.ActionHuman {
			return fmt.Errorf("player %s: only your seat can be human", p.Name)
		}
	}
	return nil
}

// buildPlayers creates a player per configured seat
func buildPlayers(cfg *config.Config) ([]*game.Player, error) {
	players := make([]*game.Player, 0, len(cfg.Players))
	for _, p := range cfg.Players {
		action, err := strategy.NewActionPolicy(p.ActionSpec())
		if err != nil {
			return nil, fmt.Errorf("player %s: %w", p.Name, err)
		}
		betting, err := strategy.NewBettingPolicy(p.BettingSpec())
		if err != nil {
			return nil, fmt.Errorf("player %s: %w", p.Name, err)
		}
		players = append(players, game.NewPlayer(p.Name, p.Balance, action, betting))
	}
	return players, nil
}

func printBalances(players []*game.Player) {
	for _, p := range players {
		fmt.Printf("  %s: %.2f (%+.2f)\n", p.Name, p.Balance(), p.Net())
	}
	fmt.Println()
}
