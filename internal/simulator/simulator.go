package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lox/midas/internal/game"
	"github.com/lox/midas/internal/randutil"
	"github.com/lox/midas/internal/statistics"
	"github.com/lox/midas/internal/strategy"
)

const (
	DefaultGames            = 1000
	DefaultMaxRounds        = 100_000
	DefaultProgressInterval = 5 * time.Second
)

// Seat describes a player to build fresh for every simulated game. The
// factories are called once per game so no policy state is shared.
type Seat struct {
	Name    string
	Balance float64
	Action  func() (strategy.ActionPolicy, error)
	Betting func() (strategy.BettingPolicy, error)
}

// Config holds configuration for running simulations
type Config struct {
	Games      int
	MaxRounds  int // Per game; a game also ends when nobody covers the minimum
	Workers    int
	Seed       int64
	MinimumBet float64
	Seats      []Seat

	ProgressInterval time.Duration
	OnProgress       func(Progress) // Defaults to logging at Info

	Clock  quartz.Clock
	Logger *log.Logger
}

// Progress is a snapshot of a running batch
type Progress struct {
	Completed int
	Total     int
	Elapsed   time.Duration
}

// Result holds everything a batch produced
type Result struct {
	Seats   []string // Seat names in configuration order
	Games   []statistics.SeatResult
	Stats   map[string]*statistics.Statistics
	Elapsed time.Duration
}

// Simulator runs many independent blackjack games
type Simulator struct {
	config    Config
	completed atomic.Int64
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Games <= 0 {
		config.Games = DefaultGames
	}
	if config.MaxRounds <= 0 {
		config.MaxRounds = DefaultMaxRounds
	}
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.MinimumBet <= 0 {
		config.MinimumBet = game.DefaultMinimumBet
	}
	if config.ProgressInterval <= 0 {
		config.ProgressInterval = DefaultProgressInterval
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}

	s := &Simulator{config: config}
	if s.config.OnProgress == nil {
		s.config.OnProgress = s.logProgress
	}
	return s
}

// Run plays every game and aggregates the results. Games run in parallel
// on up to Workers goroutines; results are ordered by game index so a
// batch is reproducible from its seed regardless of scheduling.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	cfg := s.config
	if len(cfg.Seats) == 0 {
		return nil, fmt.Errorf("no seats configured")
	}
	if len(cfg.Seats) > game.MaxSeats {
		return nil, fmt.Errorf("at most %d seats allowed, got %d", game.MaxSeats, len(cfg.Seats))
	}
	names := make(map[string]bool, len(cfg.Seats))
	for _, seat := range cfg.Seats {
		if names[seat.Name] {
			return nil, fmt.Errorf("duplicate seat name %q", seat.Name)
		}
		names[seat.Name] = true
	}

	start := cfg.Clock.Now()
	cfg.Logger.Info("Starting simulation", "games", cfg.Games, "workers", cfg.Workers, "seats", len(cfg.Seats), "seed", cfg.Seed)

	tickCtx, stopTicker := context.WithCancel(ctx)
	ticker := cfg.Clock.TickerFunc(tickCtx, cfg.ProgressInterval, func() error {
		cfg.OnProgress(Progress{
			Completed: int(s.completed.Load()),
			Total:     cfg.Games,
			Elapsed:   cfg.Clock.Since(start),
		})
		return nil
	}, "simulator", "progress")

	perGame := make([][]statistics.SeatResult, cfg.Games)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := 0; i < cfg.Games; i++ {
		g.Go(func() error {
			results, err := s.PlayGame(gctx, i)
			if err != nil {
				return err
			}
			perGame[i] = results
			s.completed.Add(1)
			return nil
		})
	}

	err := g.Wait()
	stopTicker()
	_ = ticker.Wait()
	if err != nil {
		return nil, err
	}

	result := &Result{Elapsed: cfg.Clock.Since(start)}
	for _, seat := range cfg.Seats {
		result.Seats = append(result.Seats, seat.Name)
	}
	for _, results := range perGame {
		result.Games = append(result.Games, results...)
	}

	_, result.Stats = statistics.BySeat(result.Games, cfg.MinimumBet)
	for _, name := range result.Seats {
		if err := result.Stats[name].Validate(); err != nil {
			return nil, fmt.Errorf("statistics validation failed for seat %s: %w", name, err)
		}
	}

	cfg.Logger.Info("Simulation finished", "games", cfg.Games, "elapsed", result.Elapsed)
	return result, nil
}

// PlayGame plays the game at index until every seat is below the minimum
// or MaxRounds is reached, and returns one result per seat. Policy contract
// violations are reported as errors carrying the game's seed for replay.
func (s *Simulator) PlayGame(ctx context.Context, index int) (results []statistics.SeatResult, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := s.config
	seed := randutil.Derive(cfg.Seed, index)
	logger := cfg.Logger.With("game", index)

	players := make([]*game.Player, len(cfg.Seats))
	for i, seat := range cfg.Seats {
		action, err := seat.Action()
		if err != nil {
			return nil, fmt.Errorf("seat %s: %w", seat.Name, err)
		}
		betting, err := seat.Betting()
		if err != nil {
			return nil, fmt.Errorf("seat %s: %w", seat.Name, err)
		}
		players[i] = game.NewPlayer(seat.Name, seat.Balance, action, betting)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("game %d (seed %d) aborted: %v", index, seed, r)
		}
	}()

	g := game.NewGame(players,
		game.WithSeed(seed),
		game.WithMinimumBet(cfg.MinimumBet),
		game.WithLogger(logger),
	)

	rounds := make(map[*game.Player]int, len(players))
	counts := make(map[*game.Player]map[game.RoundResult]int, len(players))
	for _, p := range players {
		counts[p] = make(map[game.RoundResult]int)
	}

	for g.Active() && g.Rounds() < cfg.MaxRounds {
		if g.Rounds()%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		report := g.PlayRound()
		seen := make(map[*game.Player]bool, len(players))
		for _, h := range report.Hands {
			counts[h.Player][h.Result]++
			if !seen[h.Player] {
				seen[h.Player] = true
				rounds[h.Player]++
			}
		}
	}

	id := GameID(cfg.Seed, index)
	results = make([]statistics.SeatResult, len(players))
	for i, p := range players {
		results[i] = statistics.SeatResult{
			Game:         index,
			GameID:       id,
			Seed:         seed,
			Seat:         p.Name,
			Rounds:       rounds[p],
			Counts:       counts[p],
			Wagered:      p.Wagered(),
			Returned:     p.Returned(),
			StartBalance: p.StartingBalance(),
			FinalBalance: p.Balance(),
		}
	}

	logger.Debug("Game finished", "rounds", g.Rounds(), "seed", seed)
	return results, nil
}

// GameID returns the stable identifier of a game within a batch
func GameID(master int64, index int) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, fmt.Appendf(nil, "midas/%d/%d", master, index))
}

func (s *Simulator) logProgress(p Progress) {
	rate := 0.0
	if p.Elapsed > 0 {
		rate = float64(p.Completed) / p.Elapsed.Seconds()
	}
	s.config.Logger.Info("Simulation progress",
		"completed", p.Completed,
		"total", p.Total,
		"games_per_sec", fmt.Sprintf("%.1f", rate))
}

// NewSeat builds a seat whose policies come from the strategy registry
func NewSeat(name string, balance float64, action strategy.ActionSpec, betting strategy.BettingSpec) Seat {
	return Seat{
		Name:    name,
		Balance: balance,
		Action:  func() (strategy.ActionPolicy, error) { return strategy.NewActionPolicy(action) },
		Betting: func() (strategy.BettingPolicy, error) { return strategy.NewBettingPolicy(betting) },
	}
}
