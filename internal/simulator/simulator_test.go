package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/midas/cards"
	"github.com/lox/midas/internal/game"
	"github.com/lox/midas/internal/strategy"
)

func testSeats() []Seat {
	return []Seat{
		NewSeat("basic", 100,
			strategy.ActionSpec{Name: strategy.ActionBasic},
			strategy.BettingSpec{Name: strategy.BettingHiLo, Bet: 10, Unit: 10}),
		NewSeat("cutoff", 100,
			strategy.ActionSpec{Name: strategy.ActionCutoff, Cutoff: 15},
			strategy.BettingSpec{Name: strategy.BettingFlat, Bet: 10}),
	}
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})
}

func TestNewAppliesDefaults(t *testing.T) {
	t.Parallel()
	s := New(Config{})

	assert.Equal(t, DefaultGames, s.config.Games)
	assert.Equal(t, DefaultMaxRounds, s.config.MaxRounds)
	assert.Positive(t, s.config.Workers)
	assert.Equal(t, game.DefaultMinimumBet, s.config.MinimumBet)
	assert.NotNil(t, s.config.Clock)
	assert.NotNil(t, s.config.OnProgress)
}

func TestRun(t *testing.T) {
	t.Parallel()
	s := New(Config{
		Games:     50,
		MaxRounds: 5000,
		Workers:   4,
		Seed:      12345,
		Seats:     testSeats(),
		Clock:     quartz.NewMock(t),
		Logger:    quietLogger(),
	})

	result, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"basic", "cutoff"}, result.Seats)
	assert.Len(t, result.Games, 100)
	assert.Zero(t, result.Elapsed, "mock clock never advanced")

	for i, r := range result.Games {
		assert.Equal(t, i/2, r.Game)
		assert.Equal(t, GameID(12345, r.Game), r.GameID)
		assert.Equal(t, r.Returned-r.Wagered, r.Net(), "game %d seat %s", r.Game, r.Seat)
		assert.GreaterOrEqual(t, r.FinalBalance, 0.0)
		assert.LessOrEqual(t, r.Rounds, 5000)
	}

	for _, name := range result.Seats {
		stats := result.Stats[name]
		require.NotNil(t, stats)
		assert.Equal(t, 50, stats.Games)
		assert.NoError(t, stats.Validate())
		assert.Positive(t, stats.Rounds)
	}
}

func TestRunIsReproducibleAcrossWorkerCounts(t *testing.T) {
	t.Parallel()

	run := func(workers int) *Result {
		s := New(Config{
			Games:     20,
			MaxRounds: 2000,
			Workers:   workers,
			Seed:      777,
			Seats:     testSeats(),
			Clock:     quartz.NewMock(t),
		})
		result, err := s.Run(context.Background())
		require.NoError(t, err)
		return result
	}

	serial := run(1)
	parallel := run(8)
	assert.Equal(t, serial.Games, parallel.Games)
}

func TestRunDifferentSeedsDiffer(t *testing.T) {
	t.Parallel()

	run := func(seed int64) *Result {
		s := New(Config{Games: 10, MaxRounds: 500, Seed: seed, Seats: testSeats(), Clock: quartz.NewMock(t)})
		result, err := s.Run(context.Background())
		require.NoError(t, err)
		return result
	}

	assert.NotEqual(t, run(1).Games, run(2).Games)
}

func TestRunStopsAtMaxRounds(t *testing.T) {
	t.Parallel()
	s := New(Config{
		Games:     3,
		MaxRounds: 25,
		Seats: []Seat{NewSeat("whale", 1e9,
			strategy.ActionSpec{Name: strategy.ActionBasic},
			strategy.BettingSpec{Name: strategy.BettingFlat, Bet: 10})},
		Clock: quartz.NewMock(t),
	})

	result, err := s.Run(context.Background())
	require.NoError(t, err)
	for _, r := range result.Games {
		assert.Equal(t, 25, r.Rounds)
	}
}

func TestRunValidatesSeats(t *testing.T) {
	t.Parallel()

	_, err := New(Config{Games: 1, Clock: quartz.NewMock(t)}).Run(context.Background())
	assert.Error(t, err)

	seats := append(testSeats(), testSeats()[0])
	_, err = New(Config{Games: 1, Seats: seats, Clock: quartz.NewMock(t)}).Run(context.Background())
	assert.ErrorContains(t, err, "duplicate seat")

	var crowd []Seat
	for i := 0; i < 27; i++ {
		crowd = append(crowd, NewSeat(fmt.Sprintf("seat-%d", i), 100,
			strategy.ActionSpec{Name: strategy.ActionBasic},
			strategy.BettingSpec{Name: strategy.BettingFlat, Bet: 10}))
	}
	_, err = New(Config{Games: 1, Seats: crowd, Clock: quartz.NewMock(t)}).Run(context.Background())
	assert.ErrorContains(t, err, "at most 7 seats")

	bad := []Seat{NewSeat("bad", 100,
		strategy.ActionSpec{Name: "psychic"},
		strategy.BettingSpec{Name: strategy.BettingFlat})}
	_, err = New(Config{Games: 2, Seats: bad, Clock: quartz.NewMock(t)}).Run(context.Background())
	assert.ErrorContains(t, err, "psychic")
}

func TestRunReportsBrokenPolicies(t *testing.T) {
	t.Parallel()
	broken := Seat{
		Name:    "broken",
		Balance: 100,
		Action: func() (strategy.ActionPolicy, error) {
			return strategy.ActionFunc(func(cards.Hand, cards.Card) strategy.Action {
				return strategy.Split
			}), nil
		},
		Betting: func() (strategy.BettingPolicy, error) { return strategy.NewFlat(10), nil },
	}

	_, err := New(Config{Games: 4, Seed: 3, Seats: []Seat{broken}, Clock: quartz.NewMock(t)}).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "illegal action split")
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Config{Games: 10, Seats: testSeats(), Clock: quartz.NewMock(t)}).Run(ctx)
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}

// slowBettor blocks the first wager until released
type slowBettor struct {
	release chan struct{}
}

func (b *slowBettor) Bet(float64) float64 {
	<-b.release
	return 10
}

func (b *slowBettor) Observe(strategy.CardEvent) {}

func TestRunReportsProgressOnTick(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	release := make(chan struct{})
	blocking := Seat{
		Name:    "slow",
		Balance: 100,
		Action:  func() (strategy.ActionPolicy, error) { return strategy.NewBasicStrategy(), nil },
		Betting: func() (strategy.BettingPolicy, error) { return &slowBettor{release: release}, nil },
	}

	progress := make(chan Progress, 16)
	mClock := quartz.NewMock(t)
	s := New(Config{
		Games:            1,
		MaxRounds:        1,
		Seats:            []Seat{blocking},
		Clock:            mClock,
		ProgressInterval: time.Second,
		OnProgress:       func(p Progress) { progress <- p },
	})

	done := make(chan error, 1)
	go func() {
		_, err := s.Run(ctx)
		done <- err
	}()

	// the ticker may not be registered yet, so keep advancing until it fires
	var got Progress
	for waiting := true; waiting; {
		mClock.Advance(time.Second).MustWait(ctx)
		select {
		case got = <-progress:
			waiting = false
		case <-time.After(10 * time.Millisecond):
		case <-ctx.Done():
			t.Fatal("no progress reported")
		}
	}

	assert.Equal(t, 1, got.Total)
	assert.Zero(t, got.Completed)
	assert.Positive(t, got.Elapsed)

	close(release)
	require.NoError(t, <-done)
}

func TestGameIDIsStable(t *testing.T) {
	t.Parallel()
	assert.Equal(t, GameID(1, 2), GameID(1, 2))
	assert.NotEqual(t, GameID(1, 2), GameID(1, 3))
	assert.NotEqual(t, GameID(1, 2), GameID(2, 2))
}
