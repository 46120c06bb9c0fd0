package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/lox/midas/internal/game"
)

// SeatResult is the outcome of one seat over one simulated game
type SeatResult struct {
	Game   int       // Game index within the batch
	GameID uuid.UUID // Unique identifier for the game
	Seed   int64     // Shoe seed, for replay
	Seat   string

	Rounds int // Rounds the seat was dealt into
	Counts map[game.RoundResult]int

	Wagered  float64 // Total staked, doubles and splits included
	Returned float64 // Total paid back by settlement

	StartBalance float64
	FinalBalance float64
}

// Net returns the change in balance over the game
func (r SeatResult) Net() float64 {
	return r.FinalBalance - r.StartBalance
}

// Wins counts blackjacks and wins
func (r SeatResult) Wins() int {
	return r.Counts[game.Blackjack] + r.Counts[game.Win]
}

// Draws counts pushes
func (r SeatResult) Draws() int {
	return r.Counts[game.Push]
}

// Losses counts every hand that lost money, surrenders included
func (r SeatResult) Losses() int {
	return r.Counts[game.Lose] + r.Counts[game.Bust] + r.Counts[game.Surrender]
}

// Hands returns the number of hands settled, split hands included
func (r SeatResult) Hands() int {
	total := 0
	for _, n := range r.Counts {
		total += n
	}
	return total
}

// Statistics aggregates seat results across many games
type Statistics struct {
	Games   int
	SumNet  float64
	SumNet2 float64   // Sum of squares for variance calculation
	Values  []float64 // Net result per game for median/percentile calculation

	Rounds int
	Counts map[game.RoundResult]int

	Wagered  float64
	Returned float64
	AllNet   float64 // Σ(final - start), checked against Returned - Wagered

	Ruined int // Games that ended unable to cover the starting wager
}

// Mean returns the average net result per game
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumNet / float64(s.Games)
}

// Variance returns the sample variance of net results
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumNet2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of net results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Add incorporates a seat result into the statistics. minimum is the
// table minimum used to decide whether the seat was ruined.
func (s *Statistics) Add(result SeatResult, minimum float64) {
	net := result.Net()
	s.Games++
	s.SumNet += net
	s.SumNet2 += net * net
	s.Values = append(s.Values, net)

	s.Rounds += result.Rounds
	if s.Counts == nil {
		s.Counts = make(map[game.RoundResult]int, len(game.Results))
	}
	for r, n := range result.Counts {
		s.Counts[r] += n
	}

	s.Wagered += result.Wagered
	s.Returned += result.Returned
	s.AllNet += net

	if result.FinalBalance < minimum {
		s.Ruined++
	}
}

// Hands returns the number of hands settled across all games
func (s *Statistics) Hands() int {
	total := 0
	for _, n := range s.Counts {
		total += n
	}
	return total
}

// Rate returns the share of hands that ended with result r
func (s *Statistics) Rate(r game.RoundResult) float64 {
	hands := s.Hands()
	if hands == 0 {
		return 0
	}
	return float64(s.Counts[r]) / float64(hands)
}

// Edge returns the player's return per unit wagered. Negative means the
// house is winning.
func (s *Statistics) Edge() float64 {
	if s.Wagered == 0 {
		return 0
	}
	return (s.Returned - s.Wagered) / s.Wagered
}

// MeanRounds returns the average number of rounds per game
func (s *Statistics) MeanRounds() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Rounds) / float64(s.Games)
}

// Median returns the median net result
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the net result at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// IsLedgerBalanced checks that everything paid out minus everything staked
// equals the total change in balances.
func (s *Statistics) IsLedgerBalanced() bool {
	return math.Abs((s.Returned-s.Wagered)-s.AllNet) <= 1e-6
}

// Validate performs consistency checks over the aggregated data
func (s *Statistics) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: returned=%.2f wagered=%.2f net=%.2f",
			s.Returned, s.Wagered, s.AllNet)
	}

	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}

	if len(s.Values) != s.Games {
		return fmt.Errorf("values array length (%d) does not match games count (%d)",
			len(s.Values), s.Games)
	}

	// every round dealt the seat at least one hand
	if hands := s.Hands(); hands < s.Rounds {
		return fmt.Errorf("hands (%d) fewer than rounds (%d)", hands, s.Rounds)
	}

	if s.Ruined > s.Games {
		return fmt.Errorf("ruined games (%d) exceeds games (%d)", s.Ruined, s.Games)
	}

	return nil
}

// BySeat groups results per seat, returning seat names in first-seen order.
func BySeat(results []SeatResult, minimum float64) ([]string, map[string]*Statistics) {
	var order []string
	stats := make(map[string]*Statistics)
	for _, r := range results {
		s, ok := stats[r.Seat]
		if !ok {
			s = &Statistics{}
			stats[r.Seat] = s
			order = append(order, r.Seat)
		}
		s.Add(r, minimum)
	}
	return order, stats
}
