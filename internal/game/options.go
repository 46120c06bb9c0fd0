package game

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/midas/cards"
	"github.com/lox/midas/internal/randutil"
)

// DefaultMinimumBet is the table minimum used when none is configured
const DefaultMinimumBet = 10.0

// Option configures a Game during creation.
type Option func(*gameConfig)

type gameConfig struct {
	shoe    *cards.Shoe
	rng     *rand.Rand
	minimum float64
	logger  *log.Logger
	checks  bool
}

// WithShoe uses the given shoe instead of building one. Overrides WithRNG.
func WithShoe(shoe *cards.Shoe) Option {
	return func(c *gameConfig) { c.shoe = shoe }
}

// WithRNG builds the shoe from rng
func WithRNG(rng *rand.Rand) Option {
	return func(c *gameConfig) { c.rng = rng }
}

// WithSeed builds the shoe from a deterministic generator seeded with seed
func WithSeed(seed int64) Option {
	return func(c *gameConfig) { c.rng = randutil.New(seed) }
}

// WithMinimumBet sets the table minimum. Players below it sit out.
func WithMinimumBet(minimum float64) Option {
	return func(c *gameConfig) { c.minimum = minimum }
}

// WithLogger sets the logger used for round and decision tracing
func WithLogger(logger *log.Logger) Option {
	return func(c *gameConfig) { c.logger = logger }
}

// WithInvariantChecks verifies card conservation after every card
// movement and panics with *InvariantError when it breaks.
func WithInvariantChecks() Option {
	return func(c *gameConfig) { c.checks = true }
}
