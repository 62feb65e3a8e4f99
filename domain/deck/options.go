package deck

import (
	"log/slog"
	"math/rand/v2"
)

// Option configures a Deck at construction time.
type Option func(*Deck)

// WithRand makes shuffles use rng instead of the cryptographic stream,
// typically a seeded generator for reproducible games and tests.
func WithRand(rng *rand.Rand) Option {
	return func(d *Deck) {
		d.rng = rng
	}
}

// WithSeed is shorthand for WithRand with a PCG generator seeded by seed.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func WithLogger(logger *slog.Logger) Option {
	return func(d *Deck) {
		if logger != nil {
			d.logger = logger
		}
	}
}
