package generator

import (
	"math/rand"
	"time"
)

// Option customizes a Synthesizer before it is built.
type Option func(*options)

type options struct {
	rng   Rand
	clock func() time.Time
}

func newOptions(opts ...Option) options {
	o := options{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithSeed attaches a math/rand source seeded with seed. Same seed, same batch.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches an explicit random source. Panics on nil.
func WithRand(r Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(o *options) {
		o.rng = r
	}
}

// WithClock replaces time.Now as the generation clock. Panics on nil.
func WithClock(fn func() time.Time) Option {
	if fn == nil {
		panic("generator: WithClock(nil)")
	}
	return func(o *options) {
		o.clock = fn
	}
}
