package conformance

import "runtime"

const (
	defaultSamples = 1000
	defaultSeed    = 1
)

type config struct {
	samples int
	seed    uint64
	workers int
}

func defaultConfig() config {
	return config{
		samples: defaultSamples,
		seed:    defaultSeed,
		workers: runtime.GOMAXPROCS(0),
	}
}

// Option configures a conformance check
type Option func(*config) error

// WithSamples sets how many (x, y, z) triples are drawn
func WithSamples(n int) Option {
	return func(c *config) error {
		if n <= 0 {
			return errSamplesNotPositive
		}
		c.samples = n
		return nil
	}
}

// WithSeed sets the seed samples are drawn from
func WithSeed(seed uint64) Option {
	return func(c *config) error {
		c.seed = seed
		return nil
	}
}

// WithWorkers sets how many samples are evaluated concurrently
func WithWorkers(n int) Option {
	return func(c *config) error {
		if n <= 0 {
			return errWorkersNotPositive
		}
		c.workers = n
		return nil
	}
}
