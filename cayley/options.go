package cayley

import "runtime"

// DefaultMaxDim bounds the dimension Build accepts: 2^10 blades, about a
// million cells.
const DefaultMaxDim = 10

const (
	panicWorkersInvalid = "cayley: WithWorkers: n must be >= 1"
	panicMaxDimInvalid  = "cayley: WithMaxDim: n must be within [0, 16]"
)

// hardMaxDim keeps pair indices i*K+j within uint32 for the roaring bitmaps.
const hardMaxDim = 16

// Option configures Build.
type Option func(*Options)

// Options holds the Build configuration.
type Options struct {
	// Workers is the number of rows evaluated concurrently.
	Workers int

	// MaxDim is the largest dimension Build accepts.
	MaxDim int
}

// DefaultOptions returns Options with:
//   - Workers = GOMAXPROCS
//   - MaxDim  = DefaultMaxDim
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		MaxDim:  DefaultMaxDim,
	}
}

// WithWorkers sets the number of rows evaluated concurrently.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) {
		o.Workers = n
	}
}

// WithMaxDim sets the largest dimension Build accepts.
// Panics if n is outside [0, 16].
func WithMaxDim(n int) Option {
	if n < 0 || n > hardMaxDim {
		panic(panicMaxDimInvalid)
	}

	return func(o *Options) {
		o.MaxDim = n
	}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
