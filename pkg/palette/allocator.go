package palette

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/dmitrymomot/boxkit/pkg/logger"
	"github.com/dmitrymomot/boxkit/pkg/rgb"
)

const (
	// DefaultThreshold is the minimum squared distance between two allocated colors.
	DefaultThreshold = 100

	// DefaultMaxAttempts bounds the rejection loop. Zero means unbounded.
	DefaultMaxAttempts = 1_000_000

	// channelBound is exclusive: samples fall in [0, channelBound).
	channelBound = 255
)

// Option configures an Allocator.
type Option func(*config)

type config struct {
	threshold    int
	maxAttempts  int
	rnd          *rand.Rand
	autoRegister bool
	log          *slog.Logger
}

func defaultConfig() *config {
	now := uint64(time.Now().UnixNano())
	return &config{
		threshold:   DefaultThreshold,
		maxAttempts: DefaultMaxAttempts,
		rnd:         rand.New(rand.NewPCG(now, now>>1|1)),
		log:         logger.Discard(),
	}
}

// WithThreshold sets the minimum squared distance. Negative values are ignored.
func WithThreshold(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.threshold = n
		}
	}
}

// WithMaxAttempts caps the number of candidates sampled per Allocate call.
// Zero disables the cap; negative values are ignored.
func WithMaxAttempts(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.maxAttempts = n
		}
	}
}

// WithRand sets the random source, mostly for deterministic tests.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rnd = r
		}
	}
}

// WithAutoRegister makes Allocate append every accepted color to the registry.
func WithAutoRegister(enabled bool) Option {
	return func(c *config) {
		c.autoRegister = enabled
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

// Allocator produces colors distinguishable from every registry entry.
type Allocator struct {
	registry *Registry
	cfg      *config
	mu       sync.Mutex // guards cfg.rnd
}

// New creates an allocator checking candidates against reg.
// It panics if reg is nil.
func New(reg *Registry, opts ...Option) *Allocator {
	if reg == nil {
		panic(ErrNilRegistry)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Allocator{registry: reg, cfg: cfg}
}

func (a *Allocator) Registry() *Registry { return a.registry }

func (a *Allocator) Threshold() int { return a.cfg.threshold }

// Allocate samples candidates until one is at least the threshold away from
// every registered color and returns its hex form.
func (a *Allocator) Allocate() (string, error) {
	for attempt := 1; a.cfg.maxAttempts == 0 || attempt <= a.cfg.maxAttempts; attempt++ {
		candidate := a.sample()

		var ok bool
		if a.cfg.autoRegister {
			ok = a.registry.addIfDistinct(candidate, a.cfg.threshold)
		} else {
			ok = a.registry.Distinct(candidate, a.cfg.threshold)
		}

		if ok {
			hex := candidate.Hex()
			a.cfg.log.Debug("color allocated", logger.Color(hex), logger.Attempts(attempt))
			return hex, nil
		}
	}

	return "", fmt.Errorf("%w after %d attempts", ErrExhausted, a.cfg.maxAttempts)
}

// MustAllocate is like Allocate but panics on exhaustion.
func (a *Allocator) MustAllocate() string {
	hex, err := a.Allocate()
	if err != nil {
		panic(err)
	}
	return hex
}

func (a *Allocator) sample() rgb.Color {
	a.mu.Lock()
	defer a.mu.Unlock()
	return rgb.New(
		a.cfg.rnd.IntN(channelBound),
		a.cfg.rnd.IntN(channelBound),
		a.cfg.rnd.IntN(channelBound),
	)
}
