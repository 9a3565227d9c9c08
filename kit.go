package boxkit

import (
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/dmitrymomot/boxkit/pkg/boxname"
	"github.com/dmitrymomot/boxkit/pkg/logger"
	"github.com/dmitrymomot/boxkit/pkg/palette"
)

// Option configures a Kit.
type Option func(*options)

type options struct {
	log      *slog.Logger
	rnd      *rand.Rand
	registry *palette.Registry
}

// WithLogger replaces the logger built from Config.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithRand sets the random source of the color allocator.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rnd = r
		}
	}
}

// WithRegistry shares an existing color registry instead of creating one.
func WithRegistry(r *palette.Registry) Option {
	return func(o *options) {
		if r != nil {
			o.registry = r
		}
	}
}

// Kit bundles the color allocator and the box-name codec used by the add-in
// UI. Each Kit owns its registry and id sequence.
type Kit struct {
	log       *slog.Logger
	registry  *palette.Registry
	allocator *palette.Allocator
	codec     *boxname.Codec
}

// New builds a Kit from cfg. It fails only on an invalid log level or format
// when no logger is supplied.
func New(cfg Config, opts ...Option) (*Kit, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.log == nil {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return nil, err
		}
		o.log = logger.New(
			logger.WithLevel(level),
			logger.WithFormat(format),
			logger.WithOutput(os.Stderr),
		)
	}

	if o.registry == nil {
		o.registry = &palette.Registry{}
	}

	allocOpts := []palette.Option{
		palette.WithThreshold(cfg.MinColorDistance),
		palette.WithMaxAttempts(cfg.MaxColorAttempts),
		palette.WithAutoRegister(cfg.RegisterColors),
		palette.WithLogger(o.log.With(logger.Component("palette"))),
	}
	if o.rnd != nil {
		allocOpts = append(allocOpts, palette.WithRand(o.rnd))
	}

	return &Kit{
		log:       o.log,
		registry:  o.registry,
		allocator: palette.New(o.registry, allocOpts...),
		codec:     boxname.New(boxname.NewSequence(cfg.FirstBoxID)),
	}, nil
}

// NewFromEnv loads Config from the environment and builds a Kit.
func NewFromEnv(opts ...Option) (*Kit, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}

func (k *Kit) Logger() *slog.Logger { return k.log }
func (k *Kit) Registry() *palette.Registry { return k.registry }
func (k *Kit) Allocator() *palette.Allocator { return k.allocator }
func (k *Kit) Codec() *boxname.Codec { return k.codec }

// NewColor returns a hex color distinguishable from every color in use.
func (k *Kit) NewColor() (string, error) {
	return k.allocator.Allocate()
}

// UseColor records a color assigned by the UI so later allocations avoid it.
func (k *Kit) UseColor(hex string) error {
	return k.registry.Add(hex)
}

// BoxName encodes a box name with the next id from the Kit's sequence.
func (k *Kit) BoxName(base string, content boxname.Content) string {
	name := k.codec.Encode(base, content)
	k.log.Debug("box name encoded", logger.BoxName(name))
	return name
}

// BoxNameWithID encodes a box name with an explicit id.
func (k *Kit) BoxNameWithID(base string, content boxname.Content, id int) string {
	return k.codec.EncodeWithID(base, content, id)
}

// ParseBoxName decodes a box name.
func (k *Kit) ParseBoxName(name string) (boxname.Info, error) {
	return k.codec.Decode(name)
}

// Filename decodes a box name and derives its companion file name.
func (k *Kit) Filename(name string) (string, error) {
	info, err := k.codec.Decode(name)
	if err != nil {
		return "", err
	}
	return info.Filename(), nil
}
