package nn

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type builder struct {
	earlyStop bool
	observers []Observer
	log       logrus.FieldLogger
}

// Option configures Build.
type Option func(b *builder) error

// WithoutEarlyStop builds every layer up to the maximum complexity even after a
// zero-error unit appears.
func WithoutEarlyStop() Option {
	return func(b *builder) error {
		b.earlyStop = false
		return nil
	}
}

// WithObserver registers an observer notified after each layer.
func WithObserver(o Observer) Option {
	return func(b *builder) error {
		if o == nil {
			return errors.New("nil observer")
		}
		b.observers = append(b.observers, o)
		return nil
	}
}

// WithLogger sets the logger used for per-layer progress.
func WithLogger(l logrus.FieldLogger) Option {
	return func(b *builder) error {
		b.log = l
		return nil
	}
}

var defaults = []Option{
	func(b *builder) error {
		if b.log == nil {
			b.log = logrus.StandardLogger()
		}
		return nil
	},
}

// Build constructs a network for the N x m input matrix x and the target t.
// Layer 0 holds one leaf per attribute; layers 1..maxComplexity are built with
// BuildLayer and appended in order. Construction stops after the first layer
// that contains a zero-error unit unless WithoutEarlyStop is given.
func Build(x [][]bool, t []bool, maxComplexity int, catalog Catalog, options ...Option) (*Store, error) {
	b := builder{earlyStop: true}
	for _, option := range append(options, defaults...) {
		if err := option(&b); err != nil {
			return nil, err
		}
	}

	if len(x) != len(t) {
		return nil, shapeError("x has %d samples, t has %d", len(x), len(t))
	}
	m := 0
	if len(x) > 0 {
		m = len(x[0])
	}
	for i, row := range x {
		if len(row) != m {
			return nil, shapeError("row %d has %d attributes, want %d", i, len(row), m)
		}
	}
	if maxComplexity < 1 || maxComplexity > MaxSupportedComplexity {
		return nil, errors.Wrapf(ErrInvalidComplexity, "maximum complexity %d, supported 1..%d", maxComplexity, MaxSupportedComplexity)
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	s := NewStore(len(t))
	for j := 0; j < m; j++ {
		if _, err := s.Append(Unit{Function: FunctionNone, Output: Column(x, j)}); err != nil {
			return nil, errors.Wrapf(err, "seeding attribute %d", j+1)
		}
	}
	b.log.WithFields(logrus.Fields{
		"samples":    len(t),
		"attributes": m,
		"functions":  len(catalog),
	}).Debug("seeded input layer")

	for complexity := 1; complexity <= maxComplexity; complexity++ {
		start := time.Now()
		batch, stats, err := BuildLayer(s, t, complexity, catalog)
		if err != nil {
			return nil, errors.Wrapf(err, "building complexity %d", complexity)
		}
		for _, u := range batch {
			if _, err := s.Append(u); err != nil {
				return nil, errors.Wrapf(err, "merging complexity %d", complexity)
			}
		}

		stop := b.earlyStop && stats.Units > 0 && stats.MinError == 0
		event := LayerEvent{
			Complexity: complexity,
			Pairs:      stats.Pairs,
			Units:      stats.Units,
			MinError:   stats.MinError,
			ZeroError:  stats.ZeroError,
			StoreSize:  s.Len(),
			Elapsed:    time.Since(start),
			EarlyStop:  stop,
		}
		b.log.WithFields(logrus.Fields{
			"complexity": complexity,
			"pairs":      stats.Pairs,
			"units":      stats.Units,
			"min_error":  stats.MinError,
		}).Debug("built layer")
		for _, o := range b.observers {
			o.OnLayer(event)
		}

		if stop {
			break
		}
	}
	return s, nil
}
