// Package ablation measures how much each logical function contributes to a
// network: it builds a baseline with the full catalog, then one network per
// function with that function left out, and compares what each run achieves.
package ablation

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vitsch/Boolean-GMDH-type-neural-network/nn"
)

// Result describes one network of the study.
type Result struct {
	// Excluded is the left-out function, nn.FunctionNone for the baseline.
	Excluded       nn.Function     `json:"-"`
	ExcludedName   string          `json:"excluded"`
	Catalog        nn.Catalog      `json:"catalog"`
	Units          int             `json:"units"`
	ZeroErrorUnits int             `json:"zero_error_units"`
	Complexities   []int           `json:"complexities"`
	MinError       int             `json:"min_error"`
	Rules          []nn.RuleResult `json:"rules"`
	// Layers holds the layer events of the build in order.
	Layers         []nn.LayerEvent `json:"layers"`

	store *nn.Store
}

// Store returns the network built for this result.
func (r Result) Store() *nn.Store {
	return r.store
}

// IsBaseline reports whether the result was built with the full catalog.
func (r Result) IsBaseline() bool {
	return r.Excluded == nn.FunctionNone
}

// Report holds the baseline and one result per excluded function, in catalog order.
type Report struct {
	MaxComplexity int      `json:"max_complexity"`
	Baseline      Result   `json:"baseline"`
	Ablations     []Result `json:"ablations"`
}

// Essential returns the functions whose removal leaves no zero-error unit while
// the baseline has one.
func (r *Report) Essential() []nn.Function {
	if r.Baseline.ZeroErrorUnits == 0 {
		return nil
	}
	var out []nn.Function
	for _, a := range r.Ablations {
		if a.ZeroErrorUnits == 0 {
			out = append(out, a.Excluded)
		}
	}
	return out
}

type study struct {
	log          logrus.FieldLogger
	buildOptions []nn.Option
}

// Option configures Run.
type Option func(s *study) error

// WithLogger sets the logger for study progress.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *study) error {
		s.log = l
		return nil
	}
}

// WithBuildOptions passes options to every nn.Build call of the study.
func WithBuildOptions(options ...nn.Option) Option {
	return func(s *study) error {
		s.buildOptions = append(s.buildOptions, options...)
		return nil
	}
}

var defaults = []Option{
	func(s *study) error {
		if s.log == nil {
			s.log = logrus.StandardLogger()
		}
		return nil
	},
}

// Run builds the baseline network with catalog and one network per catalog
// function with that function removed.
func Run(x [][]bool, t []bool, maxComplexity int, catalog nn.Catalog, options ...Option) (*Report, error) {
	var s study
	for _, option := range append(options, defaults...) {
		if err := option(&s); err != nil {
			return nil, err
		}
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	report := &Report{MaxComplexity: maxComplexity}

	s.log.WithField("functions", len(catalog)).Info("building baseline network")
	baseline, err := s.run(x, t, maxComplexity, catalog, nn.FunctionNone)
	if err != nil {
		return nil, errors.Wrap(err, "baseline")
	}
	report.Baseline = baseline

	for _, f := range catalog {
		reduced := catalog.Without(f)
		if len(reduced) == 0 {
			// a single-function catalog leaves nothing to build with
			s.log.WithField("excluded", f.String()).Warn("skipping ablation with empty catalog")
			continue
		}
		s.log.WithField("excluded", f.String()).Info("building ablated network")
		r, err := s.run(x, t, maxComplexity, reduced, f)
		if err != nil {
			return nil, errors.Wrapf(err, "excluding %s", f)
		}
		report.Ablations = append(report.Ablations, r)
	}
	return report, nil
}

func (s *study) run(x [][]bool, t []bool, maxComplexity int, catalog nn.Catalog, excluded nn.Function) (Result, error) {
	// one event per layer at most, so the buffer never drops
	events := nn.NewChannelObserver(nn.MaxSupportedComplexity)
	options := append(append([]nn.Option(nil), s.buildOptions...), nn.WithObserver(events))
	store, err := nn.Build(x, t, maxComplexity, catalog, options...)
	if err != nil {
		return Result{}, err
	}
	close(events.Events)
	sum := nn.Summarize(store)

	name := "none"
	if excluded != nn.FunctionNone {
		name = excluded.String()
	}
	r := Result{
		Excluded:       excluded,
		ExcludedName:   name,
		Catalog:        catalog,
		Units:          sum.Units,
		ZeroErrorUnits: len(sum.ZeroErrorUnits),
		Complexities:   sum.Complexities,
		MinError:       sum.MinError,
		Rules:          sum.Rules,
		store:          store,
	}
	for e := range events.Events {
		r.Layers = append(r.Layers, e)
	}
	s.log.WithFields(logrus.Fields{
		"excluded":         name,
		"units":            r.Units,
		"zero_error_units": r.ZeroErrorUnits,
		"min_error":        r.MinError,
	}).Debug("network built")
	return r, nil
}
