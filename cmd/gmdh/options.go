package main

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/vitsch/Boolean-GMDH-type-neural-network/config"
	"github.com/vitsch/Boolean-GMDH-type-neural-network/dataset"
	"github.com/vitsch/Boolean-GMDH-type-neural-network/formula"
	"github.com/vitsch/Boolean-GMDH-type-neural-network/nn"
)

// runFlags holds the flags shared by build and ablate. Flags override values
// from --config only when they are set explicitly.
type runFlags struct {
	configPath    string
	attributes    int
	target        string
	maxComplexity int
	exclude       []string
	noEarlyStop   bool
	output        string
}

func (f *runFlags) addTo(fs *pflag.FlagSet) {
	d := config.Default()
	fs.StringVarP(&f.configPath, "config", "c", "", "YAML file with run settings")
	fs.IntVarP(&f.attributes, "attributes", "m", d.Attributes, "number of input attributes")
	fs.StringVarP(&f.target, "target", "t", d.Target, "target formula over X1..Xm")
	fs.IntVarP(&f.maxComplexity, "max-complexity", "k", d.MaxComplexity, "highest layer complexity to build (1..5)")
	fs.StringSliceVarP(&f.exclude, "exclude", "x", nil, "logical functions to leave out of the catalog")
	fs.BoolVar(&f.noEarlyStop, "no-early-stop", false, "keep building after a zero-error layer")
	fs.StringVarP(&f.output, "output", "o", d.Output, "report format: text or json")
}

// resolve merges the config file and explicitly set flags into a validated Config.
func (f *runFlags) resolve(fs *pflag.FlagSet) (config.Config, error) {
	c := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return c, err
		}
		c = loaded
		log.WithField("path", f.configPath).Debug("loaded config")
	}

	fs.Visit(func(flag *pflag.Flag) {
		switch flag.Name {
		case "attributes":
			c.Attributes = f.attributes
		case "target":
			c.Target = f.target
		case "max-complexity":
			c.MaxComplexity = f.maxComplexity
		case "exclude":
			c.Exclude = f.exclude
		case "no-early-stop":
			c.EarlyStop = !f.noEarlyStop
		case "output":
			c.Output = f.output
		}
	})

	if err := c.Validate(); err != nil {
		return c, errors.Wrap(err, "invalid run settings")
	}
	return c, nil
}

// problem is a resolved run: the truth table, its catalog and build options.
type problem struct {
	config  config.Config
	target  formula.Expr
	table   *dataset.TruthTable
	catalog nn.Catalog
}

func newProblem(c config.Config) (*problem, error) {
	target, err := c.Formula()
	if err != nil {
		return nil, err
	}
	table, err := dataset.New(c.Attributes, target)
	if err != nil {
		return nil, err
	}
	catalog, err := c.Catalog()
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"attributes": c.Attributes,
		"samples":    len(table.T),
		"positives":  table.Positives(),
		"functions":  len(catalog),
	}).Debug("generated truth table")
	return &problem{config: c, target: target, table: table, catalog: catalog}, nil
}

func (p *problem) buildOptions(extra ...nn.Option) []nn.Option {
	options := []nn.Option{nn.WithLogger(log.StandardLogger())}
	if !p.config.EarlyStop {
		options = append(options, nn.WithoutEarlyStop())
	}
	return append(options, extra...)
}
