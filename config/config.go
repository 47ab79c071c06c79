// Package config loads run settings for the gmdh command from YAML.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/vitsch/Boolean-GMDH-type-neural-network/dataset"
	"github.com/vitsch/Boolean-GMDH-type-neural-network/formula"
	"github.com/vitsch/Boolean-GMDH-type-neural-network/nn"
)

const (
	OutputText = "text"
	OutputJSON = "json"
)

// DefaultTarget is the study target used when none is configured.
const DefaultTarget = "(X1 AND X2) OR (X3 XOR X4)"

// Config describes one network construction run.
type Config struct {
	Attributes    int      `yaml:"attributes"`
	Target        string   `yaml:"target"`
	MaxComplexity int      `yaml:"max_complexity"`
	Exclude       []string `yaml:"exclude,omitempty"`
	EarlyStop     bool     `yaml:"early_stop"`
	Output        string   `yaml:"output"`
}

// Default returns the four-attribute study configuration.
func Default() Config {
	return Config{
		Attributes:    4,
		Target:        DefaultTarget,
		MaxComplexity: 3,
		EarlyStop:     true,
		Output:        OutputText,
	}
}

// Load reads path on top of Default. Keys missing from the file keep their
// default values.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return c, errors.Wrapf(err, "parsing config %s", path)
	}
	return c, nil
}

// Validate checks ranges and names without building anything.
func (c Config) Validate() error {
	if c.Attributes < 1 || c.Attributes > dataset.MaxAttributes {
		return errors.Errorf("attributes must be in 1..%d, got %d", dataset.MaxAttributes, c.Attributes)
	}
	if c.MaxComplexity < 1 || c.MaxComplexity > nn.MaxSupportedComplexity {
		return errors.Wrapf(nn.ErrInvalidComplexity, "max_complexity must be in 1..%d, got %d", nn.MaxSupportedComplexity, c.MaxComplexity)
	}
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return errors.Errorf("unknown output format %q", c.Output)
	}
	if _, err := c.Formula(); err != nil {
		return err
	}
	catalog, err := c.Catalog()
	if err != nil {
		return err
	}
	return catalog.Validate()
}

// Formula parses the target expression and checks it fits the attribute count.
func (c Config) Formula() (formula.Expr, error) {
	e, err := formula.Parse(c.Target)
	if err != nil {
		return nil, errors.Wrap(err, "target")
	}
	if e.MaxVar() > c.Attributes {
		return nil, errors.Errorf("target uses X%d but only %d attributes are configured", e.MaxVar(), c.Attributes)
	}
	return e, nil
}

// Catalog returns the default catalog without the excluded functions.
func (c Config) Catalog() (nn.Catalog, error) {
	excluded := make([]nn.Function, 0, len(c.Exclude))
	for _, name := range c.Exclude {
		f, err := nn.ParseFunction(name)
		if err != nil {
			return nil, errors.Wrap(err, "exclude")
		}
		excluded = append(excluded, f)
	}
	return nn.DefaultCatalog().Without(excluded...), nil
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
