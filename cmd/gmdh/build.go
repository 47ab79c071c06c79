package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vitsch/Boolean-GMDH-type-neural-network/config"
	"github.com/vitsch/Boolean-GMDH-type-neural-network/metrics"
	"github.com/vitsch/Boolean-GMDH-type-neural-network/nn"
	"github.com/vitsch/Boolean-GMDH-type-neural-network/verify"
)

type verification struct {
	Unit           int    `json:"unit"`
	Equivalent     bool   `json:"equivalent"`
	Counterexample []bool `json:"counterexample,omitempty"`
}

type buildReport struct {
	Target       string         `json:"target"`
	Report       nn.RunReport   `json:"report"`
	Verification []verification `json:"verification"`
}

func newBuildCmd() *cobra.Command {
	var (
		flags       runFlags
		showMetrics bool
	)

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Build a network for a target formula and print its zero-error rules",
		Long: `The gmdh build command generates the full truth table over the configured
attributes, builds the network layer by layer and prints every unit that
reproduces the target, with its rule and a SAT check of that rule.

        $ gmdh build -m 4 -t "(X1 AND X2) OR (X3 XOR X4)" -k 3 --exclude xor
        `,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			return runBuild(cmd.OutOrStdout(), c, showMetrics)
		},
	}

	flags.addTo(buildCmd.Flags())
	buildCmd.Flags().BoolVar(&showMetrics, "metrics", false, "print prometheus metrics of the build")

	return buildCmd
}

func runBuild(out io.Writer, c config.Config, showMetrics bool) error {
	p, err := newProblem(c)
	if err != nil {
		return err
	}

	collector := metrics.NewCollector()
	options := p.buildOptions(
		nn.WithObserver(collector),
		nn.WithObserver(&nn.LogObserver{Log: log.StandardLogger()}),
	)

	log.WithField("target", p.target.String()).Info("building network")
	s, err := nn.Build(p.table.X, p.table.T, c.MaxComplexity, p.catalog, options...)
	if err != nil {
		return errors.Wrap(err, "building network")
	}

	report := buildReport{
		Target: p.target.String(),
		Report: nn.NewRunReport(s, p.catalog),
	}
	for _, i := range report.Report.Summary.ZeroErrorUnits {
		res, err := verify.Equivalent(s, i, p.target, c.Attributes)
		if err != nil {
			return errors.Wrapf(err, "verifying unit %d", i)
		}
		report.Verification = append(report.Verification, verification{
			Unit:           i,
			Equivalent:     res.Equivalent,
			Counterexample: res.Counterexample,
		})
	}

	switch c.Output {
	case config.OutputJSON:
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to serialize build report")
		}
		fmt.Fprintln(out, string(data))
	default:
		printBuildReport(out, report)
	}

	if showMetrics {
		fmt.Fprintln(out)
		return collector.WriteText(out)
	}
	return nil
}
