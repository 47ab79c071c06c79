package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vitsch/Boolean-GMDH-type-neural-network/ablation"
	"github.com/vitsch/Boolean-GMDH-type-neural-network/config"
)

func newAblateCmd() *cobra.Command {
	var flags runFlags

	ablateCmd := &cobra.Command{
		Use:   "ablate",
		Short: "Rebuild the network once per logical function with that function removed",
		Long: `The gmdh ablate command builds a baseline network with the configured
catalog, then one network per catalog function with that function excluded,
and prints how many zero-error units each run finds.

        $ gmdh ablate -m 4 -t "(X1 AND X2) OR (X3 XOR X4)" -k 3
        `,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			return runAblate(cmd.OutOrStdout(), c)
		},
	}

	flags.addTo(ablateCmd.Flags())

	return ablateCmd
}

func runAblate(out io.Writer, c config.Config) error {
	p, err := newProblem(c)
	if err != nil {
		return err
	}

	report, err := ablation.Run(p.table.X, p.table.T, c.MaxComplexity, p.catalog,
		ablation.WithLogger(log.StandardLogger()),
		ablation.WithBuildOptions(p.buildOptions()...),
	)
	if err != nil {
		return errors.Wrap(err, "ablation study")
	}

	if c.Output == config.OutputJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to serialize ablation report")
		}
		fmt.Fprintln(out, string(data))
		return nil
	}
	printAblationReport(out, p.target.String(), report)
	return nil
}
