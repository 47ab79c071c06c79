package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitsch/Boolean-GMDH-type-neural-network/nn"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the logical functions available to the network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, f := range nn.DefaultCatalog() {
				row := make([]byte, 0, 4)
				for _, in := range [][2]bool{{false, false}, {false, true}, {true, false}, {true, true}} {
					if f.Apply(in[0], in[1]) {
						row = append(row, '1')
					} else {
						row = append(row, '0')
					}
				}
				fmt.Fprintf(out, "%2d  %-12s %s\n", int(f), f, row)
			}
			return nil
		},
	}
}
