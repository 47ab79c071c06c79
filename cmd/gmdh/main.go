package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gmdh",
		Short: "Boolean GMDH network builder",
		Long: `gmdh grows layered networks of two-input logical functions over a
Boolean truth table and reports the rules of units that reproduce the target.

        $ gmdh build --attributes 4 --target "(X1 AND X2) OR (X3 XOR X4)"
        `,
		SilenceUsage: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(
		newCatalogCmd(),
		newBuildCmd(),
		newAblateCmd(),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
