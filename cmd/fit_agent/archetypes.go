package main

import (
	"github.com/jonathan/fit-estimator/internal/archetypes"
	"github.com/jonathan/fit-estimator/internal/observability"
	"github.com/spf13/cobra"
)

var archetypesCmd = &cobra.Command{
	Use:   "archetypes",
	Short: "List body-shape archetypes and their scale vectors",
	RunE:  runArchetypes,
}

var archetypesJSON bool

func init() {
	archetypesCmd.Flags().BoolVar(&archetypesJSON, "json", false, "Print as JSON")
	rootCmd.AddCommand(archetypesCmd)
}

func runArchetypes(cmd *cobra.Command, _ []string) error {
	all := archetypes.All()
	if archetypesJSON {
		return writeJSON(cmd, "", all)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintArchetypes(all)
	return nil
}
