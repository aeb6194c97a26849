package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mfm-labs/tidycharts/internal/charts"
)

var africaCmd = &cobra.Command{
	Use:   "africa",
	Short: "Render the African languages charts",
	Long: `Africa fetches the TidyTuesday African languages dataset and renders
three images:

  1. Bar chart of the most multilingual countries
  2. Speaker density per language family (native speakers per language)
  3. Choropleth of languages spoken per country (requires a local world
     boundaries shapefile, see render.shapefile in the config)

Example:
  tidycharts africa --output-dir charts`,
	RunE: runAfrica,
}

func init() {
	rootCmd.AddCommand(africaCmd)
}

func runAfrica(cmd *cobra.Command, args []string) error {
	return runChart("africa", charts.RunAfrica)
}
