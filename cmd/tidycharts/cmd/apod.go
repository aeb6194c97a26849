package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mfm-labs/tidycharts/internal/charts"
)

var apodCmd = &cobra.Command{
	Use:   "apod",
	Short: "Render the APOD astrophotographers chart",
	Long: `Apod fetches the TidyTuesday NASA APOD dataset and renders the top
astrophotographers as stacked horizontal bars, one segment per photo
subject (galaxies, nebulae, auroras, ...). Subjects are assigned by
keyword-matching the photo titles.

Example:
  tidycharts apod --no-fonts`,
	RunE: runAPOD,
}

func init() {
	rootCmd.AddCommand(apodCmd)
}

func runAPOD(cmd *cobra.Command, args []string) error {
	return runChart("apod", charts.RunAPOD)
}
