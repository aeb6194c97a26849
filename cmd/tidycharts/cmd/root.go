package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile   string
	logLevel  string
	logFormat string
	outputDir string
	noFonts   bool
)

var rootCmd = &cobra.Command{
	Use:   "tidycharts",
	Short: "TidyTuesday chart generator",
	Long: `tidycharts renders a small set of data-visualization images from public
TidyTuesday datasets. Each subcommand is a one-shot job: fetch a CSV,
compute group-by aggregates, draw a chart, write a PNG.

Charts:
  africa  African languages: most multilingual countries, speaker density
          per family, and a languages-per-country map
  apod    NASA APOD: top astrophotographers with a per-subject breakdown

Running a chart with no flags reproduces the published images.`,
	Version: Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "tidycharts.yaml",
		"Path to configuration file (optional; defaults are built in)")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Output overrides
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output-dir", "o", "",
		"Override output directory for chart images")
	rootCmd.PersistentFlags().BoolVar(&noFonts, "no-fonts", false,
		"Skip remote font downloads and use the builtin face")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel  string
	LogFormat string
	OutputDir string
	NoFonts   bool
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:  logLevel,
		LogFormat: logFormat,
		OutputDir: outputDir,
		NoFonts:   noFonts,
	}
}
