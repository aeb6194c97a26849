// Package config provides configuration structures and loading for tidycharts.
package config

// Config represents the complete application configuration. All values have
// defaults matching the published charts, so running without a config file
// reproduces them exactly.
type Config struct {
	Datasets DatasetsConfig `yaml:"datasets" mapstructure:"datasets"`
	Fonts    FontsConfig    `yaml:"fonts" mapstructure:"fonts"`
	Render   RenderConfig   `yaml:"render" mapstructure:"render"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
	Logging  LoggingConfig  `yaml:"logging" mapstructure:"logging"`
}

// DatasetsConfig holds the public CSV sources.
type DatasetsConfig struct {
	AfricaURL      string `yaml:"africa_url" mapstructure:"africa_url"`
	APODURL        string `yaml:"apod_url" mapstructure:"apod_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
}

// FontsConfig holds the remote font assets. Fetch or parse failures degrade
// to the builtin face, they never fail a run.
type FontsConfig struct {
	RegularURL string `yaml:"regular_url" mapstructure:"regular_url"`
	BoldURL    string `yaml:"bold_url" mapstructure:"bold_url"`
	Disabled   bool   `yaml:"disabled" mapstructure:"disabled"`
}

// RenderConfig holds figure geometry and styling shared by the charts.
type RenderConfig struct {
	Width            int     `yaml:"width" mapstructure:"width"`
	Height           int     `yaml:"height" mapstructure:"height"`
	Background       string  `yaml:"background" mapstructure:"background"`
	LabelThreshold   float64 `yaml:"label_threshold" mapstructure:"label_threshold"` // min segment value that gets an on-bar label
	TopCountries     int     `yaml:"top_countries" mapstructure:"top_countries"`
	TopPhotographers int     `yaml:"top_photographers" mapstructure:"top_photographers"`
	Shapefile        string  `yaml:"shapefile" mapstructure:"shapefile"`
	CountryField     string  `yaml:"country_field" mapstructure:"country_field"`
	MapLowColor      string  `yaml:"map_low_color" mapstructure:"map_low_color"`
	MapHighColor     string  `yaml:"map_high_color" mapstructure:"map_high_color"`
	MapNoDataColor   string  `yaml:"map_no_data_color" mapstructure:"map_no_data_color"`
}

// OutputConfig holds the image artifact paths, relative to Dir. Existing
// files are overwritten.
type OutputConfig struct {
	Dir            string `yaml:"dir" mapstructure:"dir"`
	CountriesChart string `yaml:"countries_chart" mapstructure:"countries_chart"`
	DensityChart   string `yaml:"density_chart" mapstructure:"density_chart"`
	LanguagesMap   string `yaml:"languages_map" mapstructure:"languages_map"`
	APODChart      string `yaml:"apod_chart" mapstructure:"apod_chart"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with the original chart parameters.
func DefaultConfig() *Config {
	return &Config{
		Datasets: DatasetsConfig{
			AfricaURL:      "https://raw.githubusercontent.com/rfordatascience/tidytuesday/main/data/2026/2026-01-13/africa.csv",
			APODURL:        "https://raw.githubusercontent.com/rfordatascience/tidytuesday/main/data/2026/2026-01-20/apod.csv",
			TimeoutSeconds: 30,
		},
		Fonts: FontsConfig{
			RegularURL: "https://github.com/google/fonts/raw/main/ofl/spacegrotesk/SpaceGrotesk%5Bwght%5D.ttf",
			BoldURL:    "https://github.com/google/fonts/raw/main/ofl/spacemono/SpaceMono-Bold.ttf",
		},
		Render: RenderConfig{
			Width:            1800, // 12x8 in at 150 dpi
			Height:           1200,
			Background:       "#0B1E38",
			LabelThreshold:   5,
			TopCountries:     10,
			TopPhotographers: 10,
			Shapefile:        "data/ne_110m_admin_0_countries.shp",
			CountryField:     "NAME",
			MapLowColor:      "#14355F",
			MapHighColor:     "#F4E04D",
			MapNoDataColor:   "#10243F",
		},
		Output: OutputConfig{
			Dir:            "output",
			CountriesChart: "africa_languages.png",
			DensityChart:   "africa_density.png",
			LanguagesMap:   "africa_map.png",
			APODChart:      "apod_photographers.png",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		},
	}
}

// ApplyOverrides applies CLI flag overrides. Only non-empty values are
// applied.
func (c *Config) ApplyOverrides(logLevel, logFormat, outputDir string, noFonts bool) {
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFormat != "" {
		c.Logging.Format = logFormat
	}
	if outputDir != "" {
		c.Output.Dir = outputDir
	}
	if noFonts {
		c.Fonts.Disabled = true
	}
}
