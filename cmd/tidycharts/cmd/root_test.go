package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetConfigFile(t *testing.T) {
	// Save original value and restore after test
	originalCfgFile := cfgFile
	defer func() {
		cfgFile = originalCfgFile
	}()

	tests := []struct {
		name     string
		cfgValue string
		want     string
	}{
		{
			name:     "empty config file",
			cfgValue: "",
			want:     "",
		},
		{
			name:     "custom config file",
			cfgValue: "/path/to/custom.yaml",
			want:     "/path/to/custom.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgFile = tt.cfgValue
			assert.Equal(t, tt.want, GetConfigFile())
		})
	}
}

func TestGetCLIOverrides(t *testing.T) {
	// Save original values and restore after test
	originalLogLevel := logLevel
	originalLogFormat := logFormat
	originalOutputDir := outputDir
	originalNoFonts := noFonts
	defer func() {
		logLevel = originalLogLevel
		logFormat = originalLogFormat
		outputDir = originalOutputDir
		noFonts = originalNoFonts
	}()

	tests := []struct {
		name      string
		logLevel  string
		logFormat string
		outputDir string
		noFonts   bool
		want      CLIOverrides
	}{
		{
			name: "empty overrides",
			want: CLIOverrides{},
		},
		{
			name:      "all overrides set",
			logLevel:  "debug",
			logFormat: "text",
			outputDir: "charts",
			noFonts:   true,
			want: CLIOverrides{
				LogLevel:  "debug",
				LogFormat: "text",
				OutputDir: "charts",
				NoFonts:   true,
			},
		},
		{
			name:      "partial overrides",
			logLevel:  "warn",
			outputDir: "out",
			want: CLIOverrides{
				LogLevel:  "warn",
				OutputDir: "out",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logLevel = tt.logLevel
			logFormat = tt.logFormat
			outputDir = tt.outputDir
			noFonts = tt.noFonts

			assert.Equal(t, tt.want, GetCLIOverrides())
		})
	}
}

func TestRootCommandStructure(t *testing.T) {
	assert.NotNil(t, rootCmd)
	assert.Equal(t, "tidycharts", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.Equal(t, Version, rootCmd.Version)
}

func TestRootCommandPersistentFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	configFlag, err := flags.GetString("config")
	assert.NoError(t, err)
	assert.Equal(t, "tidycharts.yaml", configFlag)

	logLevelFlag, err := flags.GetString("log-level")
	assert.NoError(t, err)
	assert.Equal(t, "", logLevelFlag)

	logFormatFlag, err := flags.GetString("log-format")
	assert.NoError(t, err)
	assert.Equal(t, "", logFormatFlag)

	outputDirFlag, err := flags.GetString("output-dir")
	assert.NoError(t, err)
	assert.Equal(t, "", outputDirFlag)

	noFontsFlag, err := flags.GetBool("no-fonts")
	assert.NoError(t, err)
	assert.Equal(t, false, noFontsFlag)
}

func TestRootCommandSubcommands(t *testing.T) {
	commands := rootCmd.Commands()
	commandNames := make([]string, len(commands))
	for i, cmd := range commands {
		commandNames[i] = cmd.Name()
	}

	for _, expected := range []string{"africa", "apod", "version"} {
		assert.Contains(t, commandNames, expected, "Expected command %s not found", expected)
	}
}

func TestChartCommandStructure(t *testing.T) {
	assert.Equal(t, "africa", africaCmd.Use)
	assert.NotNil(t, africaCmd.RunE)
	assert.Equal(t, "apod", apodCmd.Use)
	assert.NotNil(t, apodCmd.RunE)
}
