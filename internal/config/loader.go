package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration from the specified YAML file and merges it over
// the defaults. When optional is true a missing file is not an error; the
// defaults are returned as-is, which is how the charts are normally run.
func Load(configPath string, optional bool) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) && optional {
		return DefaultConfig(), nil
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return LoadFromViper(v)
}

// LoadFromViper creates a Config from an existing Viper instance. Useful for
// testing or when Viper is configured externally.
func LoadFromViper(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	substituteEnvVars(cfg)
	return cfg, nil
}

// envVarPattern matches ${VAR_NAME} or $VAR_NAME patterns
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// substituteEnvVars replaces ${VAR_NAME} patterns with environment variable
// values in the string fields that plausibly point at external resources.
func substituteEnvVars(cfg *Config) {
	cfg.Datasets.AfricaURL = expandEnvVar(cfg.Datasets.AfricaURL)
	cfg.Datasets.APODURL = expandEnvVar(cfg.Datasets.APODURL)
	cfg.Fonts.RegularURL = expandEnvVar(cfg.Fonts.RegularURL)
	cfg.Fonts.BoldURL = expandEnvVar(cfg.Fonts.BoldURL)
	cfg.Render.Shapefile = expandEnvVar(cfg.Render.Shapefile)
	cfg.Output.Dir = expandEnvVar(cfg.Output.Dir)
	cfg.Logging.Output = expandEnvVar(cfg.Logging.Output)
}

// expandEnvVar expands environment variables in the format ${VAR} or $VAR.
func expandEnvVar(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		var varName string
		if strings.HasPrefix(match, "${") {
			varName = match[2 : len(match)-1]
		} else {
			varName = match[1:]
		}

		if value, exists := os.LookupEnv(varName); exists {
			return value
		}
		// Return original if env var not found
		return match
	})
}
