package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("dataset sources", func(t *testing.T) {
		assert.Contains(t, cfg.Datasets.AfricaURL, "2026-01-13/africa.csv")
		assert.Contains(t, cfg.Datasets.APODURL, "2026-01-20/apod.csv")
		assert.Equal(t, 30, cfg.Datasets.TimeoutSeconds)
	})

	t.Run("fonts enabled by default", func(t *testing.T) {
		assert.False(t, cfg.Fonts.Disabled)
		assert.NotEmpty(t, cfg.Fonts.RegularURL)
		assert.NotEmpty(t, cfg.Fonts.BoldURL)
	})

	t.Run("render geometry", func(t *testing.T) {
		assert.Equal(t, 1800, cfg.Render.Width)
		assert.Equal(t, 1200, cfg.Render.Height)
		assert.Equal(t, "#0B1E38", cfg.Render.Background)
		assert.Equal(t, 5.0, cfg.Render.LabelThreshold)
		assert.Equal(t, 10, cfg.Render.TopCountries)
		assert.Equal(t, 10, cfg.Render.TopPhotographers)
	})

	t.Run("output paths", func(t *testing.T) {
		assert.Equal(t, "output", cfg.Output.Dir)
		assert.Equal(t, "apod_photographers.png", cfg.Output.APODChart)
	})

	t.Run("logging", func(t *testing.T) {
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.Equal(t, "text", cfg.Logging.Format)
		assert.Equal(t, "stdout", cfg.Logging.Output)
	})
}

func TestApplyOverrides(t *testing.T) {
	t.Run("non-empty values applied", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ApplyOverrides("debug", "json", "charts", true)

		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "json", cfg.Logging.Format)
		assert.Equal(t, "charts", cfg.Output.Dir)
		assert.True(t, cfg.Fonts.Disabled)
	})

	t.Run("empty values ignored", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ApplyOverrides("", "", "", false)

		assert.Equal(t, "info", cfg.Logging.Level)
		assert.Equal(t, "text", cfg.Logging.Format)
		assert.Equal(t, "output", cfg.Output.Dir)
		assert.False(t, cfg.Fonts.Disabled)
	})
}
