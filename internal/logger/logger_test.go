package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/mfm-labs/tidycharts/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"bogus", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.input))
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("text format", func(t *testing.T) {
		log, err := New(&config.LoggingConfig{Level: "info", Format: "text", Output: "stdout"})
		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("json format", func(t *testing.T) {
		log, err := New(&config.LoggingConfig{Level: "debug", Format: "json", Output: "stderr"})
		require.NoError(t, err)
		assert.NotNil(t, log)
	})
}

func TestNewDefault(t *testing.T) {
	log := NewDefault()
	require.NotNil(t, log)
	assert.NotNil(t, log.SugaredLogger)
}

func TestContextHelpers(t *testing.T) {
	log := NewDefault()

	chartLog := log.WithChart("apod")
	require.NotNil(t, chartLog)
	assert.NotSame(t, log, chartLog)

	datasetLog := log.WithDataset("https://example.com/apod.csv")
	require.NotNil(t, datasetLog)

	stageLog := log.WithStage("aggregate")
	require.NotNil(t, stageLog)
}
