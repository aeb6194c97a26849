package render

import (
	"fmt"
	"os"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// BarChartConfig holds layout parameters for a simple vertical bar chart.
type BarChartConfig struct {
	Width, Height int
	Title         string
	Background    string
	BarColor      string
}

// BarChart renders one bar per label and writes a PNG to path, overwriting
// any existing file. Labels and values are consumed in the given order, so
// callers pass them pre-sorted (descending by value per the aggregate
// contract).
func BarChart(cfg BarChartConfig, labels []string, values []float64, path string) error {
	if len(values) == 0 {
		return fmt.Errorf("bar chart: no values to render")
	}
	if len(labels) != len(values) {
		return fmt.Errorf("bar chart: %d labels for %d values", len(labels), len(values))
	}

	background := drawing.ColorFromHex(strings.TrimPrefix(cfg.Background, "#"))
	barColor := drawing.ColorFromHex(strings.TrimPrefix(cfg.BarColor, "#"))
	text := drawing.ColorFromHex(strings.TrimPrefix(colorText, "#"))
	muted := drawing.ColorFromHex(strings.TrimPrefix(colorMuted, "#"))

	bars := make([]chart.Value, len(values))
	for i, v := range values {
		bars[i] = chart.Value{
			Value: v,
			Label: labels[i],
			Style: chart.Style{
				FillColor:   barColor,
				StrokeColor: background,
				StrokeWidth: 1,
			},
		}
	}

	graph := chart.BarChart{
		Title: cfg.Title,
		TitleStyle: chart.Style{
			FontColor: text,
		},
		Background: chart.Style{
			FillColor: background,
		},
		Canvas: chart.Style{
			FillColor: background,
		},
		XAxis: chart.Style{
			FontColor: muted,
		},
		YAxis: chart.YAxis{
			Style: chart.Style{
				FontColor: muted,
			},
		},
		Width:    cfg.Width,
		Height:   cfg.Height,
		BarWidth: barWidth(cfg.Width, len(bars)),
		Bars:     bars,
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file %s: %w", path, err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("failed to render bar chart: %w", err)
	}
	return nil
}

// barWidth sizes bars so the chart stays readable for any top-N.
func barWidth(chartWidth, bars int) int {
	w := chartWidth / (bars * 2)
	if w < 10 {
		w = 10
	}
	if w > 100 {
		w = 100
	}
	return w
}
