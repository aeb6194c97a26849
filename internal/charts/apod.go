package charts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mfm-labs/tidycharts/internal/aggregate"
	"github.com/mfm-labs/tidycharts/internal/classify"
	"github.com/mfm-labs/tidycharts/internal/render"
	"github.com/mfm-labs/tidycharts/internal/table"
)

// apod.csv schema
const (
	colTitle     = "title"
	colCopyright = "copyright"
)

// RunAPOD builds the astrophotographers chart: the top contributors to
// NASA's APOD by image count, each bar broken down by photo subject.
func RunAPOD(ctx context.Context, d Deps) error {
	log := d.Log.WithChart("apod")
	cfg := d.Config

	log.WithStage("load").Infow("fetching dataset", "url", cfg.Datasets.APODURL)
	src, err := d.Client.Table(ctx, cfg.Datasets.APODURL)
	if err != nil {
		return err
	}
	log.WithStage("load").Infow("dataset loaded", "rows", src.Len())

	credited, err := creditedPhotos(src)
	if err != nil {
		return err
	}

	top, err := topPhotographers(credited, cfg.Render.TopPhotographers)
	if err != nil {
		return err
	}
	render.PrintResult(d.Out, "Top photographers", top, 0)

	bars, err := photographerBars(credited, top)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	chartPath := filepath.Join(cfg.Output.Dir, cfg.Output.APODChart)
	err = render.StackedBarH(render.StackedBarConfig{
		Width:          cfg.Render.Width,
		Height:         cfg.Render.Height,
		Background:     cfg.Render.Background,
		Title:          "The Guardians of the Night Sky",
		Subtitle:       "Top 10 astrophotographers by total number of images featured in NASA's APOD (2007-2025)",
		XLabel:         "Total number of photographs featured in APOD",
		Footnote:       `"Other" includes subjects not classified into main categories (e.g., unique phenomena, Earth features, spacecraft)`,
		Credit:         "Made by MFM | Data: NASA APOD via TidyTuesday",
		LabelThreshold: cfg.Render.LabelThreshold,
		TitleFace:      d.Faces.Title,
		SubtitleFace:   d.Faces.Subtitle,
		LabelFace:      d.Faces.Label,
		SmallFace:      d.Faces.Small,
	}, bars, chartPath)
	if err != nil {
		return err
	}
	log.WithStage("render").Infow("chart written", "path", chartPath)

	return nil
}

// creditedPhotos drops rows without a usable photographer credit.
func creditedPhotos(src *table.Table) (*table.Table, error) {
	idx, err := src.Column(colCopyright)
	if err != nil {
		return nil, err
	}
	return src.Filter(func(r table.Record) bool {
		return !table.IsNull(r.Get(idx))
	}), nil
}

// topPhotographers ranks photographers by photo count, keeping the first n.
func topPhotographers(credited *table.Table, n int) (*aggregate.Result, error) {
	res, err := aggregate.Aggregate(credited, colCopyright, []aggregate.Metric{
		{Name: "photo_count", Column: colTitle, Op: aggregate.Count},
	})
	if err != nil {
		return nil, err
	}
	if err := aggregate.Verify(credited, res); err != nil {
		return nil, err
	}
	return res.Top(n), nil
}

// photographerBars classifies every photo title of the ranked photographers
// and builds one stacked bar per photographer, segments in palette order.
// Bars come back lowest-ranked first, so the top photographer renders at the
// top of the chart.
func photographerBars(credited *table.Table, top *aggregate.Result) ([]render.Bar, error) {
	titleIdx, err := credited.Column(colTitle)
	if err != nil {
		return nil, err
	}
	nameIdx, err := credited.Column(colCopyright)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]map[classify.Category]int, len(top.Groups))
	for _, g := range top.Groups {
		counts[g.Key] = make(map[classify.Category]int)
	}
	for i := 0; i < credited.Len(); i++ {
		row := credited.Row(i)
		byCategory, ok := counts[row.Get(nameIdx)]
		if !ok {
			continue
		}
		byCategory[classify.Classify(row.Get(titleIdx))]++
	}

	order := render.StackOrder()
	bars := make([]render.Bar, 0, len(top.Groups))
	for i := len(top.Groups) - 1; i >= 0; i-- {
		name := top.Groups[i].Key
		bar := render.Bar{Name: name}
		for _, cat := range order {
			bar.Segments = append(bar.Segments, render.Segment{
				Label: string(cat),
				Color: render.ColorFor(cat),
				Value: float64(counts[name][cat]),
			})
		}
		bars = append(bars, bar)
	}
	return bars, nil
}
