package charts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mfm-labs/tidycharts/internal/aggregate"
	"github.com/mfm-labs/tidycharts/internal/render"
	"github.com/mfm-labs/tidycharts/internal/table"
)

// africa.csv schema
const (
	colCountry  = "country"
	colLanguage = "language"
	colFamily   = "family"
	colSpeakers = "native_speakers"
)

// RunAfrica builds the African-languages charts: a top-countries bar chart,
// a speaker-density chart per language family, and a languages-per-country
// choropleth joined against the local world shapefile.
func RunAfrica(ctx context.Context, d Deps) error {
	log := d.Log.WithChart("africa")
	cfg := d.Config

	log.WithStage("load").Infow("fetching dataset", "url", cfg.Datasets.AfricaURL)
	src, err := d.Client.Table(ctx, cfg.Datasets.AfricaURL)
	if err != nil {
		return err
	}
	log.WithStage("load").Infow("dataset loaded", "rows", src.Len())

	countries, err := languagesPerCountry(src)
	if err != nil {
		return err
	}
	if err := aggregate.Verify(src, countries); err != nil {
		return err
	}

	density, err := speakerDensity(src)
	if err != nil {
		return err
	}

	crossBorder, err := crossBorderLanguages(src)
	if err != nil {
		return err
	}

	render.PrintResult(d.Out, "Languages per country", countries, cfg.Render.TopCountries)
	render.PrintResult(d.Out, "Speaker density per family", density, 0)
	render.PrintResult(d.Out, "Cross-border languages", crossBorder, 15)

	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	top := countries.Top(cfg.Render.TopCountries)
	barPath := filepath.Join(cfg.Output.Dir, cfg.Output.CountriesChart)
	err = render.BarChart(render.BarChartConfig{
		Width:      cfg.Render.Width,
		Height:     cfg.Render.Height,
		Title:      "Most multilingual countries in Africa",
		Background: cfg.Render.Background,
		BarColor:   "#06FFA5",
	}, top.Keys(), top.Values("language_count"), barPath)
	if err != nil {
		return err
	}
	log.WithStage("render").Infow("chart written", "path", barPath)

	densityPath := filepath.Join(cfg.Output.Dir, cfg.Output.DensityChart)
	err = render.StackedBarH(render.StackedBarConfig{
		Width:          cfg.Render.Width,
		Height:         cfg.Render.Height,
		Background:     cfg.Render.Background,
		Title:          "Where speakers concentrate",
		Subtitle:       "Native speakers per distinct language, by language family",
		XLabel:         "Native speakers per language",
		Credit:         "Made by MFM | Data: TidyTuesday",
		LabelThreshold: cfg.Render.LabelThreshold,
		TitleFace:      d.Faces.Title,
		SubtitleFace:   d.Faces.Subtitle,
		LabelFace:      d.Faces.Label,
		SmallFace:      d.Faces.Small,
	}, densityBars(density), densityPath)
	if err != nil {
		return err
	}
	log.WithStage("render").Infow("chart written", "path", densityPath)

	mapPath := filepath.Join(cfg.Output.Dir, cfg.Output.LanguagesMap)
	err = render.Choropleth(render.ChoroplethConfig{
		Width:       cfg.Render.Width,
		Height:      cfg.Render.Height,
		Background:  cfg.Render.Background,
		LowColor:    cfg.Render.MapLowColor,
		HighColor:   cfg.Render.MapHighColor,
		NoDataColor: cfg.Render.MapNoDataColor,
		Title:       "Languages spoken per country",
		Credit:      "Made by MFM | Data: TidyTuesday",
		Bounds:      render.AfricaBounds,
		Shapefile:   cfg.Render.Shapefile,
		NameField:   cfg.Render.CountryField,
		TitleFace:   d.Faces.Title,
		SmallFace:   d.Faces.Small,
	}, countries.ByKey("language_count"), mapPath)
	if err != nil {
		return err
	}
	log.WithStage("render").Infow("map written", "path", mapPath)

	return nil
}

// languagesPerCountry counts languages recorded per country, most
// multilingual first.
func languagesPerCountry(src *table.Table) (*aggregate.Result, error) {
	return aggregate.Aggregate(src, colCountry, []aggregate.Metric{
		{Name: "language_count", Column: colLanguage, Op: aggregate.Count},
	})
}

// speakerDensity computes, per language family, total native speakers,
// distinct language count, the spread of speaker counts, and their ratio
// (speaker density). The view is sorted by density.
func speakerDensity(src *table.Table) (*aggregate.Result, error) {
	res, err := aggregate.Aggregate(src, colFamily, []aggregate.Metric{
		{Name: "total_speakers", Column: colSpeakers, Op: aggregate.Sum},
		{Name: "language_count", Column: colLanguage, Op: aggregate.Distinct},
		{Name: "speaker_stddev", Column: colSpeakers, Op: aggregate.StdDev},
		{Name: "speaker_density", Op: aggregate.Ratio, Num: "total_speakers", Den: "language_count"},
	})
	if err != nil {
		return nil, err
	}
	res.SortByDesc("speaker_density")
	return res, nil
}

// crossBorderLanguages lists languages recorded in more than one country,
// widest reach first.
func crossBorderLanguages(src *table.Table) (*aggregate.Result, error) {
	res, err := aggregate.Aggregate(src, colLanguage, []aggregate.Metric{
		{Name: "country_count", Column: colCountry, Op: aggregate.Distinct},
	})
	if err != nil {
		return nil, err
	}
	return res.FilterGreater("country_count", 1), nil
}

// densityBars turns the density aggregate into renderer bars, lowest density
// first so the highest family lands on top of the chart. The per-family
// speaker spread rides along as the bar note.
func densityBars(density *aggregate.Result) []render.Bar {
	groups := density.Groups
	bars := make([]render.Bar, 0, len(groups))
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		bars = append(bars, render.Bar{
			Name: g.Key,
			Note: fmt.Sprintf("σ %.0f", g.Value("speaker_stddev")),
			Segments: []render.Segment{
				{Color: "#5B9BD5", Value: g.Value("speaker_density")},
			},
		})
	}
	return bars
}
