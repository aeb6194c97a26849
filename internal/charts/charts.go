// Package charts wires the chart jobs end to end: each Run is a linear
// pipeline of load, aggregate, render, save with no state between runs.
package charts

import (
	"context"
	"io"

	"golang.org/x/image/font"

	"github.com/mfm-labs/tidycharts/internal/config"
	"github.com/mfm-labs/tidycharts/internal/fetch"
	"github.com/mfm-labs/tidycharts/internal/fonts"
	"github.com/mfm-labs/tidycharts/internal/logger"
)

// Deps carries the collaborators a chart job needs. Everything is passed
// explicitly; the jobs keep no package-level state.
type Deps struct {
	Config *config.Config
	Log    *logger.Logger
	Client *fetch.Client
	Out    io.Writer // terminal previews
	Faces  Faces
}

// Faces holds the typographic roles used by the renderers.
type Faces struct {
	Title    font.Face
	Subtitle font.Face
	Label    font.Face
	Small    font.Face
}

// LoadFaces fetches the configured fonts. Failures degrade to the builtin
// face inside fonts.Load, so this never errors.
func LoadFaces(ctx context.Context, client *fetch.Client, cfg *config.FontsConfig, log *logger.Logger) Faces {
	regular, bold := cfg.RegularURL, cfg.BoldURL
	if cfg.Disabled {
		regular, bold = "", ""
	}
	return Faces{
		Title:    fonts.Load(ctx, client, bold, 54, log),
		Subtitle: fonts.Load(ctx, client, regular, 30, log),
		Label:    fonts.Load(ctx, client, regular, 24, log),
		Small:    fonts.Load(ctx, client, regular, 19, log),
	}
}
