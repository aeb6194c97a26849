// Package fonts loads remote TTF assets into font faces for rendering.
package fonts

import (
	"context"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/mfm-labs/tidycharts/internal/fetch"
	"github.com/mfm-labs/tidycharts/internal/logger"
)

// Load fetches a TTF from url and returns a face at the given point size.
// Font assets are optional: any fetch or parse failure logs a warning and
// falls back to the builtin bitmap face so rendering can proceed.
func Load(ctx context.Context, client *fetch.Client, url string, points float64, log *logger.Logger) font.Face {
	if url == "" {
		return basicfont.Face7x13
	}

	data, err := client.Bytes(ctx, url)
	if err != nil {
		log.Warnw("font fetch failed, using builtin face", "url", url, "error", err)
		return basicfont.Face7x13
	}

	parsed, err := truetype.Parse(data)
	if err != nil {
		log.Warnw("font parse failed, using builtin face", "url", url, "error", err)
		return basicfont.Face7x13
	}

	return truetype.NewFace(parsed, &truetype.Options{
		Size: points,
		DPI:  72,
	})
}
