package render

import (
	"fmt"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Segment is one colored slice of a stacked bar.
type Segment struct {
	Label string
	Color string
	Value float64
}

// Bar is one horizontal bar: a name, its segments in stacking order, and an
// optional note drawn after the total.
type Bar struct {
	Name     string
	Note     string
	Segments []Segment
}

// Total returns the summed segment values.
func (b Bar) Total() float64 {
	var t float64
	for _, s := range b.Segments {
		t += s.Value
	}
	return t
}

// StackedBarConfig holds layout parameters for a stacked horizontal bar
// chart. Bars are drawn bottom to top: bars[0] is the lowest row.
type StackedBarConfig struct {
	Width, Height  int
	Background     string
	Title          string
	Subtitle       string
	XLabel         string
	Footnote       string
	Credit         string
	LabelThreshold float64 // min segment value that gets an on-bar label

	TitleFace    font.Face
	SubtitleFace font.Face
	LabelFace    font.Face
	SmallFace    font.Face
}

// StackedBarH renders bars as an annotated stacked horizontal bar chart and
// writes a PNG to path, overwriting any existing file. Empty input is an
// error; any other rendering failure is fatal to the job.
func StackedBarH(cfg StackedBarConfig, bars []Bar, path string) error {
	if len(bars) == 0 {
		return fmt.Errorf("stacked bar chart: no bars to render")
	}

	dc := gg.NewContext(cfg.Width, cfg.Height)
	dc.SetHexColor(cfg.Background)
	dc.Clear()

	w := float64(cfg.Width)
	h := float64(cfg.Height)

	// Plot area: names live left of the axis, annotations hang off the
	// right edge.
	x0 := 0.20 * w
	x1 := 0.93 * w
	y0 := 0.16 * h
	y1 := 0.86 * h

	var maxTotal float64
	for _, b := range bars {
		if t := b.Total(); t > maxTotal {
			maxTotal = t
		}
	}
	if maxTotal == 0 {
		return fmt.Errorf("stacked bar chart: all bars are empty")
	}

	scale := (x1 - x0) / maxTotal
	rowH := (y1 - y0) / float64(len(bars))
	barH := rowH * 0.7

	for i, bar := range bars {
		// bars[0] sits at the bottom
		yc := y1 - (float64(i)+0.5)*rowH

		values := make([]float64, len(bar.Segments))
		for j, s := range bar.Segments {
			values[j] = s.Value
		}
		offsets := stackOffsets(values)

		for j, seg := range bar.Segments {
			if seg.Value <= 0 {
				continue
			}
			sx := x0 + offsets[j]*scale
			sw := seg.Value * scale
			dc.SetHexColor(seg.Color)
			dc.DrawRectangle(sx, yc-barH/2, sw, barH)
			dc.Fill()
			dc.SetHexColor(cfg.Background)
			dc.SetLineWidth(0.5)
			dc.DrawRectangle(sx, yc-barH/2, sw, barH)
			dc.Stroke()

			if seg.Label != "" && seg.Value >= cfg.LabelThreshold {
				if luminance(seg.Color) > 0.45 {
					dc.SetHexColor("#000000")
				} else {
					dc.SetHexColor("#FFFFFF")
				}
				dc.SetFontFace(cfg.SmallFace)
				drawSegmentLabel(dc, seg.Label, sx+sw/2, yc)
			}
		}

		dc.SetFontFace(cfg.LabelFace)
		dc.SetHexColor(colorText)
		dc.DrawStringAnchored(bar.Name, x0-0.01*w, yc, 1, 0.35)

		total := bar.Total()
		end := x0 + total*scale + 0.008*w
		dc.SetHexColor(colorMuted)
		dc.DrawStringAnchored(formatValue(total), end, yc, 0, 0.35)
		if bar.Note != "" {
			dc.SetFontFace(cfg.SmallFace)
			dc.SetHexColor(colorFaint)
			noteX := end + fontWidth(dc, formatValue(total)) + 0.01*w
			dc.DrawStringAnchored(bar.Note, noteX, yc, 0, 0.35)
		}
	}

	// Baseline
	dc.SetHexColor("#333333")
	dc.SetLineWidth(1)
	dc.DrawLine(x0, y1, x1, y1)
	dc.Stroke()

	if cfg.XLabel != "" {
		dc.SetFontFace(cfg.LabelFace)
		dc.SetHexColor(colorMuted)
		dc.DrawStringAnchored(cfg.XLabel, (x0+x1)/2, y1+0.035*h, 0.5, 0.5)
	}

	if cfg.Title != "" {
		dc.SetFontFace(cfg.TitleFace)
		dc.SetHexColor(colorText)
		dc.DrawStringAnchored(cfg.Title, w/2, 0.06*h, 0.5, 0.5)
	}
	if cfg.Subtitle != "" {
		dc.SetFontFace(cfg.SubtitleFace)
		dc.SetHexColor(colorMuted)
		dc.DrawStringAnchored(cfg.Subtitle, w/2, 0.11*h, 0.5, 0.5)
	}
	if cfg.Footnote != "" {
		dc.SetFontFace(cfg.SmallFace)
		dc.SetHexColor(colorFaint)
		dc.DrawStringAnchored(cfg.Footnote, w/2, 0.965*h, 0.5, 0.5)
	}
	if cfg.Credit != "" {
		dc.SetFontFace(cfg.SmallFace)
		dc.SetHexColor(colorCredit)
		dc.DrawStringAnchored(cfg.Credit, x1, 0.965*h, 1, 0.5)
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to write chart %s: %w", path, err)
	}
	return nil
}

// drawSegmentLabel centers a label on a segment, splitting multi-word labels
// across lines the way the source chart does ("Milky Way" becomes two lines).
func drawSegmentLabel(dc *gg.Context, label string, x, y float64) {
	words := strings.Split(label, " ")
	if len(words) == 1 {
		dc.DrawStringAnchored(label, x, y, 0.5, 0.35)
		return
	}
	lineH := dc.FontHeight() * 1.1
	top := y - lineH*float64(len(words)-1)/2
	for i, word := range words {
		dc.DrawStringAnchored(word, x, top+float64(i)*lineH, 0.5, 0.35)
	}
}

// fontWidth measures rendered text width with the context's current face.
func fontWidth(dc *gg.Context, s string) float64 {
	w, _ := dc.MeasureString(s)
	return w
}
