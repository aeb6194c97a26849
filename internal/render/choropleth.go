package render

import (
	"fmt"
	"strings"

	"github.com/fogleman/gg"
	shp "github.com/jonas-p/go-shp"
	"golang.org/x/image/font"
)

// Bounds is the lon/lat window projected onto the canvas.
type Bounds struct {
	MinLon, MinLat, MaxLon, MaxLat float64
}

// AfricaBounds frames the African continent with a small margin.
var AfricaBounds = Bounds{MinLon: -25, MinLat: -40, MaxLon: 60, MaxLat: 40}

// ChoroplethConfig holds parameters for a filled-polygon map.
type ChoroplethConfig struct {
	Width, Height int
	Background    string
	LowColor      string
	HighColor     string
	NoDataColor   string
	Title         string
	Credit        string
	Bounds        Bounds

	Shapefile string
	NameField string

	TitleFace font.Face
	SmallFace font.Face
}

// Choropleth fills each country polygon from the shapefile with a color
// scaled to its value and writes a PNG to path. Countries absent from values
// get the no-data fill. A missing shapefile or empty values is fatal.
func Choropleth(cfg ChoroplethConfig, values map[string]float64, path string) error {
	if len(values) == 0 {
		return fmt.Errorf("choropleth: no values to render")
	}

	reader, err := shp.Open(cfg.Shapefile)
	if err != nil {
		return fmt.Errorf("failed to open shapefile %s: %w", cfg.Shapefile, err)
	}
	defer reader.Close()

	nameIdx := -1
	for i, field := range reader.Fields() {
		if strings.EqualFold(field.String(), cfg.NameField) {
			nameIdx = i
			break
		}
	}
	if nameIdx < 0 {
		return fmt.Errorf("shapefile %s has no %q attribute", cfg.Shapefile, cfg.NameField)
	}

	min, max := valueRange(values)

	dc := gg.NewContext(cfg.Width, cfg.Height)
	dc.SetHexColor(cfg.Background)
	dc.Clear()
	dc.SetFillRuleEvenOdd()

	w := float64(cfg.Width)
	h := float64(cfg.Height)

	for reader.Next() {
		n, shape := reader.Shape()
		poly, ok := shape.(*shp.Polygon)
		if !ok {
			continue
		}
		name := strings.TrimSpace(reader.ReadAttribute(n, nameIdx))

		if v, found := values[name]; found {
			t := 0.0
			if max > min {
				t = (v - min) / (max - min)
			}
			r, g, b, err := lerpHex(cfg.LowColor, cfg.HighColor, t)
			if err != nil {
				return fmt.Errorf("choropleth ramp: %w", err)
			}
			dc.SetRGB(r, g, b)
		} else {
			dc.SetHexColor(cfg.NoDataColor)
		}

		tracePolygon(dc, poly, cfg.Bounds, w, h)
		dc.FillPreserve()
		dc.SetHexColor(cfg.Background)
		dc.SetLineWidth(0.8)
		dc.Stroke()
	}

	if cfg.Title != "" {
		dc.SetFontFace(cfg.TitleFace)
		dc.SetHexColor(colorText)
		dc.DrawStringAnchored(cfg.Title, w/2, 0.05*h, 0.5, 0.5)
	}
	if cfg.Credit != "" {
		dc.SetFontFace(cfg.SmallFace)
		dc.SetHexColor(colorCredit)
		dc.DrawStringAnchored(cfg.Credit, 0.97*w, 0.97*h, 1, 0.5)
	}
	drawRamp(dc, cfg, min, max, w, h)

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to write map %s: %w", path, err)
	}
	return nil
}

// tracePolygon adds every ring of the polygon to the current path. Rings are
// filled together under the even-odd rule so holes stay open.
func tracePolygon(dc *gg.Context, poly *shp.Polygon, b Bounds, w, h float64) {
	dc.ClearPath()
	parts := poly.Parts
	for p := 0; p < len(parts); p++ {
		start := int(parts[p])
		end := len(poly.Points)
		if p+1 < len(parts) {
			end = int(parts[p+1])
		}
		for i := start; i < end; i++ {
			x, y := project(poly.Points[i].X, poly.Points[i].Y, b, w, h)
			if i == start {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.ClosePath()
	}
}

// project maps lon/lat to canvas coordinates with an equirectangular
// projection over the configured bounds. Latitude grows upward, canvas y
// grows downward.
func project(lon, lat float64, b Bounds, w, h float64) (x, y float64) {
	x = (lon - b.MinLon) / (b.MaxLon - b.MinLon) * w
	y = (b.MaxLat - lat) / (b.MaxLat - b.MinLat) * h
	return x, y
}

// valueRange returns the min and max of the value map.
func valueRange(values map[string]float64) (min, max float64) {
	first := true
	for _, v := range values {
		if first {
			min, max = v, v
			first = false
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// drawRamp draws the color legend: a gradient strip with the range endpoints.
func drawRamp(dc *gg.Context, cfg ChoroplethConfig, min, max, w, h float64) {
	const steps = 100
	rx := 0.05 * w
	ry := 0.92 * h
	rw := 0.25 * w
	rh := 0.015 * h

	for i := 0; i < steps; i++ {
		t := float64(i) / (steps - 1)
		r, g, b, err := lerpHex(cfg.LowColor, cfg.HighColor, t)
		if err != nil {
			return
		}
		dc.SetRGB(r, g, b)
		dc.DrawRectangle(rx+t*rw, ry, rw/steps+1, rh)
		dc.Fill()
	}

	dc.SetFontFace(cfg.SmallFace)
	dc.SetHexColor(colorMuted)
	dc.DrawStringAnchored(formatValue(min), rx, ry+rh+0.02*h, 0, 0.5)
	dc.DrawStringAnchored(formatValue(max), rx+rw, ry+rh+0.02*h, 1, 0.5)
}
