package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/mfm-labs/tidycharts/internal/aggregate"
)

// PrintResult writes an aligned preview of an aggregate to w before the
// chart is rendered, showing at most limit rows. Key values can contain
// non-ASCII characters (photographer names), so padding is width-aware.
func PrintResult(w io.Writer, title string, res *aggregate.Result, limit int) {
	header := color.New(color.FgCyan, color.OpBold)
	fmt.Fprintf(w, "%s\n", header.Sprintf("[%s]", title))
	fmt.Fprintln(w, strings.Repeat("-", len(title)+2))

	shown := res.Groups
	if limit > 0 && limit < len(shown) {
		shown = shown[:limit]
	}

	keyWidth := runewidth.StringWidth(res.Key)
	for _, g := range shown {
		if cw := runewidth.StringWidth(g.Key); cw > keyWidth {
			keyWidth = cw
		}
	}

	metricWidths := make([]int, len(res.Metrics))
	for i, m := range res.Metrics {
		metricWidths[i] = runewidth.StringWidth(m.Name)
		for _, g := range shown {
			if cw := runewidth.StringWidth(formatValue(g.Value(m.Name))); cw > metricWidths[i] {
				metricWidths[i] = cw
			}
		}
	}

	fmt.Fprintf(w, "  %s", runewidth.FillRight(res.Key, keyWidth))
	for i, m := range res.Metrics {
		fmt.Fprintf(w, "  %s", runewidth.FillLeft(m.Name, metricWidths[i]))
	}
	fmt.Fprintln(w)

	for _, g := range shown {
		fmt.Fprintf(w, "  %s", runewidth.FillRight(g.Key, keyWidth))
		for i, m := range res.Metrics {
			fmt.Fprintf(w, "  %s", runewidth.FillLeft(formatValue(g.Value(m.Name)), metricWidths[i]))
		}
		fmt.Fprintln(w)
	}

	if len(shown) < len(res.Groups) {
		fmt.Fprintf(w, "  ... (%d more)\n", len(res.Groups)-len(shown))
	}
	fmt.Fprintln(w)
}
