// Package render turns computed aggregates into static chart images and
// terminal previews.
package render

import (
	"github.com/elliotchance/orderedmap/v2"

	"github.com/mfm-labs/tidycharts/internal/classify"
)

// palette maps each subject category to its bar color. Iteration order is
// the stacking order of bar segments and must stay fixed: it is part of the
// rendering contract.
var palette = func() *orderedmap.OrderedMap[classify.Category, string] {
	m := orderedmap.NewOrderedMap[classify.Category, string]()
	m.Set(classify.Galaxies, "#5B9BD5")
	m.Set(classify.Nebulae, "#FF6B35")
	m.Set(classify.MilkyWay, "#F4E04D")
	m.Set(classify.Moon, "#E8E8E8")
	m.Set(classify.Planets, "#70D6FF")
	m.Set(classify.Auroras, "#06FFA5")
	m.Set(classify.Comets, "#C77DFF")
	m.Set(classify.Sun, "#FFB703")
	m.Set(classify.Eclipses, "#8B8B8B")
	m.Set(classify.Other, "#4A4A4A")
	return m
}()

// ColorFor returns the palette color of a category. Unknown categories get
// the Other color.
func ColorFor(c classify.Category) string {
	if col, ok := palette.Get(c); ok {
		return col
	}
	col, _ := palette.Get(classify.Other)
	return col
}

// StackOrder returns the categories in segment stacking order.
func StackOrder() []classify.Category {
	out := make([]classify.Category, 0, palette.Len())
	for el := palette.Front(); el != nil; el = el.Next() {
		out = append(out, el.Key)
	}
	return out
}
