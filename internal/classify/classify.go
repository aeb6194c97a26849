// Package classify assigns APOD photo titles to a fixed subject category via
// ordered keyword rules.
package classify

import "strings"

// Category is one label out of the fixed closed subject set.
type Category string

const (
	Nebulae  Category = "Nebulae"
	Galaxies Category = "Galaxies"
	MilkyWay Category = "Milky Way"
	Auroras  Category = "Auroras"
	Moon     Category = "Moon"
	Eclipses Category = "Eclipses"
	Comets   Category = "Comets"
	Sun      Category = "Sun"
	Planets  Category = "Planets"
	Other    Category = "Other"
)

type rule struct {
	keywords []string
	category Category
}

// Rule order is significant: keyword sets are not mutually exclusive (a title
// can contain both "moon" and "eclipse"), and the first matching rule wins.
// Reordering changes classifications.
var rules = []rule{
	{[]string{"nebula", "nebulae"}, Nebulae},
	{[]string{"galaxy", "galaxies", "andromeda", "m31", "m33", "m51", "m81", "m82"}, Galaxies},
	{[]string{"milky way"}, MilkyWay},
	{[]string{"aurora", "northern light", "southern light"}, Auroras},
	{[]string{"moon", "lunar"}, Moon},
	{[]string{"eclipse"}, Eclipses},
	{[]string{"comet"}, Comets},
	{[]string{"sun", "solar", "sunspot"}, Sun},
	{[]string{"mars", "jupiter", "saturn", "venus", "planet"}, Planets},
}

// Classify maps a free-text title to exactly one Category. Matching is a
// case-insensitive substring check evaluated top to bottom; titles matching
// no rule fall through to Other. The function is pure: same input, same
// output.
func Classify(title string) Category {
	lower := strings.ToLower(title)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.category
			}
		}
	}
	return Other
}
