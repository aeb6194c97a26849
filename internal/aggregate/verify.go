package aggregate

import (
	"fmt"

	"github.com/mfm-labs/tidycharts/internal/table"
)

// Verify checks a computed Result for consistency against its source table
// before it is handed to a renderer:
//
//   - the number of groups must equal the number of distinct key values
//   - every Count metric must sum to the number of non-null cells of its
//     source column
//
// A failure here means the aggregation itself is broken, so callers treat it
// as fatal.
func Verify(src *table.Table, res *Result) error {
	keyIdx, err := src.Column(res.Key)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	distinct := make(map[string]struct{}, len(res.Groups))
	for i := 0; i < src.Len(); i++ {
		distinct[src.Row(i).Get(keyIdx)] = struct{}{}
	}
	if len(res.Groups) != len(distinct) {
		return fmt.Errorf("verify: aggregate has %d groups, source has %d distinct %q values",
			len(res.Groups), len(distinct), res.Key)
	}

	for _, m := range res.Metrics {
		if m.Op != Count {
			continue
		}
		colIdx, err := src.Column(m.Column)
		if err != nil {
			return fmt.Errorf("verify: %w", err)
		}
		var want int
		for i := 0; i < src.Len(); i++ {
			if !table.IsNull(src.Row(i).Get(colIdx)) {
				want++
			}
		}
		var got float64
		for _, g := range res.Groups {
			got += g.Value(m.Name)
		}
		if int(got) != want {
			return fmt.Errorf("verify: metric %q sums to %d, source has %d non-null %q cells",
				m.Name, int(got), want, m.Column)
		}
	}

	return nil
}
