// Package aggregate implements group-by summary statistics over a table.
// Results are sorted descending by their primary metric; that ordering is part
// of the contract because it drives rendering order (top-N bars).
package aggregate

import (
	"fmt"
	"math"
	"sort"

	"github.com/mfm-labs/tidycharts/internal/table"
)

// Op identifies a reducer applied to a metric column.
type Op int

const (
	// Sum adds the non-null values of the metric column.
	Sum Op = iota
	// Count counts the non-null values of the metric column.
	Count
	// Distinct counts distinct non-null values of the metric column.
	Distinct
	// StdDev computes the sample standard deviation (ddof=1) of the metric
	// column. Null cells are coerced to 0 and groups with fewer than two
	// observations yield 0, matching the source's fill-null-variance policy.
	StdDev
	// Ratio divides one previously computed metric by another. Column is
	// ignored; Num and Den name earlier metrics in the same aggregation.
	Ratio
)

// Metric describes one computed column of an aggregate.
type Metric struct {
	Name   string // output column name
	Column string // source column (unused for Ratio)
	Op     Op
	Num    string // Ratio numerator metric name
	Den    string // Ratio denominator metric name
}

// Group is one output row: a key value plus the computed metrics.
type Group struct {
	Key    string
	values map[string]float64
}

// Value returns the computed metric by name.
func (g Group) Value(name string) float64 {
	return g.values[name]
}

// Result is a derived table keyed by one categorical column.
type Result struct {
	Key     string
	Metrics []Metric
	Groups  []Group
}

type accumulator struct {
	key      string
	sum      map[string]float64
	count    map[string]int
	distinct map[string]map[string]struct{}
	samples  map[string][]float64
}

// Aggregate groups t by the key column and computes the given metrics per
// group. It fails only when the key or a metric column is absent from the
// schema. The input table is not modified; calling Aggregate twice on the
// same input yields identical results.
func Aggregate(t *table.Table, key string, metrics []Metric) (*Result, error) {
	keyIdx, err := t.Column(key)
	if err != nil {
		return nil, fmt.Errorf("grouping key: %w", err)
	}

	colIdx := make(map[string]int, len(metrics))
	for _, m := range metrics {
		if m.Op == Ratio {
			continue
		}
		idx, err := t.Column(m.Column)
		if err != nil {
			return nil, fmt.Errorf("metric %q: %w", m.Name, err)
		}
		colIdx[m.Column] = idx
	}

	// Accumulate in input order so ties keep a stable, deterministic order.
	order := make([]string, 0, 64)
	accs := make(map[string]*accumulator, 64)
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)
		k := row.Get(keyIdx)
		acc, ok := accs[k]
		if !ok {
			acc = &accumulator{
				key:      k,
				sum:      make(map[string]float64),
				count:    make(map[string]int),
				distinct: make(map[string]map[string]struct{}),
				samples:  make(map[string][]float64),
			}
			accs[k] = acc
			order = append(order, k)
		}
		for _, m := range metrics {
			if m.Op == Ratio {
				continue
			}
			cell := row.Get(colIdx[m.Column])
			switch m.Op {
			case Sum:
				if v, ok := table.Float(cell); ok {
					acc.sum[m.Name] += v
				}
			case Count:
				if !table.IsNull(cell) {
					acc.count[m.Name]++
				}
			case Distinct:
				if !table.IsNull(cell) {
					set, ok := acc.distinct[m.Name]
					if !ok {
						set = make(map[string]struct{})
						acc.distinct[m.Name] = set
					}
					set[cell] = struct{}{}
				}
			case StdDev:
				v, _ := table.Float(cell) // null coerced to 0
				acc.samples[m.Name] = append(acc.samples[m.Name], v)
			}
		}
	}

	groups := make([]Group, 0, len(order))
	for _, k := range order {
		acc := accs[k]
		values := make(map[string]float64, len(metrics))
		for _, m := range metrics {
			switch m.Op {
			case Sum:
				values[m.Name] = acc.sum[m.Name]
			case Count:
				values[m.Name] = float64(acc.count[m.Name])
			case Distinct:
				values[m.Name] = float64(len(acc.distinct[m.Name]))
			case StdDev:
				values[m.Name] = sampleStdDev(acc.samples[m.Name])
			case Ratio:
				num, ok := values[m.Num]
				if !ok {
					return nil, fmt.Errorf("ratio metric %q: numerator %q is not an earlier metric", m.Name, m.Num)
				}
				den, ok := values[m.Den]
				if !ok {
					return nil, fmt.Errorf("ratio metric %q: denominator %q is not an earlier metric", m.Name, m.Den)
				}
				if den == 0 {
					values[m.Name] = 0
				} else {
					values[m.Name] = num / den
				}
			}
		}
		groups = append(groups, Group{Key: k, values: values})
	}

	res := &Result{Key: key, Metrics: metrics, Groups: groups}
	if len(metrics) > 0 {
		res.SortByDesc(metrics[0].Name)
	}
	return res, nil
}

// sampleStdDev returns the ddof=1 standard deviation, or 0 when fewer than
// two observations exist.
func sampleStdDev(samples []float64) float64 {
	n := float64(len(samples))
	if n < 2 {
		return 0
	}
	var mean float64
	for _, v := range samples {
		mean += v
	}
	mean /= n
	var ss float64
	for _, v := range samples {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / (n - 1))
}

// SortByDesc sorts groups descending by the named metric. The sort is stable,
// so ties keep input order.
func (r *Result) SortByDesc(metric string) {
	sort.SliceStable(r.Groups, func(i, j int) bool {
		return r.Groups[i].values[metric] > r.Groups[j].values[metric]
	})
}

// FilterGreater returns a new Result keeping only groups whose metric value
// exceeds v.
func (r *Result) FilterGreater(metric string, v float64) *Result {
	kept := make([]Group, 0, len(r.Groups))
	for _, g := range r.Groups {
		if g.values[metric] > v {
			kept = append(kept, g)
		}
	}
	return &Result{Key: r.Key, Metrics: r.Metrics, Groups: kept}
}

// Top returns a new Result with at most n leading groups.
func (r *Result) Top(n int) *Result {
	if n > len(r.Groups) {
		n = len(r.Groups)
	}
	return &Result{Key: r.Key, Metrics: r.Metrics, Groups: r.Groups[:n]}
}

// Values extracts one metric column in group order.
func (r *Result) Values(metric string) []float64 {
	out := make([]float64, len(r.Groups))
	for i, g := range r.Groups {
		out[i] = g.values[metric]
	}
	return out
}

// Keys extracts the key column in group order.
func (r *Result) Keys() []string {
	out := make([]string, len(r.Groups))
	for i, g := range r.Groups {
		out[i] = g.Key
	}
	return out
}

// ByKey builds a key -> metric value lookup for joins (e.g. map fills).
func (r *Result) ByKey(metric string) map[string]float64 {
	out := make(map[string]float64, len(r.Groups))
	for _, g := range r.Groups {
		out[g.Key] = g.values[metric]
	}
	return out
}
