// Package table contains the in-memory tabular model shared by the chart jobs.
// A Table is loaded once from CSV and never mutated; every transformation
// returns a new Table over the same backing rows.
package table

import (
	"fmt"
	"strconv"
	"strings"
)

// Table is an ordered sequence of records sharing one schema.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// Record is a single row of a Table.
type Record struct {
	cells []string
}

// New builds a Table from a column list and row data. Rows shorter than the
// schema are padded with empty cells so positional access stays safe.
func New(columns []string, rows [][]string) *Table {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		index[c] = i
	}
	for i, row := range rows {
		for len(row) < len(columns) {
			row = append(row, "")
		}
		rows[i] = row
	}
	return &Table{columns: columns, index: index, rows: rows}
}

// Columns returns the schema column names in order.
func (t *Table) Columns() []string {
	return t.columns
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.rows)
}

// Column resolves a column name to its positional index.
func (t *Table) Column(name string) (int, error) {
	idx, ok := t.index[name]
	if !ok {
		return 0, fmt.Errorf("column %q not found in schema %v", name, t.columns)
	}
	return idx, nil
}

// Row returns the record at position i.
func (t *Table) Row(i int) Record {
	return Record{cells: t.rows[i]}
}

// Filter returns a new Table containing the records for which pred is true.
// The original table is left untouched.
func (t *Table) Filter(pred func(Record) bool) *Table {
	kept := make([][]string, 0, len(t.rows))
	for _, row := range t.rows {
		if pred(Record{cells: row}) {
			kept = append(kept, row)
		}
	}
	return &Table{columns: t.columns, index: t.index, rows: kept}
}

// Get returns the cell at positional index i.
func (r Record) Get(i int) string {
	if i < 0 || i >= len(r.cells) {
		return ""
	}
	return r.cells[i]
}

// IsNull reports whether s is a missing value. The source datasets encode
// missing cells as empty strings or the literal "NA".
func IsNull(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || s == "NA"
}

// Float parses a cell into a float64. The second return is false for null or
// unparseable cells.
func Float(s string) (float64, bool) {
	if IsNull(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
