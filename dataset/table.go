// Package dataset holds the categorical tables fed to the miner and the
// collaborators that prepare them: CSV I/O, download with a local cache,
// constant-column removal and codebook relabelling.
package dataset

import (
	"slices"
	"sort"

	"github.com/YuminosukeSato/arules/pkg/errors"
)

// Table is a rectangular table of categorical string values.
// Rows[i][j] is the value of Columns[j] for observation i.
type Table struct {
	Columns []string
	Rows    [][]string
}

// NewTable validates that every row has one value per column and that column
// names are unique.
func NewTable(columns []string, rows [][]string) (*Table, error) {
	seen := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		if _, dup := seen[c]; dup {
			return nil, errors.NewValueError("dataset.NewTable", "duplicate column "+c)
		}
		seen[c] = struct{}{}
	}
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, errors.Wrapf(
				errors.NewDimensionError("dataset.NewTable", len(columns), len(row), 1),
				"row %d", i)
		}
	}
	return &Table{Columns: columns, Rows: rows}, nil
}

// NumRows returns the number of observations.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// NumColumns returns the number of attributes.
func (t *Table) NumColumns() int {
	return len(t.Columns)
}

// ColumnIndex returns the position of name, or -1.
func (t *Table) ColumnIndex(name string) int {
	return slices.Index(t.Columns, name)
}

// Column returns a copy of the values of the named column.
func (t *Table) Column(name string) ([]string, error) {
	j := t.ColumnIndex(name)
	if j < 0 {
		return nil, errors.Wrapf(errors.ErrUnknownColumn, "column %q", name)
	}
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[j]
	}
	return out, nil
}

// Drop returns a new table without the named columns. Unknown names are ignored.
func (t *Table) Drop(names ...string) *Table {
	keep := make([]int, 0, len(t.Columns))
	for j, c := range t.Columns {
		if !slices.Contains(names, c) {
			keep = append(keep, j)
		}
	}
	return t.project(keep)
}

// Select returns a new table with only the named columns, in the given order.
func (t *Table) Select(names ...string) (*Table, error) {
	idx := make([]int, 0, len(names))
	for _, n := range names {
		j := t.ColumnIndex(n)
		if j < 0 {
			return nil, errors.Wrapf(errors.ErrUnknownColumn, "column %q", n)
		}
		idx = append(idx, j)
	}
	return t.project(idx), nil
}

func (t *Table) project(idx []int) *Table {
	cols := make([]string, len(idx))
	for k, j := range idx {
		cols[k] = t.Columns[j]
	}
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		r := make([]string, len(idx))
		for k, j := range idx {
			r[k] = row[j]
		}
		rows[i] = r
	}
	return &Table{Columns: cols, Rows: rows}
}

// Distinct returns the sorted distinct values of column j.
func (t *Table) Distinct(j int) []string {
	set := make(map[string]struct{})
	for _, row := range t.Rows {
		set[row[j]] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// DropConstantColumns removes columns holding a single distinct value.
// Such columns carry no information for association rules.
// It returns the cleaned table and the names of the dropped columns.
func DropConstantColumns(t *Table) (*Table, []string) {
	var constant []string
	for j, c := range t.Columns {
		if len(t.Distinct(j)) == 1 {
			constant = append(constant, c)
		}
	}
	if len(constant) == 0 {
		return t, nil
	}
	return t.Drop(constant...), constant
}

// ValueCount is the frequency of one value in a column.
type ValueCount struct {
	Value string
	Count int
}

// ValueCounts returns the value frequencies of the named column, most frequent
// first; equal counts are ordered by value.
func ValueCounts(t *Table, column string) ([]ValueCount, error) {
	values, err := t.Column(column)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, v := range values {
		counts[v]++
	}
	out := make([]ValueCount, 0, len(counts))
	for v, c := range counts {
		out = append(out, ValueCount{Value: v, Count: c})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Count != out[b].Count {
			return out[a].Count > out[b].Count
		}
		return out[a].Value < out[b].Value
	})
	return out, nil
}
