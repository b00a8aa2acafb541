// Package chart builds styled go-echarts figures from a small set of input
// shapes. Builders normalize the input, pick series colors by count, and
// delegate every presentation concern to the theme package so all chart
// kinds share one visual identity.
package chart

import (
	"fmt"
	"strconv"
	"strings"
)

// Data is the union of input shapes accepted by the chart builders. Each
// shape has exactly one normalization; passing a shape a builder does not
// support is an error, not a silent guess.
type Data interface {
	shape() string
}

// Category is one labeled value.
type Category struct {
	Label string
	Value float64
}

// Categories is the mapping shape: labels on one axis, values on the other,
// in insertion order.
type Categories []Category

func (Categories) shape() string { return "categories" }

// Values is the flat sequence shape: values on the y axis, indices on the x.
type Values []float64

func (Values) shape() string { return "values" }

// Point is one (x, y) pair.
type Point struct {
	X float64
	Y float64
}

// Points is the paired sequence shape: both axes given per element.
type Points []Point

func (Points) shape() string { return "points" }

// Table is the tabular shape: named columns referenced by the builder
// options. Column order is preserved for error messages.
type Table struct {
	names []string
	cols  map[string]tableColumn
}

type tableColumn struct {
	labels  []string
	numbers []float64
	numeric bool
}

func (*Table) shape() string { return "table" }

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{cols: make(map[string]tableColumn)}
}

// AddStrings adds (or replaces) a categorical column.
func (t *Table) AddStrings(name string, values []string) *Table {
	t.add(name, tableColumn{labels: values})
	return t
}

// AddFloats adds (or replaces) a numeric column.
func (t *Table) AddFloats(name string, values []float64) *Table {
	t.add(name, tableColumn{numbers: values, numeric: true})
	return t
}

func (t *Table) add(name string, col tableColumn) {
	if _, exists := t.cols[name]; !exists {
		t.names = append(t.names, name)
	}
	t.cols[name] = col
}

// Columns returns the column names in insertion order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.names...)
}

// Len returns the row count of the first column.
func (t *Table) Len() int {
	if len(t.names) == 0 {
		return 0
	}
	return t.cols[t.names[0]].len()
}

func (c tableColumn) len() int {
	if c.numeric {
		return len(c.numbers)
	}
	return len(c.labels)
}

func (t *Table) column(name string) (tableColumn, error) {
	col, ok := t.cols[name]
	if !ok {
		return tableColumn{}, fmt.Errorf("column %q not found (available: %s)", name, strings.Join(t.names, ", "))
	}
	return col, nil
}

// Strings returns a column's values as strings, rendering numeric columns.
func (t *Table) Strings(name string) ([]string, error) {
	return t.labelColumn(name)
}

// labels returns a column's values as strings, rendering numeric columns.
func (t *Table) labelColumn(name string) ([]string, error) {
	col, err := t.column(name)
	if err != nil {
		return nil, err
	}
	if !col.numeric {
		return col.labels, nil
	}
	out := make([]string, len(col.numbers))
	for i, v := range col.numbers {
		out[i] = formatValue(v)
	}
	return out, nil
}

func (t *Table) numberColumn(name string) ([]float64, error) {
	col, err := t.column(name)
	if err != nil {
		return nil, err
	}
	if !col.numeric {
		return nil, fmt.Errorf("column %q is categorical, expected numeric values", name)
	}
	return col.numbers, nil
}

// checkLengths verifies the referenced columns all have the same row count.
func (t *Table) checkLengths(names ...string) error {
	want := -1
	for _, name := range names {
		if name == "" {
			continue
		}
		col, err := t.column(name)
		if err != nil {
			return err
		}
		if want == -1 {
			want = col.len()
			continue
		}
		if col.len() != want {
			return fmt.Errorf("column %q has %d rows, expected %d", name, col.len(), want)
		}
	}
	return nil
}

// distinct returns the unique values of a slice in first-seen order.
func distinct(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
