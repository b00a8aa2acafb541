package chart

import (
	"fmt"
	"strconv"
)

// axisSeries is one named series aligned to a shared category axis.
type axisSeries struct {
	name   string
	values []float64
}

// normalized is the common form bar and line charts are built from.
type normalized struct {
	x      []string
	series []axisSeries
}

// normalizeXY maps any supported input shape onto a category axis plus one
// series per distinct group. kind names the chart in error messages.
func normalizeXY(data Data, x, y, groupBy, kind string) (normalized, error) {
	switch d := data.(type) {
	case Categories:
		labels := make([]string, len(d))
		values := make([]float64, len(d))
		for i, c := range d {
			labels[i] = c.Label
			values[i] = c.Value
		}
		return normalized{x: labels, series: []axisSeries{{values: values}}}, nil

	case Values:
		labels := make([]string, len(d))
		for i := range d {
			labels[i] = strconv.Itoa(i)
		}
		return normalized{x: labels, series: []axisSeries{{values: d}}}, nil

	case Points:
		labels := make([]string, len(d))
		values := make([]float64, len(d))
		for i, p := range d {
			labels[i] = formatValue(p.X)
			values[i] = p.Y
		}
		return normalized{x: labels, series: []axisSeries{{values: values}}}, nil

	case *Table:
		return normalizeTable(d, x, y, groupBy, kind)

	case nil:
		return normalized{}, fmt.Errorf("%s: data must not be nil", kind)

	default:
		return normalized{}, fmt.Errorf("%s does not accept %s data", kind, data.shape())
	}
}

func normalizeTable(t *Table, x, y, groupBy, kind string) (normalized, error) {
	if x == "" || y == "" {
		return normalized{}, fmt.Errorf("%s: both x and y column names are required for table input", kind)
	}
	if err := t.checkLengths(x, y, groupBy); err != nil {
		return normalized{}, fmt.Errorf("%s: %w", kind, err)
	}

	labels, err := t.labelColumn(x)
	if err != nil {
		return normalized{}, fmt.Errorf("%s: %w", kind, err)
	}
	values, err := t.numberColumn(y)
	if err != nil {
		return normalized{}, fmt.Errorf("%s: %w", kind, err)
	}

	if groupBy == "" {
		return normalized{x: labels, series: []axisSeries{{values: values}}}, nil
	}

	groups, err := t.labelColumn(groupBy)
	if err != nil {
		return normalized{}, fmt.Errorf("%s: %w", kind, err)
	}

	categories := distinct(labels)
	index := make(map[string]int, len(categories))
	for i, c := range categories {
		index[c] = i
	}

	var out []axisSeries
	byGroup := make(map[string]int)
	for row, g := range groups {
		i, ok := byGroup[g]
		if !ok {
			i = len(out)
			byGroup[g] = i
			out = append(out, axisSeries{name: g, values: make([]float64, len(categories))})
		}
		out[i].values[index[labels[row]]] = values[row]
	}

	return normalized{x: categories, series: out}, nil
}

// NamedSeries is one named value series aligned to a shared category axis.
type NamedSeries struct {
	Name   string
	Values []float64
}

// XY is the category-axis form of any input shape: labels on one axis, one
// series per group on the other. It is what renderers outside this package
// consume.
type XY struct {
	X      []string
	Series []NamedSeries
}

// ToXY normalizes data the same way Bar and Line do, without building a
// figure. x, y, and groupBy reference table columns and are ignored for the
// other input shapes.
func ToXY(data Data, x, y, groupBy string) (XY, error) {
	n, err := normalizeXY(data, x, y, groupBy, "chart")
	if err != nil {
		return XY{}, err
	}
	out := XY{X: n.x, Series: make([]NamedSeries, len(n.series))}
	for i, s := range n.series {
		out.Series[i] = NamedSeries{Name: s.name, Values: s.values}
	}
	return out, nil
}

// pointSeries is one named series of (x, y) points, optionally sized.
type pointSeries struct {
	name   string
	points []Point
	sizes  []float64
}

// normalizePoints maps any supported input shape onto numeric point series,
// split by the optional group column for table input.
func normalizePoints(data Data, x, y, groupBy, sizeBy, kind string) ([]pointSeries, error) {
	switch d := data.(type) {
	case Points:
		return []pointSeries{{points: d}}, nil

	case Values:
		points := make([]Point, len(d))
		for i, v := range d {
			points[i] = Point{X: float64(i), Y: v}
		}
		return []pointSeries{{points: points}}, nil

	case Categories:
		points := make([]Point, len(d))
		for i, c := range d {
			points[i] = Point{X: float64(i), Y: c.Value}
		}
		return []pointSeries{{points: points}}, nil

	case *Table:
		return normalizePointTable(d, x, y, groupBy, sizeBy, kind)

	case nil:
		return nil, fmt.Errorf("%s: data must not be nil", kind)

	default:
		return nil, fmt.Errorf("%s does not accept %s data", kind, data.shape())
	}
}

func normalizePointTable(t *Table, x, y, groupBy, sizeBy, kind string) ([]pointSeries, error) {
	if x == "" || y == "" {
		return nil, fmt.Errorf("%s: both x and y column names are required for table input", kind)
	}
	if err := t.checkLengths(x, y, groupBy, sizeBy); err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}

	xs, err := t.numberColumn(x)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	ys, err := t.numberColumn(y)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}

	var sizes []float64
	if sizeBy != "" {
		if sizes, err = t.numberColumn(sizeBy); err != nil {
			return nil, fmt.Errorf("%s: %w", kind, err)
		}
	}

	var groups []string
	if groupBy != "" {
		if groups, err = t.labelColumn(groupBy); err != nil {
			return nil, fmt.Errorf("%s: %w", kind, err)
		}
	}

	if groups == nil {
		s := pointSeries{points: make([]Point, len(xs)), sizes: sizes}
		for i := range xs {
			s.points[i] = Point{X: xs[i], Y: ys[i]}
		}
		return []pointSeries{s}, nil
	}

	var out []pointSeries
	byGroup := make(map[string]int)
	for row, g := range groups {
		i, ok := byGroup[g]
		if !ok {
			i = len(out)
			byGroup[g] = i
			out = append(out, pointSeries{name: g})
		}
		out[i].points = append(out[i].points, Point{X: xs[row], Y: ys[row]})
		if sizes != nil {
			out[i].sizes = append(out[i].sizes, sizes[row])
		}
	}
	return out, nil
}
