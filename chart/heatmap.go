package chart

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/carlislejd/analystkit/theme"
)

// Matrix is the 2-D shape accepted by Heatmap: Values[row][col], with
// optional axis labels. Missing labels default to indices.
type Matrix struct {
	Values  [][]float64
	XLabels []string
	YLabels []string
}

func (Matrix) shape() string { return "matrix" }

// ColorScales are the named color ramps a heatmap can use.
var ColorScales = map[string][]string{
	"viridis": {"#440154", "#482878", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"},
	"greens":  {"#a7d8b5", "#45b979", "#006472"},
	"teals":   {"#91d6e0", "#00b6c9", "#006472"},
}

// HeatmapOptions configures a heatmap.
type HeatmapOptions struct {
	Title      string
	XLabel     string
	YLabel     string
	ColorScale string // key into ColorScales; empty means viridis

	Size       string
	Margin     string
	ShowSource bool
	SourceText string
}

// Heatmap builds a styled heatmap from a matrix.
func Heatmap(m Matrix, o HeatmapOptions) (*charts.HeatMap, error) {
	if len(m.Values) == 0 {
		return nil, fmt.Errorf("heatmap: matrix has no rows")
	}
	cols := len(m.Values[0])
	for i, row := range m.Values {
		if len(row) != cols {
			return nil, fmt.Errorf("heatmap: row %d has %d values, expected %d", i, len(row), cols)
		}
	}

	scaleName := o.ColorScale
	if scaleName == "" {
		scaleName = "viridis"
	}
	scale, ok := ColorScales[scaleName]
	if !ok {
		names := make([]string, 0, len(ColorScales))
		for name := range ColorScales {
			names = append(names, name)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("heatmap: unknown color scale %q: valid scales are %s", scaleName, strings.Join(names, ", "))
	}

	xLabels := m.XLabels
	if xLabels == nil {
		xLabels = indexLabels(cols)
	}
	yLabels := m.YLabels
	if yLabels == nil {
		yLabels = indexLabels(len(m.Values))
	}

	data := make([]opts.HeatMapData, 0, len(m.Values)*cols)
	min, max := m.Values[0][0], m.Values[0][0]
	for y, row := range m.Values {
		for x, v := range row {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
			data = append(data, opts.HeatMapData{Value: [3]interface{}{x, y, v}})
		}
	}

	hm := charts.NewHeatMap()
	hm.AddSeries("", data)

	// HeatMap.Validate never copies SetXAxis data into the axis, so the x
	// labels travel as explicit axis data, same as the y labels.
	themed, err := theme.Apply(hm, theme.Options{
		Size:       o.Size,
		Margin:     o.Margin,
		Title:      o.Title,
		XAxis:      theme.Axis{Name: o.XLabel, Type: "category", Data: xLabels},
		YAxis:      theme.Axis{Name: o.YLabel, Type: "category", Data: yLabels},
		ShowSource: o.ShowSource,
		SourceText: o.SourceText,
	})
	if err != nil {
		return nil, err
	}

	themed.SetGlobalOptions(charts.WithVisualMapOpts(opts.VisualMap{
		Calculable: opts.Bool(true),
		Min:        float32(min),
		Max:        float32(max),
		InRange:    &opts.VisualMapInRange{Color: scale},
	}))
	return themed, nil
}

// ToMatrix selects numeric columns into a Matrix, column names on the x axis.
// With no names given, every numeric column is taken in insertion order.
func (t *Table) ToMatrix(columns ...string) (Matrix, error) {
	if len(columns) == 0 {
		for _, name := range t.names {
			if t.cols[name].numeric {
				columns = append(columns, name)
			}
		}
	}
	if len(columns) == 0 {
		return Matrix{}, fmt.Errorf("heatmap: table has no numeric columns")
	}
	if err := t.checkLengths(columns...); err != nil {
		return Matrix{}, fmt.Errorf("heatmap: %w", err)
	}

	series := make([][]float64, len(columns))
	for i, name := range columns {
		nums, err := t.numberColumn(name)
		if err != nil {
			return Matrix{}, fmt.Errorf("heatmap: %w", err)
		}
		series[i] = nums
	}

	rows := len(series[0])
	values := make([][]float64, rows)
	for r := 0; r < rows; r++ {
		values[r] = make([]float64, len(columns))
		for c := range columns {
			values[r][c] = series[c][r]
		}
	}

	return Matrix{Values: values, XLabels: columns}, nil
}

func indexLabels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i)
	}
	return out
}
