package chart

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/carlislejd/analystkit/colors"
	"github.com/carlislejd/analystkit/theme"
)

// BarOptions configures a bar chart. X, Y, and GroupBy reference table
// columns and are ignored for the other input shapes.
type BarOptions struct {
	X       string
	Y       string
	GroupBy string

	Title      string
	XLabel     string
	YLabel     string
	Horizontal bool

	Size       string
	Margin     string
	ShowSource bool
	SourceText string
}

// Bar builds a styled bar chart from any supported input shape. One series
// without a group column, one per distinct group value otherwise, colored by
// series count.
func Bar(data Data, o BarOptions) (*charts.Bar, error) {
	n, err := normalizeXY(data, o.X, o.Y, o.GroupBy, "bar chart")
	if err != nil {
		return nil, err
	}

	bar := charts.NewBar()
	bar.SetXAxis(n.x)
	for _, s := range n.series {
		bar.AddSeries(s.name, barData(s.values),
			charts.WithItemStyleOpts(opts.ItemStyle{Opacity: opacity(colors.Opacity.Bars)}))
	}
	if o.Horizontal {
		bar.XYReversal()
	}

	return theme.Apply(bar, theme.Options{
		Size:       o.Size,
		Margin:     o.Margin,
		Title:      o.Title,
		XAxis:      theme.Axis{Name: o.XLabel, Type: "category"},
		YAxis:      theme.Axis{Name: o.YLabel, Type: "value"},
		Colors:     colors.ForCount(len(n.series)),
		ShowSource: o.ShowSource,
		SourceText: o.SourceText,
	})
}

func barData(values []float64) []opts.BarData {
	out := make([]opts.BarData, len(values))
	for i, v := range values {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

func opacity(v float64) float32 {
	return float32(v)
}
