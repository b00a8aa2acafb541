package chart

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/carlislejd/analystkit/colors"
	"github.com/carlislejd/analystkit/theme"
)

// LineOptions configures a line chart. X, Y, and GroupBy reference table
// columns and are ignored for the other input shapes.
type LineOptions struct {
	X       string
	Y       string
	GroupBy string

	Title  string
	XLabel string
	YLabel string
	Smooth bool

	Size       string
	Margin     string
	ShowSource bool
	SourceText string
}

// Line builds a styled line chart from any supported input shape.
func Line(data Data, o LineOptions) (*charts.Line, error) {
	n, err := normalizeXY(data, o.X, o.Y, o.GroupBy, "line chart")
	if err != nil {
		return nil, err
	}

	line := charts.NewLine()
	line.SetXAxis(n.x)
	for _, s := range n.series {
		line.AddSeries(s.name, lineData(s.values),
			charts.WithLineChartOpts(opts.LineChart{
				Smooth:     opts.Bool(o.Smooth),
				ShowSymbol: opts.Bool(true),
			}),
			charts.WithLineStyleOpts(opts.LineStyle{
				Width:   2,
				Opacity: opacity(colors.Opacity.Lines),
			}))
	}

	return theme.Apply(line, theme.Options{
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

func lineData(values []float64) []opts.LineData {
	out := make([]opts.LineData, len(values))
	for i, v := range values {
		out[i] = opts.LineData{Value: v}
	}
	return out
}
