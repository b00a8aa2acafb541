package chart

import (
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/carlislejd/analystkit/colors"
	"github.com/carlislejd/analystkit/theme"
)

// Marker sizes in pixels for scatter charts. When a size column is given,
// its values are scaled linearly into [MinMarkerSize, MaxMarkerSize].
const (
	DefaultMarkerSize = 10
	MinMarkerSize     = 6
	MaxMarkerSize     = 40
)

// ScatterOptions configures a scatter chart. X, Y, GroupBy, and SizeBy
// reference table columns and are ignored for the other input shapes.
type ScatterOptions struct {
	X       string
	Y       string
	GroupBy string
	SizeBy  string

	Title  string
	XLabel string
	YLabel string

	Size       string
	Margin     string
	ShowSource bool
	SourceText string
}

// Scatter builds a styled scatter chart from any supported input shape.
func Scatter(data Data, o ScatterOptions) (*charts.Scatter, error) {
	series, err := normalizePoints(data, o.X, o.Y, o.GroupBy, o.SizeBy, "scatter chart")
	if err != nil {
		return nil, err
	}

	scatter := charts.NewScatter()
	for _, s := range series {
		scatter.AddSeries(s.name, scatterData(s),
			charts.WithItemStyleOpts(opts.ItemStyle{Opacity: opacity(colors.Opacity.Markers)}))
	}

	return theme.Apply(scatter, theme.Options{
		Size:       o.Size,
		Margin:     o.Margin,
		Title:      o.Title,
		XAxis:      theme.Axis{Name: o.XLabel, Type: "value"},
		YAxis:      theme.Axis{Name: o.YLabel, Type: "value"},
		Colors:     colors.ForCount(len(series)),
		ShowSource: o.ShowSource,
		SourceText: o.SourceText,
	})
}

func scatterData(s pointSeries) []opts.ScatterData {
	sizes := markerSizes(s.sizes)
	out := make([]opts.ScatterData, len(s.points))
	for i, p := range s.points {
		size := DefaultMarkerSize
		if sizes != nil {
			size = sizes[i]
		}
		out[i] = opts.ScatterData{
			Value:      []interface{}{p.X, p.Y},
			SymbolSize: size,
		}
	}
	return out
}

// markerSizes scales raw size values into the marker pixel range. A constant
// column maps every marker to the default size.
func markerSizes(values []float64) []int {
	if len(values) == 0 {
		return nil
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	out := make([]int, len(values))
	if hi == lo {
		for i := range out {
			out[i] = DefaultMarkerSize
		}
		return out
	}
	for i, v := range values {
		scaled := (v - lo) / (hi - lo)
		out[i] = MinMarkerSize + int(math.Round(scaled*float64(MaxMarkerSize-MinMarkerSize)))
	}
	return out
}
