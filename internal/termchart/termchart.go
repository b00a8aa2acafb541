// Package termchart renders quick terminal previews of chart data. These are
// sketches for iterating on data before a styled export, not the styled
// figures themselves.
package termchart

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/carlislejd/analystkit/chart"
	"github.com/carlislejd/analystkit/colors"
)

const (
	// chartHeightRatio determines chart height as width/chartHeightRatio.
	chartHeightRatio = 8

	// minChartHeight is the floor for line chart height.
	minChartHeight = 8

	// defaultWidth is used when the terminal size cannot be determined.
	defaultWidth = 80
)

var axisStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Chart.GridDark))

var labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Palette[3]))

// Width returns the terminal width, or a default when stdin is not a tty.
func Width() int {
	width, _, err := term.GetSize(int(os.Stdin.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// seriesStyle colors series i with the palette sequence for n series.
func seriesStyle(i, n int) lipgloss.Style {
	palette := colors.ForCount(n)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(palette[i%len(palette)]))
}

// Bar renders horizontal bars, one per category, grouped series stacked
// under a shared label.
func Bar(xy chart.XY, width int) string {
	if len(xy.X) == 0 || len(xy.Series) == 0 {
		return "no data"
	}

	barData := make([]barchart.BarData, 0, len(xy.X))
	for i, label := range xy.X {
		values := make([]barchart.BarValue, 0, len(xy.Series))
		total := 0.0
		for j, s := range xy.Series {
			values = append(values, barchart.BarValue{
				Name:  s.Name,
				Value: s.Values[i],
				Style: seriesStyle(j, len(xy.Series)),
			})
			total += s.Values[i]
		}
		barData = append(barData, barchart.BarData{
			Label:  fmt.Sprintf("%s (%g)", label, total),
			Values: values,
		})
	}

	bc := barchart.New(width, len(barData)*2,
		barchart.WithDataSet(barData),
		barchart.WithHorizontalBars())
	bc.Draw()

	return bc.View()
}

// TimePoint is one observation of a time series.
type TimePoint struct {
	Time  time.Time
	Value float64
}

// TimeSeries is one named stream of observations.
type TimeSeries struct {
	Name   string
	Points []TimePoint
}

// Timeseries renders a braille line chart and returns the chart and legend
// separately so callers can lay them out.
func Timeseries(series []TimeSeries, width int) (chartView string, legend string) {
	minY := math.MaxFloat64
	maxY := -math.MaxFloat64
	for _, s := range series {
		for _, p := range s.Points {
			if p.Value < minY {
				minY = p.Value
			}
			if p.Value > maxY {
				maxY = p.Value
			}
		}
	}
	if minY > maxY {
		return "no data", ""
	}

	height := width / chartHeightRatio
	if height < minChartHeight {
		height = minChartHeight
	}

	var legendBuilder strings.Builder

	lc := timeserieslinechart.New(width, height)
	lc.AxisStyle = axisStyle
	lc.LabelStyle = labelStyle
	lc.XLabelFormatter = timeserieslinechart.HourTimeLabelFormatter()
	lc.SetYRange(minY, maxY)
	lc.SetViewYRange(minY, maxY)
	lc.SetLineStyle(runes.ThinLineStyle)

	for i, s := range series {
		style := seriesStyle(i, len(series))
		legendBuilder.WriteString("\n")
		legendBuilder.WriteString(style.Render(fmt.Sprintf("%c %s", runes.FullBlock, s.Name)))
		lc.SetDataSetStyle(s.Name, style)
		for _, p := range s.Points {
			lc.PushDataSet(s.Name, timeserieslinechart.TimePoint{
				Time:  p.Time,
				Value: p.Value,
			})
		}
	}

	lc.DrawBrailleAll()

	return lc.View(), legendBuilder.String()
}
