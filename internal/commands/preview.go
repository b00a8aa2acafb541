package commands

import (
	"fmt"

	"github.com/carlislejd/analystkit/chart"
	"github.com/carlislejd/analystkit/formats"
	"github.com/carlislejd/analystkit/internal/csvdata"
	"github.com/carlislejd/analystkit/internal/termchart"
)

type PreviewCmd struct {
	Path    string `arg:"" help:"CSV file with a header row." type:"existingfile"`
	Kind    string `help:"Chart kind." default:"bar" enum:"bar,line"`
	X       string `short:"x" help:"Column for the x axis."`
	Y       string `short:"y" help:"Column for the values."`
	GroupBy string `help:"Column that splits rows into series."`
}

func (c *PreviewCmd) Run(ctx *Context) error {
	tbl, err := csvdata.ReadTable(c.Path)
	if err != nil {
		return err
	}

	xy, err := chart.ToXY(tbl, c.X, c.Y, c.GroupBy)
	if err != nil {
		return err
	}

	width := termchart.Width()
	switch c.Kind {
	case "line":
		series, err := timeSeries(xy)
		if err != nil {
			return err
		}
		view, legend := termchart.Timeseries(series, width)
		fmt.Println(view)
		fmt.Println(legend)
	default:
		fmt.Println(termchart.Bar(xy, width))
	}
	return nil
}

// timeSeries reinterprets the category axis as dates.
func timeSeries(xy chart.XY) ([]termchart.TimeSeries, error) {
	out := make([]termchart.TimeSeries, len(xy.Series))
	for i, s := range xy.Series {
		points := make([]termchart.TimePoint, len(s.Values))
		for j, v := range s.Values {
			t, err := formats.ParseDate(xy.X[j])
			if err != nil {
				return nil, fmt.Errorf("line preview needs a date x column: %w", err)
			}
			points[j] = termchart.TimePoint{Time: t, Value: v}
		}
		out[i] = termchart.TimeSeries{Name: s.Name, Points: points}
	}
	return out, nil
}
