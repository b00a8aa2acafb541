package commands

import (
	"fmt"
	"sort"

	"github.com/carlislejd/analystkit/chart"
	"github.com/carlislejd/analystkit/export"
	"github.com/carlislejd/analystkit/internal/csvdata"
)

type ExportCmd struct {
	Path string `arg:"" help:"CSV file with a header row." type:"existingfile"`
	Kind string `help:"Chart kind." default:"bar" enum:"bar,line,scatter,heatmap"`

	X       string   `short:"x" help:"Column for the x axis."`
	Y       string   `short:"y" help:"Column for the values."`
	GroupBy string   `help:"Column that splits rows into series."`
	SizeBy  string   `help:"Column that sizes scatter markers."`
	Columns []string `help:"Numeric columns for the heatmap, in order."`

	Title      string `help:"Chart title; also names the output files." default:"chart"`
	XLabel     string `help:"X axis label."`
	YLabel     string `help:"Y axis label."`
	Horizontal bool   `help:"Horizontal bars."`
	Smooth     bool   `help:"Smooth the line."`
	ColorScale string `help:"Heatmap color scale."`
	Source     string `help:"Data source citation shown under the title."`

	Aspect    string   `help:"Size preset." default:"full"`
	Margin    string   `help:"Margin preset."`
	Formats   []string `short:"f" help:"Export formats. Defaults to the configured one."`
	OutputDir string   `short:"d" help:"Directory for the exported files." default:"."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	s, err := loadSettings(ctx)
	if err != nil {
		return err
	}
	if len(c.Formats) == 0 {
		c.Formats = []string{s.ExportFormat}
	}

	tbl, err := csvdata.ReadTable(c.Path)
	if err != nil {
		return err
	}

	written, err := c.save(tbl)
	if written != nil {
		formats := make([]string, 0, len(written))
		for f := range written {
			formats = append(formats, f)
		}
		sort.Strings(formats)
		for _, f := range formats {
			fmt.Printf("Wrote %s\n", written[f])
		}
	}
	return err
}

func (c *ExportCmd) save(tbl *chart.Table) (map[string]string, error) {
	switch c.Kind {
	case "line":
		fig, err := chart.Line(tbl, chart.LineOptions{
			X: c.X, Y: c.Y, GroupBy: c.GroupBy,
			Title: c.Title, XLabel: c.XLabel, YLabel: c.YLabel,
			Smooth: c.Smooth,
			Size:   c.Aspect, Margin: c.Margin,
			ShowSource: c.Source != "", SourceText: c.Source,
		})
		if err != nil {
			return nil, err
		}
		return export.Save(fig, c.Title, c.OutputDir, c.Aspect, c.Formats...)

	case "scatter":
		fig, err := chart.Scatter(tbl, chart.ScatterOptions{
			X: c.X, Y: c.Y, GroupBy: c.GroupBy, SizeBy: c.SizeBy,
			Title: c.Title, XLabel: c.XLabel, YLabel: c.YLabel,
			Size: c.Aspect, Margin: c.Margin,
			ShowSource: c.Source != "", SourceText: c.Source,
		})
		if err != nil {
			return nil, err
		}
		return export.Save(fig, c.Title, c.OutputDir, c.Aspect, c.Formats...)

	case "heatmap":
		m, err := tbl.ToMatrix(c.Columns...)
		if err != nil {
			return nil, err
		}
		if c.X != "" {
			labels, err := tbl.Strings(c.X)
			if err != nil {
				return nil, err
			}
			m.YLabels = labels
		}
		fig, err := chart.Heatmap(m, chart.HeatmapOptions{
			Title: c.Title, XLabel: c.XLabel, YLabel: c.YLabel,
			ColorScale: c.ColorScale,
			Size:       c.Aspect, Margin: c.Margin,
			ShowSource: c.Source != "", SourceText: c.Source,
		})
		if err != nil {
			return nil, err
		}
		return export.Save(fig, c.Title, c.OutputDir, c.Aspect, c.Formats...)

	default:
		fig, err := chart.Bar(tbl, chart.BarOptions{
			X: c.X, Y: c.Y, GroupBy: c.GroupBy,
			Title: c.Title, XLabel: c.XLabel, YLabel: c.YLabel,
			Horizontal: c.Horizontal,
			Size:       c.Aspect, Margin: c.Margin,
			ShowSource: c.Source != "", SourceText: c.Source,
		})
		if err != nil {
			return nil, err
		}
		return export.Save(fig, c.Title, c.OutputDir, c.Aspect, c.Formats...)
	}
}
