// Package theme applies the house visual identity to go-echarts figures:
// dimensions and margins from the named presets, typography, horizontal-only
// grid lines, legend placement, and the optional source citation.
package theme

import (
	"fmt"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/carlislejd/analystkit/colors"
)

// Axis describes one axis of a figure. Zero values leave the corresponding
// ECharts attribute at its default.
type Axis struct {
	Name string
	Type string      // "category", "value", or "time"; empty lets ECharts infer
	Data interface{} // explicit category labels (heatmap y axis)
}

// Options selects the presets and annotations for one theme application.
// Empty Size and Margin fall back to the registered defaults.
type Options struct {
	Size   string
	Margin string

	Title  string
	XAxis  Axis
	YAxis  Axis
	Colors []string

	ShowSource bool
	SourceText string
}

// defaults are the library-wide theme defaults consulted when an Options
// leaves Size or Margin empty. Register installs them once at startup;
// concurrent registration must be serialized by the caller.
var defaults = Options{Size: "full", Margin: "minimal"}

// Register installs o as the library-wide default theme. Empty Size or
// Margin keep the house values. Unknown preset names are rejected before
// anything is installed, so a failed Register leaves the defaults untouched.
// Safe to call repeatedly with the same options.
func Register(o Options) error {
	if o.Size == "" {
		o.Size = "full"
	}
	if o.Margin == "" {
		o.Margin = "minimal"
	}
	if _, err := colors.SizeFor(o.Size); err != nil {
		return err
	}
	if _, err := colors.MarginFor(o.Margin); err != nil {
		return err
	}
	defaults = Options{Size: o.Size, Margin: o.Margin}
	return nil
}

// Default returns the registered library-wide theme defaults.
func Default() Options {
	return defaults
}

// Chart is any go-echarts figure whose global options can be set. All
// rectangular charts (Bar, Line, Scatter, HeatMap) satisfy it through their
// embedded RectChart.
type Chart interface {
	SetGlobalOptions(options ...charts.GlobalOpts) *charts.RectChart
}

// Apply styles fig with the house theme and returns it. Every layout
// attribute is set to an absolute value, so applying the same options twice
// produces the same document as applying them once.
func Apply[T Chart](fig T, o Options) (T, error) {
	global, err := GlobalOptions(o)
	if err != nil {
		var zero T
		return zero, err
	}
	fig.SetGlobalOptions(global...)
	return fig, nil
}

// GlobalOptions resolves o against the preset registry and returns the full
// option list implementing the theme, for callers composing figures directly.
func GlobalOptions(o Options) ([]charts.GlobalOpts, error) {
	sizeName := o.Size
	if sizeName == "" {
		sizeName = defaults.Size
	}
	marginName := o.Margin
	if marginName == "" {
		marginName = defaults.Margin
	}

	size, err := colors.SizeFor(sizeName)
	if err != nil {
		return nil, err
	}
	margin, err := colors.MarginFor(marginName)
	if err != nil {
		return nil, err
	}

	bodyFont := &opts.TextStyle{
		FontFamily: colors.FontFamilies.Primary,
		FontSize:   colors.FontSizes.Axis,
		Color:      colors.Chart.Text,
	}
	titleFont := &opts.TextStyle{
		FontFamily: colors.FontFamilies.Title,
		FontSize:   colors.FontSizes.Title,
		Color:      colors.Chart.Text,
	}

	title := opts.Title{
		Title:      o.Title,
		TitleStyle: titleFont,
	}
	if o.ShowSource && o.SourceText != "" {
		title.Subtitle = fmt.Sprintf("Source: %s", o.SourceText)
		title.SubtitleStyle = &opts.TextStyle{
			FontFamily: colors.FontFamilies.Primary,
			FontSize:   colors.FontSizes.Annotation,
			Color:      colors.Chart.Text,
		}
	}

	global := []charts.GlobalOpts{
		withDimensions(size, colors.Chart.Background),
		charts.WithTitleOpts(title),
		charts.WithLegendOpts(opts.Legend{
			Show:      opts.Bool(true),
			Orient:    colors.StyleDefaults.LegendOrient,
			Right:     "0",
			Top:       "0",
			TextStyle: bodyFont,
		}),
		withGrid(opts.Grid{
			Left:   strconv.Itoa(margin.Left),
			Right:  strconv.Itoa(margin.Right),
			Top:    strconv.Itoa(margin.Top),
			Bottom: strconv.Itoa(margin.Bottom),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		// Vertical grid lines off, horizontal on.
		charts.WithXAxisOpts(opts.XAxis{
			Name: o.XAxis.Name,
			Type: o.XAxis.Type,
			Data: o.XAxis.Data,
			AxisLabel: &opts.AxisLabel{
				Show:  opts.Bool(true),
				Color: colors.Chart.Text,
			},
			SplitLine: &opts.SplitLine{Show: opts.Bool(false)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: o.YAxis.Name,
			Type: o.YAxis.Type,
			Data: o.YAxis.Data,
			AxisLabel: &opts.AxisLabel{
				Show:  opts.Bool(true),
				Color: colors.Chart.Text,
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
				LineStyle: &opts.LineStyle{
					Color: colors.StyleDefaults.GridLineColor,
					Width: float32(colors.StyleDefaults.GridLineWidth),
				},
			},
		}),
	}

	if len(o.Colors) > 0 {
		global = append(global, withColors(o.Colors))
	}

	return global, nil
}

// withDimensions sets only the size and background, leaving the rest of the
// initialization (notably the generated chart ID) alone. Replacing the whole
// Initialization re-validates it, which mints a new chart ID per application.
func withDimensions(size colors.Size, background string) charts.GlobalOpts {
	return func(bc *charts.BaseConfiguration) {
		bc.Initialization.Width = fmt.Sprintf("%dpx", size.Width)
		bc.Initialization.Height = fmt.Sprintf("%dpx", size.Height)
		bc.Initialization.BackgroundColor = background
	}
}

// withGrid assigns the figure's grid rather than appending another one, so
// reapplying the theme cannot accumulate grids.
func withGrid(g opts.Grid) charts.GlobalOpts {
	return func(bc *charts.BaseConfiguration) {
		bc.GridList = []opts.Grid{g}
	}
}

// withColors assigns the series palette rather than merging it.
func withColors(cs []string) charts.GlobalOpts {
	return func(bc *charts.BaseConfiguration) {
		bc.Colors = append([]string(nil), cs...)
	}
}
