// Package colors holds the style guide constants for charts and
// visualizations: the curated palette, per-count color hierarchy, and the
// named size and margin presets every figure is built from.
package colors

import (
	"fmt"
	"sort"
	"strings"
)

// Palette is the base qualitative palette, ordered by priority.
var Palette = []string{
	"#45b979", // Green
	"#a7d8b5", // Light green
	"#006472", // Dark teal
	"#62a0ad", // Light teal
	"#6c6b71", // Dark grey
	"#b7b6b9", // Light grey
	"#4f2984", // Purple
	"#927fb5", // Light purple
	"#00b6c9", // Turquoise
	"#91d6e0", // Light turquoise
	"#f05b72", // Red
}

// Hierarchy maps a series count to the curated color sequence for that many
// items. Counts beyond the largest key cycle through Palette instead.
var Hierarchy = map[int][]string{
	1:  {"#45b979"},
	2:  {"#45b979", "#6c6b71"},
	3:  {"#45b979", "#006472", "#6c6b71"},
	4:  {"#45b979", "#a7d8b5", "#006472", "#6c6b71"},
	5:  {"#45b979", "#a7d8b5", "#006472", "#62a0ad", "#6c6b71"},
	6:  {"#45b979", "#a7d8b5", "#006472", "#62a0ad", "#6c6b71", "#b7b6b9"},
	7:  {"#45b979", "#a7d8b5", "#006472", "#62a0ad", "#6c6b71", "#b7b6b9", "#4f2984"},
	8:  {"#45b979", "#a7d8b5", "#006472", "#62a0ad", "#6c6b71", "#b7b6b9", "#4f2984", "#927fb5"},
	9:  {"#45b979", "#a7d8b5", "#006472", "#62a0ad", "#6c6b71", "#b7b6b9", "#4f2984", "#927fb5", "#00b6c9"},
	10: {"#45b979", "#a7d8b5", "#006472", "#62a0ad", "#6c6b71", "#b7b6b9", "#4f2984", "#927fb5", "#00b6c9", "#91d6e0"},
	11: {"#45b979", "#a7d8b5", "#006472", "#62a0ad", "#6c6b71", "#b7b6b9", "#4f2984", "#927fb5", "#00b6c9", "#91d6e0", "#f05b72"},
}

// Chart colors shared by every figure.
var Chart = struct {
	Background string
	Grid       string
	GridDark   string
	Text       string
}{
	Background: "#ffffff",
	Grid:       "#e6e6e6",
	GridDark:   "#C1C8CD",
	Text:       "#1B252A",
}

// FontFamilies holds the typography presets. Primary is used for all text,
// Title only for chart titles.
var FontFamilies = struct {
	Primary string
	Title   string
}{
	Primary: "PPNeueMontreal-Regular",
	Title:   "Items-Regular",
}

// FontSizes in pixels. 6 pt / 25 px across the board.
var FontSizes = struct {
	Title      int
	Axis       int
	Legend     int
	Annotation int
}{
	Title:      25,
	Axis:       25,
	Legend:     25,
	Annotation: 25,
}

// Opacity settings per mark type.
var Opacity = struct {
	Bars       float64
	Lines      float64
	Markers    float64
	Areas      float64
	Background float64
}{
	Bars:       0.9,
	Lines:      0.8,
	Markers:    0.7,
	Areas:      0.6,
	Background: 1.0,
}

// Size is a figure dimension preset in pixels.
type Size struct {
	Width  int
	Height int
}

// Margin is a figure margin preset in pixels.
type Margin struct {
	Left   int
	Right  int
	Top    int
	Bottom int
}

// SizePresets are the named figure dimensions.
var SizePresets = map[string]Size{
	"full":   {Width: 1200, Height: 800},
	"half":   {Width: 600, Height: 400},
	"18:9":   {Width: 18 * 96, Height: 9 * 96},
	"3:1":    {Width: 18 * 96, Height: 6 * 96},
	"1:1":    {Width: 12 * 96, Height: 12 * 96},
	"type_a": {Width: 1275, Height: 900},
	"type_b": {Width: 1200, Height: 750},
	"type_c": {Width: 1800, Height: 1050},
	"type_d": {Width: 1800, Height: 1125},
	"type_e": {Width: 825, Height: 975},
	"type_f": {Width: 825, Height: 900},
}

// MarginPresets are the named figure margins.
var MarginPresets = map[string]Margin{
	"minimal":  {Left: 20, Right: 20, Top: 20, Bottom: 20},
	"standard": {Left: 40, Right: 40, Top: 40, Bottom: 40},
	"wide":     {Left: 60, Right: 60, Top: 60, Bottom: 60},
}

// StyleDefaults bundles the layout attributes applied to every figure.
var StyleDefaults = struct {
	FontFamily      string
	FontSize        int
	FontColor       string
	TitleFontFamily string
	TitleFontSize   int
	Margin          Margin
	GridLineWidth   int
	GridLineColor   string
	LegendOrient    string
}{
	FontFamily:      FontFamilies.Primary,
	FontSize:        FontSizes.Axis,
	FontColor:       Chart.Text,
	TitleFontFamily: FontFamilies.Title,
	TitleFontSize:   FontSizes.Title,
	Margin:          MarginPresets["minimal"],
	GridLineWidth:   1,
	GridLineColor:   Chart.GridDark,
	LegendOrient:    "horizontal",
}

// Export holds default export parameters.
type Export struct {
	Format string
	Width  int
	Height int
	Scale  int
}

// ExportDefaults are the parameters used when an export call leaves them unset.
var ExportDefaults = Export{
	Format: "png",
	Width:  SizePresets["full"].Width,
	Height: SizePresets["full"].Height,
	Scale:  2,
}

// ForCount returns a sequence of exactly n colors, deterministic for a given
// n. Counts within the curated hierarchy use it directly; larger counts cycle
// through Palette. n < 1 returns nil.
func ForCount(n int) []string {
	if n < 1 {
		return nil
	}
	if seq, ok := Hierarchy[n]; ok {
		out := make([]string, n)
		copy(out, seq)
		return out
	}
	out := make([]string, n)
	for i := range out {
		out[i] = Palette[i%len(Palette)]
	}
	return out
}

// SizeFor returns the size preset for name, or an error listing valid names.
func SizeFor(name string) (Size, error) {
	size, ok := SizePresets[name]
	if !ok {
		return Size{}, fmt.Errorf("unknown size preset %q: valid presets are %s", name, presetNames(SizePresets))
	}
	return size, nil
}

// MarginFor returns the margin preset for name, or an error listing valid names.
func MarginFor(name string) (Margin, error) {
	margin, ok := MarginPresets[name]
	if !ok {
		return Margin{}, fmt.Errorf("unknown margin preset %q: valid presets are %s", name, presetNames(MarginPresets))
	}
	return margin, nil
}

func presetNames[V any](presets map[string]V) string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
