package termchart

import (
	"strings"
	"testing"
	"time"

	"github.com/carlislejd/analystkit/chart"
)

func TestBar(t *testing.T) {
	t.Run("renders one bar per category", func(t *testing.T) {
		xy := chart.XY{
			X: []string{"alpha", "beta"},
			Series: []chart.NamedSeries{
				{Name: "", Values: []float64{3, 7}},
			},
		}
		view := Bar(xy, 60)
		if !strings.Contains(view, "alpha") || !strings.Contains(view, "beta") {
			t.Errorf("view should label every category:\n%s", view)
		}
		if !strings.Contains(view, "(3)") || !strings.Contains(view, "(7)") {
			t.Errorf("view should show bar totals:\n%s", view)
		}
	})

	t.Run("empty data", func(t *testing.T) {
		if got := Bar(chart.XY{}, 60); got != "no data" {
			t.Errorf("Bar on empty data = %q", got)
		}
	})
}

func TestTimeseries(t *testing.T) {
	now := time.Now()
	series := []TimeSeries{
		{Name: "cpu", Points: []TimePoint{
			{Time: now, Value: 1},
			{Time: now.Add(time.Minute), Value: 4},
		}},
		{Name: "mem", Points: []TimePoint{
			{Time: now, Value: 2},
			{Time: now.Add(time.Minute), Value: 3},
		}},
	}

	view, legend := Timeseries(series, 80)
	if len(view) == 0 {
		t.Error("chart view is empty")
	}
	if !strings.Contains(legend, "cpu") || !strings.Contains(legend, "mem") {
		t.Errorf("legend should name every series:\n%s", legend)
	}
}

func TestTimeseriesEmpty(t *testing.T) {
	view, legend := Timeseries(nil, 80)
	if view != "no data" || legend != "" {
		t.Errorf("Timeseries(nil) = %q, %q", view, legend)
	}
}

func TestWidthFallback(t *testing.T) {
	// Stdin is not a tty under go test, so the fallback applies.
	if got := Width(); got <= 0 {
		t.Errorf("Width() = %d, want positive", got)
	}
}
