package chart

import (
	"reflect"
	"strings"
	"testing"
)

func TestHeatmapDefaults(t *testing.T) {
	hm, err := Heatmap(Matrix{Values: [][]float64{{1, 2}, {3, 4}, {5, 6}}}, HeatmapOptions{})
	if err != nil {
		t.Fatalf("Heatmap returned error: %v", err)
	}

	if want := []string{"0", "1"}; !reflect.DeepEqual(hm.XAxisList[0].Data, want) {
		t.Errorf("x labels = %v, want %v", hm.XAxisList[0].Data, want)
	}
	if want := []string{"0", "1", "2"}; !reflect.DeepEqual(hm.YAxisList[0].Data, want) {
		t.Errorf("y labels = %v, want %v", hm.YAxisList[0].Data, want)
	}

	if len(hm.VisualMapList) != 1 {
		t.Fatalf("len(VisualMapList) = %d, want 1", len(hm.VisualMapList))
	}
	vm := hm.VisualMapList[0]
	if vm.Min != 1 || vm.Max != 6 {
		t.Errorf("visual map range = [%v, %v], want [1, 6]", vm.Min, vm.Max)
	}
	if vm.InRange == nil || !reflect.DeepEqual(vm.InRange.Color, ColorScales["viridis"]) {
		t.Error("visual map should default to the viridis scale")
	}
}

func TestHeatmapNamedScale(t *testing.T) {
	hm, err := Heatmap(Matrix{
		Values:  [][]float64{{1, 2}},
		XLabels: []string{"q1", "q2"},
		YLabels: []string{"2024"},
	}, HeatmapOptions{ColorScale: "greens"})
	if err != nil {
		t.Fatalf("Heatmap returned error: %v", err)
	}
	if !reflect.DeepEqual(hm.VisualMapList[0].InRange.Color, ColorScales["greens"]) {
		t.Error("visual map should use the greens scale")
	}
	if want := []string{"q1", "q2"}; !reflect.DeepEqual(hm.XAxisList[0].Data, want) {
		t.Errorf("x labels = %v, want %v", hm.XAxisList[0].Data, want)
	}
}

func TestHeatmapLabelsReachDocument(t *testing.T) {
	hm, err := Heatmap(Matrix{
		Values:  [][]float64{{1, 2}},
		XLabels: []string{"q1", "q2"},
		YLabels: []string{"2024"},
	}, HeatmapOptions{})
	if err != nil {
		t.Fatalf("Heatmap returned error: %v", err)
	}

	content := string(hm.RenderContent())
	for _, want := range []string{"q1", "q2", "2024"} {
		if !strings.Contains(content, want) {
			t.Errorf("rendered document is missing axis label %q", want)
		}
	}
}

func TestHeatmapUnknownScale(t *testing.T) {
	_, err := Heatmap(Matrix{Values: [][]float64{{1}}}, HeatmapOptions{ColorScale: "plasma"})
	if err == nil {
		t.Fatal("Heatmap with an unknown color scale should return an error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "plasma") || !strings.Contains(msg, "viridis") {
		t.Errorf("error should name the scale and list valid ones, got: %v", err)
	}
}

func TestHeatmapRaggedMatrix(t *testing.T) {
	_, err := Heatmap(Matrix{Values: [][]float64{{1, 2}, {3}}}, HeatmapOptions{})
	if err == nil {
		t.Fatal("Heatmap should reject ragged rows")
	}
	if !strings.Contains(err.Error(), "row 1") {
		t.Errorf("error should name the offending row, got: %v", err)
	}
}

func TestHeatmapEmptyMatrix(t *testing.T) {
	if _, err := Heatmap(Matrix{}, HeatmapOptions{}); err == nil {
		t.Fatal("Heatmap should reject an empty matrix")
	}
}

func TestTableToMatrix(t *testing.T) {
	tbl := NewTable().
		AddStrings("name", []string{"a", "b"}).
		AddFloats("q1", []float64{1, 3}).
		AddFloats("q2", []float64{2, 4})

	m, err := tbl.ToMatrix()
	if err != nil {
		t.Fatalf("ToMatrix returned error: %v", err)
	}
	if want := []string{"q1", "q2"}; !reflect.DeepEqual(m.XLabels, want) {
		t.Errorf("XLabels = %v, want %v", m.XLabels, want)
	}
	if want := [][]float64{{1, 2}, {3, 4}}; !reflect.DeepEqual(m.Values, want) {
		t.Errorf("Values = %v, want %v", m.Values, want)
	}
}

func TestTableToMatrixNoNumericColumns(t *testing.T) {
	tbl := NewTable().AddStrings("name", []string{"a"})
	if _, err := tbl.ToMatrix(); err == nil {
		t.Fatal("ToMatrix should fail on a table without numeric columns")
	}
}

func TestTableToMatrixNamedColumns(t *testing.T) {
	tbl := NewTable().
		AddFloats("q1", []float64{1}).
		AddFloats("q2", []float64{2}).
		AddFloats("q3", []float64{3})

	m, err := tbl.ToMatrix("q3", "q1")
	if err != nil {
		t.Fatalf("ToMatrix returned error: %v", err)
	}
	if want := [][]float64{{3, 1}}; !reflect.DeepEqual(m.Values, want) {
		t.Errorf("Values = %v, want %v", m.Values, want)
	}
}
